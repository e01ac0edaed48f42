package hud

import (
	"fmt"

	"github.com/younwookim/sharkie/internal/application/render"
	"github.com/younwookim/sharkie/internal/domain/entity"
)

// CounterType selects which player total a counter shows
type CounterType string

const (
	CounterPoison CounterType = "poison"
	CounterCoin   CounterType = "coin"
)

// DefaultIconSize is the counter icon width
const DefaultIconSize = 42

// Counter is an animated icon followed by "x N".
type Counter struct {
	Type  CounterType
	X, Y  float64
	Width float64
	Value int

	anim *entity.Animator
}

// NewCounter creates a counter. A single frame does not animate.
func NewCounter(typ CounterType, x, y, width float64, frames entity.FrameSet) *Counter {
	if width <= 0 {
		width = DefaultIconSize
	}
	fps := frames.FPS
	if fps <= 0 {
		fps = 10
	}
	c := &Counter{Type: typ, X: x, Y: y, Width: width, anim: entity.NewAnimator(entity.MinPickupFrameDelayMs)}
	c.anim.Play(frames.Frames, fps, true, nil)
	if len(frames.Frames) <= 1 {
		c.anim.Stop()
	}
	return c
}

// SetValue sets the shown total, floored at 0
func (c *Counter) SetValue(v int) {
	c.Value = max(0, v)
}

// Update advances the icon animation
func (c *Counter) Update(dtMs float64) { c.anim.Advance(dtMs) }

// Freeze suspends the icon animation
func (c *Counter) Freeze() { c.anim.Freeze() }

// Unfreeze resumes the icon animation
func (c *Counter) Unfreeze() { c.anim.Unfreeze() }

// Destroy stops the icon animation
func (c *Counter) Destroy() { c.anim.Stop() }

// Animation exposes the animator for inspection
func (c *Counter) Animation() *entity.Animator { return c.anim }

// Draw draws the icon and the "x N" label to its right.
func (c *Counter) Draw(s render.Surface) {
	if icon := c.anim.Current(); icon != "" {
		s.DrawImage(icon, c.X, c.Y, c.Width, c.Width, false)
	}
	label := fmt.Sprintf("x %d", c.Value)
	_, th := s.TextSize(label)
	tx := c.X + c.Width + 12
	ty := c.Y + c.Width/2 - th/2
	s.DrawText(label, tx+1, ty+1, render.TextShadow)
	s.DrawText(label, tx, ty, render.Text)
}

package hud

import (
	"fmt"
	"math"

	"github.com/younwookim/sharkie/internal/application/render"
)

// BarAspect is the height/width ratio of the bar artwork
const BarAspect = 158.0 / 595.0

// Steps are the fill levels the bar artwork exists for
var Steps = []int{0, 20, 40, 60, 80, 100}

// ToStep maps value/maxValue onto the nearest artwork step. Any positive
// value shows at least the 20 step.
func ToStep(value, maxValue int) int {
	if maxValue <= 0 || value <= 0 {
		return 0
	}
	pct := float64(value) / float64(maxValue) * 100
	stepped := int(math.Round(pct/20)) * 20
	return min(100, max(20, stepped))
}

// StatusBar is a stepped life bar.
type StatusBar struct {
	Color    string
	X, Y     float64
	Width    float64
	Value    int
	MaxValue int

	// Frames maps a step to its sprite; missing frames draw as a plain bar
	Frames map[int]string
}

// NewStatusBar creates a full bar
func NewStatusBar(color string, x, y, width float64, maxValue int, frames map[int]string) *StatusBar {
	if width <= 0 {
		width = 200
	}
	b := &StatusBar{Color: color, X: x, Y: y, Width: width, Frames: frames}
	b.SetMaxValue(maxValue)
	b.SetValue(b.MaxValue)
	return b
}

// Height follows the artwork aspect
func (b *StatusBar) Height() float64 {
	return math.Floor(b.Width * BarAspect)
}

// SetMaxValue sets the maximum, floored at 1
func (b *StatusBar) SetMaxValue(v int) {
	b.MaxValue = max(1, v)
}

// SetValue sets the current value, floored at 0
func (b *StatusBar) SetValue(v int) {
	b.Value = max(0, v)
}

// Step returns the artwork step for the current value
func (b *StatusBar) Step() int {
	return ToStep(b.Value, b.MaxValue)
}

// Sprite returns the frame for the current step
func (b *StatusBar) Sprite() string {
	return b.Frames[b.Step()]
}

// Draw draws the sprite for the current step, or a plain bar with an hp
// readout when the sprite is not available.
func (b *StatusBar) Draw(s render.Surface) {
	h := b.Height()
	if sprite := b.Sprite(); sprite != "" && s.DrawImage(sprite, b.X, b.Y, b.Width, h, false) {
		return
	}

	const pad = 8
	ratio := math.Min(1, math.Max(0, float64(b.Value)/float64(b.MaxValue)))
	s.FillRect(b.X, b.Y, b.Width, h, render.BarBackground)
	s.StrokeRect(b.X, b.Y, b.Width, h, 3, render.BarBorder)
	innerW := math.Max(0, b.Width-pad*2)
	innerH := math.Max(0, h-pad*2)
	s.FillRect(b.X+pad, b.Y+pad, math.Floor(innerW*ratio), innerH, render.BarColor(b.Color))
	render.DrawTextCentered(s, fmt.Sprintf("%d / %d", b.Value, b.MaxValue), b.X+b.Width/2, b.Y+h/2, render.Text)
}

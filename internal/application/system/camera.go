package system

import (
	"math"

	"github.com/younwookim/sharkie/internal/domain/entity"
)

// edgeEpsilon is how close the offset must be to minOffset to count as the right edge.
const edgeEpsilon = 0.5

// Camera is a horizontal scroll offset clamped to the world bounds.
// The offset is subtracted from world x to get screen x, so it is <= 0
// once the view has scrolled right.
type Camera struct {
	offset       float64
	canvasWidth  float64
	worldLeft    float64
	worldRight   float64
	reachedRight bool
}

// NewCamera creates a camera at the left end of the world.
func NewCamera(canvasWidth, worldLeft, worldRight float64) *Camera {
	c := &Camera{
		canvasWidth: canvasWidth,
		worldLeft:   worldLeft,
		worldRight:  worldRight,
	}
	c.offset = c.MaxOffset()
	return c
}

// WorldBounds returns the horizontal extent of the given layers.
// With no layers the world is exactly one canvas wide.
func WorldBounds(canvasWidth float64, layers ...entity.Positioned) (left, right float64) {
	if len(layers) == 0 {
		return 0, canvasWidth
	}
	left, right = math.Inf(1), math.Inf(-1)
	for _, l := range layers {
		x, _ := l.Position()
		w, _ := l.Size()
		left = math.Min(left, x)
		right = math.Max(right, x+w)
	}
	return left, right
}

// MinOffset is the offset that shows the right end of the world.
func (c *Camera) MinOffset() float64 {
	return math.Min(-(c.worldRight - c.canvasWidth), c.MaxOffset())
}

// MaxOffset is the offset that shows the left end of the world.
func (c *Camera) MaxOffset() float64 {
	return -c.worldLeft
}

// Offset returns the current offset
func (c *Camera) Offset() float64 { return c.offset }

// SetOffset moves the camera, clamped to [MinOffset, MaxOffset].
// NaN is ignored.
func (c *Camera) SetOffset(v float64) {
	if math.IsNaN(v) {
		return
	}
	c.offset = entity.Clamp(v, c.MinOffset(), c.MaxOffset())
}

// Follow centers the view on a body of the given x and width.
func (c *Camera) Follow(x, width float64) {
	c.SetOffset(-(x + width/2 - c.canvasWidth/2))
}

// IsAtRightEdge reports whether the view shows the right end of the world.
func (c *Camera) IsAtRightEdge() bool {
	return math.Abs(c.offset-c.MinOffset()) < edgeEpsilon
}

// ArrivedAtRightEdge reports true exactly once, the first time the camera
// is found at the right edge.
func (c *Camera) ArrivedAtRightEdge() bool {
	if c.reachedRight || !c.IsAtRightEdge() {
		return false
	}
	c.reachedRight = true
	return true
}

// ViewBounds returns the visible world x range.
func (c *Camera) ViewBounds() (left, right float64) {
	return -c.offset, -c.offset + c.canvasWidth
}

// WorldBounds returns the world x range the camera is clamped to.
func (c *Camera) WorldBounds() (left, right float64) {
	return c.worldLeft, c.worldRight
}

// ToScreen converts a world x coordinate to a screen x coordinate.
func (c *Camera) ToScreen(x float64) float64 {
	return x + c.offset
}

package entity

import "math"

// Rect is an axis-aligned rectangle in world pixels.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Right returns the right edge
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the bottom edge
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Center returns the center point
func (r Rect) Center() (cx, cy float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Pad shrinks the rect by pad on every side. Negative pad grows it.
// Width and height never go below zero.
func (r Rect) Pad(pad float64) Rect {
	return Rect{
		X:      r.X + pad,
		Y:      r.Y + pad,
		Width:  math.Max(0, r.Width-2*pad),
		Height: math.Max(0, r.Height-2*pad),
	}
}

// Intersects reports a strict overlap. Touching edges do not count.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.Width &&
		r.X+r.Width > o.X &&
		r.Y < o.Y+o.Height &&
		r.Y+r.Height > o.Y
}

// Overlaps tests the padded hitboxes of two entities.
func Overlaps(a, b HitboxProvider, pad float64) bool {
	return a.Hitbox().Pad(pad).Intersects(b.Hitbox().Pad(pad))
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

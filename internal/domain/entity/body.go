package entity

// HitboxRect represents a hitbox relative to the entity origin
type HitboxRect struct {
	OffsetX float64
	OffsetY float64
	Width   float64
	Height  float64
}

// GetWorldRect returns the hitbox rect in world coordinates
func (hr HitboxRect) GetWorldRect(bodyX, bodyY float64, directionLeft bool, spriteWidth float64) Rect {
	offsetX := hr.OffsetX
	if directionLeft {
		// Mirror the offset so the box stays on the facing side
		offsetX = spriteWidth - hr.OffsetX - hr.Width
	}
	return Rect{X: bodyX + offsetX, Y: bodyY + hr.OffsetY, Width: hr.Width, Height: hr.Height}
}

// Body is the drawable/movable envelope shared by every entity.
// Height is derived from Width × AspectRatio when not set explicitly.
type Body struct {
	X, Y        float64
	Width       float64
	height      float64
	AspectRatio float64

	DirectionLeft bool
	// NoMirror keeps the hitbox unmirrored regardless of DirectionLeft
	NoMirror bool

	kind      Kind
	sprite    string
	hitbox    HitboxRect
	hasHitbox bool
}

// NewBody creates a body of the given kind.
func NewBody(kind Kind, x, y, width float64) Body {
	return Body{X: x, Y: y, Width: width, kind: kind}
}

// Kind returns the entity discriminator
func (b *Body) Kind() Kind { return b.kind }

// Height returns the explicit height, or width × aspect ratio.
func (b *Body) Height() float64 {
	if b.height > 0 {
		return b.height
	}
	if b.AspectRatio > 0 {
		return b.Width * b.AspectRatio
	}
	return b.Width
}

// SetHeight sets an explicit height
func (b *Body) SetHeight(h float64) { b.height = h }

// Position implements Positioned
func (b *Body) Position() (float64, float64) { return b.X, b.Y }

// Size implements Positioned
func (b *Body) Size() (float64, float64) { return b.Width, b.Height() }

// Bounds returns the sprite rectangle
func (b *Body) Bounds() Rect {
	return Rect{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height()}
}

// Sprite returns the current sprite reference
func (b *Body) Sprite() string { return b.sprite }

// SetSprite replaces the current sprite reference
func (b *Body) SetSprite(path string) { b.sprite = path }

// Mirrored reports whether rendering is flipped horizontally
func (b *Body) Mirrored() bool { return b.DirectionLeft }

// SetHitbox replaces the hitbox definition.
func (b *Body) SetHitbox(hb HitboxRect) {
	b.hitbox = hb
	b.hasHitbox = true
}

// HitboxDef returns the relative hitbox definition
func (b *Body) HitboxDef() HitboxRect {
	if !b.hasHitbox {
		return HitboxRect{Width: b.Width, Height: b.Height()}
	}
	return b.hitbox
}

// Hitbox returns the hitbox in world coordinates. Without an explicit
// hitbox the full sprite bounds are used.
func (b *Body) Hitbox() Rect {
	if !b.hasHitbox {
		return b.Bounds()
	}
	return b.hitbox.GetWorldRect(b.X, b.Y, b.DirectionLeft && !b.NoMirror, b.Width)
}

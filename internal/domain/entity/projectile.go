package entity

import (
	"errors"
	"math"
)

const (
	// BubbleWidth is the size of a bubble-trap projectile
	BubbleWidth = 42
	// BubbleSpeed is the horizontal speed per 60 Hz step
	BubbleSpeed = 8
	// BubbleTTLMs is how long a bubble lives
	BubbleTTLMs = 1200

	stepMs = 16.67
)

// Projectile is a straight-flying bubble.
type Projectile struct {
	Body
	VX      float64
	Damage  int
	TTLMs   float64
	AliveMs float64
}

// NewProjectile creates a projectile flying at vx px per 60 Hz step.
func NewProjectile(x, y, width, vx float64, damage int, ttlMs float64) *Projectile {
	p := &Projectile{
		Body:   NewBody(KindProjectile, x, y, width),
		VX:     vx,
		Damage: max(0, damage),
		TTLMs:  ttlMs,
	}
	p.AspectRatio = 1
	p.DirectionLeft = vx < 0
	return p
}

// Update moves the projectile and ages it.
func (p *Projectile) Update(dtMs float64) {
	if p.IsExpired() || dtMs <= 0 {
		return
	}
	p.X += p.VX * (dtMs / stepMs)
	p.AliveMs += dtMs
}

// IsExpired reports whether the ttl has elapsed
func (p *Projectile) IsExpired() bool {
	return p.AliveMs >= p.TTLMs
}

// Expire marks the projectile for removal
func (p *Projectile) Expire() {
	p.AliveMs = p.TTLMs
}

// ProjectileSource is anything the projectile manager can turn into a projectile.
type ProjectileSource interface {
	Build(playerLeft bool) (*Projectile, error)
}

// ErrMalformedProjectile is returned for sources that cannot produce a projectile.
var ErrMalformedProjectile = errors.New("malformed projectile source")

// Build adopts an existing projectile.
func (p *Projectile) Build(bool) (*Projectile, error) {
	if p == nil {
		return nil, ErrMalformedProjectile
	}
	return p, nil
}

// ProjectileSpawn requests a bubble at a position. A nil Left falls back
// to the player's facing direction.
type ProjectileSpawn struct {
	X, Y     float64
	Poisoned bool
	Left     *bool
	Sprite   string
}

// Build runs the bubble factory.
func (s ProjectileSpawn) Build(playerLeft bool) (*Projectile, error) {
	if !isFinite(s.X) || !isFinite(s.Y) {
		return nil, ErrMalformedProjectile
	}
	left := playerLeft
	if s.Left != nil {
		left = *s.Left
	}
	vx := float64(BubbleSpeed)
	if left {
		vx = -vx
	}
	damage := 1
	if s.Poisoned {
		damage = 2
	}
	p := NewProjectile(s.X, s.Y, BubbleWidth, vx, damage, BubbleTTLMs)
	inset := math.Floor(BubbleWidth * 0.2)
	p.SetHitbox(HitboxRect{
		OffsetX: inset,
		OffsetY: inset,
		Width:   math.Floor(BubbleWidth * 0.6),
		Height:  math.Floor(BubbleWidth * 0.6),
	})
	p.SetSprite(s.Sprite)
	return p, nil
}

// ProjectileConfig is a fully specified projectile. Invalid numbers fall
// back to the bubble factory at the same position.
type ProjectileConfig struct {
	X, Y   float64
	Width  float64
	VX     float64
	Damage int
	TTLMs  float64
	Sprite string
}

// Build validates the config.
func (c ProjectileConfig) Build(playerLeft bool) (*Projectile, error) {
	if !isFinite(c.VX) || !isFinite(c.TTLMs) || c.TTLMs <= 0 || c.Damage < 0 {
		return ProjectileSpawn{X: c.X, Y: c.Y, Sprite: c.Sprite}.Build(playerLeft)
	}
	if !isFinite(c.X) || !isFinite(c.Y) {
		return nil, ErrMalformedProjectile
	}
	w := c.Width
	if w <= 0 {
		w = BubbleWidth
	}
	p := NewProjectile(c.X, c.Y, w, c.VX, c.Damage, c.TTLMs)
	p.SetSprite(c.Sprite)
	return p, nil
}

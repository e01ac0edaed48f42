package entity

// EntityID is a unique identifier for an entity
type EntityID uint32

// Kind discriminates entity types sharing the Body envelope
type Kind int

const (
	KindDecoration Kind = iota
	KindPlayer
	KindEnemy
	KindBoss
	KindProjectile
	KindCollectible
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindDecoration:
		return "decoration"
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindBoss:
		return "boss"
	case KindProjectile:
		return "projectile"
	case KindCollectible:
		return "collectible"
	default:
		return "unknown"
	}
}

// Positioned is anything with a place and size in the world.
type Positioned interface {
	Position() (x, y float64)
	Size() (w, h float64)
}

// HitboxProvider exposes the rectangle used for collision tests.
type HitboxProvider interface {
	Hitbox() Rect
}

// Animated is anything driven by an Animator.
type Animated interface {
	Advance(dtMs float64)
	Freeze()
	Unfreeze()
}

// Renderable is what the render pass needs from an entity.
type Renderable interface {
	Positioned
	Kind() Kind
	Sprite() string
	Mirrored() bool
}

// Host is the player's narrow view of the world it lives in.
type Host interface {
	IsFrozen() bool
	IsPaused() bool
	Bounds() (left, right float64)
	CanvasHeight() float64
	FollowPlayer()
	AddProjectile(src ProjectileSource) bool
	ResolveFinSlap(reach Rect, damage int)
}

package entity

import "math"

// EnemyType selects movement and hitbox rules
type EnemyType string

const (
	EnemyPufferfish EnemyType = "pufferfish"
	EnemyJellyfish  EnemyType = "jellyfish"
	// EnemyBossTag marks boss-flavoured minions; they drift like pufferfish
	EnemyBossTag EnemyType = "boss"
)

// EnemyState is the enemy's animation state
type EnemyState int

const (
	EnemySwim EnemyState = iota
	EnemyHurt
	EnemyDead
)

// String returns the string representation of the state
func (s EnemyState) String() string {
	switch s {
	case EnemySwim:
		return "swim"
	case EnemyHurt:
		return "hurt"
	case EnemyDead:
		return "dead"
	default:
		return "unknown"
	}
}

const (
	// floatAwaySpeed is how far a dead enemy rises per tick
	floatAwaySpeed = 1.5
	// bloatThreshold is the hp fraction at which pufferfish puff up
	bloatThreshold = 0.5
)

// EnemySprites holds the enemy's frame sets
type EnemySprites struct {
	Swim FrameSet
	Hurt FrameSet
	Dead FrameSet
}

// Enemy is an autonomous fish.
type Enemy struct {
	Body
	Combat

	ID        EntityID
	EnemyType EnemyType

	// XSpeed and YSpeed are px per 60 Hz tick
	XSpeed float64
	YSpeed float64
	// movingRight is the horizontal patrol direction
	movingRight bool
	movingDown  bool

	ShouldRemove bool

	state    EnemyState
	sprites  EnemySprites
	anim     *Animator
	move     Ticker
	floating bool

	canvasHeight          float64
	worldLeft, worldRight float64
}

// NewEnemy creates a swimming enemy. Drivers stay off until Start.
func NewEnemy(id EntityID, enemyType EnemyType, x, y, width, aspectRatio float64, sprites EnemySprites, combat Combat) *Enemy {
	e := &Enemy{
		Body:         NewBody(KindEnemy, x, y, width),
		Combat:       combat,
		ID:           id,
		EnemyType:    enemyType,
		sprites:      sprites,
		anim:         NewAnimator(MinFrameDelayMs),
		canvasHeight: 480,
		worldLeft:    math.Inf(-1),
		worldRight:   math.Inf(1),
	}
	e.AspectRatio = aspectRatio
	e.anim.Play(sprites.Swim.Frames, sprites.Swim.FPS, true, nil)
	e.SetSprite(e.anim.Current())
	e.refreshHitbox()
	return e
}

// SetArena sets the bounds movement reverses at.
func (e *Enemy) SetArena(worldLeft, worldRight, canvasHeight float64) {
	e.worldLeft = worldLeft
	e.worldRight = worldRight
	e.canvasHeight = canvasHeight
}

// SetDirections sets the initial travel directions
func (e *Enemy) SetDirections(movingRight, movingDown bool) {
	e.movingRight = movingRight
	e.movingDown = movingDown
	e.faceTravel()
}

// State returns the current state
func (e *Enemy) State() EnemyState { return e.state }

// Animation exposes the animator for inspection
func (e *Enemy) Animation() *Animator { return e.anim }

// IsFloatingAway reports the post-death rise
func (e *Enemy) IsFloatingAway() bool { return e.floating }

// Start begins movement
func (e *Enemy) Start() {
	if e.state != EnemyDead || e.floating {
		e.move.Start()
	}
}

// Freeze suspends movement and animation
func (e *Enemy) Freeze() {
	e.move.Freeze()
	e.anim.Freeze()
}

// Unfreeze resumes movement and animation
func (e *Enemy) Unfreeze() {
	e.move.Unfreeze()
	e.anim.Unfreeze()
}

// Destroy stops every driver
func (e *Enemy) Destroy() {
	e.move.Stop()
	e.anim.Stop()
}

// Update advances drivers by dtMs of simulation time.
func (e *Enemy) Update(dtMs float64) {
	e.anim.Advance(dtMs)
	e.SetSprite(e.anim.Current())
	ticks := e.move.Advance(dtMs)
	for i := 0; i < ticks; i++ {
		e.tick()
	}
}

func (e *Enemy) tick() {
	if e.floating {
		e.Y -= floatAwaySpeed
		if e.Y+e.Height() < 0 {
			e.floating = false
			e.ShouldRemove = true
			e.move.Stop()
		}
		return
	}
	if e.state == EnemyDead {
		return
	}
	switch e.EnemyType {
	case EnemyJellyfish:
		e.bob()
	default:
		e.patrol()
	}
}

// patrol drifts horizontally and turns around at the world bounds.
func (e *Enemy) patrol() {
	if e.movingRight {
		e.X += e.XSpeed
		if e.X+e.Width >= e.worldRight {
			e.X = e.worldRight - e.Width
			e.movingRight = false
		}
	} else {
		e.X -= e.XSpeed
		if e.X <= e.worldLeft {
			e.X = e.worldLeft
			e.movingRight = true
		}
	}
	e.faceTravel()
}

// bob oscillates between the top of the canvas and its bottom.
func (e *Enemy) bob() {
	bottom := e.canvasHeight - e.Height()
	if e.movingDown {
		e.Y += e.YSpeed
		if e.Y >= bottom {
			e.Y = bottom
			e.movingDown = false
		}
	} else {
		e.Y -= e.YSpeed
		if e.Y <= 0 {
			e.Y = 0
			e.movingDown = true
		}
	}
}

// faceTravel mirrors left-facing art when swimming right.
func (e *Enemy) faceTravel() {
	if e.EnemyType != EnemyJellyfish {
		e.DirectionLeft = e.movingRight
	}
}

// IsBloated reports the low-health pufferfish form
func (e *Enemy) IsBloated() bool {
	return e.EnemyType == EnemyPufferfish && float64(e.HP) <= float64(e.MaxHP)*bloatThreshold
}

// TakeDamage reduces hp. Returns true when hp changed.
func (e *Enemy) TakeDamage(amount int) bool {
	if e.state == EnemyDead || !e.loseHP(amount) {
		return false
	}
	if e.IsDead() {
		e.die()
		return true
	}
	if e.IsBloated() && e.state == EnemySwim && len(e.sprites.Hurt.Frames) > 0 {
		e.state = EnemyHurt
		e.anim.Play(e.sprites.Hurt.Frames, e.sprites.Hurt.FPS, true, nil)
		e.SetSprite(e.anim.Current())
	}
	e.refreshHitbox()
	return true
}

func (e *Enemy) die() {
	e.state = EnemyDead
	e.move.Stop()
	done := func() {
		e.floating = true
		e.move.Start()
	}
	e.anim.Play(e.sprites.Dead.Frames, e.sprites.Dead.FPS, false, done)
	e.SetSprite(e.anim.Current())
	if len(e.sprites.Dead.Frames) == 0 {
		done()
	}
}

// refreshHitbox recomputes the type-specific hitbox.
func (e *Enemy) refreshHitbox() {
	w, h := e.Width, e.Height()
	switch {
	case e.EnemyType == EnemyJellyfish:
		e.SetHitbox(HitboxRect{
			OffsetX: math.Floor(w * 0.15),
			OffsetY: math.Floor(h * 0.08),
			Width:   math.Floor(w * 0.7),
			Height:  math.Floor(h * 0.85),
		})
	case e.IsBloated():
		e.SetHitbox(HitboxRect{
			OffsetX: math.Floor(w * 0.05),
			OffsetY: math.Floor(h * 0.05),
			Width:   math.Floor(w * 0.9),
			Height:  math.Floor(h * 0.9),
		})
	default:
		e.SetHitbox(HitboxRect{
			OffsetX: math.Floor(w * -0.01),
			OffsetY: math.Floor(h * 0.1),
			Width:   math.Floor(w * 0.9),
			Height:  math.Floor(h * 0.65),
		})
	}
}

// RefreshHitbox recomputes the hitbox after a size change
func (e *Enemy) RefreshHitbox() { e.refreshHitbox() }

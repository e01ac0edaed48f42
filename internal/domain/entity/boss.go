package entity

import "math"

// BossState is the boss encounter state
type BossState int

const (
	BossDormant BossState = iota
	BossIntroducing
	BossFloating
	BossAttacking
	BossHurt
	BossDead
)

// String returns the string representation of the state
func (s BossState) String() string {
	switch s {
	case BossDormant:
		return "dormant"
	case BossIntroducing:
		return "introducing"
	case BossFloating:
		return "floating"
	case BossAttacking:
		return "attacking"
	case BossHurt:
		return "hurt"
	case BossDead:
		return "dead"
	default:
		return "unknown"
	}
}

const (
	bossHurtCooldownMs   = 250
	bossAttackCooldownMs = 1000

	// chase speeds in px per 60 Hz step
	bossSpeedX = 4
	bossSpeedY = 3
	// bossDeadZone is the per-axis distance under which the boss holds still
	bossDeadZone = 2
	bossStepMs   = 16.6667

	// bossIntroVisible is the share of the boss placed left of the view edge
	bossIntroVisible = 0.8
)

// BossSprites holds the boss frame sets
type BossSprites struct {
	Introduce FrameSet
	Floating  FrameSet
	Attack    FrameSet
	Hurt      FrameSet
	Dead      FrameSet
}

// Boss is the whale at the end of the level.
type Boss struct {
	Body
	Combat

	state      BossState
	introduced bool
	sprites    BossSprites
	clock      Clock
	anim       *Animator
	hurtCD     cooldown
	attackCD   cooldown
}

// NewBoss creates a dormant boss.
func NewBoss(x, y, width, aspectRatio float64, sprites BossSprites, combat Combat, clock Clock) *Boss {
	b := &Boss{
		Body:     NewBody(KindBoss, x, y, width),
		Combat:   combat,
		sprites:  sprites,
		clock:    clock,
		anim:     NewAnimator(MinFrameDelayMs),
		hurtCD:   cooldown{periodMs: bossHurtCooldownMs},
		attackCD: cooldown{periodMs: bossAttackCooldownMs},
	}
	b.AspectRatio = aspectRatio
	w, h := b.Width, b.Height()
	b.SetHitbox(HitboxRect{
		OffsetX: math.Round(w * 0.04),
		OffsetY: math.Round(h * 0.30),
		Width:   math.Round(w * 0.92),
		Height:  math.Round(h * 0.55),
	})
	b.SetSprite(sprites.Introduce.First())
	return b
}

// State returns the current state
func (b *Boss) State() BossState { return b.state }

// IsIntroduced reports that the intro finished
func (b *Boss) IsIntroduced() bool { return b.introduced }

// Animation exposes the animator for inspection
func (b *Boss) Animation() *Animator { return b.anim }

// Freeze suspends animation
func (b *Boss) Freeze() { b.anim.Freeze() }

// Unfreeze resumes animation
func (b *Boss) Unfreeze() { b.anim.Unfreeze() }

// Destroy stops the animation driver
func (b *Boss) Destroy() { b.anim.Stop() }

// Update advances the animation by dtMs of simulation time.
func (b *Boss) Update(dtMs float64) {
	b.anim.Advance(dtMs)
	if cur := b.anim.Current(); cur != "" {
		b.SetSprite(cur)
	}
}

func (b *Boss) play(fs FrameSet, loop bool, onComplete func()) {
	b.anim.Play(fs.Frames, fs.FPS, loop, onComplete)
	if cur := b.anim.Current(); cur != "" {
		b.SetSprite(cur)
	}
	if len(fs.Frames) == 0 && !loop && onComplete != nil {
		onComplete()
	}
}

func (b *Boss) float() {
	b.state = BossFloating
	b.play(b.sprites.Floating, true, nil)
}

// AlignForIntro places the boss mostly inside the right edge of the view,
// vertically lined up with the player.
func (b *Boss) AlignForIntro(playerHitbox Rect, viewRight, canvasHeight float64) {
	_, cy := playerHitbox.Center()
	h := b.Height()
	b.X = viewRight - b.Width*bossIntroVisible
	b.Y = Clamp(cy-h/2, 0, math.Max(0, canvasHeight-h))
}

// PlayIntroduceOnce runs the intro animation. Only the first call starts it.
func (b *Boss) PlayIntroduceOnce(onComplete func()) bool {
	if b.state != BossDormant {
		return false
	}
	b.state = BossIntroducing
	b.play(b.sprites.Introduce, false, func() {
		b.introduced = true
		if b.state == BossIntroducing {
			b.float()
		}
		if onComplete != nil {
			onComplete()
		}
	})
	return true
}

// ChaseStep moves toward target by at most the capped speed for dtMs.
func (b *Boss) ChaseStep(target Rect, dtMs float64, worldLeft, worldRight, canvasHeight float64) {
	if b.IsDead() || !b.introduced || b.state == BossAttacking || dtMs <= 0 {
		return
	}
	scale := dtMs / bossStepMs
	tx, ty := target.Center()
	cx, cy := b.Hitbox().Center()
	dx, dy := tx-cx, ty-cy

	if math.Abs(dx) > bossDeadZone {
		b.X += math.Copysign(math.Min(bossSpeedX*scale, math.Abs(dx)), dx)
	}
	if math.Abs(dy) > bossDeadZone {
		b.Y += math.Copysign(math.Min(bossSpeedY*scale, math.Abs(dy)), dy)
	}
	// art faces left; mirror when the player is to the right
	b.DirectionLeft = dx > 0
	b.ClampWithin(worldLeft, worldRight, canvasHeight)
}

// ClampWithin keeps the hitbox inside the world and canvas.
func (b *Boss) ClampWithin(worldLeft, worldRight, canvasHeight float64) {
	hb := b.HitboxDef()
	offX := hb.OffsetX
	if b.DirectionLeft {
		offX = b.Width - hb.OffsetX - hb.Width
	}
	minX := worldLeft - offX
	maxX := worldRight - (offX + hb.Width)
	minY := -hb.OffsetY
	maxY := canvasHeight - (hb.OffsetY + hb.Height)
	b.X = Clamp(b.X, minX, math.Max(minX, maxX))
	b.Y = Clamp(b.Y, minY, math.Max(minY, maxY))
}

// TakeDamage reduces hp. Returns true when hp changed.
func (b *Boss) TakeDamage(amount int) bool {
	if b.state == BossDead || !b.loseHP(amount) {
		return false
	}
	if b.IsDead() {
		b.state = BossDead
		b.play(b.sprites.Dead, false, nil)
		return true
	}

	now := b.clock.NowMs()
	if !b.hurtCD.ready(now) {
		return true
	}
	// a hit during intro or attack still starts the cooldown
	b.hurtCD.mark(now)
	if b.state == BossIntroducing || b.state == BossAttacking {
		return true
	}
	b.state = BossHurt
	b.play(b.sprites.Hurt, false, func() {
		if b.state != BossHurt {
			return
		}
		if b.introduced {
			b.float()
		} else {
			b.state = BossDormant
		}
	})
	return true
}

// PlayAttackOnce runs the attack animation and calls onDone afterwards.
func (b *Boss) PlayAttackOnce(onDone func()) bool {
	if b.IsDead() || b.state == BossIntroducing || b.state == BossAttacking {
		return false
	}
	now := b.clock.NowMs()
	if !b.attackCD.ready(now) {
		return false
	}
	b.attackCD.mark(now)
	b.state = BossAttacking
	b.play(b.sprites.Attack, false, func() {
		if b.state == BossAttacking {
			b.float()
		}
		if onDone != nil {
			onDone()
		}
	})
	return true
}

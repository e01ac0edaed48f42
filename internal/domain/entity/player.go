package entity

// PlayerState is the player's animation/behaviour state
type PlayerState int

const (
	PlayerSwim PlayerState = iota
	PlayerIdle
	PlayerIdleLong
	PlayerHurt
	PlayerAttack
	PlayerDead
)

// String returns the string representation of the state
func (s PlayerState) String() string {
	switch s {
	case PlayerSwim:
		return "swim"
	case PlayerIdle:
		return "idle"
	case PlayerIdleLong:
		return "idleLong"
	case PlayerHurt:
		return "hurt"
	case PlayerAttack:
		return "attack"
	case PlayerDead:
		return "dead"
	default:
		return "unknown"
	}
}

// HurtVariant selects the hurt and death animation set
type HurtVariant int

const (
	HurtElectricShock HurtVariant = iota
	HurtPoisoned
)

// String returns the string representation of the variant
func (v HurtVariant) String() string {
	if v == HurtPoisoned {
		return "poisoned"
	}
	return "electric-shock"
}

// AttackVariant selects the attack animation set
type AttackVariant int

const (
	AttackFinSlap AttackVariant = iota
	AttackBubbleTrap
	AttackBubbleTrapPoisoned
	AttackBubbleTrapNoBubble
)

// String returns the string representation of the variant
func (v AttackVariant) String() string {
	switch v {
	case AttackFinSlap:
		return "fin-slap"
	case AttackBubbleTrap:
		return "bubble-trap"
	case AttackBubbleTrapPoisoned:
		return "bubble-trap-poisoned"
	case AttackBubbleTrapNoBubble:
		return "bubble-trap-no-bubble"
	default:
		return "unknown"
	}
}

// PlayerSprites holds every frame set the player animates through.
type PlayerSprites struct {
	Swim     FrameSet
	Idle     FrameSet
	IdleLong FrameSet
	Hurt     map[HurtVariant]FrameSet
	Dead     map[HurtVariant]FrameSet
	Attack   map[AttackVariant]FrameSet

	Bubble       string
	PoisonBubble string
}

// PlayerTuning holds the player's size and movement constants.
type PlayerTuning struct {
	Width       float64
	AspectRatio float64
	Hitbox      HitboxRect

	SpeedX float64 // px per 60 Hz tick
	SpeedY float64

	HurtCooldownMs   float64
	AttackCooldownMs float64

	MaxCoins         int
	MaxPoisonBottles int

	FinSlapReach float64
}

// DefaultPlayerTuning returns the stock shark.
func DefaultPlayerTuning() PlayerTuning {
	return PlayerTuning{
		Width:            250,
		AspectRatio:      815.0 / 1000.0,
		Hitbox:           HitboxRect{OffsetX: 40, OffsetY: 70, Width: 170, Height: 95},
		SpeedX:           8,
		SpeedY:           5,
		HurtCooldownMs:   1000,
		AttackCooldownMs: 500,
		MaxCoins:         999,
		MaxPoisonBottles: 5,
		FinSlapReach:     40,
	}
}

// Player is the input-driven shark.
type Player struct {
	Body
	Combat

	Coins         int
	PoisonBottles int

	tuning  PlayerTuning
	sprites PlayerSprites
	clock   Clock
	host    Host
	input   *Input

	state         PlayerState
	hurtVariant   HurtVariant
	attackVariant AttackVariant

	anim         *Animator
	move         Ticker
	hurtCD       cooldown
	attackCD     cooldown
	deadAnimDone bool
}

// NewPlayer creates a swimming player. Movement stays off until StartMovement.
func NewPlayer(x, y float64, tuning PlayerTuning, sprites PlayerSprites, combat Combat, clock Clock) *Player {
	p := &Player{
		Body:     NewBody(KindPlayer, x, y, tuning.Width),
		Combat:   combat,
		tuning:   tuning,
		sprites:  sprites,
		clock:    clock,
		anim:     NewAnimator(MinFrameDelayMs),
		hurtCD:   cooldown{periodMs: tuning.HurtCooldownMs},
		attackCD: cooldown{periodMs: tuning.AttackCooldownMs},
	}
	p.AspectRatio = tuning.AspectRatio
	p.SetHitbox(tuning.Hitbox)
	p.play(sprites.Swim, true, nil)
	return p
}

// Attach wires the world back reference and the input source.
func (p *Player) Attach(host Host, input *Input) {
	p.host = host
	p.input = input
}

// State returns the current state
func (p *Player) State() PlayerState { return p.state }

// HurtVariant returns the variant of the last hurt or death
func (p *Player) HurtVariant() HurtVariant { return p.hurtVariant }

// AttackVariant returns the variant of the last attack
func (p *Player) AttackVariant() AttackVariant { return p.attackVariant }

// IsDeadAnimationFinished reports that the one-shot death animation completed.
func (p *Player) IsDeadAnimationFinished() bool { return p.deadAnimDone }

// Animation exposes the animator for inspection
func (p *Player) Animation() *Animator { return p.anim }

// StartMovement enables the movement driver
func (p *Player) StartMovement() {
	if !p.IsDead() {
		p.move.Start()
	}
}

// Destroy stops every driver
func (p *Player) Destroy() {
	p.anim.Stop()
	p.move.Stop()
}

// Update advances the player's drivers by dtMs of simulation time.
func (p *Player) Update(dtMs float64) {
	if p.host != nil && p.host.IsPaused() {
		return
	}
	p.anim.Advance(dtMs)
	p.SetSprite(p.anim.Current())

	ticks := p.move.Advance(dtMs)
	for i := 0; i < ticks; i++ {
		p.tick()
	}
}

func (p *Player) tick() {
	if p.IsDead() || (p.host != nil && p.host.IsFrozen()) {
		return
	}
	var in Input
	if p.input != nil {
		in = *p.input
	}

	if !in.Any() {
		if p.state == PlayerSwim {
			p.setState(PlayerIdle)
		}
		return
	}
	if p.state == PlayerIdle || p.state == PlayerIdleLong {
		p.setState(PlayerSwim)
	}
	p.moveBy(in)
}

func (p *Player) moveBy(in Input) {
	var dx, dy float64
	if in.Right {
		dx += p.tuning.SpeedX
		p.DirectionLeft = false
	}
	if in.Left {
		dx -= p.tuning.SpeedX
		p.DirectionLeft = true
	}
	if in.Up {
		dy -= p.tuning.SpeedY
	}
	if in.Down {
		dy += p.tuning.SpeedY
	}
	p.X += dx
	p.Y += dy
	p.clampToWorld()

	if (in.Left || in.Right) && p.host != nil {
		p.host.FollowPlayer()
	}
}

// clampToWorld keeps the hitbox, not the sprite, inside the world.
func (p *Player) clampToWorld() {
	if p.host == nil {
		return
	}
	left, right := p.host.Bounds()
	bottom := p.host.CanvasHeight()

	hb := p.Hitbox()
	if hb.X < left {
		p.X += left - hb.X
	} else if hb.Right() > right {
		p.X -= hb.Right() - right
	}
	if hb.Y < 0 {
		p.Y -= hb.Y
	} else if hb.Bottom() > bottom {
		p.Y -= hb.Bottom() - bottom
	}
}

func (p *Player) setState(s PlayerState) {
	if p.state == s {
		return
	}
	p.state = s
	switch s {
	case PlayerSwim:
		p.play(p.sprites.Swim, true, nil)
	case PlayerIdle:
		p.play(p.sprites.Idle, false, func() {
			if p.state == PlayerIdle {
				p.setState(PlayerIdleLong)
			}
		})
	case PlayerIdleLong:
		p.play(p.sprites.IdleLong, true, nil)
	}
}

// play starts a run. An empty one-shot completes immediately so nothing
// waiting on it stalls.
func (p *Player) play(fs FrameSet, loop bool, onComplete func()) {
	p.anim.Play(fs.Frames, fs.FPS, loop, onComplete)
	p.SetSprite(p.anim.Current())
	if len(fs.Frames) == 0 && !loop && onComplete != nil {
		onComplete()
	}
}

// TakeDamage applies a hit. Returns true when hp actually changed.
func (p *Player) TakeDamage(amount int, variant HurtVariant) bool {
	if p.IsDead() || p.state == PlayerDead || amount <= 0 || p.state == PlayerHurt {
		return false
	}
	now := p.clock.NowMs()
	if !p.hurtCD.ready(now) {
		return false
	}
	if !p.loseHP(amount) {
		return false
	}
	p.hurtCD.mark(now)

	if p.IsDead() {
		p.die(variant)
	} else {
		p.hurt(variant)
	}
	return true
}

func (p *Player) hurt(variant HurtVariant) {
	p.state = PlayerHurt
	p.hurtVariant = variant
	p.play(p.sprites.Hurt[variant], false, func() {
		if p.state == PlayerHurt {
			p.setState(PlayerSwim)
		}
	})
}

func (p *Player) die(variant HurtVariant) {
	p.state = PlayerDead
	p.hurtVariant = variant
	p.move.Stop()

	frames, ok := p.sprites.Dead[variant]
	if !ok {
		frames = p.sprites.Dead[HurtElectricShock]
	}
	p.play(frames, false, func() {
		p.deadAnimDone = true
	})
}

func (p *Player) canAttack() bool {
	if p.host != nil && (p.host.IsFrozen() || p.host.IsPaused()) {
		return false
	}
	if p.IsDead() {
		return false
	}
	switch p.state {
	case PlayerHurt, PlayerAttack, PlayerDead:
		return false
	}
	return p.attackCD.ready(p.clock.NowMs())
}

// AttackFinSlap starts a melee attack. The hit resolves when the
// animation completes.
func (p *Player) AttackFinSlap() bool {
	if !p.canAttack() {
		return false
	}
	p.startAttack(AttackFinSlap, p.resolveFinSlap)
	return true
}

// AttackBubbleTrap starts a bubble attack. A poisoned attack without
// bottles plays the no-bubble animation and spawns nothing.
func (p *Player) AttackBubbleTrap(poisoned bool) bool {
	if !p.canAttack() {
		return false
	}
	switch {
	case poisoned && p.PoisonBottles <= 0:
		p.startAttack(AttackBubbleTrapNoBubble, nil)
	case poisoned:
		p.startAttack(AttackBubbleTrapPoisoned, func() { p.spawnBubble(true) })
	default:
		p.startAttack(AttackBubbleTrap, func() { p.spawnBubble(false) })
	}
	return true
}

func (p *Player) startAttack(variant AttackVariant, resolve func()) {
	p.attackCD.mark(p.clock.NowMs())
	p.state = PlayerAttack
	p.attackVariant = variant
	p.play(p.sprites.Attack[variant], false, func() {
		// a hurt or death replaced the attack
		if p.state != PlayerAttack {
			return
		}
		if resolve != nil {
			resolve()
		}
		p.setState(PlayerSwim)
	})
}

// BubbleOrigin returns where a bubble spawns: just past the facing hitbox edge.
func (p *Player) BubbleOrigin() (x, y float64) {
	hb := p.Hitbox()
	y = hb.Y + hb.Height/2 - BubbleWidth/2
	if p.DirectionLeft {
		return hb.X - BubbleWidth, y
	}
	return hb.Right(), y
}

func (p *Player) spawnBubble(poisoned bool) {
	if p.host == nil {
		return
	}
	x, y := p.BubbleOrigin()
	left := p.DirectionLeft
	sprite := p.sprites.Bubble
	if poisoned {
		sprite = p.sprites.PoisonBubble
	}
	spawned := p.host.AddProjectile(ProjectileSpawn{X: x, Y: y, Poisoned: poisoned, Left: &left, Sprite: sprite})
	if spawned && poisoned {
		p.PoisonBottles = max(0, p.PoisonBottles-1)
	}
}

// FinSlapReach returns the strike area in front of the hitbox.
func (p *Player) FinSlapReach() Rect {
	hb := p.Hitbox()
	reach := p.tuning.FinSlapReach
	if p.DirectionLeft {
		return Rect{X: hb.X - reach, Y: hb.Y, Width: reach, Height: hb.Height}
	}
	return Rect{X: hb.Right(), Y: hb.Y, Width: reach, Height: hb.Height}
}

func (p *Player) resolveFinSlap() {
	if p.host != nil {
		p.host.ResolveFinSlap(p.FinSlapReach(), p.Damage)
	}
}

// AddCoins adds coins, clamped to [0, MaxCoins].
func (p *Player) AddCoins(amount int) {
	p.Coins = addClamped(p.Coins, amount, p.tuning.MaxCoins)
}

// AddPoisonBottles adds bottles, clamped to [0, MaxPoisonBottles].
func (p *Player) AddPoisonBottles(amount int) {
	p.PoisonBottles = addClamped(p.PoisonBottles, amount, p.tuning.MaxPoisonBottles)
}

// MaxCoins returns the coin cap
func (p *Player) MaxCoins() int { return p.tuning.MaxCoins }

// MaxPoisonBottles returns the bottle cap
func (p *Player) MaxPoisonBottles() int { return p.tuning.MaxPoisonBottles }

func addClamped(current, amount, limit int) int {
	amount = max(0, amount)
	return min(limit, max(0, current)+amount)
}

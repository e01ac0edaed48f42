package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBossSprites() BossSprites {
	return BossSprites{
		Introduce: FrameSet{Frames: frames(10), FPS: 10},
		Floating:  FrameSet{Frames: frames(13), FPS: 8},
		Attack:    FrameSet{Frames: frames(6), FPS: 10},
		Hurt:      FrameSet{Frames: frames(4), FPS: 10},
		Dead:      FrameSet{Frames: frames(6), FPS: 8},
	}
}

func newTestBoss(hp int) (*Boss, *SimClock) {
	clock := &SimClock{}
	b := NewBoss(2000, 0, 450, 1041.0/1216.0, testBossSprites(), NewCombat(hp, 2), clock)
	return b, clock
}

func introduce(t *testing.T, b *Boss) {
	t.Helper()
	require.True(t, b.PlayIntroduceOnce(nil))
	b.Update(1000)
	require.Equal(t, BossFloating, b.State())
}

func TestNewBoss(t *testing.T) {
	b, _ := newTestBoss(20)

	assert.Equal(t, BossDormant, b.State())
	assert.Equal(t, KindBoss, b.Kind())
	h := b.Height()
	assert.Equal(t, HitboxRect{OffsetX: 18, OffsetY: float64(int(h*0.30 + 0.5)), Width: 414, Height: float64(int(h*0.55 + 0.5))}, b.HitboxDef())
}

func TestBoss_IntroduceOnlyOnce(t *testing.T) {
	b, _ := newTestBoss(20)
	calls := 0

	require.True(t, b.PlayIntroduceOnce(func() { calls++ }))
	assert.Equal(t, BossIntroducing, b.State())
	assert.False(t, b.PlayIntroduceOnce(func() { calls++ }))

	b.Update(1000)
	assert.Equal(t, 1, calls)
	assert.True(t, b.IsIntroduced())
	assert.Equal(t, BossFloating, b.State())
}

func TestBoss_SingleLethalHit(t *testing.T) {
	b, clock := newTestBoss(10)
	introduce(t, b)

	require.True(t, b.TakeDamage(10))
	assert.Equal(t, 0, b.HP)
	assert.True(t, b.IsDead())
	assert.Equal(t, BossDead, b.State())

	clock.Set(5000)
	assert.False(t, b.TakeDamage(5))
	assert.Equal(t, 0, b.HP)
	assert.Equal(t, BossDead, b.State())
	assert.False(t, b.PlayAttackOnce(nil), "dead bosses never attack")
}

func TestBoss_HurtCooldown(t *testing.T) {
	b, clock := newTestBoss(20)
	introduce(t, b)

	require.True(t, b.TakeDamage(1))
	assert.Equal(t, BossHurt, b.State())
	b.Update(400)
	assert.Equal(t, BossFloating, b.State())

	clock.Set(100)
	require.True(t, b.TakeDamage(1), "hp still drops inside the cooldown")
	assert.Equal(t, 18, b.HP)
	assert.Equal(t, BossFloating, b.State(), "no hurt animation inside the cooldown")

	clock.Set(300)
	b.TakeDamage(1)
	assert.Equal(t, BossHurt, b.State())
}

func TestBoss_NoHurtWhileIntroducing(t *testing.T) {
	b, _ := newTestBoss(20)
	require.True(t, b.PlayIntroduceOnce(nil))

	require.True(t, b.TakeDamage(1))
	assert.Equal(t, 19, b.HP)
	assert.Equal(t, BossIntroducing, b.State())
}

func TestBoss_PlayAttackOnce(t *testing.T) {
	b, clock := newTestBoss(20)
	introduce(t, b)
	done := 0

	require.True(t, b.PlayAttackOnce(func() { done++ }))
	assert.Equal(t, BossAttacking, b.State())
	assert.False(t, b.PlayAttackOnce(nil), "already attacking")

	b.Update(600)
	assert.Equal(t, 1, done)
	assert.Equal(t, BossFloating, b.State())

	assert.False(t, b.PlayAttackOnce(nil), "inside attack cooldown")
	clock.Set(1000)
	assert.True(t, b.PlayAttackOnce(nil))
}

func TestBoss_HoldsStillWhileAttacking(t *testing.T) {
	b, clock := newTestBoss(20)
	introduce(t, b)
	clock.Add(2000)
	require.True(t, b.PlayAttackOnce(nil))

	x, y := b.X, b.Y
	b.ChaseStep(Rect{Width: 10, Height: 10}, 1000.0/60, -10000, 10000, 480)
	assert.Equal(t, x, b.X)
	assert.Equal(t, y, b.Y)

	b.Update(600)
	require.Equal(t, BossFloating, b.State())
	b.ChaseStep(Rect{Width: 10, Height: 10}, 1000.0/60, -10000, 10000, 480)
	assert.Less(t, b.X, x, "chases again once the attack ends")
}

func TestBoss_HitDuringAttackStartsHurtCooldown(t *testing.T) {
	b, clock := newTestBoss(20)
	introduce(t, b)
	clock.Set(2000)
	require.True(t, b.PlayAttackOnce(nil))

	require.True(t, b.TakeDamage(1))
	assert.Equal(t, BossAttacking, b.State())

	b.Update(600)
	require.Equal(t, BossFloating, b.State())
	clock.Set(2100)
	require.True(t, b.TakeDamage(1))
	assert.Equal(t, BossFloating, b.State(), "cooldown started by the hit during the attack")

	clock.Set(2300)
	b.TakeDamage(1)
	assert.Equal(t, BossHurt, b.State())
}

func TestBoss_AlignForIntro(t *testing.T) {
	b, _ := newTestBoss(20)
	player := Rect{X: 1500, Y: 200, Width: 170, Height: 95}

	b.AlignForIntro(player, 2160, 480)
	assert.InDelta(t, 1800, b.X, 0.001)
	assert.InDelta(t, 247.5-b.Height()/2, b.Y, 0.001)

	b.AlignForIntro(Rect{Y: -500}, 2160, 480)
	assert.Equal(t, 0.0, b.Y, "clamped to the canvas")
}

func TestBoss_ChaseStep(t *testing.T) {
	b, _ := newTestBoss(20)
	introduce(t, b)
	b.X, b.Y = 1000, 100
	_, cy := b.Hitbox().Center()
	target := Rect{X: 200, Y: cy - 10, Width: 20, Height: 20}

	b.ChaseStep(target, 16.6667, -1000, 5000, 1000)
	assert.InDelta(t, 996, b.X, 0.001)
	assert.Equal(t, 100.0, b.Y, "vertical delta inside the dead zone")
	assert.False(t, b.DirectionLeft, "player is to the left")

	b.ChaseStep(target, 33.3334, -1000, 5000, 1000)
	assert.InDelta(t, 988, b.X, 0.001, "speed scales with dt")
}

func TestBoss_ChaseDoesNotOvershoot(t *testing.T) {
	b, _ := newTestBoss(20)
	introduce(t, b)
	b.X, b.Y = 0, 0
	cx, cy := b.Hitbox().Center()
	target := Rect{X: cx + 3 - 1, Y: cy + 1.5 - 1, Width: 2, Height: 2}

	b.ChaseStep(target, 100, -1000, 5000, 1000)
	gotX, _ := b.Hitbox().Center()
	assert.InDelta(t, cx+3, gotX, 0.001)
	assert.True(t, b.DirectionLeft, "player is to the right")
}

func TestBoss_ChaseRequiresIntro(t *testing.T) {
	b, _ := newTestBoss(20)
	b.ChaseStep(Rect{X: 0, Y: 0, Width: 10, Height: 10}, 16.6667, 0, 5000, 480)
	assert.Equal(t, 2000.0, b.X)
}

func TestBoss_ClampWithin(t *testing.T) {
	b, _ := newTestBoss(20)
	hb := b.HitboxDef()

	b.X, b.Y = -500, -500
	b.ClampWithin(0, 2000, 480)
	assert.Equal(t, 0.0, b.Hitbox().X)
	assert.Equal(t, 0.0, b.Hitbox().Y)

	b.X, b.Y = 5000, 5000
	b.ClampWithin(0, 2000, 480)
	assert.Equal(t, 2000.0, b.Hitbox().Right())
	assert.Equal(t, 480.0, b.Y+hb.OffsetY+hb.Height)
}

func TestBoss_FreezeHoldsAnimation(t *testing.T) {
	b, _ := newTestBoss(20)
	require.True(t, b.PlayIntroduceOnce(nil))
	b.Update(300)
	idx := b.Animation().Index()

	b.Freeze()
	b.Update(5000)
	assert.Equal(t, idx, b.Animation().Index())
	assert.Equal(t, BossIntroducing, b.State())

	b.Unfreeze()
	b.Update(100)
	assert.Equal(t, idx+1, b.Animation().Index())
}

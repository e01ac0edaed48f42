package hud

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/sharkie/internal/application/render/rendertest"
	"github.com/younwookim/sharkie/internal/domain/entity"
)

func TestToStep(t *testing.T) {
	tests := []struct {
		value, max int
		want       int
	}{
		{0, 20, 0},
		{-3, 20, 0},
		{5, 0, 0},
		{1, 20, 20},
		{3, 20, 20},
		{5, 20, 20},
		{7, 20, 40},
		{10, 20, 60},
		{15, 20, 80},
		{19, 20, 100},
		{20, 20, 100},
		{40, 20, 100},
	}
	for _, tt := range tests {
		got := ToStep(tt.value, tt.max)
		assert.Equal(t, tt.want, got, "ToStep(%d, %d)", tt.value, tt.max)
		assert.Contains(t, Steps, got)
	}
}

func TestStatusBar_Clamps(t *testing.T) {
	b := NewStatusBar("purple", 0, 0, 250, 0, nil)
	assert.Equal(t, 1, b.MaxValue)
	assert.Equal(t, 1, b.Value)
	assert.Equal(t, 66.0, b.Height())

	b.SetValue(-5)
	assert.Equal(t, 0, b.Value)
	assert.Equal(t, 0, b.Step())
}

func TestStatusBar_DrawsStepSprite(t *testing.T) {
	frames := map[int]string{0: "bar-00.png", 20: "bar-20.png", 40: "bar-40.png", 60: "bar-60.png", 80: "bar-80.png", 100: "bar-100.png"}
	b := NewStatusBar("purple", 20, 20, 250, 20, frames)
	b.SetValue(10)
	s := rendertest.NewRecorder(720, 480)

	b.Draw(s)
	assert.Equal(t, []string{"bar-60.png"}, s.Images())
}

func TestStatusBar_FallbackBar(t *testing.T) {
	b := NewStatusBar("orange", 150, 350, 420, 20, nil)
	b.SetValue(5)
	s := rendertest.NewRecorder(720, 480)

	b.Draw(s)
	assert.Empty(t, s.Images())
	assert.Equal(t, 2, s.Count("fill"))
	assert.Equal(t, 1, s.Count("stroke"))
	assert.True(t, s.HasText("5 / 20"))
	assert.Equal(t, float64(int((420-16)*0.25)), s.Ops[2].W)
}

func TestCounter_Animation(t *testing.T) {
	c := NewCounter(CounterPoison, 0, 0, 0, entity.FrameSet{Frames: []string{"p1", "p2", "p3"}, FPS: 60})
	assert.Equal(t, float64(DefaultIconSize), c.Width)
	assert.Equal(t, 40.0, c.Animation().DelayMs())

	c.Update(40)
	assert.Equal(t, 1, c.Animation().Index())

	c.Freeze()
	c.Update(400)
	assert.Equal(t, 1, c.Animation().Index())
	c.Unfreeze()
	c.Update(40)
	assert.Equal(t, 2, c.Animation().Index())
}

func TestCounter_SingleFrameIsStatic(t *testing.T) {
	c := NewCounter(CounterCoin, 0, 0, 42, entity.FrameSet{Frames: []string{"coin"}})
	assert.False(t, c.Animation().Running())

	c.SetValue(-2)
	assert.Equal(t, 0, c.Value)

	s := rendertest.NewRecorder(720, 480)
	c.Draw(s)
	assert.Equal(t, []string{"coin"}, s.Images())
	assert.True(t, s.HasText("x 0"))
}

func newHudPlayer() *entity.Player {
	return entity.NewPlayer(0, 0, entity.DefaultPlayerTuning(), entity.PlayerSprites{}, entity.NewCombat(20, 1), &entity.SimClock{})
}

func TestPlayerHud_LayoutAndSync(t *testing.T) {
	p := newHudPlayer()
	h := NewPlayerHud(p, nil, entity.FrameSet{}, entity.FrameSet{})

	require.Len(t, h.Counters, 2)
	assert.Equal(t, 282.0, h.Counters[0].X)
	assert.Equal(t, 444.0, h.Counters[1].X)
	assert.Equal(t, 32.0, h.Counters[0].Y)

	p.TakeDamage(5, entity.HurtPoisoned)
	p.AddCoins(3)
	p.AddPoisonBottles(2)
	h.Sync(p)

	assert.Equal(t, 15, h.Bars[0].Value)
	assert.Equal(t, 2, h.Counters[0].Value)
	assert.Equal(t, 3, h.Counters[1].Value)
}

func TestBossHud(t *testing.T) {
	boss := entity.NewBoss(0, 0, 450, 1041.0/1216.0, entity.BossSprites{}, entity.NewCombat(20, 4), &entity.SimClock{})
	h := NewBossHud(boss, 720, 480, nil)
	s := rendertest.NewRecorder(720, 480)

	h.Draw(s, false)
	assert.Empty(t, s.Ops)
	assert.Nil(t, h.Bar())

	h.Draw(s, true)
	require.NotNil(t, h.Bar())
	assert.Equal(t, 150.0, h.Bar().X)
	assert.Equal(t, 480-111-18.0, h.Bar().Y)
	assert.True(t, s.HasText(DefaultBossName))

	boss.TakeDamage(5)
	h.Sync(false)
	assert.Equal(t, 20, h.Bar().Value, "hidden boss is not synced")
	h.Sync(true)
	assert.Equal(t, 15, h.Bar().Value)
}

func TestDrawEndScreen(t *testing.T) {
	s := rendertest.NewRecorder(720, 480)

	DrawEndScreen(s, EndNone)
	assert.Empty(t, s.Ops)

	DrawEndScreen(s, EndWin)
	assert.True(t, s.HasText(WinTitle))
	assert.True(t, s.HasText(RestartHint))

	s.Reset()
	DrawEndScreen(s, EndLose)
	assert.True(t, s.HasText(LoseTitle))
	assert.False(t, s.HasText(WinTitle))
}

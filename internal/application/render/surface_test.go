package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"

	"github.com/younwookim/sharkie/internal/application/render"
	"github.com/younwookim/sharkie/internal/application/render/rendertest"
	"github.com/younwookim/sharkie/internal/domain/entity"
)

func TestDrawEntity_AppliesOffsetAndMirror(t *testing.T) {
	s := rendertest.NewRecorder(720, 480)
	d := entity.NewDecoration("bg/water.png", 100, 0, 720, 480)
	d.DirectionLeft = true

	render.DrawEntity(s, d, -50, render.Options{})

	require.Len(t, s.Ops, 1)
	op := s.Ops[0]
	assert.Equal(t, "bg/water.png", op.Path)
	assert.Equal(t, 50.0, op.X)
	assert.True(t, op.Flip)
}

func TestDrawEntity_MissingSprite(t *testing.T) {
	s := rendertest.NewRecorder(720, 480)
	s.Missing["coin.png"] = true
	coin := entity.NewCollectible(entity.CollectibleCoin, 10, 20, 40, 1, entity.FrameSet{Frames: []string{"coin.png"}, FPS: 8})

	render.DrawEntity(s, coin, 0, render.Options{})
	assert.Empty(t, s.Ops, "skipped for this frame")

	render.DrawEntity(s, coin, 0, render.Options{Placeholders: true})
	require.Len(t, s.Ops, 1)
	assert.Equal(t, "fill", s.Ops[0].Kind)
	assert.Equal(t, render.KindColor(entity.KindCollectible), s.Ops[0].Color)
}

func TestDrawEntity_ZeroSizeSkipped(t *testing.T) {
	s := rendertest.NewRecorder(720, 480)
	render.DrawEntity(s, entity.NewDecoration("x.png", 0, 0, 0, 0), 0, render.Options{Placeholders: true})
	assert.Empty(t, s.Ops)
}

func TestDrawHitbox(t *testing.T) {
	s := rendertest.NewRecorder(720, 480)
	render.DrawHitbox(s, entity.Rect{X: 10, Y: 5, Width: 20, Height: 30}, 100, true)
	require.Len(t, s.Ops, 1)
	assert.Equal(t, 110.0, s.Ops[0].X)
	assert.Equal(t, render.HitboxColliding, s.Ops[0].Color)
}

func TestDrawTextCentered(t *testing.T) {
	s := rendertest.NewRecorder(720, 480)
	render.DrawTextCentered(s, "YOU WIN", 360, 216, colornames.White)
	require.Len(t, s.Ops, 1)
	assert.Equal(t, 360-7*3.0, s.Ops[0].X)
	assert.Equal(t, 208.0, s.Ops[0].Y)
}

func TestKindColor(t *testing.T) {
	assert.Equal(t, colornames.Gold, render.KindColor(entity.KindCollectible))
	assert.Equal(t, colornames.Magenta, render.KindColor(entity.Kind(42)))
	assert.Equal(t, colornames.Darkorange, render.BarColor("orange"))
	assert.Equal(t, render.BossBarFill, render.BarColor("teal"))
}

package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type countingCollector struct {
	coins, poison int
}

func (c *countingCollector) AddCoins(n int)         { c.coins += n }
func (c *countingCollector) AddPoisonBottles(n int) { c.poison += n }

func TestCollectible_CollectOnce(t *testing.T) {
	coin := NewCollectible(CollectibleCoin, 0, 0, 40, 0, FrameSet{Frames: frames(4), FPS: 8})
	c := &countingCollector{}

	assert.Equal(t, 1, coin.Value, "value defaults to 1")
	assert.True(t, coin.CollectFor(c))
	assert.False(t, coin.CollectFor(c), "second overlap is ignored")
	assert.True(t, coin.IsCollected)
	assert.Equal(t, 1, c.coins)
	assert.Equal(t, 0, c.poison)
}

func TestCollectible_PoisonEffect(t *testing.T) {
	bottle := NewCollectible(CollectiblePoison, 0, 0, 45, 2, FrameSet{Frames: frames(8), FPS: 10})
	c := &countingCollector{}

	bottle.CollectFor(c)
	assert.Equal(t, 2, c.poison)
}

func TestCollectible_HitboxIsFullBoundsAndUnmirrored(t *testing.T) {
	coin := NewCollectible(CollectibleCoin, 100, 50, 40, 1, FrameSet{})
	coin.DirectionLeft = true

	assert.Equal(t, Rect{X: 100, Y: 50, Width: 40, Height: 40}, coin.Hitbox())
}

func TestCollectible_AnimationFloorIs40ms(t *testing.T) {
	coin := NewCollectible(CollectibleCoin, 0, 0, 40, 1, FrameSet{Frames: frames(4), FPS: 60})

	coin.Update(39)
	assert.Equal(t, 0, coin.anim.Index())
	coin.Update(1)
	assert.Equal(t, 1, coin.anim.Index())

	coin.Freeze()
	coin.Update(400)
	assert.Equal(t, 1, coin.anim.Index())
}

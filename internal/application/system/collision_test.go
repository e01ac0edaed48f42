package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/sharkie/internal/domain/entity"
)

func TestCollisionManager_ContinuousEnemyContact(t *testing.T) {
	player, clock := newTestPlayer(0, 0)
	touching := newTestEnemy(1, 100, 80, 5)
	far := newTestEnemy(2, 1000, 0, 5)
	m := NewCollisionManager(DefaultCollisionPadding, clock)

	var got []entity.EntityID
	m.OnEnemy = func(e *entity.Enemy) { got = append(got, e.ID) }

	m.Update(player, []*entity.Enemy{touching, far}, nil, false)
	m.Update(player, []*entity.Enemy{touching, far}, nil, false)

	assert.Equal(t, []entity.EntityID{1, 1}, got, "fires every frame the overlap holds")
	assert.True(t, m.IsCollidingWithEnemy(touching))
	assert.False(t, m.IsCollidingWithEnemy(far))
	assert.True(t, m.HasAnyCollision())
}

func TestCollisionManager_PaddingShrinksHitboxes(t *testing.T) {
	player, clock := newTestPlayer(0, 0)
	// raw hitboxes overlap by 10 px; padded ones do not
	grazing := newTestEnemy(1, 201, 80, 5)
	m := NewCollisionManager(DefaultCollisionPadding, clock)

	require.True(t, player.Hitbox().Intersects(grazing.Hitbox()))
	m.Update(player, []*entity.Enemy{grazing}, nil, false)
	assert.False(t, m.HasAnyCollision())

	m.Padding = 0
	m.Update(player, []*entity.Enemy{grazing}, nil, false)
	assert.True(t, m.HasAnyCollision())
}

func TestCollisionManager_DeadPlayerClears(t *testing.T) {
	player, clock := newTestPlayer(0, 0)
	enemy := newTestEnemy(1, 100, 80, 5)
	m := NewCollisionManager(DefaultCollisionPadding, clock)
	calls := 0
	m.OnEnemy = func(*entity.Enemy) { calls++ }

	m.Update(player, []*entity.Enemy{enemy}, nil, false)
	require.True(t, m.HasAnyCollision())

	player.TakeDamage(100, entity.HurtElectricShock)
	m.Update(player, []*entity.Enemy{enemy}, nil, false)
	assert.False(t, m.HasAnyCollision())
	assert.Equal(t, 1, calls)
}

func TestCollisionManager_SkipsDeadEnemies(t *testing.T) {
	player, clock := newTestPlayer(0, 0)
	enemy := newTestEnemy(1, 100, 80, 1)
	enemy.TakeDamage(1)
	m := NewCollisionManager(DefaultCollisionPadding, clock)

	m.Update(player, []*entity.Enemy{enemy}, nil, false)
	assert.False(t, m.IsCollidingWithEnemy(enemy))
}

func TestCollisionManager_BossSuppression(t *testing.T) {
	player, clock := newTestPlayer(0, 0)
	boss := newTestBoss(0, -100, 10, clock)
	m := NewCollisionManager(DefaultCollisionPadding, clock)
	calls := 0
	m.OnBoss = func(*entity.Boss) { calls++ }

	m.Update(player, nil, boss, false)
	assert.False(t, m.IsCollidingWithBoss(), "not visible")

	m.StartGrace(DefaultBossGraceMs)
	m.Update(player, nil, boss, true)
	assert.True(t, m.InGrace())
	assert.False(t, m.IsCollidingWithBoss(), "inside grace")

	clock.Set(DefaultBossGraceMs)
	m.Update(player, nil, boss, true)
	assert.True(t, m.IsCollidingWithBoss())
	assert.Equal(t, 1, calls)

	boss.TakeDamage(10)
	m.Update(player, nil, boss, true)
	assert.False(t, m.IsCollidingWithBoss(), "dead boss")
}

func TestCollisionManager_StopsWhenCallbackKillsPlayer(t *testing.T) {
	player, clock := newTestPlayer(0, 0)
	a := newTestEnemy(1, 100, 80, 5)
	b := newTestEnemy(2, 110, 80, 5)
	m := NewCollisionManager(DefaultCollisionPadding, clock)
	calls := 0
	m.OnEnemy = func(*entity.Enemy) {
		calls++
		player.TakeDamage(100, entity.HurtPoisoned)
	}

	m.Update(player, []*entity.Enemy{a, b}, nil, false)
	assert.Equal(t, 1, calls)
}

package system

import "github.com/younwookim/sharkie/internal/domain/entity"

// newTestPlayer creates a player at (x, y). Its hitbox spans
// x+40..x+210 horizontally and y+70..y+165 vertically.
func newTestPlayer(x, y float64) (*entity.Player, *entity.SimClock) {
	clock := &entity.SimClock{}
	p := entity.NewPlayer(x, y, entity.DefaultPlayerTuning(), entity.PlayerSprites{}, entity.NewCombat(20, 1), clock)
	return p, clock
}

// newTestEnemy creates a 100x100 pufferfish. Its hitbox spans
// x-1..x+89 horizontally and y+10..y+75 vertically.
func newTestEnemy(id entity.EntityID, x, y float64, hp int) *entity.Enemy {
	return entity.NewEnemy(id, entity.EnemyPufferfish, x, y, 100, 1, entity.EnemySprites{}, entity.NewCombat(hp, 1))
}

// newTestBoss creates a boss at (x, y). Its hitbox spans
// x+18..x+432 horizontally and y+116..y+328 vertically.
func newTestBoss(x, y float64, hp int, clock entity.Clock) *entity.Boss {
	return entity.NewBoss(x, y, 450, 1041.0/1216.0, entity.BossSprites{}, entity.NewCombat(hp, 2), clock)
}

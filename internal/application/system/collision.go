package system

import "github.com/younwookim/sharkie/internal/domain/entity"

const (
	// DefaultCollisionPadding shrinks both hitboxes before the overlap test
	DefaultCollisionPadding = 6
	// DefaultBossGraceMs suppresses boss contact right after the intro
	DefaultBossGraceMs = 900
)

// CollisionManager finds player contacts every frame. Callbacks fire for
// every overlap every frame it holds; the receivers throttle.
type CollisionManager struct {
	Padding float64
	clock   entity.Clock

	graceUntil float64
	enemyHits  map[*entity.Enemy]struct{}
	bossHit    bool

	// OnEnemy is called for each overlapping live enemy
	OnEnemy func(e *entity.Enemy)
	// OnBoss is called while the boss overlaps the player
	OnBoss func(b *entity.Boss)
}

// NewCollisionManager creates a collision manager
func NewCollisionManager(padding float64, clock entity.Clock) *CollisionManager {
	return &CollisionManager{
		Padding:   padding,
		clock:     clock,
		enemyHits: make(map[*entity.Enemy]struct{}),
	}
}

// StartGrace ignores boss contact for durationMs from now.
func (m *CollisionManager) StartGrace(durationMs float64) {
	m.graceUntil = m.clock.NowMs() + durationMs
}

// InGrace reports whether the boss grace window is open
func (m *CollisionManager) InGrace() bool {
	return m.clock.NowMs() < m.graceUntil
}

// Update recomputes the contact set. A dead player clears it.
func (m *CollisionManager) Update(player *entity.Player, enemies []*entity.Enemy, boss *entity.Boss, bossVisible bool) {
	m.Reset()
	if player == nil || player.IsDead() {
		return
	}

	for _, e := range enemies {
		if e.IsDead() || !entity.Overlaps(player, e, m.Padding) {
			continue
		}
		m.enemyHits[e] = struct{}{}
		if m.OnEnemy != nil {
			m.OnEnemy(e)
		}
		// the callback may have killed the player
		if player.IsDead() {
			return
		}
	}

	if boss == nil || !bossVisible || boss.IsDead() || m.InGrace() {
		return
	}
	if entity.Overlaps(player, boss, m.Padding) {
		m.bossHit = true
		if m.OnBoss != nil {
			m.OnBoss(boss)
		}
	}
}

// Reset clears all tracked contacts
func (m *CollisionManager) Reset() {
	clear(m.enemyHits)
	m.bossHit = false
}

// HasAnyCollision reports any contact this frame
func (m *CollisionManager) HasAnyCollision() bool {
	return m.bossHit || len(m.enemyHits) > 0
}

// IsCollidingWithEnemy reports contact with e this frame
func (m *CollisionManager) IsCollidingWithEnemy(e *entity.Enemy) bool {
	_, ok := m.enemyHits[e]
	return ok
}

// IsCollidingWithBoss reports boss contact this frame
func (m *CollisionManager) IsCollidingWithBoss() bool {
	return m.bossHit
}

package system

import (
	"log"

	"github.com/younwookim/sharkie/internal/domain/entity"
)

// DefaultProjectileMargin is how far past the world bounds a projectile may fly
const DefaultProjectileMargin = 200

// ProjectileManager owns live projectiles and resolves their hits.
type ProjectileManager struct {
	Margin      float64
	projectiles []*entity.Projectile
}

// NewProjectileManager creates an empty manager
func NewProjectileManager(margin float64) *ProjectileManager {
	return &ProjectileManager{
		Margin:      margin,
		projectiles: make([]*entity.Projectile, 0, 16),
	}
}

// Projectiles returns the live projectiles
func (m *ProjectileManager) Projectiles() []*entity.Projectile {
	return m.projectiles
}

// Add builds a projectile from src. A source that yields nothing usable is
// logged and dropped.
func (m *ProjectileManager) Add(src entity.ProjectileSource, playerLeft bool) bool {
	if src == nil {
		log.Printf("Dropped projectile source: nil")
		return false
	}
	p, err := src.Build(playerLeft)
	if err != nil {
		log.Printf("Dropped projectile source %T: %v", src, err)
		return false
	}
	m.projectiles = append(m.projectiles, p)
	return true
}

// Update moves projectiles, expires stale ones, resolves hits and purges.
// Enemies are tested first; the boss only when no enemy was hit.
// Returns the number of hits landed.
func (m *ProjectileManager) Update(dtMs float64, enemies []*entity.Enemy, boss *entity.Boss, bossVisible bool, worldLeft, worldRight float64) int {
	for _, p := range m.projectiles {
		p.Update(dtMs)
		if p.X+p.Width < worldLeft-m.Margin || p.X > worldRight+m.Margin {
			p.Expire()
		}
	}

	hits := 0
	for _, p := range m.projectiles {
		if p.IsExpired() {
			continue
		}
		if m.hitEnemy(p, enemies) {
			hits++
			continue
		}
		if boss != nil && bossVisible && !boss.IsDead() && entity.Overlaps(p, boss, 0) {
			boss.TakeDamage(p.Damage)
			p.Expire()
			hits++
		}
	}

	m.purge()
	return hits
}

func (m *ProjectileManager) hitEnemy(p *entity.Projectile, enemies []*entity.Enemy) bool {
	for _, e := range enemies {
		if e.IsDead() || !entity.Overlaps(p, e, 0) {
			continue
		}
		e.TakeDamage(p.Damage)
		p.Expire()
		return true
	}
	return false
}

func (m *ProjectileManager) purge() {
	live := m.projectiles[:0]
	for _, p := range m.projectiles {
		if !p.IsExpired() {
			live = append(live, p)
		}
	}
	clear(m.projectiles[len(live):])
	m.projectiles = live
}

// Destroy drops every projectile
func (m *ProjectileManager) Destroy() {
	m.projectiles = nil
}

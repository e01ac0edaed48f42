package entity

import "math"

// Combat holds base and current combat stats. Base values are kept so
// difficulty multipliers can be reapplied without drift.
type Combat struct {
	BaseMaxHP  int
	BaseDamage int
	MaxHP      int
	HP         int
	Damage     int
}

// NewCombat creates stats at full health
func NewCombat(maxHP, damage int) Combat {
	c := Combat{}
	c.SetBase(maxHP, damage)
	return c
}

// SetBase resets base and current values and restores full health.
func (c *Combat) SetBase(maxHP, damage int) {
	c.BaseMaxHP = max(1, maxHP)
	c.BaseDamage = max(0, damage)
	c.MaxHP = c.BaseMaxHP
	c.Damage = c.BaseDamage
	c.HP = c.MaxHP
}

// ApplyMultipliers scales from the base values and keeps the hp ratio.
func (c *Combat) ApplyMultipliers(hpMul, dmgMul float64) {
	ratio := 1.0
	if c.MaxHP > 0 {
		ratio = float64(c.HP) / float64(c.MaxHP)
	}
	c.MaxHP = max(1, int(math.Round(float64(c.BaseMaxHP)*hpMul)))
	c.Damage = max(0, int(math.Round(float64(c.BaseDamage)*dmgMul)))
	c.HP = min(c.MaxHP, max(0, int(math.Round(float64(c.MaxHP)*ratio))))
}

// IsDead reports hp at zero
func (c *Combat) IsDead() bool { return c.HP <= 0 }

// loseHP subtracts amount and floors at zero. Returns false when nothing changed.
func (c *Combat) loseHP(amount int) bool {
	if amount <= 0 || c.HP <= 0 {
		return false
	}
	c.HP = max(0, c.HP-amount)
	return true
}

// Heal restores hp up to MaxHP. Dead combatants stay dead.
func (c *Combat) Heal(amount int) {
	if amount <= 0 || c.IsDead() {
		return
	}
	c.HP = min(c.MaxHP, c.HP+amount)
}

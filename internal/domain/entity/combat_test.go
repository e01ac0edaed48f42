package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCombat_ApplyMultipliersKeepsRatio(t *testing.T) {
	c := NewCombat(10, 2)
	c.HP = 5

	c.ApplyMultipliers(2, 1.5)
	assert.Equal(t, 20, c.MaxHP)
	assert.Equal(t, 10, c.HP)
	assert.Equal(t, 3, c.Damage)

	c.ApplyMultipliers(1, 1)
	assert.Equal(t, 10, c.MaxHP, "scales from base, not from the last result")
	assert.Equal(t, 2, c.Damage)
}

func TestCombat_ApplyMultipliersFloors(t *testing.T) {
	c := NewCombat(1, 1)
	c.ApplyMultipliers(0, -1)
	assert.Equal(t, 1, c.MaxHP)
	assert.Equal(t, 0, c.Damage)
}

func TestCombat_SetBaseRestoresHealth(t *testing.T) {
	c := NewCombat(10, 2)
	c.HP = 1
	c.SetBase(4, 1)
	assert.Equal(t, 4, c.HP)
	assert.Equal(t, 4, c.BaseMaxHP)
}

func TestCombat_Heal(t *testing.T) {
	c := NewCombat(10, 1)
	c.loseHP(6)
	c.Heal(3)
	assert.Equal(t, 7, c.HP)
	c.Heal(100)
	assert.Equal(t, 10, c.HP)

	c.loseHP(10)
	c.Heal(5)
	assert.Equal(t, 0, c.HP, "dead stays dead")
}

func TestCombat_HPBounds(t *testing.T) {
	for _, amount := range []int{1, 5, 10, 50} {
		c := NewCombat(10, 1)
		c.loseHP(amount)
		assert.Equal(t, max(0, 10-amount), c.HP)
		assert.LessOrEqual(t, c.HP, c.MaxHP)
		assert.Equal(t, c.HP <= 0, c.IsDead())
	}
}

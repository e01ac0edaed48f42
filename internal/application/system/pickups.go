package system

import "github.com/younwookim/sharkie/internal/domain/entity"

// CollectibleManager owns the level's pickups and applies them on contact.
type CollectibleManager struct {
	items []*entity.Collectible

	// OnCollect is called once per collected item
	OnCollect func(c *entity.Collectible)
}

// NewCollectibleManager creates a manager over items
func NewCollectibleManager(items []*entity.Collectible) *CollectibleManager {
	return &CollectibleManager{items: items}
}

// Items returns the pickups still in the level
func (m *CollectibleManager) Items() []*entity.Collectible {
	return m.items
}

// Advance runs the pickup animations
func (m *CollectibleManager) Advance(dtMs float64) {
	for _, c := range m.items {
		c.Update(dtMs)
	}
}

// Update collects every item overlapping the player and drops it from the
// level. Returns the items collected this frame.
func (m *CollectibleManager) Update(player *entity.Player) []*entity.Collectible {
	if player == nil || player.IsDead() {
		return nil
	}

	var collected []*entity.Collectible
	remaining := make([]*entity.Collectible, 0, len(m.items))
	for _, c := range m.items {
		if c.IsCollected {
			continue
		}
		if !entity.Overlaps(player, c, 0) {
			remaining = append(remaining, c)
			continue
		}
		if c.CollectFor(player) {
			collected = append(collected, c)
			if m.OnCollect != nil {
				m.OnCollect(c)
			}
		}
	}
	m.items = remaining
	return collected
}

// Freeze suspends every pickup animation
func (m *CollectibleManager) Freeze() {
	for _, c := range m.items {
		c.Freeze()
	}
}

// Unfreeze resumes every pickup animation
func (m *CollectibleManager) Unfreeze() {
	for _, c := range m.items {
		c.Unfreeze()
	}
}

// Destroy stops every pickup and empties the manager
func (m *CollectibleManager) Destroy() {
	for _, c := range m.items {
		c.Destroy()
	}
	m.items = nil
}

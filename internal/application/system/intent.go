package system

import "github.com/younwookim/sharkie/internal/domain/entity"

// Intent represents an action requested by an input source
type Intent interface {
	isIntent()
}

// FinSlapIntent asks the player for a melee attack
type FinSlapIntent struct{}

func (FinSlapIntent) isIntent() {}

// BubbleIntent asks the player for a bubble-trap attack
type BubbleIntent struct {
	Poisoned bool
}

func (BubbleIntent) isIntent() {}

// PauseIntent toggles pause
type PauseIntent struct{}

func (PauseIntent) isIntent() {}

// RestartIntent asks for a fresh world once the game has ended
type RestartIntent struct{}

func (RestartIntent) isIntent() {}

// ToggleHitboxesIntent flips the debug hitbox overlay
type ToggleHitboxesIntent struct{}

func (ToggleHitboxesIntent) isIntent() {}

// ApplyPlayerIntent forwards attack intents to the player. Returns true
// when the player accepted the attack. Other intents are left to the scene.
func ApplyPlayerIntent(p *entity.Player, in Intent) bool {
	switch it := in.(type) {
	case FinSlapIntent:
		return p.AttackFinSlap()
	case BubbleIntent:
		return p.AttackBubbleTrap(it.Poisoned)
	default:
		return false
	}
}

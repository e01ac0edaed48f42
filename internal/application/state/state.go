// Package state names the phases a game session moves through.
package state

// GameState represents the current phase of the game
type GameState int

const (
	StateMenu GameState = iota
	StateStarting
	StatePlaying
	StateBossIntro
	StatePaused
	StateDying
	StateGameOver
	StateStageClear
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateMenu:
		return "Menu"
	case StateStarting:
		return "Starting"
	case StatePlaying:
		return "Playing"
	case StateBossIntro:
		return "BossIntro"
	case StatePaused:
		return "Paused"
	case StateDying:
		return "Dying"
	case StateGameOver:
		return "GameOver"
	case StateStageClear:
		return "StageClear"
	default:
		return "Unknown"
	}
}

// Ended reports whether the state is a final outcome
func (s GameState) Ended() bool {
	return s == StateGameOver || s == StateStageClear
}

// AcceptsRestart reports whether a restart request is honoured
func (s GameState) AcceptsRestart() bool { return s.Ended() }

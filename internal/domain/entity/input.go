package entity

// Input holds the directional flags the player reads every movement tick.
// Any event source (keyboard, terminal, replay) fills the same struct.
type Input struct {
	Left  bool
	Right bool
	Up    bool
	Down  bool
}

// Any reports whether any direction is held
func (in Input) Any() bool {
	return in.Left || in.Right || in.Up || in.Down
}

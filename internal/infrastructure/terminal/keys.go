package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/sharkie/internal/application/system"
)

// DefaultHoldMs is how long a direction counts as held after its last key
// event. Terminals only report presses and auto-repeat, never releases.
const DefaultHoldMs = 150

type direction int

const (
	dirLeft direction = iota
	dirRight
	dirUp
	dirDown
)

// Keyboard turns tcell key events into input states.
type Keyboard struct {
	holdMs float64
	held   map[direction]float64 // direction -> expiry
	edges  system.InputState
	quit   bool
}

// NewKeyboard creates a keyboard. holdMs <= 0 uses DefaultHoldMs.
func NewKeyboard(holdMs float64) *Keyboard {
	if holdMs <= 0 {
		holdMs = DefaultHoldMs
	}
	return &Keyboard{holdMs: holdMs, held: make(map[direction]float64)}
}

// HandleKey records a key press at nowMs.
//
//	arrows / WASD   move
//	space           fin slap, restart after the end
//	q               poisoned bubble
//	e               plain bubble
//	esc / p         pause
//	enter / r       restart after the end
//	tab             hitboxes
//	ctrl-c / ctrl-q quit
func (k *Keyboard) HandleKey(ev *tcell.EventKey, nowMs float64) {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyCtrlQ:
		k.quit = true
	case tcell.KeyLeft:
		k.hold(dirLeft, nowMs)
	case tcell.KeyRight:
		k.hold(dirRight, nowMs)
	case tcell.KeyUp:
		k.hold(dirUp, nowMs)
	case tcell.KeyDown:
		k.hold(dirDown, nowMs)
	case tcell.KeyEscape:
		k.edges.Pause = true
	case tcell.KeyEnter:
		k.edges.Restart = true
	case tcell.KeyTab:
		k.edges.ToggleHitboxes = true
	case tcell.KeyRune:
		k.handleRune(ev.Rune(), nowMs)
	}
}

func (k *Keyboard) handleRune(r rune, nowMs float64) {
	switch r {
	case 'a', 'A':
		k.hold(dirLeft, nowMs)
	case 'd', 'D':
		k.hold(dirRight, nowMs)
	case 'w', 'W':
		k.hold(dirUp, nowMs)
	case 's', 'S':
		k.hold(dirDown, nowMs)
	case ' ':
		k.edges.FinSlap = true
		k.edges.Restart = true
	case 'q', 'Q':
		k.edges.BubblePoisoned = true
	case 'e', 'E':
		k.edges.BubblePlain = true
	case 'p', 'P':
		k.edges.Pause = true
	case 'r', 'R':
		k.edges.Restart = true
	}
}

func (k *Keyboard) hold(d direction, nowMs float64) {
	k.held[d] = nowMs + k.holdMs
	// the opposite key releases its twin straight away
	switch d {
	case dirLeft:
		delete(k.held, dirRight)
	case dirRight:
		delete(k.held, dirLeft)
	case dirUp:
		delete(k.held, dirDown)
	case dirDown:
		delete(k.held, dirUp)
	}
}

// State returns the input at nowMs. Edge actions are reported once.
func (k *Keyboard) State(nowMs float64) system.InputState {
	in := k.edges
	k.edges = system.InputState{}
	in.Move.Left = k.isHeld(dirLeft, nowMs)
	in.Move.Right = k.isHeld(dirRight, nowMs)
	in.Move.Up = k.isHeld(dirUp, nowMs)
	in.Move.Down = k.isHeld(dirDown, nowMs)
	return in
}

func (k *Keyboard) isHeld(d direction, nowMs float64) bool {
	until, ok := k.held[d]
	if !ok {
		return false
	}
	if nowMs >= until {
		delete(k.held, d)
		return false
	}
	return true
}

// Quit reports whether a quit key was pressed
func (k *Keyboard) Quit() bool { return k.quit }

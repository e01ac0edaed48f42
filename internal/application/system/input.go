package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/sharkie/internal/domain/entity"
)

// InputSystem reads the keyboard
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// InputState holds one frame of input: held directions plus edge-triggered actions.
type InputState struct {
	Move           entity.Input
	FinSlap        bool
	BubblePoisoned bool
	BubblePlain    bool
	Pause          bool
	Restart        bool
	ToggleHitboxes bool
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	return InputState{
		Move: entity.Input{
			Left:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
			Right: ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
			Up:    ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
			Down:  ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		},
		FinSlap:        inpututil.IsKeyJustPressed(ebiten.KeySpace),
		BubblePoisoned: inpututil.IsKeyJustPressed(ebiten.KeyQ),
		BubblePlain:    inpututil.IsKeyJustPressed(ebiten.KeyE),
		Pause:          inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Restart: inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
			inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
			inpututil.IsKeyJustPressed(ebiten.KeyR) ||
			inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		ToggleHitboxes: inpututil.IsKeyJustPressed(ebiten.KeyTab),
	}
}

// Intents converts the edge-triggered actions into intents. Restart is
// only reported when ended is true, where it also swallows the attack keys.
func (in InputState) Intents(ended bool) []Intent {
	var out []Intent
	if in.ToggleHitboxes {
		out = append(out, ToggleHitboxesIntent{})
	}
	if ended {
		if in.Restart {
			out = append(out, RestartIntent{})
		}
		return out
	}
	if in.Pause {
		out = append(out, PauseIntent{})
	}
	if in.FinSlap {
		out = append(out, FinSlapIntent{})
	}
	if in.BubblePoisoned {
		out = append(out, BubbleIntent{Poisoned: true})
	}
	if in.BubblePlain {
		out = append(out, BubbleIntent{})
	}
	return out
}

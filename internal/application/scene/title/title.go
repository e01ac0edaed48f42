// Package title provides the title screen: difficulty choice and the
// sound preference.
package title

import (
	"fmt"
	"log"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/sharkie/internal/application/render"
	"github.com/younwookim/sharkie/internal/application/scene"
	"github.com/younwookim/sharkie/internal/infrastructure/screen"
	"github.com/younwookim/sharkie/internal/infrastructure/settings"
)

// Heading is the game title
const Heading = "SHARKIE"

var digitKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// StartFunc builds the scene that plays the chosen difficulty
type StartFunc func(difficulty string) (scene.Scene, error)

// Input is one frame of title screen input
type Input struct {
	Digit       int // 1-based, 0 for none
	Up, Down    bool
	Start       bool
	ToggleSound bool
	Quit        bool
}

// Title is the title screen scene
type Title struct {
	difficulties []string
	selected     int
	settings     *settings.Store
	surface      *screen.Surface
	start        StartFunc
}

// New creates the title screen. The default difficulty is preselected.
func New(difficulties []string, defaultDifficulty string, store *settings.Store, surface *screen.Surface, start StartFunc) *Title {
	t := &Title{
		difficulties: difficulties,
		settings:     store,
		surface:      surface,
		start:        start,
	}
	if i := slices.Index(difficulties, defaultDifficulty); i >= 0 {
		t.selected = i
	}
	return t
}

// Selected returns the highlighted difficulty
func (t *Title) Selected() string {
	if len(t.difficulties) == 0 {
		return ""
	}
	return t.difficulties[t.selected]
}

// Update reads the keyboard (implements scene.Scene)
func (t *Title) Update(_ float64) (scene.Scene, error) {
	in := Input{
		Up:          inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyW),
		Down:        inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyS),
		Start:       inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace),
		ToggleSound: inpututil.IsKeyJustPressed(ebiten.KeyM),
		Quit:        inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
	for i, k := range digitKeys {
		if inpututil.IsKeyJustPressed(k) {
			in.Digit = i + 1
		}
	}
	return t.apply(in)
}

func (t *Title) apply(in Input) (scene.Scene, error) {
	if in.Quit {
		return nil, scene.ErrQuit
	}
	n := len(t.difficulties)
	if in.Digit > 0 && in.Digit <= n {
		t.selected = in.Digit - 1
	}
	if n > 0 && in.Up {
		t.selected = (t.selected + n - 1) % n
	}
	if n > 0 && in.Down {
		t.selected = (t.selected + 1) % n
	}
	if in.ToggleSound && t.settings != nil {
		enabled, err := t.settings.ToggleSound()
		if err != nil {
			log.Printf("Failed to save sound preference: %v", err)
		}
		log.Printf("Sound %s", onOff(enabled))
	}
	if in.Start {
		next, err := t.start(t.Selected())
		if err != nil {
			return nil, fmt.Errorf("failed to start game: %w", err)
		}
		return next, nil
	}
	return nil, nil
}

// Draw renders the title screen
func (t *Title) Draw(screen *ebiten.Image) {
	t.surface.Begin(screen)
	t.Render(t.surface)
}

// Render draws the heading, the difficulty list and the key help.
func (t *Title) Render(s render.Surface) {
	w, h := s.Size()
	s.FillRect(0, 0, w, h, render.Water)
	render.DrawTextCentered(s, Heading, w/2, h*0.25, render.Text)

	y := h * 0.4
	for i, name := range t.difficulties {
		marker := "  "
		if i == t.selected {
			marker = "> "
		}
		render.DrawTextCentered(s, fmt.Sprintf("%s%d. %s", marker, i+1, name), w/2, y, render.Text)
		y += 24
	}

	sound := true
	if t.settings != nil {
		sound = t.settings.SoundEnabled()
	}
	render.DrawTextCentered(s, "Sound: "+onOff(sound), w/2, h*0.75, render.Text)
	render.DrawTextCentered(s, "1-9/Up/Down: difficulty | Enter: start | M: sound | ESC: quit", w/2, h*0.85, render.Text)
}

// OnEnter is called when entering this scene
func (t *Title) OnEnter() {}

// OnExit is called when leaving this scene
func (t *Title) OnExit() {}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

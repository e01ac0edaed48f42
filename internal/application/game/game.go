// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/sharkie/internal/application/scene"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dtMs    float64
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int) *Game {
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dtMs:    1000.0 / 60.0,
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// Each tick advances the simulation by one fixed step. Implements
// ebiten.Game interface.
func (g *Game) Update() error {
	next, err := g.current.Update(g.dtMs)
	if errors.Is(err, scene.ErrQuit) {
		g.current.OnExit()
		return ebiten.Termination
	}
	if err != nil {
		return err
	}

	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// Current returns the active scene
func (g *Game) Current() scene.Scene { return g.current }

// SetTPS derives the fixed step from the tick rate.
func (g *Game) SetTPS(tps int) {
	if tps > 0 {
		g.dtMs = 1000.0 / float64(tps)
	}
}

// StepMs returns the simulation step per tick
func (g *Game) StepMs() float64 { return g.dtMs }

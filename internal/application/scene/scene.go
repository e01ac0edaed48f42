// Package scene defines the Scene interface for game screens.
//
// The title screen and the playing screen implement Scene; game.Game
// delegates to whichever is current.
package scene

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrQuit is returned from Update to end the game normally
var ErrQuit = errors.New("quit")

// Scene represents a game screen.
//
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Update advances the scene by dtMs of simulation time.
	// Returns the next scene if a transition is needed, nil to stay.
	// Returns an error to terminate the game.
	Update(dtMs float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when entering this scene.
	OnEnter()

	// OnExit is called when leaving this scene.
	// Use this for cleanup, saving state, or resource release.
	OnExit()
}

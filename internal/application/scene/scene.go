// Package scene defines the Scene interface for game screens.
//
// The title menu and the playing screen each implement Scene; the game loop
// only ever talks to the current one.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene represents a game screen.
//
// Transitions happen by returning the next Scene from Update.
type Scene interface {
	// Update advances the scene by dt seconds (1/TPS).
	// Returns the next scene if a transition is needed, nil to stay.
	// Returning an error, including ebiten.Termination, ends the game.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called each time the scene becomes current.
	OnEnter()

	// OnExit is called when leaving the scene; release resources here.
	OnExit()
}

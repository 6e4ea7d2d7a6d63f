// Package game provides the ebiten loop that drives the current Scene and
// handles transitions between scenes.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/YanNazzim/bullethell/internal/application/scene"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64
}

// New creates a Game showing initial on a logical screen of the given size.
// Each Update advances the scene by 1/tps seconds; tps <= 0 means 60.
// The initial scene's OnEnter is called immediately.
func New(initial scene.Scene, screenW, screenH, tps int) *Game {
	if tps <= 0 {
		tps = 60
	}
	g := &Game{
		current: initial,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / float64(tps),
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// An error from the scene (including ebiten.Termination) stops the loop.
func (g *Game) Update() error {
	next, err := g.current.Update(g.dt)
	if err != nil {
		g.current.OnExit()
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
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout keeps the logical screen fixed regardless of window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// Current returns the scene being shown
func (g *Game) Current() scene.Scene {
	return g.current
}

// DT returns the per-update step in seconds
func (g *Game) DT() float64 {
	return g.dt
}

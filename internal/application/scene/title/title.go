// Package title implements the mode selection screen.
package title

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/YanNazzim/bullethell/internal/application/scene"
	"github.com/YanNazzim/bullethell/internal/application/state"
)

var colorBG = color.RGBA{18, 18, 30, 255}

// Selection is what the player asked for on the title screen
type Selection int

const (
	SelectNone Selection = iota
	SelectWave
	SelectChaos
	SelectQuit
)

// Title lets the player pick a game mode
type Title struct {
	start   func(state.Mode) scene.Scene
	read    func() Selection
	screenW int
	screenH int
}

var _ scene.Scene = (*Title)(nil)

// New creates the title screen. start builds the scene for the chosen mode.
func New(start func(state.Mode) scene.Scene, screenW, screenH int) *Title {
	return &Title{
		start:   start,
		read:    readSelection,
		screenW: screenW,
		screenH: screenH,
	}
}

func readSelection() Selection {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.Key1), inpututil.IsKeyJustPressed(ebiten.KeyW):
		return SelectWave
	case inpututil.IsKeyJustPressed(ebiten.Key2), inpututil.IsKeyJustPressed(ebiten.KeyC):
		return SelectChaos
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return SelectQuit
	}
	return SelectNone
}

// Update starts a run once a mode is picked; Esc quits the game
func (t *Title) Update(dt float64) (scene.Scene, error) {
	switch t.read() {
	case SelectWave:
		return t.start(state.ModeWave), nil
	case SelectChaos:
		return t.start(state.ModeChaos), nil
	case SelectQuit:
		return nil, ebiten.Termination
	}
	return nil, nil
}

func (t *Title) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)
	text := "BULLET HELL\n\n[1] Wave mode\n[2] Chaos mode\n\nESC to quit"
	ebitenutil.DebugPrintAt(screen, text, t.screenW/2-60, t.screenH/2-40)
}

func (t *Title) OnEnter() {}
func (t *Title) OnExit()  {}

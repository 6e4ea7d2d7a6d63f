package playing

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState is one frame of host input, already reduced to what the
// simulation understands
type InputState struct {
	MoveX, MoveY float64
	Pause        bool // Toggle requested this frame
	Choice       int  // 1-based upgrade slot picked this frame, 0 for none
	Restart      bool
	Save         bool
	Quit         bool
}

// ReadInput polls the keyboard and mouse. Holding the left mouse button
// steers toward the cursor, measured from the screen centre where the
// player is drawn.
func ReadInput(screenW, screenH int) InputState {
	in := InputState{
		Pause:   inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Restart: inpututil.IsKeyJustPressed(ebiten.KeyZ) || inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Save:    inpututil.IsKeyJustPressed(ebiten.KeyF5),
		Quit:    inpututil.IsKeyJustPressed(ebiten.KeyQ),
	}

	for i, key := range []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3} {
		if inpututil.IsKeyJustPressed(key) {
			in.Choice = i + 1
			break
		}
	}

	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		in.MoveX--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		in.MoveX++
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		in.MoveY--
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		in.MoveY++
	}

	if in.MoveX == 0 && in.MoveY == 0 && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		in.MoveX, in.MoveY = steer(float64(mx-screenW/2), float64(my-screenH/2))
	}

	return in
}

// steer turns a screen offset into a unit direction. Offsets inside a small
// dead zone produce no movement.
func steer(dx, dy float64) (float64, float64) {
	const deadZone = 8.0
	dist := math.Hypot(dx, dy)
	if dist < deadZone {
		return 0, 0
	}
	return dx / dist, dy / dist
}

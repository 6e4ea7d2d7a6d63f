package replay

import (
	"time"

	"github.com/YanNazzim/bullethell/internal/application/system"
)

// IntentHandler consumes replayed intents
type IntentHandler interface {
	Handle(intent system.Intent)
}

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// GetInput returns the input for the current frame and advances
func (r *Replayer) GetInput() (FrameInput, bool) {
	if r.frame >= len(r.data.Frames) {
		return FrameInput{}, false
	}
	fi := r.data.Frames[r.frame]
	r.frame++
	return fi, true
}

// Step feeds the current frame's intents to h and advances.
// Returns false once every frame has been replayed.
func (r *Replayer) Step(h IntentHandler) bool {
	fi, ok := r.GetInput()
	if !ok {
		return false
	}
	for _, intent := range Intents(fi) {
		h.Handle(intent)
	}
	return true
}

// Intents converts one recorded frame back into intents, in the order the
// host issued them: pause, upgrade, then movement
func Intents(fi FrameInput) []system.Intent {
	intents := make([]system.Intent, 0, 3)
	if fi.P {
		intents = append(intents, system.PauseIntent{})
	}
	if fi.U != "" {
		intents = append(intents, system.UpgradeIntent{Key: fi.U})
	}
	return append(intents, system.MoveIntent{X: fi.MX, Y: fi.MY})
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// Mode returns the game mode name of the replay
func (r *Replayer) Mode() string {
	return r.data.Mode
}

// DT returns the fixed tick length of the replay
func (r *Replayer) DT() float64 {
	return r.data.DT()
}

// CreateTestReplayData creates replay data for testing: the player walks
// in a fixed direction for the given number of frames
func CreateTestReplayData(frames int, mx, my float64) ReplayData {
	data := ReplayData{
		Version:   FormatVersion,
		Seed:      12345,
		Mode:      "wave",
		TPS:       60,
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameInput{F: i, MX: mx, MY: my}
	}

	return data
}

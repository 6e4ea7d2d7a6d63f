package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimer_Advance(t *testing.T) {
	tests := []struct {
		name     string
		interval float64
		steps    []float64
		want     int
	}{
		{"below interval", 1, []float64{0.4, 0.4}, 0},
		{"exact interval", 0.5, []float64{0.25, 0.25}, 1},
		{"multiple fires in one step", 0.25, []float64{1.1}, 4},
		{"zero interval never fires", 0, []float64{10}, 0},
		{"negative dt ignored", 1, []float64{-5, 0.5}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			timer := NewTimer(tt.interval)
			fires := 0
			for _, dt := range tt.steps {
				fires += timer.Advance(dt)
			}
			assert.Equal(t, tt.want, fires)
		})
	}
}

func TestTimer_PauseResume(t *testing.T) {
	timer := NewTimer(1)
	timer.Advance(0.75)

	timer.Pause()
	assert.False(t, timer.Running())
	assert.Zero(t, timer.Advance(5))

	timer.Resume()
	assert.True(t, timer.Running())
	assert.Equal(t, 1, timer.Advance(0.25), "progress is kept across a pause")
}

func TestTimer_StopAndReset(t *testing.T) {
	timer := NewTimer(1)
	timer.Advance(0.9)

	timer.Stop()
	assert.False(t, timer.Running())
	assert.Zero(t, timer.Advance(5))

	// Resume does not undo a stop
	timer.Resume()
	assert.False(t, timer.Running())

	timer.Reset(0.5)
	assert.True(t, timer.Running())
	assert.Zero(t, timer.Progress())
	assert.Equal(t, 1, timer.Advance(0.5))
}

func TestTimer_SetIntervalClampsProgress(t *testing.T) {
	timer := NewTimer(1)
	timer.Advance(0.8)

	timer.SetInterval(0.5)
	assert.InDelta(t, 1.0, timer.Progress(), 1e-9)
	assert.Equal(t, 1, timer.Advance(0.01))
	assert.Zero(t, timer.Advance(0.01))
}

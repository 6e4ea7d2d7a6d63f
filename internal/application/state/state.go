package state

import "fmt"

// GameState represents the phase a run is in
type GameState int

const (
	StateActive GameState = iota
	StatePaused
	StateUpgradeSelection
	StateGameOver
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateActive:
		return "Active"
	case StatePaused:
		return "Paused"
	case StateUpgradeSelection:
		return "UpgradeSelection"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Mode selects the progression rules of a run
type Mode int

const (
	ModeWave Mode = iota
	ModeChaos
)

// String returns the mode name used in config, flags and replays
func (m Mode) String() string {
	switch m {
	case ModeWave:
		return "wave"
	case ModeChaos:
		return "chaos"
	default:
		return "unknown"
	}
}

// ParseMode converts a mode name back to a Mode
func ParseMode(s string) (Mode, error) {
	switch s {
	case "wave":
		return ModeWave, nil
	case "chaos":
		return ModeChaos, nil
	default:
		return ModeWave, fmt.Errorf("unknown game mode %q", s)
	}
}

package system

// Intent represents an action the host wants the simulation to perform
type Intent interface {
	isIntent()
}

// MoveIntent sets the player's movement direction. The vector is clamped
// to unit length by the simulation.
type MoveIntent struct {
	X, Y float64
}

func (MoveIntent) isIntent() {}

// PauseIntent toggles pause, or forces it when Set is true
type PauseIntent struct {
	Set    bool
	Paused bool
}

func (PauseIntent) isIntent() {}

// UpgradeIntent applies the offered choice with the given key
type UpgradeIntent struct {
	Key string
}

func (UpgradeIntent) isIntent() {}


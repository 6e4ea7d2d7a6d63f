package system

import (
	"time"

	"github.com/google/uuid"

	"github.com/YanNazzim/bullethell/internal/domain/entity"
)

// Event is a notification pushed by the simulation for the host to drain
type Event interface {
	isEvent()
}

// ScoreChanged is pushed whenever the score changes
type ScoreChanged struct {
	Score int
}

// HealthChanged is pushed whenever player health changes
type HealthChanged struct {
	Health float64
	Max    float64
}

// WeaponSnapshot is the host-facing view of one owned weapon
type WeaponSnapshot struct {
	Key         entity.WeaponKey
	Name        string
	Level       int
	Damage      float64
	AttackSpeed float64 // Activations per second
	Count       int
	Charge      float64 // Fraction of the cooldown elapsed, 0 for untimed weapons
}

// StatsSnapshot is the full player-facing state, pushed once per active tick
type StatsSnapshot struct {
	Unit          int
	Health        float64
	MaxHealth     float64
	MoveSpeed     float64
	Weapons       []WeaponSnapshot
	BaseDamage    float64
	CritChance    float64
	CritDamage    float64
	BulletBounces int
	Score         int
	Elapsed       time.Duration
	BossActive    bool
	// BossDirection is the player-to-boss angle in degrees, set only while
	// the boss is off-screen
	BossDirection *float64
}

// UnitAnnounced is pushed when a new wave or level begins
type UnitAnnounced struct {
	Mode string
	Unit int
	Boss bool
}

// GameOverEvent is pushed once when the player dies
type GameOverEvent struct{}

// UpgradeOffered suspends the run until a choice is applied
type UpgradeOffered struct {
	Choices []UpgradeChoice
}

// RunSummary is the final record of a run, handed off for persistence
type RunSummary struct {
	RunID            uuid.UUID
	Mode             string
	Score            int
	UnitReached      int // Last completed wave or level
	CurrentUnit      int // Unit in progress when the run ended
	TotalDamageDealt float64
	Duration         time.Duration
}

// RunEnded carries the run summary
type RunEnded struct {
	Summary RunSummary
}

// EnemyHit is a cosmetic hit notification
type EnemyHit struct {
	ID   entity.EntityID
	Crit bool
}

// ChainZapped is a cosmetic chain-lightning segment
type ChainZapped struct {
	FromX, FromY float64
	ToX, ToY     float64
	Crit         bool
}

// PauseChanged is pushed when the pause state flips
type PauseChanged struct {
	Paused bool
}

// PickupCollected is pushed when the player absorbs an orb
type PickupCollected struct {
	Value int
	Total int
}

func (ScoreChanged) isEvent()    {}
func (HealthChanged) isEvent()   {}
func (StatsSnapshot) isEvent()   {}
func (UnitAnnounced) isEvent()   {}
func (GameOverEvent) isEvent()   {}
func (UpgradeOffered) isEvent()  {}
func (RunEnded) isEvent()        {}
func (EnemyHit) isEvent()        {}
func (ChainZapped) isEvent()     {}
func (PauseChanged) isEvent()    {}
func (PickupCollected) isEvent() {}

// EventQueue buffers events in push order until drained
type EventQueue struct {
	events []Event
}

// NewEventQueue creates an empty queue
func NewEventQueue() *EventQueue {
	return &EventQueue{events: make([]Event, 0, 64)}
}

// Push appends an event
func (q *EventQueue) Push(e Event) {
	q.events = append(q.events, e)
}

// Drain returns all pending events and empties the queue
func (q *EventQueue) Drain() []Event {
	if len(q.events) == 0 {
		return nil
	}
	out := make([]Event, len(q.events))
	copy(out, q.events)
	q.events = q.events[:0]
	return out
}

// Len returns the number of pending events
func (q *EventQueue) Len() int {
	return len(q.events)
}

// Package simulation runs one bullet-hell run: it drives the systems once
// per tick, sequences the game mode and exposes the intent/event surface the
// host talks to.
package simulation

import (
	"fmt"
	"log"
	"math/rand"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/YanNazzim/bullethell/internal/application/state"
	"github.com/YanNazzim/bullethell/internal/application/system"
	"github.com/YanNazzim/bullethell/internal/domain/entity"
	"github.com/YanNazzim/bullethell/internal/infrastructure/config"
)

// modeRules are the per-mode progression hooks layered over the shared tick
type modeRules interface {
	Mode() state.Mode
	// Unit is the wave or level in progress
	Unit() int
	Start(s *Simulation)
	OnKill(s *Simulation, kind entity.EnemyKind)
	Update(s *Simulation, dt float64)
	ResumeAfterUpgrade(s *Simulation)
	SetPaused(paused bool)
}

// Simulation owns a single run. All methods must be called from the same
// goroutine.
type Simulation struct {
	ctx   *system.Context
	mode  modeRules
	state state.GameState
	seed  int64

	moveX, moveY float64
	elapsed      float64 // Simulated seconds spent Active
	offer        []system.UpgradeChoice
	runID        uuid.UUID
}

// New starts a run in the given mode. The seed fully determines the run for
// a given sequence of intents.
func New(cfg *config.BalanceConfig, mode state.Mode, seed int64) *Simulation {
	s := &Simulation{
		ctx:   system.NewContext(cfg, rand.New(rand.NewSource(seed))),
		state: state.StateActive,
		seed:  seed,
		runID: uuid.New(),
	}

	switch mode {
	case state.ModeChaos:
		s.mode = &chaosMode{}
	default:
		s.mode = &waveMode{}
	}

	s.ctx.OnKill = func(kind entity.EnemyKind) {
		if s.state == state.StateGameOver {
			return
		}
		s.mode.OnKill(s, kind)
	}
	s.ctx.OnPlayerDeath = s.gameOver
	s.ctx.Suspended = func() bool { return s.state != state.StateActive }

	p := s.ctx.Player
	s.ctx.Events.Push(system.HealthChanged{Health: p.Health, Max: p.MaxHealth})
	s.ctx.Events.Push(system.ScoreChanged{Score: p.Score})
	s.mode.Start(s)
	return s
}

// Tick advances the run by dt seconds. Nothing moves unless the run is
// Active; a tick that suspends the run stops at that point.
func (s *Simulation) Tick(dt float64) {
	if s.state != state.StateActive || dt <= 0 {
		return
	}
	if s.ctx.Player == nil {
		panic("simulation: player missing mid-tick")
	}

	s.elapsed += dt
	c := s.ctx

	steps := []func(){
		func() { c.MovePlayer(s.moveX, s.moveY, dt) },
		func() { c.UpdateEnemies(dt) },
		func() { c.UpdateBullets(dt) },
		func() { c.UpdateBossBullets(dt) },
		func() { c.UpdatePickups(dt) },
		func() { c.UpdateWeapons(dt) },
		func() { c.FireBossBullets(dt) },
		func() { c.ApplyContactDamage() },
		func() { s.mode.Update(s, dt) },
	}
	for _, step := range steps {
		step()
		if s.state != state.StateActive {
			break
		}
	}

	c.Events.Push(c.Snapshot(s.Elapsed()))
}

// SetMovementIntent sets the direction the player moves in on the next
// ticks. Vectors longer than one are clamped.
func (s *Simulation) SetMovementIntent(x, y float64) {
	s.moveX, s.moveY = x, y
}

// TogglePause flips between Active and Paused
func (s *Simulation) TogglePause() {
	s.SetPaused(s.state == state.StateActive)
}

// SetPaused suspends or resumes the run. It is ignored while an upgrade is
// being chosen or after game over, and repeating the current state is a
// no-op.
func (s *Simulation) SetPaused(paused bool) {
	switch {
	case paused && s.state == state.StateActive:
		s.state = state.StatePaused
		s.ctx.PauseTimers()
		s.mode.SetPaused(true)
	case !paused && s.state == state.StatePaused:
		s.state = state.StateActive
		s.ctx.ResumeTimers()
		s.mode.SetPaused(false)
	default:
		return
	}
	s.ctx.Events.Push(system.PauseChanged{Paused: paused})
}

// ApplyUpgrade applies the offered choice with the given key and resumes
// the run. A key that is not on offer, or no longer applies, is logged and
// returned; the run still resumes without the reward.
func (s *Simulation) ApplyUpgrade(key string) error {
	if s.state != state.StateUpgradeSelection {
		return nil
	}

	var err error
	if idx := slices.IndexFunc(s.offer, func(ch system.UpgradeChoice) bool { return ch.Key == key }); idx < 0 {
		err = fmt.Errorf("upgrade %q not on offer: %w", key, system.ErrUnknownUpgrade)
	} else {
		err = s.ctx.ApplyChoice(s.offer[idx])
	}
	if err != nil {
		log.Printf("Skipping upgrade: %v", err)
	}

	s.offer = nil
	s.ctx.Player.ClearInvulnerable()
	s.state = state.StateActive
	s.ctx.ResumeTimers()
	s.mode.SetPaused(false)
	s.mode.ResumeAfterUpgrade(s)
	return err
}

// Handle applies an intent value
func (s *Simulation) Handle(intent system.Intent) {
	switch in := intent.(type) {
	case system.MoveIntent:
		s.SetMovementIntent(in.X, in.Y)
	case system.PauseIntent:
		if in.Set {
			s.SetPaused(in.Paused)
		} else {
			s.TogglePause()
		}
	case system.UpgradeIntent:
		_ = s.ApplyUpgrade(in.Key)
	}
}

// Drain returns the events pushed since the last call, in push order
func (s *Simulation) Drain() []system.Event {
	return s.ctx.Events.Drain()
}

// SetViewport sets the visible world area used for targeting
func (s *Simulation) SetViewport(w, h float64) {
	s.ctx.SetViewport(w, h)
}

// Teardown stops every timer and releases all pooled entities
func (s *Simulation) Teardown() {
	s.mode.SetPaused(true)
	s.ctx.Teardown()
}

func (s *Simulation) State() state.GameState { return s.state }
func (s *Simulation) Mode() state.Mode { return s.mode.Mode() }
func (s *Simulation) Unit() int { return s.mode.Unit() }
func (s *Simulation) Seed() int64 { return s.seed }
func (s *Simulation) Player() *entity.Player { return s.ctx.Player }
func (s *Simulation) Context() *system.Context { return s.ctx }
func (s *Simulation) Offer() []system.UpgradeChoice { return slices.Clone(s.offer) }

// Elapsed returns the simulated time spent Active
func (s *Simulation) Elapsed() time.Duration {
	return time.Duration(s.elapsed * float64(time.Second))
}

// addScore adds to the score and announces it
func (s *Simulation) addScore(n int) {
	p := s.ctx.Player
	p.Score += n
	s.ctx.Events.Push(system.ScoreChanged{Score: p.Score})
}

// announce marks the start of a new wave or level
func (s *Simulation) announce(unit int, boss bool) {
	s.ctx.Player.Level = unit
	s.ctx.Events.Push(system.UnitAnnounced{Mode: s.mode.Mode().String(), Unit: unit, Boss: boss})
}

// enterUpgradeSelection suspends the run and offers a fresh set of choices.
// The player cannot be hurt until a choice is applied.
func (s *Simulation) enterUpgradeSelection() {
	if s.state != state.StateActive {
		return
	}
	s.state = state.StateUpgradeSelection
	s.ctx.PauseTimers()
	s.mode.SetPaused(true)
	s.ctx.Player.SetInvulnerable(-1)

	s.offer = s.ctx.GenerateChoices()
	s.ctx.Events.Push(system.UpgradeOffered{Choices: slices.Clone(s.offer)})
}

// gameOver ends the run and emits the summary exactly once
func (s *Simulation) gameOver() {
	if s.state == state.StateGameOver {
		return
	}
	s.state = state.StateGameOver
	s.offer = nil
	s.ctx.PauseTimers()
	s.mode.SetPaused(true)

	unit := s.mode.Unit()
	s.ctx.Events.Push(system.GameOverEvent{})
	s.ctx.Events.Push(system.RunEnded{Summary: system.RunSummary{
		RunID:            s.runID,
		Mode:             s.mode.Mode().String(),
		Score:            s.ctx.Player.Score,
		UnitReached:      max(unit-1, 0),
		CurrentUnit:      unit,
		TotalDamageDealt: s.ctx.TotalDamage,
		Duration:         s.Elapsed(),
	}})
}

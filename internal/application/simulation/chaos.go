package simulation

import (
	"math"

	"github.com/YanNazzim/bullethell/internal/application/state"
	"github.com/YanNazzim/bullethell/internal/application/system"
	"github.com/YanNazzim/bullethell/internal/domain/entity"
)

// chaosMode spawns continuously on a timer that speeds up every level.
// A level ends after level + KillsBase kills.
type chaosMode struct {
	level int
	kills int
	spawn *system.Timer
}

func (m *chaosMode) Mode() state.Mode { return state.ModeChaos }
func (m *chaosMode) Unit() int { return m.level }

// spawnInterval returns the spawn cadence for the current level in seconds
func (m *chaosMode) spawnInterval(s *Simulation) float64 {
	cc := s.ctx.Config.Chaos
	return math.Max(cc.MinInterval, cc.BaseInterval-cc.IntervalStep*float64(m.level))
}

func (m *chaosMode) killsRequired(s *Simulation) int {
	return m.level + s.ctx.Config.Chaos.KillsBase
}

func (m *chaosMode) Start(s *Simulation) {
	m.level = 1
	m.kills = 0
	m.spawn = system.NewTimer(m.spawnInterval(s))
	s.announce(m.level, false)
}

func (m *chaosMode) OnKill(s *Simulation, kind entity.EnemyKind) {
	if kind == entity.KindBoss {
		return
	}
	s.addScore(m.level)
	m.kills++
	if m.kills >= m.killsRequired(s) {
		s.enterUpgradeSelection()
	}
}

func (m *chaosMode) Update(s *Simulation, dt float64) {
	c := s.ctx
	for range m.spawn.Advance(dt) {
		if s.state != state.StateActive || c.Enemies.Len() >= c.Config.Chaos.EnemyCap {
			return
		}
		c.SpawnRandom(m.level, c.Config.Spawn.ChaosElite)
	}
}

func (m *chaosMode) ResumeAfterUpgrade(s *Simulation) {
	m.level++
	m.kills = 0
	m.spawn.Reset(m.spawnInterval(s))
	s.announce(m.level, false)
}

func (m *chaosMode) SetPaused(paused bool) {
	if m.spawn == nil {
		return
	}
	if paused {
		m.spawn.Pause()
	} else {
		m.spawn.Resume()
	}
}

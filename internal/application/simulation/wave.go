package simulation

import (
	"github.com/YanNazzim/bullethell/internal/application/state"
	"github.com/YanNazzim/bullethell/internal/domain/entity"
)

// waveMode spawns fixed-size waves; a wave is complete once every enemy it
// actually spawned is dead. Every Boss.Interval-th wave is a boss round.
type waveMode struct {
	wave      int
	remaining int
}

func (w *waveMode) Mode() state.Mode { return state.ModeWave }
func (w *waveMode) Unit() int { return w.wave }

func (w *waveMode) Start(s *Simulation) {
	w.startNext(s)
}

// waveSize returns the number of enemies spawned for a normal wave
func (w *waveMode) waveSize(s *Simulation) int {
	wc := s.ctx.Config.Wave
	return wc.BaseSize + (w.wave-1)*wc.SizePerWave
}

func (w *waveMode) isBossRound(s *Simulation) bool {
	interval := s.ctx.Config.Boss.Interval
	return interval > 0 && w.wave%interval == 0
}

func (w *waveMode) startNext(s *Simulation) {
	c := s.ctx
	w.wave++
	w.remaining = 0

	boss := w.isBossRound(s)
	s.announce(w.wave, boss)

	if boss {
		if _, ok := c.SpawnBoss(w.wave); ok {
			w.remaining = 1
		}
	} else {
		for range w.waveSize(s) {
			if _, ok := c.SpawnRandom(w.wave, c.Config.Spawn.WaveElite); ok {
				w.remaining++
			}
		}
	}

	if w.remaining == 0 {
		s.enterUpgradeSelection()
	}
}

func (w *waveMode) OnKill(s *Simulation, kind entity.EnemyKind) {
	if kind != entity.KindBoss {
		s.addScore(1)
	}
	if w.remaining == 0 {
		return
	}
	w.remaining--
	if w.remaining == 0 {
		s.enterUpgradeSelection()
	}
}

func (w *waveMode) Update(*Simulation, float64) {}

func (w *waveMode) ResumeAfterUpgrade(s *Simulation) {
	w.startNext(s)
}

func (w *waveMode) SetPaused(bool) {}

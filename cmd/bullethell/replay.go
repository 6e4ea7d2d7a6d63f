package main

import (
	"fmt"
	"io"
	"time"

	"github.com/YanNazzim/bullethell/internal/application/replay"
	"github.com/YanNazzim/bullethell/internal/application/simulation"
	"github.com/YanNazzim/bullethell/internal/application/state"
	"github.com/YanNazzim/bullethell/internal/application/system"
	"github.com/YanNazzim/bullethell/internal/infrastructure/config"
)

// replayResult is the outcome of re-simulating a recording
type replayResult struct {
	Frames  int
	Seed    int64
	Mode    state.Mode
	State   state.GameState
	Unit    int
	Score   int
	Elapsed time.Duration
	Summary *system.RunSummary // Set when the recorded run ended
}

// replayFile loads a recording and re-simulates it
func replayFile(cfg *config.BalanceConfig, filename string) (replayResult, error) {
	data, err := replay.LoadReplay(filename)
	if err != nil {
		return replayResult{}, err
	}
	return simulateReplay(cfg, *data)
}

// simulateReplay runs a fresh simulation from the recording's seed and mode,
// feeding each frame's intents before its tick, the same order the playing
// scene uses.
func simulateReplay(cfg *config.BalanceConfig, data replay.ReplayData) (replayResult, error) {
	r := replay.NewReplayer(data)
	mode, err := state.ParseMode(r.Mode())
	if err != nil {
		return replayResult{}, fmt.Errorf("failed to read replay mode: %w", err)
	}

	sim := simulation.New(cfg, mode, r.Seed())
	sim.SetViewport(float64(cfg.Display.ScreenWidth), float64(cfg.Display.ScreenHeight))
	defer sim.Teardown()

	res := replayResult{Seed: r.Seed(), Mode: mode}
	dt := r.DT()
	for r.Step(sim) {
		sim.Tick(dt)
		for _, ev := range sim.Drain() {
			if e, ok := ev.(system.RunEnded); ok {
				summary := e.Summary
				res.Summary = &summary
			}
		}
	}

	res.Frames = r.CurrentFrame()
	res.State = sim.State()
	res.Unit = sim.Unit()
	res.Score = sim.Player().Score
	res.Elapsed = sim.Elapsed()
	return res, nil
}

func printResult(w io.Writer, res replayResult) {
	fmt.Fprintf(w, "Replayed %d frames (%s mode, seed %d)\n", res.Frames, res.Mode, res.Seed)
	fmt.Fprintf(w, "State: %s\n", res.State)
	fmt.Fprintf(w, "Unit: %d\n", res.Unit)
	fmt.Fprintf(w, "Score: %d\n", res.Score)
	fmt.Fprintf(w, "Elapsed: %s\n", res.Elapsed.Round(time.Millisecond))
	if s := res.Summary; s != nil {
		fmt.Fprintf(w, "Run %s: reached %d, damage dealt %.1f\n", s.RunID, s.UnitReached, s.TotalDamageDealt)
	}
}

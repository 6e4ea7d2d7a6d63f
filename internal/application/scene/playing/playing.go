// Package playing implements the in-run scene: it turns keyboard and mouse
// input into simulation intents, ticks the simulation and draws it.
package playing

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/YanNazzim/bullethell/internal/application/replay"
	"github.com/YanNazzim/bullethell/internal/application/scene"
	"github.com/YanNazzim/bullethell/internal/application/simulation"
	"github.com/YanNazzim/bullethell/internal/application/state"
	"github.com/YanNazzim/bullethell/internal/application/system"
	"github.com/YanNazzim/bullethell/internal/infrastructure/config"
)

// Options configures a run
type Options struct {
	Config *config.BalanceConfig
	Mode   state.Mode
	// Seed for the first run; 0 picks one from the clock. Restarts always
	// pick a fresh seed.
	Seed int64
	// RecordFile enables input recording; the format follows the extension.
	// Restarted runs are saved next to it with a run number suffix.
	RecordFile string
	// Quit builds the scene shown when the player leaves after game over.
	// Nil disables quitting.
	Quit func() scene.Scene
}

// Playing is the scene for an active run
type Playing struct {
	opts     Options
	sim      *simulation.Simulation
	recorder *replay.Recorder
	runs     int
	hud      hud
	input    func() InputState

	screenW int
	screenH int
}

var _ scene.Scene = (*Playing)(nil)

// New creates the playing scene and starts the first run
func New(opts Options) *Playing {
	if opts.Config == nil {
		opts.Config = config.Default().Balance
	}
	p := &Playing{
		opts:    opts,
		screenW: opts.Config.Display.ScreenWidth,
		screenH: opts.Config.Display.ScreenHeight,
	}
	p.input = func() InputState { return ReadInput(p.screenW, p.screenH) }

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	p.start(seed)
	return p
}

func (p *Playing) start(seed int64) {
	if p.sim != nil {
		p.sim.Teardown()
	}
	p.sim = simulation.New(p.opts.Config, p.opts.Mode, seed)
	p.sim.SetViewport(float64(p.screenW), float64(p.screenH))
	p.hud = hud{}
	p.runs++

	if p.opts.RecordFile != "" {
		p.recorder = replay.NewRecorder(seed, p.opts.Mode.String(), p.opts.Config.Display.Framerate)
		log.Printf("Recording enabled: %s (seed: %d)", p.recordFile(), seed)
	}

	p.consume(p.sim.Drain())
}

// Update reads input, feeds it to the simulation as intents and advances
// one tick.
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	in := p.input()
	p.hud.decay(dt)

	if p.sim.State() == state.StateGameOver {
		switch {
		case in.Restart:
			p.restart()
		case in.Quit && p.opts.Quit != nil:
			return p.opts.Quit(), nil
		}
		return nil, nil
	}

	if in.Save {
		p.saveRecording()
	}

	fi := replay.FrameInput{
		MX: in.MoveX,
		MY: in.MoveY,
		P:  in.Pause,
		U:  p.choiceKey(in.Choice),
	}
	if p.recorder != nil {
		p.recorder.RecordFrame(fi.MX, fi.MY, fi.P, fi.U)
	}
	for _, intent := range replay.Intents(fi) {
		p.sim.Handle(intent)
	}

	p.sim.Tick(dt)
	p.consume(p.sim.Drain())
	return nil, nil
}

// choiceKey maps a 1-based slot to the key of the offered upgrade
func (p *Playing) choiceKey(slot int) string {
	if slot <= 0 || p.sim.State() != state.StateUpgradeSelection {
		return ""
	}
	offer := p.sim.Offer()
	if slot > len(offer) {
		return ""
	}
	return offer[slot-1].Key
}

// consume folds drained events into the HUD
func (p *Playing) consume(events []system.Event) {
	for _, ev := range events {
		switch e := ev.(type) {
		case system.ScoreChanged:
			p.hud.score = e.Score
		case system.HealthChanged:
			p.hud.health, p.hud.maxHealth = e.Health, e.Max
		case system.StatsSnapshot:
			p.hud.stats = e
		case system.UnitAnnounced:
			p.hud.announce(e)
		case system.PickupCollected:
			p.hud.pickups = e.Total
		case system.ChainZapped:
			p.hud.zaps = append(p.hud.zaps, zap{ChainZapped: e, ttl: zapTTL})
		case system.RunEnded:
			p.hud.summary = &e.Summary
			logSummary(e.Summary)
			p.saveRecording()
			if p.recorder != nil {
				p.recorder.Stop()
			}
		}
	}
}

func logSummary(s system.RunSummary) {
	log.Printf("Run %s ended: mode=%s score=%d reached=%d current=%d damage=%.1f duration=%s",
		s.RunID, s.Mode, s.Score, s.UnitReached, s.CurrentUnit, s.TotalDamageDealt, s.Duration.Round(time.Millisecond))
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFile()
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
	}
}

// recordFile is the recording target of the current run: RecordFile for the
// first run, then run.2.msgpack, run.3.msgpack and so on
func (p *Playing) recordFile() string {
	name := p.opts.RecordFile
	if name == "" || p.runs <= 1 {
		return name
	}
	ext := filepath.Ext(name)
	return fmt.Sprintf("%s.%d%s", strings.TrimSuffix(name, ext), p.runs, ext)
}

func (p *Playing) restart() {
	seed := time.Now().UnixNano()
	log.Printf("Restarting %s run (seed: %d)", p.opts.Mode, seed)
	p.start(seed)
}

// Draw renders the world around the player, the HUD and any overlay
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	pl := p.sim.Player()
	cam := camera{
		x: pl.X - float64(p.screenW)/2,
		y: pl.Y - float64(p.screenH)/2,
	}

	p.drawArena(screen, cam)
	p.drawPickups(screen, cam)
	p.drawEnemies(screen, cam)
	p.drawProjectiles(screen, cam)
	p.drawShield(screen, cam)
	p.drawZaps(screen, cam)
	p.drawPlayer(screen, cam)
	p.drawBossIndicator(screen)
	p.drawHUD(screen)

	switch p.sim.State() {
	case state.StatePaused:
		p.drawPauseOverlay(screen)
	case state.StateUpgradeSelection:
		p.drawUpgradeOverlay(screen)
	case state.StateGameOver:
		p.drawGameOverOverlay(screen)
	}
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {}

// OnExit saves any pending recording and releases the run
func (p *Playing) OnExit() {
	if p.recorder != nil && p.recorder.IsRecording() {
		p.saveRecording()
		p.recorder.Stop()
	}
	p.sim.Teardown()
}

// Simulation exposes the current run
func (p *Playing) Simulation() *simulation.Simulation {
	return p.sim
}

func unitLabel(mode string, unit int) string {
	if mode == state.ModeChaos.String() {
		return fmt.Sprintf("Level %d", unit)
	}
	return fmt.Sprintf("Wave %d", unit)
}

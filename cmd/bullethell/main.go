package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"

	"github.com/YanNazzim/bullethell/internal/application/game"
	"github.com/YanNazzim/bullethell/internal/application/scene"
	"github.com/YanNazzim/bullethell/internal/application/scene/playing"
	"github.com/YanNazzim/bullethell/internal/application/scene/title"
	"github.com/YanNazzim/bullethell/internal/application/state"
	"github.com/YanNazzim/bullethell/internal/infrastructure/config"
)

// Environment variables providing flag defaults, optionally set via .env
const (
	envMode      = "BULLETHELL_MODE"
	envSeed      = "BULLETHELL_SEED"
	envConfigDir = "BULLETHELL_CONFIG_DIR"
)

// options are the parsed command line settings
type options struct {
	mode      string // Empty shows the title screen
	seed      int64  // 0 picks a seed from the clock
	configDir string // Empty uses the embedded configs
	record    string
	replay    string
}

// parseFlags reads args, taking defaults from the environment
func parseFlags(args []string, getenv func(string) string) (options, error) {
	var opts options

	seedDefault := int64(0)
	if s := getenv(envSeed); s != "" {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return opts, fmt.Errorf("invalid %s %q: %w", envSeed, s, err)
		}
		seedDefault = v
	}

	fset := flag.NewFlagSet("bullethell", flag.ContinueOnError)
	fset.StringVar(&opts.mode, "mode", getenv(envMode), "Start directly in a mode (wave or chaos)")
	fset.Int64Var(&opts.seed, "seed", seedDefault, "RNG seed for the first run (0 = time based)")
	fset.StringVar(&opts.configDir, "config", getenv(envConfigDir), "Load configs from a directory instead of the embedded ones")
	fset.StringVar(&opts.record, "record", "", "Record input to file (e.g., -record replay.json or replay.msgpack)")
	fset.StringVar(&opts.replay, "replay", "", "Re-simulate a recording headlessly and print the run summary")
	if err := fset.Parse(args); err != nil {
		return opts, err
	}

	if opts.mode != "" {
		if _, err := state.ParseMode(opts.mode); err != nil {
			return opts, err
		}
	}
	return opts, nil
}

// loadEnv loads .env if present
func loadEnv() {
	if err := godotenv.Load(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("Failed to load .env: %v", err)
		}
		return
	}
	log.Println("Loaded environment from .env")
}

// loadConfig loads configs from dir, or from the embedded filesystem when
// dir is empty
func loadConfig(dir string) (*config.GameConfig, error) {
	if dir != "" {
		return config.NewLoader(dir).LoadAll()
	}

	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs").LoadAll()
}

// firstScene wires the title and playing scenes together
func firstScene(cfg *config.BalanceConfig, opts options) scene.Scene {
	d := cfg.Display

	var menu *title.Title
	start := func(m state.Mode) scene.Scene {
		return playing.New(playing.Options{
			Config:     cfg,
			Mode:       m,
			Seed:       opts.seed,
			RecordFile: opts.record,
			Quit:       func() scene.Scene { return menu },
		})
	}
	menu = title.New(start, d.ScreenWidth, d.ScreenHeight)

	if opts.mode == "" {
		return menu
	}
	mode, _ := state.ParseMode(opts.mode)
	return start(mode)
}

func main() {
	loadEnv()

	opts, err := parseFlags(os.Args[1:], os.Getenv)
	if err != nil {
		log.Fatalf("Invalid arguments: %v", err)
	}

	cfg, err := loadConfig(opts.configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if opts.replay != "" {
		res, err := replayFile(cfg.Balance, opts.replay)
		if err != nil {
			log.Fatalf("Failed to replay %s: %v", opts.replay, err)
		}
		printResult(os.Stdout, res)
		return
	}

	d := cfg.Balance.Display
	g := game.New(firstScene(cfg.Balance, opts), d.ScreenWidth, d.ScreenHeight, d.Framerate)

	ebiten.SetWindowSize(int(float64(d.ScreenWidth)*d.WindowScale), int(float64(d.ScreenHeight)*d.WindowScale))
	ebiten.SetWindowTitle("Bullet Hell")
	ebiten.SetTPS(d.Framerate)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Balance *BalanceConfig
}

// Loader loads game configuration from JSON files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadBalance loads balance.json
func (l *Loader) LoadBalance() (*BalanceConfig, error) {
	data, err := fs.ReadFile(l.fsys, "balance.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read balance.json: %w", err)
	}

	var cfg BalanceConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse balance.json: %w", err)
	}

	return &cfg, nil
}

// LoadAll loads and validates all configurations
func (l *Loader) LoadAll() (*GameConfig, error) {
	balance, err := l.LoadBalance()
	if err != nil {
		return nil, err
	}

	cfg := &GameConfig{Balance: balance}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config in %s: %w", l.basePath, err)
	}

	return cfg, nil
}

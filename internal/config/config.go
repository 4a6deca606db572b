// Package config loads and saves tool configuration as JSON under the
// user's home directory.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/MaierG74/cutlist/internal/model"
)

// Config holds the persisted defaults applied when the corresponding
// command-line flag is not given.
type Config struct {
	Kerf         float64         `json:"kerf_mm"`
	Algorithm    model.Algorithm `json:"algorithm"`
	TimeBudget   time.Duration   `json:"time_budget"`
	Seed         int64           `json:"seed"`
	WastePercent float64         `json:"waste_percent"`
}

// Default returns the configuration used when no config file exists.
func Default() Config {
	return Config{
		Kerf:         3.0,
		Algorithm:    model.AlgorithmGuillotine,
		TimeBudget:   2 * time.Second,
		Seed:         42,
		WastePercent: 10,
	}
}

// DefaultDir returns the default directory for configuration.
// On all platforms this is ~/.cutlist/
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".cutlist")
}

// DefaultPath returns the default path for the config file.
func DefaultPath() string {
	return filepath.Join(DefaultDir(), "config.json")
}

// Save persists a Config to the given path as JSON.
// It creates any missing parent directories automatically.
func Save(path string, cfg Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Load reads a Config from the given path.
// If the file does not exist, it returns Default with no error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if cfg.Algorithm != "" && !cfg.Algorithm.Valid() {
		return Config{}, fmt.Errorf("config: unknown algorithm %q", cfg.Algorithm)
	}
	if cfg.Algorithm == "" {
		cfg.Algorithm = model.AlgorithmGuillotine
	}
	return cfg, nil
}

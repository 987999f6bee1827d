// Package config loads and saves the wishplan TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all wishplan configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Planner    PlannerConfig    `toml:"planner"`
	Recommend  RecommendConfig  `toml:"recommend"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	DataFile       string `toml:"data_file,omitempty"`
	CurrencySuffix string `toml:"currency_suffix"`
}

// PlannerConfig holds defaults for new wishlist items.
type PlannerConfig struct {
	DefaultTarget   int64 `toml:"default_target"`
	DefaultMonths   int64 `toml:"default_months"`
	DefaultPriority int   `toml:"default_priority"`
}

// RecommendConfig holds the budget recommendation presets offered in
// the profile form: a fixed saving amount and income percentages.
type RecommendConfig struct {
	SavingPreset int64   `toml:"saving_preset"`
	SavingPct    float64 `toml:"saving_pct"`
	EmergencyPct float64 `toml:"emergency_pct"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			CurrencySuffix: "원",
		},
		Planner: PlannerConfig{
			DefaultTarget:   200_000,
			DefaultMonths:   4,
			DefaultPriority: 3,
		},
		Recommend: RecommendConfig{
			SavingPreset: 550_000,
			SavingPct:    0.30,
			EmergencyPct: 0.03,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "wishplan")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "wishplan")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

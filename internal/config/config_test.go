package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.General.CurrencySuffix != "원" {
		t.Errorf("currency suffix = %q, want 원", cfg.General.CurrencySuffix)
	}
	if cfg.Planner.DefaultMonths != 4 || cfg.Planner.DefaultTarget != 200_000 {
		t.Errorf("planner defaults = %+v", cfg.Planner)
	}
	if cfg.Recommend.SavingPct != 0.30 || cfg.Recommend.EmergencyPct != 0.03 {
		t.Errorf("recommend defaults = %+v", cfg.Recommend)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.DataFile = "/tmp/elsewhere/planner.json"
	cfg.Planner.DefaultPriority = 2
	cfg.Appearance.Theme = "tokyo-night"

	if err := Save(cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	if !Exists() {
		t.Fatal("config file should exist after save")
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded != cfg {
		t.Errorf("loaded = %+v, want %+v", loaded, cfg)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	if err := os.MkdirAll(filepath.Join(dir, "wishplan"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "wishplan", "config.toml"), []byte("[general\nbroken"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("expected parse error")
	}
}

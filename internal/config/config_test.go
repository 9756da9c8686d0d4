package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("parse embedded defaults: %v", err)
	}
	if cfg != DefaultLaseroidsConfig() {
		t.Errorf("embedded defaults differ from DefaultLaseroidsConfig:\n got %+v\nwant %+v", cfg, DefaultLaseroidsConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := "scoring:\n  asteroid: 25\nwaves:\n  size: 2\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Scoring.Asteroid != 25 {
		t.Errorf("scoring.asteroid = %d, want 25", cfg.Scoring.Asteroid)
	}
	if cfg.Waves.Size != 2 {
		t.Errorf("waves.size = %d, want 2", cfg.Waves.Size)
	}
	// Unspecified keys keep their defaults.
	if cfg.Scoring.Alien != DefaultLaseroidsConfig().Scoring.Alien {
		t.Errorf("scoring.alien = %d, want default", cfg.Scoring.Alien)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing custom config")
	}
}

func TestLoadMalformedCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("field: [unterminated"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*LaseroidsConfig)
		want   string
	}{
		{"zero width", func(c *LaseroidsConfig) { c.Field.Width = 0 }, "field.width"},
		{"drag above one", func(c *LaseroidsConfig) { c.Player.Drag = 1.5 }, "player.drag"},
		{"radii out of order", func(c *LaseroidsConfig) { c.Asteroids.MediumRadius = 100 }, "medium_radius"},
		{"bad progression", func(c *LaseroidsConfig) { c.Difficulty.Progression.Type = "lunar" }, "progression.type"},
		{"empty waves", func(c *LaseroidsConfig) { c.Waves.Size = 0 }, "waves.size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultLaseroidsConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := DefaultLaseroidsConfig()
	cfg.Field.Width = -1
	cfg.Field.Height = -1
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "field.width") || !strings.Contains(err.Error(), "field.height") {
		t.Errorf("expected both field errors, got %q", err)
	}
}

func TestApplyLaseroidsPreset(t *testing.T) {
	cfg := DefaultLaseroidsConfig()
	ApplyLaseroidsPreset(&cfg, DifficultyHard)
	if cfg.Waves.Size != 6 {
		t.Errorf("hard waves.size = %d, want 6", cfg.Waves.Size)
	}
	if cfg.Difficulty.InitialLevel != InitialLevelForPreset(DifficultyHard) {
		t.Errorf("hard initial level = %v", cfg.Difficulty.InitialLevel)
	}

	cfg = DefaultLaseroidsConfig()
	ApplyLaseroidsPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	cfg = DefaultLaseroidsConfig()
	ApplyLaseroidsPreset(&cfg, "")
	if cfg != DefaultLaseroidsConfig() {
		t.Error("empty preset should leave config unchanged")
	}
}

func TestParsePreset(t *testing.T) {
	if p, ok := ParsePreset("hard"); !ok || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, ok)
	}
	if _, ok := ParsePreset("nightmare"); ok {
		t.Error("ParsePreset should reject unknown presets")
	}
}

func TestDifficultyManager(t *testing.T) {
	cfg := DefaultLaseroidsConfig().Difficulty
	dm := NewDifficultyManager(cfg)

	if got := dm.Level(0, 0); got != 0 {
		t.Errorf("Level(0) = %v, want 0", got)
	}
	if got := dm.Level(cfg.Progression.MaxAt, 0); got != 1 {
		t.Errorf("Level(max) = %v, want 1", got)
	}
	if got := dm.Level(cfg.Progression.MaxAt*10, 0); got != 1 {
		t.Errorf("Level above max = %v, want clamped 1", got)
	}

	if got := dm.Speed(40, 0, 0); got != 40 {
		t.Errorf("Speed at level 0 = %v, want 40", got)
	}
	if got := dm.Speed(40, cfg.Progression.MaxAt, 0); got != 80 {
		t.Errorf("Speed at level 1 = %v, want 80", got)
	}

	if got := dm.WaveSize(4, cfg.Progression.MaxAt, 0, 20); got != 8 {
		t.Errorf("WaveSize at level 1 = %d, want 8", got)
	}
	if got := dm.WaveSize(4, cfg.Progression.MaxAt, 0, 5); got != 5 {
		t.Errorf("WaveSize should respect limit, got %d", got)
	}
}

func TestDifficultyManagerDisabled(t *testing.T) {
	cfg := DefaultLaseroidsConfig().Difficulty
	cfg.Enabled = false
	cfg.InitialLevel = 0.5
	dm := NewDifficultyManager(cfg)
	if dm.IsEnabled() {
		t.Fatal("expected disabled manager")
	}
	if got := dm.Level(100000, 100000); got != 0.5 {
		t.Errorf("disabled Level = %v, want initial 0.5", got)
	}
}

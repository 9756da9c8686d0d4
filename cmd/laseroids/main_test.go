package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/laseroids/internal/laseroids"
	"github.com/vovakirdan/laseroids/internal/storage"
)

// withGameFlags sets the global game flags for one test and restores them.
func withGameFlags(t *testing.T, cfgPath, difficulty string) {
	t.Helper()
	oldConfig, oldDifficulty := flagConfig, flagDifficulty
	flagConfig, flagDifficulty = cfgPath, difficulty
	t.Cleanup(func() {
		flagConfig, flagDifficulty = oldConfig, oldDifficulty
		laseroids.SetConfigPath("")
		laseroids.SetDifficultyPreset("")
	})
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "laseroids.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestApplyGameFlagsReturnsLoadedConfig(t *testing.T) {
	withGameFlags(t, writeConfig(t, "field:\n  width: 320\n"), "hard")

	cfg, err := applyGameFlags()
	if err != nil {
		t.Fatalf("applyGameFlags: %v", err)
	}
	if cfg.Field.Width != 320 {
		t.Errorf("field.width = %v, want 320 from the config file", cfg.Field.Width)
	}
	if cfg.Waves.Size != 6 {
		t.Errorf("waves.size = %d, want 6 from the hard preset", cfg.Waves.Size)
	}
}

func TestApplyGameFlagsErrors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		difficulty string
	}{
		{"unknown difficulty", "field:\n  width: 320\n", "brutal"},
		{"malformed config", "field: [not a map", ""},
		{"invalid config", "field:\n  width: -1\n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withGameFlags(t, writeConfig(t, tt.body), tt.difficulty)
			if _, err := applyGameFlags(); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoadRuns(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	for i := 1; i <= 12; i++ {
		if _, err := store.SaveRun(storage.Run{Score: i * 10, Seed: int64(i)}); err != nil {
			t.Fatalf("save run: %v", err)
		}
	}

	top, err := loadRuns(store, 3)
	if err != nil {
		t.Fatalf("loadRuns(3): %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("loadRuns(3) = %d runs, want 3", len(top))
	}
	if top[0].Score != 120 {
		t.Errorf("best run score = %d, want 120", top[0].Score)
	}

	all, err := loadRuns(store, 0)
	if err != nil {
		t.Fatalf("loadRuns(0): %v", err)
	}
	if len(all) != 12 {
		t.Fatalf("loadRuns(0) = %d runs, want all 12", len(all))
	}
	if all[len(all)-1].Score != 10 {
		t.Errorf("last run score = %d, want 10", all[len(all)-1].Score)
	}
}

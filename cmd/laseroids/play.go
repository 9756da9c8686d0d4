package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/laseroids/internal/config"
	"github.com/vovakirdan/laseroids/internal/core"
	"github.com/vovakirdan/laseroids/internal/laseroids"
	"github.com/vovakirdan/laseroids/internal/platform/tui"
	"github.com/vovakirdan/laseroids/internal/registry"
	"github.com/vovakirdan/laseroids/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Laseroids",
	Long: `Start a game of Laseroids.

Controls:
  Left/Right - Rotate
  Up/Down    - Thrust / brake
  Space      - Fire
  E          - Toggle shield
  P/Esc      - Pause
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Smaller, slower waves and a longer respawn grace
  normal - Defaults, starting at 30% difficulty
  hard   - Bigger, faster waves and a more frequent alien
  fixed  - No progression, stays at config's initial level

Examples:
  laseroids play
  laseroids play --difficulty easy
  laseroids play --config ./my-laseroids.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger, cleanup, err := newLogger(io.Discard) // The TUI owns the terminal
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	if _, err := applyGameFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.DefaultConfig()
	rt.ScreenW, rt.ScreenH = width, height
	rt.TickRate = flagFPS
	rt.Seed = flagSeed

	game, err := registry.Create(laseroids.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		// Continue without storage - game still works
		store = nil
	}

	logger.Info("starting game", "seed", flagSeed, "fps", flagFPS, "difficulty", flagDifficulty)
	runErr := tui.Run(game, tui.Options{
		Runtime:    rt,
		Store:      store,
		Logger:     logger,
		Difficulty: flagDifficulty,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// applyGameFlags passes --config and --difficulty to the game and returns
// the configuration it will load.
func applyGameFlags() (config.LaseroidsConfig, error) {
	if _, ok := config.ParsePreset(flagDifficulty); !ok {
		return config.LaseroidsConfig{}, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	laseroids.SetConfigPath(flagConfig)
	laseroids.SetDifficultyPreset(flagDifficulty)

	return laseroids.LoadConfig()
}

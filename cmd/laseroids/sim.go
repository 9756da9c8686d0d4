package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/laseroids/internal/laseroids"
	"github.com/vovakirdan/laseroids/internal/storage"
)

var (
	flagFrames int
	flagSave   bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless game driven by the autopilot",
	Long: `Run the simulation without a terminal UI. The autopilot issues random
commands every frame. The run stops at game over or after --frames frames,
then prints the final state and a hash of the final snapshot.

Two runs with the same --seed, config and difficulty print the same hash.

Examples:
  laseroids sim --seed 42
  laseroids sim --seed 42 --frames 10000 --difficulty hard
  laseroids sim --save`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagFrames, "frames", 3600, "Maximum number of frames to run")
	simCmd.Flags().BoolVar(&flagSave, "save", false, "Record the run in the scores database")
	simCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	simCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runSim(cmd *cobra.Command, args []string) {
	logger, cleanup, err := newLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	cfg, err := applyGameFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	world := laseroids.NewWorld(cfg, seed)
	pilot := laseroids.NewAutopilot(seed)

	start := time.Now()
	for range flagFrames {
		if world.IsGameOver() {
			break
		}
		pilot.Drive(world)
		world.RunOneFrame()
	}
	logger.Debug("simulation finished", "frames", world.Tick(), "elapsed", time.Since(start))

	stats := world.Stats()
	fmt.Printf("Seed:      %d\n", seed)
	fmt.Printf("Frames:    %d\n", world.Tick())
	fmt.Printf("Phase:     %s\n", world.Phase())
	fmt.Printf("Score:     %d\n", world.Score())
	fmt.Printf("Lives:     %d\n", world.Lives())
	fmt.Printf("Waves:     %d\n", stats.Waves)
	fmt.Printf("Fired:     %d\n", stats.BulletsFired)
	fmt.Printf("Asteroids: %d\n", stats.AsteroidsDestroyed)
	fmt.Printf("Aliens:    %d\n", stats.AliensDestroyed)
	fmt.Printf("Deaths:    %d\n", stats.Deaths)
	fmt.Printf("Dropped:   %d spawns, %d commands\n", stats.DroppedSpawns, stats.DroppedCommands)
	fmt.Printf("Hash:      %016x\n", world.Snapshot().Hash())

	if !flagSave {
		return
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	id, err := store.SaveRun(storage.Run{
		Score:              world.Score(),
		Ticks:              int(world.Tick()), //#nosec G115 -- bounded by --frames
		AsteroidsDestroyed: stats.AsteroidsDestroyed,
		AliensDestroyed:    stats.AliensDestroyed,
		Deaths:             stats.Deaths,
		Seed:               seed,
		Difficulty:         flagDifficulty,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error saving run: %v\n", err)
		return
	}
	logger.Info("run saved", "id", id)
}

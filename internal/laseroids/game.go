package laseroids

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/laseroids/internal/config"
	"github.com/vovakirdan/laseroids/internal/core"
	"github.com/vovakirdan/laseroids/internal/registry"
)

// ID is the registry and score-storage identifier.
const ID = "laseroids"

// hudHeight is the number of screen rows used by the status line.
const hudHeight = 1

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, ok := config.ParsePreset(preset)
	if !ok {
		p = ""
	}
	difficultyPreset = p
}

// LoadConfig loads the configuration the game will use, with the current
// preset applied, and validates it.
func LoadConfig() (config.LaseroidsConfig, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.LaseroidsConfig{}, err
	}
	config.ApplyLaseroidsPreset(&cfg, difficultyPreset)
	if err := cfg.Validate(); err != nil {
		return config.LaseroidsConfig{}, err
	}
	return cfg, nil
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// Game adapts a World to the platform's Game interface. The world draws
// into an off-screen frame every tick; Render composes it under the HUD.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.LaseroidsConfig
	world   *World
	frame   *core.Screen
	paused  bool
	shield  bool
	cfgErr  error
}

// New creates a new Laseroids game. Call Reset before stepping it.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return ID }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Laseroids" }

// Reset builds a fresh world seeded from runtime.Seed.
// A config that fails to load falls back to the built-in defaults; the
// error is kept for ConfigErr.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := LoadConfig()
	if err != nil {
		cfg = config.DefaultLaseroidsConfig()
		config.ApplyLaseroidsPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.cfgErr = err

	g.frame = core.NewScreen(runtime.ScreenW, max(runtime.ScreenH-hudHeight, 0))
	renderer := NewScreenRenderer(g.frame, core.NewField(cfg.Field.Width, cfg.Field.Height))
	g.world = NewWorld(cfg, runtime.Seed)
	g.world.SetRenderer(renderer)
	g.world.Draw(renderer)

	g.paused = false
	g.shield = false
}

// ConfigErr returns the error from the last config load, if any.
func (g *Game) ConfigErr() error { return g.cfgErr }

// World exposes the underlying simulation.
func (g *Game) World() *World { return g.world }

// Step maps platform actions to commands and runs one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.world.IsGameOver() {
		if in.Has(core.ActionRestart) {
			g.Reset(g.runtime)
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionLeft) {
		g.world.Enqueue(CommandRotateCounterClockwise)
	}
	if in.Has(core.ActionRight) {
		g.world.Enqueue(CommandRotateClockwise)
	}
	if in.Has(core.ActionUp) {
		g.world.Enqueue(CommandAccelerate)
	}
	if in.Has(core.ActionDown) {
		g.world.Enqueue(CommandDecelerate)
	}
	if in.Has(core.ActionShield) {
		g.shield = !g.shield
		if g.shield {
			g.world.Enqueue(CommandShieldOn)
		} else {
			g.world.Enqueue(CommandShieldOff)
		}
	}
	if in.Has(core.ActionFire) {
		g.world.Enqueue(CommandFire)
	}

	g.frame.Clear()
	g.world.RunOneFrame()

	return core.StepResult{State: g.State()}
}

// Render draws the HUD and the last frame into dst.
func (g *Game) Render(dst *core.Screen) {
	if g.frame.Width() != dst.Width() || g.frame.Height() != dst.Height()-hudHeight {
		// Terminal was resized; redraw the current state at the new size.
		g.frame.Resize(dst.Width(), max(dst.Height()-hudHeight, 0))
		g.world.Draw(NewScreenRenderer(g.frame, g.world.Field()))
	}

	for y := range g.frame.Height() {
		for x := range g.frame.Width() {
			c := g.frame.GetCell(x, y)
			dst.SetColor(x, y+hudHeight, c.Rune, c.Color)
		}
	}

	p := g.world.Player()
	hud := fmt.Sprintf("SCORE %d  LIVES %d  THRUST %d", g.world.Score(), g.world.Lives(), p.Acceleration)
	if p.Shield {
		hud += "  SHIELD"
	}
	dst.DrawTextColor(0, 0, hud, core.ColorBrightWhite)

	switch {
	case g.world.IsGameOver():
		drawBanner(dst, "GAME OVER", fmt.Sprintf("Score: %d", g.world.Score()), "Press R to restart")
	case g.paused:
		drawBanner(dst, "PAUSED")
	}
}

// drawBanner draws centered lines in a box, blanking the playfield behind it.
func drawBanner(dst *core.Screen, lines ...string) {
	w := 0
	for _, l := range lines {
		w = max(w, utf8.RuneCountInString(l))
	}
	box := core.NewRect((dst.Width()-w)/2-2, (dst.Height()-len(lines))/2-1, w+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+1+i, l)
	}
}

// State returns the platform-level game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.world.Score(),
		Lives:    g.world.Lives(),
		GameOver: g.world.IsGameOver(),
		Paused:   g.paused,
	}
}

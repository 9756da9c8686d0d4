package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/laseroids/internal/core"
	"github.com/vovakirdan/laseroids/internal/laseroids"
	"github.com/vovakirdan/laseroids/internal/registry"
	"github.com/vovakirdan/laseroids/internal/storage"
)

// helpHeight is the number of rows reserved for the key help line.
const helpHeight = 1

// worldGame is implemented by games that expose their simulation, so the
// platform can record run statistics.
type worldGame interface {
	World() *laseroids.World
}

// configErrer is implemented by games that fall back to built-in defaults
// when their config fails to load.
type configErrer interface {
	ConfigErr() error
}

// Options configures a play session.
type Options struct {
	Runtime    core.RuntimeConfig
	Store      *storage.Store // nil disables score saving
	Logger     *log.Logger
	Difficulty string // recorded with saved runs
}

// Model is the Bubble Tea model for a play session.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	opts       Options
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	runSaved   bool // Whether the current game over has been recorded
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, opts Options) Model {
	// Use time-based seed if not specified
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(opts.Runtime.ScreenW, max(opts.Runtime.ScreenH-helpHeight, 0)),
		opts:       opts,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the tick loop. The game must already be Reset.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.Runtime.TickInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.opts.Runtime.ScreenW = msg.Width
		m.opts.Runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-helpHeight, 0))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleTick runs one simulation step with the input gathered since the last tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if wasOver && !m.gameState.GameOver {
		m.opts.Logger.Info("game restarted")
		m.logConfigErr()
		m.runSaved = false
	}
	if m.gameState.GameOver && !m.runSaved {
		m.saveRun()
		m.runSaved = true
	}

	return m, tickCmd(m.opts.Runtime.TickInterval())
}

// saveRun records the finished game. Failures are logged, never fatal.
func (m Model) saveRun() {
	run := storage.Run{
		Score:      m.gameState.Score,
		Seed:       m.opts.Runtime.Seed,
		Difficulty: m.opts.Difficulty,
	}
	if wg, ok := m.game.(worldGame); ok {
		w := wg.World()
		stats := w.Stats()
		run.Ticks = int(w.Tick()) //#nosec G115 -- tick count fits in int
		run.AsteroidsDestroyed = stats.AsteroidsDestroyed
		run.AliensDestroyed = stats.AliensDestroyed
		run.Deaths = stats.Deaths
		m.opts.Logger.Debug("run stats", "bullets", stats.BulletsFired, "dropped", stats.DroppedSpawns, "waves", stats.Waves)
	}

	m.opts.Logger.Info("game over", "score", run.Score, "ticks", run.Ticks)
	if m.opts.Store == nil || run.Score == 0 {
		return
	}
	if best, err := m.opts.Store.HighScore(); err != nil {
		m.opts.Logger.Warn("failed to read high score", "error", err)
	} else if run.Score > best {
		m.opts.Logger.Info("new high score", "score", run.Score, "previous", best)
	}
	if _, err := m.opts.Store.SaveRun(run); err != nil {
		m.opts.Logger.Warn("failed to save run", "error", err)
		return
	}
	m.opts.Logger.Info("run saved", "score", run.Score)
}

// resetGame starts a new game sized to the model's screen.
func (m Model) resetGame() {
	rt := m.opts.Runtime
	rt.ScreenW, rt.ScreenH = m.screen.Width(), m.screen.Height()
	m.game.Reset(rt)
	m.logConfigErr()
}

// logConfigErr reports a config that failed to load during the last reset.
func (m Model) logConfigErr() {
	if ce, ok := m.game.(configErrer); ok && ce.ConfigErr() != nil {
		m.opts.Logger.Warn("config failed to load, using defaults", "error", ce.ConfigErr())
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run resets the game and starts the Bubble Tea program.
func Run(game registry.Game, opts Options) error {
	model := NewModel(game, opts)
	model.resetGame()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}

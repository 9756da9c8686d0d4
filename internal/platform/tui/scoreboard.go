package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/laseroids/internal/storage"
)

// maxRuns is the number of runs loaded into the scoreboard.
const maxRuns = 100

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	emptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4)
)

// scoreboardKeys extends the table's navigation keys with quit.
type scoreboardKeys struct {
	nav  table.KeyMap
	Quit key.Binding
}

func (k scoreboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.nav.LineUp, k.nav.LineDown, k.nav.GotoTop, k.nav.GotoBottom, k.Quit}
}

func (k scoreboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// ScoreboardModel lists the best recorded runs.
type ScoreboardModel struct {
	runs     []storage.Run
	summary  *storage.Summary
	table    table.Model
	help     help.Model
	keys     scoreboardKeys
	width    int
	quitting bool
}

// NewScoreboardModel loads the best runs from store.
func NewScoreboardModel(store *storage.Store, width, height int) (ScoreboardModel, error) {
	runs, err := store.TopRuns(maxRuns)
	if err != nil {
		return ScoreboardModel{}, err
	}
	summary, err := store.Summary()
	if err != nil {
		return ScoreboardModel{}, err
	}

	t := newRunsTable(runs, height)
	return ScoreboardModel{
		runs:    runs,
		summary: summary,
		table:   t,
		help:    help.New(),
		keys: scoreboardKeys{
			nav:  t.KeyMap,
			Quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
		},
		width: width,
	}, nil
}

// newRunsTable builds a focused table of runs that fits in height rows.
func newRunsTable(runs []storage.Run, height int) table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 5},
			{Title: "Score", Width: 8},
			{Title: "Rocks", Width: 6},
			{Title: "Aliens", Width: 6},
			{Title: "Time", Width: 7},
			{Title: "Level", Width: 7},
			{Title: "Date", Width: 13},
		}),
		table.WithRows(runRows(runs)),
		table.WithFocused(true),
		table.WithHeight(max(height-8, 3)), // title, summary, borders and help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	t.SetStyles(s)
	return t
}

// runRows formats runs as table rows. Play time assumes defaultTickRate.
func runRows(runs []storage.Run) []table.Row {
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		level := r.Difficulty
		if level == "" {
			level = "-"
		}
		played := time.Duration(r.Ticks) * time.Second / defaultTickRate
		rows[i] = table.Row{
			"#" + strconv.Itoa(i+1),
			strconv.Itoa(r.Score),
			strconv.Itoa(r.AsteroidsDestroyed),
			strconv.Itoa(r.AliensDestroyed),
			played.Truncate(time.Second).String(),
			level,
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles navigation, resizing and quit.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.table.SetHeight(max(msg.Height-8, 3))
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the title, the summary line, the table and the help line.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(centerText("LASEROIDS HIGH SCORES", m.width)))
	b.WriteByte('\n')
	if s := m.summary; s != nil && s.RunsCount > 0 {
		line := fmt.Sprintf("%d runs  best %d  avg %.0f  rocks %d  aliens %d",
			s.RunsCount, s.HighScore, s.AvgScore, s.TotalAsteroids, s.TotalAliens)
		b.WriteString(helpStyle.Render(centerText(line, m.width)))
	}
	b.WriteString("\n\n")

	if len(m.runs) == 0 {
		b.WriteString(boxStyle.Render(emptyStyle.Render("No runs recorded yet.\nPlay a game to set a high score!")))
	} else {
		b.WriteString(boxStyle.Render(m.table.View()))
	}

	b.WriteByte('\n')
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// centerText left-pads text so it sits in the middle of width columns.
func centerText(text string, width int) string {
	if pad := (width - lipgloss.Width(text)) / 2; pad > 0 {
		return strings.Repeat(" ", pad) + text
	}
	return text
}

// RunScoreboard shows the scoreboard until the user quits.
func RunScoreboard(store *storage.Store, width, height int) error {
	m, err := NewScoreboardModel(store, width, height)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

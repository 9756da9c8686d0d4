package tui

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/laseroids/internal/core"
	"github.com/vovakirdan/laseroids/internal/laseroids"
	"github.com/vovakirdan/laseroids/internal/storage"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"d", runeKey('d'), core.ActionRight, false},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"s", runeKey('s'), core.ActionDown, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionFire, false},
		{"e", runeKey('e'), core.ActionShield, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"r", runeKey('r'), core.ActionRestart, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := keys.MapKey(tc.msg)
			if action != tc.action || quit != tc.quit {
				t.Errorf("MapKey(%q) = %v, %v; expected %v, %v", tc.msg.String(), action, quit, tc.action, tc.quit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	keys := DefaultKeyMap()
	frame := core.NewInputFrame()

	if keys.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyLeft}, &frame) {
		t.Error("left should not quit")
	}
	keys.MapKeyToFrame(runeKey('z'), &frame)
	if !frame.Has(core.ActionLeft) || frame.Len() != 1 {
		t.Errorf("frame = %v, expected only Left", frame)
	}
}

func TestRenderScreenPlain(t *testing.T) {
	s := core.NewScreen(3, 2)
	s.DrawText(0, 0, "abc")

	if got := RenderScreen(s); got != "abc\n   " {
		t.Errorf("RenderScreen = %q", got)
	}

	s.SetColor(1, 1, '#', core.ColorGray)
	if got := RenderScreen(s); !strings.Contains(got, "#") {
		t.Errorf("colored cell missing from %q", got)
	}
}

func TestTickCmd(t *testing.T) {
	if tickCmd(time.Millisecond) == nil {
		t.Error("tickCmd should return a command")
	}
	if got := (core.RuntimeConfig{TickRate: 0}).TickInterval(); got != time.Second/60 {
		t.Errorf("default interval = %v", got)
	}
	if got := (core.RuntimeConfig{TickRate: 50}).TickInterval(); got != 20*time.Millisecond {
		t.Errorf("50 Hz interval = %v", got)
	}
}

func newTestModel(t *testing.T, store *storage.Store) (Model, *laseroids.Game) {
	t.Helper()
	g := laseroids.New()
	m := NewModel(g, Options{
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7},
		Store:   store,
	})
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 23, TickRate: 60, Seed: 7})
	return m, g
}

func TestModelTickAndQuit(t *testing.T) {
	m, g := newTestModel(t, nil)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if cmd != nil {
		t.Error("a game key should not return a command")
	}
	m = next.(Model)

	next, cmd = m.Update(TickMsg(time.Now()))
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	m = next.(Model)
	if g.World().Tick() != 1 {
		t.Errorf("world tick = %d, expected 1", g.World().Tick())
	}
	if g.World().Player().Acceleration != 1 {
		t.Errorf("thrust key not applied, acceleration = %d", g.World().Player().Acceleration)
	}
	if m.inputFrame.Has(core.ActionUp) {
		t.Error("input frame should be cleared after a tick")
	}
	if !strings.Contains(m.View(), "SCORE") {
		t.Error("view should contain the HUD")
	}

	next, cmd = m.Update(runeKey('q'))
	if cmd == nil {
		t.Error("quit should return tea.Quit")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestModelResize(t *testing.T) {
	m, _ := newTestModel(t, nil)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)
	if m.screen.Width() != 100 || m.screen.Height() != 30-helpHeight {
		t.Errorf("screen = %dx%d, expected 100x%d", m.screen.Width(), m.screen.Height(), 30-helpHeight)
	}
}

func TestModelLogsConfigFallback(t *testing.T) {
	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("field: [not a map"), 0o644); err != nil {
		t.Fatal(err)
	}
	laseroids.SetConfigPath(bad)
	t.Cleanup(func() { laseroids.SetConfigPath("") })

	var buf bytes.Buffer
	g := laseroids.New()
	m := NewModel(g, Options{
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 3},
		Logger:  log.New(&buf),
	})
	m.resetGame()

	if g.ConfigErr() == nil {
		t.Fatal("expected a config error from the malformed file")
	}
	if !strings.Contains(buf.String(), "config failed to load") {
		t.Errorf("config error not logged, log = %q", buf.String())
	}
	if g.World() == nil || g.World().Lives() != laseroids.StartingLives {
		t.Error("game should still start on the built-in defaults")
	}
}

func TestModelLogsNewHighScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()
	if _, err := store.SaveRun(storage.Run{Score: 50}); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	var buf bytes.Buffer
	m, _ := newTestModel(t, store)
	m.opts.Logger = log.New(&buf)

	m.gameState = core.GameState{Score: 40, GameOver: true}
	m.saveRun()
	if strings.Contains(buf.String(), "new high score") {
		t.Errorf("40 is not a high score, log = %q", buf.String())
	}

	m.gameState.Score = 90
	m.saveRun()
	if !strings.Contains(buf.String(), "new high score") {
		t.Errorf("90 should be logged as a high score, log = %q", buf.String())
	}
}

func TestModelSaveRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	m, g := newTestModel(t, store)
	m.opts.Difficulty = "hard"
	m.Update(TickMsg(time.Now()))

	m.gameState = core.GameState{Score: 60, GameOver: true}
	m.saveRun()

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("saved %d runs, expected 1", len(runs))
	}
	r := runs[0]
	if r.Score != 60 || r.Seed != 7 || r.Difficulty != "hard" {
		t.Errorf("run = %+v", r)
	}
	if r.Ticks != int(g.World().Tick()) {
		t.Errorf("run ticks = %d, expected %d", r.Ticks, g.World().Tick())
	}

	// Zero scores are not recorded.
	m.gameState.Score = 0
	m.saveRun()
	if n, _ := store.TopRuns(10); len(n) != 1 {
		t.Errorf("zero score was saved")
	}
}

func TestScoreboard(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	empty, err := NewScoreboardModel(store, 80, 24)
	if err != nil {
		t.Fatalf("NewScoreboardModel: %v", err)
	}
	if !strings.Contains(empty.View(), "No runs recorded yet") {
		t.Error("empty scoreboard should say so")
	}

	for _, score := range []int{40, 120} {
		if _, err := store.SaveRun(storage.Run{Score: score, Ticks: 3600}); err != nil {
			t.Fatalf("SaveRun: %v", err)
		}
	}
	m, err := NewScoreboardModel(store, 80, 24)
	if err != nil {
		t.Fatalf("NewScoreboardModel: %v", err)
	}
	if !strings.Contains(m.View(), "LASEROIDS HIGH SCORES") {
		t.Error("title missing")
	}
	if !strings.Contains(m.View(), "best 120") {
		t.Error("summary missing")
	}

	rows := runRows(m.runs)
	if rows[0][0] != "#1" || rows[0][1] != "120" {
		t.Errorf("first row = %v, expected best run first", rows[0])
	}
	if rows[0][4] != "1m0s" || rows[0][5] != "-" {
		t.Errorf("first row = %v", rows[0])
	}

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil || next.(ScoreboardModel).View() != "" {
		t.Error("q should quit the scoreboard")
	}
}

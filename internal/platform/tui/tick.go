// Package tui runs Laseroids in the terminal with Bubble Tea.
// It owns the frame pacing, key bindings and screen output; the simulation
// itself knows nothing about the terminal.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// defaultTickRate is the rate the scoreboard assumes when converting ticks
// to play time.
const defaultTickRate = 60

// TickMsg is sent to trigger a simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends one TickMsg after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

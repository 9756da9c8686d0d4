package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/laseroids/internal/core"
)

// colorStyles holds one foreground style per palette color.
var colorStyles [core.NumColors]lipgloss.Style

func init() {
	for c := range core.NumColors {
		colorStyles[c] = lipgloss.NewStyle()
		if code := c.ANSI(); code != "" {
			colorStyles[c] = colorStyles[c].Foreground(lipgloss.Color(code))
		}
	}
}

// helpStyle dims the key help line.
var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

func styleFor(c core.Color) lipgloss.Style {
	if c < core.NumColors {
		return colorStyles[c]
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		renderRow(&sb, s, y)
	}
	return sb.String()
}

// renderRow writes one row, styling each run of same-colored cells once.
// Uncolored runs are written without escape sequences.
func renderRow(sb *strings.Builder, s *core.Screen, y int) {
	var run strings.Builder
	runColor := core.ColorDefault

	flush := func() {
		if run.Len() == 0 {
			return
		}
		if runColor == core.ColorDefault {
			sb.WriteString(run.String())
		} else {
			sb.WriteString(styleFor(runColor).Render(run.String()))
		}
		run.Reset()
	}

	for x := range s.Width() {
		cell := s.GetCell(x, y)
		if cell.Color != runColor {
			flush()
			runColor = cell.Color
		}
		run.WriteRune(cell.Rune)
	}
	flush()
}

package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pang/internal/core"
)

// colorStyles maps every core.Color to a lipgloss style.
// core.ColorDefault keeps the terminal's own colors.
var colorStyles = func() [256]lipgloss.Style {
	var styles [256]lipgloss.Style
	styles[core.ColorDefault] = lipgloss.NewStyle()
	for i := 1; i < len(styles); i++ {
		styles[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(strconv.Itoa(i)))
	}
	return styles
}()

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(colorStyles[startColor].Render(run.String()))
		}
	}
	return sb.String()
}

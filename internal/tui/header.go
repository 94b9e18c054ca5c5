package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/isim/sbsearch/internal/ui"
)

func RenderHeader(bundlePath string, width int) string {
	left := lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.Color("#F9FAFB")).
		Render(fmt.Sprintf(" sbsearch | %s", bundlePath))

	gap := width - lipgloss.Width(left)
	if gap < 0 {
		gap = 0
	}
	padding := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.NewStyle().
		Background(ui.ColorHighlight).
		Width(width).
		Render(left + padding)
}

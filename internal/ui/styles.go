package ui

import "github.com/charmbracelet/lipgloss"

var (
	ColorPrimary   = lipgloss.Color("#10B981")
	ColorFailure   = lipgloss.Color("#EF4444")
	ColorWarning   = lipgloss.Color("#F59E0B")
	ColorInfo      = lipgloss.Color("#3B82F6")
	ColorMuted     = lipgloss.Color("#6B7280")
	ColorBorder    = lipgloss.Color("#374151")
	ColorHighlight = lipgloss.Color("#1F2937")

	StylePane = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)

	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	StyleLabel = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	StyleKey   = lipgloss.NewStyle().Bold(true).Foreground(ColorInfo)
	StyleMuted = lipgloss.NewStyle().Foreground(ColorMuted)

	StyleError = lipgloss.NewStyle().Foreground(ColorFailure)
	StyleWarn  = lipgloss.NewStyle().Foreground(ColorWarning)

	// StyleSelected marks the current line of the page.
	StyleSelected = lipgloss.NewStyle().Bold(true).Background(ColorHighlight)

	// StyleMatch emphasizes lines matching the free-text search field.
	StyleMatch = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FCD34D")).
			Background(lipgloss.Color("#78350F"))
)

// LevelStyle maps an inferred severity to its display style. Unknown
// levels render unstyled.
func LevelStyle(level string) lipgloss.Style {
	switch level {
	case "error", "fatal", "panic":
		return StyleError
	case "warn", "warning":
		return StyleWarn
	default:
		return lipgloss.NewStyle()
	}
}

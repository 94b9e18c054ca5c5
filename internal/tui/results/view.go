package results

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/isim/sbsearch/internal/model"
	"github.com/isim/sbsearch/internal/ui"
)

// Model renders one page of the result cache with a line selection and
// an optional free-text highlight. The highlight is a visual aid only:
// it never removes entries from the page.
type Model struct {
	bundlePath string
	entries    []model.Entry
	offset     int // absolute cache index of entries[0]
	cursor     int
	filter     string
	width      int
	height     int
}

func New(bundlePath string) Model {
	return Model{bundlePath: bundlePath, width: 80, height: 24}
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetWindow replaces the visible page and resets the selection to the
// first line.
func (m *Model) SetWindow(entries []model.Entry, offset int) {
	m.entries = entries
	m.offset = offset
	m.cursor = 0
}

func (m *Model) SetFilter(filter string) { m.filter = filter }

func (m Model) Filter() string { return m.filter }

func (m Model) Cursor() int { return m.cursor }

// Selection moves saturate at the page edges; there is no wraparound.

func (m *Model) CursorUp() {
	if m.cursor > 0 {
		m.cursor--
	}
}

func (m *Model) CursorDown() {
	if m.cursor < len(m.entries)-1 {
		m.cursor++
	}
}

func (m *Model) CursorFirst() { m.cursor = 0 }

func (m *Model) CursorLast() {
	if len(m.entries) > 0 {
		m.cursor = len(m.entries) - 1
	}
}

func (m Model) Selected() *model.Entry {
	if len(m.entries) == 0 || m.cursor >= len(m.entries) {
		return nil
	}
	return &m.entries[m.cursor]
}

// SelectedLine is the 1-based absolute cache index of the selection, 0
// when the page is empty.
func (m Model) SelectedLine() int {
	if len(m.entries) == 0 {
		return 0
	}
	return m.offset + m.cursor + 1
}

// SelectedPath is the selected entry's path relative to the bundle root.
func (m Model) SelectedPath() string {
	entry := m.Selected()
	if entry == nil {
		return ""
	}
	return strings.TrimPrefix(entry.Path, m.bundlePath)
}

func (m Model) View() string {
	if len(m.entries) == 0 {
		return ui.StyleMuted.Render("No log entries found.")
	}

	// Keep the cursor visible: scroll so it sits at the bottom edge
	// once it moves past the first screenful.
	start := 0
	if m.height > 0 && m.cursor >= m.height {
		start = m.cursor - m.height + 1
	}
	end := len(m.entries)
	if m.height > 0 && start+m.height < end {
		end = start + m.height
	}

	truncate := lipgloss.NewStyle().MaxWidth(m.width)
	var b strings.Builder
	for i := start; i < end; i++ {
		entry := m.entries[i]

		marker := "   "
		style := ui.LevelStyle(entry.Level)
		switch {
		case i == m.cursor:
			marker = ">> "
			style = ui.StyleSelected
		case m.matchesFilter(entry.Content):
			style = ui.StyleMatch
		}

		b.WriteString(truncate.Render(style.Render(marker + entry.Content)))
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// matchesFilter is the case-insensitive highlight test for the
// free-text search field, distinct from the keyword match that
// populated the cache.
func (m Model) matchesFilter(content string) bool {
	if m.filter == "" {
		return false
	}
	return strings.Contains(strings.ToLower(content), strings.ToLower(m.filter))
}

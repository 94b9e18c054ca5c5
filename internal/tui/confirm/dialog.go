package confirm

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ResultMsg is emitted when the user answers the dialog.
type ResultMsg struct {
	Confirmed bool
	Action    string
}

type Model struct {
	Title   string
	Message string
	Action  string
	active  bool
}

func New(title, message, action string) Model {
	return Model{
		Title:   title,
		Message: message,
		Action:  action,
		active:  true,
	}
}

func (m Model) IsActive() bool { return m.active }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.active {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "y", "Y":
			m.active = false
			return m, func() tea.Msg {
				return ResultMsg{Confirmed: true, Action: m.Action}
			}
		case "n", "N":
			m.active = false
			return m, func() tea.Msg {
				return ResultMsg{Confirmed: false, Action: m.Action}
			}
		}
	}
	return m, nil
}

func (m Model) View() string {
	if !m.active {
		return ""
	}

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#F59E0B")).
		Padding(1, 2).
		Width(50)

	title := lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.Color("#F59E0B")).
		Render(m.Title)

	return style.Render(fmt.Sprintf("%s\n\n%s (y/n)", title, m.Message))
}

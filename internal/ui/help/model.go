package help

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/notifications/internal/keys"
	"github.com/nhle/notifications/internal/model"
	"github.com/nhle/notifications/internal/theme"
)

// Model is the help overlay: key bindings plus a legend of the
// notification type badges.
type Model struct {
	keys   *keys.KeyMap
	help   help.Model
	width  int
	height int
}

// New creates a new help view model.
func New(keys *keys.KeyMap, width, height int) Model {
	h := help.New()
	h.Width = width
	return Model{
		keys:   keys,
		help:   h,
		width:  width,
		height: height,
	}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	return m, nil
}

// View renders the help overlay.
func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1)

	m.help.Width = m.width - 4
	m.help.ShowAll = true

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render("Keyboard Shortcuts"),
		m.help.View(m.keys),
		"",
		titleStyle.Render("Notification Types"),
		m.legend(),
	)

	return theme.DetailPanelStyle.
		Width(m.width - 4).
		Height(m.height - 4).
		Render(content)
}

// legend lists each type's key, badge and label.
func (m Model) legend() string {
	rows := make([]string, 0, len(model.NotificationTypes()))
	for _, t := range model.NotificationTypes() {
		k := m.keys.FilterFor(t).Help().Key
		badge := theme.BadgeStyle(t).Render(theme.TypeStyleFor(t).Icon)
		rows = append(rows, fmt.Sprintf("%s  %s  %s", theme.HelpStyle.Render(k), badge, t.Label()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// SetSize updates the help view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width - 4
}

package detail

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/notifications/internal/format"
	"github.com/nhle/notifications/internal/keys"
	"github.com/nhle/notifications/internal/model"
	"github.com/nhle/notifications/internal/theme"
)

// BackMsg signals the parent to navigate back to the list view.
type BackMsg struct{}

// Model shows a single notification in full.
type Model struct {
	notification *model.Notification
	viewport     viewport.Model
	keys         *keys.KeyMap
	formatter    *format.Formatter
	now          func() time.Time
	width        int
	height       int
}

// New creates a new detail view model.
func New(k *keys.KeyMap, f *format.Formatter, width, height int) Model {
	vp := viewport.New(width, height-2)
	vp.Style = lipgloss.NewStyle()

	return Model{
		viewport:  vp,
		keys:      k,
		formatter: f,
		now:       time.Now,
		width:     width,
		height:    height,
	}
}

// Init returns the initial command for the detail view.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the detail view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, m.keys.Back) {
		return m, func() tea.Msg {
			return BackMsg{}
		}
	}

	// Delegate to viewport for scrolling (j/k, up/down, pgup/pgdn)
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the detail view.
func (m Model) View() string {
	if m.notification == nil {
		emptyStyle := lipgloss.NewStyle().
			Width(m.width).
			Height(m.height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.ColorGray)
		return emptyStyle.Render("No notification selected")
	}

	return m.viewport.View()
}

// renderContent builds the full detail content string for the viewport.
func (m Model) renderContent() string {
	if m.notification == nil {
		return ""
	}

	n := m.notification
	style := theme.TypeStyleFor(n.Type)
	var sections []string

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.ColorWhite)
	sections = append(sections, lipgloss.JoinHorizontal(
		lipgloss.Top,
		theme.BadgeStyle(n.Type).Render(style.Icon),
		"  ",
		titleStyle.Render(n.Title),
	))
	sections = append(sections, "")

	metaStyle := lipgloss.NewStyle().Foreground(theme.ColorGray)
	valStyle := lipgloss.NewStyle().Foreground(theme.ColorWhite)

	stamp := format.Timestamp(n.SendAt)
	if m.formatter != nil {
		stamp = m.formatter.Timestamp(n.SendAt)
	}

	rows := [][2]string{
		{"Type:", n.Type.Label()},
		{"ID:", fmt.Sprintf("#%d", n.ID)},
		{"Sent:", stamp},
		{"Age:", format.Relative(m.now(), n.SendAt)},
	}
	for _, r := range rows {
		sections = append(sections, fmt.Sprintf(
			"%s %s",
			metaStyle.Width(7).Render(r[0]),
			valStyle.Render(r[1]),
		))
	}

	sepStyle := lipgloss.NewStyle().Foreground(theme.ColorSubtle)
	separator := sepStyle.Render(strings.Repeat("─", max(min(m.width-4, 80), 0)))
	sections = append(sections, "", separator, "")

	sections = append(sections, lipgloss.NewStyle().
		Width(max(m.width-4, 20)).
		Render(n.Body))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetNotification updates the notification being displayed.
func (m *Model) SetNotification(n model.Notification) {
	m.notification = &n
	m.viewport.SetContent(m.renderContent())
	m.viewport.GotoTop()
}

// Notification returns the displayed notification, if any.
func (m Model) Notification() (model.Notification, bool) {
	if m.notification == nil {
		return model.Notification{}, false
	}
	return *m.notification, true
}

// SetSize updates the detail view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height - 2
	if m.notification != nil {
		m.viewport.SetContent(m.renderContent())
	}
}

package notificationlist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/notifications/internal/feed"
	"github.com/nhle/notifications/internal/format"
	"github.com/nhle/notifications/internal/keys"
	"github.com/nhle/notifications/internal/model"
	"github.com/nhle/notifications/internal/theme"
)

// SelectedNotificationMsg is sent when the user opens a notification.
type SelectedNotificationMsg struct {
	Notification model.Notification
}

// FilterChangedMsg is sent after a chip click changes the filter state.
type FilterChangedMsg struct {
	Filter  feed.Filter
	Visible int
}

// chipRowHeight is the caption line plus the bordered chip row.
const chipRowHeight = 4

// Model is the notifications screen: the type filter chips above the
// list of notification cards.
type Model struct {
	list   list.Model
	keys   *keys.KeyMap
	all    []model.Notification
	counts map[model.NotificationType]int
	filter feed.Filter
	width  int
	height int
}

// New creates a new notification list model.
func New(k *keys.KeyMap, f *format.Formatter, width, height int) Model {
	delegate := NotificationDelegate{formatter: f}
	l := list.New([]list.Item{}, delegate, width, listHeight(height))
	l.SetShowTitle(false)
	l.SetShowStatusBar(true)
	l.SetStatusBarItemName("notification", "notifications")
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()

	return Model{
		list:   l,
		keys:   k,
		counts: feed.CountByType(nil),
		width:  width,
		height: height,
	}
}

func listHeight(height int) int {
	h := height - chipRowHeight
	if h < 1 {
		h = 1
	}
	return h
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the notification list view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKeys(msg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// handleKeys maps chip keys to filter clicks and enter to opening the
// selected card. Everything else goes to the list for navigation.
func (m Model) handleKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	for _, t := range model.NotificationTypes() {
		if key.Matches(msg, m.keys.FilterFor(t)) {
			cmd := m.ToggleType(t)
			return m, cmd
		}
	}

	switch {
	case key.Matches(msg, m.keys.ClearFilter):
		cmd := m.SetFilter(feed.NoFilter())
		return m, cmd

	case key.Matches(msg, m.keys.Select):
		item, ok := m.list.SelectedItem().(NotificationItem)
		if !ok {
			return m, nil
		}
		return m, func() tea.Msg {
			return SelectedNotificationMsg{Notification: item.Notification}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// SetNotifications installs a freshly generated batch and resets the
// filter, as a new session starts unfiltered.
func (m *Model) SetNotifications(all []model.Notification) tea.Cmd {
	m.all = all
	m.counts = feed.CountByType(all)
	m.filter = feed.NoFilter()
	return m.refresh()
}

// ToggleType applies a chip click for t.
func (m *Model) ToggleType(t model.NotificationType) tea.Cmd {
	return m.SetFilter(m.filter.Toggle(t))
}

// SetFilter replaces the filter state and re-derives the visible cards.
func (m *Model) SetFilter(f feed.Filter) tea.Cmd {
	m.filter = f
	refresh := m.refresh()
	visible := len(m.list.Items())
	changed := func() tea.Msg {
		return FilterChangedMsg{Filter: f, Visible: visible}
	}
	return tea.Batch(refresh, changed)
}

// refresh rebuilds the list items from the current batch and filter.
func (m *Model) refresh() tea.Cmd {
	visible := feed.Apply(m.all, m.filter)
	items := make([]list.Item, len(visible))
	for i, n := range visible {
		items[i] = NotificationItem{Notification: n}
	}
	m.list.ResetSelected()
	return m.list.SetItems(items)
}

// Filter returns the current filter state.
func (m Model) Filter() feed.Filter {
	return m.filter
}

// Visible returns the notifications currently shown.
func (m Model) Visible() []model.Notification {
	return feed.Apply(m.all, m.filter)
}

// Total returns the size of the session's batch.
func (m Model) Total() int {
	return len(m.all)
}

// Summary describes the view for the header, e.g. "12 of 50 · NEW_POST".
func (m Model) Summary() string {
	if t, ok := m.filter.Selected(); ok {
		return fmt.Sprintf("%d of %d · %s", len(m.list.Items()), len(m.all), t)
	}
	return fmt.Sprintf("%d notifications", len(m.all))
}

// View renders the chip row and the notification cards.
func (m Model) View() string {
	caption := theme.SectionTitleStyle.Render("Notification types")
	chips := m.renderChips()

	var body string
	if len(m.list.Items()) == 0 {
		body = m.renderEmptyState()
	} else {
		body = m.list.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, caption, chips, body)
}

// renderChips draws one chip per notification type, highlighting the
// active one with a check mark.
func (m Model) renderChips() string {
	chips := make([]string, 0, len(model.NotificationTypes()))
	for _, t := range model.NotificationTypes() {
		selected := m.filter.IsActive(t)
		label := fmt.Sprintf("%s %s (%d)", theme.TypeStyleFor(t).Icon, t, m.counts[t])
		if selected {
			label = "✓ " + label
		}
		chips = append(chips, theme.ChipStyle(selected).Render(label))
	}
	return lipgloss.NewStyle().
		PaddingLeft(1).
		MaxWidth(m.width).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, chips...))
}

// renderEmptyState shows guidance text when no cards are visible.
func (m Model) renderEmptyState() string {
	style := lipgloss.NewStyle().
		Width(m.width).
		Height(listHeight(m.height)).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.ColorGray)

	if t, ok := m.filter.Selected(); ok {
		return style.Render(fmt.Sprintf(
			"No %s notifications.\nPress 0 to show all.", t,
		))
	}

	return style.Render(
		"No notifications.\n\nPress r to start a new session.",
	)
}

// SetSize updates the list dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(width, listHeight(height))
}

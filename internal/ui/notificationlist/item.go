package notificationlist

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/notifications/internal/format"
	"github.com/nhle/notifications/internal/model"
	"github.com/nhle/notifications/internal/theme"
)

// NotificationItem wraps a model.Notification so it can be used in a bubbles/list.
type NotificationItem struct {
	Notification model.Notification
}

// FilterValue returns the string used for fuzzy filtering.
func (i NotificationItem) FilterValue() string { return i.Notification.Title }

// Title returns the notification title for the list.
func (i NotificationItem) Title() string { return i.Notification.Title }

// Description returns the notification body for the list.
func (i NotificationItem) Description() string { return i.Notification.Body }

// NotificationDelegate implements list.ItemDelegate and draws each
// notification as a three-line card.
type NotificationDelegate struct {
	formatter *format.Formatter
}

// Height returns the number of lines each card takes.
func (d NotificationDelegate) Height() int { return 3 }

// Spacing returns the number of blank lines between cards.
func (d NotificationDelegate) Spacing() int { return 1 }

// Update handles per-item messages (unused).
func (d NotificationDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render draws a single notification card.
func (d NotificationDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ni, ok := item.(NotificationItem)
	if !ok {
		return
	}
	fmt.Fprint(w, d.renderCard(ni.Notification, m.Width(), index == m.Index()))
}

// renderCard lays the icon badge next to the title, body and timestamp.
func (d NotificationDelegate) renderCard(n model.Notification, width int, selected bool) string {
	style := theme.TypeStyleFor(n.Type)
	badge := theme.BadgeStyle(n.Type).Render(style.Icon)

	textWidth := width - lipgloss.Width(badge) - 5
	if textWidth < 10 {
		textWidth = 10
	}
	clip := lipgloss.NewStyle().MaxWidth(textWidth)

	stamp := format.Timestamp(n.SendAt)
	if d.formatter != nil {
		stamp = d.formatter.Timestamp(n.SendAt)
	}

	text := strings.Join([]string{
		clip.Render(theme.CardTitleStyle.Render(n.Title)),
		clip.Render(theme.CardBodyStyle.Render(n.Body)),
		clip.Render(theme.CardTimeStyle.Render(stamp)),
	}, "\n")

	card := lipgloss.JoinHorizontal(lipgloss.Top, badge, "  ", text)

	if selected {
		return theme.SelectedCardStyle.Render(card)
	}
	return theme.CardStyle.Render(card)
}

package keys

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/nhle/notifications/internal/model"
)

// KeyMap defines the global keybindings for the application.
type KeyMap struct {
	// Navigation
	Down key.Binding
	Up   key.Binding

	// Selection
	Select key.Binding

	// Back / Quit
	Back key.Binding
	Quit key.Binding

	// Command palette
	Command key.Binding

	// Help toggle
	Help key.Binding

	// Type filters, one per notification type
	FilterGeneral    key.Binding
	FilterNewPost    key.Binding
	FilterNewMessage key.Binding
	FilterNewLike    key.Binding
	ClearFilter      key.Binding

	// Session
	Regenerate key.Binding
	Settings   key.Binding
}

// DefaultKeyMap returns the default set of keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open notification"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		Command: key.NewBinding(
			key.WithKeys(":"),
			key.WithHelp(":", "command palette"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		FilterGeneral: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "toggle general"),
		),
		FilterNewPost: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "toggle new post"),
		),
		FilterNewMessage: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "toggle new message"),
		),
		FilterNewLike: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "toggle new like"),
		),
		ClearFilter: key.NewBinding(
			key.WithKeys("0"),
			key.WithHelp("0", "show all"),
		),
		Regenerate: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "new session"),
		),
		Settings: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "settings"),
		),
	}
}

// FilterFor returns the binding that toggles t.
func (k *KeyMap) FilterFor(t model.NotificationType) key.Binding {
	switch t {
	case model.NotificationGeneral:
		return k.FilterGeneral
	case model.NotificationNewPost:
		return k.FilterNewPost
	case model.NotificationNewMessage:
		return k.FilterNewMessage
	case model.NotificationNewLike:
		return k.FilterNewLike
	}
	panic("keys: no filter binding for notification type " + string(t))
}

// ShortHelp returns the most essential keybindings for the compact help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Up, k.Down, k.Select, k.Back,
		k.Quit, k.Help,
	}
}

// FullHelp returns all keybindings grouped by category for the expanded
// help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select, k.Back, k.Quit},
		{k.FilterGeneral, k.FilterNewPost, k.FilterNewMessage, k.FilterNewLike, k.ClearFilter},
		{k.Command, k.Help, k.Regenerate, k.Settings},
	}
}

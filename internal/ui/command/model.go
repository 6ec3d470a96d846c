package command

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/notifications/internal/model"
	"github.com/nhle/notifications/internal/theme"
)

// Action identifies what a palette command does.
type Action int

const (
	ActionFilter Action = iota
	ActionClear
	ActionRegenerate
	ActionSettings
	ActionHelp
	ActionQuit
)

// Command is a parsed palette entry. Type is set only for ActionFilter.
type Command struct {
	Action Action
	Type   model.NotificationType
}

// CommandMsg is emitted when the user executes a command.
type CommandMsg struct {
	Command Command
}

// CommandErrorMsg is emitted when the input does not parse.
type CommandErrorMsg struct {
	Input string
	Err   error
}

// Parse turns palette input such as "filter post" or "clear" into a
// Command.
func Parse(input string) (Command, error) {
	fields := strings.Fields(strings.ToLower(input))
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("empty command")
	}

	switch fields[0] {
	case "filter", "f", "show":
		if len(fields) != 2 {
			return Command{}, fmt.Errorf("usage: filter <general|post|message|like>")
		}
		if fields[1] == "all" {
			return Command{Action: ActionClear}, nil
		}
		t, err := model.ParseNotificationType(fields[1])
		if err != nil {
			return Command{}, err
		}
		return Command{Action: ActionFilter, Type: t}, nil
	case "clear", "all":
		return Command{Action: ActionClear}, nil
	case "regenerate", "new", "refresh":
		return Command{Action: ActionRegenerate}, nil
	case "settings", "config", "configure":
		return Command{Action: ActionSettings}, nil
	case "help":
		return Command{Action: ActionHelp}, nil
	case "quit", "q", "exit":
		return Command{Action: ActionQuit}, nil
	}

	return Command{}, fmt.Errorf("unknown command %q", fields[0])
}

// Model is the command palette view.
type Model struct {
	input  textinput.Model
	err    string
	width  int
	height int
}

// New creates a new command palette model.
func New(width, height int) Model {
	ti := textinput.New()
	ti.Placeholder = "filter post, clear, regenerate, settings, quit..."
	ti.Prompt = ": "
	ti.Focus()
	ti.Width = width - 6

	return Model{
		input:  ti,
		width:  width,
		height: height,
	}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the command palette.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "enter" {
		raw := strings.TrimSpace(m.input.Value())
		if raw == "" {
			return m, nil
		}
		c, err := Parse(raw)
		if err != nil {
			m.err = err.Error()
			return m, func() tea.Msg {
				return CommandErrorMsg{Input: raw, Err: err}
			}
		}
		m.input.Reset()
		m.err = ""
		return m, func() tea.Msg {
			return CommandMsg{Command: c}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the command palette.
func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1)

	parts := []string{titleStyle.Render("Command Palette"), m.input.View()}
	if m.err != "" {
		parts = append(parts, lipgloss.NewStyle().Foreground(theme.ColorRed).Render(m.err))
	}

	return theme.DetailPanelStyle.
		Width(m.width - 4).
		Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// SetSize updates the command palette dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.input.Width = width - 6
}

// Focus gives keyboard focus to the text input and clears a stale error.
func (m *Model) Focus() tea.Cmd {
	m.err = ""
	m.input.Reset()
	return m.input.Focus()
}

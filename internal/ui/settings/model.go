package settings

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/notifications/internal/model"
	"github.com/nhle/notifications/internal/theme"
)

// SettingsSavedMsg carries the edited generator settings. The parent
// validates and persists them, then starts a new session.
type SettingsSavedMsg struct {
	Generator model.GeneratorConfig
}

// SettingsCancelMsg is dispatched when the user aborts the form.
type SettingsCancelMsg struct{}

// formBindings holds form field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	count      string
	seed       string
	maxDaysAgo string
	paired     bool
}

// Model is the Bubble Tea model for the generator settings form.
type Model struct {
	form   *huh.Form
	fb     *formBindings
	width  int
	height int
}

// New creates a new settings form model.
func New(width, height int) Model {
	return Model{
		fb:     &formBindings{},
		width:  width,
		height: height,
	}
}

// Start fills the form from cfg and returns its init command.
func (m *Model) Start(cfg model.GeneratorConfig) tea.Cmd {
	m.fb.count = strconv.Itoa(cfg.Count)
	m.fb.seed = strconv.FormatInt(cfg.Seed, 10)
	m.fb.maxDaysAgo = strconv.Itoa(cfg.MaxDaysAgo)
	m.fb.paired = cfg.PairedContent
	m.form = m.buildForm()
	return m.form.Init()
}

// Update handles messages for the settings form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		return m, m.handleSubmit()
	}
	if m.form.State == huh.StateAborted {
		return m, func() tea.Msg { return SettingsCancelMsg{} }
	}

	return m, cmd
}

// View renders the settings form.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1)

	hint := theme.HelpStyle.Render("Saving starts a new session.")
	content := titleStyle.Render("Feed Settings") + "\n" + m.form.View() + "\n" + hint

	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(content)
}

// SetSize updates the form dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Notifications per session").
				Placeholder("50").
				Value(&m.fb.count).
				Validate(validateIntRange("Count", 0, 10000)),
			huh.NewInput().
				Title("Random seed").
				Description("0 picks a new seed every session").
				Value(&m.fb.seed).
				Validate(validateInt64("Seed")),
			huh.NewInput().
				Title("Max days ago").
				Placeholder("10").
				Value(&m.fb.maxDaysAgo).
				Validate(validateIntRange("Max days ago", 0, 365)),
			huh.NewConfirm().
				Title("Pair title and body").
				Description("Off samples them independently").
				Value(&m.fb.paired),
		),
	).WithWidth(m.formWidth()).WithHeight(m.formHeight())
}

func (m Model) handleSubmit() tea.Cmd {
	count, _ := strconv.Atoi(strings.TrimSpace(m.fb.count))
	seed, _ := strconv.ParseInt(strings.TrimSpace(m.fb.seed), 10, 64)
	maxDays, _ := strconv.Atoi(strings.TrimSpace(m.fb.maxDaysAgo))

	cfg := model.GeneratorConfig{
		Count:         count,
		Seed:          seed,
		MaxDaysAgo:    maxDays,
		PairedContent: m.fb.paired,
	}
	return func() tea.Msg { return SettingsSavedMsg{Generator: cfg} }
}

func (m Model) formWidth() int {
	w := m.width - 4
	if w < 40 {
		w = 40
	}
	if w > 100 {
		w = 100
	}
	return w
}

func (m Model) formHeight() int {
	h := m.height - 4
	if h < 10 {
		h = 10
	}
	return h
}

func validateIntRange(fieldName string, lo, hi int) func(string) error {
	return func(s string) error {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("%s must be a whole number", fieldName)
		}
		if n < lo || n > hi {
			return fmt.Errorf("%s must be between %d and %d", fieldName, lo, hi)
		}
		return nil
	}
}

func validateInt64(fieldName string) func(string) error {
	return func(s string) error {
		if _, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err != nil {
			return fmt.Errorf("%s must be a whole number", fieldName)
		}
		return nil
	}
}

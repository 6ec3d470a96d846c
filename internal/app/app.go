package app

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/nhle/notifications/internal/feed"
	"github.com/nhle/notifications/internal/format"
	"github.com/nhle/notifications/internal/keys"
	"github.com/nhle/notifications/internal/model"
	"github.com/nhle/notifications/internal/ui"
	"github.com/nhle/notifications/internal/ui/command"
	"github.com/nhle/notifications/internal/ui/detail"
	helpview "github.com/nhle/notifications/internal/ui/help"
	"github.com/nhle/notifications/internal/ui/notificationlist"
	"github.com/nhle/notifications/internal/ui/settings"
)

// ViewState represents the current active view in the application.
type ViewState int

const (
	ViewList ViewState = iota
	ViewDetail
	ViewHelp
	ViewCommand
	ViewSettings
)

// settingsAppliedMsg reports the outcome of saving edited settings.
type settingsAppliedMsg struct {
	cfg model.AppConfig
	err error
}

// Model is the root Bubble Tea model that owns the session and routes
// messages between views.
type Model struct {
	currentView   ViewState
	previousView  ViewState
	layout        ui.Layout
	keys          *keys.KeyMap
	cfg           *model.AppConfig
	configPath    string
	logger        *zap.Logger
	clock         func() time.Time
	session       Session
	list          notificationlist.Model
	detail        detail.Model
	helpView      helpview.Model
	commandView   command.Model
	settingsView  settings.Model
	ready         bool
	statusMessage string
}

// Option customizes the root model.
type Option func(*Model)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(m *Model) { m.logger = l }
}

// WithConfigPath sets where edited settings are saved. Empty disables
// saving.
func WithConfigPath(path string) Option {
	return func(m *Model) { m.configPath = path }
}

// WithClock overrides the session clock.
func WithClock(now func() time.Time) Option {
	return func(m *Model) { m.clock = now }
}

// New creates the root application model for cfg.
func New(cfg *model.AppConfig, opts ...Option) (Model, error) {
	f, err := format.New(cfg.Display.Locale)
	if err != nil {
		return Model{}, fmt.Errorf("display locale: %w", err)
	}

	k := keys.DefaultKeyMap()
	m := Model{
		currentView:  ViewList,
		keys:         k,
		cfg:          cfg,
		logger:       zap.NewNop(),
		clock:        time.Now,
		list:         notificationlist.New(k, f, 80, 24),
		detail:       detail.New(k, f, 80, 24),
		helpView:     helpview.New(k, 80, 24),
		commandView:  command.New(80, 24),
		settingsView: settings.New(80, 24),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m, nil
}

// Init generates the first session's notifications.
func (m Model) Init() tea.Cmd {
	return m.startSession()
}

// Update handles messages and dispatches to the active view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = ui.NewLayout(msg.Width, msg.Height)
		m.ready = true
		contentWidth := m.layout.ContentWidth()
		contentHeight := m.layout.ContentHeight()
		m.list.SetSize(contentWidth, contentHeight)
		m.detail.SetSize(contentWidth, contentHeight)
		m.helpView.SetSize(contentWidth, contentHeight)
		m.commandView.SetSize(contentWidth, contentHeight)
		m.settingsView.SetSize(contentWidth, contentHeight)
		// Forward to active view so huh forms can calculate their layout.
		return m.updateActiveView(msg)

	case sessionStartedMsg:
		m.session = msg.session
		m.currentView = ViewList
		m.statusMessage = ""
		return m, m.list.SetNotifications(msg.notifications)

	case notificationlist.FilterChangedMsg:
		m.sessionLogger().Debug("filter changed",
			zap.String("filter", msg.Filter.String()),
			zap.Int("visible", msg.Visible),
		)
		return m, nil

	case notificationlist.SelectedNotificationMsg:
		m.previousView = m.currentView
		m.currentView = ViewDetail
		m.detail.SetNotification(msg.Notification)
		return m, nil

	case detail.BackMsg:
		m.currentView = ViewList
		return m, nil

	case command.CommandMsg:
		m.currentView = m.previousView
		return m, m.executeCommand(msg.Command)

	case command.CommandErrorMsg:
		m.sessionLogger().Debug("bad command", zap.String("input", msg.Input), zap.Error(msg.Err))
		return m, nil

	case settings.SettingsSavedMsg:
		return m, m.applySettings(msg.Generator)

	case settings.SettingsCancelMsg:
		m.currentView = ViewList
		return m, nil

	case settingsAppliedMsg:
		m.currentView = ViewList
		if msg.err != nil {
			m.statusMessage = msg.err.Error()
			m.sessionLogger().Warn("settings not applied", zap.Error(msg.err))
			return m, nil
		}
		cfg := msg.cfg
		m.cfg = &cfg
		m.sessionLogger().Info("settings applied",
			zap.Int("count", cfg.Generator.Count),
			zap.Int64("seed", cfg.Generator.Seed),
		)
		return m, m.startSession()

	case tea.KeyMsg:
		// Global keys that work regardless of current view
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.currentView == ViewList {
				return m, tea.Quit
			}

		case "esc":
			switch m.currentView {
			case ViewHelp, ViewCommand:
				m.currentView = m.previousView
				return m, nil
			case ViewSettings:
				m.currentView = ViewList
				return m, nil
			}

		case "?":
			// Do not intercept while a text field has focus
			if m.currentView == ViewCommand || m.currentView == ViewSettings {
				break
			}
			if m.currentView == ViewHelp {
				m.currentView = m.previousView
				return m, nil
			}
			m.previousView = m.currentView
			m.currentView = ViewHelp
			return m, nil

		case ":":
			if m.currentView == ViewSettings {
				break
			}
			if m.currentView == ViewCommand {
				m.currentView = m.previousView
				return m, nil
			}
			m.previousView = m.currentView
			m.currentView = ViewCommand
			return m, m.commandView.Focus()

		case "r":
			if m.currentView == ViewList {
				return m, m.regenerate()
			}

		case "s":
			if m.currentView == ViewList {
				return m, m.openSettings()
			}
		}
	}

	// Delegate to active sub-view
	return m.updateActiveView(msg)
}

// updateActiveView dispatches the message to the currently active view.
func (m Model) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.currentView {
	case ViewList:
		m.list, cmd = m.list.Update(msg)
	case ViewDetail:
		m.detail, cmd = m.detail.Update(msg)
	case ViewHelp:
		m.helpView, cmd = m.helpView.Update(msg)
	case ViewCommand:
		m.commandView, cmd = m.commandView.Update(msg)
	case ViewSettings:
		m.settingsView, cmd = m.settingsView.Update(msg)
	}

	return m, cmd
}

// View renders the full terminal UI using the layout manager.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	header := m.layout.RenderHeader("Notifications", m.list.Summary())
	content := m.layout.FitContent(m.renderContent())
	statusBar := m.layout.RenderStatusBar(m.keyHints())

	return m.layout.RenderWithFrame(header, content, statusBar)
}

// renderContent returns the rendered string for the current active view.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewList:
		return m.list.View()
	case ViewDetail:
		return m.detail.View()
	case ViewHelp:
		return m.helpView.View()
	case ViewCommand:
		return m.commandView.View()
	case ViewSettings:
		return m.settingsView.View()
	default:
		return ""
	}
}

// keyHints returns keyboard shortcut hints for the status bar.
func (m Model) keyHints() string {
	if m.statusMessage != "" && m.currentView == ViewList {
		return m.statusMessage
	}

	switch m.currentView {
	case ViewHelp:
		return "? close help | esc back"
	case ViewCommand:
		return ": close command | enter execute | esc back"
	case ViewDetail:
		return "esc back | j/k scroll"
	case ViewSettings:
		return "enter next/submit | esc cancel"
	default:
		if _, ok := m.list.Filter().Selected(); ok {
			return "1-4 toggle type | 0 show all | enter open | q quit"
		}
		return "q quit | ? help | 1-4 filter | r new session | s settings"
	}
}

// Filter returns the active type filter.
func (m Model) Filter() feed.Filter {
	return m.list.Filter()
}

// CurrentView returns the active view.
func (m Model) CurrentView() ViewState {
	return m.currentView
}

// Session returns the running session.
func (m Model) Session() Session {
	return m.session
}

// Visible returns the notifications shown under the current filter.
func (m Model) Visible() []model.Notification {
	return m.list.Visible()
}

// regenerate discards the batch and starts a new session.
func (m Model) regenerate() tea.Cmd {
	m.sessionLogger().Info("regenerating notifications")
	return m.startSession()
}

// openSettings switches to the settings form seeded with the current
// generator config.
func (m *Model) openSettings() tea.Cmd {
	m.previousView = m.currentView
	m.currentView = ViewSettings
	return m.settingsView.Start(m.cfg.Generator)
}

// applySettings validates the edited generator settings and saves them.
func (m Model) applySettings(gen model.GeneratorConfig) tea.Cmd {
	next := *m.cfg
	next.Generator = gen
	path := m.configPath

	return func() tea.Msg {
		if err := next.Validate(); err != nil {
			return settingsAppliedMsg{err: err}
		}
		if path != "" {
			if err := model.SaveConfig(path, &next); err != nil {
				return settingsAppliedMsg{err: err}
			}
		}
		return settingsAppliedMsg{cfg: next}
	}
}

// executeCommand handles a parsed command from the command palette.
func (m *Model) executeCommand(c command.Command) tea.Cmd {
	switch c.Action {
	case command.ActionFilter:
		m.currentView = ViewList
		return m.list.SetFilter(feed.FilterOf(c.Type))
	case command.ActionClear:
		m.currentView = ViewList
		return m.list.SetFilter(feed.NoFilter())
	case command.ActionRegenerate:
		return m.regenerate()
	case command.ActionSettings:
		return m.openSettings()
	case command.ActionHelp:
		m.previousView = m.currentView
		m.currentView = ViewHelp
		return nil
	case command.ActionQuit:
		return tea.Quit
	default:
		return nil
	}
}

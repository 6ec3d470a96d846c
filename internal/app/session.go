package app

import (
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nhle/notifications/internal/feed"
	"github.com/nhle/notifications/internal/model"
)

// Session is one lifetime of the notifications screen. A new session
// regenerates the batch and starts unfiltered.
type Session struct {
	ID        uuid.UUID
	Seed      int64
	StartedAt time.Time
}

// sessionStartedMsg carries a freshly generated batch to the UI.
type sessionStartedMsg struct {
	session       Session
	notifications []model.Notification
}

// startSession returns a command that generates a new batch with the
// current generator settings. A zero seed is replaced by a time-based one
// so the session can be reproduced from the logs.
func (m *Model) startSession() tea.Cmd {
	gen := m.cfg.Generator
	now := m.clock
	logger := m.logger

	return func() tea.Msg {
		started := now()
		seed := gen.Seed
		if seed == 0 {
			seed = started.UnixNano()
		}

		g := feed.NewGenerator(
			rand.New(rand.NewSource(seed)),
			feed.WithClock(func() time.Time { return started }),
			feed.WithMaxDaysAgo(gen.MaxDaysAgo),
			feed.WithPairedContent(gen.PairedContent),
		)

		s := Session{ID: uuid.New(), Seed: seed, StartedAt: started}
		notifications := g.Generate(gen.Count)

		logger.Info("session started",
			zap.String("session_id", s.ID.String()),
			zap.Int64("seed", s.Seed),
			zap.Int("count", len(notifications)),
			zap.Int("max_days_ago", gen.MaxDaysAgo),
			zap.Bool("paired_content", gen.PairedContent),
		)

		return sessionStartedMsg{session: s, notifications: notifications}
	}
}

// sessionLogger returns the logger annotated with the current session.
func (m Model) sessionLogger() *zap.Logger {
	if m.session.ID == uuid.Nil {
		return m.logger
	}
	return m.logger.With(zap.String("session_id", m.session.ID.String()))
}

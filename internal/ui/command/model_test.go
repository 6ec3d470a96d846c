package command

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/notifications/internal/model"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Command
	}{
		{"filter post", Command{Action: ActionFilter, Type: model.NotificationNewPost}},
		{"filter NEW_MESSAGE", Command{Action: ActionFilter, Type: model.NotificationNewMessage}},
		{"f like", Command{Action: ActionFilter, Type: model.NotificationNewLike}},
		{"filter all", Command{Action: ActionClear}},
		{"clear", Command{Action: ActionClear}},
		{"  regenerate ", Command{Action: ActionRegenerate}},
		{"new", Command{Action: ActionRegenerate}},
		{"settings", Command{Action: ActionSettings}},
		{"help", Command{Action: ActionHelp}},
		{"quit", Command{Action: ActionQuit}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	for _, in := range []string{"", "filter", "filter follower", "dance"} {
		_, err := Parse(in)
		assert.Error(t, err, in)
	}
}

func TestUpdate_EnterEmitsCommand(t *testing.T) {
	m := New(80, 24)
	m.input.SetValue("filter general")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg, ok := cmd().(CommandMsg)
	require.True(t, ok)
	assert.Equal(t, Command{Action: ActionFilter, Type: model.NotificationGeneral}, msg.Command)
	assert.Empty(t, m.input.Value())
}

func TestUpdate_EnterWithBadInputKeepsText(t *testing.T) {
	m := New(80, 24)
	m.input.SetValue("filter follower")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	_, ok := cmd().(CommandErrorMsg)
	assert.True(t, ok)
	assert.Equal(t, "filter follower", m.input.Value())
	assert.Contains(t, m.View(), "unknown notification type")
}

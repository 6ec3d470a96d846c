package detail

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/notifications/internal/format"
	"github.com/nhle/notifications/internal/keys"
	"github.com/nhle/notifications/internal/model"
)

func TestView_EmptyWithoutNotification(t *testing.T) {
	m := New(keys.DefaultKeyMap(), nil, 80, 20)
	assert.Contains(t, m.View(), "No notification selected")

	_, ok := m.Notification()
	assert.False(t, ok)
}

func TestSetNotification_RendersFields(t *testing.T) {
	f, err := format.New("es")
	require.NoError(t, err)

	sent := time.Date(2026, time.March, 5, 9, 7, 0, 0, time.UTC)
	m := New(keys.DefaultKeyMap(), f, 80, 30)
	m.now = func() time.Time { return sent.Add(50 * time.Hour) }
	m.SetNotification(model.Notification{
		ID:     17,
		Title:  "New message from Ana",
		Body:   "See you tomorrow",
		SendAt: sent,
		Type:   model.NotificationNewMessage,
	})

	out := m.View()
	assert.Contains(t, out, "New message from Ana")
	assert.Contains(t, out, "See you tomorrow")
	assert.Contains(t, out, "#17")
	assert.Contains(t, out, "New message")
	assert.Contains(t, out, "05 mar. - 9:07 AM")

	n, ok := m.Notification()
	require.True(t, ok)
	assert.Equal(t, 17, n.ID)
}

func TestBackKey_EmitsBackMsg(t *testing.T) {
	m := New(keys.DefaultKeyMap(), nil, 80, 20)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, BackMsg{}, cmd())
}

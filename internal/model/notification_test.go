package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationTypes_DeclarationOrder(t *testing.T) {
	assert.Equal(t, []NotificationType{
		NotificationGeneral,
		NotificationNewPost,
		NotificationNewMessage,
		NotificationNewLike,
	}, NotificationTypes())

	types := NotificationTypes()
	types[0] = "MUTATED"
	assert.Equal(t, NotificationGeneral, NotificationTypes()[0])
}

func TestParseNotificationType(t *testing.T) {
	for in, want := range map[string]NotificationType{
		"NEW_POST":   NotificationNewPost,
		"new_like":   NotificationNewLike,
		" general ":  NotificationGeneral,
		"message":    NotificationNewMessage,
		"Like":       NotificationNewLike,
		"post":       NotificationNewPost,
	} {
		got, err := ParseNotificationType(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseNotificationType("follower")
	assert.Error(t, err)
}

func TestNotificationType_ValidAndLabel(t *testing.T) {
	for _, typ := range NotificationTypes() {
		assert.True(t, typ.Valid())
		assert.NotEqual(t, string(typ), typ.Label())
	}
	assert.False(t, NotificationType("").Valid())
	assert.Equal(t, "OTHER", NotificationType("OTHER").Label())
}

package model

import (
	"fmt"
	"strings"
	"time"
)

// NotificationType is the closed set of notification categories. It is
// both a field of Notification and the key used by the type filter.
type NotificationType string

const (
	NotificationGeneral    NotificationType = "GENERAL"
	NotificationNewPost    NotificationType = "NEW_POST"
	NotificationNewMessage NotificationType = "NEW_MESSAGE"
	NotificationNewLike    NotificationType = "NEW_LIKE"
)

// notificationTypes lists every NotificationType in declaration order.
var notificationTypes = []NotificationType{
	NotificationGeneral,
	NotificationNewPost,
	NotificationNewMessage,
	NotificationNewLike,
}

// NotificationTypes returns all notification types in declaration order.
// The returned slice is a copy and may be modified by the caller.
func NotificationTypes() []NotificationType {
	out := make([]NotificationType, len(notificationTypes))
	copy(out, notificationTypes)
	return out
}

// Valid reports whether t is one of the declared notification types.
func (t NotificationType) Valid() bool {
	for _, known := range notificationTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Label returns the human-readable name shown on filter chips.
func (t NotificationType) Label() string {
	switch t {
	case NotificationGeneral:
		return "General"
	case NotificationNewPost:
		return "New post"
	case NotificationNewMessage:
		return "New message"
	case NotificationNewLike:
		return "New like"
	default:
		return string(t)
	}
}

// typeAliases maps the short command-palette spellings to their type.
var typeAliases = map[string]NotificationType{
	"general": NotificationGeneral,
	"post":    NotificationNewPost,
	"message": NotificationNewMessage,
	"like":    NotificationNewLike,
}

// ParseNotificationType resolves a user-supplied name such as "NEW_POST",
// "new_post" or "post" to a NotificationType.
func ParseNotificationType(s string) (NotificationType, error) {
	s = strings.TrimSpace(s)
	if t := NotificationType(strings.ToUpper(s)); t.Valid() {
		return t, nil
	}
	if t, ok := typeAliases[strings.ToLower(s)]; ok {
		return t, nil
	}
	return "", fmt.Errorf("unknown notification type %q", s)
}

// Notification is a single simulated alert shown on the notifications
// screen. Values are never mutated after generation.
type Notification struct {
	// ID is the 1-based position assigned during generation.
	ID int `json:"id"`

	// Title is the bold headline of the notification card.
	Title string `json:"title"`

	// Body is the descriptive text below the title.
	Body string `json:"body"`

	// SendAt is when the notification was (nominally) delivered.
	SendAt time.Time `json:"send_at"`

	// Type is the notification category.
	Type NotificationType `json:"type"`
}

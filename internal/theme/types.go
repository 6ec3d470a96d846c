package theme

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/notifications/internal/model"
)

// TypeStyle is the visual identity of a notification type.
type TypeStyle struct {
	// Icon is the glyph drawn inside the badge.
	Icon string

	// Asset names the drawable used by graphical front ends.
	Asset string

	// Token is the color token name the badge background resolves from.
	Token string

	// Color is the resolved badge background.
	Color lipgloss.AdaptiveColor
}

// typeStyles must hold exactly one entry per model.NotificationType.
var typeStyles = map[model.NotificationType]TypeStyle{
	model.NotificationGeneral: {
		Icon:  "🔔",
		Asset: "notifications",
		Token: "primaryContainer",
		Color: ColorPrimaryContainer,
	},
	model.NotificationNewPost: {
		Icon:  "📝",
		Asset: "post",
		Token: "secondaryContainer",
		Color: ColorSecondaryContainer,
	},
	model.NotificationNewMessage: {
		Icon:  "💬",
		Asset: "sms",
		Token: "tertiaryContainer",
		Color: ColorTertiaryContainer,
	},
	model.NotificationNewLike: {
		Icon:  "👍",
		Asset: "thumb_up",
		Token: "errorContainer",
		Color: ColorErrorContainer,
	},
}

func init() {
	if err := checkTypeStyles(); err != nil {
		panic(err)
	}
}

// checkTypeStyles verifies the table covers the enumeration exactly.
func checkTypeStyles() error {
	types := model.NotificationTypes()
	for _, t := range types {
		if _, ok := typeStyles[t]; !ok {
			return fmt.Errorf("theme: no style for notification type %s", t)
		}
	}
	if len(typeStyles) != len(types) {
		return fmt.Errorf("theme: %d styles for %d notification types", len(typeStyles), len(types))
	}
	return nil
}

// TypeStyleFor returns the icon and color for t. It panics for a value
// outside the enumeration.
func TypeStyleFor(t model.NotificationType) TypeStyle {
	s, ok := typeStyles[t]
	if !ok {
		panic(fmt.Sprintf("theme: unknown notification type %q", t))
	}
	return s
}

// BadgeStyle renders the circular icon badge for t.
func BadgeStyle(t model.NotificationType) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(ColorBlack).
		Background(TypeStyleFor(t).Color).
		Padding(0, 1)
}

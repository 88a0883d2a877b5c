package components

import (
	"fmt"

	"github.com/alexisbeaulieu97/statedeck/internal/state"
)

// DefaultMaxToasts caps how many toasts are rendered at once.
const DefaultMaxToasts = 5

// Toast is one rendered notification line.
type Toast struct {
	Notification state.Notification
	Text         string
}

// ToastStack selects and labels the notifications to display. The newest
// notifications are kept; older ones are summarised by Hidden.
type ToastStack struct {
	Notifications []state.Notification
	Max           int
	Unicode       bool
}

// Visible returns the toasts to draw, oldest first, and how many were left
// out.
func (s ToastStack) Visible() (toasts []Toast, hidden int) {
	limit := s.Max
	if limit <= 0 {
		limit = DefaultMaxToasts
	}

	list := s.Notifications
	if len(list) > limit {
		hidden = len(list) - limit
		list = list[hidden:]
	}

	toasts = make([]Toast, 0, len(list))
	for _, n := range list {
		toasts = append(toasts, Toast{
			Notification: n,
			Text:         fmt.Sprintf("%s %s", Icon(n.Type, s.Unicode), n.Message),
		})
	}
	return toasts, hidden
}

// Icon returns the marker shown before a notification of the given type.
func Icon(kind state.NotificationType, unicode bool) string {
	if !unicode {
		switch kind {
		case state.NotificationSuccess:
			return "[ok]"
		case state.NotificationWarning:
			return "[!]"
		case state.NotificationError:
			return "[x]"
		default:
			return "[i]"
		}
	}

	switch kind {
	case state.NotificationSuccess:
		return "✓"
	case state.NotificationWarning:
		return "⚠"
	case state.NotificationError:
		return "✗"
	default:
		return "ℹ"
	}
}

package ports

import "context"

const (
	// EventSessionLogin is emitted after a user is installed as current.
	EventSessionLogin = "session.login"
	// EventSessionLogout is emitted after the current user is cleared.
	EventSessionLogout = "session.logout"
	// EventNotificationAdded is emitted when a notification is appended.
	EventNotificationAdded = "notification.added"
	// EventNotificationRemoved is emitted when a notification is removed.
	// Removing an unknown ID emits nothing.
	EventNotificationRemoved = "notification.removed"
	// EventThemeToggled is emitted after the theme mode flips.
	EventThemeToggled = "theme.toggled"
	// EventItemsLoaded is emitted when the item list grows.
	EventItemsLoaded = "items.loaded"

	// AllEvents subscribes a handler to every event type.
	AllEvents = "*"
)

// DomainEvent represents a state change. Payloads are flat maps so the
// logging publisher can render them as structured fields.
type DomainEvent interface {
	EventType() string
	Payload() any
}

// EventPublisher distributes events to interested subscribers. Dispatch is
// synchronous: Publish returns after every handler has run, so observers see
// state changes in the order the operations were invoked. Implementations
// must be thread-safe.
type EventPublisher interface {
	Publish(ctx context.Context, event DomainEvent) error
	Subscribe(eventType string, handler EventHandler) (Subscription, error)
}

// EventHandler processes an event of a specific type. Failures are returned,
// not panicked, so the publisher can log them and keep delivering.
type EventHandler func(context.Context, DomainEvent) error

// Subscription represents a registered handler.
type Subscription interface {
	Unsubscribe()
}

// Event is the DomainEvent implementation used by the state container.
type Event struct {
	Type string
	Data map[string]any
}

// EventType implements DomainEvent.
func (e Event) EventType() string { return e.Type }

// Payload implements DomainEvent.
func (e Event) Payload() any { return e.Data }

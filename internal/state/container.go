// Package state owns statedeck's in-memory application state: the user
// session, the notification list and the theme. A single Container is created
// per running application and handed to every consumer explicitly.
//
// Each slice is exposed as a read-only view (snapshot plus Subscribe) and an
// operation set. Mutations are synchronous: subscribers run before the
// operation returns, so the next read always observes the change.
package state

import (
	"context"
	"time"

	"github.com/alexisbeaulieu97/statedeck/internal/ports"
)

const (
	sliceUser          = "user"
	sliceNotifications = "notifications"
	sliceTheme         = "theme"
)

// DefaultPlaceholderName is the display name given to every logged-in user.
const DefaultPlaceholderName = "John Doe"

// Container aggregates the three state slices.
type Container struct {
	theme         *themeSlice
	session       *sessionSlice
	notifications *notificationSlice
}

// Handles bundles every view and operation set, for injection into consumers.
type Handles struct {
	Theme           ThemeView
	ThemeOps        ThemeOps
	User            UserView
	UserOps         UserOps
	Notifications   NotificationView
	NotificationOps NotificationOps
}

// Snapshot is a point-in-time copy of every slice.
type Snapshot struct {
	Mode          Mode           `json:"mode" yaml:"mode"`
	User          *User          `json:"user" yaml:"user"`
	Notifications []Notification `json:"notifications" yaml:"notifications"`
}

type options struct {
	ctx         context.Context
	clock       func() time.Time
	publisher   ports.EventPublisher
	logger      ports.Logger
	placeholder string
	messages    Messages
}

// Option customises a Container.
type Option func(*options)

// WithContext sets the context attached to published events and log entries.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithClock overrides the clock notification IDs are derived from.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// WithPublisher sends a domain event for every applied mutation.
func WithPublisher(publisher ports.EventPublisher) Option {
	return func(o *options) { o.publisher = publisher }
}

// WithLogger sets the logger used for debug traces of operations.
func WithLogger(logger ports.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithPlaceholderName sets the name assigned to logged-in users.
func WithPlaceholderName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.placeholder = name
		}
	}
}

// WithMessages overrides the login/logout notification texts. Empty fields
// keep their defaults.
func WithMessages(messages Messages) Option {
	return func(o *options) {
		if messages.LoginSuccess != "" {
			o.messages.LoginSuccess = messages.LoginSuccess
		}
		if messages.Logout != "" {
			o.messages.Logout = messages.Logout
		}
	}
}

// New creates a Container in its initial state: light theme, no user, no
// notifications.
func New(opts ...Option) *Container {
	cfg := options{
		ctx:         context.Background(),
		clock:       time.Now,
		logger:      ports.NopLogger(),
		placeholder: DefaultPlaceholderName,
		messages:    DefaultMessages(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	obs := &observer{
		ctx:       cfg.ctx,
		publisher: cfg.publisher,
		logger:    cfg.logger.With("component", "state"),
	}

	notifications := newNotificationSlice(cfg.clock, obs)
	return &Container{
		theme:         newThemeSlice(obs),
		notifications: notifications,
		session:       newSessionSlice(notifications.Add, cfg.placeholder, cfg.messages, obs),
	}
}

// Theme returns the theme view.
func (c *Container) Theme() ThemeView { return c.theme }

// ThemeOps returns the theme operations. The same value is returned on every
// call.
func (c *Container) ThemeOps() ThemeOps { return c.theme }

// User returns the session view.
func (c *Container) User() UserView { return c.session }

// UserOps returns the session operations.
func (c *Container) UserOps() UserOps { return c.session }

// Notifications returns the notification view.
func (c *Container) Notifications() NotificationView { return c.notifications }

// NotificationOps returns the notification operations.
func (c *Container) NotificationOps() NotificationOps { return c.notifications }

// RestoreNotification re-appends a previously removed notification.
func (c *Container) RestoreNotification(n Notification) error {
	return c.notifications.Insert(n)
}

// Handles returns every view and operation set.
func (c *Container) Handles() Handles {
	return Handles{
		Theme:           c.Theme(),
		ThemeOps:        c.ThemeOps(),
		User:            c.User(),
		UserOps:         c.UserOps(),
		Notifications:   c.Notifications(),
		NotificationOps: c.NotificationOps(),
	}
}

// Snapshot copies every slice.
func (c *Container) Snapshot() Snapshot {
	return Snapshot{
		Mode:          c.theme.Mode(),
		User:          c.session.Current(),
		Notifications: c.notifications.Snapshot(),
	}
}

// observer forwards applied mutations to the logger and event publisher.
type observer struct {
	ctx       context.Context
	publisher ports.EventPublisher
	logger    ports.Logger
}

func (o *observer) emit(slice, operation, eventType string, data map[string]any) {
	o.logger.Debug(o.ctx, "state mutation", "slice", slice, "operation", operation)
	if o.publisher == nil {
		return
	}
	if data == nil {
		data = map[string]any{}
	}
	data["slice"] = slice
	data["operation"] = operation
	if err := o.publisher.Publish(o.ctx, ports.Event{Type: eventType, Data: data}); err != nil {
		o.logger.Warn(o.ctx, "publish state event", "event_type", eventType, "error", err)
	}
}

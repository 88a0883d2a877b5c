package events

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/statedeck/internal/logger"
	"github.com/alexisbeaulieu97/statedeck/internal/ports"
)

func newTestLogger(t *testing.T, buf *bytes.Buffer) *logger.Logger {
	t.Helper()
	log, err := logger.New(logger.Options{Writer: buf, Level: "debug", Component: "publisher"})
	require.NoError(t, err)
	return log
}

func TestLoggingPublisherIncludesSessionID(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	publisher := NewLoggingPublisher(newTestLogger(t, buf))

	ctx := ports.WithSessionID(context.Background(), "abc-123")
	err := publisher.Publish(ctx, ports.Event{
		Type: ports.EventThemeToggled,
		Data: map[string]any{"mode": "dark"},
	})
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "state event", entry["message"])
	require.Equal(t, ports.EventThemeToggled, entry["event_type"])
	require.Equal(t, "abc-123", entry["session_id"])
	require.Equal(t, "dark", entry["mode"])
}

func TestLoggingPublisherInvokesSubscribers(t *testing.T) {
	t.Parallel()

	publisher := NewLoggingPublisher(nil)

	var handled []string
	_, err := publisher.Subscribe(ports.EventSessionLogin, func(ctx context.Context, event ports.DomainEvent) error {
		handled = append(handled, "typed")
		return nil
	})
	require.NoError(t, err)
	_, err = publisher.Subscribe(Wildcard, func(ctx context.Context, event ports.DomainEvent) error {
		handled = append(handled, "wildcard:"+event.EventType())
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, publisher.Publish(context.Background(), ports.Event{Type: ports.EventSessionLogin}))
	require.NoError(t, publisher.Publish(context.Background(), ports.Event{Type: ports.EventThemeToggled}))

	require.Equal(t, []string{"typed", "wildcard:session.login", "wildcard:theme.toggled"}, handled)
}

func TestLoggingPublisherUnsubscribe(t *testing.T) {
	t.Parallel()

	publisher := NewLoggingPublisher(nil)

	calls := 0
	sub, err := publisher.Subscribe(ports.EventNotificationAdded, func(context.Context, ports.DomainEvent) error {
		calls++
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, publisher.Publish(context.Background(), ports.Event{Type: ports.EventNotificationAdded}))
	sub.Unsubscribe()
	sub.Unsubscribe()
	require.NoError(t, publisher.Publish(context.Background(), ports.Event{Type: ports.EventNotificationAdded}))

	require.Equal(t, 1, calls)
}

func TestLoggingPublisherLogsHandlerFailures(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	publisher := NewLoggingPublisher(newTestLogger(t, buf))

	delivered := false
	_, err := publisher.Subscribe(ports.EventSessionLogout, func(context.Context, ports.DomainEvent) error {
		return errors.New("boom")
	})
	require.NoError(t, err)
	_, err = publisher.Subscribe(ports.EventSessionLogout, func(context.Context, ports.DomainEvent) error {
		delivered = true
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, publisher.Publish(context.Background(), ports.Event{Type: ports.EventSessionLogout}))
	require.True(t, delivered, "later handlers still run")
	require.True(t, strings.Contains(buf.String(), "event handler failed"))
}

func TestNilPublisherAndHandlerAreSafe(t *testing.T) {
	t.Parallel()

	var publisher *LoggingPublisher
	require.NoError(t, publisher.Publish(context.Background(), ports.Event{Type: ports.EventThemeToggled}))

	sub, err := NewLoggingPublisher(nil).Subscribe(ports.EventThemeToggled, nil)
	require.NoError(t, err)
	sub.Unsubscribe()
}

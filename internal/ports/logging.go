package ports

import (
	"context"

	"github.com/google/uuid"
)

// Logger defines statedeck's structured logging contract. All log calls take
// key/value pairs, must be safe for concurrent use, and should enrich entries
// with the session ID when one is present in context. Common fields:
//   - session_id (UUIDv4, generated once per process at the CLI entry point)
//   - component (cli, state, tui, metrics)
//   - slice (user, notifications, theme)
type Logger interface {
	Debug(ctx context.Context, msg string, fields ...any)
	Info(ctx context.Context, msg string, fields ...any)
	Warn(ctx context.Context, msg string, fields ...any)
	Error(ctx context.Context, msg string, fields ...any)
	With(fields ...any) Logger
}

type sessionIDKey struct{}

// WithSessionID attaches the provided session ID to the context.
func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionIDKey{}, id)
}

// GetSessionID extracts the session ID from context, or "" when unset.
func GetSessionID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(sessionIDKey{}).(string); ok {
		return id
	}
	return ""
}

// NewSessionID produces a new UUIDv4 string.
func NewSessionID() string {
	return uuid.NewString()
}

type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...any) {}
func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) Logger                  { return n }

// NopLogger returns a Logger that discards all entries.
func NopLogger() Logger {
	return nopLogger{}
}

package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/alexisbeaulieu97/statedeck/internal/ports"
)

// Supported output formats.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Options describes logger configuration supplied at creation time.
type Options struct {
	Level     string
	Format    string
	Writer    io.Writer
	Component string
}

// Logger wraps zerolog and implements ports.Logger.
type Logger struct {
	base zerolog.Logger
}

// New creates a configured Logger instance based on Options.
func New(opts Options) (*Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stdout
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, err
		}
		level = parsed
	}

	var output io.Writer = writer
	if strings.EqualFold(opts.Format, FormatConsole) {
		console := zerolog.NewConsoleWriter()
		console.Out = writer
		console.NoColor = true
		console.TimeFormat = time.RFC3339
		output = console
	}

	ctx := zerolog.New(output).Level(level).With().Timestamp()
	if opts.Component != "" {
		ctx = ctx.Str("component", opts.Component)
	}
	return &Logger{base: ctx.Logger()}, nil
}

// Discard returns a logger that drops every entry.
func Discard() *Logger {
	return &Logger{base: zerolog.Nop()}
}

// With derives a logger carrying the key/value pairs on every entry.
func (l *Logger) With(fields ...any) ports.Logger {
	if l == nil {
		return Discard()
	}
	derived := Logger{base: l.base.With().Fields(pairs(fields)).Logger()}
	return &derived
}

// Debug writes a debug-level log entry if enabled.
func (l *Logger) Debug(ctx context.Context, msg string, fields ...any) {
	if l == nil {
		return
	}
	l.write(ctx, l.base.Debug(), msg, fields)
}

// Info writes an informational log entry.
func (l *Logger) Info(ctx context.Context, msg string, fields ...any) {
	if l == nil {
		return
	}
	l.write(ctx, l.base.Info(), msg, fields)
}

// Warn writes a warning level log entry.
func (l *Logger) Warn(ctx context.Context, msg string, fields ...any) {
	if l == nil {
		return
	}
	l.write(ctx, l.base.Warn(), msg, fields)
}

// Error writes an error log entry. An "error" field holding an error value is
// rendered with zerolog's error marshaller.
func (l *Logger) Error(ctx context.Context, msg string, fields ...any) {
	if l == nil {
		return
	}
	l.write(ctx, l.base.Error(), msg, fields)
}

func (l *Logger) write(ctx context.Context, event *zerolog.Event, msg string, fields []any) {
	if event == nil {
		return
	}
	if id := ports.GetSessionID(ctx); id != "" {
		event = event.Str("session_id", id)
	}
	event.Fields(pairs(fields)).Msg(msg)
}

// pairs drops a trailing key without a value and any non-string key so
// zerolog never sees a malformed field list.
func pairs(fields []any) []any {
	out := make([]any, 0, len(fields))
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok || key == "" {
			continue
		}
		out = append(out, key, fields[i+1])
	}
	return out
}

var _ ports.Logger = (*Logger)(nil)

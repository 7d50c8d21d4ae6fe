// Package log provides structured logging with request-scoped attributes.
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/helixml/wikitree/internal/config"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

// Context keys for logging.
const (
	CorrelationIDKey ContextKey = "correlation_id"
	RequestIDKey     ContextKey = "request_id"
	ViewerIDKey      ContextKey = "viewer_id"
)

var contextKeys = []ContextKey{CorrelationIDKey, RequestIDKey, ViewerIDKey}

// Logger wraps slog.Logger with context-aware helpers.
type Logger struct {
	logger *slog.Logger
}

// NewLogger creates a Logger that writes to stdout based on configuration.
func NewLogger(cfg config.AppConfig) *Logger {
	return NewLoggerWithWriter(os.Stdout, cfg.LogFormat(), cfg.LogLevel())
}

// NewLoggerWithWriter creates a Logger that writes to w.
// The stdio MCP transport owns stdout, so it logs to stderr through this.
func NewLoggerWithWriter(w io.Writer, format config.LogFormat, level string) *Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	var handler slog.Handler
	switch format {
	case config.LogFormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = newTerminalHandler(w, opts)
	}
	return &Logger{logger: slog.New(handler)}
}

// FromSlog wraps an existing slog.Logger. A nil logger wraps slog.Default().
func FromSlog(l *slog.Logger) *Logger {
	if l == nil {
		l = slog.Default()
	}
	return &Logger{logger: l}
}

func parseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Slog returns the underlying slog.Logger.
func (l *Logger) Slog() *slog.Logger {
	return l.logger
}

// With returns a new Logger with additional attributes.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{logger: l.logger.With(args...)}
}

// WithContext returns a logger carrying the identifiers stored in ctx.
func (l *Logger) WithContext(ctx context.Context) *Logger {
	var attrs []any
	for _, key := range contextKeys {
		if v, ok := ctx.Value(key).(string); ok && v != "" {
			attrs = append(attrs, string(key), v)
		}
	}
	if len(attrs) == 0 {
		return l
	}
	return l.With(attrs...)
}

// DebugContext logs at debug level with context.
func (l *Logger) DebugContext(ctx context.Context, msg string, args ...any) {
	l.WithContext(ctx).logger.Debug(msg, args...)
}

// InfoContext logs at info level with context.
func (l *Logger) InfoContext(ctx context.Context, msg string, args ...any) {
	l.WithContext(ctx).logger.Info(msg, args...)
}

// WarnContext logs at warn level with context.
func (l *Logger) WarnContext(ctx context.Context, msg string, args ...any) {
	l.WithContext(ctx).logger.Warn(msg, args...)
}

// ErrorContext logs at error level with context.
func (l *Logger) ErrorContext(ctx context.Context, msg string, args ...any) {
	l.WithContext(ctx).logger.Error(msg, args...)
}

// WithCorrelationID adds a correlation ID to the context.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, CorrelationIDKey, id)
}

// WithRequestID adds a request ID to the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

// WithViewerID attaches the viewing user's ID to log records. It does not
// decide what the viewer may see.
func WithViewerID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ViewerIDKey, id)
}

// CorrelationID extracts the correlation ID from context.
func CorrelationID(ctx context.Context) string {
	id, _ := ctx.Value(CorrelationIDKey).(string)
	return id
}

// Configure builds a logger from configuration and installs it as the slog
// default.
func Configure(cfg config.AppConfig) *Logger {
	l := NewLogger(cfg)
	slog.SetDefault(l.logger)
	return l
}

package log

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/helixml/wikitree/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerWithWriter(&buf, config.LogFormatJSON, "INFO")

	l.Slog().Info("tree built", "pages", 3)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "tree built", rec["msg"])
	assert.Equal(t, float64(3), rec["pages"])
}

func TestNewLoggerWithWriter_Pretty(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerWithWriter(&buf, config.LogFormatPretty, "INFO")

	l.Slog().Info("tree built")

	assert.Contains(t, buf.String(), "INF")
	assert.Contains(t, buf.String(), "tree built")
}

func TestLogger_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerWithWriter(&buf, config.LogFormatJSON, "WARN")

	l.Slog().Info("hidden")
	l.Slog().Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestLogger_WithContext(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerWithWriter(&buf, config.LogFormatJSON, "DEBUG")

	ctx := WithCorrelationID(context.Background(), "corr-1")
	ctx = WithViewerID(ctx, "alice")
	l.InfoContext(ctx, "rendered")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "corr-1", rec["correlation_id"])
	assert.Equal(t, "alice", rec["viewer_id"])
	_, hasRequest := rec["request_id"]
	assert.False(t, hasRequest)
}

func TestLogger_WithContext_NoValuesReturnsSameLogger(t *testing.T) {
	l := NewLoggerWithWriter(&bytes.Buffer{}, config.LogFormatJSON, "INFO")
	assert.Same(t, l, l.WithContext(context.Background()))
}

func TestContextAccessors(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, CorrelationID(ctx))

	ctx = WithRequestID(WithViewerID(WithCorrelationID(ctx, "c"), "v"), "r")
	assert.Equal(t, "c", CorrelationID(ctx))
	assert.Equal(t, "v", ctx.Value(ViewerIDKey))
	assert.Equal(t, "r", ctx.Value(RequestIDKey))
}

func TestParseLevel(t *testing.T) {
	tests := map[string]string{
		"debug":   "DEBUG",
		"WARNING": "WARN",
		"error":   "ERROR",
		"bogus":   "INFO",
	}
	for in, want := range tests {
		assert.Equal(t, want, strings.ToUpper(parseLevel(in).String()), in)
	}
}

func TestFromSlog(t *testing.T) {
	assert.Same(t, slog.Default(), FromSlog(nil).Slog())

	var buf bytes.Buffer
	l := FromSlog(slog.New(slog.NewJSONHandler(&buf, nil)))
	l.InfoContext(WithRequestID(context.Background(), "r1"), "hello")
	assert.Contains(t, buf.String(), `"request_id":"r1"`)
}

func TestConfigure_InstallsDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	l := Configure(config.NewAppConfigWithOptions(config.WithLogFormat(config.LogFormatJSON)))

	assert.Same(t, l.Slog(), slog.Default())
}

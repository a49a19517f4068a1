package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		wantErr bool
	}{
		{name: "debug", level: "debug"},
		{name: "info", level: "info"},
		{name: "warn", level: "warn"},
		{name: "error", level: "error"},
		{name: "invalid", level: "verbose", wantErr: true},
		{name: "empty", level: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.level)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, logger)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, logger)
		})
	}
}

func TestNewWithWriter_ServiceAttr(t *testing.T) {
	var buf bytes.Buffer

	logger, err := NewWithWriter("info", &buf)
	require.NoError(t, err)

	logger.Info("started", "port", 8000)

	output := buf.String()
	assert.Contains(t, output, "started")
	assert.Contains(t, output, "service=news-reader")
	assert.Contains(t, output, "port=8000")
}

func TestNewWithWriter_ProductionIsJSON(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	var buf bytes.Buffer

	logger, err := NewWithWriter("info", &buf)
	require.NoError(t, err)

	logger.Info("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "news-reader", entry["service"])

	ts, ok := entry["time"].(string)
	require.True(t, ok)
	_, err = time.Parse(time.RFC3339, ts)
	assert.NoError(t, err)
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input     string
		expected  slog.Level
		wantError bool
	}{
		{input: "debug", expected: slog.LevelDebug},
		{input: "info", expected: slog.LevelInfo},
		{input: "warn", expected: slog.LevelWarn},
		{input: "warning", expected: slog.LevelWarn},
		{input: "error", expected: slog.LevelError},
		{input: "DEBUG", expected: slog.LevelDebug},
		{input: "invalid", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := parseLogLevel(tt.input)
			if tt.wantError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, level)
		})
	}
}

func TestIsProduction(t *testing.T) {
	tests := []struct {
		envValue string
		expected bool
	}{
		{"production", true},
		{"prod", true},
		{"PRODUCTION", true},
		{"development", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.envValue, func(t *testing.T) {
			t.Setenv("GO_ENV", tt.envValue)
			assert.Equal(t, tt.expected, isProduction())
		})
	}
}

func TestWithRequest(t *testing.T) {
	var buf bytes.Buffer
	base, err := NewWithWriter("info", &buf)
	require.NoError(t, err)

	WithRequest(base, "req-789", "GET", "/saved").Info("handled")

	output := buf.String()
	assert.Contains(t, output, "request_id=req-789")
	assert.Contains(t, output, "method=GET")
	assert.Contains(t, output, "path=/saved")
}

func TestContextLogger(t *testing.T) {
	var buf bytes.Buffer
	base, err := NewWithWriter("info", &buf)
	require.NoError(t, err)

	fallback := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	assert.Same(t, fallback, FromContext(context.Background(), fallback))

	scoped := WithComponent(base, "handler")
	ctx := IntoContext(context.Background(), scoped)
	assert.Same(t, scoped, FromContext(ctx, fallback))
}

func TestComponentLoggers(t *testing.T) {
	var buf bytes.Buffer
	base, err := NewWithWriter("info", &buf)
	require.NoError(t, err)

	StoreLogger(base, "mongo").Info("store op")
	UpstreamLogger(base).Info("upstream op")

	output := buf.String()
	assert.Contains(t, output, "component=store")
	assert.Contains(t, output, "backend=mongo")
	assert.Contains(t, output, "component=newsapi")
}

func TestLogErrorAndDuration(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithWriter("info", &buf)
	require.NoError(t, err)

	LogError(logger, assert.AnError, "insert failed", "url", "http://x")
	LogDuration(logger, time.Now().Add(-100*time.Millisecond), "list_saved", "count", 3)

	output := buf.String()
	assert.Contains(t, output, "insert failed")
	assert.Contains(t, output, "error=")
	assert.Contains(t, output, "Operation completed")
	assert.Contains(t, output, "operation=list_saved")
	assert.Contains(t, output, "duration_ms")
}

func TestLogLevels(t *testing.T) {
	tests := []struct {
		name       string
		logLevel   string
		logMessage func(*slog.Logger)
		shouldShow bool
	}{
		{"debug with debug level", "debug", func(l *slog.Logger) { l.Debug("m") }, true},
		{"debug with info level", "info", func(l *slog.Logger) { l.Debug("m") }, false},
		{"info with info level", "info", func(l *slog.Logger) { l.Info("m") }, true},
		{"warn with error level", "error", func(l *slog.Logger) { l.Warn("m") }, false},
		{"error with error level", "error", func(l *slog.Logger) { l.Error("m") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := NewWithWriter(tt.logLevel, &buf)
			require.NoError(t, err)

			tt.logMessage(logger)

			if tt.shouldShow {
				assert.NotEmpty(t, buf.String())
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

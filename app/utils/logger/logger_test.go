package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
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
		{"debug level", "debug", false},
		{"info level", "info", false},
		{"warn level", "warn", false},
		{"warning alias", "warning", false},
		{"error level", "error", false},
		{"mixed case", "INFO", false},
		{"unknown level", "verbose", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.level)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, logger)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, logger)
			}
		})
	}
}

func TestNewWithWriter_ProductionUsesJSON(t *testing.T) {
	t.Setenv("GO_ENV", "production")

	var buf bytes.Buffer
	logger, err := NewWithWriter("info", &buf)
	require.NoError(t, err)

	logger.Info("store created", "store_id", "abc")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "store created", entry["msg"])
	assert.Equal(t, "store-service", entry["service"])
	assert.Equal(t, "abc", entry["store_id"])
}

func TestNewWithWriter_DevelopmentUsesText(t *testing.T) {
	t.Setenv("GO_ENV", "development")

	var buf bytes.Buffer
	logger, err := NewWithWriter("info", &buf)
	require.NoError(t, err)

	logger.Info("store created")

	out := buf.String()
	assert.Contains(t, out, "msg=")
	assert.Contains(t, out, "service=store-service")
}

func TestNewWithWriter_LevelFiltering(t *testing.T) {
	t.Setenv("GO_ENV", "development")

	var buf bytes.Buffer
	logger, err := NewWithWriter("warn", &buf)
	require.NoError(t, err)

	logger.Info("filtered out")
	logger.Warn("kept")

	out := buf.String()
	assert.NotContains(t, out, "filtered out")
	assert.Contains(t, out, "kept")
}

func TestContextHelpers(t *testing.T) {
	t.Setenv("GO_ENV", "development")

	var buf bytes.Buffer
	logger, err := NewWithWriter("info", &buf)
	require.NoError(t, err)

	WithComponent(logger, "provisioner").Info("one")
	WithStore(logger, "store-123").Info("two")
	WithFlow(logger, "flow-456").Info("three")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "component=provisioner")
	assert.Contains(t, lines[1], "store_id=store-123")
	assert.Contains(t, lines[2], "flow_id=flow-456")
}

func TestLogError(t *testing.T) {
	t.Setenv("GO_ENV", "development")

	var buf bytes.Buffer
	logger, err := NewWithWriter("info", &buf)
	require.NoError(t, err)

	LogError(logger, errors.New("boom"), "operation failed", "flow_id", "flow-1")

	out := buf.String()
	assert.Contains(t, out, "operation failed")
	assert.Contains(t, out, "boom")
	assert.Contains(t, out, "flow_id=flow-1")
}

func TestLogDuration(t *testing.T) {
	t.Setenv("GO_ENV", "development")

	var buf bytes.Buffer
	logger, err := NewWithWriter("info", &buf)
	require.NoError(t, err)

	LogDuration(logger, time.Now().Add(-10*time.Millisecond), "provision")

	out := buf.String()
	assert.Contains(t, out, "operation=provision")
	assert.Contains(t, out, "duration_ms=")
}

func TestParseLogLevel(t *testing.T) {
	level, err := parseLogLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	_, err = parseLogLevel("nope")
	assert.Error(t, err)
}

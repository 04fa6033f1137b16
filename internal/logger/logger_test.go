package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONLogging(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	cfg := Config{
		Level:       LogLevelInfo,
		Format:      LogFormatJSON,
		ServiceName: "test-service",
		Version:     "1.0.0",
		Environment: EnvironmentTest,
	}

	InitLoggerWithWriter(cfg, &buf)
	Info("test message", "key", "value", "number", 42)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "test-service", entry[AttrKeyService])
	assert.Equal(t, "1.0.0", entry[AttrKeyVersion])
	assert.Equal(t, EnvironmentTest, entry[AttrKeyEnvironment])
	assert.Equal(t, "test message", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "value", entry["key"])
	assert.Equal(t, float64(42), entry["number"])
}

func TestLevelFiltering(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	InitLoggerWithWriter(Config{Level: LogLevelWarn, Format: LogFormatText}, &buf)

	slog.Info("hidden")
	assert.Empty(t, buf.String())

	slog.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestSessionIDContext(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	InitLoggerWithWriter(Config{Level: LogLevelDebug, Format: LogFormatJSON}, &buf)

	ctx := WithSessionID(context.Background(), "session-123")
	assert.Equal(t, "session-123", GetSessionID(ctx))

	FromContext(ctx).Info("battle finished")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "session-123", entry[AttrKeySessionID])
}

func TestSessionIDMissing(t *testing.T) {
	_, ok := SessionIDFromContext(context.Background())
	assert.False(t, ok)
	assert.Empty(t, GetSessionID(context.Background()))
	assert.NotNil(t, FromContext(context.Background()))
}

func TestGenerateSessionID(t *testing.T) {
	a := GenerateSessionID()
	b := GenerateSessionID()
	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
}

func TestConfigPresets(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		cfg := DefaultConfig()
		assert.Equal(t, DefaultServiceName, cfg.ServiceName)
		assert.Equal(t, slog.LevelInfo, cfg.LogLevel())
		assert.False(t, cfg.IsJSON())
	})

	t.Run("production", func(t *testing.T) {
		cfg := ProductionConfig()
		assert.True(t, cfg.IsJSON())
		assert.Equal(t, EnvironmentProduction, cfg.Environment)
		assert.False(t, cfg.AddSource)
	})

	t.Run("development", func(t *testing.T) {
		cfg := DevelopmentConfig()
		assert.Equal(t, slog.LevelDebug, cfg.LogLevel())
		assert.True(t, cfg.AddSource)
	})
}

func TestLogLevelParsing(t *testing.T) {
	tests := []struct {
		level    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.expected, Config{Level: tt.level}.LogLevel())
		})
	}
}

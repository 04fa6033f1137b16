package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnvVars resets every variable Load reads so the host environment cannot leak in
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		EnvLogLevel, EnvLogFormat, EnvEnvironment, EnvServiceName, EnvVersion,
		EnvGameSettingsPath, EnvArchiveSize, EnvArchiveTTL, EnvSeed, EnvWorkers,
	} {
		t.Setenv(key, "")
	}
}

// TestLoad tests configuration loading from environment
func TestLoad(t *testing.T) {
	t.Run("loads config from environment variables", func(t *testing.T) {
		clearEnvVars(t)

		t.Setenv(EnvLogLevel, "debug")
		t.Setenv(EnvLogFormat, "json")
		t.Setenv(EnvEnvironment, "prod")
		t.Setenv(EnvServiceName, "arena")
		t.Setenv(EnvVersion, "2.0.0")
		t.Setenv(EnvGameSettingsPath, "/tmp/game.yaml")
		t.Setenv(EnvArchiveSize, "16")
		t.Setenv(EnvArchiveTTL, "5m")
		t.Setenv(EnvSeed, "42")
		t.Setenv(EnvWorkers, "8")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "prod", cfg.Environment)
		assert.Equal(t, "arena", cfg.ServiceName)
		assert.Equal(t, "2.0.0", cfg.Version)
		assert.Equal(t, "/tmp/game.yaml", cfg.GameSettingsPath)
		assert.Equal(t, 16, cfg.ArchiveSize)
		assert.Equal(t, 5*time.Minute, cfg.ArchiveTTL)
		assert.Equal(t, int64(42), cfg.Seed)
		assert.Equal(t, 8, cfg.Workers)
	})

	t.Run("returns error for invalid ARCHIVE_SIZE", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvArchiveSize, "many")
		t.Setenv(EnvArchiveTTL, "1m")

		cfg, err := Load()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), ErrMsgInvalidArchiveSize)
	})

	t.Run("rejects zero ARCHIVE_SIZE", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvArchiveSize, "0")
		t.Setenv(EnvArchiveTTL, "1m")

		_, err := Load()

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "must be positive")
	})

	t.Run("returns error for invalid ARCHIVE_TTL", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvArchiveSize, "4")
		t.Setenv(EnvArchiveTTL, "soon")

		cfg, err := Load()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), ErrMsgInvalidArchiveTTL)
	})

	t.Run("workers never drop below one", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvArchiveSize, "4")
		t.Setenv(EnvArchiveTTL, "1m")
		t.Setenv(EnvWorkers, "-3")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 1, cfg.Workers)
	})
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the process-level configuration
type Config struct {
	LogLevel         string
	LogFormat        string
	Environment      string
	ServiceName      string
	Version          string
	GameSettingsPath string
	ArchiveSize      int
	ArchiveTTL       time.Duration
	Seed             int64
	Workers          int
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:         getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:        getEnv(EnvLogFormat, DefaultLogFormat),
		Environment:      getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName:      getEnv(EnvServiceName, DefaultServiceName),
		Version:          getEnv(EnvVersion, DefaultVersion),
		GameSettingsPath: getEnv(EnvGameSettingsPath, DefaultGameSettingsPath),
	}

	size, err := strconv.Atoi(getEnv(EnvArchiveSize, strconv.Itoa(DefaultArchiveSize)))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidArchiveSize, err)
	}
	if size <= 0 {
		return nil, fmt.Errorf("%s: must be positive, got %d", ErrMsgInvalidArchiveSize, size)
	}
	cfg.ArchiveSize = size

	ttl, err := time.ParseDuration(getEnv(EnvArchiveTTL, DefaultArchiveTTLString))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidArchiveTTL, err)
	}
	cfg.ArchiveTTL = ttl

	cfg.Seed = getEnvAsInt64(EnvSeed, time.Now().UnixNano())
	cfg.Workers = getEnvAsInt(EnvWorkers, DefaultWorkers)
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back to the default on any parse failure
func getEnvAsInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

// getEnvAsInt64 parses a 64-bit integer variable, falling back to the default on any parse failure
func getEnvAsInt64(key string, defaultValue int64) int64 {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return defaultValue
	}
	return n
}

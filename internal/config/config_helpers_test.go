package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestGetEnv tests the getEnv helper function
func TestGetEnv(t *testing.T) {
	t.Run("returns default value when env var not set", func(t *testing.T) {
		os.Unsetenv("TEST_STRING_VAR")
		assert.Equal(t, "fallback", getEnv("TEST_STRING_VAR", "fallback"))
	})

	t.Run("returns set value even when empty", func(t *testing.T) {
		t.Setenv("TEST_STRING_VAR", "")
		assert.Equal(t, "", getEnv("TEST_STRING_VAR", "fallback"))
	})
}

// TestGetEnvAsInt tests the getEnvAsInt helper function
func TestGetEnvAsInt(t *testing.T) {
	t.Run("returns default value when env var not set", func(t *testing.T) {
		os.Unsetenv("TEST_INT_VAR")
		result := getEnvAsInt("TEST_INT_VAR", 42)
		assert.Equal(t, 42, result)
	})

	t.Run("parses valid integer from env var", func(t *testing.T) {
		t.Setenv("TEST_INT_VAR", "100")
		result := getEnvAsInt("TEST_INT_VAR", 42)
		assert.Equal(t, 100, result)
	})

	t.Run("returns default for invalid integer", func(t *testing.T) {
		t.Setenv("TEST_INT_VAR", "not-a-number")
		result := getEnvAsInt("TEST_INT_VAR", 42)
		assert.Equal(t, 42, result, "Should return default for invalid integer")
	})

	t.Run("parses negative integers", func(t *testing.T) {
		t.Setenv("TEST_INT_VAR", "-10")
		result := getEnvAsInt("TEST_INT_VAR", 42)
		assert.Equal(t, -10, result)
	})

	t.Run("returns default for float values", func(t *testing.T) {
		t.Setenv("TEST_INT_VAR", "42.5")
		result := getEnvAsInt("TEST_INT_VAR", 10)
		assert.Equal(t, 10, result, "Should return default for float values")
	})

	t.Run("returns default for empty string", func(t *testing.T) {
		t.Setenv("TEST_INT_VAR", "")
		result := getEnvAsInt("TEST_INT_VAR", 42)
		assert.Equal(t, 42, result)
	})
}

// TestGetEnvAsInt64 tests the getEnvAsInt64 helper function
func TestGetEnvAsInt64(t *testing.T) {
	t.Run("parses large seeds", func(t *testing.T) {
		t.Setenv("TEST_INT64_VAR", "1700000000000000000")
		assert.Equal(t, int64(1700000000000000000), getEnvAsInt64("TEST_INT64_VAR", 1))
	})

	t.Run("returns default for garbage", func(t *testing.T) {
		t.Setenv("TEST_INT64_VAR", "seed")
		assert.Equal(t, int64(7), getEnvAsInt64("TEST_INT64_VAR", 7))
	})
}

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRound verifies half-up rounding
func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected int
	}{
		{name: "exact integer", value: 4, expected: 4},
		{name: "below half rounds down", value: 2.49, expected: 2},
		{name: "half rounds up", value: 2.5, expected: 3},
		{name: "above half rounds up", value: 2.51, expected: 3},
		{name: "negative half rounds toward positive infinity", value: -2.5, expected: -2},
		{name: "negative below half", value: -2.6, expected: -3},
		{name: "zero", value: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Round(tt.value))
		})
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, Clamp(-5, 0, 100))
	assert.Equal(t, 100, Clamp(150, 0, 100))
	assert.Equal(t, 42, Clamp(42, 0, 100))
}

// TestPearson verifies correlation edge cases
func TestPearson(t *testing.T) {
	t.Run("perfect positive correlation", func(t *testing.T) {
		assert.InDelta(t, 1.0, Pearson([]float64{1, 2, 3}, []float64{2, 4, 6}), 0.0001)
	})

	t.Run("perfect negative correlation", func(t *testing.T) {
		assert.InDelta(t, -1.0, Pearson([]float64{1, 2, 3}, []float64{6, 4, 2}), 0.0001)
	})

	t.Run("no variance returns zero", func(t *testing.T) {
		assert.Equal(t, 0.0, Pearson([]float64{1, 1, 1}, []float64{1, 2, 3}))
	})

	t.Run("mismatched lengths return zero", func(t *testing.T) {
		assert.Equal(t, 0.0, Pearson([]float64{1, 2}, []float64{1}))
	})

	t.Run("empty returns zero", func(t *testing.T) {
		assert.Equal(t, 0.0, Pearson(nil, nil))
	})
}

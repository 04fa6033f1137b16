package utils

import (
	"math/rand"
)

// RandomSource is the only randomness the game core consumes.
// Every battle, shop and AI decision draws from an injected source so runs can be replayed from a seed.
type RandomSource interface {
	// Float64 returns a value in [0.0, 1.0)
	Float64() float64
	// Intn returns a value in [0, n)
	Intn(n int) int
}

// NewSeededSource returns a deterministic RandomSource for the given seed
func NewSeededSource(seed int64) RandomSource {
	//nolint:gosec // G404: math/rand is acceptable for game mechanics, not for cryptographic purposes
	return rand.New(rand.NewSource(seed))
}

// Roll reports whether an event with the given probability happens.
// A nil chance always succeeds.
func Roll(rng RandomSource, chance *float64) bool {
	if chance == nil {
		return true
	}
	if *chance >= 1 {
		return true
	}
	if *chance <= 0 {
		return false
	}
	return rng.Float64() < *chance
}

// WeightedIndex picks an index with probability proportional to its weight.
// Returns -1 when no weight is positive.
func WeightedIndex(rng RandomSource, weights []float64) int {
	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return -1
	}

	r := rng.Float64() * total
	last := -1
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		last = i
		if r < w {
			return i
		}
		r -= w
	}
	return last
}

// ScriptedSource replays a fixed list of floats, cycling when exhausted.
// It exists for tests and tooling that need chance gates to resolve a known way.
type ScriptedSource struct {
	Floats []float64
	pos    int
}

// Float64 returns the next scripted value
func (s *ScriptedSource) Float64() float64 {
	if len(s.Floats) == 0 {
		return 0
	}
	v := s.Floats[s.pos%len(s.Floats)]
	s.pos++
	return v
}

// Intn maps the next scripted float onto [0, n)
func (s *ScriptedSource) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	v := int(s.Float64() * float64(n))
	if v >= n {
		v = n - 1
	}
	return v
}

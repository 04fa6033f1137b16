// Package leaktest checks that parallel code returns every goroutine it starts
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	settleTimeout = 2 * time.Second
	pollInterval  = 10 * time.Millisecond
)

// GoroutineChecker records the goroutine count before the code under test runs
type GoroutineChecker struct {
	before int
	t      testing.TB
}

// NewGoroutineChecker creates a checker and records the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	runtime.Gosched()
	return &GoroutineChecker{
		before: runtime.NumGoroutine(),
		t:      t,
	}
}

// Check fails the test if more than tolerance goroutines are still running
// once the settle timeout has passed
func (g *GoroutineChecker) Check(tolerance int) bool {
	g.t.Helper()

	deadline := time.Now().Add(settleTimeout)
	for {
		runtime.Gosched()
		leaked := runtime.NumGoroutine() - g.before
		if leaked <= tolerance {
			return true
		}
		if time.Now().After(deadline) {
			g.t.Errorf("goroutine leak: before=%d, now=%d, leaked=%d, tolerance=%d",
				g.before, g.before+leaked, leaked, tolerance)
			return false
		}
		runtime.GC()
		time.Sleep(pollInterval)
	}
}

// CheckNoGoroutineLeak runs fn and checks that it left no goroutine behind
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()
	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

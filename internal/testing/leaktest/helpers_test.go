package leaktest

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGoroutineChecker_NoLeak(t *testing.T) {
	checker := NewGoroutineChecker(t)
	assert.True(t, checker.Check(0))
}

func TestGoroutineChecker_WaitsForStragglers(t *testing.T) {
	checker := NewGoroutineChecker(t)

	go time.Sleep(50 * time.Millisecond)

	assert.True(t, checker.Check(0))
}

func TestGoroutineChecker_Tolerance(t *testing.T) {
	checker := NewGoroutineChecker(t)

	done := make(chan struct{})
	go func() { <-done }()
	defer close(done)

	assert.True(t, checker.Check(1))
}

// recordingTB captures failures instead of failing the real test
type recordingTB struct {
	testing.TB
	failed bool
}

func (r *recordingTB) Helper() {}

func (r *recordingTB) Errorf(string, ...interface{}) { r.failed = true }

func TestGoroutineChecker_ReportsLeak(t *testing.T) {
	done := make(chan struct{})
	defer close(done)

	rec := &recordingTB{TB: t}
	checker := NewGoroutineChecker(rec)
	go func() { <-done }()

	assert.False(t, checker.Check(0))
	assert.True(t, rec.failed)
}

func TestCheckNoGoroutineLeak(t *testing.T) {
	CheckNoGoroutineLeak(t, func() {
		var wg sync.WaitGroup
		for i := 0; i < 4; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				time.Sleep(time.Millisecond)
			}()
		}
		wg.Wait()
	})
}

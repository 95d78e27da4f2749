package clocks

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMutableClock(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	c := NewMutableClock(start)
	assert.Equal(t, start, c.Now())

	assert.Equal(t, start.Add(time.Second), c.Advance(time.Second))
	assert.Equal(t, start, c.Advance(-time.Second))

	later := start.Add(time.Hour)
	c.Set(later.In(time.FixedZone("ICT", 7*3600)))
	assert.Equal(t, later, c.Now())
	assert.Equal(t, time.UTC, c.Now().Location())
}

func TestMutableClock_ConcurrentAdvance(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	c := NewMutableClock(start)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Advance(time.Millisecond)
		}()
	}
	wg.Wait()

	assert.Equal(t, start.Add(50*time.Millisecond), c.Now())
}

func TestSystemClock_IsUTC(t *testing.T) {
	t.Parallel()

	assert.Equal(t, time.UTC, System.Now().Location())
}

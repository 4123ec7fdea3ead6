package virtualitem

import (
	"sync"
	"time"
)

// timestampPrecision matches what both storage backends can round-trip.
const timestampPrecision = time.Microsecond

// monotonicClock hands out strictly increasing UTC timestamps so that
// creation order is total even when the wall clock stalls or repeats.
type monotonicClock struct {
	mu   sync.Mutex
	now  func() time.Time
	last time.Time
}

func newMonotonicClock(now func() time.Time) *monotonicClock {
	return &monotonicClock{now: now}
}

// Next returns a timestamp later than every earlier result and later than
// notBefore.
func (c *monotonicClock) Next(notBefore time.Time) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := c.now().UTC().Truncate(timestampPrecision)
	if !t.After(c.last) {
		t = c.last.Add(timestampPrecision)
	}
	if !notBefore.IsZero() && !t.After(notBefore) {
		t = notBefore.UTC().Truncate(timestampPrecision).Add(timestampPrecision)
	}
	c.last = t
	return t
}

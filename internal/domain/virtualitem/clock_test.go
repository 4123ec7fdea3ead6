package virtualitem

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonotonicClockNeverRepeats(t *testing.T) {
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 123456789, time.FixedZone("X", 3600))
	clock := newMonotonicClock(func() time.Time { return fixed })

	first := clock.Next(time.Time{})
	second := clock.Next(time.Time{})

	assert.Equal(t, time.UTC, first.Location())
	assert.Equal(t, fixed.UTC().Truncate(time.Microsecond), first)
	assert.Equal(t, first.Add(time.Microsecond), second)
}

func TestMonotonicClockRespectsNotBefore(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	clock := newMonotonicClock(func() time.Time { return now })

	later := now.Add(time.Hour)
	got := clock.Next(later)
	assert.True(t, got.After(later))

	assert.True(t, clock.Next(time.Time{}).After(got))
}

package faucet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAddress = "0x742d35cc6635bb0000000000000000000000dead"

// fakeClock lets the tests advance time deterministically.
type fakeClock struct {
	current time.Time
}

func (c *fakeClock) now() time.Time {
	return c.current
}

func (c *fakeClock) advance(d time.Duration) {
	c.current = c.current.Add(d)
}

func newTestTracker(window time.Duration) (*CooldownTracker, *fakeClock) {
	clock := &fakeClock{current: time.Unix(1600000000, 0)}
	tracker := NewCooldownTracker(window)
	tracker.now = clock.now
	return tracker, clock
}

func TestCooldownFreshAddressIsEligible(t *testing.T) {
	tracker, _ := newTestTracker(time.Hour)
	assert.True(t, tracker.Eligible(testAddress))
}

func TestCooldownBlocksWithinWindow(t *testing.T) {
	tracker, clock := newTestTracker(time.Hour)

	tracker.Record(testAddress)
	assert.False(t, tracker.Eligible(testAddress))

	clock.advance(59 * time.Minute)
	assert.False(t, tracker.Eligible(testAddress))
}

func TestCooldownBoundaryIsInclusive(t *testing.T) {
	tracker, clock := newTestTracker(time.Hour)

	tracker.Record(testAddress)

	// eligibility opens exactly when the window has fully elapsed
	clock.advance(time.Hour)
	assert.True(t, tracker.Eligible(testAddress))
}

func TestCooldownKeysAreCaseInsensitive(t *testing.T) {
	tracker, _ := newTestTracker(time.Hour)

	tracker.Record("0x742D35CC6635BB0000000000000000000000DEAD")
	assert.False(t, tracker.Eligible(testAddress))
}

func TestCooldownRecordOverwrites(t *testing.T) {
	tracker, clock := newTestTracker(time.Hour)

	tracker.Record(testAddress)
	clock.advance(time.Hour)
	require.True(t, tracker.Eligible(testAddress))

	tracker.Record(testAddress)
	clock.advance(30 * time.Minute)
	assert.False(t, tracker.Eligible(testAddress))
}

func TestCooldownExpiredEntriesArePruned(t *testing.T) {
	tracker, clock := newTestTracker(time.Hour)

	for _, address := range []string{
		"0x0000000000000000000000000000000000000001",
		"0x0000000000000000000000000000000000000002",
		"0x0000000000000000000000000000000000000003",
	} {
		tracker.Record(address)
	}
	require.Equal(t, 3, tracker.Size())

	clock.advance(2 * time.Hour)
	tracker.Record(testAddress)
	assert.Equal(t, 1, tracker.Size())
}

func TestCooldownRemaining(t *testing.T) {
	tracker, clock := newTestTracker(time.Hour)

	assert.Equal(t, time.Duration(0), tracker.Remaining(testAddress))

	tracker.Record(testAddress)
	clock.advance(15 * time.Minute)
	assert.Equal(t, 45*time.Minute, tracker.Remaining(testAddress))

	clock.advance(time.Hour)
	assert.Equal(t, time.Duration(0), tracker.Remaining(testAddress))
}

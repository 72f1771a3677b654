package faucet

import (
	"sync"
	"time"
)

// CooldownTracker remembers when an address was last funded and enforces the rolling
// cooldown window. State is process-local and in-memory only, a restart resets all
// cooldowns. Expired entries are pruned on every Record call so the map never holds
// more than the addresses funded within the current window.
type CooldownTracker struct {
	window   time.Duration
	now      func() time.Time
	mu       sync.Mutex
	lastSent map[string]time.Time
}

// NewCooldownTracker creates a tracker enforcing the given cooldown window.
func NewCooldownTracker(window time.Duration) *CooldownTracker {
	return &CooldownTracker{
		window:   window,
		now:      time.Now,
		lastSent: make(map[string]time.Time),
	}
}

// Eligible returns true if the normalized address has no recorded disbursement or the
// recorded one is at least a full cooldown window in the past. The boundary is
// inclusive: a request issued exactly when the window has elapsed is eligible.
func (c *CooldownTracker) Eligible(address string) bool {
	key := NormalizeAddress(address)

	c.mu.Lock()
	defer c.mu.Unlock()

	last, exists := c.lastSent[key]
	if !exists {
		return true
	}
	if c.now().Sub(last) >= c.window {
		delete(c.lastSent, key)
		return true
	}
	return false
}

// Record inserts or overwrites the last-disbursement timestamp of the normalized
// address with the current time.
func (c *CooldownTracker) Record(address string) {
	key := NormalizeAddress(address)

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for addr, last := range c.lastSent {
		if now.Sub(last) >= c.window {
			delete(c.lastSent, addr)
		}
	}
	c.lastSent[key] = now
}

// Remaining reports how long the given address still has to wait. It returns zero for
// eligible addresses.
func (c *CooldownTracker) Remaining(address string) time.Duration {
	key := NormalizeAddress(address)

	c.mu.Lock()
	defer c.mu.Unlock()

	last, exists := c.lastSent[key]
	if !exists {
		return 0
	}
	remaining := c.window - c.now().Sub(last)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Size returns the number of live cooldown entries.
func (c *CooldownTracker) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.lastSent)
}

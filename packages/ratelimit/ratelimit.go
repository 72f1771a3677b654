package ratelimit

import (
	"sync"
	"time"

	"github.com/ReneKroon/ttlcache/v2"
	"golang.org/x/time/rate"
)

// Limiter enforces a per-key token-bucket budget, refilling one token per interval up
// to burst. Per-key buckets live in a TTL cache so that keys idle for a full interval
// are evicted and memory stays bounded.
type Limiter struct {
	interval time.Duration
	burst    int

	mu      sync.Mutex
	buckets *ttlcache.Cache
}

// New creates a limiter allowing burst requests per key, refilled at one per interval.
func New(interval time.Duration, burst int) *Limiter {
	buckets := ttlcache.NewCache()
	_ = buckets.SetTTL(interval)

	return &Limiter{
		interval: interval,
		burst:    burst,
		buckets:  buckets,
	}
}

// Allow reports whether the given key may proceed and consumes one token if so.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	var bucket *rate.Limiter
	if value, err := l.buckets.Get(key); err == nil {
		bucket = value.(*rate.Limiter)
	} else {
		bucket = rate.NewLimiter(rate.Every(l.interval), l.burst)
		_ = l.buckets.Set(key, bucket)
	}

	return bucket.Allow()
}

// Close releases the eviction timer of the underlying cache.
func (l *Limiter) Close() {
	_ = l.buckets.Close()
}

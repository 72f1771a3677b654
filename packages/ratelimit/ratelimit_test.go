package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLimiterAllowsBurstThenBlocks(t *testing.T) {
	limiter := New(time.Hour, 1)
	defer limiter.Close()

	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.False(t, limiter.Allow("10.0.0.1"))
	assert.False(t, limiter.Allow("10.0.0.1"))
}

func TestLimiterKeysAreIndependent(t *testing.T) {
	limiter := New(time.Hour, 1)
	defer limiter.Close()

	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.True(t, limiter.Allow("10.0.0.2"))
	assert.False(t, limiter.Allow("10.0.0.1"))
	assert.False(t, limiter.Allow("10.0.0.2"))
}

func TestLimiterRefillsAfterInterval(t *testing.T) {
	limiter := New(50*time.Millisecond, 1)
	defer limiter.Close()

	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.False(t, limiter.Allow("10.0.0.1"))

	time.Sleep(80 * time.Millisecond)
	assert.True(t, limiter.Allow("10.0.0.1"))
}

func TestLimiterBurst(t *testing.T) {
	limiter := New(time.Hour, 3)
	defer limiter.Close()

	for i := 0; i < 3; i++ {
		assert.True(t, limiter.Allow("10.0.0.1"), i)
	}
	assert.False(t, limiter.Allow("10.0.0.1"))
}

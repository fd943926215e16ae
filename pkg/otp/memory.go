package otp

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	code     string
	expireAt time.Time
}

// MemoryCache is a process-local Cache for tests and single-instance
// development. Expiry is lazy: entries are checked on read and swept on
// write, so no background goroutine is needed.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

// MemoryOption configures a MemoryCache.
type MemoryOption func(*MemoryCache)

// WithClock replaces the time source, letting tests step past the TTL
// without sleeping.
func WithClock(now func() time.Time) MemoryOption {
	return func(c *MemoryCache) {
		if now != nil {
			c.now = now
		}
	}
}

// NewMemoryCache creates an in-memory cache. A non-positive ttl falls back
// to DefaultTTL.
func NewMemoryCache(ttl time.Duration, opts ...MemoryOption) *MemoryCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	c := &MemoryCache{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Issue generates a code and stores it under one lock acquisition, so two
// concurrent reissues leave exactly one winner and its matching code.
func (c *MemoryCache) Issue(ctx context.Context, email string) (string, error) {
	code, err := GenerateCode()
	if err != nil {
		return "", err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.sweepLocked()
	c.entries[email] = memoryEntry{code: code, expireAt: c.now().Add(c.ttl)}
	return code, nil
}

// Verify checks the submitted code against an unexpired entry. Consumes on
// success only.
func (c *MemoryCache) Verify(ctx context.Context, email, code string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[email]
	if !ok {
		return false, nil
	}
	if c.now().After(entry.expireAt) {
		delete(c.entries, email)
		return false, nil
	}
	if entry.code != code {
		return false, nil
	}

	delete(c.entries, email)
	return true, nil
}

func (c *MemoryCache) sweepLocked() {
	now := c.now()
	for email, entry := range c.entries {
		if now.After(entry.expireAt) {
			delete(c.entries, email)
		}
	}
}

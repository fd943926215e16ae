package otp_test

import (
	"context"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wishbay/wishbay/pkg/otp"
)

var codeFormat = regexp.MustCompile(`^[0-9]{6}$`)

func TestGenerateCode(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for range 50 {
		code, err := otp.GenerateCode()
		require.NoError(t, err)
		assert.Regexp(t, codeFormat, code)
		seen[code] = true
	}
	// 50 draws from a million values collide with negligible probability.
	assert.Greater(t, len(seen), 45)
}

func TestMemoryCacheIssueAndVerify(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cache := otp.NewMemoryCache(10 * time.Minute)

	code, err := cache.Issue(ctx, "alice@example.com")
	require.NoError(t, err)
	require.Regexp(t, codeFormat, code)

	t.Run("wrong code does not consume", func(t *testing.T) {
		ok, err := cache.Verify(ctx, "alice@example.com", "000000x")
		require.NoError(t, err)
		assert.False(t, ok)

		ok, err = cache.Verify(ctx, "alice@example.com", code)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("success consumes the entry", func(t *testing.T) {
		ok, err := cache.Verify(ctx, "alice@example.com", code)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestMemoryCacheUnknownEmail(t *testing.T) {
	t.Parallel()

	cache := otp.NewMemoryCache(time.Minute)
	ok, err := cache.Verify(context.Background(), "nobody@example.com", "123456")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryCacheReissueOverwrites(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cache := otp.NewMemoryCache(time.Minute)

	first, err := cache.Issue(ctx, "bob@example.com")
	require.NoError(t, err)
	second, err := cache.Issue(ctx, "bob@example.com")
	require.NoError(t, err)

	if first != second {
		ok, err := cache.Verify(ctx, "bob@example.com", first)
		require.NoError(t, err)
		assert.False(t, ok, "stale code must not verify")
	}

	ok, err := cache.Verify(ctx, "bob@example.com", second)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemoryCacheExpiry(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	current := time.Now()
	var mu sync.Mutex
	clock := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return current
	}

	cache := otp.NewMemoryCache(10*time.Minute, otp.WithClock(clock))

	code, err := cache.Issue(ctx, "carol@example.com")
	require.NoError(t, err)

	mu.Lock()
	current = current.Add(10*time.Minute + time.Second)
	mu.Unlock()

	ok, err := cache.Verify(ctx, "carol@example.com", code)
	require.NoError(t, err)
	assert.False(t, ok, "expired entries behave as absent")
}

func TestMemoryCacheConcurrentReissue(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cache := otp.NewMemoryCache(time.Minute)

	const goroutines = 16
	codes := make([]string, goroutines)

	var wg sync.WaitGroup
	for i := range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			code, err := cache.Issue(ctx, "race@example.com")
			require.NoError(t, err)
			codes[i] = code
		}()
	}
	wg.Wait()

	// Exactly one of the issued codes must have won the race.
	winners := 0
	for _, code := range codes {
		ok, err := cache.Verify(ctx, "race@example.com", code)
		require.NoError(t, err)
		if ok {
			winners++
		}
	}
	assert.Equal(t, 1, winners)
}

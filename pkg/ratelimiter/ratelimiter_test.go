package ratelimiter_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/createrainforest/bosweb/pkg/ratelimiter"
)

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func newClock() *clock {
	return &clock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newLimiter(t *testing.T, clk *clock, cfg ratelimiter.Config) (*ratelimiter.Bucket, *ratelimiter.MemoryStore) {
	t.Helper()
	store := ratelimiter.NewMemoryStore(
		ratelimiter.WithCleanupInterval(0),
		ratelimiter.WithClock(clk.Now),
	)
	t.Cleanup(store.Close)

	limiter, err := ratelimiter.NewBucket(store, cfg)
	require.NoError(t, err)
	return limiter, store
}

var testConfig = ratelimiter.Config{
	Capacity:       3,
	RefillRate:     1,
	RefillInterval: time.Minute,
}

func TestNewBucket(t *testing.T) {
	t.Parallel()

	t.Run("rejects nil store", func(t *testing.T) {
		t.Parallel()
		_, err := ratelimiter.NewBucket(nil, testConfig)
		assert.ErrorIs(t, err, ratelimiter.ErrInvalidConfig)
	})

	t.Run("rejects non-positive parameters", func(t *testing.T) {
		t.Parallel()
		store := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0))
		defer store.Close()

		for _, cfg := range []ratelimiter.Config{
			{Capacity: 0, RefillRate: 1, RefillInterval: time.Second},
			{Capacity: 1, RefillRate: 0, RefillInterval: time.Second},
			{Capacity: 1, RefillRate: 1, RefillInterval: 0},
		} {
			_, err := ratelimiter.NewBucket(store, cfg)
			assert.ErrorIs(t, err, ratelimiter.ErrInvalidConfig, "%+v", cfg)
		}
	})
}

func TestBucket_Allow(t *testing.T) {
	t.Parallel()

	t.Run("allows a burst up to capacity", func(t *testing.T) {
		t.Parallel()
		clk := newClock()
		limiter, _ := newLimiter(t, clk, testConfig)
		ctx := context.Background()

		for want := 2; want >= 0; want-- {
			res, err := limiter.Allow(ctx, "k")
			require.NoError(t, err)
			assert.True(t, res.Allowed())
			assert.Equal(t, want, res.Remaining)
			assert.Equal(t, 3, res.Limit)
		}

		res, err := limiter.Allow(ctx, "k")
		require.NoError(t, err)
		assert.False(t, res.Allowed())
		assert.Equal(t, -1, res.Remaining)
	})

	t.Run("refills per interval up to capacity", func(t *testing.T) {
		t.Parallel()
		clk := newClock()
		limiter, _ := newLimiter(t, clk, testConfig)
		ctx := context.Background()

		_, err := limiter.AllowN(ctx, "k", 3)
		require.NoError(t, err)

		clk.Advance(time.Minute)
		res, err := limiter.Allow(ctx, "k")
		require.NoError(t, err)
		assert.True(t, res.Allowed())
		assert.Equal(t, 0, res.Remaining)

		clk.Advance(24 * time.Hour)
		res, err = limiter.Status(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, 3, res.Remaining)
	})

	t.Run("keys are independent", func(t *testing.T) {
		t.Parallel()
		clk := newClock()
		limiter, _ := newLimiter(t, clk, testConfig)
		ctx := context.Background()

		_, err := limiter.AllowN(ctx, "a", 3)
		require.NoError(t, err)

		res, err := limiter.Allow(ctx, "b")
		require.NoError(t, err)
		assert.Equal(t, 2, res.Remaining)
	})

	t.Run("rejects non-positive token counts", func(t *testing.T) {
		t.Parallel()
		limiter, _ := newLimiter(t, newClock(), testConfig)
		_, err := limiter.AllowN(context.Background(), "k", 0)
		assert.ErrorIs(t, err, ratelimiter.ErrInvalidTokenCount)
	})

	t.Run("honours cancelled context", func(t *testing.T) {
		t.Parallel()
		limiter, _ := newLimiter(t, newClock(), testConfig)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := limiter.Allow(ctx, "k")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestBucket_Reset(t *testing.T) {
	t.Parallel()

	clk := newClock()
	limiter, store := newLimiter(t, clk, testConfig)
	ctx := context.Background()

	_, err := limiter.AllowN(ctx, "k", 3)
	require.NoError(t, err)
	require.NoError(t, limiter.Reset(ctx, "k"))
	assert.Equal(t, 0, store.Len())

	res, err := limiter.Allow(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, 2, res.Remaining)
}

func TestResult_RetryAfter(t *testing.T) {
	t.Parallel()

	allowed := &ratelimiter.Result{Remaining: 0, ResetAt: time.Now().Add(time.Hour)}
	assert.Zero(t, allowed.RetryAfter())

	denied := &ratelimiter.Result{Remaining: -1, ResetAt: time.Now().Add(time.Hour)}
	assert.Greater(t, denied.RetryAfter(), 59*time.Minute)

	past := &ratelimiter.Result{Remaining: -1, ResetAt: time.Now().Add(-time.Hour)}
	assert.Zero(t, past.RetryAfter())
}

func TestMemoryStore_RemoveStale(t *testing.T) {
	t.Parallel()

	clk := newClock()
	store := ratelimiter.NewMemoryStore(
		ratelimiter.WithCleanupInterval(0),
		ratelimiter.WithStaleAfter(30*time.Minute),
		ratelimiter.WithClock(clk.Now),
	)
	defer store.Close()
	ctx := context.Background()

	_, _, err := store.ConsumeTokens(ctx, "old", 1, testConfig)
	require.NoError(t, err)
	clk.Advance(20 * time.Minute)
	_, _, err = store.ConsumeTokens(ctx, "new", 1, testConfig)
	require.NoError(t, err)

	clk.Advance(15 * time.Minute)
	store.RemoveStale()
	assert.Equal(t, 1, store.Len())

	store.Close()
	store.Close()
}

func TestMemoryStore_Concurrent(t *testing.T) {
	t.Parallel()

	limiter, _ := newLimiter(t, newClock(), ratelimiter.Config{
		Capacity:       50,
		RefillRate:     1,
		RefillInterval: time.Hour,
	})
	ctx := context.Background()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := limiter.Allow(ctx, "shared")
			if err != nil || !res.Allowed() {
				return
			}
			mu.Lock()
			allowed++
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, allowed)
}

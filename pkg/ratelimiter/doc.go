// Package ratelimiter provides token bucket rate limiting with memory and
// Redis storage plus HTTP middleware.
//
// A bucket holds up to Capacity tokens and regains RefillRate tokens every
// RefillInterval. Each request takes tokens; a request that overdraws the
// bucket is denied and the debt is carried, so hammering a limited key keeps
// it limited.
//
// # Basic Usage
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//
//	limiter, err := ratelimiter.NewBucket(store, ratelimiter.Config{
//		Capacity:       5,
//		RefillRate:     1,
//		RefillInterval: 10 * time.Minute,
//	})
//	if err != nil {
//		return err
//	}
//
//	result, err := limiter.Allow(ctx, "info:203.0.113.7")
//	if err != nil {
//		return err
//	}
//	if !result.Allowed() {
//		// retry after result.RetryAfter()
//	}
//
// Config carries env tags, so it can be loaded with the config package.
//
// # Shared Limits
//
// RedisStore runs the same algorithm in a Lua script, so instances behind a
// load balancer share buckets:
//
//	limiter, err := ratelimiter.NewBucket(ratelimiter.NewRedisStore(client), cfg)
//
// # HTTP Middleware
//
//	mw := ratelimiter.Middleware(limiter,
//		ratelimiter.Prefixed("info", ratelimiter.ByClientIP),
//		ratelimiter.WithExceededHandler(tooMany),
//	)
//
// Responses carry X-RateLimit-Limit, X-RateLimit-Remaining and
// X-RateLimit-Reset; denied ones also carry Retry-After. Requests whose
// key is empty pass through unlimited.
//
// Composite joins several key functions and hashes keys longer than 64
// bytes with FNV-1a.
//
// # Memory Management
//
// MemoryStore drops buckets idle for longer than an hour, checked every five
// minutes. Tune with WithStaleAfter and WithCleanupInterval; an interval of 0
// disables the sweep.
package ratelimiter

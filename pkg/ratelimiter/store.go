package ratelimiter

import (
	"context"
	"time"
)

// Store keeps bucket state. ConsumeTokens refills the bucket for the time
// elapsed, takes tokens and reports what is left; tokens == 0 only reads.
type Store interface {
	ConsumeTokens(ctx context.Context, key string, tokens int, config Config) (remaining int, resetAt time.Time, err error)
	Reset(ctx context.Context, key string) error
}

// refill returns the token count after the intervals elapsed since last, and
// whether a refill happened. Elapsed intervals are capped so huge gaps
// cannot overflow.
func refill(tokens int, last, now time.Time, config Config) (int, bool) {
	maxIntervals := int64(config.Capacity/config.RefillRate + 1)
	intervals := int(min(int64(now.Sub(last)/config.RefillInterval), maxIntervals))
	if intervals <= 0 {
		return tokens, false
	}
	return min(tokens+intervals*config.RefillRate, config.Capacity), true
}

package ratelimiter

import "time"

// Result describes the bucket after a request took its tokens.
type Result struct {
	Limit     int       // bucket capacity
	Remaining int       // tokens left; negative once the bucket is overdrawn
	ResetAt   time.Time // next refill
}

// Allowed reports whether the request fit into the bucket.
func (r *Result) Allowed() bool {
	return r.Remaining >= 0
}

// RetryAfter is the time until the next refill for a denied request.
func (r *Result) RetryAfter() time.Duration {
	if r.Allowed() {
		return 0
	}
	return max(0, time.Until(r.ResetAt))
}

// Config is the token bucket shape. The defaults allow a burst of five info
// mails per address and one more every ten minutes.
type Config struct {
	Capacity       int           `env:"RATE_LIMIT_CAPACITY" envDefault:"5"`
	RefillRate     int           `env:"RATE_LIMIT_REFILL_RATE" envDefault:"1"`
	RefillInterval time.Duration `env:"RATE_LIMIT_REFILL_INTERVAL" envDefault:"10m"`
}

// fullRefill is how long an empty bucket takes to fill up again, and so how
// long idle bucket state is worth keeping.
func (c Config) fullRefill() time.Duration {
	intervals := c.Capacity/c.RefillRate + 1
	return time.Duration(intervals) * c.RefillInterval
}

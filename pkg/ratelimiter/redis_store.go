package ratelimiter

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// tokenBucketScript refills and consumes atomically.
//
// KEYS[1] bucket key
// ARGV: now (ms), tokens, capacity, refill rate, refill interval (ms), ttl (ms)
// Returns {remaining, next refill (ms)}.
var tokenBucketScript = redis.NewScript(`
local now = tonumber(ARGV[1])
local take = tonumber(ARGV[2])
local capacity = tonumber(ARGV[3])
local rate = tonumber(ARGV[4])
local interval = tonumber(ARGV[5])
local ttl = tonumber(ARGV[6])

local state = redis.call("HMGET", KEYS[1], "tokens", "refill")
local tokens = tonumber(state[1])
local last = tonumber(state[2])
if tokens == nil or last == nil then
	tokens = capacity
	last = now
end

local elapsed = math.floor((now - last) / interval)
local cap = math.floor(capacity / rate) + 1
if elapsed > cap then
	elapsed = cap
end
if elapsed > 0 then
	tokens = math.min(tokens + elapsed * rate, capacity)
	last = now
end

tokens = tokens - take
redis.call("HSET", KEYS[1], "tokens", tokens, "refill", last)
redis.call("PEXPIRE", KEYS[1], ttl)
return {tokens, last + interval}
`)

// RedisStore keeps buckets in Redis so several instances share one limit.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
	now    func() time.Time
}

// RedisStoreOption configures a RedisStore.
type RedisStoreOption func(*RedisStore)

// WithKeyPrefix namespaces bucket keys. Defaults to "ratelimit".
func WithKeyPrefix(prefix string) RedisStoreOption {
	return func(s *RedisStore) {
		s.prefix = prefix
	}
}

// NewRedisStore creates a store over client.
func NewRedisStore(client redis.UniversalClient, opts ...RedisStoreOption) *RedisStore {
	s := &RedisStore{
		client: client,
		prefix: "ratelimit",
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *RedisStore) key(key string) string {
	if s.prefix == "" {
		return key
	}
	return s.prefix + ":" + key
}

func (s *RedisStore) ConsumeTokens(ctx context.Context, key string, tokens int, config Config) (int, time.Time, error) {
	res, err := tokenBucketScript.Run(ctx, s.client, []string{s.key(key)},
		s.now().UnixMilli(),
		tokens,
		config.Capacity,
		config.RefillRate,
		config.RefillInterval.Milliseconds(),
		config.fullRefill().Milliseconds(),
	).Int64Slice()
	if err != nil {
		return 0, time.Time{}, errors.Join(ErrStoreUnavailable, err)
	}
	if len(res) != 2 {
		return 0, time.Time{}, ErrStoreUnavailable
	}
	return int(res[0]), time.UnixMilli(res[1]), nil
}

func (s *RedisStore) Reset(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}

package redis_test

import (
	"context"
	"os"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/createrainforest/bosweb/pkg/redis"
)

func TestConnect(t *testing.T) {
	t.Parallel()

	t.Run("empty url", func(t *testing.T) {
		t.Parallel()
		cfg := redis.Config{}
		assert.False(t, cfg.Enabled())
		_, err := redis.Connect(context.Background(), cfg)
		assert.ErrorIs(t, err, redis.ErrDisabled)
	})

	t.Run("malformed url", func(t *testing.T) {
		t.Parallel()
		_, err := redis.Connect(context.Background(), redis.Config{ConnectionURL: "http://nope"})
		assert.ErrorIs(t, err, redis.ErrInvalidURL)
	})

	t.Run("unreachable server", func(t *testing.T) {
		t.Parallel()
		_, err := redis.Connect(context.Background(), redis.Config{
			ConnectionURL:  "redis://127.0.0.1:1/0",
			RetryAttempts:  2,
			RetryInterval:  10 * time.Millisecond,
			ConnectTimeout: time.Second,
		})
		assert.ErrorIs(t, err, redis.ErrNotReady)
	})

	t.Run("live server", func(t *testing.T) {
		url := os.Getenv("REDIS_URL")
		if url == "" {
			t.Skip("REDIS_URL not set")
		}
		client, err := redis.Connect(context.Background(), redis.Config{
			ConnectionURL:  url,
			RetryAttempts:  1,
			ConnectTimeout: 5 * time.Second,
		})
		require.NoError(t, err)
		defer client.Close()
		assert.NoError(t, redis.Healthcheck(client)(context.Background()))
	})
}

func TestHealthcheck(t *testing.T) {
	t.Parallel()

	client := goredis.NewClient(&goredis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	err := redis.Healthcheck(client)(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, redis.ErrUnhealthy)
}

// Package redis connects to the optional Redis server that backs shared
// rate limits.
//
// Config is loaded from the environment. When REDIS_URL is empty the
// application keeps rate limit state in process memory instead.
//
//	if cfg.Enabled() {
//	    client, err := redis.Connect(ctx, cfg)
//	    if err != nil {
//	        return err
//	    }
//	    defer client.Close()
//	    probe := redis.Healthcheck(client)
//	}
//
// Connect retries the initial ping. Its errors wrap ErrDisabled,
// ErrInvalidURL or ErrNotReady; failed probes wrap ErrUnhealthy.
package redis

package redis

import "errors"

var (
	// ErrDisabled is returned by Connect when no REDIS_URL is configured.
	ErrDisabled   = errors.New("redis: disabled, no connection url")
	ErrInvalidURL = errors.New("redis: invalid connection url")
	ErrNotReady   = errors.New("redis: server not ready")
	ErrUnhealthy  = errors.New("redis: ping failed")
)

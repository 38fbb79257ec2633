package ratelimiter

import (
	"hash/fnv"
	"net/http"
	"strconv"
	"strings"

	"github.com/createrainforest/bosweb/pkg/clientip"
)

// maxKeyLength bounds storage keys; longer composites are hashed.
const maxKeyLength = 64

// KeyFunc extracts a rate limit key from the request. An empty key skips
// limiting for that request.
type KeyFunc func(r *http.Request) string

// ByClientIP keys requests by the address stored by clientip.Middleware,
// falling back to resolving it from the request.
func ByClientIP(r *http.Request) string {
	if ip := clientip.FromContext(r.Context()); ip != "" {
		return ip
	}
	return clientip.GetIP(r)
}

// ByFormValue keys requests by a submitted form field, e.g. the recipient
// address of an info mail.
func ByFormValue(field string) KeyFunc {
	return func(r *http.Request) string {
		return strings.ToLower(strings.TrimSpace(r.FormValue(field)))
	}
}

// Prefixed namespaces the key produced by fn. Empty keys stay empty.
func Prefixed(prefix string, fn KeyFunc) KeyFunc {
	return func(r *http.Request) string {
		key := fn(r)
		if key == "" {
			return ""
		}
		return prefix + ":" + key
	}
}

// Composite combines key functions, hashing results longer than 64 bytes
// with FNV-1a.
func Composite(keyFuncs ...KeyFunc) KeyFunc {
	return func(r *http.Request) string {
		parts := make([]string, 0, len(keyFuncs))
		for _, fn := range keyFuncs {
			if key := fn(r); key != "" {
				parts = append(parts, key)
			}
		}

		if len(parts) == 0 {
			return ""
		}
		if len(parts) == 1 && len(parts[0]) <= maxKeyLength {
			return parts[0]
		}

		combined := strings.Join(parts, ":")
		if len(combined) > maxKeyLength {
			h := fnv.New64a()
			h.Write([]byte(combined))
			return strconv.FormatUint(h.Sum64(), 36)
		}
		return combined
	}
}

type middlewareOptions struct {
	exceeded http.Handler
	failed   http.Handler
}

// MiddlewareOption configures Middleware.
type MiddlewareOption func(*middlewareOptions)

// WithExceededHandler sets the handler serving denied requests. Rate limit
// headers are already set when it runs.
func WithExceededHandler(h http.Handler) MiddlewareOption {
	return func(o *middlewareOptions) {
		if h != nil {
			o.exceeded = h
		}
	}
}

// WithErrorHandler sets the handler serving requests whose limit could not
// be checked.
func WithErrorHandler(h http.Handler) MiddlewareOption {
	return func(o *middlewareOptions) {
		if h != nil {
			o.failed = h
		}
	}
}

// Middleware limits requests per key. Responses carry X-RateLimit-* headers,
// and denied ones a Retry-After header.
func Middleware(limiter RateLimiter, keyFunc KeyFunc, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	o := middlewareOptions{
		exceeded: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		}),
		failed: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := keyFunc(r)
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}

			result, err := limiter.Allow(r.Context(), key)
			if err != nil {
				o.failed.ServeHTTP(w, r)
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(max(0, result.Remaining)))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))

			if !result.Allowed() {
				if retryAfter := int(result.RetryAfter().Seconds()); retryAfter > 0 {
					w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				}
				o.exceeded.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

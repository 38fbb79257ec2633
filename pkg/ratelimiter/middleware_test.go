package ratelimiter_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/createrainforest/bosweb/pkg/clientip"
	"github.com/createrainforest/bosweb/pkg/ratelimiter"
)

type failingLimiter struct{}

func (failingLimiter) Allow(context.Context, string) (*ratelimiter.Result, error) {
	return nil, errors.New("down")
}

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("sets headers and denies once exhausted", func(t *testing.T) {
		t.Parallel()
		limiter, _ := newLimiter(t, newClock(), ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: 1 << 40})
		h := ratelimiter.Middleware(limiter, ratelimiter.ByClientIP)(okHandler)

		req := httptest.NewRequest(http.MethodPost, "/info", nil)
		req.RemoteAddr = "203.0.113.7:5000"

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "1", rec.Header().Get("X-RateLimit-Limit"))
		assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))

		rec = httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
	})

	t.Run("custom exceeded handler", func(t *testing.T) {
		t.Parallel()
		limiter, _ := newLimiter(t, newClock(), ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: 1 << 40})
		exceeded := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
		})
		h := ratelimiter.Middleware(limiter, func(*http.Request) string { return "k" },
			ratelimiter.WithExceededHandler(exceeded))(okHandler)

		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("limiter failure uses error handler", func(t *testing.T) {
		t.Parallel()
		h := ratelimiter.Middleware(failingLimiter{}, func(*http.Request) string { return "k" })(okHandler)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("empty key passes through", func(t *testing.T) {
		t.Parallel()
		h := ratelimiter.Middleware(failingLimiter{}, func(*http.Request) string { return "" })(okHandler)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestKeyFuncs(t *testing.T) {
	t.Parallel()

	t.Run("ByClientIP prefers context", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "198.51.100.1:1234"
		assert.Equal(t, "198.51.100.1", ratelimiter.ByClientIP(req))

		req = req.WithContext(clientip.WithContext(req.Context(), "203.0.113.9"))
		assert.Equal(t, "203.0.113.9", ratelimiter.ByClientIP(req))
	})

	t.Run("ByFormValue normalises", func(t *testing.T) {
		t.Parallel()
		body := url.Values{"email": {"  Foo@Example.ORG "}}.Encode()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		assert.Equal(t, "foo@example.org", ratelimiter.ByFormValue("email")(req))
	})

	t.Run("Prefixed keeps empty keys empty", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		assert.Equal(t, "", ratelimiter.Prefixed("x", func(*http.Request) string { return "" })(req))
		assert.Equal(t, "x:k", ratelimiter.Prefixed("x", func(*http.Request) string { return "k" })(req))
	})

	t.Run("Composite joins and hashes", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		a := func(*http.Request) string { return "a" }
		b := func(*http.Request) string { return "b" }
		empty := func(*http.Request) string { return "" }
		long := func(*http.Request) string { return strings.Repeat("x", 80) }

		assert.Equal(t, "a:b", ratelimiter.Composite(a, empty, b)(req))
		assert.Equal(t, "", ratelimiter.Composite(empty)(req))

		hashed := ratelimiter.Composite(a, long)(req)
		assert.LessOrEqual(t, len(hashed), 13)
		assert.Equal(t, hashed, ratelimiter.Composite(a, long)(req))
	})
}

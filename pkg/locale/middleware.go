package locale

import (
	"net/http"
	"strings"
)

// Extractor determines the site language for a request. It returns "" when
// the request carries no usable preference.
type Extractor func(r *http.Request) string

// ExtractorConfig holds the request sources consulted by DefaultExtractor.
type ExtractorConfig struct {
	CookieName     string
	QueryParamName string
}

// ExtractorOption configures DefaultExtractor.
type ExtractorOption func(*ExtractorConfig)

// WithCookieName sets the cookie holding an explicit language choice.
func WithCookieName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name != "" {
			c.CookieName = name
		}
	}
}

// WithQueryParamName sets the query parameter holding an explicit language choice.
func WithQueryParamName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name != "" {
			c.QueryParamName = name
		}
	}
}

// DefaultExtractor checks, in order, the "lang" cookie, the "lang" query
// parameter and the Accept-Language header.
func DefaultExtractor(opts ...ExtractorOption) Extractor {
	cfg := &ExtractorConfig{
		CookieName:     "lang",
		QueryParamName: "lang",
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(r *http.Request) string {
		if cfg.CookieName != "" {
			if c, err := r.Cookie(cfg.CookieName); err == nil {
				if code := Exact(strings.TrimSpace(c.Value)); code != "" {
					return code
				}
			}
		}

		if cfg.QueryParamName != "" {
			if code := Exact(strings.TrimSpace(r.URL.Query().Get(cfg.QueryParamName))); code != "" {
				return code
			}
		}

		if accept := r.Header.Get("Accept-Language"); accept != "" {
			if len(accept) > maxAcceptLanguageLength {
				accept = accept[:maxAcceptLanguageLength]
			}
			return Match(accept)
		}
		return ""
	}
}

// maxAcceptLanguageLength truncates oversized Accept-Language headers.
const maxAcceptLanguageLength = 4096

// Middleware stores the request's site language in its context.
func Middleware(extr Extractor) func(http.Handler) http.Handler {
	if extr == nil {
		extr = DefaultExtractor()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			code := extr(r)
			if code == "" {
				code = Default
			}
			next.ServeHTTP(w, r.WithContext(WithLocale(r.Context(), code)))
		})
	}
}

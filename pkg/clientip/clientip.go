package clientip

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"net/textproto"
	"strings"

	"github.com/createrainforest/bosweb/pkg/logger"
)

// DefaultHeaders are the proxy headers trusted by GetIP, in order.
var DefaultHeaders = []string{"CF-Connecting-IP", "DO-Connecting-IP", "X-Forwarded-For", "X-Real-IP"}

// Resolver determines the client address of a request. Proxy headers are
// consulted in order before falling back to the connection address.
type Resolver struct {
	headers []string
}

// NewResolver creates a resolver trusting the given headers. With no
// headers only the connection address is used, which is the safe choice
// when the server is reachable without a proxy.
func NewResolver(headers ...string) *Resolver {
	clean := make([]string, 0, len(headers))
	for _, h := range headers {
		if h = strings.TrimSpace(h); h != "" {
			clean = append(clean, textproto.CanonicalMIMEHeaderKey(h))
		}
	}
	return &Resolver{headers: clean}
}

var defaultResolver = NewResolver(DefaultHeaders...)

// GetIP resolves the client address trusting DefaultHeaders.
func GetIP(r *http.Request) string {
	return defaultResolver.IP(r)
}

// IP returns the normalised client address, or "" when none can be parsed.
// X-Forwarded-For contributes its first parsable entry.
func (res *Resolver) IP(r *http.Request) string {
	for _, h := range res.headers {
		value := r.Header.Get(h)
		if value == "" {
			continue
		}
		if h == "X-Forwarded-For" {
			for part := range strings.SplitSeq(value, ",") {
				if ip := parseIP(part); ip != "" {
					return ip
				}
			}
			continue
		}
		if ip := parseIP(value); ip != "" {
			return ip
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

func parseIP(s string) string {
	ip := net.ParseIP(strings.TrimSpace(s))
	if ip == nil {
		return ""
	}
	return ip.String()
}

type contextKey struct{}

// WithContext stores ip in ctx.
func WithContext(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, contextKey{}, ip)
}

// FromContext returns the client address stored by Middleware, or "".
func FromContext(ctx context.Context) string {
	ip, _ := ctx.Value(contextKey{}).(string)
	return ip
}

// Middleware stores the resolved client address in the request context.
// A nil resolver trusts DefaultHeaders.
func Middleware(res *Resolver) func(http.Handler) http.Handler {
	if res == nil {
		res = defaultResolver
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), res.IP(r))))
		})
	}
}

// LoggerExtractor adds the client address to records logged with a request
// context.
func LoggerExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if ip := FromContext(ctx); ip != "" {
			return logger.ClientIP(ip), true
		}
		return slog.Attr{}, false
	}
}

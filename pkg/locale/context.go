package locale

import "context"

type localeContextKey struct{}

// WithLocale stores the site language in ctx.
func WithLocale(ctx context.Context, code string) context.Context {
	return context.WithValue(ctx, localeContextKey{}, code)
}

// FromContext returns the site language stored in ctx, or Default.
func FromContext(ctx context.Context) string {
	code, _ := ctx.Value(localeContextKey{}).(string)
	if code == "" {
		return Default
	}
	return code
}

package binder

import "net/http"

// Query binds URL query parameters into a struct using `query:"name"` tags.
// A `query:"*"` url.Values field receives the whole query.
//
// Example:
//
//	type infoRequest struct {
//		Email string `query:"email"`
//	}
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		return bindToStruct(v, "query", r.URL.Query(), ErrInvalidQuery)
	}
}

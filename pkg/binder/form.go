package binder

import (
	"fmt"
	"mime"
	"net/http"
	"strings"
)

// DefaultMaxMemory bounds the memory used for parsing multipart forms.
const DefaultMaxMemory = 1 << 20 // 1 MB

// Form binds posted form fields into a struct.
// It accepts application/x-www-form-urlencoded and multipart/form-data
// bodies; uploaded files are ignored.
//
// Supported struct tags:
//   - `form:"name"` - binds to form field "name"
//   - `form:"-"`    - skips the field
//   - `form:"*"`    - on a url.Values field, receives every posted field
//
// Bodyless GET and HEAD requests are reported as ErrBinderNotApplicable so
// the same request struct can be served by Query on those methods.
//
// Example:
//
//	type transferRequest struct {
//		Values url.Values `form:"*"`
//		Lang   string     `path:"lang"`
//	}
//
//	r.Post("/transfer/{lang}", handler.Wrap(h.transfer,
//		handler.WithBinders[handler.Context, transferRequest](
//			binder.Path(chi.URLParam),
//			binder.Form(),
//		),
//	))
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if (r.Method == http.MethodGet || r.Method == http.MethodHead) && r.ContentLength <= 0 {
			return ErrBinderNotApplicable
		}

		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			return fmt.Errorf("%w: expected application/x-www-form-urlencoded or multipart/form-data", ErrMissingContentType)
		}

		mediaType, params, err := mime.ParseMediaType(contentType)
		if err != nil {
			return fmt.Errorf("%w: malformed content type", ErrInvalidForm)
		}

		var values map[string][]string
		switch {
		case mediaType == "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidForm, err)
			}
			values = r.PostForm

		case strings.HasPrefix(mediaType, "multipart/form-data"):
			if !validateBoundary(params["boundary"]) {
				return fmt.Errorf("%w: invalid boundary parameter", ErrInvalidForm)
			}
			if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidForm, err)
			}
			values = make(map[string][]string)
			if r.MultipartForm != nil {
				values = r.MultipartForm.Value
			}

		default:
			return fmt.Errorf("%w: got %s, expected application/x-www-form-urlencoded or multipart/form-data", ErrUnsupportedMediaType, mediaType)
		}

		return bindToStruct(v, "form", values, ErrInvalidForm)
	}
}

// validateBoundary checks a multipart boundary against RFC 2046.
func validateBoundary(boundary string) bool {
	if boundary == "" || len(boundary) > 70 {
		return false
	}
	for _, c := range boundary {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case strings.ContainsRune("'()+_,-./:=? ", c):
		default:
			return false
		}
	}
	return !strings.HasSuffix(boundary, " ")
}

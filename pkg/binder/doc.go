// Package binder binds HTTP request data into typed request structs for
// handler.Wrap.
//
// Three binders are provided:
//
//   - Form(): posted fields from urlencoded or multipart bodies (`form` tags)
//   - Query(): URL query parameters (`query` tags)
//   - Path(extractor): router path parameters (`path` tags)
//
// Binders run in the order given to handler.WithBinders. Each one only
// touches fields carrying its own tag, or untagged fields, which bind by
// their lowercased name. A url.Values field tagged "*" receives every value
// the binder sees, which is how form checks get the raw submission:
//
//	type transferRequest struct {
//	    Values url.Values `form:"*"`
//	    Lang   string     `path:"lang"`
//	}
//
// Booleans accept "on", "yes" and "1" the way browsers post checkboxes.
// An empty value for a numeric field is a binding error, so optional
// numbers are best declared as strings and parsed by the form checks.
//
// # Error Handling
//
//   - ErrUnsupportedMediaType: body is neither urlencoded nor multipart
//   - ErrMissingContentType: a body was sent without Content-Type
//   - ErrInvalidForm, ErrInvalidQuery, ErrInvalidPath: a value could not be bound
//   - ErrBinderNotApplicable: the request has nothing for this binder
package binder

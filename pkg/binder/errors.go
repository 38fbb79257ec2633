package binder

import "errors"

var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrMissingContentType   = errors.New("missing content type")
	ErrInvalidForm          = errors.New("invalid form data")
	ErrInvalidQuery         = errors.New("invalid query parameter")
	ErrInvalidPath          = errors.New("invalid path parameter")

	// ErrBinderNotApplicable tells the handler wrapper to skip a binder that
	// has nothing to read from the request, e.g. Form on a bodyless GET.
	ErrBinderNotApplicable = errors.New("binder not applicable")
)

package form

import "errors"

var (
	// ErrFieldNotFound is returned when a selector matches no control in any layer of the scope.
	ErrFieldNotFound = errors.New("form field not found")

	// ErrFrameNotFound is returned when a selector names a child frame the document does not have.
	ErrFrameNotFound = errors.New("form frame not found")

	// ErrInvalidPath is returned for empty or malformed selectors.
	ErrInvalidPath = errors.New("invalid field path")
)

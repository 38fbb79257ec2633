package locale

import "errors"

var (
	// ErrEmptyTarget is returned when the language menu posts no destination.
	ErrEmptyTarget = errors.New("empty jump target")

	// ErrForeignTarget is returned for destinations outside the current site.
	ErrForeignTarget = errors.New("jump target leaves the site")
)

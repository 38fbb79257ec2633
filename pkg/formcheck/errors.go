package formcheck

import "errors"

var (
	// ErrMalformedRules is returned when a flat rule list is not made of complete tuples.
	ErrMalformedRules = errors.New("malformed rule list")

	// ErrInvalidCheckType is returned for check codes outside the known range.
	ErrInvalidCheckType = errors.New("invalid check type")
)

package config

import "errors"

var (
	// ErrParsingConfig wraps env parse failures such as a malformed duration
	// or a missing required variable.
	ErrParsingConfig   = errors.New("config: parse environment")
	ErrConfigNotLoaded = errors.New("config: value not cached after load")
	ErrNilPointer      = errors.New("config: nil target")
)

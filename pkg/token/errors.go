package token

import "errors"

var (
	ErrEmptySecret     = errors.New("token: empty secret")
	ErrMalformed       = errors.New("token: malformed")
	ErrBadSignature    = errors.New("token: signature mismatch")
	ErrExpired         = errors.New("token: expired")
	ErrSubjectMismatch = errors.New("token: issued for another subject")
)

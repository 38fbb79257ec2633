package httpserver

import "errors"

var (
	ErrListen         = errors.New("httpserver: listen")
	ErrServe          = errors.New("httpserver: serve")
	ErrShutdown       = errors.New("httpserver: graceful shutdown")
	ErrAlreadyRunning = errors.New("httpserver: already running")
)

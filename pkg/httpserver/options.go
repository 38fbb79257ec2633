package httpserver

import (
	"log/slog"
	"net"
	"time"
)

// Option configures a Server. Zero and negative values leave the current
// setting unchanged.
type Option func(*Server)

// WithAddr sets the TCP address to listen on.
func WithAddr(addr string) Option {
	return func(s *Server) {
		if addr != "" {
			s.addr = addr
		}
	}
}

// WithListener serves on l instead of listening on the configured address.
func WithListener(l net.Listener) Option {
	return func(s *Server) {
		if l != nil {
			s.listener = l
		}
	}
}

func WithReadHeaderTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.readHeaderTimeout = d
		}
	}
}

func WithReadTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.readTimeout = d
		}
	}
}

func WithWriteTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.writeTimeout = d
		}
	}
}

func WithIdleTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.idleTimeout = d
		}
	}
}

// WithShutdownTimeout bounds how long in-flight requests may finish.
func WithShutdownTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.shutdownTimeout = d
		}
	}
}

func WithMaxHeaderBytes(n int) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxHeaderBytes = n
		}
	}
}

// WithLogger sets the logger. A nil logger discards records.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// WithStartHook runs fn with the bound address once the server listens.
func WithStartHook(fn func(net.Addr)) Option {
	return func(s *Server) {
		if fn != nil {
			s.onStart = append(s.onStart, fn)
		}
	}
}

// WithStopHook runs fn after the server has shut down.
func WithStopHook(fn func()) Option {
	return func(s *Server) {
		if fn != nil {
			s.onStop = append(s.onStop, fn)
		}
	}
}

package httpserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/createrainforest/bosweb/pkg/logger"
)

// Server runs an http.Server until its context ends or the process is
// asked to stop, then drains in-flight requests.
type Server struct {
	addr              string
	listener          net.Listener
	readHeaderTimeout time.Duration
	readTimeout       time.Duration
	writeTimeout      time.Duration
	idleTimeout       time.Duration
	shutdownTimeout   time.Duration
	maxHeaderBytes    int
	log               *slog.Logger
	onStart           []func(net.Addr)
	onStop            []func()

	mu       sync.Mutex
	srv      *http.Server
	bound    net.Addr
	stopOnce sync.Once
	stopErr  error
}

// New creates a Server listening on ":8080" unless configured otherwise.
func New(opts ...Option) *Server {
	s := &Server{
		addr:              ":8080",
		readHeaderTimeout: 5 * time.Second,
		shutdownTimeout:   5 * time.Second,
		log:               logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logger.Component("httpserver"))
	return s
}

// Addr returns the address the server is bound to, or nil before Run listens.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bound
}

// Run serves handler and blocks until ctx is done, SIGINT or SIGTERM
// arrives, or serving fails. A Server runs once.
func (s *Server) Run(ctx context.Context, handler http.Handler) error {
	if handler == nil {
		handler = http.NotFoundHandler()
	}

	s.mu.Lock()
	if s.srv != nil {
		s.mu.Unlock()
		return ErrAlreadyRunning
	}
	l := s.listener
	if l == nil {
		var err error
		if l, err = net.Listen("tcp", s.addr); err != nil {
			s.mu.Unlock()
			return fmt.Errorf("%w %s: %w", ErrListen, s.addr, err)
		}
	}
	s.srv = &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: s.readHeaderTimeout,
		ReadTimeout:       s.readTimeout,
		WriteTimeout:      s.writeTimeout,
		IdleTimeout:       s.idleTimeout,
		MaxHeaderBytes:    s.maxHeaderBytes,
		BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}
	s.bound = l.Addr()
	srv := s.srv
	s.mu.Unlock()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	served := make(chan error, 1)
	go func() { served <- srv.Serve(l) }()

	s.log.Info("http server listening", slog.String("addr", l.Addr().String()))
	for _, fn := range s.onStart {
		fn(l.Addr())
	}

	select {
	case err := <-served:
		if errors.Is(err, http.ErrServerClosed) {
			return s.Shutdown(context.WithoutCancel(ctx))
		}
		s.log.Error("http server failed", logger.Error(err))
		return fmt.Errorf("%w: %w", ErrServe, err)
	case <-ctx.Done():
		s.log.Info("http server stopping", slog.String("cause", context.Cause(ctx).Error()))
	}

	err := s.Shutdown(context.WithoutCancel(ctx))
	<-served
	return err
}

// Shutdown drains the server within the shutdown timeout. Later calls
// return the first result.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.srv
	s.mu.Unlock()
	if srv == nil {
		return nil
	}

	s.stopOnce.Do(func() {
		ctx, cancel := context.WithTimeout(ctx, s.shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			s.stopErr = fmt.Errorf("%w: %w", ErrShutdown, err)
			s.log.Error("http server shutdown incomplete", logger.Error(err))
		}
		for _, fn := range s.onStop {
			fn()
		}
		s.log.Info("http server stopped")
	})
	return s.stopErr
}

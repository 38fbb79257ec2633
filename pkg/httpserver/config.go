package httpserver

import "time"

// Config is the environment form of the server options. Zero values keep
// the defaults.
type Config struct {
	Addr string `env:"HTTP_ADDR" envDefault:":8080"`
	// ReadHeaderTimeout bounds slow clients before any handler runs.
	ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" envDefault:"5s"`
	ReadTimeout       time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"30s"`
	WriteTimeout      time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"30s"`
	IdleTimeout       time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout   time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"`
	// MaxHeaderBytes caps request headers. Donation forms post small bodies
	// and carry no large cookies.
	MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" envDefault:"65536"`
}

// Options converts the config to server options.
func (c Config) Options() []Option {
	return []Option{
		WithAddr(c.Addr),
		WithReadHeaderTimeout(c.ReadHeaderTimeout),
		WithReadTimeout(c.ReadTimeout),
		WithWriteTimeout(c.WriteTimeout),
		WithIdleTimeout(c.IdleTimeout),
		WithShutdownTimeout(c.ShutdownTimeout),
		WithMaxHeaderBytes(c.MaxHeaderBytes),
	}
}

// NewFromConfig creates a Server from cfg. opts are applied after the config
// and override it.
func NewFromConfig(cfg Config, opts ...Option) *Server {
	return New(append(cfg.Options(), opts...)...)
}

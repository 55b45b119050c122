package httpserver

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// Config is the HTTP_* environment block. Zero durations leave the
// http.Server field unset.
type Config struct {
	Addr              string        `env:"HTTP_ADDR" envDefault:":8080"`
	ReadTimeout       time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"30s"`
	ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" envDefault:"10s"`
	WriteTimeout      time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"30s"`
	IdleTimeout       time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout   time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// settings is Config plus the values that cannot come from the environment.
type settings struct {
	Config
	server     *http.Server
	logger     *slog.Logger
	startHooks []func(*slog.Logger)
	stopHooks  []func(*slog.Logger)
}

// Option adjusts a Server before it runs. Invalid arguments panic when the
// option is built, not when it is applied.
type Option func(*settings)

func WithAddr(addr string) Option {
	if addr == "" {
		panic("httpserver: empty listen address")
	}
	return func(s *settings) { s.Addr = addr }
}

func WithReadTimeout(d time.Duration) Option {
	mustBePositive("read timeout", d)
	return func(s *settings) { s.ReadTimeout = d }
}

func WithReadHeaderTimeout(d time.Duration) Option {
	mustBePositive("read header timeout", d)
	return func(s *settings) { s.ReadHeaderTimeout = d }
}

func WithWriteTimeout(d time.Duration) Option {
	mustBePositive("write timeout", d)
	return func(s *settings) { s.WriteTimeout = d }
}

func WithIdleTimeout(d time.Duration) Option {
	mustBePositive("idle timeout", d)
	return func(s *settings) { s.IdleTimeout = d }
}

// WithShutdownTimeout bounds how long Shutdown waits for in-flight requests.
func WithShutdownTimeout(d time.Duration) Option {
	mustBePositive("shutdown timeout", d)
	return func(s *settings) { s.ShutdownTimeout = d }
}

// WithServer serves on srv. Fields already set on srv win over the
// configured values; Handler is always replaced.
func WithServer(srv *http.Server) Option {
	if srv == nil {
		panic("httpserver: nil *http.Server")
	}
	return func(s *settings) { s.server = srv }
}

// WithLogger sets the lifecycle logger. Nil discards.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) { s.logger = l }
}

// WithStartHook runs h once the listener is bound.
func WithStartHook(h func(*slog.Logger)) Option {
	if h == nil {
		panic("httpserver: nil start hook")
	}
	return func(s *settings) { s.startHooks = append(s.startHooks, h) }
}

// WithStopHook runs h after shutdown completes.
func WithStopHook(h func(*slog.Logger)) Option {
	if h == nil {
		panic("httpserver: nil stop hook")
	}
	return func(s *settings) { s.stopHooks = append(s.stopHooks, h) }
}

func mustBePositive(name string, d time.Duration) {
	if d <= 0 {
		panic(fmt.Sprintf("httpserver: %s must be positive, got %s", name, d))
	}
}

// NewFromConfig builds a Server from cfg. Empty and zero fields keep the
// package defaults; opts are applied afterwards.
func NewFromConfig(cfg Config, opts ...Option) *Server {
	return New(append([]Option{fromConfig(cfg)}, opts...)...)
}

func fromConfig(cfg Config) Option {
	return func(s *settings) {
		if cfg.Addr != "" {
			s.Addr = cfg.Addr
		}
		for dst, v := range map[*time.Duration]time.Duration{
			&s.ReadTimeout:       cfg.ReadTimeout,
			&s.ReadHeaderTimeout: cfg.ReadHeaderTimeout,
			&s.WriteTimeout:      cfg.WriteTimeout,
			&s.IdleTimeout:       cfg.IdleTimeout,
			&s.ShutdownTimeout:   cfg.ShutdownTimeout,
		} {
			if v > 0 {
				*dst = v
			}
		}
	}
}

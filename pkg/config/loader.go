package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// cache stores one parsed value per configuration type.
var cache sync.Map // map[reflect.Type]any

var defaultEnvLoaded sync.Once

// Load parses environment variables into v. Each configuration type is
// parsed once per process; later calls for the same type copy the cached
// value. The default .env file in the working directory is loaded first if
// present.
//
//	type ServerConfig struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	defaultEnvLoaded.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})

	key := reflect.TypeFor[T]()
	if cached, ok := cache.Load(key); ok {
		*v = cached.(T)
		return nil
	}

	parsed, err := Parse[T]()
	if err != nil {
		return err
	}

	actual, _ := cache.LoadOrStore(key, parsed)
	*v = actual.(T)
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// ParseOption adjusts a single Parse call.
type ParseOption func(*env.Options)

// WithEnvironment parses from vars instead of the process environment.
func WithEnvironment(vars map[string]string) ParseOption {
	return func(o *env.Options) {
		o.Environment = vars
	}
}

// WithPrefix prepends prefix to every variable name.
func WithPrefix(prefix string) ParseOption {
	return func(o *env.Options) {
		o.Prefix = prefix
	}
}

// Parse reads a fresh T from the environment without touching the cache.
func Parse[T any](opts ...ParseOption) (T, error) {
	var o env.Options
	for _, opt := range opts {
		opt(&o)
	}

	v, err := env.ParseAsWithOptions[T](o)
	if err != nil {
		return v, errors.Join(ErrParsingConfig, err)
	}
	return v, nil
}

// LoadEnv loads the given .env files into the process environment without
// overriding variables that are already set.
func LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// ResetCache forgets every cached configuration.
func ResetCache() {
	cache.Range(func(key, _ any) bool {
		cache.Delete(key)
		return true
	})
}

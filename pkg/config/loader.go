package config

import (
	"errors"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option configures a single Load call.
type Option func(*options)

type options struct {
	files  []string
	prefix string
}

// WithEnvFiles reads the given .env files before parsing. Later files override
// earlier ones; variables already present in the process environment win over
// every file. Files are read, not exported, so the process environment is
// left untouched.
func WithEnvFiles(paths ...string) Option {
	return func(o *options) {
		o.files = append(o.files, paths...)
	}
}

// WithPrefix prepends prefix to every env tag, so `env:"STRICT"` with prefix
// "DECLARATIVE_" reads DECLARATIVE_STRICT.
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// Load parses environment variables into v using `env` and `envDefault`
// struct tags.
//
// Example:
//
//	type Settings struct {
//		LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//		Strict   bool   `env:"STRICT"`
//	}
//
//	var s Settings
//	if err := config.Load(&s, config.WithPrefix("DECLARATIVE_")); err != nil {
//		return err
//	}
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	environ, err := environment(o.files)
	if err != nil {
		return err
	}

	if err := env.ParseWithOptions(v, env.Options{
		Environment: environ,
		Prefix:      o.prefix,
	}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(err)
	}
}

func environment(files []string) (map[string]string, error) {
	vars := make(map[string]string)
	if len(files) > 0 {
		fromFiles, err := godotenv.Read(files...)
		if err != nil {
			return nil, errors.Join(ErrLoadingEnvFile, err)
		}
		for k, val := range fromFiles {
			vars[k] = val
		}
	}
	for _, kv := range os.Environ() {
		if k, val, ok := strings.Cut(kv, "="); ok {
			vars[k] = val
		}
	}
	return vars, nil
}

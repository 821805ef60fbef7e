// Package config loads settings from environment variables into structs.
//
// It wraps `github.com/caarlos0/env/v11` for tag-driven parsing and
// `github.com/joho/godotenv` for optional .env files:
//
//	type Settings struct {
//		LogLevel string            `env:"LOG_LEVEL" envDefault:"info"`
//		Timeout  interval.Duration `env:"TIMEOUT" envDefault:"30s"`
//	}
//
//	var s Settings
//	err := config.Load(&s,
//		config.WithPrefix("DECLARATIVE_"),
//		config.WithEnvFiles(".env"),
//	)
//
// Any field type implementing encoding.TextUnmarshaler is supported, which
// is how interval.Duration accepts compact values such as "5m".
//
// Errors wrap ErrNilPointer, ErrLoadingEnvFile or ErrParsingConfig and can be
// checked with errors.Is.
package config

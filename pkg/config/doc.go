// Package config loads configuration structs from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
// optional .env files are read first (missing files are skipped, variables
// already set in the process win), then the environment is parsed into a
// struct using `env` field tags.
//
// # Usage
//
//	type Config struct {
//	    LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	    MaxAtoms int    `env:"MAX_ATOMS" envDefault:"0"`
//	}
//
//	var cfg Config
//	err := config.Load(&cfg, config.WithPrefix("MAILCHECK_"))
//	if errors.Is(err, config.ErrParsingConfig) {
//	    // a variable has the wrong type or a required one is missing
//	}
//
// MustLoad panics instead of returning an error, for configuration the
// program cannot start without.
package config

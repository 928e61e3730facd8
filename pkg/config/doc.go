// Package config provides a type-safe, generic way to load configuration
// from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11` to
// deliver a small API that:
//
//   - Loads values from one or multiple `.env` files (fallback to the
//     default `.env` in the current working directory).
//   - Parses the environment into any Go struct using field tags.
//   - Exposes a helper that panics on failure (`MustLoad`) for configuration
//     the process cannot run without.
//
// # Usage
//
// Create a struct describing your configuration and annotate its fields with
// `env` tags:
//
//	type ValidatorConfig struct {
//	    Strict bool   `env:"RECORDKIT_STRICT" envDefault:"false"`
//	    Schema string `env:"RECORDKIT_SCHEMA_PATH"`
//	}
//
// Then populate it:
//
//	var cfg ValidatorConfig
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// # Error Handling
//
// The package defines sentinel errors that can be compared with `errors.Is`:
//
//   - `ErrParsingConfig` – failed to parse env vars into struct.
//   - `ErrLoadingEnvFile` – an explicitly named .env file could not be read.
//   - `ErrNilPointer` – nil pointer passed to `Load`/`MustLoad`.
//
// # Testing
//
// Load deliberately performs no per-type caching: every call re-reads the
// process environment, so tests can vary variables per case with t.Setenv
// and observe the change immediately.
//
// # See Also
//
//   - https://github.com/joho/godotenv – .env file loader.
//   - https://github.com/caarlos0/env – environment parser.
package config

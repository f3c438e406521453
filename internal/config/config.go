// Package config resolves runtime settings for the vesselcalc binaries from
// an optional .env file and VESSELCALC_* environment variables. Command-line
// flags override the result.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvEndpoint         = "VESSELCALC_ENDPOINT"
	EnvTimeout          = "VESSELCALC_TIMEOUT"
	EnvCatalog          = "VESSELCALC_CATALOG"
	EnvAddr             = "VESSELCALC_ADDR"
	EnvLogLevel         = "VESSELCALC_LOG_LEVEL"
	EnvValidateContract = "VESSELCALC_VALIDATE_CONTRACT"
)

// Config holds settings shared by the CLI and the service.
type Config struct {
	// Endpoint is the calculation service URL. Empty selects the local
	// engine.
	Endpoint string
	// Timeout bounds each calculation call.
	Timeout time.Duration
	// CatalogPath points at a YAML or JSON catalog. Empty uses the
	// embedded default.
	CatalogPath string
	// Addr is the listen address of vesselcalcd.
	Addr string
	// LogLevel is a zap level name.
	LogLevel string
	// ValidateContract checks payloads against the OpenAPI contract.
	ValidateContract bool
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		Timeout:          15 * time.Second,
		Addr:             ":8080",
		LogLevel:         "info",
		ValidateContract: true,
	}
}

// LookupFunc resolves an environment variable.
type LookupFunc func(key string) (string, bool)

type loader struct {
	envFiles []string
	lookup   LookupFunc
}

// Option configures Load.
type Option func(*loader)

// WithEnvFiles reads the given dotenv files. Missing files are skipped.
// Defaults to ".env".
func WithEnvFiles(paths ...string) Option {
	return func(l *loader) {
		l.envFiles = append([]string(nil), paths...)
	}
}

// WithLookup replaces os.LookupEnv.
func WithLookup(fn LookupFunc) Option {
	return func(l *loader) {
		if fn != nil {
			l.lookup = fn
		}
	}
}

// Load resolves the configuration. Process environment wins over dotenv
// values, matching godotenv.Load.
func Load(options ...Option) (Config, error) {
	l := loader{
		envFiles: []string{".env"},
		lookup:   os.LookupEnv,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&l)
	}

	fileValues := map[string]string{}
	for _, path := range l.envFiles {
		values, err := godotenv.Read(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		for key, value := range values {
			if _, exists := fileValues[key]; !exists {
				fileValues[key] = value
			}
		}
	}

	get := func(key string) (string, bool) {
		if value, ok := l.lookup(key); ok {
			return strings.TrimSpace(value), true
		}
		value, ok := fileValues[key]
		return strings.TrimSpace(value), ok
	}

	cfg := DefaultConfig()
	if value, ok := get(EnvEndpoint); ok {
		cfg.Endpoint = value
	}
	if value, ok := get(EnvCatalog); ok {
		cfg.CatalogPath = value
	}
	if value, ok := get(EnvAddr); ok && value != "" {
		cfg.Addr = value
	}
	if value, ok := get(EnvLogLevel); ok && value != "" {
		cfg.LogLevel = strings.ToLower(value)
	}
	if value, ok := get(EnvTimeout); ok && value != "" {
		timeout, err := time.ParseDuration(value)
		if err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", EnvTimeout, err)
		}
		if timeout < 0 {
			return Config{}, fmt.Errorf("config: %s must not be negative", EnvTimeout)
		}
		cfg.Timeout = timeout
	}
	if value, ok := get(EnvValidateContract); ok && value != "" {
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", EnvValidateContract, err)
		}
		cfg.ValidateContract = enabled
	}
	return cfg, nil
}

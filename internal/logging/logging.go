// Package logging builds the zap loggers used by the vesselcalc binaries.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type settings struct {
	verbose     bool
	development bool
	outputs     []string
}

// Option configures New.
type Option func(*settings)

// WithVerbose forces debug level.
func WithVerbose(verbose bool) Option {
	return func(s *settings) {
		s.verbose = verbose
	}
}

// WithDevelopment switches to the human-readable console encoder.
func WithDevelopment(development bool) Option {
	return func(s *settings) {
		s.development = development
	}
}

// WithOutputPaths overrides where log entries are written. Defaults to
// stderr.
func WithOutputPaths(paths ...string) Option {
	return func(s *settings) {
		if len(paths) > 0 {
			s.outputs = append([]string(nil), paths...)
		}
	}
}

// New builds a logger at level ("debug", "info", "warn", "error").
// An empty level means info.
func New(level string, options ...Option) (*zap.Logger, error) {
	s := settings{outputs: []string{"stderr"}}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&s)
	}

	config := zap.NewProductionConfig()
	if s.development {
		config = zap.NewDevelopmentConfig()
	}

	lvl := zapcore.InfoLevel
	if trimmed := strings.TrimSpace(level); trimmed != "" {
		parsed, err := zapcore.ParseLevel(trimmed)
		if err != nil {
			return nil, fmt.Errorf("logging: %w", err)
		}
		lvl = parsed
	}
	if s.verbose {
		lvl = zapcore.DebugLevel
	}
	config.Level = zap.NewAtomicLevelAt(lvl)
	config.OutputPaths = s.outputs
	config.ErrorOutputPaths = s.outputs

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("logging: build logger: %w", err)
	}
	return logger, nil
}

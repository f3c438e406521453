package logging_test

import (
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/goliatone/go-vesselcalc/internal/logging"
)

func TestNewLevels(t *testing.T) {
	cases := []struct {
		level   string
		verbose bool
		debug   bool
		info    bool
	}{
		{level: "", info: true},
		{level: "debug", debug: true, info: true},
		{level: "warn"},
		{level: "error", verbose: true, debug: true, info: true},
	}
	for _, tc := range cases {
		logger, err := logging.New(tc.level, logging.WithVerbose(tc.verbose))
		if err != nil {
			t.Fatalf("New(%q): %v", tc.level, err)
		}
		core := logger.Core()
		if got := core.Enabled(zapcore.DebugLevel); got != tc.debug {
			t.Fatalf("level %q verbose %v: debug enabled = %v", tc.level, tc.verbose, got)
		}
		if got := core.Enabled(zapcore.InfoLevel); got != tc.info {
			t.Fatalf("level %q verbose %v: info enabled = %v", tc.level, tc.verbose, got)
		}
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := logging.New("chatty"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestNewDevelopment(t *testing.T) {
	logger, err := logging.New("info", logging.WithDevelopment(true), logging.WithOutputPaths("stdout"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("ready")
}

package config_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-vesselcalc/internal/config"
	"github.com/goliatone/go-vesselcalc/pkg/testsupport"
)

func lookupFrom(env map[string]string) config.LookupFunc {
	return func(key string) (string, bool) {
		value, ok := env[key]
		return value, ok
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load(
		config.WithEnvFiles(filepath.Join(t.TempDir(), "missing.env")),
		config.WithLookup(lookupFrom(nil)),
	)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(config.DefaultConfig(), cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadMergesDotenvAndEnvironment(t *testing.T) {
	dir := t.TempDir()
	envFile := testsupport.MustWriteFile(t, dir, ".env", `VESSELCALC_ENDPOINT=http://calc.internal/api/v1/calculate
VESSELCALC_TIMEOUT=3s
VESSELCALC_LOG_LEVEL=DEBUG
VESSELCALC_ADDR=:9000
`)

	cfg, err := config.Load(
		config.WithEnvFiles(envFile),
		config.WithLookup(lookupFrom(map[string]string{
			config.EnvAddr:             ":7000",
			config.EnvValidateContract: "false",
			config.EnvCatalog:          "/etc/vesselcalc/catalog.yaml",
		})),
	)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := config.Config{
		Endpoint:         "http://calc.internal/api/v1/calculate",
		Timeout:          3 * time.Second,
		CatalogPath:      "/etc/vesselcalc/catalog.yaml",
		Addr:             ":7000",
		LogLevel:         "debug",
		ValidateContract: false,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := map[string]map[string]string{
		"timeout":  {config.EnvTimeout: "soon"},
		"negative": {config.EnvTimeout: "-1s"},
		"contract": {config.EnvValidateContract: "maybe"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(config.WithEnvFiles(), config.WithLookup(lookupFrom(env)))
			if err == nil {
				t.Fatalf("expected error for %v", env)
			}
		})
	}
}

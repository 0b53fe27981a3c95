package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/caarlos0/env/v10"
)

// ErrEnvConfig is returned when a BLUSH_* variable holds an invalid value.
var ErrEnvConfig = errors.New("invalid environment configuration")

// envPrefix is shared by every variable the CLI reads.
const envPrefix = "BLUSH_"

// envConfig holds configuration from environment variables.
// Flags take precedence over these values.
type envConfig struct {
	Verbose bool   `env:"VERBOSE"` // BLUSH_VERBOSE: per-chapter progress on stderr
	CSSDir  string `env:"CSS_DIR"` // BLUSH_CSS_DIR: install stylesheet directory
}

// knownEnvVars lists valid BLUSH_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"BLUSH_VERBOSE": true,
	"BLUSH_CSS_DIR": true,
}

// loadEnvConfig reads configuration from environ (KEY=value pairs).
func loadEnvConfig(environ []string) (*envConfig, error) {
	cfg := &envConfig{}
	opts := env.Options{
		Environment: env.ToMap(environ),
		Prefix:      envPrefix,
	}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEnvConfig, err)
	}
	return cfg, nil
}

// warnUnknownEnvVars logs warnings for unrecognized BLUSH_* variables.
// Helps catch typos like BLUSH_VERBOS.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, kv := range environ {
		if !strings.HasPrefix(kv, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(kv, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

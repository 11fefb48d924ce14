package testsupport

import (
	"path/filepath"
	"testing"

	"mxfkit/internal/config"
)

// ConfigOption customizes the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// The catalog lives under <tmp>/data and logs go to <tmp>/logs; both
// directories are created.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Catalog.Path = filepath.Join(base, "data", "essence.db")
	cfg.Logging.Dir = filepath.Join(base, "logs")
	cfg.Output.Color = "never"

	for _, opt := range opts {
		opt(&cfg)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}
	return &cfg
}

// WithOutputFormat overrides the listing format on the test config.
func WithOutputFormat(format string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Output.Format = format
	}
}

// WithLogLevel overrides the log level on the test config.
func WithLogLevel(level string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Logging.Level = level
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Logging.Dir)
}

// LogPath returns the log file written by loggers built from cfg.
func LogPath(cfg *config.Config) string {
	return filepath.Join(cfg.Logging.Dir, "mxfkit.log")
}

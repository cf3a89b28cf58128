package testsupport

import (
	"path/filepath"
	"testing"

	"kino/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with a token and a unique output
// directory per test. It applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.TMDB.APIToken = "test"
	cfgVal.Output.Dir = filepath.Join(base, "out")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithTMDBBaseURL points the config at a fake TMDB server.
func WithTMDBBaseURL(url string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.TMDB.BaseURL = url
	}
}

// WithWorkers overrides both worker pools.
func WithWorkers(n int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Fetch.Workers = n
		b.cfg.Discover.Workers = n
	}
}

package testsupport

import (
	"path/filepath"
	"testing"

	"wphelper/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with a per-test lock path and colour
// disabled, then applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Lock.Path = filepath.Join(base, "run", "wphelper.lock")
	cfgVal.Output.Color = config.ColorNever

	builder := &configBuilder{t: t, baseDir: base, cfg: &cfgVal}
	for _, opt := range opts {
		opt(builder)
	}
	return builder.cfg
}

// WithWpctlBinary points the config at a specific wpctl executable.
func WithWpctlBinary(binary string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Wpctl.Binary = binary
	}
}

// WithoutLock disables the route lock.
func WithoutLock() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Lock.Enabled = false
	}
}

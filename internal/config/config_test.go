package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"wphelper/internal/config"
)

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("XDG_RUNTIME_DIR", filepath.Join(tempHome, "run"))
	chdir(t, tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if want := filepath.Join(tempHome, ".config", "wphelper", "config.toml"); resolved != want {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, want)
	}
	if cfg.Wpctl.Binary != "wpctl" {
		t.Fatalf("unexpected wpctl binary: %q", cfg.Wpctl.Binary)
	}
	if !cfg.Wpctl.Nicknames {
		t.Fatal("expected nicknames enabled by default")
	}
	if !cfg.Lock.Enabled {
		t.Fatal("expected route lock enabled by default")
	}
	if want := filepath.Join(tempHome, "run", "wphelper.lock"); cfg.Lock.Path != want {
		t.Fatalf("unexpected lock path: got %q want %q", cfg.Lock.Path, want)
	}
	if cfg.LockTimeout().Seconds() != 5 {
		t.Fatalf("unexpected lock timeout: %v", cfg.LockTimeout())
	}
	if cfg.Output.Color != config.ColorAuto {
		t.Fatalf("unexpected color mode: %q", cfg.Output.Color)
	}
	if cfg.Logging.Level != "warn" || cfg.Logging.Format != "console" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadExplicitPathOverridesDefaults(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfgVal := config.Default()
	cfgVal.Wpctl.Binary = "  /usr/local/bin/wpctl  "
	cfgVal.Wpctl.Nicknames = false
	cfgVal.Lock.Path = "~/locks/route.lock"
	cfgVal.Output.Color = "NEVER"
	cfgVal.Logging.Level = "Warning"
	cfgVal.Logging.File = "~/logs/wphelper.log"

	path := filepath.Join(tempHome, "custom.toml")
	writeConfig(t, path, cfgVal)

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected explicit path to be used, got %q (exists=%v)", resolved, exists)
	}
	if cfg.Wpctl.Binary != "/usr/local/bin/wpctl" {
		t.Fatalf("expected trimmed binary, got %q", cfg.Wpctl.Binary)
	}
	if cfg.Wpctl.Nicknames {
		t.Fatal("expected nicknames disabled")
	}
	if want := filepath.Join(tempHome, "locks", "route.lock"); cfg.Lock.Path != want {
		t.Fatalf("unexpected lock path: got %q want %q", cfg.Lock.Path, want)
	}
	if cfg.Output.Color != config.ColorNever {
		t.Fatalf("expected color mode to be lower-cased, got %q", cfg.Output.Color)
	}
	if cfg.Logging.Level != "warn" {
		t.Fatalf("expected warning alias to normalize to warn, got %q", cfg.Logging.Level)
	}
	if want := filepath.Join(tempHome, "logs", "wphelper.log"); cfg.Logging.File != want {
		t.Fatalf("unexpected log file: got %q want %q", cfg.Logging.File, want)
	}
}

func TestLoadProjectConfigFallback(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	project := t.TempDir()
	chdir(t, project)

	cfgVal := config.Default()
	cfgVal.Wpctl.Binary = "wpctl-project"
	writeConfig(t, filepath.Join(project, "wphelper.toml"), cfgVal)

	cfg, _, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected project config to be found")
	}
	if cfg.Wpctl.Binary != "wpctl-project" {
		t.Fatalf("unexpected binary: %q", cfg.Wpctl.Binary)
	}
}

func TestLoadMissingExplicitPathFails(t *testing.T) {
	_, _, _, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil {
		t.Fatal("expected error for missing explicit config")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[wpctl]\nbinray = \"wpctl\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected unknown key to be rejected")
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
		want   string
	}{
		{"empty binary", func(c *config.Config) { c.Wpctl.Binary = "" }, "wpctl.binary"},
		{"negative timeout", func(c *config.Config) { c.Lock.TimeoutSeconds = -1 }, "lock.timeout_seconds"},
		{"lock without path", func(c *config.Config) { c.Lock.Path = "" }, "lock.path"},
		{"color", func(c *config.Config) { c.Output.Color = "sometimes" }, "output.color"},
		{"log format", func(c *config.Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"log level", func(c *config.Config) { c.Logging.Level = "loud" }, "logging.level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Lock.Path = "/tmp/wphelper.lock"
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error mentioning %q, got %v", tt.want, err)
			}
		})
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	path := filepath.Join(tempHome, "nested", "config.toml")

	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("sample config failed to load: %v", err)
	}
	if !exists {
		t.Fatal("expected sample config to exist")
	}
	if cfg.Wpctl.Binary != config.Default().Wpctl.Binary {
		t.Fatalf("sample binary differs from default: %q", cfg.Wpctl.Binary)
	}
}

func writeConfig(t *testing.T, path string, cfg config.Config) {
	t.Helper()
	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir %s: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}

package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if c.Wpctl.Binary == "" {
		return errors.New("wpctl.binary must be set")
	}
	if c.Lock.TimeoutSeconds < 0 {
		return errors.New("lock.timeout_seconds must be >= 0")
	}
	if c.Lock.Enabled && c.Lock.Path == "" {
		return errors.New("lock.path must be set when lock.enabled is true")
	}
	switch c.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("output.color: unsupported value %q (want auto, always, or never)", c.Output.Color)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (want console or json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}

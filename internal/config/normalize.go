package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeWpctl()
	if err := c.normalizeLock(); err != nil {
		return err
	}
	c.Output.Color = strings.ToLower(strings.TrimSpace(c.Output.Color))
	if c.Output.Color == "" {
		c.Output.Color = defaultColorMode
	}
	return c.normalizeLogging()
}

func (c *Config) normalizeWpctl() {
	c.Wpctl.Binary = strings.TrimSpace(c.Wpctl.Binary)
	if c.Wpctl.Binary == "" {
		c.Wpctl.Binary = defaultWpctlBinary
	}
}

func (c *Config) normalizeLock() error {
	path := strings.TrimSpace(c.Lock.Path)
	if path == "" {
		c.Lock.Path = defaultLockPath()
		return nil
	}
	expanded, err := expandPath(path)
	if err != nil {
		return fmt.Errorf("lock.path: %w", err)
	}
	c.Lock.Path = expanded
	return nil
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.Level == "warning" {
		c.Logging.Level = "warn"
	}
	if file := strings.TrimSpace(c.Logging.File); file != "" {
		expanded, err := expandPath(file)
		if err != nil {
			return fmt.Errorf("logging.file: %w", err)
		}
		c.Logging.File = expanded
	}
	return nil
}

func defaultLockPath() string {
	if dir, ok := os.LookupEnv("XDG_RUNTIME_DIR"); ok && strings.TrimSpace(dir) != "" {
		return filepath.Join(dir, defaultLockFileName)
	}
	return filepath.Join(os.TempDir(), defaultLockFileName)
}

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"wphelper/internal/config"
	"wphelper/internal/logging"
	"wphelper/internal/routelock"
	"wphelper/internal/wpctl"
)

type globalFlags struct {
	configPath string
	color      string
	json       bool
	verbose    bool
}

type commandContext struct {
	flags *globalFlags

	configOnce sync.Once
	config     *config.Config
	configPath string
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(flags *globalFlags) *commandContext {
	return &commandContext{flags: flags}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, path, _, err := config.Load(strings.TrimSpace(c.flags.configPath))
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = path
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger, c.loggerErr = logging.NewFromConfig(cfg, c.flags.verbose)
	})
	return c.logger, c.loggerErr
}

// tagContext attaches the command path and a fresh correlation id so every
// log line from one invocation can be grouped.
func (c *commandContext) tagContext(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithCommand(ctx, cmd.CommandPath())
	return logging.WithCorrelationID(ctx, "")
}

func (c *commandContext) JSONMode() bool {
	return c.flags.json
}

func (c *commandContext) client() (*wpctl.Client, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}
	return wpctl.New(cfg.Wpctl.Binary,
		wpctl.WithNicknames(cfg.Wpctl.Nicknames),
		wpctl.WithLogger(logger),
	)
}

func (c *commandContext) snapshot(ctx context.Context) (*wpctl.Client, *wpctl.Snapshot, error) {
	client, err := c.client()
	if err != nil {
		return nil, nil, err
	}
	snapshot, err := client.Status(ctx)
	if err != nil {
		return nil, nil, err
	}
	return client, snapshot, nil
}

// withRouteLock runs fn while holding the route lock, when enabled.
func (c *commandContext) withRouteLock(ctx context.Context, fn func() error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	if !cfg.Lock.Enabled {
		return fn()
	}
	lock, err := routelock.Acquire(ctx, cfg.Lock.Path, cfg.LockTimeout())
	if err != nil {
		return err
	}
	logger, _ := c.ensureLogger()
	logging.WithContext(ctx, logger).Debug("route lock acquired", logging.String("path", lock.Path()))
	defer func() {
		if err := lock.Release(); err != nil {
			logging.WithContext(ctx, logger).Warn("failed to release route lock", logging.Error(err))
		}
	}()
	return fn()
}

// colorEnabled reports whether output written to w should carry ANSI colour.
func (c *commandContext) colorEnabled(w io.Writer) (bool, error) {
	mode := strings.ToLower(strings.TrimSpace(c.flags.color))
	if mode == "" {
		if cfg, err := c.ensureConfig(); err == nil {
			mode = cfg.Output.Color
		}
	}
	switch mode {
	case config.ColorAlways:
		return true, nil
	case config.ColorNever:
		return false, nil
	case config.ColorAuto, "":
		return isTerminal(w), nil
	default:
		return false, fmt.Errorf("--color: unsupported value %q (want auto, always, or never)", mode)
	}
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}

package wpctl

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"wphelper/internal/logging"
)

// Result captures the output of one wpctl invocation.
type Result struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// Executor abstracts command execution for testability. Run returns a non-nil
// error only when the command could not be run or exited unsuccessfully; the
// Result is populated in both cases.
type Executor interface {
	Run(ctx context.Context, binary string, args []string) (Result, error)
}

// Option configures the client.
type Option func(*Client)

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(exec Executor) Option {
	return func(c *Client) {
		if exec != nil {
			c.exec = exec
		}
	}
}

// WithLogger attaches a logger for command diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithNicknames controls whether the status report uses device nicknames (-k).
func WithNicknames(enabled bool) Option {
	return func(c *Client) {
		c.nicknames = enabled
	}
}

// Client wraps wpctl CLI interactions.
type Client struct {
	binary    string
	nicknames bool
	exec      Executor
	logger    *slog.Logger
}

// New constructs a wpctl client.
func New(binary string, opts ...Option) (*Client, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		return nil, errors.New("wpctl binary required")
	}
	client := &Client{
		binary:    binary,
		nicknames: true,
		exec:      commandExecutor{},
		logger:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(client)
	}
	client.logger = logging.NewComponentLogger(client.logger, "wpctl")
	return client, nil
}

// StatusArgs returns the arguments passed to wpctl for the status report.
func (c *Client) StatusArgs() []string {
	args := []string{"status"}
	if c.nicknames {
		args = append(args, "-k")
	}
	return args
}

// Report runs the status command and returns its stdout. A non-zero exit is
// logged and the captured stdout is still returned.
func (c *Client) Report(ctx context.Context) (string, error) {
	logger := logging.WithContext(ctx, c.logger)
	args := c.StatusArgs()
	result, err := c.exec.Run(ctx, c.binary, args)
	if err != nil {
		if !isExitError(err) {
			return "", wrap(ErrExternalTool, "status", err)
		}
		logger.Warn("wpctl status exited with an error",
			logging.Int("exit_code", result.ExitCode),
			logging.String("stderr", strings.TrimSpace(string(result.Stderr))),
			logging.Error(err),
		)
	}
	logger.Debug("wpctl status completed",
		logging.String("args", strings.Join(args, " ")),
		logging.Int("stdout_bytes", len(result.Stdout)),
	)
	return string(result.Stdout), nil
}

// Status runs the status command and parses it into a Snapshot.
func (c *Client) Status(ctx context.Context) (*Snapshot, error) {
	report, err := c.Report(ctx)
	if err != nil {
		return nil, err
	}
	snapshot := ParseStatus(report)
	logging.WithContext(ctx, c.logger).Debug("parsed wpctl status",
		logging.Int("categories", snapshot.Len()),
		logging.String("names", strings.Join(snapshot.Categories(), ",")),
	)
	return snapshot, nil
}

// SetDefault issues `wpctl set-default <id>`. The outcome of the command is
// logged but not returned; only an empty id is rejected.
func (c *Client) SetDefault(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return errors.New("wpctl set-default: object id required")
	}
	logger := logging.WithContext(ctx, c.logger)
	result, err := c.exec.Run(ctx, c.binary, []string{"set-default", id})
	if err != nil {
		logger.Warn("wpctl set-default failed",
			logging.String("id", id),
			logging.Int("exit_code", result.ExitCode),
			logging.String("stderr", strings.TrimSpace(string(result.Stderr))),
			logging.Error(err),
		)
		return nil
	}
	logger.Debug("wpctl set-default issued", logging.String("id", id))
	return nil
}

// SetDefaultMatching resolves query against objs and sets the match as the
// default. It reports false without running any command when nothing matches.
func (c *Client) SetDefaultMatching(ctx context.Context, query string, objs []Object) (Object, bool, error) {
	obj, ok := Resolve(query, objs)
	if !ok {
		logging.WithContext(ctx, c.logger).Debug("no object matched query",
			logging.String("query", query),
			logging.Int("candidates", len(objs)),
		)
		return Object{}, false, nil
	}
	if err := c.SetDefault(ctx, obj.ID); err != nil {
		return Object{}, false, err
	}
	return obj, true, nil
}

type commandExecutor struct{}

func (commandExecutor) Run(ctx context.Context, binary string, args []string) (Result, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, binary, args...) //nolint:gosec
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	result := Result{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		return result, &ExitError{Code: result.ExitCode}
	}
	return result, err
}

// ExitError reports that wpctl ran but exited with a non-zero status.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

func isExitError(err error) bool {
	var exitErr *ExitError
	return errors.As(err, &exitErr)
}

package git

import (
	"context"
	"log/slog"
	"strings"

	"github.com/jmgilman/gitc/exec"
)

// DefaultBinary is the git executable used when none is configured.
const DefaultBinary = "git"

// Client runs git subcommands through an exec.Executor.
type Client struct {
	command exec.Executor
	binary  string
	logger  *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithExecutor sets the executor used to run git. Tests pass a mock here.
func WithExecutor(e exec.Executor) Option {
	return func(c *Client) {
		c.command = e
	}
}

// WithBinary sets the git executable name or path.
func WithBinary(binary string) Option {
	return func(c *Client) {
		if binary != "" {
			c.binary = binary
		}
	}
}

// WithLogger sets the logger used for debug output of each invocation.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a Client. Without options it runs "git" from PATH with the
// parent's environment and the process's own stdio attached.
func New(opts ...Option) *Client {
	c := &Client{
		binary: DefaultBinary,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.command == nil {
		c.command = exec.New(exec.WithInheritEnv(), exec.WithAttach())
	}
	return c
}

// Binary returns the git executable the client runs.
func (c *Client) Binary() string {
	return c.binary
}

// run executes one git subcommand in dir (the process working directory
// when dir is empty).
func (c *Client) run(ctx context.Context, dir string, args ...string) error {
	c.logger.Debug("running git", "args", strings.Join(args, " "), "dir", dir)

	git := exec.NewWrapper(c.command, c.binary)
	runner := git.WithContext(ctx)
	if dir != "" {
		runner = runner.WithDir(dir)
	}

	if _, err := runner.Run(args...); err != nil {
		return mapExecError(ctx, err, c.binary, args)
	}
	return nil
}

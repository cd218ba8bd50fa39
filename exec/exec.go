package exec

import (
	"context"
	"io"
)

//go:generate go run github.com/matryer/moq@latest -out mocks/executor.go -pkg mocks . Executor

// Executor is the main interface for executing commands.
// It provides a fluent API for configuring and running commands.
type Executor interface {
	// WithEnv sets environment variables for the next run.
	// These override any global environment variables.
	WithEnv(env map[string]string) Executor

	// WithDir sets the working directory for the next run.
	WithDir(dir string) Executor

	// WithContext sets the context for the command.
	// The child process is killed if the context is canceled.
	WithContext(ctx context.Context) Executor

	// WithInheritEnv inherits environment variables from the parent process.
	WithInheritEnv() Executor

	// WithStdin sets the reader connected to the child's standard input.
	WithStdin(r io.Reader) Executor

	// WithStdout sets a custom writer for stdout.
	WithStdout(w io.Writer) Executor

	// WithStderr sets a custom writer for stderr.
	WithStderr(w io.Writer) Executor

	// WithPassthrough streams output to the stdout/stderr writers while also
	// capturing it in the Result.
	WithPassthrough() Executor

	// WithAttach connects the child directly to the stdin/stdout/stderr
	// streams without capturing anything. When those streams are terminals
	// the child sees a terminal, so interactive prompts and progress meters
	// keep working. Result.Stdout and Result.Stderr are empty in this mode.
	WithAttach() Executor

	// Run executes the command with the given arguments.
	// It returns a Result containing the captured output and exit code.
	Run(args ...string) (*Result, error)

	// Clone creates a copy of the executor with the same configuration.
	Clone() Executor
}

// Result represents the result of a command execution.
type Result struct {
	// Stdout is the captured standard output
	Stdout string

	// Stderr is the captured standard error
	Stderr string

	// Combined is the combined stdout and stderr output
	Combined string

	// ExitCode is the exit code returned by the command
	ExitCode int
}

// Option is a function that configures a Command with global settings.
// Global settings apply to every run; local settings set through the fluent
// methods apply to the next run only and override them.
type Option func(*Command)

// WithEnv returns an Option that sets global environment variables.
func WithEnv(env map[string]string) Option {
	return func(c *Command) {
		for k, v := range env {
			c.config.globalEnv[k] = v
		}
	}
}

// WithDir returns an Option that sets the global working directory.
func WithDir(dir string) Option {
	return func(c *Command) {
		c.config.globalDir = dir
	}
}

// WithContext returns an Option that sets the default context.
func WithContext(ctx context.Context) Option {
	return func(c *Command) {
		c.baseCtx = ctx
	}
}

// WithInheritEnv returns an Option that globally enables environment inheritance.
func WithInheritEnv() Option {
	return func(c *Command) {
		c.config.globalInheritEnv = true
	}
}

// WithStdin returns an Option that sets the global stdin reader.
func WithStdin(r io.Reader) Option {
	return func(c *Command) {
		c.stdin = r
	}
}

// WithStdout returns an Option that sets the global stdout writer.
func WithStdout(w io.Writer) Option {
	return func(c *Command) {
		c.stdout = w
	}
}

// WithStderr returns an Option that sets the global stderr writer.
func WithStderr(w io.Writer) Option {
	return func(c *Command) {
		c.stderr = w
	}
}

// WithPassthrough returns an Option that globally enables output passthrough.
func WithPassthrough() Option {
	return func(c *Command) {
		c.config.globalMode = modePassthrough
	}
}

// WithAttach returns an Option that globally attaches the child to the
// configured streams.
func WithAttach() Option {
	return func(c *Command) {
		c.config.globalMode = modeAttach
	}
}

package exec

import (
	"context"
	"io"
)

// CommandWrapper wraps an Executor to provide a command-specific interface.
// It prepends a command name to all Run() calls, which suits tools that are
// invoked repeatedly with different subcommands (e.g., git).
// CommandWrapper implements the Executor interface itself.
type CommandWrapper struct {
	executor Executor
	cmd      string
}

// NewWrapper creates a new CommandWrapper that prepends the given command to
// all Run() calls. The executor may be any Executor, including mocks.
func NewWrapper(executor Executor, cmd string) *CommandWrapper {
	return &CommandWrapper{
		executor: executor,
		cmd:      cmd,
	}
}

// Name returns the wrapped command name.
func (w *CommandWrapper) Name() string {
	return w.cmd
}

func (w *CommandWrapper) WithEnv(env map[string]string) Executor {
	w.executor = w.executor.WithEnv(env)
	return w
}

func (w *CommandWrapper) WithDir(dir string) Executor {
	w.executor = w.executor.WithDir(dir)
	return w
}

func (w *CommandWrapper) WithContext(ctx context.Context) Executor {
	w.executor = w.executor.WithContext(ctx)
	return w
}

func (w *CommandWrapper) WithInheritEnv() Executor {
	w.executor = w.executor.WithInheritEnv()
	return w
}

func (w *CommandWrapper) WithStdin(r io.Reader) Executor {
	w.executor = w.executor.WithStdin(r)
	return w
}

func (w *CommandWrapper) WithStdout(w2 io.Writer) Executor {
	w.executor = w.executor.WithStdout(w2)
	return w
}

func (w *CommandWrapper) WithStderr(w2 io.Writer) Executor {
	w.executor = w.executor.WithStderr(w2)
	return w
}

func (w *CommandWrapper) WithPassthrough() Executor {
	w.executor = w.executor.WithPassthrough()
	return w
}

func (w *CommandWrapper) WithAttach() Executor {
	w.executor = w.executor.WithAttach()
	return w
}

// Run executes the wrapped command with the given arguments.
func (w *CommandWrapper) Run(args ...string) (*Result, error) {
	fullArgs := append([]string{w.cmd}, args...)
	return w.executor.Run(fullArgs...)
}

// Clone creates a copy of the wrapper with a cloned executor.
func (w *CommandWrapper) Clone() Executor {
	return &CommandWrapper{
		executor: w.executor.Clone(),
		cmd:      w.cmd,
	}
}

package exec

import (
	"context"
	"io"
	"os"
	osexec "os/exec"
)

// Command is the concrete implementation of the Executor interface.
type Command struct {
	config  *config
	baseCtx context.Context
	ctx     context.Context
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
}

// New creates a new Command with the given options.
// Options set global defaults that can be overridden by local settings.
func New(opts ...Option) *Command {
	cmd := &Command{
		config:  newConfig(),
		baseCtx: context.Background(),
		stdin:   os.Stdin,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}

	for _, opt := range opts {
		opt(cmd)
	}

	return cmd
}

// WithEnv sets environment variables for the next run.
func (c *Command) WithEnv(env map[string]string) Executor {
	for k, v := range env {
		c.config.localEnv[k] = v
	}
	return c
}

// WithDir sets the working directory for the next run.
func (c *Command) WithDir(dir string) Executor {
	c.config.localDir = dir
	return c
}

// WithContext sets the context for the next run.
func (c *Command) WithContext(ctx context.Context) Executor {
	c.ctx = ctx
	return c
}

// WithInheritEnv enables environment inheritance for the next run.
func (c *Command) WithInheritEnv() Executor {
	val := true
	c.config.localInheritEnv = &val
	return c
}

// WithStdin sets the stdin reader.
func (c *Command) WithStdin(r io.Reader) Executor {
	c.stdin = r
	return c
}

// WithStdout sets the stdout writer.
func (c *Command) WithStdout(w io.Writer) Executor {
	c.stdout = w
	return c
}

// WithStderr sets the stderr writer.
func (c *Command) WithStderr(w io.Writer) Executor {
	c.stderr = w
	return c
}

// WithPassthrough enables output passthrough for the next run.
func (c *Command) WithPassthrough() Executor {
	val := modePassthrough
	c.config.localMode = &val
	return c
}

// WithAttach attaches the child to the configured streams for the next run.
func (c *Command) WithAttach() Executor {
	val := modeAttach
	c.config.localMode = &val
	return c
}

// Run executes the command with the given arguments.
func (c *Command) Run(args ...string) (*Result, error) {
	defer c.reset()

	if len(args) == 0 {
		return nil, &ExecError{
			Command:  args,
			ExitCode: -1,
			Err:      osexec.ErrNotFound,
		}
	}

	ctx := c.ctx
	if ctx == nil {
		ctx = c.baseCtx
	}

	cmd := osexec.CommandContext(ctx, args[0], args[1:]...)

	if dir := c.config.effectiveDir(); dir != "" {
		cmd.Dir = dir
	}

	// A nil cmd.Env already means "inherit"; it only needs to be built when
	// extra variables are set.
	env := c.config.effectiveEnv()
	if len(env) > 0 {
		if c.config.effectiveInheritEnv() {
			cmd.Env = os.Environ()
		}
		for k, v := range env {
			cmd.Env = append(cmd.Env, k+"="+v)
		}
	}

	var stdoutCapture, stderrCapture *outputCapture
	combined := newCombinedWriter()

	switch c.config.effectiveMode() {
	case modeAttach:
		cmd.Stdin = c.stdin
		cmd.Stdout = c.stdout
		cmd.Stderr = c.stderr
	case modePassthrough:
		stdoutCapture = newOutputCapture(c.stdout)
		stderrCapture = newOutputCapture(c.stderr)
	default:
		stdoutCapture = newOutputCapture(nil)
		stderrCapture = newOutputCapture(nil)
	}

	if stdoutCapture != nil {
		cmd.Stdout = newMultiWriter(stdoutCapture.Writer(), combined)
		cmd.Stderr = newMultiWriter(stderrCapture.Writer(), combined)
	}

	err := cmd.Run()

	result := &Result{
		Combined: combined.String(),
		ExitCode: cmd.ProcessState.ExitCode(),
	}
	if stdoutCapture != nil {
		result.Stdout = stdoutCapture.String()
		result.Stderr = stderrCapture.String()
	}

	if err != nil {
		return result, &ExecError{
			Command:  args,
			Dir:      cmd.Dir,
			ExitCode: result.ExitCode,
			Stdout:   result.Stdout,
			Stderr:   result.Stderr,
			Err:      err,
		}
	}

	return result, nil
}

// Clone creates a copy of the executor with the same configuration.
func (c *Command) Clone() Executor {
	return &Command{
		config:  c.config.clone(),
		baseCtx: c.baseCtx,
		ctx:     c.ctx,
		stdin:   c.stdin,
		stdout:  c.stdout,
		stderr:  c.stderr,
	}
}

// reset clears local configuration after a run.
func (c *Command) reset() {
	c.config.resetLocal()
	c.ctx = nil
}

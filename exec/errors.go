package exec

import (
	"errors"
	"fmt"
	osexec "os/exec"
)

// ExecError represents an error that occurred during command execution.
// It includes the exit code, the command that was run, and any captured output.
type ExecError struct {
	// Command is the full command that was executed (including arguments)
	Command []string

	// Dir is the working directory the command ran in, empty for the
	// parent's working directory
	Dir string

	// ExitCode is the exit code returned by the command, -1 if it never ran
	// or was killed by a signal
	ExitCode int

	// Stdout is the captured standard output
	Stdout string

	// Stderr is the captured standard error
	Stderr string

	// Err is the underlying error from the execution
	Err error
}

// Error implements the error interface.
func (e *ExecError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("command %v failed with exit code %d: %v", e.Command, e.ExitCode, e.Err)
	}
	return fmt.Sprintf("command %v failed with exit code %d", e.Command, e.ExitCode)
}

// Unwrap returns the underlying error.
func (e *ExecError) Unwrap() error {
	return e.Err
}

// ExitStatus returns the child's exit code.
func (e *ExecError) ExitStatus() int {
	return e.ExitCode
}

// NotFound reports whether the command could not be started because the
// executable does not exist.
func (e *ExecError) NotFound() bool {
	return errors.Is(e.Err, osexec.ErrNotFound)
}

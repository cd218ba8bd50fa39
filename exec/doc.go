// Package exec provides a testable interface for executing local commands.
//
// The package wraps os/exec behind the Executor interface. Production code
// uses the concrete *Command; tests substitute a mock Executor (see the
// mocks subpackage) so that no real process is started.
//
// # Basic Usage
//
//	cmd := exec.New()
//	result, err := cmd.Run("git", "--version")
//	if err != nil {
//		return err
//	}
//	fmt.Println(result.Stdout)
//
// # Configuration
//
// Global configuration is set at creation time; local configuration is set
// through the fluent methods and applies to the next Run only:
//
//	cmd := exec.New(exec.WithInheritEnv(), exec.WithAttach())
//	_, err := cmd.WithDir("/src/repo").WithContext(ctx).Run("git", "fetch", "--all")
//
// # Command Wrappers
//
// A CommandWrapper prepends a fixed command name to every Run:
//
//	git := exec.NewWrapper(exec.New(), "git")
//	_, err := git.WithDir("/src/repo").Run("status")
//
// # Output Modes
//
// By default output is captured into Result.Stdout, Result.Stderr and
// Result.Combined. WithPassthrough additionally copies it to the configured
// writers. WithAttach hands the configured stdin/stdout/stderr to the child
// unchanged and captures nothing, which keeps terminal detection, progress
// meters and credential prompts of the child working.
//
// # Error Handling
//
// A failed run returns *ExecError carrying the command, working directory,
// exit code and any captured output. ExecError.ExitStatus exposes the exit
// code to callers that only know about the ExitStatus() int method.
package exec

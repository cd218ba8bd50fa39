// Package git is a thin, typed wrapper around the git command-line tool.
//
// gitc never implements version control itself. Every operation here builds
// the argument list for one git subcommand and runs it through an
// exec.Executor, so the real git binary does all clone, fetch, checkout and
// transport work. Tests substitute a mock executor and assert on the
// argument lists instead of running git.
//
// # Usage
//
//	client := git.New(git.WithLogger(logger))
//	if err := client.MirrorClone(ctx, "https://github.com/org/repo.git", cachePath); err != nil {
//	    return err
//	}
//	err := client.Clone(ctx, git.CloneOptions{
//	    URL:       "https://github.com/org/repo.git",
//	    Reference: cachePath,
//	    Directory: "repo",
//	})
//
// By default the child process inherits the environment and is attached to
// the terminal, so git's progress output and credential prompts reach the
// user directly.
//
// # Errors
//
// A failed invocation is returned as an errors.PlatformError:
//
//   - CodeNotFound when the git executable does not exist
//   - CodeTimeout when the context was canceled or its deadline passed
//   - CodeExecutionFailed otherwise, wrapping *exec.ExecError so the
//     child's exit status stays available to errors.ExitCode
package git

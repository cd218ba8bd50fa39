package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jmgilman/gitc/clone"
	"github.com/jmgilman/gitc/config"
	"github.com/jmgilman/gitc/errors"
	"github.com/jmgilman/gitc/exec"
	"github.com/jmgilman/gitc/git"
	"github.com/jmgilman/gitc/git/cache"
)

const usageLine = "gitc [git clone options] [--] <repository> [directory]"

const longHelp = `gitc clones a git repository through a mirror cache kept in
$XDG_CACHE_HOME/gitc (default ~/.cache/gitc). The first clone of a
repository creates the mirror; later clones refresh it and borrow its
objects, then dissociate so the new clone stands alone.

The repository argument may name a ref to check out:

  <repo>/pull/<n>      fetch pull request <n> into pr/<n> and check it out
  <repo>/tree/<branch> check out <branch>
  <repo>##<hash>       reset to <hash>
  <repo>#pr#<n>        same as <repo>/pull/<n>
  <repo>#<branch>      check out <branch>

Options other than -h, --help and --version are passed to git clone.

Environment:
  XDG_CACHE_HOME   cache base directory (default ~/.cache)
  GITC_LOG_LEVEL   debug, info, warn or error (default warn)
  GITC_GIT         git executable (default git)`

// app holds the process environment the command runs against.
type app struct {
	stdout  io.Writer
	stderr  io.Writer
	getenv  func(string) string
	home    func() (string, error)
	workDir string

	// executor overrides how git is run. Nil attaches git to the
	// process's own stdio.
	executor exec.Executor
}

// execute runs gitc with args, not including the program name.
func (a *app) execute(ctx context.Context, args []string) error {
	root := a.newRootCmd()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func (a *app) newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:                   usageLine,
		Short:                 "Clone git repositories through a local mirror cache",
		Long:                  longHelp,
		Version:               version,
		Args:                  cobra.ArbitraryArgs,
		DisableFlagParsing:    true,
		DisableFlagsInUseLine: true,
		SilenceErrors:         true,
		SilenceUsage:          true,
		RunE:                  a.runClone,
		ValidArgsFunction:     a.completeArgs,
	}
	root.Flags().Bool("version", false, "print the gitc version")
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	root.AddCommand(a.newCompletionCmd())
	return root
}

func (a *app) runClone(cmd *cobra.Command, args []string) error {
	inv, err := splitArgs(args)
	if err != nil {
		return err
	}

	switch {
	case inv.help:
		return cmd.Help()
	case inv.version:
		fmt.Fprintf(a.stdout, "gitc version %s\n", version)
		return nil
	case len(inv.positional) == 0:
		return errors.New(errors.CodeInvalidInput, "no repository specified")
	case len(inv.positional) > 2:
		return errors.Newf(errors.CodeInvalidInput, "too many arguments: %q", inv.positional[2:])
	}

	cfg, err := config.Load(a.getenv, a.home, a.workDir)
	if err != nil {
		return err
	}
	logger := newLogger(a.stderr, cfg.LogLevel)

	client := a.newGit(cfg, logger)
	mirrors, err := cache.New(cfg.CacheRoot, client, cache.WithLogger(logger))
	if err != nil {
		return err
	}

	req := clone.Request{
		Spec: inv.positional[0],
		Args: inv.passthrough,
	}
	if len(inv.positional) == 2 {
		req.Directory = inv.positional[1]
	}

	cloner := clone.New(client, mirrors, clone.WithWorkDir(cfg.WorkDir), clone.WithLogger(logger))
	res, err := cloner.Clone(cmd.Context(), req)
	if err != nil {
		return err
	}

	logger.Info("clone complete", "path", res.Path, "cache", res.CachePath)
	return nil
}

func (a *app) newGit(cfg *config.Config, logger *slog.Logger) *git.Client {
	opts := []git.Option{git.WithBinary(cfg.GitBinary), git.WithLogger(logger)}
	if a.executor != nil {
		opts = append(opts, git.WithExecutor(a.executor))
	}
	return git.New(opts...)
}

// newLogger returns gitc's diagnostic logger. git's own output is not
// routed through it.
func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// describe renders err for the one-line failure message.
func describe(err error) string {
	var pe errors.PlatformError
	if !errors.As(err, &pe) {
		return err.Error()
	}

	msg := pe.Message()
	if step, ok := errors.ContextValue(err, "step"); ok && step != clone.StepParse {
		msg = fmt.Sprintf("%v failed: %s", step, msg)
	}

	var execErr *exec.ExecError
	if errors.As(err, &execErr) && execErr.ExitCode > 0 {
		msg = fmt.Sprintf("%s (exit status %d)", msg, execErr.ExitCode)
	}
	return msg
}

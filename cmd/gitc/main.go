// Command gitc clones git repositories through a local mirror cache.
//
// Usage:
//
//	gitc [git clone options] [--] <repository> [directory]
//
// The repository may carry a ref to check out after cloning:
//
//	https://github.com/org/repo/pull/42     pull request 42
//	https://github.com/org/repo/tree/dev    branch dev
//	https://github.com/org/repo##1a2b3c     commit 1a2b3c
//	https://github.com/org/repo#pr#42       pull request 42
//	https://github.com/org/repo#dev         branch dev
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmgilman/gitc/errors"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	wd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "gitc: %v\n", err)
		return 1
	}

	a := &app{
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		getenv:  os.Getenv,
		home:    os.UserHomeDir,
		workDir: wd,
	}

	err = a.execute(ctx, os.Args[1:])
	report(os.Stderr, err)
	return errors.ExitCode(err)
}

// report prints err as a single line, followed by the usage line for usage
// errors.
func report(w io.Writer, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(w, "gitc: %s\n", describe(err))
	if errors.GetCode(err) == errors.CodeInvalidInput {
		fmt.Fprintf(w, "usage: %s\n", usageLine)
	}
}

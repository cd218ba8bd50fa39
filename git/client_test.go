package git

import (
	"context"
	"io"
	"testing"

	platformerrors "github.com/jmgilman/gitc/errors"
	"github.com/jmgilman/gitc/exec"
	"github.com/jmgilman/gitc/exec/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// invocation records one Run on the mock executor together with the
// working directory that was set for it.
type invocation struct {
	Dir  string
	Args []string
}

// newRecordingExecutor returns a mock executor that records every run.
// runErr, when non-nil, decides the error returned for a given invocation.
func newRecordingExecutor(runErr func(inv invocation) error) (*mocks.ExecutorMock, *[]invocation) {
	var (
		mockExec *mocks.ExecutorMock
		calls    []invocation
		dir      string
	)

	mockExec = &mocks.ExecutorMock{
		WithEnvFunc:     func(env map[string]string) exec.Executor { return mockExec },
		WithDirFunc:     func(d string) exec.Executor { dir = d; return mockExec },
		WithContextFunc: func(ctx context.Context) exec.Executor { return mockExec },
		WithInheritEnvFunc: func() exec.Executor {
			return mockExec
		},
		WithStdinFunc:       func(r io.Reader) exec.Executor { return mockExec },
		WithStdoutFunc:      func(w io.Writer) exec.Executor { return mockExec },
		WithStderrFunc:      func(w io.Writer) exec.Executor { return mockExec },
		WithPassthroughFunc: func() exec.Executor { return mockExec },
		WithAttachFunc:      func() exec.Executor { return mockExec },
		CloneFunc:           func() exec.Executor { return mockExec },
		RunFunc: func(args ...string) (*exec.Result, error) {
			inv := invocation{Dir: dir, Args: append([]string(nil), args...)}
			dir = ""
			calls = append(calls, inv)
			if runErr != nil {
				if err := runErr(inv); err != nil {
					return &exec.Result{ExitCode: 1}, err
				}
			}
			return &exec.Result{}, nil
		},
	}

	return mockExec, &calls
}

func TestClient_Commands(t *testing.T) {
	tests := []struct {
		name     string
		call     func(c *Client) error
		wantDir  string
		wantArgs []string
	}{
		{
			name: "mirror clone",
			call: func(c *Client) error {
				return c.MirrorClone(context.Background(), "https://example.com/org/repo.git", "/cache/entry")
			},
			wantArgs: []string{"git", "clone", "--mirror", "--", "https://example.com/org/repo.git", "/cache/entry"},
		},
		{
			name:     "fetch all",
			call:     func(c *Client) error { return c.FetchAll(context.Background(), "/cache/entry") },
			wantDir:  "/cache/entry",
			wantArgs: []string{"git", "fetch", "--all"},
		},
		{
			name: "fetch pull request",
			call: func(c *Client) error {
				return c.Fetch(context.Background(), "/work/repo", "origin", PullRequestRefspec(42))
			},
			wantDir:  "/work/repo",
			wantArgs: []string{"git", "fetch", "origin", "pull/42/head:pr/42"},
		},
		{
			name:     "checkout",
			call:     func(c *Client) error { return c.Checkout(context.Background(), "/work/repo", "feature-x") },
			wantDir:  "/work/repo",
			wantArgs: []string{"git", "checkout", "feature-x", "--"},
		},
		{
			name:     "reset hard",
			call:     func(c *Client) error { return c.ResetHard(context.Background(), "/work/repo", "deadbeef") },
			wantDir:  "/work/repo",
			wantArgs: []string{"git", "reset", "--hard", "deadbeef"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockExec, calls := newRecordingExecutor(nil)
			client := New(WithExecutor(mockExec))

			require.NoError(t, tt.call(client))
			require.Len(t, *calls, 1)
			assert.Equal(t, tt.wantDir, (*calls)[0].Dir)
			assert.Equal(t, tt.wantArgs, (*calls)[0].Args)
		})
	}
}

func TestCloneArgs(t *testing.T) {
	tests := []struct {
		name string
		opts CloneOptions
		want []string
	}{
		{
			name: "reference and dissociate",
			opts: CloneOptions{
				Args:       []string{"--depth", "1", "-q"},
				Reference:  "/cache/entry",
				Dissociate: true,
				URL:        "https://example.com/org/repo.git",
				Directory:  "repo",
			},
			want: []string{
				"clone", "--depth", "1", "-q",
				"--reference-if-able", "/cache/entry", "--dissociate",
				"--", "https://example.com/org/repo.git", "repo",
			},
		},
		{
			name: "plain clone",
			opts: CloneOptions{URL: "host.xz:foo.git"},
			want: []string{"clone", "--", "host.xz:foo.git"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cloneArgs(tt.opts))
		})
	}
}

func TestClient_CloneRunsInWorkDir(t *testing.T) {
	mockExec, calls := newRecordingExecutor(nil)
	client := New(WithExecutor(mockExec), WithBinary("/usr/local/bin/git"))

	err := client.Clone(context.Background(), CloneOptions{URL: "u.git", Directory: "d", WorkDir: "/work"})
	require.NoError(t, err)
	require.Len(t, *calls, 1)
	assert.Equal(t, "/work", (*calls)[0].Dir)
	assert.Equal(t, "/usr/local/bin/git", (*calls)[0].Args[0])
	assert.Equal(t, "/usr/local/bin/git", client.Binary())
}

func TestClient_ErrorMapping(t *testing.T) {
	t.Run("execution failure keeps exit status", func(t *testing.T) {
		mockExec, _ := newRecordingExecutor(func(inv invocation) error {
			return &exec.ExecError{Command: inv.Args, ExitCode: 128, Dir: "/work/repo"}
		})
		client := New(WithExecutor(mockExec))

		err := client.Checkout(context.Background(), "/work/repo", "nope")
		require.Error(t, err)
		assert.Equal(t, platformerrors.CodeExecutionFailed, platformerrors.GetCode(err))
		assert.Equal(t, 128, platformerrors.ExitCode(err))

		code, ok := platformerrors.ContextValue(err, "exit_code")
		require.True(t, ok)
		assert.Equal(t, 128, code)
		assert.Contains(t, err.Error(), "git checkout nope -- failed")
	})

	t.Run("missing executable", func(t *testing.T) {
		cmd := exec.New()
		client := New(WithExecutor(cmd), WithBinary("gitc-no-such-git"))

		err := client.FetchAll(context.Background(), t.TempDir())
		require.Error(t, err)
		assert.Equal(t, platformerrors.CodeNotFound, platformerrors.GetCode(err))
	})

	t.Run("canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		mockExec, _ := newRecordingExecutor(func(inv invocation) error {
			return &exec.ExecError{Command: inv.Args, ExitCode: -1, Err: context.Canceled}
		})
		client := New(WithExecutor(mockExec))

		err := client.MirrorClone(ctx, "u.git", "/cache/entry")
		require.Error(t, err)
		assert.Equal(t, platformerrors.CodeTimeout, platformerrors.GetCode(err))
		assert.True(t, platformerrors.IsRetryable(err))
	})
}

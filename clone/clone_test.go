package clone

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/gitc/errors"
	"github.com/jmgilman/gitc/git"
)

const (
	testRepo  = "https://example.com/org/repo.git"
	testCache = "/cache/gitc/https:%%%%example.com%%org%%repo.git"
)

// fakeGit records every call as a single line: "<dir>: <command> <args>".
// fail maps a command name to the error it returns.
type fakeGit struct {
	calls []string
	fail  map[string]error
}

func (f *fakeGit) record(dir, command string, args ...string) error {
	f.calls = append(f.calls, strings.TrimSpace(fmt.Sprintf("%s: %s %s", dir, command, strings.Join(args, " "))))
	return f.fail[command]
}

func (f *fakeGit) Clone(ctx context.Context, opts git.CloneOptions) error {
	args := append([]string(nil), opts.Args...)
	args = append(args, "ref="+opts.Reference, fmt.Sprintf("dissociate=%t", opts.Dissociate), opts.URL, opts.Directory)
	return f.record(opts.WorkDir, "clone", args...)
}

func (f *fakeGit) Checkout(ctx context.Context, dir, ref string) error {
	return f.record(dir, "checkout", ref)
}

func (f *fakeGit) ResetHard(ctx context.Context, dir, rev string) error {
	return f.record(dir, "reset", rev)
}

func (f *fakeGit) Fetch(ctx context.Context, dir, remote string, refspecs ...string) error {
	return f.record(dir, "fetch", append([]string{remote}, refspecs...)...)
}

type fakeCache struct {
	requests []string
	err      error
}

func (f *fakeCache) Ensure(ctx context.Context, url string) (string, error) {
	f.requests = append(f.requests, url)
	if f.err != nil {
		return "", f.err
	}
	return "/cache/gitc/" + strings.ReplaceAll(url, "/", "%%"), nil
}

func TestClone_Pipeline(t *testing.T) {
	cloneLine := "/work: clone ref=" + testCache + " dissociate=true " + testRepo + " repo"

	tests := []struct {
		name      string
		req       Request
		wantCalls []string
		wantPath  string
	}{
		{
			name:      "plain repository",
			req:       Request{Spec: "https://example.com/org/repo"},
			wantCalls: []string{cloneLine},
			wantPath:  "/work/repo",
		},
		{
			name: "tree branch",
			req:  Request{Spec: "https://example.com/org/repo.git/tree/feature/x"},
			wantCalls: []string{
				cloneLine,
				"/work/repo: checkout feature/x",
			},
			wantPath: "/work/repo",
		},
		{
			name: "fragment branch",
			req:  Request{Spec: testRepo + "#mybranch"},
			wantCalls: []string{
				cloneLine,
				"/work/repo: checkout mybranch",
			},
			wantPath: "/work/repo",
		},
		{
			name: "hash resets to the hash",
			req:  Request{Spec: testRepo + "##deadbeef"},
			wantCalls: []string{
				cloneLine,
				"/work/repo: reset deadbeef",
			},
			wantPath: "/work/repo",
		},
		{
			name: "pull request URL",
			req:  Request{Spec: testRepo + "/pull/42"},
			wantCalls: []string{
				cloneLine,
				"/work/repo: fetch origin pull/42/head:pr/42",
				"/work/repo: checkout pr/42",
			},
			wantPath: "/work/repo",
		},
		{
			name: "pull request fragment",
			req:  Request{Spec: testRepo + "#pr#7"},
			wantCalls: []string{
				cloneLine,
				"/work/repo: fetch origin pull/7/head:pr/7",
				"/work/repo: checkout pr/7",
			},
			wantPath: "/work/repo",
		},
		{
			name: "explicit directory and passthrough args",
			req:  Request{Spec: testRepo + "#dev", Directory: "checkout", Args: []string{"--depth", "1"}},
			wantCalls: []string{
				"/work: clone --depth 1 ref=" + testCache + " dissociate=true " + testRepo + " checkout",
				"/work/checkout: checkout dev",
			},
			wantPath: "/work/checkout",
		},
		{
			name: "absolute directory",
			req:  Request{Spec: testRepo + "#dev", Directory: "/elsewhere/repo"},
			wantCalls: []string{
				"/work: clone ref=" + testCache + " dissociate=true " + testRepo + " /elsewhere/repo",
				"/elsewhere/repo: checkout dev",
			},
			wantPath: "/elsewhere/repo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &fakeGit{}
			c := &fakeCache{}
			cloner := New(g, c, WithWorkDir("/work"))

			res, err := cloner.Clone(context.Background(), tt.req)
			require.NoError(t, err)
			assert.Equal(t, StateDone, res.State)
			assert.Equal(t, testRepo, res.Target.Repository)
			assert.Equal(t, []string{testRepo}, c.requests)
			assert.Equal(t, testCache, res.CachePath)
			assert.Equal(t, tt.wantPath, res.Path)
			assert.Equal(t, tt.wantCalls, g.calls)
		})
	}
}

func TestClone_ScpLikeDefaultDirectory(t *testing.T) {
	g := &fakeGit{}
	cloner := New(g, &fakeCache{}, WithWorkDir("/work"))

	res, err := cloner.Clone(context.Background(), Request{Spec: "host.xz:foo.git"})
	require.NoError(t, err)
	assert.Equal(t, "foo", res.Directory)
	assert.Equal(t, "/work/foo", res.Path)
}

func TestClone_ParseFailure(t *testing.T) {
	g := &fakeGit{}
	c := &fakeCache{}
	cloner := New(g, c)

	res, err := cloner.Clone(context.Background(), Request{Spec: ""})
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
	assert.Equal(t, 2, errors.ExitCode(err))
	assert.Equal(t, StateIdle, res.State)
	assert.Empty(t, c.requests)
	assert.Empty(t, g.calls)

	step, ok := errors.ContextValue(err, "step")
	require.True(t, ok)
	assert.Equal(t, StepParse, step)
}

func TestClone_StepFailures(t *testing.T) {
	cause := stderrors.New("exit status 1")
	failure := func() error { return errors.Wrap(cause, errors.CodeExecutionFailed, "git failed") }

	tests := []struct {
		name      string
		spec      string
		fail      string
		wantStep  string
		wantState State
		wantCalls int
	}{
		{"clone", testRepo + "#main", "clone", StepClone, StateCacheEnsured, 1},
		{"checkout", testRepo + "#main", "checkout", StepCheckout, StateCloned, 2},
		{"reset", testRepo + "##abc123", "reset", StepReset, StateCloned, 2},
		{"fetch pull request", testRepo + "#pr#3", "fetch", StepFetchPullRequest, StateCloned, 2},
		{"checkout pull request", testRepo + "/pull/3", "checkout", StepCheckoutPullRequest, StateCloned, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &fakeGit{fail: map[string]error{tt.fail: failure()}}
			cloner := New(g, &fakeCache{}, WithWorkDir("/work"))

			res, err := cloner.Clone(context.Background(), Request{Spec: tt.spec})
			require.Error(t, err)
			assert.True(t, stderrors.Is(err, cause))
			assert.Equal(t, errors.CodeExecutionFailed, errors.GetCode(err))
			assert.Equal(t, tt.wantState, res.State)
			assert.Len(t, g.calls, tt.wantCalls, "pipeline must stop at the failed step")

			step, ok := errors.ContextValue(err, "step")
			require.True(t, ok)
			assert.Equal(t, tt.wantStep, step)
		})
	}
}

func TestClone_CacheFailure(t *testing.T) {
	t.Run("keeps inner step", func(t *testing.T) {
		cacheErr := errors.WithContext(errors.New(errors.CodeExecutionFailed, "git clone --mirror failed"), "step", "mirror")
		g := &fakeGit{}
		cloner := New(g, &fakeCache{err: cacheErr})

		res, err := cloner.Clone(context.Background(), Request{Spec: testRepo})
		require.Error(t, err)
		assert.Equal(t, StateParsed, res.State)
		assert.Empty(t, g.calls)

		step, _ := errors.ContextValue(err, "step")
		assert.Equal(t, "mirror", step)
	})

	t.Run("names the cache step", func(t *testing.T) {
		cloner := New(&fakeGit{}, &fakeCache{err: errors.New(errors.CodeInternal, "failed to lock")})

		_, err := cloner.Clone(context.Background(), Request{Spec: testRepo})
		require.Error(t, err)
		assert.Equal(t, errors.CodeInternal, errors.GetCode(err))

		step, _ := errors.ContextValue(err, "step")
		assert.Equal(t, StepCache, step)
	})
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "cache-ensured", StateCacheEnsured.String())
	assert.Equal(t, "done", StateDone.String())
	assert.Equal(t, "unknown", State(42).String())
}

// Package testutil builds on-disk git repositories for tests.
//
// The repositories are written with go-git so fixtures need no git binary.
// Tests that drive the real git CLI against them call RequireGit first.
package testutil

import (
	osexec "os/exec"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"
)

// Upstream is a non-bare repository standing in for a remote.
type Upstream struct {
	// Path is the repository directory. Its name ends in ".git" so the
	// path is already in normalized form.
	Path string

	t    testing.TB
	repo *gogit.Repository
	fs   billy.Filesystem
}

// RequireGit skips the test when no git executable is on PATH.
func RequireGit(t testing.TB) {
	t.Helper()
	if _, err := osexec.LookPath("git"); err != nil {
		t.Skip("git not found on PATH")
	}
}

// NewUpstream initializes an upstream named "<name>.git" in a temporary
// directory and creates an initial commit on DefaultBranch.
//
// Example:
//
//	up := testutil.NewUpstream(t, "project")
//	hash := up.Commit("README.md", "# Project", "Add README")
func NewUpstream(t testing.TB, name string) *Upstream {
	t.Helper()

	path := filepath.Join(t.TempDir(), name+".git")
	repo, err := gogit.PlainInit(path, false)
	require.NoError(t, err)

	wt, err := repo.Worktree()
	require.NoError(t, err)

	u := &Upstream{Path: path, t: t, repo: repo, fs: wt.Filesystem}
	u.Commit("README.md", TestFileContent, TestInitialCommit)
	return u
}

// Repository returns the underlying go-git repository.
func (u *Upstream) Repository() *gogit.Repository {
	return u.repo
}

// Commit writes content to file, stages it and commits on the current
// branch. It returns the commit hash.
func (u *Upstream) Commit(file, content, message string) string {
	u.t.Helper()

	require.NoError(u.t, util.WriteFile(u.fs, file, []byte(content), 0o644))

	wt, err := u.repo.Worktree()
	require.NoError(u.t, err)

	_, err = wt.Add(file)
	require.NoError(u.t, err)

	hash, err := wt.Commit(message, &gogit.CommitOptions{
		Author: &object.Signature{
			Name:  TestAuthor,
			Email: TestEmail,
			When:  time.Now(),
		},
	})
	require.NoError(u.t, err)

	return hash.String()
}

// Branch creates branch at the current HEAD and switches to it.
func (u *Upstream) Branch(name string) {
	u.t.Helper()
	u.checkout(name, true)
}

// Switch switches to an existing branch.
func (u *Upstream) Switch(name string) {
	u.t.Helper()
	u.checkout(name, false)
}

func (u *Upstream) checkout(name string, create bool) {
	wt, err := u.repo.Worktree()
	require.NoError(u.t, err)

	require.NoError(u.t, wt.Checkout(&gogit.CheckoutOptions{
		Branch: plumbing.NewBranchReferenceName(name),
		Create: create,
	}))
}

// PullRequest points refs/pull/<n>/head at hash, the ref a hosting service
// publishes for pull request n.
func (u *Upstream) PullRequest(n int, hash string) {
	u.t.Helper()

	name := plumbing.ReferenceName("refs/pull/" + strconv.Itoa(n) + "/head")
	ref := plumbing.NewHashReference(name, plumbing.NewHash(hash))
	require.NoError(u.t, u.repo.Storer.SetReference(ref))
}

// Head returns the reference name and commit hash HEAD resolves to in the
// repository at path.
func Head(t testing.TB, path string) (plumbing.ReferenceName, string) {
	t.Helper()

	repo, err := gogit.PlainOpen(path)
	require.NoError(t, err)

	head, err := repo.Head()
	require.NoError(t, err)

	return head.Name(), head.Hash().String()
}

// Ref returns the hash of ref in the repository at path, which may be bare.
func Ref(t testing.TB, path string, ref plumbing.ReferenceName) string {
	t.Helper()

	repo, err := gogit.PlainOpen(path)
	require.NoError(t, err)

	r, err := repo.Reference(ref, true)
	require.NoError(t, err)

	return r.Hash().String()
}

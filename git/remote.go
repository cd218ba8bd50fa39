package git

import (
	"context"
	"fmt"
)

// CloneOptions describes a reference-linked clone.
type CloneOptions struct {
	// Args are extra options passed to "git clone" verbatim, ahead of the
	// options the client adds itself.
	Args []string

	// Reference is a local repository to borrow objects from. It is passed
	// with --reference-if-able, so a missing reference only produces a
	// warning from git.
	Reference string

	// Dissociate copies borrowed objects into the new clone so it does not
	// depend on Reference afterwards.
	Dissociate bool

	// URL is the repository to clone.
	URL string

	// Directory is the destination directory. Empty lets git choose.
	Directory string

	// WorkDir is the directory git runs in; Directory is relative to it.
	WorkDir string
}

// cloneArgs builds the argument list for "git clone".
func cloneArgs(opts CloneOptions) []string {
	args := []string{"clone"}
	args = append(args, opts.Args...)
	if opts.Reference != "" {
		args = append(args, "--reference-if-able", opts.Reference)
	}
	if opts.Dissociate {
		args = append(args, "--dissociate")
	}
	args = append(args, "--", opts.URL)
	if opts.Directory != "" {
		args = append(args, opts.Directory)
	}
	return args
}

// Clone runs "git clone" as described by opts.
func (c *Client) Clone(ctx context.Context, opts CloneOptions) error {
	return c.run(ctx, opts.WorkDir, cloneArgs(opts)...)
}

// MirrorClone creates a bare mirror of url at path with
// "git clone --mirror".
func (c *Client) MirrorClone(ctx context.Context, url, path string) error {
	return c.run(ctx, "", "clone", "--mirror", "--", url, path)
}

// FetchAll updates every remote of the repository at dir with
// "git fetch --all".
func (c *Client) FetchAll(ctx context.Context, dir string) error {
	return c.run(ctx, dir, "fetch", "--all")
}

// Fetch fetches refspecs from remote into the repository at dir.
func (c *Client) Fetch(ctx context.Context, dir, remote string, refspecs ...string) error {
	args := append([]string{"fetch", remote}, refspecs...)
	return c.run(ctx, dir, args...)
}

// PullRequestRefspec returns the refspec that fetches the head of pull
// request n into the local branch pr/<n>.
func PullRequestRefspec(n int) string {
	return fmt.Sprintf("pull/%d/head:%s", n, PullRequestBranch(n))
}

// PullRequestBranch returns the local branch name used for pull request n.
func PullRequestBranch(n int) string {
	return fmt.Sprintf("pr/%d", n)
}

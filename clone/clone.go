package clone

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/jmgilman/gitc/errors"
	"github.com/jmgilman/gitc/git"
	"github.com/jmgilman/gitc/specifier"
)

// Pipeline step names attached to errors under the "step" context key.
const (
	StepParse               = "parse"
	StepCache               = "cache"
	StepClone               = "clone"
	StepCheckout            = "checkout"
	StepReset               = "reset"
	StepFetchPullRequest    = "fetch-pull-request"
	StepCheckoutPullRequest = "checkout-pull-request"
)

// DefaultRemote is the remote name git clone creates.
const DefaultRemote = "origin"

// Git is the subset of *git.Client the pipeline uses.
type Git interface {
	Clone(ctx context.Context, opts git.CloneOptions) error
	Checkout(ctx context.Context, dir, ref string) error
	ResetHard(ctx context.Context, dir, rev string) error
	Fetch(ctx context.Context, dir, remote string, refspecs ...string) error
}

// Cache provides mirrors to clone from. *cache.Cache implements it.
type Cache interface {
	Ensure(ctx context.Context, url string) (string, error)
}

// Request is one invocation of gitc.
type Request struct {
	// Spec is the repository argument, possibly in extended syntax.
	Spec string

	// Directory is the destination directory. Empty means the humanish
	// name of the repository.
	Directory string

	// Args are passed through to "git clone" verbatim.
	Args []string
}

// Result describes how far a request got.
type Result struct {
	// State is the last state the pipeline reached.
	State State

	// Target is the parsed request. It is zero if parsing failed.
	Target specifier.Target

	// CachePath is the mirror the clone borrowed objects from.
	CachePath string

	// Directory is the destination directory as passed to git.
	Directory string

	// Path is the clone's location on disk.
	Path string
}

// Cloner runs the clone pipeline.
type Cloner struct {
	git     Git
	cache   Cache
	workDir string
	logger  *slog.Logger
}

// Option configures a Cloner.
type Option func(*Cloner)

// WithWorkDir sets the directory clones are created in. Defaults to the
// process working directory.
func WithWorkDir(dir string) Option {
	return func(c *Cloner) {
		c.workDir = dir
	}
}

// WithLogger sets the logger used for pipeline transitions.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Cloner) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a Cloner.
func New(g Git, cache Cache, opts ...Option) *Cloner {
	c := &Cloner{
		git:    g,
		cache:  cache,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Clone runs the pipeline for req. The returned Result is never nil; on
// error it records the last state reached and the error carries the failed
// step under the "step" context key.
func (c *Cloner) Clone(ctx context.Context, req Request) (*Result, error) {
	res := &Result{State: StateIdle}

	spec, err := specifier.Parse(req.Spec)
	if err != nil {
		return res, withStep(err, StepParse)
	}
	res.Target = spec.Target()
	c.advance(res, StateParsed, "repository", res.Target.Repository)

	cachePath, err := c.cache.Ensure(ctx, res.Target.Repository)
	if err != nil {
		return res, withStep(err, StepCache)
	}
	res.CachePath = cachePath
	c.advance(res, StateCacheEnsured, "cache", cachePath)

	res.Directory = req.Directory
	if res.Directory == "" {
		res.Directory = specifier.HumanishName(res.Target.Repository)
	}
	res.Path = res.Directory
	if !filepath.IsAbs(res.Path) {
		res.Path = filepath.Join(c.workDir, res.Path)
	}

	err = c.git.Clone(ctx, git.CloneOptions{
		Args:       req.Args,
		Reference:  cachePath,
		Dissociate: true,
		URL:        res.Target.Repository,
		Directory:  res.Directory,
		WorkDir:    c.workDir,
	})
	if err != nil {
		return res, withStep(err, StepClone)
	}
	c.advance(res, StateCloned, "path", res.Path)

	if err := c.resolve(ctx, res.Path, res.Target); err != nil {
		return res, err
	}
	c.advance(res, StateRefResolved)

	c.advance(res, StateDone)
	return res, nil
}

// resolve checks out the requested ref in the clone at dir. The pull
// request step runs after, and independently of, the branch or hash step.
func (c *Cloner) resolve(ctx context.Context, dir string, target specifier.Target) error {
	switch {
	case target.Branch != "":
		if err := c.git.Checkout(ctx, dir, target.Branch); err != nil {
			return withStep(err, StepCheckout)
		}
	case target.Hash != "":
		if err := c.git.ResetHard(ctx, dir, target.Hash); err != nil {
			return withStep(err, StepReset)
		}
	}

	if target.HasPullRequest() {
		n := target.PullRequest
		if err := c.git.Fetch(ctx, dir, DefaultRemote, git.PullRequestRefspec(n)); err != nil {
			return withStep(err, StepFetchPullRequest)
		}
		if err := c.git.Checkout(ctx, dir, git.PullRequestBranch(n)); err != nil {
			return withStep(err, StepCheckoutPullRequest)
		}
	}
	return nil
}

func (c *Cloner) advance(res *Result, state State, attrs ...any) {
	res.State = state
	c.logger.Debug("clone pipeline", append([]any{"state", state.String()}, attrs...)...)
}

// withStep records step on err unless an inner layer already named a more
// specific one.
func withStep(err error, step string) error {
	if _, ok := errors.ContextValue(err, "step"); ok {
		return err
	}
	return errors.WithContext(err, "step", step)
}

package cache

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	gogit "github.com/go-git/go-git/v5"
	gitcache "github.com/go-git/go-git/v5/plumbing/cache"
	"github.com/go-git/go-git/v5/storage/filesystem"

	"github.com/jmgilman/gitc/errors"
	"github.com/jmgilman/gitc/specifier"
)

// Mirrorer runs the git operations the cache delegates to.
// *git.Client implements it.
type Mirrorer interface {
	// MirrorClone creates a bare mirror of url at path.
	MirrorClone(ctx context.Context, url, path string) error

	// FetchAll refreshes every remote of the repository at dir.
	FetchAll(ctx context.Context, dir string) error
}

// Cache is a directory of repository mirrors keyed by URL.
type Cache struct {
	root   string
	fs     billy.Filesystem
	git    Mirrorer
	logger *slog.Logger
}

// Option configures a Cache.
type Option func(*Cache)

// WithFilesystem sets the billy filesystem used for all cache I/O. Paths are
// absolute, so the filesystem must be rooted at "/". Defaults to osfs.New("/").
func WithFilesystem(fs billy.Filesystem) Option {
	return func(c *Cache) {
		c.fs = fs
	}
}

// WithLogger sets the logger for refresh and repair messages.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Cache) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New opens the cache at root, creating the directory if it does not exist.
// A root that already exists is fine; any other failure to create it is
// returned as CodeInternal.
func New(root string, git Mirrorer, opts ...Option) (*Cache, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.CodeInternal, "invalid cache root %q", root)
	}

	c := &Cache{
		root:   abs,
		fs:     osfs.New("/"),
		git:    git,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}

	if err := c.fs.MkdirAll(c.root, 0o755); err != nil {
		return nil, errors.WrapWithContext(err, errors.CodeInternal, "failed to create cache root",
			map[string]interface{}{"path": c.root})
	}

	return c, nil
}

// Root returns the absolute cache root directory.
func (c *Cache) Root() string {
	return c.root
}

// Path returns the mirror path for url. It is a pure function of the
// normalized URL and the cache root.
func (c *Cache) Path(url string) string {
	return filepath.Join(c.root, Encode(url))
}

// Ensure makes sure a mirror of url exists and returns its path.
//
// An existing mirror is refreshed on a best-effort basis: a failed fetch is
// logged and the stale mirror is still returned. A missing mirror is
// created; if that fails the error is returned and nothing is left behind.
// An existing entry that is not a git repository is replaced.
func (c *Cache) Ensure(ctx context.Context, url string) (string, error) {
	url = specifier.Normalize(url)
	name := Encode(url)
	path := filepath.Join(c.root, name)

	unlock, err := c.lock(name)
	if err != nil {
		return "", err
	}
	defer unlock()

	valid, err := c.inspect(path)
	if err != nil {
		return "", err
	}

	if valid {
		c.logger.Debug("refreshing cache mirror", "url", url, "path", path)
		if err := c.git.FetchAll(ctx, path); err != nil {
			if ctx.Err() != nil {
				return "", errors.WithContext(err, "step", "refresh")
			}
			c.logger.Warn("failed to refresh cache mirror, using it as is", "url", url, "path", path, "error", err)
		}
		return path, nil
	}

	if err := c.create(ctx, url, name); err != nil {
		return "", err
	}
	return path, nil
}

// inspect reports whether path holds a usable mirror. A path that exists but
// does not open as a repository is removed.
func (c *Cache) inspect(path string) (bool, error) {
	info, err := c.fs.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrapf(err, errors.CodeInternal, "failed to stat cache entry %s", path)
	}

	if info.IsDir() {
		storageFS, err := c.fs.Chroot(path)
		if err != nil {
			return false, errors.Wrapf(err, errors.CodeInternal, "failed to open cache entry %s", path)
		}

		storage := filesystem.NewStorage(storageFS, gitcache.NewObjectLRUDefault())
		_, err = gogit.Open(storage, nil)
		if err == nil {
			return true, nil
		}
		if !errors.Is(err, gogit.ErrRepositoryNotExists) {
			// git may still understand what go-git cannot read.
			c.logger.Debug("cache entry not readable by go-git", "path", path, "error", err)
			return true, nil
		}
	}

	c.logger.Warn("replacing invalid cache entry", "path", path)
	if err := util.RemoveAll(c.fs, path); err != nil {
		return false, errors.Wrapf(err, errors.CodeInternal, "failed to remove invalid cache entry %s", path)
	}
	return false, nil
}

// create mirrors url into a temporary directory and renames it to its
// entry name.
func (c *Cache) create(ctx context.Context, url, name string) error {
	tmp := filepath.Join(c.root, tempName(name))
	path := filepath.Join(c.root, name)

	if err := util.RemoveAll(c.fs, tmp); err != nil {
		return errors.Wrapf(err, errors.CodeInternal, "failed to remove stale temporary mirror %s", tmp)
	}

	c.logger.Debug("creating cache mirror", "url", url, "path", path)
	if err := c.git.MirrorClone(ctx, url, tmp); err != nil {
		if rmErr := util.RemoveAll(c.fs, tmp); rmErr != nil {
			c.logger.Warn("failed to clean up temporary mirror", "path", tmp, "error", rmErr)
		}
		return errors.WithContext(err, "step", "mirror")
	}

	if err := c.fs.Rename(tmp, path); err != nil {
		return errors.WrapWithContext(err, errors.CodeInternal, "failed to move mirror into place",
			map[string]interface{}{"step": "mirror", "path": path})
	}
	return nil
}

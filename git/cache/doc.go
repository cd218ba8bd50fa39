// Package cache maintains gitc's mirror cache.
//
// # Overview
//
// The cache holds one bare mirror per distinct repository URL. A mirror is
// created with "git clone --mirror" on the first request for a URL and
// refreshed with "git fetch --all" on every later request. Clones then
// borrow objects from the mirror with --reference-if-able and --dissociate,
// so only the objects that changed since the last refresh cross the network.
//
// # Layout
//
//	${XDG_CACHE_HOME}/gitc/
//	├── https:%%%%github.com%%org%%repo.git        # mirror
//	├── .https:%%%%github.com%%org%%repo.git.lock  # advisory lock
//	└── .https:%%%%github.com%%org%%repo.git.tmp   # mirror being created
//
// Entry names are the normalized URL percent-encoded as a single path
// segment with every encoded "/" written as "%%". See Encode.
//
// # Concurrency
//
// Ensure holds an exclusive advisory lock on the entry's lock file while it
// creates or refreshes the mirror, so concurrent gitc processes cloning the
// same repository wait for each other instead of racing. New mirrors are
// cloned into a hidden temporary directory and renamed into place, so an
// interrupted clone never leaves a half-written entry behind.
//
// # Usage
//
//	c, err := cache.New(cfg.CacheRoot, git.New())
//	if err != nil {
//	    return err
//	}
//	path, err := c.Ensure(ctx, "https://github.com/org/repo.git")
package cache

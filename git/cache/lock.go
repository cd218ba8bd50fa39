package cache

import (
	"os"
	"path/filepath"

	"github.com/jmgilman/gitc/errors"
)

// lock takes the exclusive advisory lock of entry name and returns the
// function that releases it. The call blocks while another process holds
// the lock. Lock files are never removed; deleting a lock file while another
// process waits on it would let two holders in.
func (c *Cache) lock(name string) (func(), error) {
	path := filepath.Join(c.root, lockName(name))

	f, err := c.fs.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, errors.Wrapf(err, errors.CodeInternal, "failed to open cache lock %s", path)
	}

	if err := f.Lock(); err != nil {
		_ = f.Close()
		return nil, errors.Wrapf(err, errors.CodeInternal, "failed to lock %s", path)
	}

	return func() {
		if err := f.Unlock(); err != nil {
			c.logger.Warn("failed to release cache lock", "path", path, "error", err)
		}
		_ = f.Close()
	}, nil
}

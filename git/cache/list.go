package cache

import (
	"os"
	"sort"
	"strings"

	"github.com/jmgilman/gitc/errors"
	"github.com/jmgilman/gitc/specifier"
)

// List returns the repository URLs that have a mirror in the cache, sorted.
// Lock files, temporary mirrors and names that do not decode are skipped.
func (c *Cache) List() ([]string, error) {
	entries, err := c.fs.ReadDir(c.root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, errors.CodeInternal, "failed to read cache root %s", c.root)
	}

	var urls []string
	for _, entry := range entries {
		name := entry.Name()
		if !entry.IsDir() || strings.HasPrefix(name, ".") || !strings.HasSuffix(name, specifier.Suffix) {
			continue
		}

		url, err := Decode(name)
		if err != nil {
			c.logger.Debug("skipping cache entry", "name", name, "error", err)
			continue
		}
		urls = append(urls, url)
	}

	sort.Strings(urls)
	return urls, nil
}

// Complete returns the cached repository URLs starting with prefix.
func (c *Cache) Complete(prefix string) ([]string, error) {
	urls, err := c.List()
	if err != nil {
		return nil, err
	}

	matches := urls[:0]
	for _, url := range urls {
		if strings.HasPrefix(url, prefix) {
			matches = append(matches, url)
		}
	}
	return matches, nil
}

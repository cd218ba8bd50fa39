package cache

import (
	"net/url"
	"strings"

	"github.com/jmgilman/gitc/errors"
	"github.com/jmgilman/gitc/specifier"
)

const (
	// separatorEscape replaces the percent-encoding of "/" in entry names.
	separatorEscape = "%%"

	encodedSeparator = "%2F"
	encodedDot       = "%2E"
)

// Encode converts a repository URL into a cache entry name.
//
// The URL is normalized (trailing slashes removed, ".git" appended),
// percent-encoded as a path segment, and every "%2F" is replaced by "%%".
// A leading "." is encoded as "%2E" so entry names are never hidden files.
// url.PathEscape always encodes "%" as "%25" and never encodes ".", so
// neither "%%" nor "%2E" occurs otherwise and Decode inverts Encode exactly.
//
// Examples:
//   - https://github.com/org/repo → https:%%%%github.com%%org%%repo.git
//   - git@host:org/repo.git       → git@host:org%%repo.git
func Encode(rawURL string) string {
	escaped := url.PathEscape(specifier.Normalize(rawURL))
	escaped = strings.ReplaceAll(escaped, encodedSeparator, separatorEscape)
	if strings.HasPrefix(escaped, ".") {
		escaped = encodedDot + escaped[1:]
	}
	return escaped
}

// Decode converts a cache entry name back into the repository URL.
func Decode(name string) (string, error) {
	if name == "" || strings.HasPrefix(name, ".") {
		return "", errors.Newf(errors.CodeInvalidInput, "%q is not a cache entry name", name)
	}

	decoded, err := url.PathUnescape(strings.ReplaceAll(name, separatorEscape, encodedSeparator))
	if err != nil {
		return "", errors.Wrapf(err, errors.CodeInvalidInput, "%q is not a cache entry name", name)
	}
	return decoded, nil
}

// lockName returns the lock file name for an entry.
func lockName(name string) string {
	return "." + name + ".lock"
}

// tempName returns the name a new mirror is cloned into before it is
// renamed into place.
func tempName(name string) string {
	return "." + name + ".tmp"
}

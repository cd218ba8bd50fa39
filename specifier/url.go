package specifier

import "strings"

// Suffix is the canonical repository suffix appended by Normalize.
const Suffix = ".git"

// TrimSlashes removes trailing slashes from url.
func TrimSlashes(url string) string {
	return strings.TrimRight(url, "/")
}

// Normalize strips trailing slashes and appends Suffix when it is missing.
// It is idempotent.
//
// Examples:
//   - https://github.com/org/repo      → https://github.com/org/repo.git
//   - https://github.com/org/repo.git/ → https://github.com/org/repo.git
//   - host.xz:foo.git                  → host.xz:foo.git
func Normalize(url string) string {
	url = TrimSlashes(url)
	if strings.HasSuffix(url, Suffix) {
		return url
	}
	return url + Suffix
}

// HumanishName returns the directory name git itself would pick for url:
// the last path component with a trailing "/.git" or ".git" removed.
//
// Examples:
//   - https://github.com/org/repo.git → repo
//   - host.xz:foo.git                 → foo
//   - /srv/git/project/.git           → project
func HumanishName(url string) string {
	name := TrimSlashes(url)
	name = TrimSlashes(strings.TrimSuffix(name, "/"+Suffix))

	if i := strings.LastIndexAny(name, "/:"); i >= 0 {
		name = name[i+1:]
	}
	return strings.TrimSuffix(name, Suffix)
}

// Package specifier parses gitc's extended repository syntax.
//
// A repository argument may carry the ref to check out after cloning:
//
//	https://github.com/org/repo/pull/42        pull request 42
//	https://github.com/org/repo/tree/feature   branch "feature"
//	https://github.com/org/repo.git##deadbeef  commit deadbeef
//	https://github.com/org/repo.git#pr#7       pull request 7
//	https://github.com/org/repo.git#mybranch   branch "mybranch"
//	git@github.com:org/repo                    default branch
//
// Patterns are tried in that priority order and the first match wins. The
// result is one of the PullRequest, Branch or Generic variants; Target
// flattens any of them into the fields the clone pipeline needs.
//
// Repository URLs are normalized: trailing slashes are removed and a ".git"
// suffix is appended when missing.
package specifier

// Package clone runs gitc's clone pipeline.
//
// A request moves through a fixed sequence of states:
//
//	Idle → Parsed → CacheEnsured → Cloned → RefResolved → Done
//
// The repository argument is parsed into a specifier, the cache mirror for
// the repository is created or refreshed, a reference-linked dissociated
// clone is made from the mirror, and finally the requested branch, commit or
// pull request is checked out in the new clone. Any failing step aborts the
// pipeline; the returned error names the step and the Result records the
// last state reached.
//
// Example:
//
//	client := git.New()
//	mirrors, _ := cache.New(cfg.CacheRoot, client)
//	cloner := clone.New(client, mirrors, clone.WithWorkDir(cfg.WorkDir))
//	res, err := cloner.Clone(ctx, clone.Request{Spec: "https://github.com/org/repo/pull/42"})
package clone

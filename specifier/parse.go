package specifier

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jmgilman/gitc/errors"
)

// matcher is one entry of the ordered pattern table.
type matcher struct {
	name  string
	re    *regexp.Regexp
	build func(groups map[string]string) (Specifier, error)
}

// matchers are tried in order; the first one that matches wins.
var matchers = []matcher{
	{
		name: "pull-request",
		re:   regexp.MustCompile(`^(?P<repo>.+)/pull(?:-requests?)?/(?P<number>\d+)(?:[/#?].*)?$`),
		build: func(g map[string]string) (Specifier, error) {
			n, err := parsePullRequest(g["number"])
			if err != nil {
				return nil, err
			}
			return PullRequest{Repo: g["repo"], Number: n}, nil
		},
	},
	{
		name: "tree",
		re:   regexp.MustCompile(`^(?P<repo>.+?)/tree/(?P<branch>[^#?]+?)/*(?:[#?].*)?$`),
		build: func(g map[string]string) (Specifier, error) {
			return Branch{Repo: g["repo"], Name: g["branch"]}, nil
		},
	},
	{
		name: "generic",
		re:   regexp.MustCompile(`^(?P<repo>[^#]+)(?:(?P<hashsep>##)(?P<hash>.*)|#pr#(?P<pr>\d+)|#(?P<branch>.*))?$`),
		build: func(g map[string]string) (Specifier, error) {
			if g["hashsep"] != "" && (g["hash"] == "" || strings.Contains(g["hash"], "#")) {
				return nil, errors.Newf(errors.CodeInvalidInput, "invalid commit hash %q", g["hash"])
			}
			spec := Generic{Repo: g["repo"], Branch: g["branch"], Hash: g["hash"]}
			if g["pr"] != "" {
				n, err := parsePullRequest(g["pr"])
				if err != nil {
					return nil, err
				}
				spec.PullRequest = n
			}
			return spec, nil
		},
	},
}

// Parse parses a repository argument. It returns a CodeInvalidInput error
// when no pattern matches, which only happens for an empty argument or one
// without a repository part (for example "#main"). An empty fragment
// ("repo#") requests nothing; an empty or malformed hash ("repo##") is an
// error.
func Parse(raw string) (Specifier, error) {
	for _, m := range matchers {
		groups, ok := match(m.re, raw)
		if !ok {
			continue
		}

		spec, err := m.build(groups)
		if err != nil {
			return nil, err
		}
		return normalized(spec)
	}

	if raw == "" {
		return nil, errors.New(errors.CodeInvalidInput, "no repository specified")
	}
	return nil, errors.Newf(errors.CodeInvalidInput, "invalid repository specifier %q", raw)
}

// match returns the named groups of re in s.
func match(re *regexp.Regexp, s string) (map[string]string, bool) {
	sub := re.FindStringSubmatch(s)
	if sub == nil {
		return nil, false
	}

	groups := make(map[string]string, len(sub))
	for i, name := range re.SubexpNames() {
		if name != "" {
			groups[name] = sub[i]
		}
	}
	return groups, true
}

func parsePullRequest(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, errors.Newf(errors.CodeInvalidInput, "invalid pull request number %q", raw)
	}
	return n, nil
}

// normalized applies Normalize to the repository of spec.
func normalized(spec Specifier) (Specifier, error) {
	if TrimSlashes(spec.Repository()) == "" {
		return nil, errors.New(errors.CodeInvalidInput, "no repository specified")
	}

	switch s := spec.(type) {
	case PullRequest:
		s.Repo = Normalize(s.Repo)
		return s, nil
	case Branch:
		s.Repo = Normalize(s.Repo)
		return s, nil
	case Generic:
		s.Repo = Normalize(s.Repo)
		return s, nil
	}
	return spec, nil
}

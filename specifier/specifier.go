package specifier

// Specifier is a parsed repository argument. The concrete type is one of
// PullRequest, Branch or Generic.
type Specifier interface {
	// Repository returns the normalized repository URL.
	Repository() string

	// Target flattens the specifier into its resolved fields.
	Target() Target

	isSpecifier()
}

// Target is what a specifier resolves to. Empty strings and a zero
// PullRequest mean "not requested".
type Target struct {
	Repository  string
	Branch      string
	Hash        string
	PullRequest int
}

// HasPullRequest reports whether a pull request was requested.
func (t Target) HasPullRequest() bool {
	return t.PullRequest > 0
}

// PullRequest is produced by "<repo>/pull/<n>" style URLs.
type PullRequest struct {
	Repo   string
	Number int
}

func (p PullRequest) Repository() string { return p.Repo }

func (p PullRequest) Target() Target {
	return Target{Repository: p.Repo, PullRequest: p.Number}
}

func (PullRequest) isSpecifier() {}

// Branch is produced by "<repo>/tree/<branch>" style URLs.
type Branch struct {
	Repo string
	Name string
}

func (b Branch) Repository() string { return b.Repo }

func (b Branch) Target() Target {
	return Target{Repository: b.Repo, Branch: b.Name}
}

func (Branch) isSpecifier() {}

// Generic is produced by the fallback pattern: a bare repository optionally
// followed by "##<hash>", "#pr#<n>" or "#<branch>". At most one of Branch,
// Hash and PullRequest is set.
type Generic struct {
	Repo        string
	Branch      string
	Hash        string
	PullRequest int
}

func (g Generic) Repository() string { return g.Repo }

func (g Generic) Target() Target {
	return Target{
		Repository:  g.Repo,
		Branch:      g.Branch,
		Hash:        g.Hash,
		PullRequest: g.PullRequest,
	}
}

func (Generic) isSpecifier() {}

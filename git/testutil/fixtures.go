package testutil

// Test user information used for fixture commits.
const (
	// TestAuthor is the author name for fixture commits.
	TestAuthor = "Test User"

	// TestEmail is the author email for fixture commits.
	TestEmail = "test@example.com"
)

// Test file content.
const (
	// TestFileContent is sample content for README files.
	TestFileContent = "# Test Repository\n\nThis is a test repository.\n"
)

// Test commit messages.
const (
	// TestInitialCommit is the message of the first commit of an upstream.
	TestInitialCommit = "Initial commit"

	// TestFeatureCommit is a message for feature branch commits.
	TestFeatureCommit = "Add new feature"

	// TestPullRequestCommit is a message for commits only reachable through
	// a pull request ref.
	TestPullRequestCommit = "Proposed change"
)

// DefaultBranch is the branch go-git creates on init.
const DefaultBranch = "master"

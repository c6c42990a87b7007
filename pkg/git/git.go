// Package git reads what gcli needs from the local repository: the remote
// URL the forge is detected from, and the current branch.
package git

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=git.go -destination=mocks/git.gen.go -package=mocks

// Git interface provides Git command execution capabilities.
type Git interface {
	// GetRemoteURL gets the URL of a remote.
	GetRemoteURL(repoPath, remoteName string) (string, error)

	// GetCurrentBranch gets the current branch name.
	GetCurrentBranch(repoPath string) (string, error)
}

type realGit struct{}

// NewGit creates a new Git instance.
func NewGit() Git {
	return &realGit{}
}

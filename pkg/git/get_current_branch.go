package git

// GetCurrentBranch gets the current branch name. It is empty on a detached
// HEAD.
func (g *realGit) GetCurrentBranch(repoPath string) (string, error) {
	return run(repoPath, "branch", "--show-current")
}

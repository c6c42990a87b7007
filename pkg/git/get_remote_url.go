package git

// GetRemoteURL gets the URL of a remote.
func (g *realGit) GetRemoteURL(repoPath, remoteName string) (string, error) {
	return run(repoPath, "remote", "get-url", remoteName)
}

package git

import (
	"fmt"
	"net/url"
	"strings"
)

// Remote is a repository location extracted from a remote URL.
type Remote struct {
	Host string
	// Owner is the user, organisation or, on GitLab, the full group path.
	Owner string
	Repo  string
}

// ParseRemote extracts host, owner and repository from the remote URL forms
// git accepts: https://host/owner/repo.git, ssh://git@host:22/owner/repo and
// the scp-like git@host:owner/repo.git.
func ParseRemote(remoteURL string) (Remote, error) {
	raw := strings.TrimSpace(remoteURL)

	var host, path string
	if strings.Contains(raw, "://") {
		u, err := url.Parse(raw)
		if err != nil {
			return Remote{}, fmt.Errorf("%w: %w", ErrInvalidRemote, err)
		}
		host, path = u.Hostname(), u.Path
	} else {
		// scp-like syntax: [user@]host:path
		at := strings.LastIndex(raw, "@")
		hostPath := raw[at+1:]
		var ok bool
		host, path, ok = strings.Cut(hostPath, ":")
		if !ok {
			return Remote{}, fmt.Errorf("%w: %s", ErrInvalidRemote, remoteURL)
		}
	}

	path = strings.TrimSuffix(strings.Trim(path, "/"), ".git")
	i := strings.LastIndex(path, "/")
	if host == "" || i <= 0 || i == len(path)-1 {
		return Remote{}, fmt.Errorf("%w: %s", ErrInvalidRemote, remoteURL)
	}

	return Remote{
		Host:  strings.ToLower(host),
		Owner: path[:i],
		Repo:  path[i+1:],
	}, nil
}

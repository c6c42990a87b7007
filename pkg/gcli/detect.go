package gcli

import (
	"strings"

	"github.com/lerenn/gcli/pkg/forge"
	"github.com/lerenn/gcli/pkg/git"
)

// Detect picks the forge kind serving a git remote. The hosts map (host name
// to forge name) is checked first, then well known host name patterns.
// Anything else is assumed to be GitHub.
func Detect(remoteURL string, hosts map[string]string) (forge.Kind, git.Remote, error) {
	remote, err := git.ParseRemote(remoteURL)
	if err != nil {
		return 0, git.Remote{}, err
	}

	if name, ok := hosts[remote.Host]; ok {
		kind, err := forge.ParseKind(name)
		return kind, remote, err
	}
	return detectHost(remote.Host), remote, nil
}

func detectHost(host string) forge.Kind {
	switch {
	case strings.Contains(host, "gitlab"):
		return forge.KindGitLab
	case strings.Contains(host, "gitea"),
		strings.Contains(host, "forgejo"),
		strings.Contains(host, "codeberg"):
		return forge.KindGitea
	case strings.Contains(host, "bugzilla"):
		return forge.KindBugzilla
	}
	return forge.KindGitHub
}

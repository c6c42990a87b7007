package gcli

import (
	"fmt"

	"github.com/lerenn/gcli/pkg/forge"
	"github.com/lerenn/gcli/pkg/forge/bugzilla"
	"github.com/lerenn/gcli/pkg/forge/gitea"
	"github.com/lerenn/gcli/pkg/forge/github"
	"github.com/lerenn/gcli/pkg/forge/gitlab"
	"github.com/lerenn/gcli/pkg/transport"
)

// Backend tells how to reach one forge kind.
type Backend struct {
	Kind forge.Kind
	// DefaultAPIBase is used when the account does not set api_base. Empty
	// for forges without a public instance.
	DefaultAPIBase string
	// AuthHeader carries the token. Empty means a bearer token.
	AuthHeader string
	New        func(t transport.Transport) forge.Forge
}

var backends = map[forge.Kind]Backend{
	forge.KindGitHub: {
		Kind:           forge.KindGitHub,
		DefaultAPIBase: github.DefaultAPIBase,
		New:            func(t transport.Transport) forge.Forge { return github.New(t) },
	},
	forge.KindGitLab: {
		Kind:           forge.KindGitLab,
		DefaultAPIBase: gitlab.DefaultAPIBase,
		New:            func(t transport.Transport) forge.Forge { return gitlab.New(t) },
	},
	forge.KindGitea: {
		Kind:           forge.KindGitea,
		DefaultAPIBase: gitea.DefaultAPIBase,
		New:            func(t transport.Transport) forge.Forge { return gitea.New(t) },
	},
	forge.KindBugzilla: {
		Kind:       forge.KindBugzilla,
		AuthHeader: bugzilla.AuthHeader,
		New:        func(t transport.Transport) forge.Forge { return bugzilla.New(t) },
	},
}

// ByKind returns the backend of a forge kind.
func ByKind(kind forge.Kind) (Backend, error) {
	b, ok := backends[kind]
	if !ok {
		return Backend{}, fmt.Errorf("%w: %s", forge.ErrUnknownForge, kind)
	}
	return b, nil
}

// ByName returns the backend of a forge named as in configuration.
func ByName(name string) (Backend, error) {
	kind, err := forge.ParseKind(name)
	if err != nil {
		return Backend{}, err
	}
	return ByKind(kind)
}

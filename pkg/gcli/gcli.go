// Package gcli wires configuration, git remote detection and the forge
// implementations into ready to use sessions.
package gcli

import (
	"fmt"

	"github.com/lerenn/gcli/pkg/config"
	"github.com/lerenn/gcli/pkg/dependencies"
	"github.com/lerenn/gcli/pkg/forge"
	"github.com/lerenn/gcli/pkg/git"
	"github.com/lerenn/gcli/pkg/logger"
	"github.com/lerenn/gcli/pkg/transport"
)

// NewSessionParams contains parameters for creating a session.
type NewSessionParams struct {
	Dependencies *dependencies.Dependencies
	Account      config.Account
}

// NewSession builds the transport and the forge of an account.
func NewSession(params NewSessionParams) (*forge.Session, error) {
	deps := params.Dependencies
	if deps == nil {
		deps = dependencies.New()
	}

	backend, err := ByName(params.Account.Forge)
	if err != nil {
		return nil, err
	}

	base := params.Account.APIBase
	if base == "" {
		base = backend.DefaultAPIBase
	}
	if base == "" {
		return nil, fmt.Errorf("%w: %s", ErrNoAPIBase, backend.Kind)
	}

	t, err := deps.NewTransport(transport.Options{
		BaseURL:    base,
		Token:      params.Account.ResolveToken(),
		AuthHeader: backend.AuthHeader,
	})
	if err != nil {
		return nil, err
	}

	log := logger.OrNoop(deps.Logger)
	log.Logf("using %s at %s", backend.Kind, base)
	return forge.NewSession(backend.New(t), log), nil
}

// ResolveParams names what the user asked for. Empty fields are filled from
// the git remote of Dir, then from the account.
type ResolveParams struct {
	Account string
	Owner   string
	Repo    string
	// Dir is the working directory whose remote is inspected.
	Dir string
	// Remote defaults to origin.
	Remote string
}

// Target is the account and repository an invocation works on.
type Target struct {
	AccountName string
	Account     config.Account
	Owner       string
	Repo        string
}

// Resolve decides which account and repository to use. An explicit account
// wins; otherwise the account is picked from the git remote host, then from
// the forge kind detected for it, then the default account is used. The
// remote only supplies owner and repository when it points at the same kind
// of forge as the chosen account.
func Resolve(deps *dependencies.Dependencies, cfg *config.Config, params ResolveParams) (Target, error) {
	remote, kind, detected := detectRemote(deps, cfg, params)

	name := params.Account
	if name == "" && detected {
		if n, ok := cfg.AccountForHost(remote.Host); ok {
			name = n
		} else if n, ok := cfg.AccountForKind(kind); ok {
			name = n
		}
	}
	if name == "" {
		name = cfg.DefaultAccount
	}

	account, err := cfg.Account(name)
	if err != nil {
		return Target{}, err
	}

	t := Target{AccountName: name, Account: account, Owner: account.Owner, Repo: account.Repo}
	if accountKind, err := account.Kind(); err == nil && detected && accountKind == kind {
		t.Owner, t.Repo = remote.Owner, remote.Repo
	}
	if params.Owner != "" {
		t.Owner = params.Owner
	}
	if params.Repo != "" {
		t.Repo = params.Repo
	}
	return t, nil
}

func detectRemote(deps *dependencies.Dependencies, cfg *config.Config, params ResolveParams) (git.Remote, forge.Kind, bool) {
	if deps.Git == nil {
		return git.Remote{}, 0, false
	}
	remoteName := params.Remote
	if remoteName == "" {
		remoteName = "origin"
	}
	dir := params.Dir
	if dir == "" {
		dir = "."
	}

	log := logger.OrNoop(deps.Logger)
	u, err := deps.Git.GetRemoteURL(dir, remoteName)
	if err != nil {
		log.Logf("no git remote detected: %v", err)
		return git.Remote{}, 0, false
	}
	kind, remote, err := Detect(u, cfg.Hosts)
	if err != nil {
		log.Logf("ignoring remote %s: %v", u, err)
		return git.Remote{}, 0, false
	}
	return remote, kind, true
}

// Require checks that the target names a repository.
func (t Target) Require() error {
	if t.Owner == "" || t.Repo == "" {
		return ErrNoRepository
	}
	return nil
}

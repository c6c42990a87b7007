// Package cli holds the global flags of gcli and builds sessions from them.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lerenn/gcli/pkg/config"
	"github.com/lerenn/gcli/pkg/dependencies"
	"github.com/lerenn/gcli/pkg/forge"
	"github.com/lerenn/gcli/pkg/gcli"
	"github.com/lerenn/gcli/pkg/issue"
	"github.com/lerenn/gcli/pkg/logger"
)

// DefaultMax is the number of items listings return unless told otherwise.
const DefaultMax = 30

var (
	// Verbose enables verbose output.
	Verbose bool
	// ConfigPath specifies a custom config file path.
	ConfigPath string
	// Account selects a configured account.
	Account string
	// Owner overrides the repository owner.
	Owner string
	// Repo overrides the repository name.
	Repo string
	// Max caps listings. Negative means everything.
	Max = DefaultMax
)

// current is the session of this invocation, kept to report its last error.
var current *forge.Session

// Env is what a command works with.
type Env struct {
	Deps    *dependencies.Dependencies
	Config  *config.Config
	Target  gcli.Target
	Session *forge.Session
}

// NewDependencies returns the dependencies selected by the global flags.
func NewDependencies() *dependencies.Dependencies {
	deps := dependencies.New()
	if Verbose {
		deps = deps.WithLogger(logger.NewVerboseLogger())
	}
	return deps
}

// Path returns the configuration file gcli reads.
func Path() string {
	if ConfigPath != "" {
		return ConfigPath
	}
	return config.DefaultConfigPath
}

// Open resolves the account and repository and opens a session on them.
func Open() (*Env, error) {
	return open(NewDependencies(), Owner, Repo)
}

// OpenRepo is Open for commands that need a repository.
func OpenRepo() (*Env, error) {
	env, err := Open()
	if err != nil {
		return nil, err
	}
	if err := env.require(); err != nil {
		return nil, err
	}
	return env, nil
}

// require checks that the target names a repository. Bug trackers number
// bugs globally and treat product and component as optional filters.
func (e *Env) require() error {
	if e.Session.Descriptor().Quirks.Has(forge.QuirkIssueProductComponent) {
		return nil
	}
	return e.Target.Require()
}

// OpenRef opens a session on the repository of an issue or pull reference,
// such as "12", "owner/repo#12" or the address of its web page. A reference
// naming its repository wins over the flags.
func OpenRef(arg string) (*Env, Ref, error) {
	return openRef(NewDependencies(), arg)
}

func openRef(deps *dependencies.Dependencies, arg string) (*Env, Ref, error) {
	ref, err := issue.ParseReference(arg)
	if err != nil {
		return nil, Ref{}, err
	}

	owner, repo := Owner, Repo
	if ref.HasRepository() {
		owner, repo = ref.Owner, ref.Repository
	}
	env, err := open(deps, owner, repo)
	if err != nil {
		return nil, Ref{}, err
	}
	if err := env.require(); err != nil {
		return nil, Ref{}, err
	}
	return env, env.Ref(ref.Number), nil
}

func open(deps *dependencies.Dependencies, owner, repo string) (*Env, error) {
	cfg, err := config.LoadConfigWithFallback(deps.Config, Path())
	if err != nil {
		return nil, err
	}

	target, err := gcli.Resolve(deps, cfg, gcli.ResolveParams{
		Account: Account,
		Owner:   owner,
		Repo:    repo,
	})
	if err != nil {
		return nil, err
	}

	session, err := gcli.NewSession(gcli.NewSessionParams{
		Dependencies: deps,
		Account:      target.Account,
	})
	if err != nil {
		return nil, err
	}
	current = session

	return &Env{Deps: deps, Config: cfg, Target: target, Session: session}, nil
}

// LastError returns the message of the last failed forge call, if any.
func LastError() string {
	if current == nil {
		return ""
	}
	return current.LastError()
}

// ParseNumber parses an issue, pull or milestone number. A leading '#' is
// accepted.
func ParseNumber(arg string) (int, error) {
	n, err := strconv.Atoi(strings.TrimPrefix(arg, "#"))
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, arg)
	}
	return n, nil
}

// ParseID parses a numeric identifier.
func ParseID(arg string) (int64, error) {
	n, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, arg)
	}
	return n, nil
}

// CurrentBranch returns the branch checked out in the working directory.
func (e *Env) CurrentBranch() (string, error) {
	branch, err := e.Deps.Git.GetCurrentBranch(".")
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNoBranch, err)
	}
	if branch == "" || branch == "HEAD" {
		return "", ErrNoBranch
	}
	return branch, nil
}

// ReadFile reads a file named on the command line, expanding "~".
func (e *Env) ReadFile(path string) (string, error) {
	p, err := e.Deps.FS.ExpandPath(path)
	if err != nil {
		return "", err
	}
	data, err := e.Deps.FS.ReadFile(p)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Body returns the inline text, or the content of file when one is named.
func (e *Env) Body(inline, file string) (string, error) {
	if file == "" {
		return inline, nil
	}
	return e.ReadFile(file)
}

// Ref names one issue or pull of the target repository.
type Ref struct {
	Owner  string
	Repo   string
	Number int
}

// Ref returns a reference to an issue or pull of the target repository.
func (e *Env) Ref(number int) Ref {
	return Ref{Owner: e.Target.Owner, Repo: e.Target.Repo, Number: number}
}

// Package dependencies groups the collaborators gcli components share, with
// a fluent API for replacing them in tests.
package dependencies

import (
	"errors"
	"net/http"

	"github.com/lerenn/gcli/pkg/config"
	"github.com/lerenn/gcli/pkg/fs"
	"github.com/lerenn/gcli/pkg/git"
	"github.com/lerenn/gcli/pkg/logger"
	"github.com/lerenn/gcli/pkg/transport"
)

// Validation errors for missing dependencies.
var (
	ErrFSMissing     = errors.New("fs dependency is required but not set")
	ErrGitMissing    = errors.New("git dependency is required but not set")
	ErrConfigMissing = errors.New("config dependency is required but not set")
	ErrLoggerMissing = errors.New("logger dependency is required but not set")
)

// TransportFactory builds the transport a forge talks through.
type TransportFactory func(opts transport.Options) (transport.Transport, error)

// Dependencies holds shared dependencies across the application.
type Dependencies struct {
	FS     fs.FS
	Git    git.Git
	Config config.Manager
	Logger logger.Logger
	// HTTPClient is handed to transports. Nil means a plain http.Client.
	HTTPClient *http.Client
	// Transport builds forge transports. Nil means transport.New.
	Transport TransportFactory
}

// New creates a new Dependencies instance with the real implementations.
func New() *Dependencies {
	fsys := fs.NewFS()
	return &Dependencies{
		FS:        fsys,
		Git:       git.NewGit(),
		Config:    config.NewManager(fsys),
		Logger:    logger.NewNoopLogger(),
		Transport: transport.New,
	}
}

// WithFS sets the filesystem and returns the instance for chaining.
func (d *Dependencies) WithFS(fs fs.FS) *Dependencies {
	d.FS = fs
	return d
}

// WithGit sets the git instance and returns the instance for chaining.
func (d *Dependencies) WithGit(git git.Git) *Dependencies {
	d.Git = git
	return d
}

// WithConfig sets the config manager and returns the instance for chaining.
func (d *Dependencies) WithConfig(cfg config.Manager) *Dependencies {
	d.Config = cfg
	return d
}

// WithLogger sets the logger and returns the instance for chaining.
func (d *Dependencies) WithLogger(logger logger.Logger) *Dependencies {
	d.Logger = logger
	return d
}

// WithHTTPClient sets the HTTP client and returns the instance for chaining.
func (d *Dependencies) WithHTTPClient(c *http.Client) *Dependencies {
	d.HTTPClient = c
	return d
}

// WithTransport sets the transport factory and returns the instance for
// chaining.
func (d *Dependencies) WithTransport(f TransportFactory) *Dependencies {
	d.Transport = f
	return d
}

// NewTransport builds a transport with the configured factory, HTTP client
// and logger.
func (d *Dependencies) NewTransport(opts transport.Options) (transport.Transport, error) {
	if opts.HTTPClient == nil {
		opts.HTTPClient = d.HTTPClient
	}
	if opts.Logger == nil {
		opts.Logger = d.Logger
	}
	if d.Transport == nil {
		return transport.New(opts)
	}
	return d.Transport(opts)
}

type dependencyCheck struct {
	dep any
	err error
}

// Validate checks that all required dependencies are set and returns an error if any are missing.
func (d *Dependencies) Validate() error {
	checks := []dependencyCheck{
		{d.FS, ErrFSMissing},
		{d.Git, ErrGitMissing},
		{d.Config, ErrConfigMissing},
		{d.Logger, ErrLoggerMissing},
	}

	for _, check := range checks {
		if check.dep == nil {
			return check.err
		}
	}
	return nil
}

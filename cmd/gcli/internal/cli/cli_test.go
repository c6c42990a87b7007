//go:build unit

package cli

import (
	"errors"
	"testing"

	"github.com/lerenn/gcli/pkg/config"
	configmocks "github.com/lerenn/gcli/pkg/config/mocks"
	"github.com/lerenn/gcli/pkg/dependencies"
	"github.com/lerenn/gcli/pkg/forge"
	"github.com/lerenn/gcli/pkg/gcli"
	fsmocks "github.com/lerenn/gcli/pkg/fs/mocks"
	gitmocks "github.com/lerenn/gcli/pkg/git/mocks"
	"github.com/lerenn/gcli/pkg/issue"
	"github.com/lerenn/gcli/pkg/logger"
	"github.com/lerenn/gcli/pkg/transport"
	transportmocks "github.com/lerenn/gcli/pkg/transport/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		DefaultAccount: "gitlab",
		Accounts: map[string]config.Account{
			"github": {Forge: "github", Token: "gh-token"},
			"gitlab": {Forge: "gitlab"},
		},
	}
}

func testDeps(ctrl *gomock.Controller, opts *transport.Options) (*dependencies.Dependencies, *configmocks.MockManager, *gitmocks.MockGit) {
	cfg := configmocks.NewMockManager(ctrl)
	g := gitmocks.NewMockGit(ctrl)
	deps := &dependencies.Dependencies{
		Config: cfg,
		Git:    g,
		Logger: logger.NewNoopLogger(),
		Transport: func(o transport.Options) (transport.Transport, error) {
			*opts = o
			return transportmocks.NewMockTransport(ctrl), nil
		},
	}
	return deps, cfg, g
}

func resetFlags(t *testing.T) {
	t.Cleanup(func() {
		ConfigPath, Account, Owner, Repo = "", "", "", ""
		current = nil
	})
}

func TestOpen_FromRemote(t *testing.T) {
	resetFlags(t)
	ctrl := gomock.NewController(t)
	var opts transport.Options
	deps, cfg, g := testDeps(ctrl, &opts)

	cfg.EXPECT().LoadConfig(config.DefaultConfigPath).Return(testConfig(), nil)
	g.EXPECT().GetRemoteURL(".", "origin").Return("git@github.com:lerenn/gcli.git", nil)

	env, err := open(deps, "", "")
	require.NoError(t, err)

	assert.Equal(t, "github", env.Target.AccountName)
	assert.Equal(t, "lerenn", env.Target.Owner)
	assert.Equal(t, "gcli", env.Target.Repo)
	assert.Equal(t, forge.KindGitHub, env.Session.Descriptor().Kind)
	assert.Equal(t, "gh-token", opts.Token)
	assert.Empty(t, LastError())
}

func TestOpen_FlagsWin(t *testing.T) {
	resetFlags(t)
	ctrl := gomock.NewController(t)
	var opts transport.Options
	deps, cfg, g := testDeps(ctrl, &opts)

	ConfigPath = "/etc/gcli.yaml"
	Account = "gitlab"
	cfg.EXPECT().LoadConfig("/etc/gcli.yaml").Return(testConfig(), nil)
	g.EXPECT().GetRemoteURL(".", "origin").Return("git@github.com:lerenn/gcli.git", nil)

	env, err := open(deps, "group/sub", "tool")
	require.NoError(t, err)

	assert.Equal(t, forge.KindGitLab, env.Session.Descriptor().Kind)
	assert.Equal(t, "group/sub", env.Target.Owner)
	assert.Equal(t, "tool", env.Target.Repo)
	assert.Equal(t, "https://gitlab.com/api/v4", opts.BaseURL)
}

func TestOpen_ConfigError(t *testing.T) {
	resetFlags(t)
	ctrl := gomock.NewController(t)
	var opts transport.Options
	deps, cfg, _ := testDeps(ctrl, &opts)

	cfg.EXPECT().LoadConfig(config.DefaultConfigPath).Return(nil, config.ErrConfigFileParse)

	_, err := open(deps, "", "")
	assert.ErrorIs(t, err, config.ErrConfigFileParse)
}

func TestOpen_DefaultsWhenNoConfig(t *testing.T) {
	resetFlags(t)
	ctrl := gomock.NewController(t)
	var opts transport.Options
	deps, cfg, g := testDeps(ctrl, &opts)

	cfg.EXPECT().LoadConfig(config.DefaultConfigPath).Return(nil, config.ErrConfigNotFound)
	cfg.EXPECT().DefaultConfig().Return(testConfig())
	g.EXPECT().GetRemoteURL(".", "origin").Return("", errors.New("not a git repository"))

	env, err := open(deps, "", "")
	require.NoError(t, err)
	assert.Equal(t, "gitlab", env.Target.AccountName)
	assert.Empty(t, env.Target.Owner)
}

func TestEnv_CurrentBranch(t *testing.T) {
	ctrl := gomock.NewController(t)
	g := gitmocks.NewMockGit(ctrl)
	env := &Env{Deps: &dependencies.Dependencies{Git: g}}

	g.EXPECT().GetCurrentBranch(".").Return("feature", nil)
	branch, err := env.CurrentBranch()
	require.NoError(t, err)
	assert.Equal(t, "feature", branch)

	g.EXPECT().GetCurrentBranch(".").Return("", nil)
	_, err = env.CurrentBranch()
	assert.ErrorIs(t, err, ErrNoBranch)

	g.EXPECT().GetCurrentBranch(".").Return("", errors.New("boom"))
	_, err = env.CurrentBranch()
	assert.ErrorIs(t, err, ErrNoBranch)
}

func TestParseNumber(t *testing.T) {
	n, err := ParseNumber("#12")
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	for _, arg := range []string{"", "abc", "0", "-3"} {
		_, err := ParseNumber(arg)
		assert.ErrorIs(t, err, ErrInvalidNumber, arg)
	}

	id, err := ParseID("1234567890123")
	require.NoError(t, err)
	assert.Equal(t, int64(1234567890123), id)

	_, err = ParseID("x")
	assert.ErrorIs(t, err, ErrInvalidNumber)
}

func TestEnv_Body(t *testing.T) {
	ctrl := gomock.NewController(t)
	fsys := fsmocks.NewMockFS(ctrl)
	env := &Env{Deps: &dependencies.Dependencies{FS: fsys}}

	body, err := env.Body("inline", "")
	require.NoError(t, err)
	assert.Equal(t, "inline", body)

	fsys.EXPECT().ExpandPath("~/notes.md").Return("/home/me/notes.md", nil)
	fsys.EXPECT().ReadFile("/home/me/notes.md").Return([]byte("from file"), nil)
	body, err = env.Body("inline", "~/notes.md")
	require.NoError(t, err)
	assert.Equal(t, "from file", body)
}

func TestOpenRef(t *testing.T) {
	resetFlags(t)
	ctrl := gomock.NewController(t)
	var opts transport.Options
	deps, cfg, g := testDeps(ctrl, &opts)

	cfg.EXPECT().LoadConfig(config.DefaultConfigPath).Return(testConfig(), nil).Times(2)
	g.EXPECT().GetRemoteURL(".", "origin").Return("git@github.com:lerenn/gcli.git", nil).Times(2)

	env, ref, err := openRef(deps, "https://github.com/golang/go/issues/42")
	require.NoError(t, err)
	assert.Equal(t, Ref{Owner: "golang", Repo: "go", Number: 42}, ref)
	assert.Equal(t, "golang", env.Target.Owner)

	_, ref, err = openRef(deps, "#7")
	require.NoError(t, err)
	assert.Equal(t, Ref{Owner: "lerenn", Repo: "gcli", Number: 7}, ref)

	_, _, err = openRef(deps, "not a reference")
	assert.ErrorIs(t, err, issue.ErrInvalidIssueReference)
}

func TestOpenRef_BugTrackerNeedsNoRepository(t *testing.T) {
	resetFlags(t)
	ctrl := gomock.NewController(t)
	var opts transport.Options
	deps, cfg, g := testDeps(ctrl, &opts)

	c := testConfig()
	c.Accounts["mozilla"] = config.Account{Forge: "bugzilla", APIBase: "https://bugzilla.mozilla.org"}
	Account = "mozilla"
	cfg.EXPECT().LoadConfig(config.DefaultConfigPath).Return(c, nil).Times(2)
	g.EXPECT().GetRemoteURL(".", "origin").Return("", errors.New("not a git repository")).Times(2)

	env, ref, err := openRef(deps, "9")
	require.NoError(t, err)
	assert.Equal(t, forge.KindBugzilla, env.Session.Descriptor().Kind)
	assert.Equal(t, 9, ref.Number)
	assert.Equal(t, "X-BUGZILLA-API-KEY", opts.AuthHeader)

	// Repository forges still need one.
	Account = "github"
	_, _, err = openRef(deps, "9")
	assert.ErrorIs(t, err, gcli.ErrNoRepository)
}

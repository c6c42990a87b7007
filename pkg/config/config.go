// Package config loads the gcli configuration: the forge accounts and the
// host names used to recognise forges from git remotes.
package config

import (
	"fmt"
	"net/url"
	"os"
	"sort"
	"strings"

	"github.com/lerenn/gcli/pkg/forge"
)

// DefaultConfigPath is where the configuration lives unless told otherwise.
const DefaultConfigPath = "~/.gcli/config.yaml"

// Config represents the application configuration.
type Config struct {
	DefaultAccount string             `yaml:"default_account"`
	Accounts       map[string]Account `yaml:"accounts"`
	// Hosts maps git remote host names to forge kinds.
	Hosts map[string]string `yaml:"hosts,omitempty"`
}

// Account is one forge login.
type Account struct {
	Forge   string `yaml:"forge"`
	APIBase string `yaml:"api_base,omitempty"`
	Token   string `yaml:"token,omitempty"`
	// TokenEnv names an environment variable holding the token.
	TokenEnv string `yaml:"token_env,omitempty"`
	// Owner and Repo are used when neither flags nor the git remote name
	// a repository.
	Owner string `yaml:"owner,omitempty"`
	Repo  string `yaml:"repo,omitempty"`
}

// Validate validates the configuration values.
func (c *Config) Validate() error {
	if len(c.Accounts) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, ErrNoAccounts)
	}
	if c.DefaultAccount != "" {
		if _, ok := c.Accounts[c.DefaultAccount]; !ok {
			return fmt.Errorf("%w: default_account: %w: %s", ErrInvalidConfig, ErrUnknownAccount, c.DefaultAccount)
		}
	}

	for _, name := range c.AccountNames() {
		if err := c.Accounts[name].validate(); err != nil {
			return fmt.Errorf("%w: account %s: %w", ErrInvalidConfig, name, err)
		}
	}
	for host, kind := range c.Hosts {
		if _, err := forge.ParseKind(kind); err != nil {
			return fmt.Errorf("%w: host %s: %w", ErrInvalidConfig, host, err)
		}
	}
	return nil
}

func (a Account) validate() error {
	if _, err := forge.ParseKind(a.Forge); err != nil {
		return err
	}
	if a.APIBase == "" {
		return nil
	}
	u, err := url.Parse(a.APIBase)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %s", ErrAPIBaseInvalid, a.APIBase)
	}
	return nil
}

// Kind returns the forge kind of the account.
func (a Account) Kind() (forge.Kind, error) {
	return forge.ParseKind(a.Forge)
}

// ResolveToken returns the inline token, or the content of the environment
// variable named by TokenEnv.
func (a Account) ResolveToken() string {
	if a.Token != "" {
		return a.Token
	}
	if a.TokenEnv != "" {
		return os.Getenv(a.TokenEnv)
	}
	return ""
}

// Account returns the named account, or the default account when name is
// empty.
func (c *Config) Account(name string) (Account, error) {
	if name == "" {
		name = c.DefaultAccount
	}
	a, ok := c.Accounts[name]
	if !ok {
		return Account{}, fmt.Errorf("%w: %q", ErrUnknownAccount, name)
	}
	return a, nil
}

// AccountForKind returns the name of the first account, in name order, using
// the given forge kind. The default account wins when it matches.
func (c *Config) AccountForKind(kind forge.Kind) (string, bool) {
	if a, ok := c.Accounts[c.DefaultAccount]; ok {
		if k, err := a.Kind(); err == nil && k == kind {
			return c.DefaultAccount, true
		}
	}
	for _, name := range c.AccountNames() {
		if k, err := c.Accounts[name].Kind(); err == nil && k == kind {
			return name, true
		}
	}
	return "", false
}

// AccountForHost returns the name of the account whose API lives on the
// given git host, either on the host itself or on its "api." subdomain.
func (c *Config) AccountForHost(host string) (string, bool) {
	for _, name := range c.AccountNames() {
		u, err := url.Parse(c.Accounts[name].APIBase)
		if err != nil || u.Host == "" {
			continue
		}
		h := strings.ToLower(u.Hostname())
		if h == host || h == "api."+host {
			return name, true
		}
	}
	return "", false
}

// AccountNames returns the account names, sorted.
func (c *Config) AccountNames() []string {
	names := make([]string, 0, len(c.Accounts))
	for name := range c.Accounts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

package config

import (
	"errors"
	"fmt"

	"github.com/lerenn/gcli/configs"
	"github.com/lerenn/gcli/pkg/fs"
	"gopkg.in/yaml.v3"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=manager.go -destination=mocks/manager.gen.go -package=mocks

// Manager interface provides configuration management functionality.
type Manager interface {
	// LoadConfig loads and validates the configuration at configPath. A
	// leading ~ is expanded.
	LoadConfig(configPath string) (*Config, error)
	// SaveConfig writes the configuration to configPath.
	SaveConfig(configPath string, cfg *Config) error
	// DefaultConfig returns the embedded default configuration.
	DefaultConfig() *Config
}

type realManager struct {
	fs fs.FS
}

// NewManager creates a new Manager instance.
func NewManager(fsys fs.FS) Manager {
	return &realManager{fs: fsys}
}

// LoadConfig loads configuration from the specified file path.
func (m *realManager) LoadConfig(configPath string) (*Config, error) {
	path, err := m.fs.ExpandPath(configPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigFileRead, err)
	}

	exists, err := m.fs.Exists(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigFileRead, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	}

	data, err := m.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigFileRead, err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigFileParse, err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// SaveConfig saves configuration to the specified file path.
func (m *realManager) SaveConfig(configPath string, cfg *Config) error {
	path, err := m.fs.ExpandPath(configPath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfigFileWrite, err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfigFileWrite, err)
	}

	// The file may carry tokens.
	if err := m.fs.WriteFileAtomic(path, data, 0o600); err != nil {
		return fmt.Errorf("%w: %w", ErrConfigFileWrite, err)
	}
	return nil
}

// DefaultConfig returns the default configuration.
func (m *realManager) DefaultConfig() *Config {
	var config Config
	if err := yaml.Unmarshal(configs.DefaultConfigYAML, &config); err != nil {
		panic(fmt.Sprintf("embedded default configuration: %v", err))
	}
	return &config
}

// LoadConfigWithFallback loads configuration from file, falling back to the
// default configuration when the file does not exist. A file that exists but
// cannot be read or is invalid is reported.
func LoadConfigWithFallback(m Manager, configPath string) (*Config, error) {
	config, err := m.LoadConfig(configPath)
	if err == nil {
		return config, nil
	}
	if errors.Is(err, ErrConfigNotFound) {
		return m.DefaultConfig(), nil
	}
	return nil, err
}

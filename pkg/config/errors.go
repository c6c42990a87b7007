package config

import "errors"

// Error definitions for config package.
var (
	// Configuration file errors.
	ErrConfigNotFound  = errors.New("config file not found")
	ErrConfigFileRead  = errors.New("failed to read config file")
	ErrConfigFileParse = errors.New("failed to parse config file")
	ErrConfigFileWrite = errors.New("failed to write config file")

	// Configuration validation errors.
	ErrInvalidConfig  = errors.New("invalid configuration")
	ErrNoAccounts     = errors.New("no account configured")
	ErrUnknownAccount = errors.New("unknown account")
	ErrAPIBaseInvalid = errors.New("api_base must be an absolute http(s) URL")
)

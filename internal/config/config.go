// Package config handles loading, parsing, and validating application configuration.
// It defines the structure for configuration settings, provides default values,
// loads settings from files (e.g., YAML), and applies overrides from environment variables.
// file: internal/config/config.go.
package config

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/zalando/go-keyring"
	"gopkg.in/yaml.v3"

	"github.com/dkoosis/clickup-mcp/internal/logging"
)

// Keyring coordinates for the optional OS-keychain token source.
const (
	keyringService = "clickup-mcp"
	keyringUser    = "api_token"
)

// ServerConfig contains settings specific to the MCP server component.
type ServerConfig struct {
	// Name is the human-readable server name surfaced to MCP clients.
	Name string `yaml:"name"`
}

// ClickUpConfig contains settings required for talking to the ClickUp API.
type ClickUpConfig struct {
	// APIToken authenticates every upstream request. Required. The token is
	// injected into the API client at construction; nothing reads it from
	// the environment after startup.
	APIToken string `yaml:"api_token"`
	// TeamID is the default workspace for team-scoped endpoints (time
	// entries). Optional; tools that need it fail with a clear message when
	// it is absent.
	TeamID string `yaml:"team_id"`
	// BaseURL overrides the API root, primarily for testing against a fake.
	BaseURL string `yaml:"base_url,omitempty"`
}

// LoggingConfig controls application logging.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
}

// Config is the root configuration structure for the clickup-mcp server.
type Config struct {
	// Server holds general server settings.
	Server ServerConfig `yaml:"server"`
	// ClickUp holds credentials and defaults for the ClickUp API.
	ClickUp ClickUpConfig `yaml:"clickup"`
	// Logging holds logging settings.
	Logging LoggingConfig `yaml:"logging"`
}

// DefaultConfig returns a configuration populated with default values.
// It reads initial ClickUp credentials from the standard environment
// variables (CLICKUP_API_TOKEN, CLICKUP_TEAM_ID).
func DefaultConfig() *Config {
	cfg := &Config{
		Server: ServerConfig{
			Name: "ClickUp MCP",
		},
		ClickUp: ClickUpConfig{
			APIToken: os.Getenv("CLICKUP_API_TOKEN"),
			TeamID:   os.Getenv("CLICKUP_TEAM_ID"),
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
	applyEnvironmentOverrides(cfg, logging.GetLogger("config_default"))
	return cfg
}

// LoadFromFile loads configuration from the specified YAML file path.
// It starts with default values, merges the values from the YAML file,
// and finally applies any environment variable overrides.
// Supports '~' expansion in the file path.
func LoadFromFile(path string) (*Config, error) {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, errors.Wrap(err, "failed to get home directory to expand path")
		}
		path = filepath.Join(homeDir, path[1:])
	}

	// #nosec G304 -- Path comes from command-line flag or default, considered trusted input.
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config file: %s", path)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config file YAML: %s", path)
	}

	applyEnvironmentOverrides(config, logging.GetLogger("config_load"))
	return config, nil
}

// applyEnvironmentOverrides applies configuration overrides from environment
// variables. Environment variables take precedence over values set in
// configuration files or defaults. When no token is found anywhere, the OS
// keyring is consulted as a last resort.
func applyEnvironmentOverrides(config *Config, logger logging.Logger) {
	tokenSource := "default"
	if config.ClickUp.APIToken != "" {
		tokenSource = "config file"
	}

	if token := os.Getenv("CLICKUP_API_TOKEN"); token != "" {
		config.ClickUp.APIToken = token
		tokenSource = "environment variable"
	}
	if config.ClickUp.APIToken == "" {
		// Fallback: a token previously stored in the OS keychain. Absence is
		// not an error here; Validate reports the missing credential.
		if token, err := keyring.Get(keyringService, keyringUser); err == nil && token != "" {
			config.ClickUp.APIToken = token
			tokenSource = "os keyring"
		}
	}
	logger.Debug("ClickUp API token source determined.", "source", tokenSource)
	if config.ClickUp.APIToken == "" {
		logger.Warn("Required CLICKUP_API_TOKEN is missing (checked environment, config file, and keyring).")
	}

	if teamID := os.Getenv("CLICKUP_TEAM_ID"); teamID != "" {
		logger.Debug("Overriding team id from environment.", "envVar", "CLICKUP_TEAM_ID")
		config.ClickUp.TeamID = teamID
	}
	if serverName := os.Getenv("SERVER_NAME"); serverName != "" {
		logger.Debug("Overriding server name from environment.", "envVar", "SERVER_NAME", "value", serverName)
		config.Server.Name = serverName
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
}

// StoreTokenInKeyring saves the API token in the OS keychain so later runs
// can start without the environment variable.
func StoreTokenInKeyring(token string) error {
	if token == "" {
		return errors.New("refusing to store an empty token")
	}
	return errors.Wrap(keyring.Set(keyringService, keyringUser, token), "failed to store token in keyring")
}

// Validate checks that the configuration is usable. A missing API token is a
// fatal configuration error surfaced at startup, never per request.
func (c *Config) Validate() error {
	if c.ClickUp.APIToken == "" {
		return errors.New("missing ClickUp API token: set CLICKUP_API_TOKEN, add clickup.api_token to the config file, or store it in the OS keyring")
	}
	return nil
}

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/abdul-hamid-achik/domspec/packages/transport"
	"gopkg.in/yaml.v3"
)

// Config represents the domspec configuration
type Config struct {
	FixturesPath string            `json:"fixturesPath,omitempty" yaml:"fixturesPath,omitempty"` // directory or http(s) URL
	ContainerID  string            `json:"containerId,omitempty" yaml:"containerId,omitempty"`
	SandboxID    string            `json:"sandboxId,omitempty" yaml:"sandboxId,omitempty"`
	Timeout      int               `json:"timeout,omitempty" yaml:"timeout,omitempty"` // milliseconds
	MaxRedirects int               `json:"maxRedirects,omitempty" yaml:"maxRedirects,omitempty"`
	Headers      map[string]string `json:"headers,omitempty" yaml:"headers,omitempty"` // sent with HTTP fixture requests
	ValidateSSL  *bool             `json:"validateSSL,omitempty" yaml:"validateSSL,omitempty"`
	Proxy        string            `json:"proxy,omitempty" yaml:"proxy,omitempty"`
	Verbose      int               `json:"verbose,omitempty" yaml:"verbose,omitempty"` // 0=off, 1=info, 2+=debug
	NoColor      *bool             `json:"noColor,omitempty" yaml:"noColor,omitempty"`
}

// BoolPtr returns a pointer to a bool value
func BoolPtr(b bool) *bool {
	return &b
}

// getBool returns the value of a bool pointer, or the default if nil
func getBool(b *bool, defaultVal bool) bool {
	if b == nil {
		return defaultVal
	}
	return *b
}

// GetValidateSSL returns the validate SSL setting, defaulting to true
func (c *Config) GetValidateSSL() bool {
	return getBool(c.ValidateSSL, true)
}

// GetNoColor returns the no color setting, defaulting to false
func (c *Config) GetNoColor() bool {
	return getBool(c.NoColor, false)
}

// TimeoutDuration returns the fixture request timeout
func (c *Config) TimeoutDuration() time.Duration {
	return time.Duration(c.Timeout) * time.Millisecond
}

// ClientOptions returns the transport options for fetching fixtures over HTTP
func (c *Config) ClientOptions() []transport.ClientOption {
	opts := []transport.ClientOption{
		transport.WithTimeout(c.TimeoutDuration()),
		transport.WithDefaultHeaders(c.Headers),
		transport.WithValidateSSL(c.GetValidateSSL()),
		transport.WithProxy(c.Proxy),
	}
	if c.MaxRedirects > 0 {
		opts = append(opts, transport.WithMaxRedirects(c.MaxRedirects))
	}
	return opts
}

// ConfigFilenames contains the possible config file names, in search order
var ConfigFilenames = []string{
	".domspec.json",
	"domspec.config.json",
	".domspec.yaml",
	".domspec.yml",
}

// LoadConfig loads configuration from the specified path or searches for config files
func LoadConfig(path string) (*Config, error) {
	if path != "" {
		return loadConfigFromFile(path)
	}

	return FindAndLoadConfig(".")
}

// FindAndLoadConfig searches for a config file in the given directory
func FindAndLoadConfig(dir string) (*Config, error) {
	for _, filename := range ConfigFilenames {
		configPath := filepath.Join(dir, filename)
		if _, err := os.Stat(configPath); err == nil {
			return loadConfigFromFile(configPath)
		}
	}

	// Return defaults if no config file found
	return DefaultConfig(), nil
}

// loadConfigFromFile loads configuration from a specific file
func loadConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	config := DefaultConfig()
	if isYAML(path) {
		err = yaml.Unmarshal(data, config)
	} else {
		err = json.Unmarshal(data, config)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return config, nil
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// Merge merges another config into this one, with other taking precedence
func (c *Config) Merge(other *Config) *Config {
	if other == nil {
		return c
	}

	result := *c // Copy

	if other.FixturesPath != "" {
		result.FixturesPath = other.FixturesPath
	}
	if other.ContainerID != "" {
		result.ContainerID = other.ContainerID
	}
	if other.SandboxID != "" {
		result.SandboxID = other.SandboxID
	}
	if other.Timeout > 0 {
		result.Timeout = other.Timeout
	}
	if other.MaxRedirects > 0 {
		result.MaxRedirects = other.MaxRedirects
	}
	if other.Proxy != "" {
		result.Proxy = other.Proxy
	}
	if other.Verbose > 0 {
		result.Verbose = other.Verbose
	}

	// Boolean flags - only override if explicitly set in other config
	if other.ValidateSSL != nil {
		result.ValidateSSL = other.ValidateSSL
	}
	if other.NoColor != nil {
		result.NoColor = other.NoColor
	}

	if len(other.Headers) > 0 {
		headers := make(map[string]string, len(result.Headers)+len(other.Headers))
		for k, v := range result.Headers {
			headers[k] = v
		}
		for k, v := range other.Headers {
			headers[k] = v
		}
		result.Headers = headers
	}

	return &result
}

// SaveConfig saves the configuration to a file, as YAML when the extension
// says so and JSON otherwise
func (c *Config) SaveConfig(path string) error {
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

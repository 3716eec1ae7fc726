package config

const (
	// DefaultFixturesPath is where fixtures are looked up when nothing is configured
	DefaultFixturesPath = "spec/fixtures"
	// DefaultContainerID is the id of the element hosting loaded fixtures
	DefaultContainerID = "domspec-fixtures"
	// DefaultSandboxID is the id given to sandbox elements
	DefaultSandboxID = "sandbox"
	// DefaultTimeout is the fixture request timeout in milliseconds
	DefaultTimeout = 30000
)

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		FixturesPath: DefaultFixturesPath,
		ContainerID:  DefaultContainerID,
		SandboxID:    DefaultSandboxID,
		Timeout:      DefaultTimeout,
	}
}

// IsDefault returns true if the config matches defaults
func (c *Config) IsDefault() bool {
	defaults := DefaultConfig()
	return c.FixturesPath == defaults.FixturesPath &&
		c.ContainerID == defaults.ContainerID &&
		c.SandboxID == defaults.SandboxID &&
		c.Timeout == defaults.Timeout &&
		c.MaxRedirects == 0 &&
		len(c.Headers) == 0 &&
		c.ValidateSSL == nil &&
		c.Proxy == "" &&
		c.Verbose == 0 &&
		c.NoColor == nil
}

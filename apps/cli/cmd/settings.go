package cmd

import (
	"os"

	"github.com/abdul-hamid-achik/domspec/packages/core/config"
	"github.com/abdul-hamid-achik/domspec/packages/fixtures"
	"github.com/abdul-hamid-achik/domspec/packages/logging"
	"github.com/abdul-hamid-achik/domspec/packages/transport"
	"go.uber.org/zap"
)

var (
	configFlag   string
	pathFlag     string
	verboseFlag  int // 0=off, 1=-v, 2=-vv
	noColorFlag  bool
	insecureFlag bool
)

// Environment variable helpers
func getEnvString(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		return val == "true" || val == "1" || val == "yes"
	}
	return defaultVal
}

// loadSettings reads the config file and applies flag overrides.
func loadSettings() (*config.Config, error) {
	fileConfig, err := config.LoadConfig(configFlag)
	if err != nil {
		return nil, exitWith(ExitConfigError, err)
	}

	overrides := &config.Config{
		FixturesPath: pathFlag,
		Verbose:      verboseFlag,
	}
	if noColorFlag {
		overrides.NoColor = config.BoolPtr(true)
	}
	if insecureFlag {
		overrides.ValidateSSL = config.BoolPtr(false)
	}
	return fileConfig.Merge(overrides), nil
}

// newLoader returns a loader with an empty cache, so every call sees the
// fixtures as they are now.
func newLoader(cfg *config.Config, logger *zap.Logger) *fixtures.Loader {
	tr := transport.For(cfg.FixturesPath, cfg.ClientOptions()...)
	return fixtures.NewLoader(
		fixtures.WithBasePath(cfg.FixturesPath),
		fixtures.WithTransport(tr),
		fixtures.WithLogger(logger),
	)
}

func newLogger(cfg *config.Config) *zap.Logger {
	return logging.Must(cfg.Verbose)
}

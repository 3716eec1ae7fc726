// Package logging builds the zap loggers used by the domspec CLI.
package logging

import (
	"go.uber.org/zap"
)

// New returns a logger for a -v count. Without -v only warnings are written,
// as JSON. One -v switches to the console encoder at info level and two or
// more enable debug output with caller and stack traces.
func New(verbosity int) (*zap.Logger, error) {
	var cfg zap.Config

	switch verbosity {
	case 0:
		cfg = zap.NewProductionConfig()
		cfg.Level.SetLevel(zap.WarnLevel)
	case 1:
		cfg = zap.NewDevelopmentConfig()
		cfg.Level.SetLevel(zap.InfoLevel)
		cfg.DisableStacktrace = true
	default:
		cfg = zap.NewDevelopmentConfig()
		cfg.Level.SetLevel(zap.DebugLevel)
	}

	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.InitialFields = map[string]interface{}{
		"service": "domspec",
	}

	return cfg.Build()
}

// Must is New for callers that cannot recover from a logger failure; it
// falls back to a no-op logger instead of panicking.
func Must(verbosity int) *zap.Logger {
	logger, err := New(verbosity)
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_LevelFollowsVerbosity(t *testing.T) {
	tests := []struct {
		verbosity int
		debug     bool
		info      bool
	}{
		{verbosity: 0, debug: false, info: false},
		{verbosity: 1, debug: false, info: true},
		{verbosity: 2, debug: true, info: true},
		{verbosity: 5, debug: true, info: true},
	}

	for _, tt := range tests {
		logger, err := New(tt.verbosity)
		require.NoError(t, err)

		assert.Equal(t, tt.debug, logger.Core().Enabled(zap.DebugLevel), "verbosity %d debug", tt.verbosity)
		assert.Equal(t, tt.info, logger.Core().Enabled(zap.InfoLevel), "verbosity %d info", tt.verbosity)
		assert.True(t, logger.Core().Enabled(zap.WarnLevel))
	}
}

func TestMust_NeverNil(t *testing.T) {
	assert.NotNil(t, Must(0))
}

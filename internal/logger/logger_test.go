package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		env        string
		debugLevel bool
	}{
		{name: "development logs debug", env: "development", debugLevel: true},
		{name: "production skips debug", env: "production", debugLevel: false},
		{name: "unknown env falls back to production", env: "", debugLevel: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := New(tt.env)
			require.NoError(t, err)
			assert.Equal(t, tt.debugLevel, log.Core().Enabled(zapcore.DebugLevel))
		})
	}
}

package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func restore(t *testing.T) {
	prev, prevJSON := Logger, JSONOutput
	t.Cleanup(func() {
		Logger, JSONOutput = prev, prevJSON
	})
}

func TestLoggerIsUsableBeforeInitialize(t *testing.T) {
	require.NotNil(t, Logger)
	assert.NotPanics(t, func() {
		Logger.Infow("not initialized", FieldCommand, "test")
	})
}

func TestInitialize(t *testing.T) {
	tests := []struct {
		name  string
		json  bool
		level string
		want  zap.AtomicLevel
	}{
		{name: "console info", level: "info", want: zap.NewAtomicLevelAt(zap.InfoLevel)},
		{name: "json debug", json: true, level: "debug", want: zap.NewAtomicLevelAt(zap.DebugLevel)},
		{name: "console error", level: "error", want: zap.NewAtomicLevelAt(zap.ErrorLevel)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restore(t)

			require.NoError(t, Initialize(tt.json, tt.level))
			assert.Equal(t, tt.json, JSONOutput)
			assert.True(t, Logger.Desugar().Core().Enabled(tt.want.Level()))
			assert.False(t, Logger.Desugar().Core().Enabled(tt.want.Level()-1))
		})
	}
}

func TestInitialize_BadLevel(t *testing.T) {
	restore(t)

	err := Initialize(false, "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing log level")
}

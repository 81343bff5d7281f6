package logging

import (
	"testing"

	"github.com/bmharper/aabbgrid-go/internal/config"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestBuildConfig(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.LoggingConfig
		level    zapcore.Level
		encoding string
	}{
		{"console debug", config.LoggingConfig{Level: "debug", Format: "console"}, zapcore.DebugLevel, "console"},
		{"json warn", config.LoggingConfig{Level: "warn", Format: "json"}, zapcore.WarnLevel, "json"},
		{"unknown level", config.LoggingConfig{Level: "loud", Format: "console"}, zapcore.InfoLevel, "console"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			zc := buildConfig(tt.cfg)
			require.Equal(t, tt.level, zc.Level.Level())
			require.Equal(t, tt.encoding, zc.Encoding)
		})
	}
}

func TestNew(t *testing.T) {
	log, err := New(config.Default().Logging)
	require.NoError(t, err)
	require.NotNil(t, log)
	require.True(t, log.Core().Enabled(zapcore.InfoLevel))
	require.False(t, log.Core().Enabled(zapcore.DebugLevel))
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("K6VIZ_OUTPUT_DIR", "")
	t.Setenv("K6VIZ_DPI", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultOutputDir, cfg.OutputDir)
	assert.Equal(t, DefaultDPI, cfg.DPI)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
}

func TestLoad_EnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("K6VIZ_OUTPUT_DIR", "charts")
	t.Setenv("K6VIZ_DPI", "72")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "charts", cfg.OutputDir)
	assert.Equal(t, 72, cfg.DPI)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Contains(t, cfg.String(), "charts")
}

func TestLoad_InvalidDPI(t *testing.T) {
	chdir(t, t.TempDir())

	tests := []struct {
		name  string
		value string
	}{
		{name: "not a number", value: "high"},
		{name: "zero", value: "0"},
		{name: "negative", value: "-10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("K6VIZ_DPI", tt.value)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "K6VIZ_DPI")
		})
	}
}

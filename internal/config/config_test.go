package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, int64(52428800), cfg.Server.MaxUploadBytes)
	assert.True(t, cfg.Server.RateLimit.Enabled)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 50, cfg.Processing.MaxHeaderScan)
	assert.Equal(t, 4, cfg.Processing.Workers)
	assert.Equal(t, "data/input", cfg.Paths.InputDir)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("GDR_SERVER_PORT", "9090")
	t.Setenv("GDR_LOGGING_LEVEL", "debug")
	t.Setenv("GDR_PROCESSING_WORKERS", "2")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 2, cfg.Processing.Workers)
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
processing:
  default_cutoffs:
    EGS: "2024-03-01"
    DEFAULT: "2024-01-01"
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))
	t.Setenv("GDR_CONFIG_FILE", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "2024-03-01", cfg.Processing.CutoffFor("EGS"))
	assert.Equal(t, "2024-01-01", cfg.Processing.CutoffFor("LNV"))
}

func TestLoadValidation(t *testing.T) {
	t.Run("bad level", func(t *testing.T) {
		t.Setenv("GDR_LOGGING_LEVEL", "verbose")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("bad port", func(t *testing.T) {
		t.Setenv("GDR_SERVER_PORT", "70000")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("zero workers", func(t *testing.T) {
		t.Setenv("GDR_PROCESSING_WORKERS", "0")
		_, err := Load()
		assert.Error(t, err)
	})
}

func TestLoadMissingConfigFile(t *testing.T) {
	t.Setenv("GDR_CONFIG_FILE", filepath.Join(t.TempDir(), "absent.yaml"))
	_, err := Load()
	assert.Error(t, err)
}

func TestCutoffForWithoutDefaults(t *testing.T) {
	var p ProcessingConfig
	assert.Equal(t, "", p.CutoffFor("LNV"))
}

package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TARGETS_DIR", "")
	t.Setenv("RESULTS_DIR", "")
	t.Setenv("ICP_SHEET_KEYWORD", "")
	t.Setenv("DOMAIN_COLUMN_KEYWORD", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "targets", filepath.Base(cfg.TargetsDir))
	assert.Equal(t, "results", filepath.Base(cfg.ResultsDir))
	assert.Equal(t, "ICP备案", cfg.SheetKeyword)
	assert.Equal(t, "域名", cfg.ColumnKeyword)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.NotNil(t, cfg.Now)
}

func TestLoadOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TARGETS_DIR", filepath.Join(dir, "in"))
	t.Setenv("RESULTS_DIR", filepath.Join(dir, "out"))
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "in"), cfg.TargetsDir)
	assert.Equal(t, filepath.Join(dir, "out"), cfg.ResultsDir)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadRejectsUnknownLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "verbose")
	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Config{
		TargetsDir:    "targets",
		ResultsDir:    "results",
		SheetKeyword:  DefaultSheetKeyword,
		ColumnKeyword: DefaultColumnKeyword,
	}
	assert.NoError(t, cfg.Validate())

	cfg.SheetKeyword = ""
	assert.Error(t, cfg.Validate())

	cfg.SheetKeyword = DefaultSheetKeyword
	cfg.LogFormat = "xml"
	assert.Error(t, cfg.Validate())
}

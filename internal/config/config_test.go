package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)

	cfg := Default()
	cfg.Statement.FallbackYear = 2025
	cfg.Git.AutoCommit = false
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), FileName))
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("data: [unclosed"), 0o644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "parsing config")
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "data", cfg.Data.Dir)
	assert.Equal(t, "categories.yaml", cfg.Data.CategoriesFile)
	assert.Equal(t, "volksbank", cfg.Statement.Format)
	assert.True(t, cfg.Git.AutoCommit)
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default("Taro", 30)
	cfg.Git.AutoCommit = false

	path := filepath.Join(t.TempDir(), FileName)
	err := Save(path, cfg)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg.Owner.Name, got.Owner.Name)
	assert.Equal(t, cfg.Owner.Age, got.Owner.Age)
	assert.Equal(t, cfg.Ledger.File, got.Ledger.File)
	assert.Equal(t, cfg.Git.AutoCommit, got.Git.AutoCommit)
	assert.Equal(t, cfg.Git.AuthorName, got.Git.AuthorName)
	assert.Equal(t, cfg.Git.AuthorEmail, got.Git.AuthorEmail)
}

func TestDefaults(t *testing.T) {
	cfg := Default("Taro", 30)

	assert.Equal(t, "Taro", cfg.Owner.Name)
	assert.Equal(t, 30, cfg.Owner.Age)
	assert.Equal(t, "ledger.csv", cfg.Ledger.File)
	assert.True(t, cfg.Git.AutoCommit)
	assert.Equal(t, "Life WBS", cfg.Git.AuthorName)
	assert.Equal(t, "ledger@localhost", cfg.Git.AuthorEmail)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestYAMLFormat(t *testing.T) {
	cfg := Default("Taro", 30)
	path := filepath.Join(t.TempDir(), FileName)
	err := Save(path, cfg)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "name: Taro")
	assert.Contains(t, contents, "age: 30")
	assert.Contains(t, contents, "file: ledger.csv")
	assert.Contains(t, contents, "auto_commit: true")
}

func TestEnvOverride_Ledger(t *testing.T) {
	t.Setenv("LIFEWBS_LEDGER", "elsewhere.csv")

	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, Save(path, Default("Taro", 30)))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "elsewhere.csv", got.Ledger.File)
}

func TestEnvOverride_NoColor(t *testing.T) {
	t.Setenv("LIFEWBS_NO_COLOR", "true")

	env, err := LoadEnv()
	require.NoError(t, err)
	assert.True(t, env.NoColor)
}

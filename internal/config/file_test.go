package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scribe.yaml")

	cfg := Default()
	cfg.IDStrategy = "timestamp"
	require.NoError(t, Write(path, cfg, false))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasPrefix(e.Name(), TempFilePrefix), "leftover temp file %s", e.Name())
	}
}

func TestWrite_Overwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scribe.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: warn\n"), 0644))

	err := Write(path, Default(), false)
	assert.ErrorIs(t, err, ErrExists)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel, "refused write leaves the file alone")

	require.NoError(t, Write(path, Default(), true))
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestWrite_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scribe.yaml")
	cfg := Default()
	cfg.EventBuffer = -1

	assert.Error(t, Write(path, cfg, false))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestWrite_FailedRenameLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "scribe.yaml")
	require.NoError(t, os.Mkdir(target, 0755))

	assert.Error(t, Write(target, Default(), true))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "scribe.yaml", entries[0].Name())
}

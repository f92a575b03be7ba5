package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv clears key for the duration of the test.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvRenderer, "ebiten")
	t.Setenv(EnvDatabase, "")
	t.Setenv(EnvSeed, "42")
	unsetEnv(t, EnvLayout)
	unsetEnv(t, EnvJournalDir)
	unsetEnv(t, EnvLogFile)

	cfg := Default()
	require.NoError(t, cfg.ApplyEnv())

	assert.Equal(t, RendererEbiten, cfg.Renderer)
	assert.Equal(t, "", cfg.Database, "a set but empty variable still overrides")
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, "", cfg.Layout)
}

func TestApplyEnv_BadSeed(t *testing.T) {
	t.Setenv(EnvSeed, "soon")
	cfg := Default()
	assert.ErrorContains(t, cfg.ApplyEnv(), EnvSeed)
}

func TestLoadDotEnv(t *testing.T) {
	unsetEnv(t, EnvDatabase)
	t.Setenv(EnvRenderer, "tui")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("CLEANHOUSE_DB=house.db\nCLEANHOUSE_RENDERER=ebiten\n"), 0o644))
	require.NoError(t, LoadDotEnv(path))
	t.Cleanup(func() { os.Unsetenv(EnvDatabase) })

	assert.Equal(t, "house.db", os.Getenv(EnvDatabase))
	assert.Equal(t, "tui", os.Getenv(EnvRenderer), "existing variables win")
}

func TestLoadDotEnv_MissingFile(t *testing.T) {
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "nope.env")))
}

package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepareResultsDir(t *testing.T) {
	t.Run("clean removes stale artifacts", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "results")
		require.NoError(t, os.MkdirAll(dir, 0755))
		stale := filepath.Join(dir, "stale-result.json")
		require.NoError(t, os.WriteFile(stale, []byte("{}"), 0644))

		require.NoError(t, PrepareResultsDir(dir, true))

		_, err := os.Stat(stale)
		assert.True(t, os.IsNotExist(err), "stale artifact should be removed")
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("no clean keeps existing artifacts", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "results")
		require.NoError(t, os.MkdirAll(dir, 0755))
		kept := filepath.Join(dir, "kept-result.json")
		require.NoError(t, os.WriteFile(kept, []byte("{}"), 0644))

		require.NoError(t, PrepareResultsDir(dir, false))

		_, err := os.Stat(kept)
		assert.NoError(t, err, "existing artifact should survive")
	})

	t.Run("creates missing directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "a", "b", "results")
		require.NoError(t, PrepareResultsDir(dir, false))
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})
}

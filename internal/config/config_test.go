package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Reads the yaml file", func(t *testing.T) {
		// Given: a config file selecting the impossible mode
		path := writeConfig(t, "log-level: debug\nmode: impossible\nai-mark: X\nparallel-search: true\narena:\n  games: 7\n")

		// When: it is loaded
		conf, err := Load(path)

		// Then: the file values and the remaining defaults are set
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, ModeImpossible, conf.Mode)
		assert.Equal(t, "X", conf.AIMark)
		assert.True(t, conf.ParallelSearch)
		assert.True(t, conf.Color)
		assert.Equal(t, 7, conf.Arena.Games)
		assert.Equal(t, "impossible", conf.Arena.Difficulty)
	})

	t.Run("Falls back to environment defaults without a file", func(t *testing.T) {
		t.Setenv("MODE", ModeEasy)

		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, ModeEasy, conf.Mode)
		assert.Equal(t, "O", conf.AIMark)
		assert.False(t, conf.ParallelSearch)
		assert.Equal(t, 100, conf.Arena.Games)
	})

	t.Run("Rejects invalid values", func(t *testing.T) {
		cases := []string{
			"mode: medium\n",
			"ai-mark: Z\n",
			"log-level: loud\n",
			"arena:\n  games: -1\n",
		}

		for _, content := range cases {
			_, err := Load(writeConfig(t, content))

			assert.Error(t, err, content)
		}
	})

	t.Run("MustLoad panics on invalid config", func(t *testing.T) {
		path := writeConfig(t, "mode: medium\n")

		assert.Panics(t, func() { MustLoad(path) })
	})
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON(t *testing.T) {
	t.Run("full config file", func(t *testing.T) {
		// Arrange
		jsonPath := writeTempJSONConfig(t, `{
			"app": {"version": "1.2.3"},
			"storage": {
				"vault": {"path": "/data/vault.enc"},
				"key": {"path": "/keys/vault.key"}
			},
			"generator": {"length": 24},
			"workers": {"clipboard_ttl": "90s"}
		}`)

		// Act
		cfg, err := parseJSON(jsonPath)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "1.2.3", cfg.App.Version)
		assert.Equal(t, "/data/vault.enc", cfg.Storage.Vault.Path)
		assert.Equal(t, "/keys/vault.key", cfg.Storage.Key.Path)
		assert.Equal(t, 24, cfg.Generator.Length)
		assert.Equal(t, 90*time.Second, cfg.Workers.ClipboardTTL)
	})

	t.Run("numeric duration in nanoseconds", func(t *testing.T) {
		// Arrange
		jsonPath := writeTempJSONConfig(t, `{"workers": {"clipboard_ttl": 30000000000}}`)

		// Act
		cfg, err := parseJSON(jsonPath)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 30*time.Second, cfg.Workers.ClipboardTTL)
	})

	t.Run("missing file returns error", func(t *testing.T) {
		// Act
		cfg, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))

		// Assert
		assert.Error(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("malformed json returns error", func(t *testing.T) {
		// Arrange
		jsonPath := writeTempJSONConfig(t, `{"storage": `)

		// Act
		cfg, err := parseJSON(jsonPath)

		// Assert
		assert.Error(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("invalid duration string returns error", func(t *testing.T) {
		// Arrange
		jsonPath := writeTempJSONConfig(t, `{"workers": {"clipboard_ttl": "soon"}}`)

		// Act
		cfg, err := parseJSON(jsonPath)

		// Assert
		assert.Error(t, err)
		assert.Nil(t, cfg)
	})
}

// writeTempJSONConfig writes content to a throwaway config file and
// returns its path.
func writeTempJSONConfig(t *testing.T, content string) string {
	t.Helper()

	jsonPath := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(content), 0o600))

	return jsonPath
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientConfig(t *testing.T) {
	t.Run("fills defaults for unset fields", func(t *testing.T) {
		// Arrange
		cfg := &StructuredConfig{}

		// Act
		clientCfg, err := newClientConfig(cfg)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, DefaultVaultPath, clientCfg.Storage.VaultPath)
		assert.Equal(t, DefaultKeyPath, clientCfg.Storage.KeyPath)
		assert.Equal(t, defaultGeneratorLength, clientCfg.Generator.DefaultLength)
		assert.Equal(t, DefaultClipboardTTL, clientCfg.Workers.ClipboardTTL)
	})

	t.Run("configured values override defaults", func(t *testing.T) {
		// Arrange
		cfg := &StructuredConfig{
			App:       App{Version: "1.2.3"},
			Storage:   Storage{Vault: Vault{Path: "/data/v.enc"}, Key: Key{Path: "/keys/v.key"}},
			Generator: Generator{Length: 20},
			Workers:   Workers{ClipboardTTL: time.Minute},
		}

		// Act
		clientCfg, err := newClientConfig(cfg)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "1.2.3", clientCfg.App.Version)
		assert.Equal(t, "/data/v.enc", clientCfg.Storage.VaultPath)
		assert.Equal(t, "/keys/v.key", clientCfg.Storage.KeyPath)
		assert.Equal(t, 20, clientCfg.Generator.DefaultLength)
		assert.Equal(t, time.Minute, clientCfg.Workers.ClipboardTTL)
	})

	t.Run("vault and key sharing a file is rejected", func(t *testing.T) {
		// Arrange
		cfg := &StructuredConfig{
			Storage: Storage{Vault: Vault{Path: "vault.bin"}, Key: Key{Path: "vault.bin"}},
		}

		// Act
		clientCfg, err := newClientConfig(cfg)

		// Assert
		assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
		assert.Nil(t, clientCfg)
	})
}

package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/vault"
	"github.com/MKhiriev/go-pass-vault/models"
)

func newTestVaultService(t *testing.T) (VaultService, string, string) {
	t.Helper()

	dir := t.TempDir()
	vaultPath := filepath.Join(dir, "vault.enc")
	keyPath := filepath.Join(dir, "vault.key")

	keychain := crypto.NewKeyChainService()
	svc := NewVaultService(keychain, vault.NewCodec(keychain), vaultPath, keyPath, logger.Nop())

	return svc, vaultPath, keyPath
}

func TestVaultService_EnsureKey(t *testing.T) {
	t.Run("creates key file on first run", func(t *testing.T) {
		// Arrange
		svc, _, keyPath := newTestVaultService(t)

		// Act
		err := svc.EnsureKey()

		// Assert
		require.NoError(t, err)
		keyBytes, readErr := os.ReadFile(keyPath)
		require.NoError(t, readErr)
		assert.Len(t, keyBytes, 32)
	})

	t.Run("reuses an existing key file", func(t *testing.T) {
		// Arrange
		svc, _, keyPath := newTestVaultService(t)
		require.NoError(t, svc.EnsureKey())
		before, err := os.ReadFile(keyPath)
		require.NoError(t, err)

		// Act
		err = svc.EnsureKey()

		// Assert
		require.NoError(t, err)
		after, readErr := os.ReadFile(keyPath)
		require.NoError(t, readErr)
		assert.Equal(t, before, after)
	})

	t.Run("corrupt key file is reported, not replaced", func(t *testing.T) {
		// Arrange
		svc, _, keyPath := newTestVaultService(t)
		require.NoError(t, os.WriteFile(keyPath, []byte("short"), 0o600))

		// Act
		err := svc.EnsureKey()

		// Assert
		assert.ErrorIs(t, err, crypto.ErrKeyCorrupt)
		keyBytes, readErr := os.ReadFile(keyPath)
		require.NoError(t, readErr)
		assert.Equal(t, []byte("short"), keyBytes, "corrupt key file must stay untouched")
	})
}

func TestVaultService_List(t *testing.T) {
	t.Run("missing vault reads as empty", func(t *testing.T) {
		// Arrange
		svc, _, _ := newTestVaultService(t)

		// Act
		records, err := svc.List()

		// Assert
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("returns records in insertion order", func(t *testing.T) {
		// Arrange
		svc, _, _ := newTestVaultService(t)
		require.NoError(t, svc.Add(models.VaultRecord{Label: "email", Password: "p@ss1"}))
		require.NoError(t, svc.Add(models.VaultRecord{Label: "bank", Password: "p@ss2"}))

		// Act
		records, err := svc.List()

		// Assert
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "email", records[0].Label)
		assert.Equal(t, "bank", records[1].Label)
	})

	t.Run("wrong key is an error, not an empty vault", func(t *testing.T) {
		// Arrange
		svc, vaultPath, keyPath := newTestVaultService(t)
		require.NoError(t, svc.Add(models.VaultRecord{Label: "email", Password: "p@ss1"}))

		// Replace the key file and build a fresh service so the cached key
		// is gone.
		otherKey, err := crypto.NewKeyChainService().GenerateKey()
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(keyPath, otherKey, 0o600))

		keychain := crypto.NewKeyChainService()
		fresh := NewVaultService(keychain, vault.NewCodec(keychain), vaultPath, keyPath, logger.Nop())

		// Act
		records, listErr := fresh.List()

		// Assert
		assert.ErrorIs(t, listErr, crypto.ErrDecryptionFailed)
		assert.Nil(t, records)
	})
}

func TestVaultService_Add(t *testing.T) {
	t.Run("persists across service instances", func(t *testing.T) {
		// Arrange
		svc, vaultPath, keyPath := newTestVaultService(t)
		require.NoError(t, svc.Add(models.VaultRecord{Label: "email", Password: "p@ss1"}))

		keychain := crypto.NewKeyChainService()
		fresh := NewVaultService(keychain, vault.NewCodec(keychain), vaultPath, keyPath, logger.Nop())

		// Act
		records, err := fresh.List()

		// Assert
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, models.VaultRecord{Label: "email", Password: "p@ss1"}, records[0])
	})

	t.Run("duplicate label is rejected and vault unchanged", func(t *testing.T) {
		// Arrange
		svc, _, _ := newTestVaultService(t)
		require.NoError(t, svc.Add(models.VaultRecord{Label: "email", Password: "old"}))

		// Act
		err := svc.Add(models.VaultRecord{Label: "email", Password: "new"})

		// Assert
		assert.ErrorIs(t, err, vault.ErrDuplicateLabel)
		records, listErr := svc.List()
		require.NoError(t, listErr)
		require.Len(t, records, 1)
		assert.Equal(t, "old", records[0].Password)
	})

	t.Run("empty label is rejected", func(t *testing.T) {
		// Arrange
		svc, _, _ := newTestVaultService(t)

		// Act
		err := svc.Add(models.VaultRecord{Label: "", Password: "p@ss"})

		// Assert
		assert.ErrorIs(t, err, ErrInvalidRecord)
	})

	t.Run("empty password is rejected", func(t *testing.T) {
		// Arrange
		svc, _, _ := newTestVaultService(t)

		// Act
		err := svc.Add(models.VaultRecord{Label: "email", Password: ""})

		// Assert
		assert.ErrorIs(t, err, ErrInvalidRecord)
	})
}

func TestVaultService_Get(t *testing.T) {
	t.Run("returns stored record", func(t *testing.T) {
		// Arrange
		svc, _, _ := newTestVaultService(t)
		require.NoError(t, svc.Add(models.VaultRecord{Label: "email", Password: "p@ss1"}))

		// Act
		record, err := svc.Get("email")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "p@ss1", record.Password)
	})

	t.Run("unknown label returns ErrRecordNotFound", func(t *testing.T) {
		// Arrange
		svc, _, _ := newTestVaultService(t)

		// Act
		_, err := svc.Get("missing")

		// Assert
		assert.ErrorIs(t, err, ErrRecordNotFound)
	})
}

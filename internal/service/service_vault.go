package service

import (
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/vault"
	"github.com/MKhiriev/go-pass-vault/models"
)

type vaultService struct {
	keychain  crypto.KeyChainService
	codec     *vault.Codec
	vaultPath string
	keyPath   string
	log       *logger.Logger

	mu  sync.Mutex
	key []byte
}

func NewVaultService(keychain crypto.KeyChainService, codec *vault.Codec, vaultPath, keyPath string, log *logger.Logger) VaultService {
	return &vaultService{
		keychain:  keychain,
		codec:     codec,
		vaultPath: vaultPath,
		keyPath:   keyPath,
		log:       log,
	}
}

func (v *vaultService) EnsureKey() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.ensureKeyLocked()
}

// ensureKeyLocked loads or creates the key. Callers must hold v.mu.
func (v *vaultService) ensureKeyLocked() error {
	if v.key != nil {
		return nil
	}

	key, err := v.keychain.LoadKey(v.keyPath)
	if err == nil {
		v.key = key
		return nil
	}

	if !errors.Is(err, crypto.ErrKeyNotFound) {
		return fmt.Errorf("load key: %w", err)
	}

	key, err = v.keychain.GenerateKey()
	if err != nil {
		return fmt.Errorf("generate key: %w", err)
	}

	if err = v.keychain.SaveKey(key, v.keyPath); err != nil {
		return fmt.Errorf("save new key: %w", err)
	}

	v.log.Info().Str("path", v.keyPath).Msg("created new key file")
	v.key = key

	return nil
}

func (v *vaultService) List() ([]models.VaultRecord, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.listLocked()
}

// listLocked reads all records. A missing vault file reads as an empty
// vault; any other load failure is passed through so a wrong key or a
// tampered file is never silently shown as empty. Callers must hold v.mu.
func (v *vaultService) listLocked() ([]models.VaultRecord, error) {
	if err := v.ensureKeyLocked(); err != nil {
		return nil, err
	}

	records, err := v.codec.Load(v.key, v.vaultPath)
	if err != nil {
		if errors.Is(err, vault.ErrVaultNotFound) {
			return []models.VaultRecord{}, nil
		}
		return nil, fmt.Errorf("load vault: %w", err)
	}

	return records, nil
}

func (v *vaultService) Add(record models.VaultRecord) error {
	if record.Label == "" || record.Password == "" {
		return fmt.Errorf("%w: label and password must be non-empty", ErrInvalidRecord)
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	records, err := v.listLocked()
	if err != nil {
		return err
	}

	records, err = vault.AddRecord(records, record)
	if err != nil {
		return err
	}

	if err = v.codec.Save(records, v.key, v.vaultPath); err != nil {
		return fmt.Errorf("save vault: %w", err)
	}

	v.log.Debug().Str("label", record.Label).Int("records", len(records)).Msg("record added to vault")

	return nil
}

func (v *vaultService) Get(label string) (models.VaultRecord, error) {
	records, err := v.List()
	if err != nil {
		return models.VaultRecord{}, err
	}

	for _, record := range records {
		if record.Label == label {
			return record, nil
		}
	}

	return models.VaultRecord{}, fmt.Errorf("%w: %s", ErrRecordNotFound, label)
}

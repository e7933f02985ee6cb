// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"
	"os"
)

// keySize is the vault key length in bytes (AES-256).
const keySize = 32

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct{}

// NewKeyChainService constructs a [KeyChainService] backed by AES-256-GCM
// and the operating system CSPRNG.
func NewKeyChainService() KeyChainService {
	return &keyChainService{}
}

// GenerateKey implements [KeyChainService]. It reads 32 random bytes from
// the OS CSPRNG and returns them as the vault key. Returns an error if the
// random read fails.
func (k *keyChainService) GenerateKey() ([]byte, error) {
	key := make([]byte, keySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, err
	}
	return key, nil
}

// LoadKey implements [KeyChainService]. The key file holds the raw key
// bytes with no header or encoding, so the only format check possible is
// the length.
func (k *keyChainService) LoadKey(path string) ([]byte, error) {
	key, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, path)
		}
		return nil, fmt.Errorf("read key file: %w", err)
	}

	if len(key) != keySize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrKeyCorrupt, len(key), keySize)
	}

	return key, nil
}

// SaveKey implements [KeyChainService]. It writes the raw key bytes to path
// with mode 0600, replacing any existing file.
func (k *keyChainService) SaveKey(key []byte, path string) error {
	if len(key) != keySize {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrKeyCorrupt, len(key), keySize)
	}

	if err := os.WriteFile(path, key, 0o600); err != nil {
		return fmt.Errorf("write key file: %w", err)
	}

	return nil
}

// Seal implements [KeyChainService]. It encrypts plaintext with key using
// AES-256-GCM. A random 12-byte nonce is prepended to the ciphertext so
// that Open can locate it: blob = nonce ‖ ciphertext ‖ tag. Returns an
// error if cipher creation or the random nonce read fails.
func (k *keyChainService) Seal(plaintext, key []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}

	// Prepend the nonce so Open can split it out.
	ciphertext := gcm.Seal(nil, nonce, plaintext, nil)
	return append(nonce, ciphertext...), nil
}

// Open implements [KeyChainService]. It splits the blob produced by
// [keyChainService.Seal] into nonce and ciphertext, decrypts, and verifies
// the authentication tag. Any mismatch — wrong key, truncation, bit flip —
// comes back as [ErrDecryptionFailed] with no further detail, so the caller
// cannot accidentally treat a tampered vault differently from a wrong key.
func (k *keyChainService) Open(blob, key []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(blob) < nonceSize {
		return nil, ErrDecryptionFailed
	}

	// Split the blob into nonce and actual ciphertext.
	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	return plaintext, nil
}

// newGCM builds the AES-256-GCM AEAD for key.
func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != keySize {
		return nil, fmt.Errorf("invalid key length: %d", len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}

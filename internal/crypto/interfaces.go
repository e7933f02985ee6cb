package crypto

// KeyChainService owns the vault key material and the authenticated
// encryption used by the vault codec. It knows nothing about records, file
// layouts above the blob level, or the UI; its only job is keys and AEAD
// blobs.
//
// Lifecycle:
//
//	key  = GenerateKey()         (first run)
//	       SaveKey(key, path)
//	key  = LoadKey(path)         (every later run)
//	blob = Seal(plaintext, key)  (vault save)
//	pt   = Open(blob, key)       (vault load)
type KeyChainService interface {
	// GenerateKey creates a fresh 256-bit key from the OS CSPRNG.
	GenerateKey() ([]byte, error)

	// LoadKey reads the raw key file at path. Returns [ErrKeyNotFound] if
	// the file is absent and [ErrKeyCorrupt] if it does not hold exactly
	// 32 bytes.
	LoadKey(path string) ([]byte, error)

	// SaveKey writes the raw key bytes to path with mode 0600, replacing
	// any existing file. The key file itself is the secret — there is no
	// passphrase derivation on top of it — so filesystem permissions are
	// the deployment's responsibility.
	SaveKey(key []byte, path string) error

	// Seal encrypts plaintext with key using AES-256-GCM and returns the
	// blob nonce ‖ ciphertext ‖ tag.
	Seal(plaintext, key []byte) ([]byte, error)

	// Open decrypts a blob produced by Seal. Returns [ErrDecryptionFailed]
	// when the authentication tag does not verify; a wrong key and a
	// tampered blob are indistinguishable on purpose.
	Open(blob, key []byte) ([]byte, error)
}

package crypto

import "errors"

// Sentinel errors returned by [KeyChainService] implementations. Callers
// should use [errors.Is] to match against these values.
var (
	// ErrKeyNotFound is returned by LoadKey when no key file exists at the
	// given path.
	ErrKeyNotFound = errors.New("key file not found")

	// ErrKeyCorrupt is returned by LoadKey when the key file exists but
	// does not contain exactly 32 bytes of key material.
	ErrKeyCorrupt = errors.New("key file is corrupt")

	// ErrDecryptionFailed is returned by Open when the authentication tag
	// does not verify. A wrong key and a tampered or truncated blob
	// produce the same error: the two causes must stay indistinguishable.
	ErrDecryptionFailed = errors.New("decryption failed")
)

// Package generator produces random passwords from a character-class
// policy using the operating system CSPRNG.
package generator

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/MKhiriev/go-pass-vault/models"
)

// Generate produces a random password matching policy. Every character is
// drawn independently and uniformly from the union of the enabled classes,
// so repeated calls with the same policy are statistically independent.
//
// Returns a wrapped [ErrInvalidPolicy] if the length lies outside
// [models.MinPasswordLength, models.MaxPasswordLength] or no character
// class is enabled. Once the policy is validated, generation cannot
// partially fail: any later error comes from the random source itself.
func Generate(policy models.PasswordPolicy) (string, error) {
	if policy.Length < models.MinPasswordLength || policy.Length > models.MaxPasswordLength {
		return "", fmt.Errorf("%w: length must be between %d and %d, got %d",
			ErrInvalidPolicy, models.MinPasswordLength, models.MaxPasswordLength, policy.Length)
	}

	alphabet := policy.Alphabet()
	if alphabet == "" {
		return "", fmt.Errorf("%w: at least one character class must be enabled", ErrInvalidPolicy)
	}

	password := make([]byte, policy.Length)
	for i := range password {
		ch, err := randChar(alphabet)
		if err != nil {
			return "", fmt.Errorf("read random character: %w", err)
		}
		password[i] = ch
	}

	return string(password), nil
}

// randChar picks one character from alphabet using crypto/rand.
// math/rand would make the output predictable from a few observed
// passwords, so it has no place here.
func randChar(alphabet string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(alphabet))))
	if err != nil {
		return 0, err
	}
	return alphabet[n.Int64()], nil
}

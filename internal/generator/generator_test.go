package generator

import (
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/go-pass-vault/models"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name    string
		policy  models.PasswordPolicy
		wantErr error
	}{
		{
			name:    "default policy",
			policy:  models.DefaultPolicy(),
			wantErr: nil,
		},
		{
			name: "all classes enabled",
			policy: models.PasswordPolicy{
				Length: 32, Upper: true, Lower: true, Digits: true, Symbols: true,
			},
			wantErr: nil,
		},
		{
			name:    "uppercase only",
			policy:  models.PasswordPolicy{Length: 16, Upper: true},
			wantErr: nil,
		},
		{
			name:    "lowercase only",
			policy:  models.PasswordPolicy{Length: 16, Lower: true},
			wantErr: nil,
		},
		{
			name:    "digits only",
			policy:  models.PasswordPolicy{Length: 6, Digits: true},
			wantErr: nil,
		},
		{
			name:    "symbols only",
			policy:  models.PasswordPolicy{Length: 16, Symbols: true},
			wantErr: nil,
		},
		{
			name:    "minimum length",
			policy:  models.PasswordPolicy{Length: models.MinPasswordLength, Lower: true},
			wantErr: nil,
		},
		{
			name:    "maximum length",
			policy:  models.PasswordPolicy{Length: models.MaxPasswordLength, Upper: true, Lower: true},
			wantErr: nil,
		},
		{
			name:    "zero length",
			policy:  models.PasswordPolicy{Length: 0, Upper: true},
			wantErr: ErrInvalidPolicy,
		},
		{
			name:    "length above maximum",
			policy:  models.PasswordPolicy{Length: 73, Upper: true},
			wantErr: ErrInvalidPolicy,
		},
		{
			name:    "negative length",
			policy:  models.PasswordPolicy{Length: -1, Upper: true},
			wantErr: ErrInvalidPolicy,
		},
		{
			name:    "no character classes enabled",
			policy:  models.PasswordPolicy{Length: 16},
			wantErr: ErrInvalidPolicy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Generate(tt.policy)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Generate() error = %v, want %v", err, tt.wantErr)
				}
				if result != "" {
					t.Error("Generate() should return empty string on error")
				}
				return
			}

			if err != nil {
				t.Fatalf("Generate() unexpected error: %v", err)
			}
			if len(result) != tt.policy.Length {
				t.Errorf("Generate() length = %d, want %d", len(result), tt.policy.Length)
			}
		})
	}
}

func TestGenerateUsesOnlyEnabledClasses(t *testing.T) {
	tests := []struct {
		name     string
		policy   models.PasswordPolicy
		alphabet string
	}{
		{
			name:     "uppercase only",
			policy:   models.PasswordPolicy{Length: 32, Upper: true},
			alphabet: models.UppercaseChars,
		},
		{
			name:     "lowercase only",
			policy:   models.PasswordPolicy{Length: 32, Lower: true},
			alphabet: models.LowercaseChars,
		},
		{
			name:     "digits only",
			policy:   models.PasswordPolicy{Length: 32, Digits: true},
			alphabet: models.DigitChars,
		},
		{
			name:     "symbols only",
			policy:   models.PasswordPolicy{Length: 32, Symbols: true},
			alphabet: models.SymbolChars,
		},
		{
			name:     "letters and digits",
			policy:   models.PasswordPolicy{Length: 32, Upper: true, Lower: true, Digits: true},
			alphabet: models.UppercaseChars + models.LowercaseChars + models.DigitChars,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			password, err := Generate(tt.policy)
			if err != nil {
				t.Fatalf("Generate() unexpected error: %v", err)
			}
			for _, ch := range password {
				if !strings.ContainsRune(tt.alphabet, ch) {
					t.Errorf("password contains unexpected character %q (not in %q)", string(ch), tt.alphabet)
				}
			}
		})
	}
}

// A policy with symbols disabled must never emit a symbol, no matter how
// often generation runs.
func TestGenerateTwelveCharsNoSymbols(t *testing.T) {
	policy := models.PasswordPolicy{Length: 12, Upper: true, Lower: true, Digits: true, Symbols: false}

	for i := 0; i < 50; i++ {
		password, err := Generate(policy)
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}
		if len(password) != 12 {
			t.Fatalf("Generate() length = %d, want 12", len(password))
		}
		if strings.ContainsAny(password, models.SymbolChars) {
			t.Errorf("password %q contains a symbol although symbols are disabled", password)
		}
	}
}

func TestGenerateProducesUniquePasswords(t *testing.T) {
	policy := models.DefaultPolicy()
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		password, err := Generate(policy)
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}
		if seen[password] {
			t.Errorf("duplicate password generated: %q", password)
		}
		seen[password] = true
	}
}

package models

// Character classes available to the password generator. A policy enables
// any subset of them; the generation alphabet is the union of the enabled
// classes.
const (
	UppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	LowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	DigitChars     = "0123456789"
	SymbolChars    = "!@#$%^&*"
)

// Password length bounds accepted by a [PasswordPolicy].
const (
	MinPasswordLength = 1
	MaxPasswordLength = 72
)

// PasswordPolicy describes the shape of a password to generate: how long it
// must be and which character classes may appear in it.
type PasswordPolicy struct {
	// Length is the exact number of characters to generate.
	// Must lie in [MinPasswordLength, MaxPasswordLength].
	Length int `json:"length"`

	// Upper enables uppercase latin letters (A-Z).
	Upper bool `json:"upper"`

	// Lower enables lowercase latin letters (a-z).
	Lower bool `json:"lower"`

	// Digits enables decimal digits (0-9).
	Digits bool `json:"digits"`

	// Symbols enables the fixed symbol set [SymbolChars].
	Symbols bool `json:"symbols"`
}

// DefaultPolicy returns the policy used when the caller does not ask for
// anything specific: 12 characters with every character class enabled.
func DefaultPolicy() PasswordPolicy {
	return PasswordPolicy{
		Length:  12,
		Upper:   true,
		Lower:   true,
		Digits:  true,
		Symbols: true,
	}
}

// Alphabet returns the union of the enabled character classes. The result
// is empty when no class is enabled; rejecting that case is the
// generator's job, not the policy's.
func (p PasswordPolicy) Alphabet() string {
	var alphabet string
	if p.Upper {
		alphabet += UppercaseChars
	}
	if p.Lower {
		alphabet += LowercaseChars
	}
	if p.Digits {
		alphabet += DigitChars
	}
	if p.Symbols {
		alphabet += SymbolChars
	}
	return alphabet
}

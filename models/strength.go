package models

// Strength scores on the zxcvbn 0-4 scale.
const (
	StrengthVeryWeak   = 0
	StrengthWeak       = 1
	StrengthModerate   = 2
	StrengthStrong     = 3
	StrengthVeryStrong = 4
)

// StrengthReport is the result of scoring a password. It is derived purely
// from the password string and is never persisted.
type StrengthReport struct {
	// Score is the 0-4 strength rating: 0 means instantly crackable,
	// 4 means safe even against an offline attack.
	Score int `json:"score"`

	// Warnings name specific weaknesses found in the password
	// (dictionary words, keyboard runs, repeats and so on).
	Warnings []string `json:"warnings,omitempty"`

	// Suggestions tell the user how to improve the password.
	Suggestions []string `json:"suggestions,omitempty"`

	// CrackTime is a human-readable estimate of how long an offline
	// attack would need (e.g. "instant", "centuries").
	CrackTime string `json:"crack_time,omitempty"`
}

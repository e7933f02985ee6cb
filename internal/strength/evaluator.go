// Package strength scores passwords on the zxcvbn 0-4 scale and turns the
// raw estimator output into user-facing warnings and suggestions.
//
// The actual estimation (dictionary lookups, keyboard patterns, sequences,
// entropy math) is delegated to the zxcvbn-go port of Dropbox's zxcvbn
// algorithm; this package only shapes its result into a
// [models.StrengthReport].
package strength

import (
	"strings"

	zxcvbn "github.com/nbutton23/zxcvbn-go"
	"github.com/nbutton23/zxcvbn-go/scoring"

	"github.com/MKhiriev/go-pass-vault/models"
)

// Evaluate scores password and reports its weaknesses. The result is
// deterministic: the same input always yields the same report for a fixed
// dictionary version.
//
// An empty password short-circuits to score 0 with a single warning; the
// estimator is never consulted for it.
func Evaluate(password string) models.StrengthReport {
	if password == "" {
		return models.StrengthReport{
			Score:    models.StrengthVeryWeak,
			Warnings: []string{"empty password"},
		}
	}

	result := zxcvbn.PasswordStrength(password, nil)

	return models.StrengthReport{
		Score:       result.Score,
		Warnings:    warningsFor(result),
		Suggestions: suggestionsFor(result),
		CrackTime:   result.CrackTimeDisplay,
	}
}

// warningsFor names the concrete patterns the estimator found. Bruteforce
// segments carry no information worth warning about, so they are skipped.
func warningsFor(result scoring.MinEntropyMatch) []string {
	var warnings []string
	for _, m := range result.MatchSequence {
		switch {
		case m.Pattern == "dictionary" && len(m.Token) == len(result.Password):
			warnings = append(warnings, "this is a commonly used password")
		case m.Pattern == "dictionary":
			warnings = append(warnings, "contains a dictionary word")
		case m.Pattern == "spatial":
			warnings = append(warnings, "straight rows of keys are easy to guess")
		case m.Pattern == "repeat":
			warnings = append(warnings, `repeats like "aaa" are easy to guess`)
		case m.Pattern == "sequence":
			warnings = append(warnings, `sequences like "abc" are easy to guess`)
		case strings.HasPrefix(m.Pattern, "date"):
			warnings = append(warnings, "dates are easy to guess")
		}
	}
	return dedupe(warnings)
}

// suggestionsFor turns the score into advice. Strong passwords get none.
func suggestionsFor(result scoring.MinEntropyMatch) []string {
	if result.Score >= models.StrengthStrong {
		return nil
	}

	suggestions := []string{"add another word or two; uncommon words are better"}
	if result.Score <= models.StrengthWeak {
		suggestions = append(suggestions, "avoid common words, names and predictable patterns")
	}
	if len(result.Password) < 12 {
		suggestions = append(suggestions, "use at least 12 characters")
	}
	return suggestions
}

func dedupe(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(values))
	out := values[:0]
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

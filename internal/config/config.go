// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-pass-vault application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Storage holds the locations of the two on-disk artifacts: the
	// encrypted vault file and the key file.
	Storage Storage `envPrefix:"STORAGE_"`

	// Generator holds defaults for password generation.
	Generator Generator `envPrefix:"GENERATOR_"`

	// Workers holds configuration for client-side background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Shown in the client footer.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the on-disk artifact locations. The vault file and the
// key file are deliberately two independent paths: the key must live
// separately from the data it decrypts.
type Storage struct {
	// Vault holds the encrypted vault file settings.
	Vault Vault `envPrefix:"VAULT_"`

	// Key holds the key file settings.
	Key Key `envPrefix:"KEY_"`
}

// Vault holds the encrypted vault file settings.
type Vault struct {
	// Path is the vault file location.
	// Env: STORAGE_VAULT_PATH
	Path string `env:"PATH"`
}

// Key holds the key file settings.
type Key struct {
	// Path is the key file location.
	// Env: STORAGE_KEY_PATH
	Path string `env:"PATH"`
}

// Generator holds defaults for password generation. Character classes are
// chosen interactively per generation; only the length has a configurable
// default.
type Generator struct {
	// Length is the default generated password length. Zero means "use
	// the built-in default" (12).
	// Env: GENERATOR_LENGTH
	Length int `env:"LENGTH"`
}

// Workers holds configuration for client-side background jobs.
type Workers struct {
	// ClipboardTTL defines how long a copied password stays on the
	// clipboard before the sweeper clears it (e.g. "30s"). Zero disables
	// the sweeper.
	// Env: WORKERS_CLIPBOARD_TTL
	ClipboardTTL time.Duration `env:"CLIPBOARD_TTL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (an earlier source wins for any field it sets):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}

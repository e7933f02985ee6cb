// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "github.com/MKhiriev/go-pass-vault/models"

// validate checks the merged [StructuredConfig] before it is used at
// startup. Empty paths are allowed here: defaults are applied when the
// client view is built.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Generator.Length != 0 &&
		(cfg.Generator.Length < models.MinPasswordLength || cfg.Generator.Length > models.MaxPasswordLength) {
		return ErrInvalidGeneratorConfigs
	}

	if cfg.Workers.ClipboardTTL < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.VaultPath == "" || cfg.Storage.KeyPath == "" {
		return ErrInvalidStorageConfigs
	}

	// Writing the key next to the data it protects defeats the split; the
	// two artifacts must at least be distinct files.
	if cfg.Storage.VaultPath == cfg.Storage.KeyPath {
		return ErrInvalidStorageConfigs
	}

	if cfg.Generator.DefaultLength < models.MinPasswordLength || cfg.Generator.DefaultLength > models.MaxPasswordLength {
		return ErrInvalidGeneratorConfigs
	}

	return nil
}

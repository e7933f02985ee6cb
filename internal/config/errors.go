package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty vault or key file path, or both pointing at
	// the same file).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidGeneratorConfigs indicates invalid generator settings
	// (for example, a default length outside the accepted bounds).
	ErrInvalidGeneratorConfigs = errors.New("invalid generator configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a negative clipboard TTL).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)

package config

import (
	"fmt"
	"time"
)

// Defaults applied when neither environment, flags, nor the JSON file set
// a value.
const (
	// DefaultVaultPath is the vault file location used when none is
	// configured.
	DefaultVaultPath = "vault.enc"
	// DefaultKeyPath is the key file location used when none is
	// configured.
	DefaultKeyPath = "vault.key"
	// DefaultClipboardTTL is how long a copied password stays on the
	// clipboard before the sweeper clears it.
	DefaultClipboardTTL = 30 * time.Second
	// defaultGeneratorLength matches models.DefaultPolicy().
	defaultGeneratorLength = 12
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// Version is the application version shown in the client footer.
	Version string
}

// ClientStorage holds the resolved on-disk artifact locations.
type ClientStorage struct {
	// VaultPath is the encrypted vault file location.
	VaultPath string
	// KeyPath is the key file location.
	KeyPath string
}

// ClientGenerator holds resolved generator defaults.
type ClientGenerator struct {
	// DefaultLength is the password length used when the user does not
	// pick one.
	DefaultLength int
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// ClipboardTTL defines how long a copied password survives on the
	// clipboard. Zero disables the sweeper.
	ClipboardTTL time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig], with defaults applied.
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Storage contains the vault and key file locations.
	Storage ClientStorage
	// Generator contains password generation defaults.
	Generator ClientGenerator
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates the client config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], fills in defaults
// for everything left unset, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

// newClientConfig maps a merged [StructuredConfig] onto the client view.
// Split out from [GetClientConfig] so tests can skip the process-global
// sources.
func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		App: ClientApp{
			Version: cfg.App.Version,
		},
		Storage: ClientStorage{
			VaultPath: cfg.Storage.Vault.Path,
			KeyPath:   cfg.Storage.Key.Path,
		},
		Generator: ClientGenerator{
			DefaultLength: cfg.Generator.Length,
		},
		Workers: ClientWorkers{
			ClipboardTTL: cfg.Workers.ClipboardTTL,
		},
	}

	if clientCfg.Storage.VaultPath == "" {
		clientCfg.Storage.VaultPath = DefaultVaultPath
	}
	if clientCfg.Storage.KeyPath == "" {
		clientCfg.Storage.KeyPath = DefaultKeyPath
	}
	if clientCfg.Generator.DefaultLength == 0 {
		clientCfg.Generator.DefaultLength = defaultGeneratorLength
	}
	if clientCfg.Workers.ClipboardTTL == 0 {
		clientCfg.Workers.ClipboardTTL = DefaultClipboardTTL
	}

	if err := clientCfg.validate(); err != nil {
		return nil, fmt.Errorf("error validating client config: %w", err)
	}

	return clientCfg, nil
}

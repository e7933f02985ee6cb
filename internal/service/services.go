package service

import (
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/vault"
)

type Services struct {
	GeneratorService GeneratorService
	StrengthService  StrengthService
	VaultService     VaultService
}

func NewServices(cfg *config.ClientConfig, log *logger.Logger) *Services {
	keychain := crypto.NewKeyChainService()
	codec := vault.NewCodec(keychain)

	return &Services{
		GeneratorService: NewGeneratorService(cfg.Generator.DefaultLength),
		StrengthService:  NewStrengthService(),
		VaultService:     NewVaultService(keychain, codec, cfg.Storage.VaultPath, cfg.Storage.KeyPath, log),
	}
}

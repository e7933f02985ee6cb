package service

import (
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/generator"
	"github.com/MKhiriev/go-pass-vault/models"
)

type generatorService struct {
	defaultLength int
}

func NewGeneratorService(defaultLength int) GeneratorService {
	if defaultLength == 0 {
		defaultLength = models.DefaultPolicy().Length
	}

	return &generatorService{defaultLength: defaultLength}
}

func (g *generatorService) Generate(policy models.PasswordPolicy) (string, error) {
	password, err := generator.Generate(policy)
	if err != nil {
		return "", fmt.Errorf("generate password: %w", err)
	}

	return password, nil
}

func (g *generatorService) DefaultPolicy() models.PasswordPolicy {
	policy := models.DefaultPolicy()
	policy.Length = g.defaultLength

	return policy
}

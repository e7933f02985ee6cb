package service

import (
	"github.com/MKhiriev/go-pass-vault/internal/strength"
	"github.com/MKhiriev/go-pass-vault/models"
)

type strengthService struct{}

func NewStrengthService() StrengthService {
	return &strengthService{}
}

func (s *strengthService) Evaluate(password string) models.StrengthReport {
	return strength.Evaluate(password)
}

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/generator"
	"github.com/MKhiriev/go-pass-vault/models"
)

func TestGeneratorService_Generate(t *testing.T) {
	t.Run("generates with default policy", func(t *testing.T) {
		// Arrange
		svc := NewGeneratorService(0)

		// Act
		password, err := svc.Generate(svc.DefaultPolicy())

		// Assert
		require.NoError(t, err)
		assert.Len(t, password, models.DefaultPolicy().Length)
	})

	t.Run("invalid policy is passed through", func(t *testing.T) {
		// Arrange
		svc := NewGeneratorService(0)

		// Act
		_, err := svc.Generate(models.PasswordPolicy{Length: 10})

		// Assert
		assert.ErrorIs(t, err, generator.ErrInvalidPolicy)
	})
}

func TestGeneratorService_DefaultPolicy(t *testing.T) {
	t.Run("applies configured length", func(t *testing.T) {
		// Arrange
		svc := NewGeneratorService(20)

		// Act
		policy := svc.DefaultPolicy()

		// Assert
		assert.Equal(t, 20, policy.Length)
		assert.True(t, policy.Upper)
		assert.True(t, policy.Lower)
		assert.True(t, policy.Digits)
		assert.True(t, policy.Symbols)
	})

	t.Run("zero falls back to the built-in default", func(t *testing.T) {
		// Arrange
		svc := NewGeneratorService(0)

		// Act
		policy := svc.DefaultPolicy()

		// Assert
		assert.Equal(t, models.DefaultPolicy().Length, policy.Length)
	})
}

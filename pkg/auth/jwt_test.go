package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	svc, err := NewJWTService(JWTConfig{
		Secret:     "test-secret",
		Issuer:     "miriesgo",
		Expiration: time.Hour,
	})
	require.NoError(t, err)

	token, err := svc.GenerateToken(42, 7, []string{RoleAnalyst})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, int64(7), claims.CompanyID)
	assert.True(t, claims.HasRole(RoleAnalyst))
	assert.False(t, claims.HasRole(RoleAdmin))
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	issuer, err := NewJWTService(JWTConfig{Secret: "secret-a", Issuer: "miriesgo"})
	require.NoError(t, err)
	validator, err := NewJWTService(JWTConfig{Secret: "secret-b", Issuer: "miriesgo"})
	require.NoError(t, err)

	token, err := issuer.GenerateToken(1, 0, []string{RoleAdmin})
	require.NoError(t, err)

	_, err = validator.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsWrongIssuer(t *testing.T) {
	issuer, err := NewJWTService(JWTConfig{Secret: "shared", Issuer: "someone-else"})
	require.NoError(t, err)
	validator, err := NewJWTService(JWTConfig{Secret: "shared", Issuer: "miriesgo"})
	require.NoError(t, err)

	token, err := issuer.GenerateToken(1, 0, nil)
	require.NoError(t, err)

	_, err = validator.ValidateToken(token)
	assert.Error(t, err)
}

func TestNewJWTServiceRequiresSecret(t *testing.T) {
	_, err := NewJWTService(JWTConfig{})
	assert.Error(t, err)
}

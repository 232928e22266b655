package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewService(t *testing.T) {
	secretKey := "test-secret-key"
	service := NewService(secretKey)

	assert.NotNil(t, service)
	assert.Equal(t, []byte(secretKey), service.secretKey)
}

func TestGenerateAccessToken(t *testing.T) {
	service := NewService("test-secret-key")

	token, err := service.GenerateAccessToken(1, "admin@test.com", "Admin")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestValidateToken(t *testing.T) {
	service := NewService("test-secret-key")

	token, err := service.GenerateAccessToken(42, "ana@test.com", "Ana")
	assert.NoError(t, err)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "ana@test.com", claims.Email)
	assert.Equal(t, "Ana", claims.Name)
}

func TestValidateToken_InvalidToken(t *testing.T) {
	service := NewService("test-secret-key")

	_, err := service.ValidateToken("invalid-token")
	assert.Error(t, err)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	service1 := NewService("secret-key-1")
	service2 := NewService("secret-key-2")

	token, err := service1.GenerateAccessToken(1, "a@test.com", "A")
	assert.NoError(t, err)

	_, err = service2.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_EmptyToken(t *testing.T) {
	service := NewService("test-secret-key")

	_, err := service.ValidateToken("")
	assert.Error(t, err)
}

func TestRefreshToken_LongerLived(t *testing.T) {
	service := NewService("test-secret-key")

	access, err := service.GenerateAccessToken(1, "a@test.com", "A")
	assert.NoError(t, err)
	refresh, err := service.GenerateRefreshToken(1, "a@test.com", "A")
	assert.NoError(t, err)

	accessClaims, err := service.ValidateToken(access)
	assert.NoError(t, err)
	refreshClaims, err := service.ValidateToken(refresh)
	assert.NoError(t, err)

	assert.True(t, refreshClaims.ExpiresAt.Time.After(accessClaims.ExpiresAt.Time))
	assert.True(t, time.Now().Before(accessClaims.ExpiresAt.Time))
}

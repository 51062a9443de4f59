package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hushryd/tracking-service/internal/pkg/models"
)

func testJWTConfig() models.JWTConfig {
	return models.JWTConfig{
		Secret:            "test-secret",
		Issuer:            "tracking-service",
		ExpirationMinutes: 60,
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	cfg := testJWTConfig()

	token, expiresAt, err := GenerateToken("user-1", "driver", cfg)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, expiresAt, int64(0))

	claims, err := ValidateToken(token, cfg.Secret)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "driver", claims.Role)
	assert.Equal(t, "tracking-service", claims.Issuer)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, _, err := GenerateToken("user-1", "driver", testJWTConfig())
	require.NoError(t, err)

	_, err = ValidateToken(token, "some-other-secret")
	assert.Error(t, err)
}

func TestValidateTokenExpired(t *testing.T) {
	cfg := testJWTConfig()
	cfg.ExpirationMinutes = -5

	token, _, err := GenerateToken("user-1", "passenger", cfg)
	require.NoError(t, err)

	_, err = ValidateToken(token, cfg.Secret)
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	_, err := ValidateToken("not-a-token", "test-secret")
	assert.Error(t, err)
}

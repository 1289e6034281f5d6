package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("farmer123")
	require.NoError(t, err)
	assert.NotEqual(t, "farmer123", hash)

	assert.True(t, CheckPasswordHash("farmer123", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestGenerateAndParseToken(t *testing.T) {
	Init("test-secret", time.Hour)

	token, err := GenerateJWT("1", "farmer@demo.com", "farmer", "John Agritech")
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "1", claims.ID)
	assert.Equal(t, "farmer@demo.com", claims.Email)
	assert.Equal(t, "farmer", claims.Role)
	assert.Equal(t, "John Agritech", claims.Name)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	Init("test-secret", time.Millisecond)

	token, err := GenerateJWT("1", "farmer@demo.com", "farmer", "John Agritech")
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenRejectsUnexpectedAlgorithm(t *testing.T) {
	Init("test-secret", time.Hour)

	claims := &JWTClaims{
		ID: "1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS384, claims).SignedString(jwtSecret)
	require.NoError(t, err)

	_, err = ParseToken(signed)
	assert.Error(t, err)
}

func TestParseTokenRejectsTampered(t *testing.T) {
	Init("test-secret", time.Hour)

	token, err := GenerateJWT("1", "farmer@demo.com", "farmer", "John Agritech")
	require.NoError(t, err)

	_, err = ParseToken(token + "x")
	assert.Error(t, err)
}

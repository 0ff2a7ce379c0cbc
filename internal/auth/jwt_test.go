package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestGenerateAndParseJWT(t *testing.T) {
	userID := uuid.New()
	token, err := GenerateJWT(testSecret, userID, "admin", time.Minute)
	require.NoError(t, err)

	claims, err := ParseJWT(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "opsdesk", claims.Issuer)
}

func TestParseJWT_WrongSecret(t *testing.T) {
	token, err := GenerateJWT(testSecret, uuid.New(), "admin", time.Minute)
	require.NoError(t, err)

	_, err = ParseJWT("other-secret", token)
	assert.Error(t, err)
}

func TestParseJWT_Expired(t *testing.T) {
	claims := Claims{
		UserID: uuid.New(),
		Role:   "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = ParseJWT(testSecret, token)
	assert.Error(t, err)
}

func TestParseJWT_MissingUserID(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{Role: "admin"}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = ParseJWT(testSecret, token)
	assert.Error(t, err)
}

func TestParseJWT_RejectsNoneAlg(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: uuid.New()}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ParseJWT(testSecret, token)
	assert.Error(t, err)
}

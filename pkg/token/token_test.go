package token

import (
	"strconv"
	"testing"
	"time"

	"charlies_odds_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")
	user := &model.User{ID: 42, IsAdmin: true}

	tokenStr, err := GenerateAccessToken(user, secret, time.Minute)
	require.NoError(t, err)

	claims, err := VerifyToken(tokenStr, secret)
	require.NoError(t, err)

	assert.Equal(t, strconv.Itoa(42), claims.ID)
	assert.True(t, claims.IsAdmin)
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	tokenStr, err := GenerateAccessToken(&model.User{ID: 1}, []byte("secret-a"), time.Minute)
	require.NoError(t, err)

	_, err = VerifyToken(tokenStr, []byte("secret-b"))
	assert.Error(t, err)
}

func TestVerifyTokenExpired(t *testing.T) {
	secret := []byte("test-secret")
	tokenStr, err := GenerateAccessToken(&model.User{ID: 1}, secret, -time.Minute)
	require.NoError(t, err)

	_, err = VerifyToken(tokenStr, secret)
	assert.Error(t, err)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	tok, err := GenerateRefreshToken()
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	hash := HashRefreshToken(tok)
	assert.True(t, VerifyRefreshToken(tok, hash))
	assert.False(t, VerifyRefreshToken("another", hash))

	// Токены уникальны
	tok2, err := GenerateRefreshToken()
	require.NoError(t, err)
	assert.NotEqual(t, tok, tok2)
}

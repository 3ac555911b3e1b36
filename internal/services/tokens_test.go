package services

import (
	"testing"
	"time"

	"photomarket/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManagerRoundTrip(t *testing.T) {
	m, err := NewTokenManager("test-secret", time.Hour)
	require.NoError(t, err)

	id := uuid.New()
	token, err := m.GenerateAccessToken(id, "a@b.c", models.RolePhotographer)
	require.NoError(t, err)

	claims, err := m.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, id.String(), claims.UserID)
	assert.Equal(t, "a@b.c", claims.Email)
	assert.Equal(t, models.RolePhotographer, claims.Role)
}

func TestTokenManagerRejects(t *testing.T) {
	m, err := NewTokenManager("test-secret", time.Hour)
	require.NoError(t, err)
	other, err := NewTokenManager("other-secret", time.Hour)
	require.NoError(t, err)
	expired, err := NewTokenManager("test-secret", -time.Minute)
	require.NoError(t, err)

	foreign, err := other.GenerateAccessToken(uuid.New(), "a@b.c", models.RoleClient)
	require.NoError(t, err)
	stale, err := expired.GenerateAccessToken(uuid.New(), "a@b.c", models.RoleClient)
	require.NoError(t, err)

	for name, token := range map[string]string{
		"garbage":   "not-a-token",
		"wrong key":  foreign,
		"expired":   stale,
		"empty":     "",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := m.ValidateAccessToken(token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestNewTokenManagerRequiresSecret(t *testing.T) {
	_, err := NewTokenManager("", time.Hour)
	assert.Error(t, err)
}

func TestNewRefreshTokenIsRandom(t *testing.T) {
	a, err := NewRefreshToken()
	require.NoError(t, err)
	b, err := NewRefreshToken()
	require.NoError(t, err)
	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)
}

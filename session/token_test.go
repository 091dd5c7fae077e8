package session_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jrsteele09/parkctl/session"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestInspectTokenReadsClaims(t *testing.T) {
	expiry := time.Now().Add(time.Hour).Truncate(time.Second)
	raw := signedToken(t, jwt.MapClaims{
		"sub": "jdoe",
		"exp": expiry.Unix(),
	})

	info, err := session.InspectToken(raw)
	require.NoError(t, err)
	assert.Equal(t, "jdoe", info.Subject)
	assert.True(t, info.ExpiresAt.Equal(expiry))
	assert.False(t, info.Expired())
}

func TestInspectTokenExpired(t *testing.T) {
	raw := signedToken(t, jwt.MapClaims{
		"sub": "jdoe",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	info, err := session.InspectToken(raw)
	require.NoError(t, err)
	assert.True(t, info.Expired())
}

func TestInspectTokenWithoutExpiryNeverExpires(t *testing.T) {
	raw := signedToken(t, jwt.MapClaims{"sub": "jdoe"})

	info, err := session.InspectToken(raw)
	require.NoError(t, err)
	assert.True(t, info.ExpiresAt.IsZero())
	assert.False(t, info.Expired())
}

func TestInspectTokenRejectsOpaqueTokens(t *testing.T) {
	_, err := session.InspectToken("not-a-jwt")
	require.Error(t, err)
}

package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	token, err := GenerateSessionToken("sess-123", time.Hour)
	require.NoError(t, err)

	sessionID, err := ExtractSessionID(token)
	require.NoError(t, err)
	assert.Equal(t, "sess-123", sessionID)
}

func TestExtractSessionID_RejectsGarbage(t *testing.T) {
	_, err := ExtractSessionID("not-a-token")
	assert.Error(t, err)
}

func TestExtractSessionID_RejectsExpired(t *testing.T) {
	token, err := GenerateSessionToken("sess-123", -time.Minute)
	require.NoError(t, err)

	_, err = ExtractSessionID(token)
	assert.Error(t, err)
}

func TestDecodeClaims(t *testing.T) {
	// Token signed with a key this gateway does not know: claims must still
	// be readable.
	foreign := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   "user-9",
		"email": "user@example.com",
	})
	signed, err := foreign.SignedString([]byte("some-upstream-secret"))
	require.NoError(t, err)

	claims, err := DecodeClaims(signed)
	require.NoError(t, err)
	assert.Equal(t, "user-9", claims["sub"])
	assert.Equal(t, "user@example.com", claims["email"])
}

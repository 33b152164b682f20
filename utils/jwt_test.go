package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGenerateAndExtractClaims(t *testing.T) {
	token, err := GenerateToken("user-123", "admin", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, role, err := ExtractClaims(token)
	require.NoError(t, err)
	require.Equal(t, "user-123", subject)
	require.Equal(t, "admin", role)
}

func TestExtractClaimsRejectsExpiredToken(t *testing.T) {
	token, err := GenerateToken("user-123", "user", -time.Minute)
	require.NoError(t, err)

	_, _, err = ExtractClaims(token)
	require.Error(t, err)
}

func TestExtractClaimsRejectsTamperedToken(t *testing.T) {
	token, err := GenerateToken("user-123", "user", time.Hour)
	require.NoError(t, err)

	_, _, err = ExtractClaims(token + "x")
	require.Error(t, err)
}

func TestHashTokenIsStable(t *testing.T) {
	require.Equal(t, HashToken("abc"), HashToken("abc"))
	require.NotEqual(t, HashToken("abc"), HashToken("abd"))
	require.Len(t, HashToken("abc"), 64)
}

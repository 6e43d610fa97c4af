package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(7, "agent@example.com", "Agent Smith")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "agent@example.com", claims.Email)
	assert.Equal(t, "Agent Smith", claims.Name)
}

func TestValidateTokenGarbage(t *testing.T) {
	_, err := ValidateToken("not-a-token")
	assert.Error(t, err)
}

// JWT_SECRET set after process start (e.g. by godotenv in main) must be the
// signing key, not the dev fallback baked in at init.
func TestSecretPickedUpAfterInit(t *testing.T) {
	t.Setenv("JWT_SECRET", "configured-secret")

	token, err := GenerateToken(7, "agent@example.com", "Agent Smith")
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)

	// The same token must fail once the secret changes.
	t.Setenv("JWT_SECRET", "rotated-secret")
	_, err = ValidateToken(token)
	assert.Error(t, err)
}

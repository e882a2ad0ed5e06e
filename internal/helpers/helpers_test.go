package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-for-round-trip")

	token, err := GenerateToken("6cb19a4e-9f51-4f43-b4f4-4c7f0c1b6e10", "host@test.dev", "hosty", "host")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "6cb19a4e-9f51-4f43-b4f4-4c7f0c1b6e10", claims.UserID)
	assert.Equal(t, "host@test.dev", claims.Email)
	assert.Equal(t, "hosty", claims.Username)
	assert.True(t, claims.IsHost())
	assert.False(t, claims.IsAdmin())
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	t.Setenv("JWT_SECRET", "original-secret")
	token, err := GenerateToken("user-id", "a@b.c", "ab", "user")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "different-secret")
	_, err = ValidateToken(token)
	require.Error(t, err)

	t.Setenv("JWT_SECRET", "original-secret")
	_, err = ValidateToken("not.a.token")
	require.Error(t, err)
}

func TestIsPasswordStrong(t *testing.T) {
	strong := []string{"Str0ng!Pass", "C0mpl3x&Word", "aA1!aA1!"}
	for _, p := range strong {
		assert.True(t, IsPasswordStrong(p), "expected %q to pass", p)
	}

	weak := []string{"short1!", "alllowercase1!", "NOUPPER1!", "NoDigits!!", "NoSymbols11", ""}
	for _, p := range weak {
		assert.False(t, IsPasswordStrong(p), "expected %q to fail", p)
	}
}

func TestNewVerificationToken(t *testing.T) {
	a := NewVerificationToken()
	b := NewVerificationToken()
	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)
}

func TestClaimsHelpers(t *testing.T) {
	admin := &Claims{UserID: "u1", Role: "admin"}
	assert.True(t, admin.IsAdmin())
	assert.True(t, admin.HasRole("admin"))
	assert.True(t, admin.IsOwner("u1"))
	assert.False(t, admin.IsOwner("u2"))

	anon := &Claims{}
	assert.Equal(t, "guest", anon.GetSafeRole())
}

package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustIssuer(t *testing.T, secret string) *TokenIssuer {
	t.Helper()
	issuer, err := NewTokenIssuer(secret, time.Hour)
	require.NoError(t, err)
	return issuer
}

func TestTokenRoundTrip(t *testing.T) {
	issuer := mustIssuer(t, "a-test-secret-that-is-long-enough")

	token, expiresAt, err := issuer.Generate(42, "jane@example.com")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := issuer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "jane@example.com", claims.Email)
}

func TestTokenRejected(t *testing.T) {
	issuer := mustIssuer(t, "secret-one")
	other := mustIssuer(t, "secret-two")

	token, _, err := other.Generate(1, "a@b.c")
	require.NoError(t, err)
	_, err = issuer.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = issuer.Parse("garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)

	expired := mustIssuer(t, "secret-one")
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, _, err = expired.Generate(1, "a@b.c")
	require.NoError(t, err)
	_, err = issuer.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: 1})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = issuer.Parse(unsigned)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)
	assert.True(t, CheckPassword(hash, "correct horse battery staple"))
	assert.False(t, CheckPassword(hash, "wrong"))
}

func TestEmptySecretRejected(t *testing.T) {
	for _, secret := range []string{"", "   "} {
		issuer, err := NewTokenIssuer(secret, time.Hour)
		assert.ErrorIs(t, err, ErrEmptySecret)
		assert.Nil(t, issuer)
	}

	// A token signed with an empty key is never accepted by a configured issuer
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{UserID: 1}).SignedString([]byte(""))
	require.NoError(t, err)
	_, err = mustIssuer(t, "real-secret").Parse(forged)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/user/payroll-go/apperror"
)

func TestTokenService_IssueAndVerify(t *testing.T) {
	t.Parallel()

	tokens := NewTokenService(testAuthConfig())
	signed, expiresAt, err := tokens.Issue(42, "ana@example.com")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), expiresAt, 5*time.Second)

	claims, err := tokens.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, "payroll-api", claims.Issuer)
}

func TestTokenService_Expired(t *testing.T) {
	t.Parallel()

	tokens := NewTokenService(testAuthConfig())
	tokens.now = func() time.Time { return time.Now().Add(-48 * time.Hour) }
	signed, _, err := tokens.Issue(1, "ana@example.com")
	require.NoError(t, err)

	verifier := NewTokenService(testAuthConfig())
	_, err = verifier.Verify(signed)
	requireAppError(t, err, apperror.ExpiredTokenError)
}

func TestTokenService_Invalid(t *testing.T) {
	t.Parallel()

	tokens := NewTokenService(testAuthConfig())

	otherCfg := testAuthConfig()
	otherCfg.JWTSecret = "a-completely-different-secret"
	forged, _, err := NewTokenService(otherCfg).Issue(1, "ana@example.com")
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "payroll-api",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, &Claims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "payroll-api",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte(testAuthConfig().JWTSecret))
	require.NoError(t, err)

	noUser, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "payroll-api",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte(testAuthConfig().JWTSecret))
	require.NoError(t, err)

	for name, token := range map[string]string{
		"garbage":         "not-a-token",
		"wrong secret":    forged,
		"alg none":        noneToken,
		"other algorithm": hs512,
		"no user id":      noUser,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := tokens.Verify(token)
			requireAppError(t, err, apperror.InvalidTokenError)
		})
	}
}

func TestHasher(t *testing.T) {
	t.Parallel()

	hasher, err := NewHasher(bcrypt.MinCost)
	require.NoError(t, err)

	first, err := hasher.Hash("secret123")
	require.NoError(t, err)
	second, err := hasher.Hash("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "salts must differ")
	assert.True(t, hasher.Verify(first, "secret123"))
	assert.False(t, hasher.Verify(first, "secret124"))
	assert.False(t, hasher.VerifyDummy("payroll-dummy-password"))
}

package token

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

// signToken builds an HMAC-signed token for tests
func signToken(t *testing.T, secret string, claims *Claims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func testClaims(sub string) *Claims {
	return &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			Issuer:    "planner-api-test",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		Email: "user@example.com",
	}
}

func TestVerify(t *testing.T) {
	ctx := context.Background()

	t.Run("accepts a valid token", func(t *testing.T) {
		verifier := NewVerifier(Config{Secret: testSecret})
		tokenString := signToken(t, testSecret, testClaims("u1"))

		claims, err := verifier.Verify(ctx, tokenString)
		require.NoError(t, err)
		assert.Equal(t, "u1", claims.Subject)
		assert.Equal(t, "user@example.com", claims.Email)
	})

	t.Run("rejects a token signed with a different secret", func(t *testing.T) {
		verifier := NewVerifier(Config{Secret: testSecret})
		tokenString := signToken(t, "other-secret", testClaims("u1"))

		claims, err := verifier.Verify(ctx, tokenString)
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		verifier := NewVerifier(Config{Secret: testSecret})
		claims := testClaims("u1")
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
		tokenString := signToken(t, testSecret, claims)

		got, err := verifier.Verify(ctx, tokenString)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, ErrTokenExpired)
	})

	t.Run("rejects malformed input without panicking", func(t *testing.T) {
		verifier := NewVerifier(Config{Secret: testSecret})

		for _, input := range []string{"", "garbage", "a.b.c", "...."} {
			claims, err := verifier.Verify(ctx, input)
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, ErrInvalidToken)
		}
	})

	t.Run("rejects a token with the wrong issuer", func(t *testing.T) {
		verifier := NewVerifier(Config{Secret: testSecret, Issuer: "expected-issuer"})
		tokenString := signToken(t, testSecret, testClaims("u1"))

		claims, err := verifier.Verify(ctx, tokenString)
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, ErrInvalidIssuer)
	})

	t.Run("accepts a matching issuer", func(t *testing.T) {
		verifier := NewVerifier(Config{Secret: testSecret, Issuer: "planner-api-test"})
		tokenString := signToken(t, testSecret, testClaims("u1"))

		claims, err := verifier.Verify(ctx, tokenString)
		require.NoError(t, err)
		assert.Equal(t, "u1", claims.Subject)
	})

	t.Run("rejects a token without a subject", func(t *testing.T) {
		verifier := NewVerifier(Config{Secret: testSecret})
		tokenString := signToken(t, testSecret, testClaims(""))

		claims, err := verifier.Verify(ctx, tokenString)
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, ErrMissingSubject)
	})

	t.Run("rejects everything when no secret is configured", func(t *testing.T) {
		verifier := NewVerifier(Config{})
		tokenString := signToken(t, testSecret, testClaims("u1"))

		claims, err := verifier.Verify(ctx, tokenString)
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects non-HMAC signing methods", func(t *testing.T) {
		verifier := NewVerifier(Config{Secret: testSecret})

		// alg=none token with a well-formed payload
		tok := jwt.NewWithClaims(jwt.SigningMethodNone, testClaims("u1"))
		tokenString, err := tok.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		claims, err := verifier.Verify(ctx, tokenString)
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestVerifierFunc(t *testing.T) {
	called := false
	fn := VerifierFunc(func(ctx context.Context, tokenString string) (*Claims, error) {
		called = true
		assert.Equal(t, "raw-token", tokenString)
		return testClaims("u1"), nil
	})

	claims, err := fn.Verify(context.Background(), "raw-token")
	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, "u1", claims.Subject)
}

package token

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken is returned when the token is malformed or its signature is invalid
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired is returned when the token has expired
	ErrTokenExpired = errors.New("token expired")

	// ErrInvalidIssuer is returned when the token issuer is invalid
	ErrInvalidIssuer = errors.New("invalid issuer")

	// ErrMissingSubject is returned when the token carries no subject
	ErrMissingSubject = errors.New("missing subject")
)

// Claims are the decoded contents of a verified bearer token.
// Only the subject is required; everything else is informational.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
}

// Verifier validates HMAC-signed JWTs against a shared secret. Suitable for
// the trusted development deployments this service targets; a production
// deployment would verify against an issuer's published keys instead.
type Verifier struct {
	secret []byte
	issuer string
}

// Config holds configuration for Verifier
type Config struct {
	// Secret is the HMAC signing secret. Required.
	Secret string

	// Issuer, when set, must match the token's iss claim.
	Issuer string
}

// NewVerifier creates a new Verifier
func NewVerifier(config Config) *Verifier {
	return &Verifier{
		secret: []byte(config.Secret),
		issuer: config.Issuer,
	}
}

// Verify parses and validates a token string and returns its claims.
// It returns a non-nil error for every failure mode; it never panics on
// malformed input.
func (v *Verifier) Verify(ctx context.Context, tokenString string) (*Claims, error) {
	if len(v.secret) == 0 {
		return nil, fmt.Errorf("%w: verifier has no secret configured", ErrInvalidToken)
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if v.issuer != "" && claims.Issuer != v.issuer {
		return nil, fmt.Errorf("%w: expected %s, got %s", ErrInvalidIssuer, v.issuer, claims.Issuer)
	}

	if claims.Subject == "" {
		return nil, ErrMissingSubject
	}

	return claims, nil
}

// VerifierFunc adapts a plain function to the middleware's TokenVerifier interface
type VerifierFunc func(ctx context.Context, tokenString string) (*Claims, error)

// Verify calls f
func (f VerifierFunc) Verify(ctx context.Context, tokenString string) (*Claims, error) {
	return f(ctx, tokenString)
}

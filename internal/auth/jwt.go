package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/zoobzio/clockz"
)

var ErrInvalidToken = errors.New("invalid token")

// TokenVerifier checks HS256 bearer tokens against a shared secret.
type TokenVerifier struct {
	secret []byte
	issuer string
	clock  clockz.Clock
}

func NewTokenVerifier(secret, issuer string, clock clockz.Clock) *TokenVerifier {
	return &TokenVerifier{secret: []byte(secret), issuer: issuer, clock: clock}
}

// Verify parses raw and returns its claims. Tokens without a subject are rejected.
func (v *TokenVerifier) Verify(raw string) (*JWTClaims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(v.clock.Now),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	claims := &JWTClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Issue signs a token for userID. Used by local tooling and tests; production
// tokens come from the identity provider.
func (v *TokenVerifier) Issue(userID, name, email string, ttl time.Duration) (string, error) {
	now := v.clock.Now()
	claims := JWTClaims{
		DisplayName:  name,
		EmailAddress: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    v.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

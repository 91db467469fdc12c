// Package auth provides password hashing, JWT issuance and verification, and
// the bearer-token middleware that resolves the authenticated user per request.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// TokenTypeAccess marks tokens accepted by the request middleware.
	TokenTypeAccess = "access"
	// TokenTypeRefresh marks long-lived tokens used only to obtain new pairs.
	TokenTypeRefresh = "refresh"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("invalid token")
)

// Claims are the JWT claims carried by both access and refresh tokens.
type Claims struct {
	Type string `json:"type"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies HS256 token pairs.
type TokenIssuer struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewTokenIssuer creates a TokenIssuer with the given signing secret and
// token lifetimes.
func NewTokenIssuer(secret string, accessTTL, refreshTTL time.Duration) *TokenIssuer {
	return &TokenIssuer{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// AccessTTL returns the configured access token lifetime.
func (i *TokenIssuer) AccessTTL() time.Duration { return i.accessTTL }

// AccessToken issues a signed access token for the user.
func (i *TokenIssuer) AccessToken(userID uuid.UUID) (string, error) {
	return i.sign(userID, TokenTypeAccess, i.accessTTL, "")
}

// RefreshToken issues a signed refresh token for the user. Each refresh token
// carries a unique jti so individual tokens can be distinguished.
func (i *TokenIssuer) RefreshToken(userID uuid.UUID) (string, error) {
	return i.sign(userID, TokenTypeRefresh, i.refreshTTL, uuid.NewString())
}

func (i *TokenIssuer) sign(userID uuid.UUID, tokenType string, ttl time.Duration, jti string) (string, error) {
	now := time.Now()
	claims := Claims{
		Type: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        jti,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign %s token: %w", tokenType, err)
	}
	return signed, nil
}

// Parse verifies a token's signature and expiry and returns its claims.
func (i *TokenIssuer) Parse(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

// UserID parses the claims subject as a UUID.
func (c *Claims) UserID() (uuid.UUID, error) {
	id, err := uuid.Parse(c.Subject)
	if err != nil {
		return uuid.Nil, ErrTokenInvalid
	}
	return id, nil
}

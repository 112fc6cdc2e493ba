package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken   = errors.New("invalid or expired token")
	ErrMissingSubject = errors.New("token has no user id claim")
)

// TokenClaims is the payload embedded in access tokens.
type TokenClaims struct {
	UserID uint64 `json:"user_id"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed, time-limited access tokens.
// Secret and algorithm are fixed at construction; rotating the secret
// invalidates every outstanding token. There is no revocation.
type TokenService struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
}

// NewTokenService creates a TokenService for the given symmetric secret
// and algorithm name (HS256, HS384 or HS512).
func NewTokenService(secret, algorithm string, ttl time.Duration) (*TokenService, error) {
	method, ok := signingMethods[algorithm]
	if !ok {
		return nil, fmt.Errorf("unsupported token algorithm: %s", algorithm)
	}

	return &TokenService{
		secret: []byte(secret),
		method: method,
		ttl:    ttl,
	}, nil
}

var signingMethods = map[string]jwt.SigningMethod{
	"HS256": jwt.SigningMethodHS256,
	"HS384": jwt.SigningMethodHS384,
	"HS512": jwt.SigningMethodHS512,
}

// Issue creates a signed token for the user, expiring after the
// configured TTL.
func (s *TokenService) Issue(userID uint64) (string, error) {
	now := time.Now()
	claims := TokenClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(s.method, claims)
	return token.SignedString(s.secret)
}

// Verify checks the token's signature and expiry and returns the
// embedded user ID. Whether that ID still maps to a live user is the
// caller's problem.
func (s *TokenService) Verify(tokenString string) (uint64, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != s.method.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %s", t.Method.Alg())
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{s.method.Alg()}))
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	if claims.UserID == 0 {
		return 0, ErrMissingSubject
	}

	return claims.UserID, nil
}

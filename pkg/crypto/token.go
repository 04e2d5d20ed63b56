package crypto

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token errors
var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// TokenTTL is the fixed lifetime of an auth token. The auth cookie's
// MaxAge is aligned to this value.
const TokenTTL = time.Hour

// hmacMethods is the explicit algorithm allow-list. Exactly one entry:
// verification rejects any token whose header names a different
// algorithm, which closes the algorithm-confusion class of attacks.
var hmacMethods = []string{jwt.SigningMethodHS256.Alg()}

// NowFunc returns the current time. It can be overridden in tests.
var NowFunc = time.Now

// AuthClaims are the claims embedded in an auth token: the owning user,
// the server-side session record, and the email snapshot at issuance.
type AuthClaims struct {
	jwt.RegisteredClaims
	UserID    int64  `json:"uid"`
	SessionID string `json:"sid"`
	Email     string `json:"email"`
}

// IssueToken mints a signed HS256 token for the given identity with a
// fixed TokenTTL lifetime.
func IssueToken(userID int64, sessionID, email string, secret []byte) (string, error) {
	now := NowFunc()
	claims := AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
			ID:        uuid.New().String(),
		},
		UserID:    userID,
		SessionID: sessionID,
		Email:     email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// VerifyToken validates signature, algorithm, and expiry, and returns
// the claims. This is the only decode path authorization may use.
func VerifyToken(tokenString string, secret []byte) (*AuthClaims, error) {
	claims := &AuthClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods(hmacMethods))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// DecodeTokenUnverified reads a token's claims WITHOUT checking the
// signature or expiry. It exists solely so logout can recover a session
// id from an expired or tampered token for best-effort cleanup. Never
// use it to authorize anything.
func DecodeTokenUnverified(tokenString string) (*AuthClaims, error) {
	claims := &AuthClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

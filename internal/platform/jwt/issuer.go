package jwtmw

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// EnvKeyJWTSecret is the environment variable holding the signing secret.
const EnvKeyJWTSecret = "JWT_SECRET"

// Token lifetimes. The access token is deliberately short-lived; clients
// renew it through the refresh endpoint while the refresh token is valid.
const (
	AccessTokenTTL  = 9 * time.Minute
	RefreshTokenTTL = 7 * 24 * time.Hour
)

// ErrMissingSecret is returned when the signing secret is not configured.
// Signing must fail loudly rather than produce an unverifiable token.
var ErrMissingSecret = errors.New("jwt secret is not configured")

// Claims is the session claim set embedded in both token variants.
// It is a strict subset of the user record and never carries the
// password hash.
type Claims struct {
	UserID      uint   `json:"user_id"`
	Username    string `json:"username"`
	IsSuperuser bool   `json:"is_superuser"`
	jwt.RegisteredClaims
}

// Issuer defines the interface for session token issuance.
type Issuer interface {
	// AccessToken creates a signed short-lived token for the given user.
	AccessToken(userID uint, username string, superuser bool) (string, error)

	// RefreshToken creates a signed long-lived token for the given user.
	RefreshToken(userID uint, username string, superuser bool) (string, error)

	// Parse verifies the signature and expiry of a serialized token and
	// returns its claims.
	Parse(token string) (*Claims, error)
}

// issuer implements the Issuer interface.
type issuer struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewIssuer creates a new token issuer with the provided secret and lifetimes.
func NewIssuer(secret string, accessTTL, refreshTTL time.Duration) Issuer {
	return &issuer{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// AccessToken creates a signed JWT with the session claim set and a short expiry.
func (i *issuer) AccessToken(userID uint, username string, superuser bool) (string, error) {
	return i.sign(userID, username, superuser, i.accessTTL)
}

// RefreshToken creates a signed JWT with the session claim set and a long expiry.
func (i *issuer) RefreshToken(userID uint, username string, superuser bool) (string, error) {
	return i.sign(userID, username, superuser, i.refreshTTL)
}

func (i *issuer) sign(userID uint, username string, superuser bool, ttl time.Duration) (string, error) {
	if len(i.secret) == 0 {
		return "", ErrMissingSecret
	}

	now := time.Now()
	claims := Claims{
		UserID:      userID,
		Username:    username,
		IsSuperuser: superuser,
		RegisteredClaims: jwt.RegisteredClaims{
			// jti はログアウト時の失効リストのキーになる
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Parse verifies the token signature and expiry against the shared secret.
func (i *issuer) Parse(tokenStr string) (*Claims, error) {
	if len(i.secret) == 0 {
		return nil, ErrMissingSecret
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		// Check signing algorithm (only HMAC allowed)
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return i.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}

	return claims, nil
}

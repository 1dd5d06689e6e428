package jwtmw

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Cookie names carrying the two token variants.
const (
	AccessTokenCookie  = "accessToken"
	RefreshTokenCookie = "refreshToken"
)

// ContextPrincipal is the gin context key under which the authenticated
// principal is stored.
const ContextPrincipal = "principal"

// Principal is the authenticated identity derived from a verified
// refresh token, handed to route handlers by the session middleware.
type Principal struct {
	UserID      uint
	Username    string
	IsSuperuser bool
	// TokenID is the jti of the refresh token that authenticated this
	// request. Logout revokes it.
	TokenID string
	// ExpiresAt is the refresh token expiry, used to bound the
	// revocation entry's lifetime.
	ExpiresAt time.Time
}

// Verifier verifies a serialized token and returns its claims.
// Following Go convention: interfaces are defined by the consumer
// (middleware), not the provider (issuer).
type Verifier interface {
	Parse(token string) (*Claims, error)
}

// Denylist reports whether a refresh token id has been revoked.
type Denylist interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// Session returns a Gin middleware that derives the request principal
// from the refreshToken cookie.
//
// Absence of the cookie, a bad signature, an expired token and a
// revoked token are all treated identically: the request proceeds
// anonymously. Handlers that need a principal gate on RequireSession.
func Session(verifier Verifier, denylist Denylist) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(RefreshTokenCookie)
		if err != nil || raw == "" {
			// Cookieなし＝匿名。エラーではない
			c.Next()
			return
		}

		claims, err := verifier.Parse(raw)
		if err != nil {
			// 署名不正・期限切れは未認証として扱う
			slog.Debug("refresh token rejected", "error", err, "remote_addr", c.ClientIP())
			c.Next()
			return
		}

		if denylist != nil {
			revoked, err := denylist.IsRevoked(c.Request.Context(), claims.ID)
			if err != nil {
				slog.Error("denylist lookup failed", "error", err)
				c.Next()
				return
			}
			if revoked {
				c.Next()
				return
			}
		}

		var expiresAt time.Time
		if claims.ExpiresAt != nil {
			expiresAt = claims.ExpiresAt.Time
		}
		c.Set(ContextPrincipal, Principal{
			UserID:      claims.UserID,
			Username:    claims.Username,
			IsSuperuser: claims.IsSuperuser,
			TokenID:     claims.ID,
			ExpiresAt:   expiresAt,
		})
		c.Next()
	}
}

// RequireSession returns a Gin middleware that short-circuits the
// request with 401 when the session middleware produced no principal,
// before any handler or persistence access runs.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := PrincipalFrom(c); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "Unauthorized access"})
			return
		}
		c.Next()
	}
}

// PrincipalFrom extracts the authenticated principal set by Session.
// The second return value is false for anonymous requests.
func PrincipalFrom(c *gin.Context) (Principal, bool) {
	v, ok := c.Get(ContextPrincipal)
	if !ok {
		return Principal{}, false
	}
	p, ok := v.(Principal)
	return p, ok
}

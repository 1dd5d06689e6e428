// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"todo_backend/internal/feature/auth/domain/entity"
	"todo_backend/internal/feature/auth/transport/http/dto"
	"todo_backend/internal/feature/auth/usecase"
	jwtmw "todo_backend/internal/platform/jwt"
)

// Cookie lifetimes in seconds. The access cookie slightly outlives the
// token it carries so the client sees an expired token rather than a
// vanished cookie.
const (
	accessCookieMaxAge  = 60 * 10
	refreshCookieMaxAge = 60 * 60 * 24 * 7
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Signup は新規ユーザーを登録します。
	Signup(ctx context.Context, in usecase.SignupInput) error
	// Login はユーザーを認証し、成功時にトークンペアを返します。
	Login(ctx context.Context, username, password string) (*entity.User, usecase.TokenPair, error)
	// Refresh は新しいアクセストークンを発行します。
	Refresh(userID uint, username string, superuser bool) (string, error)
	// Logout はリフレッシュトークンを失効させます。
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error
	// Profile はプリンシパルの最新のユーザーレコードを取得します。
	Profile(ctx context.Context, userID uint) (*entity.User, error)
	// ListUsers はすべてのユーザーを返します。
	ListUsers(ctx context.Context) ([]*entity.User, error)
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
type AuthHandler struct {
	auth AuthUsecase
	// cookieSecure はSecure属性を付与するか（本番設定のみtrue）。
	cookieSecure bool
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタで、外部からAuthUsecaseを注入します。
func NewAuthHandler(auth AuthUsecase, cookieSecure bool) *AuthHandler {
	return &AuthHandler{auth: auth, cookieSecure: cookieSecure}
}

// setSessionCookies は両トークンをhttp-onlyクッキーとして設定します。
func (h *AuthHandler) setSessionCookies(c *gin.Context, pair usecase.TokenPair) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(jwtmw.AccessTokenCookie, pair.AccessToken, accessCookieMaxAge, "/", "", h.cookieSecure, true)
	c.SetCookie(jwtmw.RefreshTokenCookie, pair.RefreshToken, refreshCookieMaxAge, "/", "", h.cookieSecure, true)
}

// clearSessionCookies は両クッキーを空値・ゼロ寿命で上書きします。
// 検証はステートレスなので、これとjti失効の両方でログアウトが成立します。
func (h *AuthHandler) clearSessionCookies(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(jwtmw.AccessTokenCookie, "", -1, "/", "", h.cookieSecure, true)
	c.SetCookie(jwtmw.RefreshTokenCookie, "", -1, "/", "", h.cookieSecure, true)
}

// Login は POST /users を処理します。
// - リクエストJSONをLoginReqにバインド
// - 認証失敗時は401（不明ユーザーと誤パスワードは区別しない）
// - 成功時はトークンをクッキーで設定し、本文では識別情報のみ返却
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"msg": "username and password are required"})
		return
	}

	user, pair, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		// ユーザー列挙攻撃を防止するため、実際のエラーを公開しない
		slog.Warn("login failed", "error", err, "username", req.Username, "remote_addr", c.ClientIP())
		if errors.Is(err, usecase.ErrInvalidCredentials) || errors.Is(err, usecase.ErrInactiveUser) {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "invalid username or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "login failed"})
		return
	}

	h.setSessionCookies(c, pair)
	slog.Info("user login successful", "username", user.Username, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.UserInfoFromEntity(user))
}

// Signup は POST /users/new を処理します。
// - バリデーションエラー時は400を返却
// - ユーザー名・メール重複時は409を返却
// - 成功時は201を返却
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid signup request"})
		return
	}

	in := usecase.SignupInput{
		Username:        req.Username,
		Email:           req.Email,
		Password:        req.Password,
		PasswordConfirm: req.Password1,
		Gender:          req.Gender,
	}
	if err := h.auth.Signup(c.Request.Context(), in); err != nil {
		slog.Warn("signup failed", "error", err, "username", req.Username, "remote_addr", c.ClientIP())
		switch {
		case errors.Is(err, usecase.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		case errors.Is(err, usecase.ErrUserAlreadyExists):
			c.JSON(http.StatusConflict, gin.H{"msg": "username or email already exists"})
		default:
			// 内部エラーの詳細はログのみに残す
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "signup failed"})
		}
		return
	}

	slog.Info("user signup successful", "username", req.Username, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, gin.H{"success": "User successfully added"})
}

// Refresh は POST /users/getRefreshtoken を処理します。
// 有効なプリンシパルがあれば新しいアクセストークンをクッキーで設定します。
// セッションなしは200 {"userInfo": null}（401ではない）——呼び出し側は
// nullを「再認証せよ」として扱います。
func (h *AuthHandler) Refresh(c *gin.Context) {
	p, ok := jwtmw.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusOK, dto.RefreshRes{UserInfo: nil})
		return
	}

	access, err := h.auth.Refresh(p.UserID, p.Username, p.IsSuperuser)
	if err != nil {
		slog.Error("access token refresh failed", "error", err, "user_id", p.UserID)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "token refresh failed"})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(jwtmw.AccessTokenCookie, access, accessCookieMaxAge, "/", "", h.cookieSecure, true)
	c.JSON(http.StatusOK, dto.RefreshRes{UserInfo: &dto.UserInfo{
		ID:          p.UserID,
		Username:    p.Username,
		IsSuperuser: p.IsSuperuser,
	}})
}

// Logout は DELETE /users/userData を処理します。
// リフレッシュトークンを失効リストに登録し、両クッキーをクリアします。
func (h *AuthHandler) Logout(c *gin.Context) {
	p, ok := jwtmw.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "Unauthorized access"})
		return
	}

	if err := h.auth.Logout(c.Request.Context(), p.TokenID, p.ExpiresAt); err != nil {
		slog.Error("logout failed", "error", err, "user_id", p.UserID)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "logout failed"})
		return
	}

	h.clearSessionCookies(c)
	slog.Info("user logout successful", "user_id", p.UserID)
	c.JSON(http.StatusOK, gin.H{"success": "Logged Out Successfully"})
}

// Me は GET /users/userData を処理し、プリンシパルの公開プロフィールを返します。
func (h *AuthHandler) Me(c *gin.Context) {
	p, ok := jwtmw.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "Unauthorized access"})
		return
	}

	user, err := h.auth.Profile(c.Request.Context(), p.UserID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "user not found"})
			return
		}
		slog.Error("profile lookup failed", "error", err, "user_id", p.UserID)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "failed to fetch user data"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": dto.ProfileFromEntity(user)})
}

// ListUsers は GET /users を処理します。スーパーユーザー専用です。
func (h *AuthHandler) ListUsers(c *gin.Context) {
	p, ok := jwtmw.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "Unauthorized access"})
		return
	}
	if !p.IsSuperuser {
		c.JSON(http.StatusForbidden, gin.H{"msg": "forbidden"})
		return
	}

	users, err := h.auth.ListUsers(c.Request.Context())
	if err != nil {
		slog.Error("user listing failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "failed to fetch users"})
		return
	}

	out := make([]dto.ProfileRes, 0, len(users))
	for _, u := range users {
		out = append(out, dto.ProfileFromEntity(u))
	}
	c.JSON(http.StatusOK, out)
}

// ResetPassword は POST /users/resetPassword を処理します。
// パスワードリセットは未実装のスタブで、アカウントの存在有無に
// かかわらず同じ応答を返します。
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "a valid email is required"})
		return
	}

	slog.Info("password reset requested", "remote_addr", c.ClientIP())
	c.JSON(http.StatusAccepted, gin.H{"msg": "If the account exists, reset instructions will be sent"})
}

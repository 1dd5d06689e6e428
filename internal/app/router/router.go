package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "todo_backend/internal/feature/auth/transport/handler"
	itemhandler "todo_backend/internal/feature/items/transport/handler"
	"todo_backend/internal/platform/http/handler"
	"todo_backend/internal/platform/http/middleware"
	jwtmw "todo_backend/internal/platform/jwt"
	"todo_backend/internal/shared/ratelimiter"
)

// ログイン・サインアップの総当たり対策
const (
	credentialAttemptLimit  = 10
	credentialAttemptWindow = time.Minute
)

func NewRouter(authHandler *authhandler.AuthHandler, items *itemhandler.ItemHandler,
	session gin.HandlerFunc) *gin.Engine {
	r := gin.Default()
	// CORS のデフォルト設定を有効
	r.Use(cors.Default())

	// 導通確認用
	r.GET("/healthz", handler.Health)

	limiter := ratelimiter.New(credentialAttemptLimit, credentialAttemptWindow)

	// /users 配下は元クライアントのAPI面をそのまま提供する。
	// セッションミドルウェアはrefreshTokenクッキーからプリンシパルを
	// 導出するだけで、匿名リクエストも通す。保護が必要なルートは
	// RequireSessionで明示的に遮断する。
	users := r.Group("/users")
	users.Use(middleware.SecureHeaders(), session)
	{
		// ログイン（クッキーでJWTペア発行）
		users.POST("", ratelimiter.Middleware(limiter), authHandler.Login)
		// 新規ユーザー登録
		users.POST("/new", ratelimiter.Middleware(limiter), authHandler.Signup)
		// アクセストークン再発行（セッションなしでも200を返す契約）
		users.POST("/getRefreshtoken", authHandler.Refresh)
		// パスワードリセット（スタブ）
		users.POST("/resetPassword", authHandler.ResetPassword)
	}

	// 認証必須のルート
	auth := users.Group("")
	auth.Use(jwtmw.RequireSession())
	{
		// ユーザー一覧（スーパーユーザーのみ）
		auth.GET("", authHandler.ListUsers)
		auth.GET("/userData", authHandler.Me)
		auth.DELETE("/userData", authHandler.Logout)

		auth.GET("/itemData", items.List)
		auth.POST("/itemData", items.Create)
		auth.PATCH("/itemData/:id", items.Update)
		auth.DELETE("/itemData/:id", items.Delete)
	}

	return r
}

package main

import (
	"log"
	"os"

	redisv9 "github.com/redis/go-redis/v9"

	"todo_backend/internal/app/di"
	"todo_backend/internal/app/router"
	authadapters "todo_backend/internal/feature/auth/adapters"
	authhandler "todo_backend/internal/feature/auth/transport/handler"
	authusecase "todo_backend/internal/feature/auth/usecase"
	itemadapters "todo_backend/internal/feature/items/adapters"
	itemhandler "todo_backend/internal/feature/items/transport/handler"
	itemusecase "todo_backend/internal/feature/items/usecase"
	"todo_backend/internal/platform/db"
	jwtmw "todo_backend/internal/platform/jwt"
	platformredis "todo_backend/internal/platform/redis"
)

func main() {
	// db（初回呼び出しのみ接続を確立し、以降は共有ハンドルを再利用）
	conn, err := db.Open(db.LoadConfig())
	if err != nil {
		log.Fatal(err)
	}

	// Redis（失効リスト用、なければDBフォールバック）
	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Token revocations fall back to the database.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// JWT_SECRETチェック（未設定なら署名は失敗する）
	secret := os.Getenv(jwtmw.EnvKeyJWTSecret)
	if secret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Token issuance will fail until it is configured.")
	}
	issuer := jwtmw.NewIssuer(secret, jwtmw.AccessTokenTTL, jwtmw.RefreshTokenTTL)

	// Repository
	userRepo := authadapters.NewUserPostgres(conn)
	itemRepo := itemadapters.NewItemGorm(conn)
	denylist := di.NewTokenDenylist(rdb, conn)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, issuer, denylist)
	itemUC := itemusecase.NewItemUsecase(itemRepo)

	// Handler
	cookieSecure := os.Getenv("APP_ENV") == "production"
	authH := authhandler.NewAuthHandler(authUC, cookieSecure)
	itemH := itemhandler.NewItemHandler(itemUC)

	// セッションミドルウェア（refreshTokenクッキー → プリンシパル）
	session := jwtmw.Session(issuer, denylist)

	// ルータ生成
	r := router.NewRouter(authH, itemH, session)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}

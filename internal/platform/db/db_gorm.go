// Package db はGORMデータベース接続の確立とマイグレーションを提供します。
package db

import (
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	gpostgres "gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	authadapters "todo_backend/internal/feature/auth/adapters"
	authentity "todo_backend/internal/feature/auth/domain/entity"
	itementity "todo_backend/internal/feature/items/domain/entity"
)

// Config はデータベース接続の設定を保持します。
type Config struct {
	User     string
	Password string
	Name     string
	Host     string
	Port     string
	// SQLitePath はHostが未設定のときに使用するローカルSQLiteファイルのパスです。
	SQLitePath string
	// RunMigrations はAutoMigrateを実行するかを制御します。
	RunMigrations bool
}

// LoadConfig は環境変数からデータベース設定を読み込みます。
func LoadConfig() Config {
	return Config{
		User:          os.Getenv("DB_USER"),
		Password:      os.Getenv("DB_PASSWORD"),
		Name:          os.Getenv("DB_NAME"),
		Host:          os.Getenv("DB_HOST"),
		Port:          os.Getenv("DB_PORT"),
		SQLitePath:    "./todo.db",
		RunMigrations: os.Getenv("RUN_MIGRATIONS") == "true",
	}
}

// BuildDSN はPostgreSQL接続用のDSN文字列を生成します。
func BuildDSN(cfg Config) string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port)
}

var (
	openOnce sync.Once
	handle   *gorm.DB
	openErr  error
)

// Open は共有データベースハンドルを返します。
// 接続確立は一度だけ実行され、並行する初回呼び出しが重複して
// 接続を張らないようsync.Onceでガードされます。以降の呼び出しは
// 確立済みのハンドルを再利用します。
func Open(cfg Config) (*gorm.DB, error) {
	openOnce.Do(func() {
		handle, openErr = open(cfg)
	})
	return handle, openErr
}

func open(cfg Config) (*gorm.DB, error) {
	// DB_HOST未設定ならローカル開発用にSQLiteへフォールバック
	if cfg.Host == "" {
		db, err := gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		log.Println("USING_SQLITE:", cfg.SQLitePath)
		// SQLiteフォールバック時は常にマイグレーションを実行
		if err := migrate(db); err != nil {
			return nil, err
		}
		return db, nil
	}

	dsn := BuildDSN(cfg)

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(gpostgres.Open(dsn), &gorm.Config{})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("DB connect failed after 60s: %w", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if cfg.RunMigrations {
		if err := migrate(db); err != nil {
			return nil, err
		}
	}

	return db, nil
}

// migrate はマイグレーション（User, Item, RevokedToken）を実行します。
func migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&authentity.User{},
		&itementity.Item{},
		&authadapters.RevokedTokenModel{},
	); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}

// Package db はGORM接続のオープンとマイグレーションを提供します。
package db

import (
	"fmt"
	"log"
	"os"
	"time"

	gmysql "gorm.io/driver/mysql"
	gpostgres "gorm.io/driver/postgres"
	gsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	authentity "kasir_backend/internal/feature/auth/domain/entity"
	catalogentity "kasir_backend/internal/feature/catalog/domain/entity"
	checkoutentity "kasir_backend/internal/feature/checkout/domain/entity"
)

const (
	// DefaultSQLitePath はSQLITE_PATH未設定時のデータファイルです。
	// 元のレジと同じく単一ファイル運用がデフォルトです。
	DefaultSQLitePath = "./kasir.db"

	// connectTimeout is the total time to keep retrying the initial connection.
	connectTimeout = 60 * time.Second
	// retryInterval is the pause between connection attempts.
	retryInterval = 3 * time.Second
)

// Config はデータベース接続設定です。
type Config struct {
	// Driver は "sqlite"（デフォルト）, "mysql", "postgres" のいずれかです。
	Driver     string
	SQLitePath string
	User       string
	Password   string
	Name       string
	Host       string
	Port       string
}

// LoadConfigFromEnv は環境変数からデータベース設定を読み込みます。
func LoadConfigFromEnv() Config {
	return Config{
		Driver:     os.Getenv("DB_DRIVER"),
		SQLitePath: os.Getenv("SQLITE_PATH"),
		User:       os.Getenv("DB_USER"),
		Password:   os.Getenv("DB_PASSWORD"),
		Name:       os.Getenv("DB_NAME"),
		Host:       os.Getenv("DB_HOST"),
		Port:       os.Getenv("DB_PORT"),
	}
}

// BuildDSN は設定からドライバごとのDSN文字列を組み立てます。
func BuildDSN(cfg Config) string {
	switch cfg.Driver {
	case "mysql":
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
			cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)
	case "postgres":
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name)
	default:
		if cfg.SQLitePath != "" {
			return cfg.SQLitePath
		}
		return DefaultSQLitePath
	}
}

// Opener opens a gorm.DB for a DSN. Injected so retry logic is testable
// without a live database.
type Opener func(dsn string) (*gorm.DB, error)

// OpenerFor は設定のドライバに対応するOpenerを返します。
// TranslateError: ドライバ固有の重複キーエラーをgorm.ErrDuplicatedKeyに揃える
func OpenerFor(cfg Config) Opener {
	gcfg := &gorm.Config{TranslateError: true}
	switch cfg.Driver {
	case "mysql":
		return func(dsn string) (*gorm.DB, error) { return gorm.Open(gmysql.Open(dsn), gcfg) }
	case "postgres":
		return func(dsn string) (*gorm.DB, error) { return gorm.Open(gpostgres.Open(dsn), gcfg) }
	default:
		return func(dsn string) (*gorm.DB, error) { return gorm.Open(gsqlite.Open(dsn), gcfg) }
	}
}

// ConnectWithRetry はタイムアウトまで一定間隔で接続を試行します。
// 店舗サーバー運用でDBコンテナの起動を待つ必要があるためです。
func ConnectWithRetry(dsn string, timeout time.Duration, open Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := open(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("DB connect failed after %v: %w", timeout, err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(retryInterval)
	}
}

// OpenDB は環境変数の設定でデータベースを開き、マイグレーションを実行します。
func OpenDB() *gorm.DB {
	cfg := LoadConfigFromEnv()

	db, err := ConnectWithRetry(BuildDSN(cfg), connectTimeout, OpenerFor(cfg))
	if err != nil {
		log.Fatalf("%v", err)
	}

	// マイグレーション（User, Product, Sale, 伝票カウンタ）
	if err := Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}

// Migrate は全テーブルのAutoMigrateを実行します。
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&authentity.User{},
		&catalogentity.Product{},
		&checkoutentity.Sale{},
		&checkoutentity.InvoiceCounter{},
	)
}

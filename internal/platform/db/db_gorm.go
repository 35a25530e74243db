// Package db はgormによるデータベース接続を提供します。
package db

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	// 接続リトライの間隔
	retryInterval = 3 * time.Second
	// PostgreSQLへの接続を諦めるまでの時間
	connectTimeout = 60 * time.Second
	// DSN未設定時に使用するSQLiteファイル
	DefaultSQLitePath = "./esg_intelligence.db"
	sqliteURLPrefix   = "sqlite:///"
)

// Config はデータベース接続設定です。
// URLまたはHost/InstanceNameが設定されていればPostgreSQL、なければSQLiteを使用します。
type Config struct {
	URL          string // DATABASE_URL（最優先）
	User         string
	Password     string
	Name         string
	Host         string
	Port         string
	InstanceName string // Cloud SQLのインスタンス接続名
	SSLMode      string
	SQLitePath   string
	AutoMigrate  bool
}

// Opener はDSNからgorm.DBを開く関数です。
type Opener func(dsn string) (*gorm.DB, error)

// LoadConfigFromEnv は環境変数からデータベース設定を読み込みます。
func LoadConfigFromEnv() Config {
	cfg := Config{
		URL:          os.Getenv("DATABASE_URL"),
		User:         os.Getenv("DB_USER"),
		Password:     os.Getenv("DB_PASSWORD"),
		Name:         os.Getenv("DB_NAME"),
		Host:         os.Getenv("DB_HOST"),
		Port:         os.Getenv("DB_PORT"),
		InstanceName: os.Getenv("INSTANCE_CONNECTION_NAME"),
		SSLMode:      os.Getenv("DB_SSLMODE"),
		SQLitePath:   os.Getenv("SQLITE_PATH"),
		AutoMigrate:  os.Getenv("RUN_MIGRATIONS") != "false",
	}
	// DATABASE_URL=sqlite:///path はSQLiteファイルの指定として扱う
	if path, ok := strings.CutPrefix(cfg.URL, sqliteURLPrefix); ok {
		cfg.URL = ""
		cfg.SQLitePath = path
	}
	if cfg.SQLitePath == "" {
		cfg.SQLitePath = DefaultSQLitePath
	}
	return cfg
}

// UsesPostgres はPostgreSQLの接続先が設定されているかを返します。
func (c Config) UsesPostgres() bool {
	return c.URL != "" || c.Host != "" || c.InstanceName != ""
}

// BuildDSN はPostgreSQL用のDSNを生成します。
// URLが設定されていればそのまま返し、InstanceNameはHost/Portより優先されます。
func BuildDSN(cfg Config) string {
	if cfg.URL != "" {
		return cfg.URL
	}
	sslmode := cfg.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	if cfg.InstanceName != "" {
		return fmt.Sprintf("host=/cloudsql/%s user=%s password=%s dbname=%s sslmode=%s",
			cfg.InstanceName, cfg.User, cfg.Password, cfg.Name, sslmode)
	}
	port := cfg.Port
	if port == "" {
		port = "5432"
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, port, cfg.User, cfg.Password, cfg.Name, sslmode)
}

// ConnectWithRetry はtimeoutに達するまで retryInterval 間隔で接続を試みます。
func ConnectWithRetry(dsn string, timeout time.Duration, opener Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for attempt := 1; ; attempt++ {
		db, err := opener(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().Add(retryInterval).After(deadline) {
			return nil, fmt.Errorf("DB connect failed after %d attempts: %w", attempt, err)
		}
		slog.Warn("DB connect failed, retrying", "attempt", attempt, "error", err)
		time.Sleep(retryInterval)
	}
}

// OpenDB は設定に応じてPostgreSQLまたはSQLiteに接続し、必要ならmodelsをマイグレーションします。
func OpenDB(cfg Config, models ...any) (*gorm.DB, error) {
	gormCfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)}

	var (
		db  *gorm.DB
		err error
	)
	if cfg.UsesPostgres() {
		db, err = ConnectWithRetry(BuildDSN(cfg), connectTimeout, func(dsn string) (*gorm.DB, error) {
			return gorm.Open(postgres.Open(dsn), gormCfg)
		})
		if err != nil {
			return nil, err
		}
		slog.Info("connected to database", "driver", "postgres")
	} else {
		db, err = gorm.Open(sqlite.Open(cfg.SQLitePath), gormCfg)
		if err != nil {
			return nil, fmt.Errorf("open sqlite %s: %w", cfg.SQLitePath, err)
		}
		slog.Info("connected to database", "driver", "sqlite", "path", cfg.SQLitePath)
	}

	if cfg.AutoMigrate && len(models) > 0 {
		if err := db.AutoMigrate(models...); err != nil {
			return nil, fmt.Errorf("failed to migrate: %w", err)
		}
	}
	return db, nil
}

// Package redis はキャッシュ用のRedisクライアントを提供します。
package redis

import (
	"context"
	"errors"
	"log/slog"
	"net"

	"github.com/redis/go-redis/v9"
)

// ErrNotConfigured はREDIS_HOSTが未設定の場合に返されます。
var ErrNotConfigured = errors.New("redis is not configured")

// Config はRedis接続設定です。
type Config struct {
	Host     string
	Port     string
	Password string
}

// Addr は host:port 形式のアドレスを返します。ポート未設定時は6379を使用します。
func (c Config) Addr() string {
	port := c.Port
	if port == "" {
		port = "6379"
	}
	return net.JoinHostPort(c.Host, port)
}

// NewRedisClient は接続確認済みのクライアントを返します。
func NewRedisClient(ctx context.Context, cfg Config) (*redis.Client, error) {
	if cfg.Host == "" {
		return nil, ErrNotConfigured
	}
	addr := cfg.Addr()

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Password,
		DB:       0,
	})

	// 接続確認
	if err := rdb.Ping(ctx).Err(); err != nil {
		slog.Error("Redis connection failed", "address", addr, "error", err)
		_ = rdb.Close()
		return nil, err
	}

	slog.Info("Redis connection successful", "address", addr)
	return rdb, nil
}

// Package config は環境変数（と任意の.envファイル）からアプリケーション設定を読み込みます。
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"esg_backend/internal/platform/db"
	"esg_backend/internal/platform/redis"
)

// Config はアプリケーション設定です。
type Config struct {
	Port     string
	Env      string
	LogLevel string

	DB       db.Config
	Redis    redis.Config
	CacheTTL time.Duration

	AnalysisDelay time.Duration
	// RandomSeed が設定されている場合、スコアの揺らぎを再現可能にします。
	RandomSeed *uint64

	StaticDir      string
	AllowedOrigins []string

	GeminiEnabled    bool
	GeminiModel      string
	InsightRateLimit int           // 1分あたりのGemini呼び出し上限（0以下で無制限）
	InsightTimeout   time.Duration // Gemini呼び出し1回あたりのタイムアウト
}

// Load は.envを読み込んだ上で環境変数から設定を生成します。
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Port:     getEnv("PORT", "8080"),
		Env:      getEnv("ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		DB:       db.LoadConfigFromEnv(),
		Redis: redis.Config{
			Host:     getEnv("REDIS_HOST", ""),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		CacheTTL:         getEnvAsDuration("CACHE_TTL", 5*time.Minute),
		AnalysisDelay:    getEnvAsDuration("ESG_ANALYSIS_DELAY", 2*time.Second),
		StaticDir:        getEnv("STATIC_DIR", ""),
		AllowedOrigins:   splitList(getEnv("ALLOWED_ORIGINS", "*")),
		GeminiEnabled:    getEnvAsBool("GEMINI_ENABLED", false),
		GeminiModel:      getEnv("GEMINI_MODEL", ""),
		InsightRateLimit: getEnvAsInt("INSIGHT_RATE_LIMIT", 10),
		InsightTimeout:   getEnvAsDuration("INSIGHT_TIMEOUT", 30*time.Second),
	}

	if v := os.Getenv("ESG_RANDOM_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("ESG_RANDOM_SEED must be an unsigned integer: %w", err)
		}
		cfg.RandomSeed = &seed
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate は設定値の整合性を検証します。
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if c.AnalysisDelay < 0 {
		return fmt.Errorf("ESG_ANALYSIS_DELAY must not be negative")
	}
	if c.InsightTimeout <= 0 {
		return fmt.Errorf("INSIGHT_TIMEOUT must be positive")
	}
	if len(c.AllowedOrigins) == 0 {
		return fmt.Errorf("ALLOWED_ORIGINS must list at least one origin")
	}
	return nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

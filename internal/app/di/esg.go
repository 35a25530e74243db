// Package di provides dependency injection factories for creating application components.
package di

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"esg_backend/internal/app/config"
	"esg_backend/internal/feature/esg/adapters"
	"esg_backend/internal/feature/esg/adapters/gemini"
	"esg_backend/internal/feature/esg/domain/reference"
	"esg_backend/internal/feature/esg/usecase"
	"esg_backend/internal/platform/cache"
	infrahttp "esg_backend/internal/platform/http"
	"esg_backend/internal/shared/ratelimiter"
)

// NewESGUsecase creates the scoring usecase with the configured delay and random source.
func NewESGUsecase(cfg *config.Config, table *reference.Table) *usecase.ESGUsecase {
	opts := []usecase.Option{
		usecase.WithDelay(usecase.SleepContext, cfg.AnalysisDelay),
	}
	if cfg.RandomSeed != nil {
		opts = append(opts, usecase.WithRandomSource(usecase.NewSeededSource(*cfg.RandomSeed)))
	}
	return usecase.NewESGUsecase(table, opts...)
}

// NewCompanyRepository creates a CompanyRepository backed by gorm.
// If Redis is available, reads go through a Redis cache; otherwise the cache is bypassed.
func NewCompanyRepository(rdb *redis.Client, db *gorm.DB, ttl time.Duration) usecase.CompanyRepository {
	repo := adapters.NewCompanyRepository(db)
	if rdb == nil {
		return repo
	}
	return cache.NewCachingCompanyRepository(rdb, ttl, repo, "esg:companies")
}

// NewInsightUsecase creates the Gemini-backed insight usecase, or returns nil when Gemini is disabled.
func NewInsightUsecase(ctx context.Context, cfg *config.Config, table *reference.Table) (*usecase.InsightUsecase, error) {
	if !cfg.GeminiEnabled {
		return nil, nil
	}
	narrator, err := gemini.NewGeminiNarrator(ctx, cfg.GeminiModel, infrahttp.NewHTTPClient(infrahttp.ClientOptions{Timeout: cfg.InsightTimeout}))
	if err != nil {
		return nil, err
	}
	return usecase.NewInsightUsecase(table, narrator, NewInsightLimiter(cfg.InsightRateLimit)), nil
}

// NewInsightLimiter returns a per-minute limiter, or a no-op limiter when limit is not positive.
func NewInsightLimiter(limit int) ratelimiter.RateLimiterInterface {
	if limit <= 0 {
		return ratelimiter.Noop{}
	}
	return ratelimiter.NewRateLimiter(limit, time.Minute)
}

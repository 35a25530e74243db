// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"esg_backend/internal/feature/esg/domain/entity"
	"esg_backend/internal/feature/esg/usecase"
)

// CachingCompanyRepository decorates a CompanyRepository with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying repository.
type CachingCompanyRepository struct {
	inner     usecase.CompanyRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.CompanyRepository = (*CachingCompanyRepository)(nil)

// NewCachingCompanyRepository decorates a CompanyRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "esg:companies".
func NewCachingCompanyRepository(rdb *redis.Client, ttl time.Duration, inner usecase.CompanyRepository, namespace string) *CachingCompanyRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "esg:companies"
	}
	return &CachingCompanyRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// ReplaceAll replaces the stored companies and drops every cached entry of the namespace.
func (c *CachingCompanyRepository) ReplaceAll(ctx context.Context, companies []entity.CompanyProfile) error {
	if err := c.inner.ReplaceAll(ctx, companies); err != nil {
		return err
	}
	if c.rdb == nil {
		return nil
	}
	_ = c.deleteByPattern(ctx, c.namespace+":*") // Best effort: entries expire with the TTL anyway
	return nil
}

// LoadAll returns all companies, checking cache first then falling back to the database.
func (c *CachingCompanyRepository) LoadAll(ctx context.Context) ([]entity.StoredCompany, error) {
	return readThrough(ctx, c, c.namespace+":all", func() ([]entity.StoredCompany, error) {
		return c.inner.LoadAll(ctx)
	})
}

// FindBySymbol returns one company. Lookup failures, including not found, are never cached.
func (c *CachingCompanyRepository) FindBySymbol(ctx context.Context, symbol string) (*entity.StoredCompany, error) {
	return readThrough(ctx, c, c.cacheKey(symbol), func() (*entity.StoredCompany, error) {
		return c.inner.FindBySymbol(ctx, symbol)
	})
}

// readThrough returns the cached value for key, or loads and caches it on a miss.
func readThrough[T any](ctx context.Context, c *CachingCompanyRepository, key string, load func() (T, error)) (T, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return load()
	}

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out T
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := load()
	if err != nil {
		var zero T
		return zero, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}
	return out, nil
}

// cacheKey generates a cache key for a single company.
func (c *CachingCompanyRepository) cacheKey(symbol string) string {
	return fmt.Sprintf("%s:symbol:%s", c.namespace, safe(symbol))
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingCompanyRepository) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	s = strings.ReplaceAll(s, "*", "_")
	return s
}

// Command seed は参照テーブルの企業で永続ストアを置き換えます。
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"esg_backend/internal/app/config"
	"esg_backend/internal/app/di"
	"esg_backend/internal/feature/esg/adapters"
	"esg_backend/internal/feature/esg/domain/reference"
	"esg_backend/internal/feature/esg/usecase"
	"esg_backend/internal/platform/db"
	"esg_backend/internal/platform/logging"
	infraredis "esg_backend/internal/platform/redis"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("invalid configuration: ", err)
	}
	logging.Setup(os.Stdout, cfg.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	// 置き換えの前にテーブルを必ず作成する
	dbCfg := cfg.DB
	dbCfg.AutoMigrate = true
	gdb, err := db.OpenDB(dbCfg, &adapters.CompanyModel{})
	if err != nil {
		log.Fatal(err)
	}

	// サーバーのキャッシュを無効化するため、Redisがあればキャッシュ経由で書き込む
	rdb, err := infraredis.NewRedisClient(ctx, cfg.Redis)
	if err != nil && !errors.Is(err, infraredis.ErrNotConfigured) {
		log.Println("[WARN] Redis unavailable. Cached company reads may be stale until they expire.")
	}
	if rdb != nil {
		defer func() { _ = rdb.Close() }()
	}

	repo := di.NewCompanyRepository(rdb, gdb, cfg.CacheTTL)
	n, err := usecase.NewPopulateUsecase(repo, reference.Default()).Populate(ctx)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("seed ok: %d companies", n)
}

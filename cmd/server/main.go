package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	redisv9 "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"esg_backend/internal/app/config"
	"esg_backend/internal/app/di"
	"esg_backend/internal/app/router"
	"esg_backend/internal/feature/esg/adapters"
	"esg_backend/internal/feature/esg/domain/reference"
	esghandler "esg_backend/internal/feature/esg/transport/handler"
	"esg_backend/internal/feature/esg/usecase"
	"esg_backend/internal/platform/db"
	"esg_backend/internal/platform/http/handler"
	"esg_backend/internal/platform/logging"
	"esg_backend/internal/platform/metrics"
	infraredis "esg_backend/internal/platform/redis"
)

// 進行中リクエストの完了を待つ時間
const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("invalid configuration: ", err)
	}
	logging.Setup(os.Stdout, cfg.LogLevel)
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	table := reference.Default()
	m := metrics.New()
	deps := router.Deps{
		ESG:            esghandler.NewESGHandler(di.NewESGUsecase(cfg, table), m),
		Metrics:        m,
		AllowedOrigins: cfg.AllowedOrigins,
		StaticDir:      cfg.StaticDir,
	}

	// db（失敗してもスコアリング系のエンドポイントは提供する）
	gdb, err := db.OpenDB(cfg.DB, &adapters.CompanyModel{})
	if err != nil {
		slog.Warn("database unavailable, company endpoints disabled", "error", err)
	} else {
		deps.HealthChecks = append(deps.HealthChecks, dbCheck(gdb))
	}

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(ctx, cfg.Redis); err != nil {
		slog.Warn("Redis unavailable, running without cache", "error", err)
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("failed to close Redis client", "error", err)
			}
		}()
		deps.HealthChecks = append(deps.HealthChecks, handler.Check{
			Name:  "cache",
			Probe: func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
		})
	}

	if gdb != nil {
		repo := di.NewCompanyRepository(rdb, gdb, cfg.CacheTTL)
		deps.Companies = esghandler.NewCompanyHandler(usecase.NewCompanyUsecase(repo))
	}

	insightUC, err := di.NewInsightUsecase(ctx, cfg, table)
	if err != nil {
		slog.Warn("Gemini unavailable, insight endpoint disabled", "error", err)
	} else if insightUC != nil {
		deps.Insight = esghandler.NewInsightHandler(insightUC)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.NewRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server starting", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
}

func dbCheck(gdb *gorm.DB) handler.Check {
	return handler.Check{
		Name: "database",
		Probe: func(ctx context.Context) error {
			sqlDB, err := gdb.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}
}

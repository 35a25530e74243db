package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	esghandler "esg_backend/internal/feature/esg/transport/handler"
	"esg_backend/internal/platform/http/handler"
	"esg_backend/internal/platform/http/middleware"
	"esg_backend/internal/platform/metrics"
)

// APIPrefix はJSON APIのパスプレフィックスです。
const APIPrefix = "/api/"

// Deps はルーター構築に必要なハンドラーと設定です。nilのハンドラーはルートを登録しません。
type Deps struct {
	ESG       *esghandler.ESGHandler
	Companies *esghandler.CompanyHandler
	Insight   *esghandler.InsightHandler

	Metrics      *metrics.Metrics
	HealthChecks []handler.Check

	AllowedOrigins []string
	StaticDir      string
}

func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.AccessLog())
	// パニックによる500も集計されるようRecoveryより外側に置く
	if d.Metrics != nil {
		r.Use(d.Metrics.Middleware())
	}
	r.Use(middleware.Recovery())
	r.Use(cors.New(corsConfig(d.AllowedOrigins)))
	if d.Metrics != nil {
		r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))
	}

	// 導通確認用
	health := handler.Health(d.HealthChecks...)
	r.GET("/healthz", health)
	r.HEAD("/healthz", health)
	r.OPTIONS("/healthz", health)

	api := r.Group("/api/esg")
	{
		api.POST("/analyze", d.ESG.Analyze)
		api.GET("/rankings", d.ESG.Rankings)
		api.GET("/trends", d.ESG.Trends)
		api.GET("/sectors", d.ESG.Sectors)
		api.GET("/metrics", d.ESG.Metrics)

		// 永続ストアが設定されている場合のみ
		if d.Companies != nil {
			api.GET("/companies", d.Companies.List)
			api.GET("/companies/:symbol", d.Companies.Get)
		}
		// Geminiが有効な場合のみ
		if d.Insight != nil {
			api.POST("/insight", d.Insight.Insight)
		}
	}

	// フロントエンド（SPA）の配信。API配下の未定義パスはJSONの404
	r.NoRoute(handler.Static(d.StaticDir, APIPrefix))

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodHead, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	cfg.AllowOrigins = origins
	return cfg
}

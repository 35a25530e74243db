// Package handler はesgフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oapi-codegen/runtime"

	"esg_backend/internal/feature/esg/domain/entity"
	"esg_backend/internal/feature/esg/transport/http/dto"
	"esg_backend/internal/feature/esg/usecase"
)

// MsgSymbolRequired は分析リクエストのシンボルが不正な場合のエラーメッセージです。
const MsgSymbolRequired = "Company symbol is required"

// ESGUsecase はESGスコア分析のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type ESGUsecase interface {
	AnalyzeCompany(ctx context.Context, symbol string) (*entity.AnalysisResult, error)
	GetRankings(ctx context.Context, f usecase.RankingFilter) ([]entity.RankedCompany, error)
	GetTrends(ctx context.Context) ([]entity.TrendPoint, error)
	GetSectorAnalysis(ctx context.Context) ([]entity.SectorSummary, error)
	GetMetricsSummary(ctx context.Context) (*entity.MetricsSummary, error)
}

// AnalysisRecorder は完了した分析を記録します（メトリクスなど）。
type AnalysisRecorder interface {
	RecordAnalysis(synthetic bool)
}

type noopRecorder struct{}

func (noopRecorder) RecordAnalysis(bool) {}

// ESGHandler はESGスコアのHTTPリクエストを処理します。
type ESGHandler struct {
	uc       ESGUsecase
	recorder AnalysisRecorder
}

// NewESGHandler はESGHandlerの新しいインスタンスを生成します。recorderはnilでも構いません。
func NewESGHandler(uc ESGUsecase, recorder AnalysisRecorder) *ESGHandler {
	if recorder == nil {
		recorder = noopRecorder{}
	}
	return &ESGHandler{uc: uc, recorder: recorder}
}

// Analyze は銘柄シンボルを受け取り、ESG分析結果をJSONで返します。
//
// エンドポイント例:
// POST /api/esg/analyze {"symbol":"AAPL"}
func (h *ESGHandler) Analyze(c *gin.Context) {
	var req dto.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: MsgSymbolRequired})
		return
	}

	res, err := h.uc.AnalyzeCompany(c.Request.Context(), req.Symbol)
	if err != nil {
		if errors.Is(err, usecase.ErrSymbolRequired) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: MsgSymbolRequired})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}

	h.recorder.RecordAnalysis(res.Synthetic)
	c.JSON(http.StatusOK, dto.NewAnalysisResponse(res))
}

// Rankings は参照テーブルの企業を総合スコアの降順で返します。
//
// エンドポイント例:
// GET /api/esg/rankings?sector=Technology&limit=3
func (h *ESGHandler) Rankings(c *gin.Context) {
	var (
		sector *string
		limit  *int
	)
	query := c.Request.URL.Query()
	if err := runtime.BindQueryParameter("form", true, false, "sector", query, &sector); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", query, &limit); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	var f usecase.RankingFilter
	if sector != nil {
		f.Sector = *sector
	}
	if limit != nil {
		if *limit <= 0 {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: usecase.ErrInvalidLimit.Error()})
			return
		}
		f.Limit = *limit
	}

	rankings, err := h.uc.GetRankings(c.Request.Context(), f)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidLimit) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.NewRankingsResponse(rankings))
}

// Trends は直近6か月のESGスコア推移を返します。
func (h *ESGHandler) Trends(c *gin.Context) {
	trends, err := h.uc.GetTrends(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.NewTrendsResponse(trends))
}

// Sectors はセクター別の集計を返します。
func (h *ESGHandler) Sectors(c *gin.Context) {
	sectors, err := h.uc.GetSectorAnalysis(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.NewSectorsResponse(sectors))
}

// Metrics は市場全体のESG集計を返します。
func (h *ESGHandler) Metrics(c *gin.Context) {
	m, err := h.uc.GetMetricsSummary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.NewMetricsResponse(m))
}

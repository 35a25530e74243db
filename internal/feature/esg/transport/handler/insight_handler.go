package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"esg_backend/internal/feature/esg/domain/entity"
	"esg_backend/internal/feature/esg/transport/http/dto"
	"esg_backend/internal/feature/esg/usecase"
)

// InsightUsecase はESGプロファイルの要約を生成するユースケースインターフェースです。
type InsightUsecase interface {
	Insight(ctx context.Context, symbol string) (*entity.Insight, error)
}

// InsightHandler はインサイト生成のHTTPリクエストを処理します。
type InsightHandler struct {
	uc InsightUsecase
}

// NewInsightHandler はInsightHandlerの新しいインスタンスを生成します。
func NewInsightHandler(uc InsightUsecase) *InsightHandler {
	return &InsightHandler{uc: uc}
}

// Insight は参照テーブルの企業について生成した要約を返します。
//
// エンドポイント例:
// POST /api/esg/insight {"symbol":"MSFT"}
func (h *InsightHandler) Insight(c *gin.Context) {
	var req dto.InsightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: MsgSymbolRequired})
		return
	}

	res, err := h.uc.Insight(c.Request.Context(), req.Symbol)
	switch {
	case errors.Is(err, usecase.ErrSymbolRequired):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: MsgSymbolRequired})
	case errors.Is(err, usecase.ErrCompanyNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, usecase.ErrInsightFailed):
		slog.Warn("insight generation failed", "symbol", req.Symbol, "error", err)
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: err.Error()})
	case err != nil:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusOK, dto.InsightResponse{Symbol: res.Symbol, Name: res.Name, Summary: res.Summary})
	}
}

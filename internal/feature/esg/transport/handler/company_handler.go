package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"esg_backend/internal/feature/esg/domain/entity"
	"esg_backend/internal/feature/esg/transport/http/dto"
	"esg_backend/internal/feature/esg/usecase"
)

// CompanyUsecase は永続ストアの企業レコードを読み取るユースケースインターフェースです。
type CompanyUsecase interface {
	ListCompanies(ctx context.Context) ([]entity.StoredCompany, error)
	GetCompany(ctx context.Context, symbol string) (*entity.StoredCompany, error)
}

// CompanyHandler は永続ストアの企業レコードのHTTPリクエストを処理します。
type CompanyHandler struct {
	uc CompanyUsecase
}

// NewCompanyHandler はCompanyHandlerの新しいインスタンスを生成します。
func NewCompanyHandler(uc CompanyUsecase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// List は保存されているすべての企業を返します。
//
// エンドポイント例:
// GET /api/esg/companies
func (h *CompanyHandler) List(c *gin.Context) {
	companies, err := h.uc.ListCompanies(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}
	out := make([]dto.CompanyResponse, 0, len(companies))
	for _, x := range companies {
		out = append(out, dto.NewCompanyResponse(x))
	}
	c.JSON(http.StatusOK, out)
}

// Get はシンボルで企業を1件返します。
//
// エンドポイント例:
// GET /api/esg/companies/AAPL
func (h *CompanyHandler) Get(c *gin.Context) {
	company, err := h.uc.GetCompany(c.Request.Context(), c.Param("symbol"))
	switch {
	case errors.Is(err, usecase.ErrSymbolRequired):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: MsgSymbolRequired})
	case errors.Is(err, usecase.ErrCompanyNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	case err != nil:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusOK, dto.NewCompanyResponse(*company))
	}
}

package dto

import (
	"time"

	"esg_backend/internal/feature/esg/domain/entity"
)

// CompanyResponse は永続ストアの企業レコードのレスポンスDTOです。
type CompanyResponse struct {
	Symbol              string         `json:"symbol"`
	Name                string         `json:"name"`
	Sector              string         `json:"sector"`
	Scores              ScoresResponse `json:"scores"`
	CarbonNeutral       bool           `json:"carbon_neutral"`
	RenewableEnergy     int            `json:"renewable_energy"`
	SustainabilityGoals []string       `json:"sustainability_goals"`
	KeyInitiatives      []string       `json:"key_initiatives"`
	LastUpdated         string         `json:"last_updated"`
	DataSource          string         `json:"data_source"`
}

// NewCompanyResponse は企業レコードをレスポンスDTOに変換します。
func NewCompanyResponse(c entity.StoredCompany) CompanyResponse {
	return CompanyResponse{
		Symbol: c.Symbol,
		Name:   c.Name,
		Sector: c.Sector,
		Scores: ScoresResponse{
			Environmental: c.Environmental,
			Social:        c.Social,
			Governance:    c.Governance,
			Overall:       c.Overall,
		},
		CarbonNeutral:       c.CarbonNeutral,
		RenewableEnergy:     c.RenewableEnergyPercentage,
		SustainabilityGoals: nonNil(c.SustainabilityGoals),
		KeyInitiatives:      nonNil(c.KeyInitiatives),
		LastUpdated:         c.LastUpdated.UTC().Format(time.RFC3339),
		DataSource:          c.DataSource,
	}
}

// InsightRequest はインサイト生成リクエストのDTOです。
type InsightRequest struct {
	Symbol string `json:"symbol" binding:"required"`
}

// InsightResponse はインサイトのレスポンスDTOです。
type InsightResponse struct {
	Symbol  string `json:"symbol"`
	Name    string `json:"name"`
	Summary string `json:"summary"`
}

// ErrorResponse はエラーレスポンスのDTOです。
type ErrorResponse struct {
	Error string `json:"error"`
}

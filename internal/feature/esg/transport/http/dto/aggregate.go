package dto

import "esg_backend/internal/feature/esg/domain/entity"

// SectorResponse はセクター別集計のレスポンスDTOです。
type SectorResponse struct {
	Sector         string `json:"sector"`
	Environmental  int    `json:"environmental"`
	Social         int    `json:"social"`
	Governance     int    `json:"governance"`
	CompaniesCount int    `json:"companies_count"`
}

// NewSectorsResponse はセクター別集計をレスポンスDTOの配列に変換します。
func NewSectorsResponse(ss []entity.SectorSummary) []SectorResponse {
	out := make([]SectorResponse, 0, len(ss))
	for _, s := range ss {
		out = append(out, SectorResponse(s))
	}
	return out
}

type ScoreDistributionResponse struct {
	Excellent int `json:"excellent"`
	Good      int `json:"good"`
	Fair      int `json:"fair"`
	Poor      int `json:"poor"`
}

type SectorLeaderResponse struct {
	Sector string `json:"sector"`
	Leader string `json:"leader"`
	Score  int    `json:"score"`
}

// MetricsResponse は全体集計のレスポンスDTOです。
type MetricsResponse struct {
	TotalCompanies         int                       `json:"total_companies"`
	AverageESGScore        float64                   `json:"average_esg_score"`
	SustainableLeaders     int                       `json:"sustainable_leaders"`
	CarbonNeutralCompanies int                       `json:"carbon_neutral_companies"`
	ScoreDistribution      ScoreDistributionResponse `json:"score_distribution"`
	SectorLeaders          []SectorLeaderResponse    `json:"sector_leaders"`
}

// NewMetricsResponse は全体集計をレスポンスDTOに変換します。
func NewMetricsResponse(m *entity.MetricsSummary) MetricsResponse {
	leaders := make([]SectorLeaderResponse, 0, len(m.SectorLeaders))
	for _, l := range m.SectorLeaders {
		leaders = append(leaders, SectorLeaderResponse(l))
	}
	return MetricsResponse{
		TotalCompanies:         m.TotalCompanies,
		AverageESGScore:        m.AverageESGScore,
		SustainableLeaders:     m.SustainableLeaders,
		CarbonNeutralCompanies: m.CarbonNeutralCompanies,
		ScoreDistribution:      ScoreDistributionResponse(m.ScoreDistribution),
		SectorLeaders:          leaders,
	}
}

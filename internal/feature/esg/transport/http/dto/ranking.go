package dto

import "esg_backend/internal/feature/esg/domain/entity"

// RankingResponse はランキング1件のレスポンスDTOです。
type RankingResponse struct {
	Symbol          string `json:"symbol"`
	Name            string `json:"name"`
	Sector          string `json:"sector"`
	OverallScore    int    `json:"overall_score"`
	Environmental   int    `json:"environmental"`
	Social          int    `json:"social"`
	Governance      int    `json:"governance"`
	CarbonNeutral   bool   `json:"carbon_neutral"`
	RenewableEnergy int    `json:"renewable_energy"`
	Rank            int    `json:"rank"`
	Recommendation  string `json:"recommendation"`
}

// NewRankingsResponse はランキングをレスポンスDTOの配列に変換します。
func NewRankingsResponse(rs []entity.RankedCompany) []RankingResponse {
	out := make([]RankingResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, RankingResponse{
			Symbol:          r.Symbol,
			Name:            r.Name,
			Sector:          r.Sector,
			OverallScore:    r.OverallScore,
			Environmental:   r.Environmental,
			Social:          r.Social,
			Governance:      r.Governance,
			CarbonNeutral:   r.CarbonNeutral,
			RenewableEnergy: r.RenewableEnergy,
			Rank:            r.Rank,
			Recommendation:  string(r.Recommendation),
		})
	}
	return out
}

// TrendResponse はトレンド1点のレスポンスDTOです。
type TrendResponse struct {
	Month         string  `json:"month"`
	Environmental int     `json:"environmental"`
	Social        int     `json:"social"`
	Governance    int     `json:"governance"`
	Overall       float64 `json:"overall"`
}

// NewTrendsResponse はトレンドをレスポンスDTOの配列に変換します。
func NewTrendsResponse(ps []entity.TrendPoint) []TrendResponse {
	out := make([]TrendResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, TrendResponse(p))
	}
	return out
}

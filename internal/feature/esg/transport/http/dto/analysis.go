// Package dto はesgフィーチャーのHTTPリクエスト/レスポンスDTOを定義します。
package dto

import (
	"time"

	"esg_backend/internal/feature/esg/domain/entity"
)

// AnalyzeRequest は分析リクエストのDTOです。
type AnalyzeRequest struct {
	Symbol string `json:"symbol" binding:"required"` // ティッカーシンボル
}

// ScoresResponse は各スコアのDTOです。
type ScoresResponse struct {
	Environmental int `json:"environmental"`
	Social        int `json:"social"`
	Governance    int `json:"governance"`
	Overall       int `json:"overall"`
}

// AnalysisResponse は分析結果のレスポンスDTOです。
type AnalysisResponse struct {
	Symbol              string         `json:"symbol"`
	Name                string         `json:"name"`
	Sector              string         `json:"sector"`
	Scores              ScoresResponse `json:"scores"`
	Recommendation      string         `json:"recommendation"`
	RiskLevel           string         `json:"risk_level"`
	CarbonNeutral       bool           `json:"carbon_neutral"`
	RenewableEnergy     int            `json:"renewable_energy"`
	SustainabilityGoals []string       `json:"sustainability_goals"`
	KeyInitiatives      []string       `json:"key_initiatives"`
	AnalysisTimestamp   string         `json:"analysis_timestamp"` // RFC 3339（ナノ秒）
	Confidence          int            `json:"confidence"`
}

// NewAnalysisResponse は分析結果をレスポンスDTOに変換します。
func NewAnalysisResponse(r *entity.AnalysisResult) AnalysisResponse {
	return AnalysisResponse{
		Symbol: r.Symbol,
		Name:   r.Name,
		Sector: r.Sector,
		Scores: ScoresResponse{
			Environmental: r.Scores.Environmental,
			Social:        r.Scores.Social,
			Governance:    r.Scores.Governance,
			Overall:       r.Scores.Overall,
		},
		Recommendation:      string(r.Recommendation),
		RiskLevel:           string(r.RiskLevel),
		CarbonNeutral:       r.CarbonNeutral,
		RenewableEnergy:     r.RenewableEnergy,
		SustainabilityGoals: nonNil(r.SustainabilityGoals),
		KeyInitiatives:      nonNil(r.KeyInitiatives),
		AnalysisTimestamp:   r.AnalyzedAt.Format(time.RFC3339Nano),
		Confidence:          r.Confidence,
	}
}

// nonNil はnilスライスをJSONで [] として出力するために空スライスへ置き換えます。
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

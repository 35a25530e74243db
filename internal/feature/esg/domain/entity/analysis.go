package entity

import "time"

// Scores はE/S/Gの各スコアと総合スコアです。
type Scores struct {
	Environmental int
	Social        int
	Governance    int
	Overall       int
}

// AnalysisResult はリクエスト単位で生成されるESG分析結果です。永続化されません。
type AnalysisResult struct {
	Symbol              string
	Name                string
	Sector              string
	Scores              Scores
	Recommendation      Recommendation
	RiskLevel           RiskLevel
	CarbonNeutral       bool
	RenewableEnergy     int
	SustainabilityGoals []string
	KeyInitiatives      []string
	AnalyzedAt          time.Time
	Confidence          int
	// Synthetic は参照テーブルに存在しない銘柄のために合成された結果であることを示します。
	Synthetic bool
}

// RankedCompany はランキング上の1社分のエントリです。
type RankedCompany struct {
	Rank            int
	Symbol          string
	Name            string
	Sector          string
	OverallScore    int
	Environmental   int
	Social          int
	Governance      int
	CarbonNeutral   bool
	RenewableEnergy int
	Recommendation  Recommendation
}

// TrendPoint は月次のESGトレンドの1点です。
// Overall はベースラインが1.5刻みのため小数になります。
type TrendPoint struct {
	Month         string
	Environmental int
	Social        int
	Governance    int
	Overall       float64
}

// Insight は企業のESGプロファイルに対する生成テキストです。
type Insight struct {
	Symbol  string
	Name    string
	Summary string
}

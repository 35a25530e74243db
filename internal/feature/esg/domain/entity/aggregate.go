package entity

// SectorSummary はセクター別のESGスコア集計です。
type SectorSummary struct {
	Sector         string
	Environmental  int
	Social         int
	Governance     int
	CompaniesCount int
}

// ScoreDistribution はスコア帯ごとの企業数です。
type ScoreDistribution struct {
	Excellent int // 85以上
	Good      int // 70〜84
	Fair      int // 55〜69
	Poor      int // 55未満
}

// SectorLeader はセクター内の首位企業です。
type SectorLeader struct {
	Sector string
	Leader string
	Score  int
}

// MetricsSummary はESG全体の統計サマリーです。
type MetricsSummary struct {
	TotalCompanies         int
	AverageESGScore        float64
	SustainableLeaders     int
	CarbonNeutralCompanies int
	ScoreDistribution      ScoreDistribution
	SectorLeaders          []SectorLeader
}

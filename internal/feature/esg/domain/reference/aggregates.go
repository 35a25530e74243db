package reference

import "esg_backend/internal/feature/esg/domain/entity"

// SectorAnalysis は固定のセクター別集計を返します。
// 参照テーブルの内容からは導出されません。
func SectorAnalysis() []entity.SectorSummary {
	return []entity.SectorSummary{
		{Sector: "Technology", Environmental: 78, Social: 82, Governance: 88, CompaniesCount: 245},
		{Sector: "Healthcare", Environmental: 65, Social: 85, Governance: 82, CompaniesCount: 156},
		{Sector: "Financial Services", Environmental: 58, Social: 72, Governance: 92, CompaniesCount: 189},
		{Sector: "Energy", Environmental: 45, Social: 68, Governance: 75, CompaniesCount: 98},
		{Sector: "Consumer Goods", Environmental: 62, Social: 78, Governance: 80, CompaniesCount: 167},
	}
}

// MetricsSummary は固定のESG統計サマリーを返します。
func MetricsSummary() entity.MetricsSummary {
	return entity.MetricsSummary{
		TotalCompanies:         2847,
		AverageESGScore:        78.4,
		SustainableLeaders:     342,
		CarbonNeutralCompanies: 156,
		ScoreDistribution: entity.ScoreDistribution{
			Excellent: 342,
			Good:      1245,
			Fair:      987,
			Poor:      273,
		},
		SectorLeaders: []entity.SectorLeader{
			{Sector: "Technology", Leader: "MSFT", Score: 92},
			{Sector: "Healthcare", Leader: "JNJ", Score: 89},
			{Sector: "Financial", Leader: "JPM", Score: 87},
			{Sector: "Energy", Leader: "NEE", Score: 85},
			{Sector: "Consumer", Leader: "PG", Score: 88},
		},
	}
}

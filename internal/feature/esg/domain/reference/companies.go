package reference

import "esg_backend/internal/feature/esg/domain/entity"

// DefaultProfiles は組み込みの企業リストを毎回新しいスライスとして返します。
// 並び順はランキングの同点時の順序になります。
func DefaultProfiles() []entity.CompanyProfile {
	return []entity.CompanyProfile{
		{
			Symbol: "TSLA", Name: "Tesla Inc.", Sector: "Automotive",
			Environmental: 92, Social: 78, Governance: 85, Overall: 85,
			CarbonNeutral: true, RenewableEnergyPercentage: 95,
			SustainabilityGoals: []string{
				"Accelerate sustainable transport",
				"Zero emissions manufacturing",
				"Renewable energy ecosystem",
				"Sustainable supply chain",
			},
			KeyInitiatives: []string{
				"Gigafactory renewable energy",
				"Battery recycling program",
				"Employee safety excellence",
				"Transparent reporting",
			},
		},
		{
			Symbol: "MSFT", Name: "Microsoft Corporation", Sector: "Technology",
			Environmental: 88, Social: 94, Governance: 95, Overall: 92,
			CarbonNeutral: true, RenewableEnergyPercentage: 100,
			SustainabilityGoals: []string{
				"Carbon negative by 2030",
				"100% renewable energy",
				"Zero waste operations",
				"Water positive by 2030",
			},
			KeyInitiatives: []string{
				"AI for Earth program",
				"Climate Innovation Fund",
				"Diverse workforce initiatives",
				"Transparent governance",
			},
		},
		{
			Symbol: "AAPL", Name: "Apple Inc.", Sector: "Technology",
			Environmental: 91, Social: 86, Governance: 90, Overall: 89,
			CarbonNeutral: true, RenewableEnergyPercentage: 100,
			SustainabilityGoals: []string{
				"Carbon neutral by 2030",
				"100% recycled materials",
				"Zero waste to landfill",
				"Renewable energy supply chain",
			},
			KeyInitiatives: []string{
				"Supplier Clean Energy Program",
				"Recycling robot Daisy",
				"Privacy protection",
				"Accessibility features",
			},
		},
		{
			Symbol: "NFLX", Name: "Netflix Inc.", Sector: "Media & Entertainment",
			Environmental: 75, Social: 88, Governance: 82, Overall: 82,
			CarbonNeutral: true, RenewableEnergyPercentage: 78,
			SustainabilityGoals: []string{
				"Net zero emissions by 2030",
				"Diverse content creation",
				"Global accessibility",
				"Responsible content",
			},
			KeyInitiatives: []string{
				"Carbon offset programs",
				"Inclusive storytelling",
				"Employee wellbeing",
				"Data privacy protection",
			},
		},
		{
			Symbol: "NVDA", Name: "NVIDIA Corporation", Sector: "Technology",
			Environmental: 88, Social: 85, Governance: 90, Overall: 88,
			CarbonNeutral: false, RenewableEnergyPercentage: 65,
			SustainabilityGoals: []string{
				"AI for climate solutions",
				"Sustainable computing",
				"Diverse workforce",
				"Ethical AI development",
			},
			KeyInitiatives: []string{
				"Energy efficient GPUs",
				"STEM education programs",
				"Responsible AI research",
				"Supply chain transparency",
			},
		},
		{
			Symbol: "META", Name: "Meta Platforms Inc.", Sector: "Technology",
			Environmental: 82, Social: 76, Governance: 78, Overall: 79,
			CarbonNeutral: true, RenewableEnergyPercentage: 100,
			SustainabilityGoals: []string{
				"Net zero emissions by 2030",
				"Digital inclusion",
				"Privacy protection",
				"Responsible innovation",
			},
			KeyInitiatives: []string{
				"100% renewable energy",
				"Digital literacy programs",
				"Content moderation",
				"Transparent governance",
			},
		},
		{
			Symbol: "AMZN", Name: "Amazon.com Inc.", Sector: "E-commerce",
			Environmental: 78, Social: 82, Governance: 85, Overall: 82,
			CarbonNeutral: false, RenewableEnergyPercentage: 85,
			SustainabilityGoals: []string{
				"Net zero carbon by 2040",
				"Climate pledge fund",
				"Sustainable packaging",
				"Employee development",
			},
			KeyInitiatives: []string{
				"Electric delivery fleet",
				"Renewable energy projects",
				"Skills training programs",
				"Supplier diversity",
			},
		},
	}
}

// 参照テーブルにない銘柄の合成結果に使う汎用の目標と取り組みです。
var (
	placeholderGoals = []string{
		"Carbon neutrality by 2030",
		"Sustainable operations",
		"Employee wellbeing",
		"Ethical governance",
	}
	placeholderInitiatives = []string{
		"Green energy transition",
		"Diversity programs",
		"Transparent reporting",
		"Community engagement",
	}
)

// PlaceholderGoals は合成結果用の目標リストのコピーを返します。
func PlaceholderGoals() []string {
	return append([]string(nil), placeholderGoals...)
}

// PlaceholderInitiatives は合成結果用の取り組みリストのコピーを返します。
func PlaceholderInitiatives() []string {
	return append([]string(nil), placeholderInitiatives...)
}

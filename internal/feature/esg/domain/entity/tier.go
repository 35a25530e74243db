package entity

// Recommendation は総合スコアから導出される投資シグナルです。
type Recommendation string

// RiskLevel はRecommendationと1対1で対応するリスク区分です。
type RiskLevel string

const (
	StrongBuy Recommendation = "Strong Buy"
	Buy       Recommendation = "Buy"
	Hold      Recommendation = "Hold"
)

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

const (
	// StrongBuyThreshold 以上の総合スコアは Strong Buy / Low になります。
	StrongBuyThreshold = 85
	// BuyThreshold 以上 StrongBuyThreshold 未満は Buy / Medium になります。
	BuyThreshold = 75
)

// TierFor は総合スコアに対応する推奨度とリスク区分を返します。
// 各区分の下限値はその区分に含まれます。
func TierFor(overall int) (Recommendation, RiskLevel) {
	switch {
	case overall >= StrongBuyThreshold:
		return StrongBuy, RiskLow
	case overall >= BuyThreshold:
		return Buy, RiskMedium
	default:
		return Hold, RiskHigh
	}
}

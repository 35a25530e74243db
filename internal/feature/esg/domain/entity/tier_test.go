package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestTierFor は閾値の境界で推奨度とリスク区分が正しく切り替わることを検証します。
func TestTierFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		overall  int
		wantRec  Recommendation
		wantRisk RiskLevel
	}{
		{100, StrongBuy, RiskLow},
		{85, StrongBuy, RiskLow},
		{84, Buy, RiskMedium},
		{75, Buy, RiskMedium},
		{74, Hold, RiskHigh},
		{0, Hold, RiskHigh},
	}

	for _, tt := range tests {
		rec, risk := TierFor(tt.overall)
		assert.Equal(t, tt.wantRec, rec, "overall=%d", tt.overall)
		assert.Equal(t, tt.wantRisk, risk, "overall=%d", tt.overall)
	}
}

func TestCompanyProfile_Clone(t *testing.T) {
	t.Parallel()

	orig := CompanyProfile{
		Symbol:              "AAPL",
		SustainabilityGoals: []string{"a", "b"},
		KeyInitiatives:      []string{"c"},
	}
	cp := orig.Clone()
	cp.SustainabilityGoals[0] = "changed"
	cp.KeyInitiatives[0] = "changed"

	assert.Equal(t, "a", orig.SustainabilityGoals[0])
	assert.Equal(t, "c", orig.KeyInitiatives[0])
}

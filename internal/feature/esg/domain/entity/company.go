// Package entity defines the domain models for the esg feature.
package entity

import (
	"slices"
	"time"
)

// DefaultDataSource は永続化された企業レコードのデフォルトのデータ提供元です。
const DefaultDataSource = "ESG Intelligence Engine"

// CompanyProfile は参照テーブルに登録された企業のESGベースライン情報を表します。
// スコアは慣例的に0〜100の範囲です。
type CompanyProfile struct {
	Symbol                    string   // ティッカーシンボル（大文字、一意）
	Name                      string   // 企業名
	Sector                    string   // セクター
	Environmental             int      // 環境スコア
	Social                    int      // 社会スコア
	Governance                int      // ガバナンススコア
	Overall                   int      // 総合スコア（登録時点の3スコアの平均）
	CarbonNeutral             bool     // カーボンニュートラル達成済みか
	RenewableEnergyPercentage int      // 再生可能エネルギー比率（0〜100）
	SustainabilityGoals       []string // サステナビリティ目標
	KeyInitiatives            []string // 主要な取り組み
}

// Clone はスライスを含めて独立したコピーを返します。
func (p CompanyProfile) Clone() CompanyProfile {
	p.SustainabilityGoals = slices.Clone(p.SustainabilityGoals)
	p.KeyInitiatives = slices.Clone(p.KeyInitiatives)
	return p
}

// StoredCompany は永続ストアに保存された企業レコードです。
type StoredCompany struct {
	CompanyProfile
	LastUpdated time.Time
	DataSource  string
}

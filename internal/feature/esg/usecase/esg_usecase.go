package usecase

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"esg_backend/internal/feature/esg/domain/entity"
	"esg_backend/internal/feature/esg/domain/reference"
)

const (
	// 既知銘柄の各スコアに加える揺らぎの幅
	knownJitter = 3
	// トレンドの各値に加える揺らぎの幅
	trendJitter = 1
	// トレンドの点数と間隔
	trendPoints   = 6
	trendStepDays = 30
)

// Option はESGUsecaseの依存を差し替えるための関数です。
type Option func(*ESGUsecase)

// WithRandomSource は乱数源を差し替えます。
func WithRandomSource(r RandomSource) Option {
	return func(u *ESGUsecase) { u.rnd = r }
}

// WithDelay は分析前の待機処理と待機時間を差し替えます。
func WithDelay(fn DelayFunc, d time.Duration) Option {
	return func(u *ESGUsecase) {
		u.delay = fn
		u.analysisDelay = d
	}
}

// WithClock は現在時刻の取得方法を差し替えます。
func WithClock(now func() time.Time) Option {
	return func(u *ESGUsecase) { u.now = now }
}

// RankingFilter はランキング結果の絞り込み条件です。ゼロ値は絞り込みなしを意味します。
type RankingFilter struct {
	Sector string // 大文字小文字を区別しない完全一致
	Limit  int    // 0は無制限
}

// ESGUsecase はESGスコアの分析・ランキング・集計を提供します。
// 保持する状態は不変の参照テーブルと依存関数のみです。
type ESGUsecase struct {
	table         *reference.Table
	rnd           RandomSource
	delay         DelayFunc
	analysisDelay time.Duration
	now           func() time.Time
}

// NewESGUsecase はESGUsecaseの新しいインスタンスを生成します。
func NewESGUsecase(table *reference.Table, opts ...Option) *ESGUsecase {
	u := &ESGUsecase{
		table:         table,
		rnd:           globalSource{},
		delay:         SleepContext,
		analysisDelay: DefaultAnalysisDelay,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// AnalyzeCompany は銘柄のESG分析結果を生成します。
// 参照テーブルにある銘柄はベースラインに揺らぎを加え、ない銘柄は合成値を返します。
func (u *ESGUsecase) AnalyzeCompany(ctx context.Context, symbol string) (*entity.AnalysisResult, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, ErrSymbolRequired
	}

	if err := u.delay(ctx, u.analysisDelay); err != nil {
		return nil, fmt.Errorf("analysis of %s interrupted: %w", symbol, err)
	}

	var res *entity.AnalysisResult
	if p, ok := u.table.Lookup(symbol); ok {
		res = u.analyzeKnown(p)
	} else {
		res = u.synthesize(symbol)
	}
	res.Recommendation, res.RiskLevel = entity.TierFor(res.Scores.Overall)
	res.AnalyzedAt = u.now()
	return res, nil
}

func (u *ESGUsecase) analyzeKnown(p entity.CompanyProfile) *entity.AnalysisResult {
	env := clampScore(p.Environmental + between(u.rnd, -knownJitter, knownJitter))
	soc := clampScore(p.Social + between(u.rnd, -knownJitter, knownJitter))
	gov := clampScore(p.Governance + between(u.rnd, -knownJitter, knownJitter))

	return &entity.AnalysisResult{
		Symbol: p.Symbol,
		Name:   p.Name,
		Sector: p.Sector,
		Scores: entity.Scores{
			Environmental: env,
			Social:        soc,
			Governance:    gov,
			// 保存済みのOverallではなく、揺らぎ後のスコアから再計算する
			Overall: clampScore((env + soc + gov) / 3),
		},
		CarbonNeutral:       p.CarbonNeutral,
		RenewableEnergy:     p.RenewableEnergyPercentage,
		SustainabilityGoals: p.SustainabilityGoals,
		KeyInitiatives:      p.KeyInitiatives,
		Confidence:          between(u.rnd, 85, 98),
	}
}

func (u *ESGUsecase) synthesize(symbol string) *entity.AnalysisResult {
	env := between(u.rnd, 60, 95)
	soc := between(u.rnd, 65, 90)
	gov := between(u.rnd, 70, 95)
	carbon := u.rnd.IntN(2) == 1
	renewable := between(u.rnd, 30, 100)

	return &entity.AnalysisResult{
		Symbol: symbol,
		Name:   symbol + " Corporation",
		Sector: "Technology",
		Scores: entity.Scores{
			Environmental: env,
			Social:        soc,
			Governance:    gov,
			Overall:       (env + soc + gov) / 3,
		},
		CarbonNeutral:       carbon,
		RenewableEnergy:     renewable,
		SustainabilityGoals: reference.PlaceholderGoals(),
		KeyInitiatives:      reference.PlaceholderInitiatives(),
		Confidence:          between(u.rnd, 75, 95),
		Synthetic:           true,
	}
}

// GetRankings は参照テーブルの企業をベースラインの総合スコアの降順で返します。
// 同点の場合は登録順です。絞り込みは順位付けの後に適用されるため、順位は常に全体での順位です。
func (u *ESGUsecase) GetRankings(ctx context.Context, f RankingFilter) ([]entity.RankedCompany, error) {
	if f.Limit < 0 {
		return nil, ErrInvalidLimit
	}

	profiles := u.table.All()
	slices.SortStableFunc(profiles, func(a, b entity.CompanyProfile) int {
		return cmp.Compare(b.Overall, a.Overall)
	})

	out := make([]entity.RankedCompany, 0, len(profiles))
	for i, p := range profiles {
		rec, _ := entity.TierFor(p.Overall)
		rc := entity.RankedCompany{
			Rank:            i + 1,
			Symbol:          p.Symbol,
			Name:            p.Name,
			Sector:          p.Sector,
			OverallScore:    p.Overall,
			Environmental:   p.Environmental,
			Social:          p.Social,
			Governance:      p.Governance,
			CarbonNeutral:   p.CarbonNeutral,
			RenewableEnergy: p.RenewableEnergyPercentage,
			Recommendation:  rec,
		}
		if f.Sector != "" && !strings.EqualFold(f.Sector, p.Sector) {
			continue
		}
		out = append(out, rc)
		if f.Limit > 0 && len(out) == f.Limit {
			break
		}
	}
	return out, nil
}

// GetTrends は直近6か月分の合成トレンドを古い順に返します。呼び出しごとに再計算されます。
func (u *ESGUsecase) GetTrends(ctx context.Context) ([]entity.TrendPoint, error) {
	const day = 24 * time.Hour
	base := u.now().Add(-time.Duration((trendPoints-1)*trendStepDays) * day)

	out := make([]entity.TrendPoint, 0, trendPoints)
	for i := range trendPoints {
		month := base.Add(time.Duration(trendStepDays*i) * day)
		out = append(out, entity.TrendPoint{
			Month:         month.Format("Jan"),
			Environmental: 72 + 2*i + u.jitter(),
			Social:        68 + 2*i + u.jitter(),
			Governance:    85 + i + u.jitter(),
			Overall:       75 + 1.5*float64(i) + float64(u.jitter()),
		})
	}
	return out, nil
}

// GetSectorAnalysis は固定のセクター別集計を返します。
func (u *ESGUsecase) GetSectorAnalysis(ctx context.Context) ([]entity.SectorSummary, error) {
	return reference.SectorAnalysis(), nil
}

// GetMetricsSummary は固定のESG統計サマリーを返します。
func (u *ESGUsecase) GetMetricsSummary(ctx context.Context) (*entity.MetricsSummary, error) {
	m := reference.MetricsSummary()
	return &m, nil
}

func (u *ESGUsecase) jitter() int {
	return between(u.rnd, -trendJitter, trendJitter)
}

// clampScore はスコアを [0, 100] に収めます。
func clampScore(v int) int {
	return min(max(v, 0), 100)
}

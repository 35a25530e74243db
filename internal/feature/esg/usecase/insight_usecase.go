package usecase

import (
	"context"
	"fmt"
	"strings"

	"esg_backend/internal/feature/esg/domain/entity"
	"esg_backend/internal/feature/esg/domain/reference"
	"esg_backend/internal/shared/ratelimiter"
)

// InsightPromptTemplate は企業のESGプロファイルを要約させるプロンプトです。
const InsightPromptTemplate = "Summarise the ESG profile of %s (%s, %s sector) in three short bullet points for an investor. " +
	"Scores out of 100: environmental %d, social %d, governance %d, overall %d. " +
	"Carbon neutral: %t. Renewable energy share: %d%%. " +
	"Sustainability goals: %s. Key initiatives: %s."

// Narrator はプロンプトから文章を生成する外部サービスです。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type Narrator interface {
	Narrate(ctx context.Context, prompt string) (string, error)
}

// InsightUsecase は参照テーブルの企業について生成テキストを返します。
type InsightUsecase struct {
	table    *reference.Table
	narrator Narrator
	limiter  ratelimiter.RateLimiterInterface
}

// NewInsightUsecase は新しいInsightUsecaseを生成します。
func NewInsightUsecase(table *reference.Table, narrator Narrator, limiter ratelimiter.RateLimiterInterface) *InsightUsecase {
	return &InsightUsecase{table: table, narrator: narrator, limiter: limiter}
}

// Insight は銘柄のESGプロファイルに対する要約を生成します。
// 参照テーブルにない銘柄はErrCompanyNotFoundになります。
// レート制限の待機中にctxがキャンセルされた場合はctx.Err()を返します。
func (u *InsightUsecase) Insight(ctx context.Context, symbol string) (*entity.Insight, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, ErrSymbolRequired
	}
	p, ok := u.table.Lookup(symbol)
	if !ok {
		return nil, ErrCompanyNotFound
	}

	// キャンセルはGemini側の失敗ではないためそのまま返す
	if err := u.limiter.WaitIfNeeded(ctx); err != nil {
		return nil, err
	}
	summary, err := u.narrator.Narrate(ctx, BuildInsightPrompt(p))
	if err != nil {
		return nil, fmt.Errorf("%w for %s: %w", ErrInsightFailed, symbol, err)
	}
	return &entity.Insight{
		Symbol:  p.Symbol,
		Name:    p.Name,
		Summary: strings.TrimSpace(summary),
	}, nil
}

// BuildInsightPrompt はプロファイルからプロンプト文字列を組み立てます。
func BuildInsightPrompt(p entity.CompanyProfile) string {
	return fmt.Sprintf(InsightPromptTemplate,
		p.Name, p.Symbol, p.Sector,
		p.Environmental, p.Social, p.Governance, p.Overall,
		p.CarbonNeutral, p.RenewableEnergyPercentage,
		strings.Join(p.SustainabilityGoals, "; "),
		strings.Join(p.KeyInitiatives, "; "),
	)
}

package usecase

import (
	"context"
	"strings"

	"esg_backend/internal/feature/esg/domain/entity"
)

// CompanyRepository は永続化された企業レコードへのアクセスを抽象化します。
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type CompanyRepository interface {
	// LoadAll は保存されているすべての企業を登録順に返します。
	LoadAll(ctx context.Context) ([]entity.StoredCompany, error)
	// FindBySymbol は大文字のシンボルで企業を検索します。見つからない場合はErrCompanyNotFoundを返します。
	FindBySymbol(ctx context.Context, symbol string) (*entity.StoredCompany, error)
	// ReplaceAll は既存の企業をすべて削除し、与えられた企業で置き換えます。
	ReplaceAll(ctx context.Context, companies []entity.CompanyProfile) error
}

// CompanyUsecase は永続ストア上の企業レコードの読み取りを提供します。
type CompanyUsecase struct {
	repo CompanyRepository
}

// NewCompanyUsecase は新しいCompanyUsecaseを生成します。
func NewCompanyUsecase(repo CompanyRepository) *CompanyUsecase {
	return &CompanyUsecase{repo: repo}
}

// ListCompanies は保存されているすべての企業を返します。
func (u *CompanyUsecase) ListCompanies(ctx context.Context) ([]entity.StoredCompany, error) {
	return u.repo.LoadAll(ctx)
}

// GetCompany はシンボルを大文字に正規化して企業を1件取得します。
func (u *CompanyUsecase) GetCompany(ctx context.Context, symbol string) (*entity.StoredCompany, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, ErrSymbolRequired
	}
	return u.repo.FindBySymbol(ctx, symbol)
}

package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"esg_backend/internal/feature/esg/domain/reference"
)

// PopulateUsecase は参照テーブルの内容で永続ストアを丸ごと置き換えます。
// スコアリング系のエンドポイントからは呼ばれず、メンテナンス用のコマンドからのみ使われます。
type PopulateUsecase struct {
	repo  CompanyRepository
	table *reference.Table
}

// NewPopulateUsecase は新しいPopulateUsecaseを生成します。
func NewPopulateUsecase(repo CompanyRepository, table *reference.Table) *PopulateUsecase {
	return &PopulateUsecase{repo: repo, table: table}
}

// Populate は既存レコードを削除してから参照テーブルの全企業を挿入し、挿入件数を返します。
func (u *PopulateUsecase) Populate(ctx context.Context) (int, error) {
	companies := u.table.All()
	if err := u.repo.ReplaceAll(ctx, companies); err != nil {
		return 0, fmt.Errorf("populate companies: %w", err)
	}
	slog.Info("company store populated", "count", len(companies))
	return len(companies), nil
}

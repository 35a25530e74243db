package adapters

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"esg_backend/internal/feature/esg/domain/entity"
	"esg_backend/internal/feature/esg/usecase"
)

// 目標・取り組みのリストを1カラムに保存する際の区切り文字
const listSeparator = "|"

// PostgreSQLの undefined_table
const pgUndefinedTable = "42P01"

type companyGorm struct {
	db  *gorm.DB
	now func() time.Time
}

var _ usecase.CompanyRepository = (*companyGorm)(nil)

func NewCompanyRepository(db *gorm.DB) *companyGorm {
	return &companyGorm{db: db, now: time.Now}
}

type CompanyModel struct {
	ID     uint   `gorm:"primaryKey"`
	Symbol string `gorm:"size:10;not null;uniqueIndex"`
	Name   string `gorm:"size:200;not null"`
	Sector string `gorm:"size:100"`

	EnvironmentalScore        float64 `gorm:"not null"`
	SocialScore               float64 `gorm:"not null"`
	GovernanceScore           float64 `gorm:"not null"`
	OverallScore              float64 `gorm:"not null"`
	CarbonNeutral             bool    `gorm:"not null"`
	RenewableEnergyPercentage float64 `gorm:"not null"`
	SustainabilityGoals       string  `gorm:"type:text"`
	KeyInitiatives            string  `gorm:"type:text"`

	LastUpdated time.Time `gorm:"not null"`
	DataSource  string    `gorm:"size:100"`
}

func (CompanyModel) TableName() string {
	return "esg_companies"
}

func toModel(p entity.CompanyProfile, updated time.Time) CompanyModel {
	return CompanyModel{
		Symbol:                    p.Symbol,
		Name:                      p.Name,
		Sector:                    p.Sector,
		EnvironmentalScore:        float64(p.Environmental),
		SocialScore:               float64(p.Social),
		GovernanceScore:           float64(p.Governance),
		OverallScore:              float64(p.Overall),
		CarbonNeutral:             p.CarbonNeutral,
		RenewableEnergyPercentage: float64(p.RenewableEnergyPercentage),
		SustainabilityGoals:       strings.Join(p.SustainabilityGoals, listSeparator),
		KeyInitiatives:            strings.Join(p.KeyInitiatives, listSeparator),
		LastUpdated:               updated,
		DataSource:                entity.DefaultDataSource,
	}
}

func toEntity(m CompanyModel) entity.StoredCompany {
	return entity.StoredCompany{
		CompanyProfile: entity.CompanyProfile{
			Symbol:                    m.Symbol,
			Name:                      m.Name,
			Sector:                    m.Sector,
			Environmental:             int(m.EnvironmentalScore),
			Social:                    int(m.SocialScore),
			Governance:                int(m.GovernanceScore),
			Overall:                   int(m.OverallScore),
			CarbonNeutral:             m.CarbonNeutral,
			RenewableEnergyPercentage: int(m.RenewableEnergyPercentage),
			SustainabilityGoals:       splitList(m.SustainabilityGoals),
			KeyInitiatives:            splitList(m.KeyInitiatives),
		},
		LastUpdated: m.LastUpdated,
		DataSource:  m.DataSource,
	}
}

func splitList(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, listSeparator)
}

// ReplaceAll は1トランザクション内で全件削除と一括挿入を行います。
func (r *companyGorm) ReplaceAll(ctx context.Context, companies []entity.CompanyProfile) error {
	updated := r.now().UTC()
	ms := make([]CompanyModel, 0, len(companies))
	for _, p := range companies {
		ms = append(ms, toModel(p, updated))
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&CompanyModel{}).Error; err != nil {
			return fmt.Errorf("delete companies: %w", err)
		}
		if len(ms) == 0 {
			return nil
		}
		if err := tx.Create(&ms).Error; err != nil {
			return fmt.Errorf("insert companies: %w", err)
		}
		return nil
	})
}

// LoadAll は登録順に全件を返します。テーブルが未作成の場合は空として扱います。
func (r *companyGorm) LoadAll(ctx context.Context) ([]entity.StoredCompany, error) {
	var rows []CompanyModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		if isUndefinedTable(err) {
			return []entity.StoredCompany{}, nil
		}
		return nil, err
	}
	out := make([]entity.StoredCompany, 0, len(rows))
	for _, m := range rows {
		out = append(out, toEntity(m))
	}
	return out, nil
}

func (r *companyGorm) FindBySymbol(ctx context.Context, symbol string) (*entity.StoredCompany, error) {
	var m CompanyModel
	err := r.db.WithContext(ctx).Where("symbol = ?", symbol).First(&m).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound), isUndefinedTable(err):
		return nil, usecase.ErrCompanyNotFound
	case err != nil:
		return nil, err
	}
	c := toEntity(m)
	return &c, nil
}

// isUndefinedTable はテーブル未作成を示すエラーかどうかを判定します（PostgreSQL / SQLite）。
func isUndefinedTable(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUndefinedTable
	}
	return strings.Contains(err.Error(), "no such table")
}

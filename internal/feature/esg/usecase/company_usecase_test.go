package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"esg_backend/internal/feature/esg/domain/entity"
	"esg_backend/internal/feature/esg/domain/reference"
	"esg_backend/internal/feature/esg/usecase"
)

// mockCompanyRepository はCompanyRepositoryインターフェースのモック実装です。
type mockCompanyRepository struct {
	LoadAllFunc      func(ctx context.Context) ([]entity.StoredCompany, error)
	FindBySymbolFunc func(ctx context.Context, symbol string) (*entity.StoredCompany, error)
	ReplaceAllFunc   func(ctx context.Context, companies []entity.CompanyProfile) error
}

func (m *mockCompanyRepository) LoadAll(ctx context.Context) ([]entity.StoredCompany, error) {
	if m.LoadAllFunc != nil {
		return m.LoadAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockCompanyRepository) FindBySymbol(ctx context.Context, symbol string) (*entity.StoredCompany, error) {
	if m.FindBySymbolFunc != nil {
		return m.FindBySymbolFunc(ctx, symbol)
	}
	return nil, usecase.ErrCompanyNotFound
}

func (m *mockCompanyRepository) ReplaceAll(ctx context.Context, companies []entity.CompanyProfile) error {
	if m.ReplaceAllFunc != nil {
		return m.ReplaceAllFunc(ctx, companies)
	}
	return nil
}

func storedAAPL() entity.StoredCompany {
	p, _ := reference.Default().Lookup("AAPL")
	return entity.StoredCompany{
		CompanyProfile: p,
		LastUpdated:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		DataSource:     entity.DefaultDataSource,
	}
}

func TestCompanyUsecase_ListCompanies(t *testing.T) {
	t.Parallel()

	dbErr := errors.New("database connection failed")

	tests := []struct {
		name    string
		loadAll func(ctx context.Context) ([]entity.StoredCompany, error)
		want    []entity.StoredCompany
		wantErr error
	}{
		{
			name: "success: returns stored companies",
			loadAll: func(ctx context.Context) ([]entity.StoredCompany, error) {
				return []entity.StoredCompany{storedAAPL()}, nil
			},
			want: []entity.StoredCompany{storedAAPL()},
		},
		{
			name: "success: empty store",
			loadAll: func(ctx context.Context) ([]entity.StoredCompany, error) {
				return []entity.StoredCompany{}, nil
			},
			want: []entity.StoredCompany{},
		},
		{
			name: "failure: repository error is propagated",
			loadAll: func(ctx context.Context) ([]entity.StoredCompany, error) {
				return nil, dbErr
			},
			wantErr: dbErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			uc := usecase.NewCompanyUsecase(&mockCompanyRepository{LoadAllFunc: tt.loadAll})
			got, err := uc.ListCompanies(context.Background())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCompanyUsecase_GetCompany(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		symbol     string
		wantLookup string
		wantErr    error
	}{
		{name: "success: symbol is uppercased", symbol: " aapl ", wantLookup: "AAPL"},
		{name: "failure: not found", symbol: "nope", wantLookup: "NOPE", wantErr: usecase.ErrCompanyNotFound},
		{name: "failure: empty symbol", symbol: " ", wantErr: usecase.ErrSymbolRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var looked string
			repo := &mockCompanyRepository{
				FindBySymbolFunc: func(ctx context.Context, symbol string) (*entity.StoredCompany, error) {
					looked = symbol
					if symbol == "AAPL" {
						c := storedAAPL()
						return &c, nil
					}
					return nil, usecase.ErrCompanyNotFound
				},
			}
			uc := usecase.NewCompanyUsecase(repo)

			got, err := uc.GetCompany(context.Background(), tt.symbol)
			assert.Equal(t, tt.wantLookup, looked)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Apple Inc.", got.Name)
		})
	}
}

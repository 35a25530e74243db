// Package reference は起動時に一度だけ構築される参照データ（企業テーブルと固定の集計値）を提供します。
package reference

import (
	"errors"
	"fmt"
	"strings"

	"esg_backend/internal/feature/esg/domain/entity"
)

var (
	// ErrEmptySymbol はシンボルが空のプロファイルが渡された場合に返されます。
	ErrEmptySymbol = errors.New("reference: empty symbol")
	// ErrDuplicateSymbol は同じシンボルが複数回登録された場合に返されます。
	ErrDuplicateSymbol = errors.New("reference: duplicate symbol")
)

// Table は企業プロファイルの不変な参照テーブルです。
// 構築後は変更されないため、複数のgoroutineから同時に読み取れます。
type Table struct {
	order    []string
	bySymbol map[string]entity.CompanyProfile
}

// NewTable は与えられたプロファイルから参照テーブルを構築します。
// シンボルは大文字に正規化され、登録順が保持されます。
func NewTable(profiles []entity.CompanyProfile) (*Table, error) {
	t := &Table{
		order:    make([]string, 0, len(profiles)),
		bySymbol: make(map[string]entity.CompanyProfile, len(profiles)),
	}
	for _, p := range profiles {
		sym := strings.ToUpper(strings.TrimSpace(p.Symbol))
		if sym == "" {
			return nil, ErrEmptySymbol
		}
		if _, ok := t.bySymbol[sym]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSymbol, sym)
		}
		p = p.Clone()
		p.Symbol = sym
		t.order = append(t.order, sym)
		t.bySymbol[sym] = p
	}
	return t, nil
}

// Default は組み込みの企業リストから参照テーブルを構築します。
func Default() *Table {
	t, err := NewTable(DefaultProfiles())
	if err != nil {
		// 組み込みデータが不正な場合のみ到達する
		panic(err)
	}
	return t
}

// Lookup は大文字のシンボルに対応するプロファイルのコピーを返します。
func (t *Table) Lookup(symbol string) (entity.CompanyProfile, bool) {
	p, ok := t.bySymbol[symbol]
	if !ok {
		return entity.CompanyProfile{}, false
	}
	return p.Clone(), true
}

// All は登録順にすべてのプロファイルのコピーを返します。
func (t *Table) All() []entity.CompanyProfile {
	out := make([]entity.CompanyProfile, 0, len(t.order))
	for _, sym := range t.order {
		out = append(out, t.bySymbol[sym].Clone())
	}
	return out
}

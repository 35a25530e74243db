// Package usecase はesgフィーチャーのビジネスロジックを実装します。
package usecase

import "errors"

var (
	// ErrSymbolRequired is returned when the company symbol is missing or blank.
	ErrSymbolRequired = errors.New("company symbol is required")

	// ErrCompanyNotFound is returned when a company cannot be found by symbol.
	ErrCompanyNotFound = errors.New("company not found")

	// ErrInvalidLimit is returned when a ranking limit is negative.
	ErrInvalidLimit = errors.New("limit must be a positive integer")

	// ErrInsightFailed is returned when the narrative generator fails.
	ErrInsightFailed = errors.New("insight generation failed")
)

package dto

import (
	"strings"

	"hotel/shared/constant"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

// QueryParams limits and orders a listing. SortBy is always set by code, never from input.
type QueryParams struct {
	Limit   int    `validate:"omitempty,gte=0"`
	SortBy  string `validate:"omitempty"`
	SortDir string `validate:"omitempty,oneof=ASC DESC"`
}

// Recent orders by column newest first and keeps the default number of rows.
func Recent(column string, limit int) QueryParams {
	params := QueryParams{
		Limit:   limit,
		SortBy:  column,
		SortDir: SortDirDesc,
	}
	params.Normalize()

	return params
}

// Normalize uppercases SortDir and fills a non-positive Limit with the default.
func (q *QueryParams) Normalize() {
	q.SortDir = strings.ToUpper(q.SortDir)
	if q.SortDir != SortDirAsc && q.SortDir != SortDirDesc {
		q.SortDir = constant.DefaultValueSortDir
	}

	if q.Limit <= 0 {
		q.Limit = constant.DefaultValueLimit
	}
}

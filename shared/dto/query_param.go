package dto

import (
	"strings"

	"github.com/Satyam7Parsad/hotel-management-system/shared/constant"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty,gte=0"`
	Limit   int    `json:"limit"    validate:"omitempty,gte=0"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// Normalize fills in default paging values and uppercases the sort direction.
// Callers listing unbounded tables should call this before handing the params
// to a repository.
func (q *QueryParams) Normalize() {
	if q.Page <= 0 {
		q.Page = constant.DefaultValuePage
	}

	if q.Limit <= 0 {
		q.Limit = constant.DefaultValueLimit
	}

	if q.SortBy == "" {
		q.SortBy = constant.DefaultValueSortBy
	}

	dir := strings.ToUpper(q.SortDir)
	if dir != SortDirAsc && dir != SortDirDesc {
		dir = constant.DefaultValueSortDir
	}

	q.SortDir = dir
}

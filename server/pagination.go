package server

import (
	"fmt"
	"net/http"
	"strconv"

	"showsync/pkg/pagination"
)

// PaginatedResponse wraps a page of results with its pagination metadata.
type PaginatedResponse struct {
	Error    *string         `json:"error,omitempty"`
	Response any             `json:"response"`
	Meta     pagination.Meta `json:"meta"`
}

// ParsePaginationParams extracts and validates pagination params from request
func ParsePaginationParams(r *http.Request) (pagination.Params, error) {
	params := pagination.Params{
		Page:     1,
		PageSize: 0,
	}

	qp := r.URL.Query()

	if pageStr := qp.Get("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil || page < 1 {
			return params, fmt.Errorf("invalid page parameter: must be positive integer")
		}
		params.Page = page
	}

	if pageSizeStr := qp.Get("pageSize"); pageSizeStr != "" {
		pageSize, err := strconv.Atoi(pageSizeStr)
		if err != nil || pageSize < 0 {
			return params, fmt.Errorf("invalid pageSize parameter: must be non-negative integer")
		}
		params.PageSize = pageSize
	}

	return params, nil
}

// pageOf slices one page out of items per the given params. A zero page
// size means no pagination and returns everything.
func pageOf[T any](items []T, params pagination.Params) []T {
	offset, limit := params.CalculateOffsetLimit()
	if limit == 0 {
		return items
	}
	if offset >= len(items) {
		return []T{}
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

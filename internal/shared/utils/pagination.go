package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/shared/constants"
)

// Pagination holds parsed offset/limit pagination parameters.
type Pagination struct {
	Page  int
	Limit int
}

// Offset returns the number of rows to skip.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

// PaginationMeta is the pagination block returned with list responses.
type PaginationMeta struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// ValidatePagination normalizes pagination parameters.
// Page defaults to DefaultPage if less than 1.
// Limit defaults to DefaultLimit if less than 1, and is capped at MaxLimit.
func ValidatePagination(page, limit int) Pagination {
	if page < 1 {
		page = constants.DefaultPage
	}
	if limit < 1 {
		limit = constants.DefaultLimit
	}
	if limit > constants.MaxLimit {
		limit = constants.MaxLimit
	}
	return Pagination{Page: page, Limit: limit}
}

// ParsePagination reads "page" and "limit" from the query string.
// Missing or malformed values fall back to the defaults.
func ParsePagination(c *gin.Context) Pagination {
	return ValidatePagination(
		parseQueryInt(c, "page", constants.DefaultPage),
		parseQueryInt(c, "limit", constants.DefaultLimit),
	)
}

func parseQueryInt(c *gin.Context, key string, defaultVal int) int {
	if val := c.Query(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}

// NewPaginationMeta builds the response block; pages is ceil(total/limit).
func NewPaginationMeta(p Pagination, total int64) PaginationMeta {
	return PaginationMeta{
		Page:  p.Page,
		Limit: p.Limit,
		Total: total,
		Pages: TotalPages(total, p.Limit),
	}
}

// TotalPages calculates ceil(total/limit). Zero rows means zero pages.
func TotalPages(total int64, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

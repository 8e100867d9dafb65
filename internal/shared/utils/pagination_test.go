package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"helpdesk/internal/shared/constants"
)

func TestValidatePagination(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
	}{
		{"valid values", 2, 20, 2, 20},
		{"page below one", 0, 20, constants.DefaultPage, 20},
		{"negative page", -3, 20, constants.DefaultPage, 20},
		{"zero limit", 1, 0, 1, constants.DefaultLimit},
		{"limit over max", 1, 500, 1, constants.MaxLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidatePagination(tt.page, tt.limit)
			assert.Equal(t, tt.wantPage, got.Page)
			assert.Equal(t, tt.wantLimit, got.Limit)
		})
	}
}

func TestParsePagination(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "", 1, 10},
		{"explicit", "?page=3&limit=25", 3, 25},
		{"garbage falls back", "?page=abc&limit=x", 1, 10},
		{"limit capped", "?limit=1000", 1, constants.MaxLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/tickets"+tt.query, nil)

			got := ParsePagination(c)
			assert.Equal(t, tt.wantPage, got.Page)
			assert.Equal(t, tt.wantLimit, got.Limit)
		})
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 0, TotalPages(5, 0))
}

func TestPagination_Offset(t *testing.T) {
	assert.Equal(t, 0, Pagination{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 20, Pagination{Page: 3, Limit: 10}.Offset())
}

func TestNewPaginationMeta(t *testing.T) {
	meta := NewPaginationMeta(Pagination{Page: 2, Limit: 10}, 25)
	assert.Equal(t, PaginationMeta{Page: 2, Limit: 10, Total: 25, Pages: 3}, meta)
}

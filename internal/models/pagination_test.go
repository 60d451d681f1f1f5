package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name    string
		page    int
		perPage int
		total   int64
		want    Pagination
	}{
		{
			name: "single page", page: 1, perPage: 12, total: 5,
			want: Pagination{Page: 1, Pages: 1, PerPage: 12, Total: 5},
		},
		{
			name: "partial last page rounds up", page: 1, perPage: 12, total: 25,
			want: Pagination{Page: 1, Pages: 3, PerPage: 12, Total: 25, HasNext: true},
		},
		{
			name: "middle page", page: 2, perPage: 12, total: 25,
			want: Pagination{Page: 2, Pages: 3, PerPage: 12, Total: 25, HasNext: true, HasPrev: true},
		},
		{
			name: "last page", page: 3, perPage: 12, total: 25,
			want: Pagination{Page: 3, Pages: 3, PerPage: 12, Total: 25, HasPrev: true},
		},
		{
			name: "empty catalog", page: 1, perPage: 12, total: 0,
			want: Pagination{Page: 1, Pages: 0, PerPage: 12, Total: 0},
		},
		{
			name: "page beyond the end", page: 9, perPage: 12, total: 25,
			want: Pagination{Page: 9, Pages: 3, PerPage: 12, Total: 25, HasPrev: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewPagination(tt.page, tt.perPage, tt.total))
		})
	}
}

package response

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPagination_Bounds(t *testing.T) {
	tests := []struct {
		name               string
		page, limit, total int
		wantStart, wantEnd int
	}{
		{"first page", 1, 2, 5, 0, 2},
		{"middle page", 2, 2, 5, 2, 4},
		{"last partial page", 3, 2, 5, 4, 5},
		{"past the end", 4, 2, 5, 5, 5},
		{"max int page", math.MaxInt, 20, 5, 5, 5},
		{"empty total", 1, 20, 0, 0, 0},
		{"zero limit", 1, 0, 5, 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := NewPagination(tt.page, tt.limit, tt.total).Bounds()
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestNewPagination_TotalPages(t *testing.T) {
	assert.Equal(t, 3, NewPagination(1, 2, 5).TotalPages)
	assert.Equal(t, 0, NewPagination(1, 20, 0).TotalPages)
	assert.Equal(t, 0, NewPagination(1, 0, 5).TotalPages)
}

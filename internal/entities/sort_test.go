package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSortMode(t *testing.T) {
	tests := []struct {
		raw  string
		want SortMode
	}{
		{"recency", SortRecency},
		{"rating", SortRating},
		{"title", SortTitle},
		{"", SortRecency},
		{"unknown-mode", SortRecency},
		{"TITLE", SortRecency}, // matching is case-sensitive
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSortMode(tt.raw))
		})
	}
}

package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeClampsOutOfRangeValues(t *testing.T) {
	cases := []struct {
		name         string
		page         int
		pageSize     int
		wantPage     int
		wantPageSize int
	}{
		{"defaults on zero", 0, 0, 1, 20},
		{"negative page", -3, 10, 1, 10},
		{"oversized pageSize", 2, 500, 2, 20},
		{"valid values untouched", 4, 100, 4, 100},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := Pagination{Page: tc.page, PageSize: tc.pageSize}
			p.Normalize()
			assert.Equal(t, tc.wantPage, p.Page)
			assert.Equal(t, tc.wantPageSize, p.PageSize)
		})
	}
}

func TestOffset(t *testing.T) {
	p := Pagination{Page: 3, PageSize: 25}
	assert.Equal(t, 50, p.Offset())
}

func TestNewMetaRoundsPagesUp(t *testing.T) {
	p := Pagination{Page: 1, PageSize: 20}
	meta := NewMeta(p, 41)

	assert.Equal(t, 3, meta.TotalPages)
	assert.Equal(t, int64(41), meta.TotalItems)
	assert.Equal(t, 1, meta.CurrentPage)
	assert.Equal(t, 20, meta.PageSize)
}

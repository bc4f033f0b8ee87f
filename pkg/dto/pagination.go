package dto

const (
	defaultPage     = 1
	defaultPageSize = 20
	maxPageSize     = 100
)

// Pagination is the offset-pagination query pair shared by every list
// endpoint. Out-of-range values clamp to defaults instead of erroring.
type Pagination struct {
	Page     int `form:"page"`
	PageSize int `form:"pageSize"`
}

// Normalize clamps page and pageSize into their allowed ranges.
func (p *Pagination) Normalize() {
	if p.Page < 1 {
		p.Page = defaultPage
	}
	if p.PageSize < 1 || p.PageSize > maxPageSize {
		p.PageSize = defaultPageSize
	}
}

// Offset returns the row offset for the normalized page.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

type PaginationMeta struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalItems  int64 `json:"totalItems"`
	PageSize    int   `json:"pageSize"`
}

// NewMeta builds the pagination envelope for a normalized request.
func NewMeta(p Pagination, total int64) PaginationMeta {
	pages := int(total) / p.PageSize
	if int(total)%p.PageSize != 0 {
		pages++
	}
	return PaginationMeta{
		CurrentPage: p.Page,
		TotalPages:  pages,
		TotalItems:  total,
		PageSize:    p.PageSize,
	}
}

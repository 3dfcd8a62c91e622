package query

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Pagination is a validated page request.
type Pagination struct {
	Page     int
	PageSize int
}

// NewPagination clamps raw values to sane bounds. Zero or negative input
// falls back to the defaults.
func NewPagination(page, pageSize int) Pagination {
	if page < 1 {
		page = DefaultPage
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	return Pagination{Page: page, PageSize: pageSize}
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

func (p Pagination) Limit() int {
	return p.PageSize
}

// TotalPages derives the page count from a total row count.
func (p Pagination) TotalPages(total int64) int {
	if total <= 0 {
		return 0
	}
	pages := total / int64(p.PageSize)
	if total%int64(p.PageSize) != 0 {
		pages++
	}
	return int(pages)
}

// Page is one page of results plus the paging envelope.
type Page[T any] struct {
	Data       []T   `json:"data"`
	Page       int   `json:"page"`
	TotalPages int   `json:"totalPages"`
	Total      int64 `json:"total"`
}

// NewPage assembles the envelope. A nil slice is normalized to an empty
// one so the JSON is always an array.
func NewPage[T any](data []T, p Pagination, total int64) Page[T] {
	if data == nil {
		data = []T{}
	}

	return Page[T]{
		Data:       data,
		Page:       p.Page,
		TotalPages: p.TotalPages(total),
		Total:      total,
	}
}

package result

// NoTotal marks a pager whose total count was not computed.
const NoTotal int64 = -1

// Pager default paging parameters.
const (
	DefaultPageNum  int64 = 1
	DefaultPageSize int64 = 20
)

// Pager is a paged query result.
type Pager[T any] struct {
	// TotalNum is the total number of matching records, or NoTotal when
	// the query did not count them.
	TotalNum int64 `json:"totalNum"`
	// PageNum is the 1-based page number.
	PageNum int64 `json:"pageNum"`
	// PageSize is the number of records per page.
	PageSize int64 `json:"pageSize"`
	// Items holds the records of this page.
	Items []T `json:"items"`
	// Meta carries extra page-level data.
	Meta map[string]any `json:"meta,omitempty"`
}

// NewPager builds a pager from its parts.
func NewPager[T any](items []T, pageSize, pageNum, totalNum int64, meta map[string]any) *Pager[T] {
	return &Pager[T]{
		TotalNum: totalNum,
		PageNum:  pageNum,
		PageSize: pageSize,
		Items:    items,
		Meta:     meta,
	}
}

// EmptyPager returns a pager with the default paging parameters and an
// unknown total.
func EmptyPager[T any]() *Pager[T] {
	return &Pager[T]{
		TotalNum: NoTotal,
		PageNum:  DefaultPageNum,
		PageSize: DefaultPageSize,
	}
}

// SetTotal records the total count; nil means unknown.
func (p *Pager[T]) SetTotal(total *int64) {
	if total == nil {
		p.TotalNum = NoTotal
		return
	}
	p.TotalNum = *total
}

// MapPager converts a pager's items with fn, keeping the paging
// parameters unchanged.
func MapPager[T, E any](p *Pager[T], fn func(T) E) *Pager[E] {
	items := make([]E, len(p.Items))
	for i, it := range p.Items {
		items[i] = fn(it)
	}
	return &Pager[E]{
		TotalNum: p.TotalNum,
		PageNum:  p.PageNum,
		PageSize: p.PageSize,
		Items:    items,
		Meta:     p.Meta,
	}
}

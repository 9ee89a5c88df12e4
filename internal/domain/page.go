package domain

const (
	// DefaultPageSize is applied when a page request does not specify a size.
	DefaultPageSize = 20
	// MaxPageSize caps the number of elements a single page may request.
	MaxPageSize = 100
)

// SortOrder is a single sort criterion: a field name and a direction.
type SortOrder struct {
	Field string
	Desc  bool
}

// PageRequest describes an offset-indexed slice of a result set plus an
// optional sort order. Page indices are zero-based.
type PageRequest struct {
	Page int
	Size int
	Sort []SortOrder
}

// Normalize returns a copy of the request with the page index floored at zero
// and the size clamped to [1, MaxPageSize], defaulting to DefaultPageSize
// when unset.
func (r PageRequest) Normalize() PageRequest {
	if r.Page < 0 {
		r.Page = 0
	}
	if r.Size <= 0 {
		r.Size = DefaultPageSize
	}
	if r.Size > MaxPageSize {
		r.Size = MaxPageSize
	}
	return r
}

// Offset returns the element offset for this request.
func (r PageRequest) Offset() int {
	return r.Page * r.Size
}

// Page is a bounded slice of a result set together with total element and
// page counts. A page past the end of the result set has empty Content but
// still reports correct totals.
type Page[T any] struct {
	Content       []T
	Page          int
	Size          int
	TotalElements int64
	TotalPages    int
}

// NewPage builds a Page from content, the originating request, and the total
// element count reported by the store.
func NewPage[T any](content []T, req PageRequest, total int64) Page[T] {
	req = req.Normalize()
	pages := int(total) / req.Size
	if int(total)%req.Size != 0 {
		pages++
	}
	return Page[T]{
		Content:       content,
		Page:          req.Page,
		Size:          req.Size,
		TotalElements: total,
		TotalPages:    pages,
	}
}

// EmptyPage builds a Page with no content and zero totals, preserving the
// requested page metadata. Used for blank search terms where the store is
// never consulted.
func EmptyPage[T any](req PageRequest) Page[T] {
	req = req.Normalize()
	return Page[T]{
		Content: []T{},
		Page:    req.Page,
		Size:    req.Size,
	}
}

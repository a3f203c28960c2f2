package bestbuy

import (
	"context"
	"fmt"
	"strconv"
)

const (
	defaultPageSize = 100
	defaultMaxPages = 10
)

// FetchFunc issues one endpoint call with the given parameters. It adapts
// any endpoint method to the Paginator:
//
//	fetch := func(ctx context.Context, p bestbuy.Params) (any, error) {
//		return client.Products(ctx, query, p)
//	}
type FetchFunc func(ctx context.Context, params Params) (any, error)

// Paginator walks the paged collection responses of the API, which carry
// currentPage and totalPages alongside the result array.
type Paginator struct {
	pageSize int
	maxPages int
}

// PaginatorOption configures the Paginator.
type PaginatorOption func(*Paginator)

// WithPageSize overrides the default page size.
func WithPageSize(size int) PaginatorOption {
	return func(p *Paginator) {
		p.pageSize = size
	}
}

// WithMaxPages overrides the default page cap.
func WithMaxPages(n int) PaginatorOption {
	return func(p *Paginator) {
		p.maxPages = n
	}
}

// NewPaginator creates a Paginator.
func NewPaginator(opts ...PaginatorOption) *Paginator {
	p := &Paginator{
		pageSize: defaultPageSize,
		maxPages: defaultMaxPages,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// PaginateResult reports how a pagination run ended.
type PaginateResult struct {
	PagesFetched int
	StoppedAt    string // "last_page", "max_pages", "visitor_stop", "no_page_info"
}

// Paginate fetches successive pages through fetch and hands each decoded
// document to visit. Visiting stops when visit returns false, when the
// document reports its page as the last, when no page information is
// present, or when the page cap is hit. A fetch or visit error aborts the
// run.
func (p *Paginator) Paginate(ctx context.Context, fetch FetchFunc, params Params, visit func(doc any) (bool, error)) (*PaginateResult, error) {
	result := &PaginateResult{}

	for page := 1; page <= p.maxPages; page++ {
		pageParams := Params{}
		for k, v := range params {
			pageParams[k] = v
		}
		pageParams["page"] = strconv.Itoa(page)
		pageParams["pageSize"] = strconv.Itoa(p.pageSize)

		doc, err := fetch(ctx, pageParams)
		if err != nil {
			return nil, fmt.Errorf("fetching page %d: %w", page, err)
		}
		result.PagesFetched++

		keep, err := visit(doc)
		if err != nil {
			return nil, fmt.Errorf("visiting page %d: %w", page, err)
		}
		if !keep {
			result.StoppedAt = "visitor_stop"
			return result, nil
		}

		current, okCurrent := docInt(doc, "currentPage")
		total, okTotal := docInt(doc, "totalPages")
		if !okCurrent || !okTotal {
			result.StoppedAt = "no_page_info"
			return result, nil
		}
		if current >= total {
			result.StoppedAt = "last_page"
			return result, nil
		}
	}

	result.StoppedAt = "max_pages"
	return result, nil
}

// docInt reads an integer field from a decoded document in either decoding
// mode. JSON numbers arrive as float64.
func docInt(doc any, key string) (int, bool) {
	var v any
	var ok bool
	switch d := doc.(type) {
	case map[string]any:
		v, ok = d[key]
	case *OrderedMap:
		v, ok = d.Get(key)
	}
	if !ok {
		return 0, false
	}
	f, ok := v.(float64)
	if !ok {
		return 0, false
	}
	return int(f), true
}

package tokenadmin

import "context"

// PageFunc fetches one page of results for an opaque cursor. The empty
// string requests the first page. Implementations return the next cursor
// verbatim as supplied by the service, or the empty string when the service
// reports no further pages.
type PageFunc[T any] func(ctx context.Context, cursor string) (items []T, next string, err error)

// Pager walks a cursor-paginated listing endpoint. It keeps the current
// cursor between calls and stops once the fetch reports an empty next
// cursor. The cursor is never inspected or modified; each endpoint's own
// end-of-pages convention is applied inside its PageFunc.
type Pager[T any] struct {
	fetch  PageFunc[T]
	cursor string
	done   bool
}

// NewPager returns a Pager over fetch, starting from the first page.
func NewPager[T any](fetch PageFunc[T]) *Pager[T] {
	return &Pager[T]{fetch: fetch}
}

// Done reports whether the walk has reached the last page.
func (p *Pager[T]) Done() bool { return p.done }

// Next returns the next page of items, or (nil, nil) after exhaustion.
// A fetch error aborts the walk and is returned unchanged; no further
// pages are requested.
func (p *Pager[T]) Next(ctx context.Context) ([]T, error) {
	if p.done {
		return nil, nil
	}
	items, next, err := p.fetch(ctx, p.cursor)
	if err != nil {
		p.done = true
		return nil, err
	}
	if next == "" {
		p.done = true
	}
	p.cursor = next
	return items, nil
}

// All walks every remaining page and returns the concatenation of all items
// in arrival order. On error, the pages accumulated so far are returned
// together with the error; the walk is not resumed or retried.
func (p *Pager[T]) All(ctx context.Context) ([]T, error) {
	var all []T
	for !p.done {
		items, err := p.Next(ctx)
		if err != nil {
			return all, err
		}
		all = append(all, items...)
	}
	return all, nil
}

// Each walks every remaining page, invoking onPage synchronously with each
// non-empty page before the next page is requested. Nothing is accumulated.
func (p *Pager[T]) Each(ctx context.Context, onPage func([]T)) error {
	for !p.done {
		items, err := p.Next(ctx)
		if err != nil {
			return err
		}
		if onPage != nil && len(items) > 0 {
			onPage(items)
		}
	}
	return nil
}

package emails

import (
	"context"

	"github.com/matzehuels/emailfinder/pkg/httputil"
	"github.com/matzehuels/emailfinder/pkg/observability"
)

// pageStatus is the variant of a single page fetch.
type pageStatus int

const (
	// pageItems carries a non-empty page.
	pageItems pageStatus = iota
	// pageEnd means there is nothing more to read. err is set when the end
	// was signalled by a benign error (missing or inaccessible resource).
	pageEnd
	// pageFailed means a recoverable failure; earlier pages stay valid.
	pageFailed
)

type page[T any] struct {
	status pageStatus
	items  []T
	err    error
}

// fetchFunc requests page n (1-based) of a listing.
type fetchFunc[T any] func(ctx context.Context, n int) ([]T, error)

// fetchPage runs one request and classifies its result. benign may be nil.
func fetchPage[T any](ctx context.Context, fetch fetchFunc[T], n int, benign func(error) bool) page[T] {
	items, err := fetch(ctx, n)
	switch {
	case err == nil && len(items) == 0:
		return page[T]{status: pageEnd}
	case err == nil:
		return page[T]{status: pageItems, items: items}
	case benign != nil && benign(err):
		return page[T]{status: pageEnd, err: err}
	default:
		return page[T]{status: pageFailed, err: err}
	}
}

// loopResult summarises how a pagination loop ended.
type loopResult struct {
	outcome observability.Outcome
	pages   int   // pages that delivered items
	err     error // skip reason or recoverable failure, for diagnostics
}

// paginate walks pages 1, 2, ... passing each non-empty page to consume. It
// requests the next page only after a full page of perPage items and waits
// on pacer before every request. The returned error is non-nil only when ctx
// ended; every other failure is reported through loopResult.
func paginate[T any](ctx context.Context, pacer *httputil.Pacer, perPage int, fetch fetchFunc[T], benign func(error) bool, consume func([]T)) (loopResult, error) {
	var res loopResult
	for n := 1; ; n++ {
		if err := pacer.Wait(ctx); err != nil {
			return res, err
		}

		p := fetchPage(ctx, fetch, n, benign)
		if p.err != nil && ctx.Err() != nil {
			return res, ctx.Err()
		}

		switch p.status {
		case pageEnd:
			res.outcome = observability.OutcomeOK
			if p.err != nil {
				res.outcome, res.err = observability.OutcomeSkipped, p.err
			}
			return res, nil
		case pageFailed:
			res.outcome, res.err = observability.OutcomeFailed, p.err
			return res, nil
		}

		consume(p.items)
		res.pages++
		if len(p.items) < perPage {
			res.outcome = observability.OutcomeOK
			return res, nil
		}
	}
}

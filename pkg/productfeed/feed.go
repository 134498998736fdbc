// Package productfeed implements an incremental product feed: a deduplicated,
// growable list of products fetched page by page from a catalog.
//
// A Feed is restarted whenever its query changes and continued with LoadMore,
// either directly (a "load more" button) or through a Trigger reacting to the
// visibility of a sentinel element. Fetches run outside of the feed lock, each
// one carries a request id issued by the Guard and its result is committed only
// if that id is still current when the fetch completes. Superseded results are
// dropped silently.
package productfeed

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/storefront/pkg/domain"
)

//go:generate moq -out mocks/fetcher.go -pkg mocks -skip-ensure -fmt goimports . Fetcher

// default page sizes
const (
	DefaultPageSize      = 20
	DefaultIncrementSize = 10
)

// ErrClosed returned by operations on a closed (unmounted) feed
var ErrClosed = errors.New("feed closed")

// Fetcher retrieves one page of products, it may be slow and it may fail
type Fetcher interface {
	FetchPage(ctx context.Context, page, pageSize int, sort domain.SortOption, categoryID, search string) ([]domain.Product, error)
}

// Options defines page sizes of a feed
type Options struct {
	PageSize      int // size of the first page, default 20
	IncrementSize int // size of every following page, default 10
}

// Outcome describes what happened to a feed operation
type Outcome int

// enum of outcomes
const (
	OutcomeSkipped   Outcome = iota // preconditions not met, nothing fetched
	OutcomeCommitted                // fetched and committed to the feed
	OutcomeStale                    // fetched but superseded by a newer request
	OutcomeFailed                   // fetch failed, last good state kept
)

// String returns outcome name
func (o Outcome) String() string {
	switch o {
	case OutcomeSkipped:
		return "skipped"
	case OutcomeCommitted:
		return "committed"
	case OutcomeStale:
		return "stale"
	case OutcomeFailed:
		return "failed"
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

// State is a snapshot of the feed
type State struct {
	Query     domain.FeedQuery
	Items     []domain.Product
	NextPage  int
	HasMore   bool
	Loading   bool
	RequestID uint64
	Sentinel  uint64 // changes on every completed fetch, identifies the sentinel to render
}

// LimitReached reports whether a bounded feed holds its maximum
func (s State) LimitReached() bool {
	return s.Query.Bounded() && len(s.Items) >= s.Query.Limit
}

// CanContinue reports whether continuation may fetch now
func (s State) CanContinue() bool {
	return s.HasMore && !s.Loading && !s.LimitReached()
}

// Result of Restart and LoadMore
type Result struct {
	Outcome Outcome
	Added   []domain.Product // records appended by this operation
	State   State
}

// Feed is one incremental product listing. It is safe for concurrent use.
type Feed struct {
	fetcher Fetcher
	opts    Options
	guard   Guard

	mu       sync.Mutex
	query    domain.FeedQuery
	acc      *Accumulator
	cursor   Cursor
	loading  bool
	mounted  bool
	closed   bool
	sentinel uint64
}

// New makes a feed for the fetcher. The feed is empty until Restart is called.
func New(fetcher Fetcher, opts Options) *Feed {
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}
	if opts.IncrementSize <= 0 {
		opts.IncrementSize = DefaultIncrementSize
	}
	return &Feed{fetcher: fetcher, opts: opts, acc: NewAccumulator(), cursor: NewCursor()}
}

// Restart drops everything loaded and fetches the first page for the query.
// Any fetch in flight becomes stale. Failure leaves the feed empty and not loading,
// it is returned as is and never retried.
func (f *Feed) Restart(ctx context.Context, q domain.FeedQuery) (Result, error) {
	q = q.Normalized()

	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return Result{Outcome: OutcomeSkipped}, ErrClosed
	}
	id, reqCtx := f.guard.Begin(ctx)
	f.query = q
	f.acc.Reset(nil, 0)
	f.cursor = NewCursor()
	f.loading = true
	f.mounted = true
	pageSize := f.firstPageSize(q)
	f.mu.Unlock()

	defer f.guard.Release(id)
	page, err := f.fetcher.FetchPage(reqCtx, 1, pageSize, q.Sort, q.CategoryID, q.Search)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.guard.IsStale(id) {
		lgr.Printf("[DEBUG] drop stale first page for %s, request %d", q.Key(), id)
		return Result{Outcome: OutcomeStale, State: f.snapshot()}, nil
	}
	f.loading = false
	f.sentinel++
	if err != nil {
		lgr.Printf("[WARN] failed to load first page for %s: %v", q.Key(), err)
		return Result{Outcome: OutcomeFailed, State: f.snapshot()}, fmt.Errorf("fetch first page: %w", err)
	}

	added := f.acc.Reset(page, q.Limit)
	f.cursor.Advance()
	if len(page) < pageSize || (q.Bounded() && f.acc.Len() >= q.Limit) {
		f.cursor.Exhaust()
	}
	lgr.Printf("[DEBUG] feed %s restarted with %d items, has more: %v", q.Key(), f.acc.Len(), f.cursor.HasMore())
	return Result{Outcome: OutcomeCommitted, Added: added, State: f.snapshot()}, nil
}

// LoadMore fetches the next page and appends records not loaded yet.
// Does nothing while another fetch is outstanding or when the feed is exhausted.
// A page with no new records ends the feed.
func (f *Feed) LoadMore(ctx context.Context) (Result, error) {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return Result{Outcome: OutcomeSkipped}, ErrClosed
	}
	if !f.mounted || f.loading || !f.cursor.HasMore() {
		res := Result{Outcome: OutcomeSkipped, State: f.snapshot()}
		f.mu.Unlock()
		return res, nil
	}
	q := f.query
	if q.Bounded() && f.acc.Len() >= q.Limit {
		f.cursor.Exhaust()
		res := Result{Outcome: OutcomeSkipped, State: f.snapshot()}
		f.mu.Unlock()
		return res, nil
	}
	id, reqCtx := f.guard.Begin(ctx)
	f.loading = true
	pageNum := f.cursor.Next()
	pageSize := f.nextPageSize(q, f.acc.Len())
	f.mu.Unlock()

	defer f.guard.Release(id)
	page, err := f.fetcher.FetchPage(reqCtx, pageNum, pageSize, q.Sort, q.CategoryID, q.Search)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.guard.IsStale(id) {
		lgr.Printf("[DEBUG] drop stale page %d for %s, request %d", pageNum, q.Key(), id)
		return Result{Outcome: OutcomeStale, State: f.snapshot()}, nil
	}
	f.loading = false
	f.sentinel++
	if err != nil {
		lgr.Printf("[WARN] failed to load page %d for %s: %v", pageNum, q.Key(), err)
		return Result{Outcome: OutcomeFailed, State: f.snapshot()}, fmt.Errorf("fetch page %d: %w", pageNum, err)
	}

	if len(page) == 0 {
		f.cursor.Exhaust()
		return Result{Outcome: OutcomeCommitted, State: f.snapshot()}, nil
	}

	unique := f.acc.Unseen(page)
	if len(unique) == 0 {
		// the catalog resurfaced only known records, stop here rather than walk pages forever
		lgr.Printf("[DEBUG] page %d for %s has no new records, stop", pageNum, q.Key())
		f.cursor.Exhaust()
		return Result{Outcome: OutcomeCommitted, State: f.snapshot()}, nil
	}

	added := f.acc.Append(unique, q.Limit)
	f.cursor.Advance()
	if (q.Bounded() && f.acc.Len() >= q.Limit) || len(page) < pageSize {
		f.cursor.Exhaust()
	}
	return Result{Outcome: OutcomeCommitted, Added: added, State: f.snapshot()}, nil
}

// State returns a snapshot of the feed
func (f *Feed) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshot()
}

// Close discards the feed, results of fetches in flight are dropped
func (f *Feed) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	f.guard.Invalidate()
}

func (f *Feed) firstPageSize(q domain.FeedQuery) int {
	if q.Bounded() && q.Limit < f.opts.PageSize {
		return q.Limit
	}
	return f.opts.PageSize
}

func (f *Feed) nextPageSize(q domain.FeedQuery, loaded int) int {
	if q.Bounded() {
		return min(q.Limit-loaded, f.opts.IncrementSize)
	}
	return f.opts.IncrementSize
}

// snapshot makes State, must be called under lock
func (f *Feed) snapshot() State {
	return State{
		Query:     f.query,
		Items:     f.acc.Items(),
		NextPage:  f.cursor.Next(),
		HasMore:   f.cursor.HasMore(),
		Loading:   f.loading,
		RequestID: f.guard.Current(),
		Sentinel:  f.sentinel,
	}
}

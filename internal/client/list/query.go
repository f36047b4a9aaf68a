package list

import (
	"fmt"
	"strings"

	"github.com/victorozoterio/friendly-snout-console/internal/client/api"
)

// Coordinator owns the query state of one paginated listing: page, limit,
// sort, and debounced search. It derives a stable cache key from the full
// parameter set and keeps the previous page's data on screen while a new
// page is in flight (stale-while-revalidate). Fetch completions are keyed:
// a completion whose key no longer matches the current query is discarded,
// so a slow response can never overwrite a newer one.
//
// The coordinator is a synchronous state machine; the UI event loop owns
// all calls and runs the actual fetch asynchronously:
//
//	if key, ok := c.StartFetch(); ok {
//	    go fetch(key, c.Params()) // completion delivered back as a message
//	}
//	...
//	c.Complete(key, page, err)
type Coordinator[T any] struct {
	scope string
	sort  SortConfig

	page      int
	limit     int
	sortState SortState
	sortBy    string

	searchInput string // as typed, not yet applied
	search      string // applied after the debounce window
	searchGen   int

	cache    map[string]*api.Pagination[T]
	result   *api.Pagination[T]
	// resultQuery is the page-independent query the displayed result
	// belongs to; page clamping must not trust metadata from a
	// superseded query.
	resultQuery string
	inflight    string
	loaded      bool
	err         error
}

// NewCoordinator builds a coordinator for one listing scope. The scope
// string namespaces the cache keys (e.g. "animals" or
// "attachments:"+animalUUID).
func NewCoordinator[T any](scope string, cfg SortConfig) *Coordinator[T] {
	return &Coordinator[T]{
		scope:  scope,
		sort:   cfg,
		page:   1,
		limit:  10,
		sortBy: cfg.Default,
		cache:  make(map[string]*api.Pagination[T]),
	}
}

// Key is the cache key of the current query: the full parameter set.
func (c *Coordinator[T]) Key() string {
	return fmt.Sprintf("%s|%d|%d|%s|%s", c.scope, c.page, c.limit, c.sortBy, c.search)
}

// queryBase is the current query with the page stripped, used to decide
// whether the displayed result's metadata still applies.
func (c *Coordinator[T]) queryBase() string {
	return fmt.Sprintf("%s|%d|%s|%s", c.scope, c.limit, c.sortBy, c.search)
}

// Params renders the current query as request parameters.
func (c *Coordinator[T]) Params() api.ListParams {
	return api.ListParams{Page: c.page, Limit: c.limit, SortBy: c.sortBy, Search: c.search}
}

func (c *Coordinator[T]) Page() int            { return c.page }
func (c *Coordinator[T]) Limit() int           { return c.limit }
func (c *Coordinator[T]) Sort() SortState      { return c.sortState }
func (c *Coordinator[T]) SearchInput() string  { return c.searchInput }
func (c *Coordinator[T]) AppliedSearch() string { return c.search }

// SetPage moves to page n, clamped to 1..totalPages when the displayed
// result belongs to the current query. Right after a limit, sort or
// search change the old result is still on screen but its page count no
// longer applies, so only the lower bound is enforced until the refetch
// lands.
func (c *Coordinator[T]) SetPage(n int) {
	if n < 1 {
		n = 1
	}
	if c.result != nil && c.resultQuery == c.queryBase() &&
		c.result.Meta.TotalPages > 0 && n > c.result.Meta.TotalPages {
		n = c.result.Meta.TotalPages
	}
	c.page = n
}

// NextPage advances one page.
func (c *Coordinator[T]) NextPage() { c.SetPage(c.page + 1) }

// PrevPage goes back one page.
func (c *Coordinator[T]) PrevPage() { c.SetPage(c.page - 1) }

// SetLimit changes the page size. Any change resets to page 1.
func (c *Coordinator[T]) SetLimit(n int) {
	if n <= 0 || n == c.limit {
		return
	}
	c.limit = n
	c.page = 1
}

// ApplySort advances the tri-state cycle for a click on key and resets
// to page 1.
func (c *Coordinator[T]) ApplySort(key string) {
	c.page = 1
	c.sortState = c.sort.Next(c.sortState, key)
	c.sortBy = c.sort.BuildSortBy(c.sortState)
}

// SetSearchInput records a keystroke and bumps the debounce generation.
// The returned generation must be echoed back via ApplySearch after the
// debounce window; stale generations (another keystroke arrived in the
// meantime) are ignored there, which is what cancels the earlier timer.
func (c *Coordinator[T]) SetSearchInput(text string) int {
	c.searchInput = text
	c.searchGen++
	return c.searchGen
}

// ApplySearch applies the debounced search text if gen is still current.
// Applying a changed search resets to page 1. Returns whether the input
// was applied.
func (c *Coordinator[T]) ApplySearch(gen int) bool {
	if gen != c.searchGen {
		return false
	}
	applied := strings.TrimSpace(c.searchInput)
	if applied == c.search {
		return true
	}
	c.search = applied
	c.page = 1
	return true
}

// NeedsFetch reports whether the current query has no cached result and
// no fetch already in flight for it.
func (c *Coordinator[T]) NeedsFetch() bool {
	key := c.Key()
	if _, ok := c.cache[key]; ok {
		return false
	}
	return c.inflight != key
}

// StartFetch claims the current query for fetching. It returns the key
// to tag the completion with, and false when a fetch is already running
// for this exact key or the result is already cached.
func (c *Coordinator[T]) StartFetch() (string, bool) {
	if !c.NeedsFetch() {
		return "", false
	}
	c.inflight = c.Key()
	c.err = nil
	return c.inflight, true
}

// Complete delivers a fetch result. Completions for superseded keys are
// discarded entirely: their data is dropped and their error never
// surfaces. Returns whether the completion was accepted.
func (c *Coordinator[T]) Complete(key string, page *api.Pagination[T], err error) bool {
	if key == c.inflight {
		c.inflight = ""
	}
	if key != c.Key() {
		return false
	}

	if err != nil {
		c.err = err
		return true
	}

	c.cache[key] = page
	c.result = page
	c.resultQuery = c.queryBase()
	c.loaded = true
	c.err = nil
	return true
}

// Sync points the displayed result at the cache entry for the current
// query, when present. Call after any parameter change.
func (c *Coordinator[T]) Sync() {
	if page, ok := c.cache[c.Key()]; ok {
		c.result = page
		c.resultQuery = c.queryBase()
		c.err = nil
	}
}

// Invalidate drops every cached page of this scope after a successful
// mutation. The displayed result is kept on screen until the refetch
// lands.
func (c *Coordinator[T]) Invalidate() {
	c.cache = make(map[string]*api.Pagination[T])
}

// Retry clears the error state so the next NeedsFetch triggers again.
func (c *Coordinator[T]) Retry() {
	c.err = nil
}

// Data returns the rows to display: the freshest accepted result, which
// during a refetch is the previous page's data.
func (c *Coordinator[T]) Data() []T {
	if c.result == nil {
		return nil
	}
	return c.result.Data
}

// Meta returns the pagination metadata of the displayed result.
func (c *Coordinator[T]) Meta() (api.Meta, bool) {
	if c.result == nil {
		return api.Meta{}, false
	}
	return c.result.Meta, true
}

// Loading reports the very first load, before any data has ever been
// shown. Later fetches keep the stale data visible instead.
func (c *Coordinator[T]) Loading() bool {
	return !c.loaded && c.err == nil
}

// Fetching reports whether any fetch is in flight (the footer shows a
// revalidation hint).
func (c *Coordinator[T]) Fetching() bool {
	return c.inflight != ""
}

// Err returns the surfaced fetch error, if any. The UI renders it with a
// user-triggered retry; there is no automatic retry.
func (c *Coordinator[T]) Err() error {
	return c.err
}

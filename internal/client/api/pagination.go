package api

import (
	"net/url"
	"strconv"
)

// Meta describes one page of a paginated listing as reported by the
// backend. CurrentPage is 1-indexed and TotalPages is
// ceil(TotalItems / ItemsPerPage).
type Meta struct {
	ItemsPerPage int            `json:"itemsPerPage"`
	TotalItems   int            `json:"totalItems"`
	CurrentPage  int            `json:"currentPage"`
	TotalPages   int            `json:"totalPages"`
	SortBy       [][2]string    `json:"sortBy"`
	Search       string         `json:"search,omitempty"`
	Filter       map[string]any `json:"filter,omitempty"`
}

// Links carries the backend's navigation URLs. The console paginates by
// parameters and keeps these only for completeness of the wire shape.
type Links struct {
	First    string `json:"first,omitempty"`
	Previous string `json:"previous,omitempty"`
	Next     string `json:"next,omitempty"`
	Last     string `json:"last,omitempty"`
}

// Pagination is the envelope every list endpoint returns.
// Invariant: len(Data) <= Meta.ItemsPerPage.
type Pagination[T any] struct {
	Data  []T   `json:"data"`
	Meta  Meta  `json:"meta"`
	Links Links `json:"links"`
}

// ListParams are the four query parameters every list endpoint accepts.
// Zero values fall back to the backend's conventions: page 1, limit 10,
// newest first. An empty search is omitted from the query entirely.
type ListParams struct {
	Page   int
	Limit  int
	SortBy string
	Search string
}

// DefaultSortBy is the listing order used when no column sort is active.
const DefaultSortBy = "createdAt:DESC"

func (p ListParams) withDefaults() ListParams {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = 10
	}
	if p.SortBy == "" {
		p.SortBy = DefaultSortBy
	}
	return p
}

// Query renders the parameters as URL query values.
func (p ListParams) Query() url.Values {
	p = p.withDefaults()

	q := url.Values{}
	q.Set("page", strconv.Itoa(p.Page))
	q.Set("limit", strconv.Itoa(p.Limit))
	q.Set("sortBy", p.SortBy)
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	return q
}

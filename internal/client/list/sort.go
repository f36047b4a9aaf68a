// Package list is the reusable orchestration core behind every entity
// page: tri-state column sorting, a paginated query coordinator with
// debounced search and stale-while-revalidate caching, and a mutation
// gate that scopes pending state to individual rows. The same machinery
// drives animals, medicines, brands, attachments and applications; only
// the page configuration differs.
package list

// Dir is a sort direction on the wire ("ASC"/"DESC").
type Dir string

const (
	Asc  Dir = "ASC"
	Desc Dir = "DESC"
)

// SortState is the active column sort. The zero value means no column
// sort is active. Invariant: Dir is empty iff Key is empty; at most one
// column is ever active.
type SortState struct {
	Key string
	Dir Dir
}

// IsZero reports whether no column sort is active.
func (s SortState) IsZero() bool {
	return s.Key == ""
}

// SortConfig maps the page's column keys to backend field names and
// carries the ordering used when no column sort is active.
type SortConfig struct {
	// Fields maps column key -> server-side sort field
	// (e.g. "medicine" -> "medicine.name").
	Fields map[string]string

	// Default is the sortBy string for the zero state,
	// e.g. "createdAt:DESC".
	Default string
}

// Next advances the tri-state cycle for a click on clickedKey:
// a different column always starts at ASC; clicking the active column
// goes ASC -> DESC -> reset.
func (c SortConfig) Next(prev SortState, clickedKey string) SortState {
	if prev.Key != clickedKey {
		return SortState{Key: clickedKey, Dir: Asc}
	}
	if prev.Dir == Asc {
		return SortState{Key: clickedKey, Dir: Desc}
	}
	return SortState{}
}

// BuildSortBy renders the state as the backend's "<field>:<dir>" string,
// falling back to the configured default for the zero state.
func (c SortConfig) BuildSortBy(s SortState) string {
	if s.IsZero() {
		return c.Default
	}
	field, ok := c.Fields[s.Key]
	if !ok {
		return c.Default
	}
	return field + ":" + string(s.Dir)
}

package ui

import (
	"context"
	"fmt"
	"testing"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/victorozoterio/friendly-snout-console/internal/client/api"
	"github.com/victorozoterio/friendly-snout-console/internal/client/list"
	"github.com/victorozoterio/friendly-snout-console/internal/common"
)

type item struct {
	UUID string
	Name string
}

func itemPage(names []string, current, totalPages int) *api.Pagination[item] {
	rows := make([]item, 0, len(names))
	for _, n := range names {
		rows = append(rows, item{UUID: "id-" + n, Name: n})
	}
	return &api.Pagination[item]{
		Data: rows,
		Meta: api.Meta{CurrentPage: current, TotalPages: totalPages, TotalItems: totalPages * 10, ItemsPerPage: 10},
	}
}

func testPage(t *testing.T, deleteErr error) (*ListPage[item], *[]api.ListParams) {
	t.Helper()
	var requests []api.ListParams
	cfg := PageConfig[item]{
		Scope:    "items",
		Title:    "Itens",
		Singular: "item",
		Columns: []Column[item]{
			{Title: "Nome", Width: 12, SortKey: "name", Cell: func(i item) string { return i.Name }},
			{Title: "ID", Width: 10, Cell: func(i item) string { return i.UUID }},
		},
		Sort: list.SortConfig{
			Fields:  map[string]string{"name": "name"},
			Default: "createdAt:DESC",
		},
		ID: func(i item) string { return i.UUID },
		Fetch: func(_ context.Context, params api.ListParams) (*api.Pagination[item], error) {
			requests = append(requests, params)
			return itemPage([]string{"um", "dois"}, params.Page, 3), nil
		},
		Delete: func(_ context.Context, i item) error {
			return deleteErr
		},
		ConflictText:   "Registros vinculados impedem a exclusão",
		EmptyText:      "vazio",
		NoMatchText:    "sem resultados",
		SearchDebounce: time.Millisecond,
	}
	return NewListPage(cfg, DefaultStyles()), &requests
}

// drain runs the page's pending commands until none remain, feeding
// resulting messages back, the way the bubbletea runtime would.
func drain(t *testing.T, p *ListPage[item], cmd tea.Cmd) *ListPage[item] {
	t.Helper()
	for cmd != nil {
		msg := cmd()
		if msg == nil {
			return p
		}
		if batch, ok := msg.(tea.BatchMsg); ok {
			for _, c := range batch {
				p = drain(t, p, c)
			}
			return p
		}
		next, nextCmd := p.Update(msg)
		p = next.(*ListPage[item])
		cmd = nextCmd
	}
	return p
}

func press(t *testing.T, p *ListPage[item], key string) *ListPage[item] {
	t.Helper()
	var msg tea.KeyMsg
	switch key {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	next, cmd := p.Update(msg)
	return drain(t, next.(*ListPage[item]), cmd)
}

func TestListPageInitialFetch(t *testing.T) {
	p, requests := testPage(t, nil)
	p = drain(t, p, p.Init())

	require.Len(t, *requests, 1)
	assert.Equal(t, api.ListParams{Page: 1, Limit: 10, SortBy: "createdAt:DESC"}, (*requests)[0])
	assert.Len(t, p.coord.Data(), 2)
}

func TestListPageSortKeyPress(t *testing.T) {
	p, requests := testPage(t, nil)
	p = drain(t, p, p.Init())

	p = press(t, p, "1")
	last := (*requests)[len(*requests)-1]
	assert.Equal(t, "name:ASC", last.SortBy)
	assert.Equal(t, 1, last.Page)

	p = press(t, p, "1")
	last = (*requests)[len(*requests)-1]
	assert.Equal(t, "name:DESC", last.SortBy)

	// Third press clears the sort; the default query is already cached,
	// so no request fires, but the params fall back to the default.
	p = press(t, p, "1")
	assert.Equal(t, "createdAt:DESC", p.coord.Params().SortBy)
}

func TestListPageLimitCycleResetsPage(t *testing.T) {
	p, requests := testPage(t, nil)
	p = drain(t, p, p.Init())

	p = press(t, p, "l") // page 2
	p = press(t, p, "l") // page 3
	assert.Equal(t, 3, p.coord.Page())

	p = press(t, p, "c")
	last := (*requests)[len(*requests)-1]
	assert.Equal(t, 20, last.Limit)
	assert.Equal(t, 1, last.Page)
}

func TestListPageSearchDebounce(t *testing.T) {
	p, _ := testPage(t, nil)
	p = drain(t, p, p.Init())

	p = press(t, p, "/")
	require.True(t, p.searchFocus)

	// Two quick keystrokes: only the newest generation applies.
	next, _ := p.Update(keyRunes("r"))
	p = next.(*ListPage[item])
	next, cmd := p.Update(keyRunes("e"))
	p = next.(*ListPage[item])

	staleGen := p.coord.SetSearchInput("re") - 1
	next, _ = p.Update(debounceMsg{scope: "items", gen: staleGen})
	p = next.(*ListPage[item])
	assert.Empty(t, p.coord.AppliedSearch(), "stale debounce tick must not apply")

	_ = cmd
	next, _ = p.Update(debounceMsg{scope: "items", gen: p.coord.SetSearchInput("re")})
	p = next.(*ListPage[item])
	assert.Equal(t, "re", p.coord.AppliedSearch())
	assert.Equal(t, 1, p.coord.Page())
}

func TestListPageSearchBackspaceRemovesWholeRune(t *testing.T) {
	p, _ := testPage(t, nil)
	p = drain(t, p, p.Init())

	p = press(t, p, "/")
	require.True(t, p.searchFocus)

	next, _ := p.Update(keyRunes("f"))
	p = next.(*ListPage[item])
	next, _ = p.Update(keyRunes("ê"))
	p = next.(*ListPage[item])
	require.Equal(t, "fê", p.coord.SearchInput())

	next, _ = p.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	p = next.(*ListPage[item])
	assert.Equal(t, "f", p.coord.SearchInput())
	assert.True(t, utf8.ValidString(p.coord.SearchInput()))
}

func TestListPageDeleteFlow(t *testing.T) {
	p, _ := testPage(t, nil)
	p = drain(t, p, p.Init())

	p = press(t, p, "d")
	require.True(t, p.dialog.IsOpen())
	assert.Equal(t, "id-um", p.dialog.Target())

	p = press(t, p, "enter")
	assert.False(t, p.dialog.IsOpen(), "successful delete closes the dialog")
	assert.False(t, p.gate.Pending("id-um"))
	assert.Contains(t, p.toast, "Sucesso")
}

func TestListPageDeleteConflictShowsEntityMessage(t *testing.T) {
	p, _ := testPage(t, fmt.Errorf("delete item: %w", common.ErrConflict))
	p = drain(t, p, p.Init())

	p = press(t, p, "d")
	p = press(t, p, "enter")

	assert.True(t, p.dialog.IsOpen(), "failed delete keeps the dialog open")
	assert.True(t, p.toastErr)
	assert.Equal(t, "Registros vinculados impedem a exclusão", p.toast)
}

func TestListPageDialogCancel(t *testing.T) {
	p, _ := testPage(t, nil)
	p = drain(t, p, p.Init())

	p = press(t, p, "d")
	require.True(t, p.dialog.IsOpen())
	p = press(t, p, "esc")
	assert.False(t, p.dialog.IsOpen())
}

package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/victorozoterio/friendly-snout-console/internal/client/api"
	"github.com/victorozoterio/friendly-snout-console/internal/client/models"
)

// pager is the page contract the App routes between. Update returns the
// (possibly replaced) page, never nil.
type pager interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (pager, tea.Cmd)
	View() string
	SetSize(width, height int)
}

// navigateMsg pushes a page onto the App's navigation stack.
type navigateMsg struct{ page pager }

// backMsg pops the current page.
type backMsg struct{}

// signedInMsg announces a successful sign-in; the App swaps to the
// dashboard.
type signedInMsg struct{}

// loggedOutMsg announces an explicit logout.
type loggedOutMsg struct{}

// sessionExpiredMsg is raised when a request fails with an auth error
// even after the transparent refresh; the App returns to sign-in.
type sessionExpiredMsg struct{}

// listResultMsg delivers a finished page fetch back to the list page
// that started it. key tags the query so superseded responses are
// discarded by the coordinator.
type listResultMsg[T any] struct {
	scope string
	key   string
	page  *api.Pagination[T]
	err   error
}

// mutationDoneMsg delivers a finished write operation (create, update,
// delete, row action) back to the page that gated it. target is empty
// for create.
type mutationDoneMsg struct {
	scope  string
	target string
	verb   string
	err    error
}

// debounceMsg fires after the search debounce window. gen is matched
// against the coordinator's current generation; stale ticks are ignored.
type debounceMsg struct {
	scope string
	gen   int
}

// optionsMsg delivers remotely loaded select options (e.g. medicine
// brands for the medicine form).
type optionsMsg struct {
	scope   string
	options map[string][]models.Option
	err     error
}

// stageTotalsMsg delivers the dashboard summary.
type stageTotalsMsg struct {
	totals *models.StageTotals
	err    error
}

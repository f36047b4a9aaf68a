package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/victorozoterio/friendly-snout-console/internal/client/api"
	"github.com/victorozoterio/friendly-snout-console/internal/client/config"
	"github.com/victorozoterio/friendly-snout-console/internal/client/session"
	"github.com/victorozoterio/friendly-snout-console/internal/logging"
)

// Deps carries the wired dependencies every page shares.
type Deps struct {
	API     *api.Client
	Session *session.Session
	Cfg     *config.Config
	Log     logging.Logger
	Styles  Styles
}

// App is the root model: it owns the navigation stack and the session
// guard. Unauthenticated users land on sign-in; an expired session
// throws away the stack and returns there with a notice.
type App struct {
	deps  *Deps
	stack []pager
	note  string

	width  int
	height int
}

// NewApp builds the root model. The starting page follows the persisted
// session state.
func NewApp(deps *Deps) *App {
	app := &App{deps: deps}
	if deps.Session.IsAuthenticated(context.Background()) {
		app.stack = []pager{NewDashboardPage(deps)}
	} else {
		app.stack = []pager{NewSignInPage(deps.Session, deps.Styles)}
	}
	return app
}

func (a *App) top() pager { return a.stack[len(a.stack)-1] }

func (a *App) Init() tea.Cmd { return a.top().Init() }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		for _, page := range a.stack {
			page.SetSize(msg.Width, msg.Height)
		}
		return a, nil

	case tea.KeyMsg:
		a.note = ""
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

	case navigateMsg:
		msg.page.SetSize(a.width, a.height)
		a.stack = append(a.stack, msg.page)
		return a, msg.page.Init()

	case backMsg:
		if len(a.stack) > 1 {
			a.stack = a.stack[:len(a.stack)-1]
		}
		return a, nil

	case signedInMsg:
		dash := NewDashboardPage(a.deps)
		dash.SetSize(a.width, a.height)
		a.stack = []pager{dash}
		return a, dash.Init()

	case loggedOutMsg:
		signin := NewSignInPage(a.deps.Session, a.deps.Styles)
		signin.SetSize(a.width, a.height)
		a.stack = []pager{signin}
		return a, signin.Init()

	case sessionExpiredMsg:
		signin := NewSignInPage(a.deps.Session, a.deps.Styles)
		signin.SetSize(a.width, a.height)
		a.stack = []pager{signin}
		a.note = "Sessão expirada, entre novamente"
		return a, signin.Init()
	}

	page, cmd := a.top().Update(msg)
	a.stack[len(a.stack)-1] = page
	return a, cmd
}

func (a *App) View() string {
	view := a.deps.Styles.App.Render(a.top().View())
	if a.note != "" {
		view += "\n" + a.deps.Styles.Warning.Render(a.note)
	}
	return view
}

package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/victorozoterio/friendly-snout-console/internal/client/api"
	"github.com/victorozoterio/friendly-snout-console/internal/client/list"
	"github.com/victorozoterio/friendly-snout-console/internal/client/models"
	"github.com/victorozoterio/friendly-snout-console/internal/common"
)

// pageSizes is the limit cycle of the pagination footer.
var pageSizes = []int{10, 20, 30, 50}

// Column describes one table column of an entity page.
type Column[T any] struct {
	Title string
	Width int
	// SortKey enables header sorting; empty means the column is static.
	SortKey string
	Cell    func(T) string
}

// RowAction is an extra mutation bound to a key on the selected row
// (e.g. toggling a medicine's activation). The returned verb labels the
// toast; run performs the call.
type RowAction[T any] struct {
	Verb string
	Run  func(ctx context.Context, row T) error
}

// PageConfig wires one entity into the generic list page. The same page
// machinery drives every entity; only this configuration differs.
type PageConfig[T any] struct {
	Scope    string
	Title    string
	Singular string

	Columns []Column[T]
	Sort    list.SortConfig
	ID      func(T) string

	Fetch func(ctx context.Context, params api.ListParams) (*api.Pagination[T], error)

	// NewForm/EditForm build the create and update drawers; nil disables
	// the corresponding action. Submit persists the drawer's values
	// (target empty for create) and converts display values to wire
	// format.
	NewForm  func() *Form
	EditForm func(row T) *Form
	Submit   func(ctx context.Context, target string, values map[string]string) error

	// Delete removes the selected row after confirmation; nil disables.
	Delete func(ctx context.Context, row T) error
	// ConflictText explains an HTTP 409 on delete in entity terms.
	ConflictText string

	// RowActions maps extra keys to gated mutations on the selected row.
	RowActions map[string]RowAction[T]

	// Navigate maps keys to sub-page constructors for the selected row
	// (e.g. an animal's attachments).
	Navigate map[string]func(row T) pager

	// LoadOptions fetches remote select option sets once per page
	// (e.g. brand options for the medicine drawer).
	LoadOptions func(ctx context.Context) (map[string][]models.Option, error)

	EmptyText   string
	NoMatchText string

	SearchDebounce time.Duration
}

// ListPage is the generic entity page: a sortable searchable paginated
// table with create/update drawers, a delete confirm dialog, and
// per-row pending state.
type ListPage[T any] struct {
	cfg    PageConfig[T]
	styles Styles

	coord  *list.Coordinator[T]
	gate   *list.Gate
	dialog list.Dialog

	cursor      int
	searchFocus bool
	form        *Form
	formTarget  string
	options     map[string][]models.Option

	toast    string
	toastErr bool

	width  int
	height int
}

// NewListPage builds a page for one entity.
func NewListPage[T any](cfg PageConfig[T], styles Styles) *ListPage[T] {
	if cfg.SearchDebounce <= 0 {
		cfg.SearchDebounce = 300 * time.Millisecond
	}
	return &ListPage[T]{
		cfg:    cfg,
		styles: styles,
		coord:  list.NewCoordinator[T](cfg.Scope, cfg.Sort),
		gate:   list.NewGate(),
	}
}

func (p *ListPage[T]) Init() tea.Cmd {
	cmds := []tea.Cmd{p.maybeFetch()}
	if p.cfg.LoadOptions != nil {
		cmds = append(cmds, p.loadOptions())
	}
	return tea.Batch(cmds...)
}

func (p *ListPage[T]) SetSize(width, height int) {
	p.width, p.height = width, height
}

// maybeFetch starts a fetch for the current query unless it is cached
// or already in flight.
func (p *ListPage[T]) maybeFetch() tea.Cmd {
	key, ok := p.coord.StartFetch()
	if !ok {
		return nil
	}
	params := p.coord.Params()
	fetch := p.cfg.Fetch
	scope := p.cfg.Scope
	return func() tea.Msg {
		page, err := fetch(context.Background(), params)
		return listResultMsg[T]{scope: scope, key: key, page: page, err: err}
	}
}

func (p *ListPage[T]) loadOptions() tea.Cmd {
	load := p.cfg.LoadOptions
	scope := p.cfg.Scope
	return func() tea.Msg {
		options, err := load(context.Background())
		return optionsMsg{scope: scope, options: options, err: err}
	}
}

// mutate runs one gated write. target scopes the pending state to the
// affected row ("" targets the create drawer).
func (p *ListPage[T]) mutate(target, verb string, run func(ctx context.Context) error) tea.Cmd {
	if !p.gate.Start(target) {
		return nil
	}
	scope := p.cfg.Scope
	return func() tea.Msg {
		err := run(context.Background())
		return mutationDoneMsg{scope: scope, target: target, verb: verb, err: err}
	}
}

func (p *ListPage[T]) Update(msg tea.Msg) (pager, tea.Cmd) {
	switch msg := msg.(type) {
	case listResultMsg[T]:
		if msg.scope != p.cfg.Scope {
			return p, nil
		}
		if !p.coord.Complete(msg.key, msg.page, msg.err) {
			return p, p.maybeFetch()
		}
		if msg.err != nil && errors.Is(msg.err, common.ErrUnauthorized) {
			return p, func() tea.Msg { return sessionExpiredMsg{} }
		}
		p.clampCursor()
		return p, nil

	case optionsMsg:
		if msg.scope != p.cfg.Scope {
			return p, nil
		}
		if msg.err == nil {
			p.options = msg.options
			if p.form != nil {
				p.form.ResolveOptions(p.options)
			}
		}
		return p, nil

	case mutationDoneMsg:
		if msg.scope != p.cfg.Scope {
			return p, nil
		}
		return p.completeMutation(msg)

	case debounceMsg:
		if msg.scope != p.cfg.Scope {
			return p, nil
		}
		if p.coord.ApplySearch(msg.gen) {
			p.coord.Sync()
			return p, p.maybeFetch()
		}
		return p, nil

	case tea.KeyMsg:
		return p.handleKey(msg)
	}
	return p, nil
}

// completeMutation folds a finished write back into the page: success
// invalidates the scope's cache, closes overlays and refetches; failure
// keeps them open with a toast.
func (p *ListPage[T]) completeMutation(msg mutationDoneMsg) (pager, tea.Cmd) {
	p.gate.Finish(msg.target)

	if msg.err != nil {
		if errors.Is(msg.err, common.ErrUnauthorized) {
			return p, func() tea.Msg { return sessionExpiredMsg{} }
		}
		if list.IsConflict(msg.err) && p.cfg.ConflictText != "" {
			p.setToast(p.cfg.ConflictText, true)
		} else {
			p.setToast(fmt.Sprintf("Falha ao %s %s: %v", msg.verb, p.cfg.Singular, msg.err), true)
		}
		return p, nil
	}

	p.dialog.ForceClose()
	p.form = nil
	p.formTarget = ""
	p.setToast(fmt.Sprintf("Sucesso ao %s %s", msg.verb, p.cfg.Singular), false)
	p.coord.Invalidate()
	return p, p.maybeFetch()
}

func (p *ListPage[T]) handleKey(msg tea.KeyMsg) (pager, tea.Cmd) {
	p.toast = ""

	// Drawer has priority over the table.
	if p.form != nil {
		submitted, canceled := p.form.Update(msg)
		if canceled {
			if !p.gate.Pending(p.formTarget) {
				p.form = nil
				p.formTarget = ""
			}
			return p, nil
		}
		if submitted {
			values := p.form.Values()
			target := p.formTarget
			verb := "criar"
			if target != "" {
				verb = "atualizar"
			}
			submit := p.cfg.Submit
			return p, p.mutate(target, verb, func(ctx context.Context) error {
				return submit(ctx, target, values)
			})
		}
		return p, nil
	}

	// Confirm dialog.
	if p.dialog.IsOpen() {
		switch msg.String() {
		case "y", "s", "enter":
			row, ok := p.selectedRow()
			if !ok || p.cfg.ID(row) != p.dialog.Target() {
				p.dialog.Close(p.gate)
				return p, nil
			}
			del := p.cfg.Delete
			return p, p.mutate(p.dialog.Target(), "excluir", func(ctx context.Context) error {
				return del(ctx, row)
			})
		case "n", "esc":
			p.dialog.Close(p.gate)
		}
		return p, nil
	}

	// Search box.
	if p.searchFocus {
		switch msg.String() {
		case "esc", "enter":
			p.searchFocus = false
			return p, nil
		case "backspace":
			input := p.coord.SearchInput()
			if input == "" {
				return p, nil
			}
			return p, p.debounce(p.coord.SetSearchInput(trimLastRune(input)))
		default:
			if msg.Type == tea.KeyRunes || msg.String() == " " {
				text := p.coord.SearchInput() + string(msg.Runes)
				if msg.String() == " " {
					text = p.coord.SearchInput() + " "
				}
				return p, p.debounce(p.coord.SetSearchInput(text))
			}
		}
		return p, nil
	}

	switch key := msg.String(); key {
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(p.coord.Data())-1 {
			p.cursor++
		}
	case "left", "h":
		p.coord.PrevPage()
		p.coord.Sync()
		p.clampCursor()
		return p, p.maybeFetch()
	case "right", "l":
		p.coord.NextPage()
		p.coord.Sync()
		p.clampCursor()
		return p, p.maybeFetch()
	case "c":
		p.coord.SetLimit(nextPageSize(p.coord.Limit()))
		p.coord.Sync()
		p.clampCursor()
		return p, p.maybeFetch()
	case "/":
		p.searchFocus = true
	case "r":
		p.coord.Retry()
		p.coord.Invalidate()
		return p, p.maybeFetch()
	case "n":
		if p.cfg.NewForm != nil {
			p.form = p.cfg.NewForm()
			p.form.ResolveOptions(p.options)
			p.formTarget = ""
		}
	case "e":
		if row, ok := p.selectedRow(); ok && p.cfg.EditForm != nil {
			p.form = p.cfg.EditForm(row)
			p.form.ResolveOptions(p.options)
			p.formTarget = p.cfg.ID(row)
		}
	case "d":
		if row, ok := p.selectedRow(); ok && p.cfg.Delete != nil {
			p.dialog.Open(p.cfg.ID(row))
		}
	case "esc":
		return p, func() tea.Msg { return backMsg{} }
	default:
		// Digit keys cycle the matching sortable column.
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			if sortKey, ok := p.sortKeyAt(int(key[0] - '1')); ok {
				p.coord.ApplySort(sortKey)
				p.coord.Sync()
				p.clampCursor()
				return p, p.maybeFetch()
			}
			return p, nil
		}
		if action, ok := p.cfg.RowActions[key]; ok {
			if row, found := p.selectedRow(); found {
				run := action.Run
				return p, p.mutate(p.cfg.ID(row), action.Verb, func(ctx context.Context) error {
					return run(ctx, row)
				})
			}
			return p, nil
		}
		if nav, ok := p.cfg.Navigate[key]; ok {
			if row, found := p.selectedRow(); found {
				page := nav(row)
				return p, func() tea.Msg { return navigateMsg{page: page} }
			}
		}
	}
	return p, nil
}

func (p *ListPage[T]) debounce(gen int) tea.Cmd {
	scope := p.cfg.Scope
	return tea.Tick(p.cfg.SearchDebounce, func(time.Time) tea.Msg {
		return debounceMsg{scope: scope, gen: gen}
	})
}

// sortKeyAt maps a 0-based sortable-column ordinal to its sort key.
func (p *ListPage[T]) sortKeyAt(ordinal int) (string, bool) {
	n := 0
	for _, col := range p.cfg.Columns {
		if col.SortKey == "" {
			continue
		}
		if n == ordinal {
			return col.SortKey, true
		}
		n++
	}
	return "", false
}

func (p *ListPage[T]) selectedRow() (T, bool) {
	data := p.coord.Data()
	if p.cursor < 0 || p.cursor >= len(data) {
		var zero T
		return zero, false
	}
	return data[p.cursor], true
}

func (p *ListPage[T]) clampCursor() {
	if n := len(p.coord.Data()); p.cursor >= n {
		p.cursor = max(0, n-1)
	}
}

func (p *ListPage[T]) setToast(text string, isErr bool) {
	p.toast = text
	p.toastErr = isErr
}

func nextPageSize(current int) int {
	for i, n := range pageSizes {
		if n == current {
			return pageSizes[(i+1)%len(pageSizes)]
		}
	}
	return pageSizes[0]
}

func (p *ListPage[T]) View() string {
	var b strings.Builder
	b.WriteString(p.styles.Header.Render(p.cfg.Title))
	b.WriteString("\n")

	b.WriteString(p.viewSearch())
	b.WriteString("\n\n")

	switch {
	case p.coord.Err() != nil:
		b.WriteString(p.styles.Error.Render("Não foi possível carregar os registros."))
		b.WriteString("\n")
		b.WriteString(p.styles.Muted.Render("Pressione r para tentar novamente."))
	case p.coord.Loading():
		b.WriteString(p.styles.Muted.Render("Carregando…"))
	case len(p.coord.Data()) == 0:
		if p.coord.AppliedSearch() != "" {
			b.WriteString(p.styles.Muted.Render(p.cfg.NoMatchText))
		} else {
			b.WriteString(p.styles.Muted.Render(p.cfg.EmptyText))
		}
	default:
		b.WriteString(p.viewTable())
	}

	b.WriteString("\n")
	b.WriteString(p.viewFooter())

	if p.toast != "" {
		b.WriteString("\n")
		if p.toastErr {
			b.WriteString(p.styles.Error.Render(p.toast))
		} else {
			b.WriteString(p.styles.Success.Render(p.toast))
		}
	}

	base := b.String()

	if p.form != nil {
		return base + "\n\n" + p.form.View(p.styles)
	}
	if p.dialog.IsOpen() {
		return base + "\n\n" + p.viewDialog()
	}
	return base
}

func (p *ListPage[T]) viewSearch() string {
	label := p.styles.Label.Render("Buscar:")
	input := p.coord.SearchInput()
	if p.searchFocus {
		return label + " " + p.styles.InputFocus.Render(input+"▌")
	}
	if input == "" {
		return label + " " + p.styles.Muted.Render("( / para buscar )")
	}
	return label + " " + input
}

func (p *ListPage[T]) viewTable() string {
	var b strings.Builder

	sortState := p.coord.Sort()
	header := make([]string, 0, len(p.cfg.Columns))
	ordinal := 0
	for _, col := range p.cfg.Columns {
		title := col.Title
		if col.SortKey != "" {
			ordinal++
			marker := " "
			if sortState.Key == col.SortKey {
				if sortState.Dir == list.Asc {
					marker = "▲"
				} else {
					marker = "▼"
				}
			}
			title = fmt.Sprintf("%s %s(%d)", col.Title, marker, ordinal)
		}
		header = append(header, pad(title, col.Width))
	}
	b.WriteString(p.styles.TableHeader.Render(strings.Join(header, " ")))
	b.WriteString("\n")

	for i, row := range p.coord.Data() {
		cells := make([]string, 0, len(p.cfg.Columns))
		for _, col := range p.cfg.Columns {
			cells = append(cells, pad(col.Cell(row), col.Width))
		}
		line := strings.Join(cells, " ")
		if p.gate.Pending(p.cfg.ID(row)) {
			line += " " + p.styles.Warning.Render("⏳")
		}
		if i == p.cursor {
			b.WriteString(p.styles.RowSelected.Render("› " + line))
		} else {
			b.WriteString(p.styles.Row.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (p *ListPage[T]) viewFooter() string {
	meta, ok := p.coord.Meta()
	parts := []string{}
	if ok {
		parts = append(parts,
			fmt.Sprintf("página %d de %d", meta.CurrentPage, max(meta.TotalPages, 1)),
			fmt.Sprintf("%d registros", meta.TotalItems),
		)
	}
	parts = append(parts, fmt.Sprintf("%d por página (c)", p.coord.Limit()))
	if p.coord.Fetching() && !p.coord.Loading() {
		parts = append(parts, p.styles.Warning.Render("atualizando…"))
	}

	help := "←/→ página · / buscar · n novo · e editar · d excluir · esc voltar"
	return p.styles.Footer.Render(strings.Join(parts, " · ") + "\n" + help)
}

func (p *ListPage[T]) viewDialog() string {
	text := fmt.Sprintf("Excluir %s?", p.cfg.Singular)
	hint := "s/enter confirmar · n/esc cancelar"
	if p.gate.Pending(p.dialog.Target()) {
		hint = p.styles.Warning.Render("excluindo…")
	}
	return p.styles.Dialog.Render(text + "\n\n" + p.styles.Muted.Render(hint))
}

func pad(s string, width int) string {
	if width <= 0 {
		return s
	}
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return truncate(s, width)
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 1 {
		return string(runes[:width])
	}
	return string(runes[:width-1]) + "…"
}

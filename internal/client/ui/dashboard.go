package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/victorozoterio/friendly-snout-console/internal/client/models"
	"github.com/victorozoterio/friendly-snout-console/internal/common"
)

// DashboardPage shows animal counts per shelter stage and is the
// navigation hub into the entity pages.
type DashboardPage struct {
	deps   *Deps
	styles Styles

	totals  *models.StageTotals
	loading bool
	err     error

	width  int
	height int
}

// NewDashboardPage builds the dashboard.
func NewDashboardPage(deps *Deps) *DashboardPage {
	return &DashboardPage{deps: deps, styles: deps.Styles, loading: true}
}

func (p *DashboardPage) Init() tea.Cmd { return p.fetch() }

func (p *DashboardPage) SetSize(width, height int) { p.width, p.height = width, height }

func (p *DashboardPage) fetch() tea.Cmd {
	client := p.deps.API
	return func() tea.Msg {
		totals, err := client.TotalPerStage(context.Background())
		return stageTotalsMsg{totals: totals, err: err}
	}
}

func (p *DashboardPage) Update(msg tea.Msg) (pager, tea.Cmd) {
	switch msg := msg.(type) {
	case stageTotalsMsg:
		p.loading = false
		p.totals, p.err = msg.totals, msg.err
		if msg.err != nil && errors.Is(msg.err, common.ErrUnauthorized) {
			return p, func() tea.Msg { return sessionExpiredMsg{} }
		}
		return p, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			p.loading = true
			p.err = nil
			return p, p.fetch()
		case "1":
			page := NewAnimalsPage(p.deps)
			return p, func() tea.Msg { return navigateMsg{page: page} }
		case "2":
			page := NewMedicinesPage(p.deps)
			return p, func() tea.Msg { return navigateMsg{page: page} }
		case "3":
			page := NewBrandsPage(p.deps)
			return p, func() tea.Msg { return navigateMsg{page: page} }
		case "o":
			sess := p.deps.Session
			return p, func() tea.Msg {
				_ = sess.Logout(context.Background())
				return loggedOutMsg{}
			}
		}
	}
	return p, nil
}

func (p *DashboardPage) View() string {
	var b strings.Builder
	b.WriteString(p.styles.Header.Render("Painel do abrigo"))
	b.WriteString("\n")

	switch {
	case p.loading:
		b.WriteString(p.styles.Muted.Render("Carregando…"))
	case p.err != nil:
		b.WriteString(p.styles.Error.Render("Não foi possível carregar o painel."))
		b.WriteString("\n" + p.styles.Muted.Render("Pressione r para tentar novamente."))
	case p.totals != nil:
		cards := lipgloss.JoinHorizontal(lipgloss.Top,
			p.stageCard("Em quarentena", p.totals.Quarantine),
			p.stageCard("Acolhidos", p.totals.Sheltered),
			p.stageCard("Adotados", p.totals.Adopted),
		)
		b.WriteString(cards)
	}

	b.WriteString("\n\n")
	b.WriteString(p.styles.Footer.Render(
		"1 animais · 2 medicamentos · 3 marcas · r atualizar · o sair da conta · ctrl+c fechar"))
	return b.String()
}

func (p *DashboardPage) stageCard(title string, count models.StageCount) string {
	var b strings.Builder
	b.WriteString(p.styles.Subtitle.Render(title))
	b.WriteString("\n")
	b.WriteString(p.styles.Bold.Render(fmt.Sprintf("%d", count.Total)))
	b.WriteString("\n")
	b.WriteString(p.styles.Muted.Render(fmt.Sprintf("%d cães · %d gatos", count.Dogs, count.Cats)))
	return p.styles.Card.Render(b.String())
}

// Package ui implements the terminal console: a bubbletea application
// with a sign-in page, a dashboard of shelter stage totals, and one
// generic entity list page instantiated per entity (animals, medicines,
// brands, attachments, medicine applications). Pages share a lipgloss
// style set and communicate through messages routed by the App model.
package ui

import "github.com/charmbracelet/lipgloss"

// Styles is the console's lipgloss style set, shared by every page.
type Styles struct {
	// Layout
	App    lipgloss.Style
	Header lipgloss.Style
	Footer lipgloss.Style
	Card   lipgloss.Style

	// Text
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Bold     lipgloss.Style

	// Table
	TableHeader lipgloss.Style
	Row         lipgloss.Style
	RowSelected lipgloss.Style

	// Status
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style

	// Forms
	Label      lipgloss.Style
	Input      lipgloss.Style
	InputFocus lipgloss.Style
	FieldError lipgloss.Style

	// Overlays
	Dialog lipgloss.Style
}

// DefaultStyles builds the default dark-terminal style set.
func DefaultStyles() Styles {
	var (
		primary = lipgloss.Color("36")
		accent  = lipgloss.Color("214")
		muted   = lipgloss.Color("243")
		errRed  = lipgloss.Color("196")
		okGreen = lipgloss.Color("76")
		border  = lipgloss.Color("240")
	)

	return Styles{
		App:    lipgloss.NewStyle().Padding(1, 2),
		Header: lipgloss.NewStyle().Bold(true).Foreground(primary).MarginBottom(1),
		Footer: lipgloss.NewStyle().Foreground(muted).MarginTop(1),
		Card: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
			BorderForeground(border).Padding(0, 2).MarginRight(2),

		Title:    lipgloss.NewStyle().Bold(true).Foreground(primary),
		Subtitle: lipgloss.NewStyle().Foreground(accent),
		Body:     lipgloss.NewStyle(),
		Muted:    lipgloss.NewStyle().Foreground(muted),
		Bold:     lipgloss.NewStyle().Bold(true),

		TableHeader: lipgloss.NewStyle().Bold(true).Underline(true),
		Row:         lipgloss.NewStyle(),
		RowSelected: lipgloss.NewStyle().Bold(true).Foreground(accent),

		Success: lipgloss.NewStyle().Foreground(okGreen),
		Error:   lipgloss.NewStyle().Foreground(errRed),
		Warning: lipgloss.NewStyle().Foreground(accent),

		Label:      lipgloss.NewStyle().Foreground(muted),
		Input:      lipgloss.NewStyle(),
		InputFocus: lipgloss.NewStyle().Foreground(accent),
		FieldError: lipgloss.NewStyle().Foreground(errRed),

		Dialog: lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).
			BorderForeground(accent).Padding(1, 3),
	}
}

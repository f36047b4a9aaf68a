package ui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/victorozoterio/friendly-snout-console/internal/client/session"
	"github.com/victorozoterio/friendly-snout-console/internal/common"
)

// signInDoneMsg delivers the sign-in result.
type signInDoneMsg struct{ err error }

// SignInPage asks for email and password and establishes the session.
type SignInPage struct {
	session *session.Session
	styles  Styles

	email    textinput.Model
	password textinput.Model
	focus    int

	emailErr    string
	passwordErr string
	submitErr   string
	submitting  bool

	width  int
	height int
}

// NewSignInPage builds the sign-in form.
func NewSignInPage(sess *session.Session, styles Styles) *SignInPage {
	email := textinput.New()
	email.Placeholder = "email@exemplo.com"
	email.CharLimit = 120
	email.Focus()

	password := textinput.New()
	password.Placeholder = "senha"
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.CharLimit = 120

	return &SignInPage{session: sess, styles: styles, email: email, password: password}
}

func (p *SignInPage) Init() tea.Cmd { return textinput.Blink }

func (p *SignInPage) SetSize(width, height int) { p.width, p.height = width, height }

// valid runs the schema checks and records inline messages.
func (p *SignInPage) valid() bool {
	p.emailErr, p.passwordErr = "", ""

	email := strings.TrimSpace(p.email.Value())
	if email == "" {
		p.emailErr = "Campo obrigatório"
	} else if !strings.Contains(email, "@") || strings.HasPrefix(email, "@") || strings.HasSuffix(email, "@") {
		p.emailErr = "Email inválido"
	}
	if p.password.Value() == "" {
		p.passwordErr = "Campo obrigatório"
	}
	return p.emailErr == "" && p.passwordErr == ""
}

func (p *SignInPage) submit() tea.Cmd {
	email := strings.TrimSpace(p.email.Value())
	password := p.password.Value()
	sess := p.session
	return func() tea.Msg {
		return signInDoneMsg{err: sess.SignIn(context.Background(), email, password)}
	}
}

func (p *SignInPage) Update(msg tea.Msg) (pager, tea.Cmd) {
	switch msg := msg.(type) {
	case signInDoneMsg:
		p.submitting = false
		if msg.err != nil {
			switch {
			case errors.Is(msg.err, common.ErrUnauthorized):
				p.submitErr = "Email ou senha incorretos"
			case errors.Is(msg.err, common.ErrUnavailable):
				p.submitErr = "Servidor indisponível, tente novamente"
			default:
				p.submitErr = "Não foi possível entrar"
			}
			return p, nil
		}
		return p, func() tea.Msg { return signedInMsg{} }

	case tea.KeyMsg:
		if p.submitting {
			return p, nil
		}
		switch msg.String() {
		case "tab", "down", "shift+tab", "up":
			p.focus = 1 - p.focus
			if p.focus == 0 {
				p.email.Focus()
				p.password.Blur()
			} else {
				p.password.Focus()
				p.email.Blur()
			}
			return p, nil
		case "enter":
			if !p.valid() {
				return p, nil
			}
			p.submitting = true
			p.submitErr = ""
			return p, p.submit()
		case "ctrl+c":
			return p, tea.Quit
		}
	}

	var cmd tea.Cmd
	if p.focus == 0 {
		p.email, cmd = p.email.Update(msg)
	} else {
		p.password, cmd = p.password.Update(msg)
	}
	return p, cmd
}

func (p *SignInPage) View() string {
	var b strings.Builder
	b.WriteString(p.styles.Header.Render("Focinho Amigo"))
	b.WriteString("\n")
	b.WriteString(p.styles.Muted.Render("Entre para administrar o abrigo"))
	b.WriteString("\n\n")

	b.WriteString(p.styles.Label.Render("Email"))
	b.WriteString("\n" + p.email.View() + "\n")
	if p.emailErr != "" {
		b.WriteString(p.styles.FieldError.Render(p.emailErr) + "\n")
	}

	b.WriteString("\n" + p.styles.Label.Render("Senha"))
	b.WriteString("\n" + p.password.View() + "\n")
	if p.passwordErr != "" {
		b.WriteString(p.styles.FieldError.Render(p.passwordErr) + "\n")
	}

	b.WriteString("\n")
	if p.submitting {
		b.WriteString(p.styles.Warning.Render("Entrando…"))
	} else {
		b.WriteString(p.styles.Muted.Render("enter entrar · tab alternar campo · ctrl+c sair"))
	}
	if p.submitErr != "" {
		b.WriteString("\n" + p.styles.Error.Render(p.submitErr))
	}
	return b.String()
}

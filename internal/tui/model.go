// Package tui is a terminal view binder for the sign-in form. It renders the
// form.Controller state with bubbletea and routes key events back into it.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"signin-front/internal/form"
	"signin-front/internal/i18n"
)

const (
	emailInput = iota
	passwordInput
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type keyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Next:   key.NewBinding(key.WithKeys("tab", "down")),
	Prev:   key.NewBinding(key.WithKeys("shift+tab", "up")),
	Submit: key.NewBinding(key.WithKeys("enter")),
	Quit:   key.NewBinding(key.WithKeys("ctrl+c", "esc")),
}

// resultMsg carries a finished login attempt back into Update.
type resultMsg form.Result

// Landing is the terminal stand-in for browser navigation: it records the
// destination and the program exits.
type Landing struct {
	Path string
}

func (l *Landing) Navigate(path string) error {
	l.Path = path
	return nil
}

// Model is the bubbletea model of the sign-in form.
type Model struct {
	ctx    context.Context
	ctrl   *form.Controller
	cat    *i18n.Catalog
	inputs []textinput.Model
	focus  int
	quit   bool
}

// New returns a model bound to ctrl. ctx is passed to every login call.
func New(ctx context.Context, ctrl *form.Controller, cat *i18n.Catalog) Model {
	email := textinput.New()
	email.Placeholder = cat.T("form.email_placeholder")
	email.Prompt = "> "
	email.Focus()

	password := textinput.New()
	password.Placeholder = cat.T("form.password_placeholder")
	password.Prompt = "> "
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return Model{
		ctx:    ctx,
		ctrl:   ctrl,
		cat:    cat,
		inputs: []textinput.Model{email, password},
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Controller exposes the bound controller, mainly for the caller to inspect
// the final status.
func (m Model) Controller() *form.Controller { return m.ctrl }

// Quitting reports whether the user left without signing in.
func (m Model) Quitting() bool { return m.quit }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case resultMsg:
		m.ctrl.Complete(form.Result(msg))
		if m.ctrl.Status() == form.StatusSucceeded {
			return m, tea.Quit
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.quit = true
			return m, tea.Quit
		case key.Matches(msg, keys.Next):
			return m, m.setFocus(m.focus + 1)
		case key.Matches(msg, keys.Prev):
			return m, m.setFocus(m.focus - 1)
		case key.Matches(msg, keys.Submit):
			if m.focus == emailInput {
				return m, m.setFocus(passwordInput)
			}
			return m, m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.sync()
	return m, cmd
}

// sync copies changed input values into the controller's fields.
func (m *Model) sync() {
	if v := m.inputs[emailInput].Value(); v != m.ctrl.Email().Value() {
		m.ctrl.SetEmail(v)
	}
	if v := m.inputs[passwordInput].Value(); v != m.ctrl.Password().Value() {
		m.ctrl.SetPassword(v)
	}
}

func (m *Model) setFocus(i int) tea.Cmd {
	n := len(m.inputs)
	i = ((i % n) + n) % n
	m.inputs[m.focus].Blur()
	m.focus = i
	return m.inputs[m.focus].Focus()
}

// submit runs the gate on the UI loop and, if it passes, returns a command
// that performs the login off the loop and reports back with resultMsg.
func (m *Model) submit() tea.Cmd {
	attempt, err := m.ctrl.Begin()
	if err != nil {
		return nil
	}
	ctx := m.ctx
	return func() tea.Msg {
		return resultMsg(attempt.Run(ctx))
	}
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.cat.T("form.title")))
	b.WriteString("\n\n")

	fields := []struct {
		label string
		field *form.Field
		hint  string
	}{
		{m.cat.T("form.email_placeholder"), m.ctrl.Email(), m.ctrl.Messages().EmailHint},
		{m.cat.T("form.password_placeholder"), m.ctrl.Password(), m.ctrl.Messages().PasswordHint},
	}
	for i, f := range fields {
		b.WriteString(labelStyle.Render(f.label))
		b.WriteString("\n")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
		if f.field.ShowHint() {
			b.WriteString(hintStyle.Render(f.hint))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if m.ctrl.Pending() {
		b.WriteString(helpStyle.Render(m.cat.T("form.submitting")))
		b.WriteString("\n")
	}
	if !m.ctrl.Err().IsEmpty() {
		b.WriteString(errorStyle.Render(m.ctrl.Err().Message()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.cat.T("tui.help")))
	b.WriteString("\n")
	return b.String()
}

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const sessionExpiredNotice = "Your session has expired. Please sign in again."

type authMode int

const (
	modeLogin authMode = iota
	modeRegister
)

const (
	emailField = iota
	passwordField
)

type loginView struct {
	ctx  context.Context
	auth Auth

	mode    authMode
	inputs  []textinput.Model
	focus   int
	expired bool
	busy    bool
	status  string
}

func newLoginView(ctx context.Context, auth Auth) *loginView {
	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.Prompt = "Email    "
	email.CharLimit = 254

	password := textinput.New()
	password.Placeholder = "at least 6 characters"
	password.Prompt = "Password "
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.CharLimit = 128

	return &loginView{
		ctx:    ctx,
		auth:   auth,
		inputs: []textinput.Model{email, password},
	}
}

func (v *loginView) Enter(mode authMode, expired bool) tea.Cmd {
	v.mode = mode
	v.expired = expired
	v.busy = false
	v.status = ""
	v.inputs[passwordField].Reset()
	return v.setFocus(emailField)
}

func (v *loginView) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case authDoneMsg:
		v.busy = false
		if msg.err != nil {
			v.status = msg.err.Error()
			return nil
		}
		v.expired = false
		v.status = ""
		v.inputs[passwordField].Reset()
		return navigate(RouteChat)

	case tea.KeyMsg:
		if v.busy {
			return nil
		}

		switch {
		case key.Matches(msg, keyBack):
			return navigate(RouteChat)
		case key.Matches(msg, keyToggle):
			if v.mode == modeLogin {
				return navigate(RouteRegister)
			}
			return navigate(RouteLogin)
		case key.Matches(msg, keyTab), msg.Type == tea.KeyDown:
			return v.setFocus((v.focus + 1) % len(v.inputs))
		case key.Matches(msg, keyShiftTab), msg.Type == tea.KeyUp:
			return v.setFocus((v.focus + len(v.inputs) - 1) % len(v.inputs))
		case msg.Type == tea.KeyEnter:
			if v.focus == emailField {
				return v.setFocus(passwordField)
			}
			return v.submit()
		}
	}

	var cmd tea.Cmd
	v.inputs[v.focus], cmd = v.inputs[v.focus].Update(msg)
	return cmd
}

func (v *loginView) submit() tea.Cmd {
	email := strings.TrimSpace(v.inputs[emailField].Value())
	password := v.inputs[passwordField].Value()

	v.busy = true
	v.status = ""

	ctx, auth, mode := v.ctx, v.auth, v.mode
	return func() tea.Msg {
		if mode == modeRegister {
			return authDoneMsg{err: auth.Register(ctx, email, password)}
		}
		return authDoneMsg{err: auth.Login(ctx, email, password)}
	}
}

func (v *loginView) setFocus(field int) tea.Cmd {
	v.focus = field
	for i := range v.inputs {
		if i == field {
			continue
		}
		v.inputs[i].Blur()
	}
	return v.inputs[field].Focus()
}

func (v *loginView) View() string {
	title, hint := "Sign in", "ctrl+r create an account"
	if v.mode == modeRegister {
		title, hint = "Create account", "ctrl+r sign in instead"
	}

	var sections []string
	sections = append(sections, titleStyle.Render(title), "")
	if v.expired {
		sections = append(sections, noticeStyle.Render(sessionExpiredNotice), "")
	}

	for _, input := range v.inputs {
		sections = append(sections, input.View())
	}
	sections = append(sections, "")

	switch {
	case v.busy:
		sections = append(sections, mutedStyle.Render("Please wait…"))
	case v.status != "":
		sections = append(sections, errorStyle.Render(v.status))
	}

	sections = append(sections, mutedStyle.Render("enter submit • tab next field • "+hint+" • esc continue as guest"))

	return lipgloss.NewStyle().Padding(1, 2).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

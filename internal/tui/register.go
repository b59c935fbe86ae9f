package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/go-birthday-keeper/internal/service"
	"github.com/MKhiriev/go-birthday-keeper/internal/validators"
	"github.com/MKhiriev/go-birthday-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	registerUsername = iota
	registerEmail
	registerPassword
	registerConfirm
)

// RegisterModel is the Bubble Tea model for the sign-up screen. Input rules
// are enforced by the account service; the screen only shows the message
// of the first rule that failed.
type RegisterModel struct {
	ctx      context.Context
	accounts service.AccountService

	form       form
	submitting bool
	errMsg     string
}

func NewRegisterModel(ctx context.Context, accounts service.AccountService) *RegisterModel {
	return &RegisterModel{
		ctx:      ctx,
		accounts: accounts,
		form: newForm(
			formField{label: "Username", placeholder: "username", charLimit: 64},
			formField{label: "Email", placeholder: "name@example.com", charLimit: 254},
			formField{label: "Password", placeholder: "password", charLimit: 256, secret: true},
			formField{label: "Confirm Password", placeholder: "repeat password", charLimit: 256, secret: true},
		),
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(RegisterResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeError(result.Err)

			var vErr *validators.ValidationError
			if errors.As(result.Err, &vErr) {
				m.form.focusLabel(vErr.Field)
			}
			return m, nil
		}

		m.errMsg = ""
		m.form.reset()
		return m, func() tea.Msg {
			return NavigateTo{
				Page:    pageMenu,
				Payload: RegisterSuccessNotice{Username: result.Username},
			}
		}
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(keyMsg, keys.tab):
			m.form.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(models.RegistrationForm{
				Username:        m.form.value(registerUsername),
				Email:           m.form.value(registerEmail),
				Password:        m.form.rawValue(registerPassword),
				ConfirmPassword: m.form.rawValue(registerConfirm),
			})
		}
	}

	return m, m.form.update(msg)
}

func (m *RegisterModel) View() string {
	var b strings.Builder
	m.form.view(&b)

	if m.submitting {
		b.WriteString("\n[Signing up...]\n")
	} else {
		b.WriteString("\n[Sign up]\n")
	}
	renderMessages(&b, m.errMsg, "")

	return renderPage("SIGN UP", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *RegisterModel) cmdRegister(registration models.RegistrationForm) tea.Cmd {
	ctx := m.ctx
	accounts := m.accounts

	return func() tea.Msg {
		err := accounts.Register(ctx, registration)
		return RegisterResult{Err: err, Username: registration.Username}
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-birthday-keeper/internal/app"
	"github.com/MKhiriev/go-birthday-keeper/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	loginEmail = iota
	loginPassword
)

// LoginModel is the Bubble Tea model for the login screen. On success a
// [LoginResult] message is produced and handled by [RootModel] to finish
// the flow.
type LoginModel struct {
	ctx      context.Context
	accounts service.AccountService

	form       form
	submitting bool
	errMsg     string
}

// NewLoginModel creates a [LoginModel]. A non-empty lastUser prefills the
// email and focuses the password input.
func NewLoginModel(ctx context.Context, accounts service.AccountService, lastUser string) *LoginModel {
	m := &LoginModel{
		ctx:      ctx,
		accounts: accounts,
		form: newForm(
			formField{label: "Email", placeholder: "name@example.com", charLimit: 254},
			formField{label: "Password", placeholder: "password", charLimit: 256, secret: true},
		),
	}

	if lastUser != "" {
		m.form.setValue(loginEmail, lastUser)
		m.form.focusOn(loginPassword)
	}
	return m
}

func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(LoginResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeError(result.Err)
			m.form.setValue(loginPassword, "")
		}
		return m, nil
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

			email := m.form.value(loginEmail)
			pass := m.form.rawValue(loginPassword)
			if email == "" || pass == "" {
				m.errMsg = app.MsgMissingFields
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdLogin(email, pass)
		}
	}

	return m, m.form.update(msg)
}

func (m *LoginModel) View() string {
	var b strings.Builder
	m.form.view(&b)

	if m.submitting {
		b.WriteString("\n[Logging in...]\n")
	} else {
		b.WriteString("\n[Log in]\n")
	}
	renderMessages(&b, m.errMsg, "")

	return renderPage("LOG IN", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *LoginModel) cmdLogin(email, pass string) tea.Cmd {
	ctx := m.ctx
	accounts := m.accounts

	return func() tea.Msg {
		session, err := accounts.Authenticate(ctx, email, pass)
		return LoginResult{Session: session, Err: err}
	}
}

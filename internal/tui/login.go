// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-mypass/internal/service"
)

const (
	loginEmail = iota
	loginPassword
)

// LoginModel is the Bubble Tea model for the login screen. It renders two
// text inputs (email and password) and dispatches an async login command
// on form submission. On success it opens the vault page with a
// [sessionStartedMsg], which arms the auto-lock in [RootModel].
type LoginModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	form       inputForm
	submitting bool
	status     string
	errMsg     string
}

// NewLoginModel creates a [LoginModel] with focus on the email input.
func NewLoginModel(ctx context.Context, auth service.ClientAuthService) *LoginModel {
	return &LoginModel{
		ctx:  ctx,
		auth: auth,
		form: newInputForm(
			newTextInput("email", false),
			newTextInput("password", true),
		),
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [loginResultMsg] clears submitting state; on error, populates errMsg.
//   - [statusNotice] shows a message carried over from another page.
//   - esc returns to the menu.
//   - tab / shift+tab move focus.
//   - enter dispatches the async login command.
//
// All other key events are forwarded to the focused input widget.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loginResultMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = service.UserMessage(msg.err)
			return m, nil
		}
		m.form.reset()
		m.status, m.errMsg = "", ""
		return m, navigate(pageVault, sessionStartedMsg{identity: msg.identity})

	case statusNotice:
		msg.apply(&m.status, &m.errMsg)
		return m, textinput.Blink

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			m.submitting = false
			m.status, m.errMsg = "", ""
			return m, navigate(pageMenu, nil)
		case key.Matches(msg, keys.tab):
			m.form.focusNext()
			return m, nil
		case key.Matches(msg, keys.backtab):
			m.form.focusPrev()
			return m, nil
		case key.Matches(msg, keys.enter):
			if m.submitting {
				return m, nil
			}
			m.status, m.errMsg = "", ""
			m.submitting = true
			return m, m.cmdLogin(m.form.value(loginEmail), m.form.value(loginPassword))
		}
	}

	return m, m.form.update(msg)
}

// View implements [tea.Model].
func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString("Field    │ Value\n")
	b.WriteString("─────────┼────────────────────────────────────────────\n")
	b.WriteString("Email    │ [")
	b.WriteString(m.form.inputs[loginEmail].View())
	b.WriteString("]\n")
	b.WriteString("Password │ [")
	b.WriteString(m.form.inputs[loginPassword].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Logging in...]\n")
	} else {
		b.WriteString("\n[Log in]\n")
	}

	writeStatus(&b, m.status, m.errMsg)

	return renderPage("LOG IN", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *LoginModel) cmdLogin(email, password string) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		identity, err := auth.Login(ctx, email, password)
		return loginResultMsg{identity: identity, err: err}
	}
}

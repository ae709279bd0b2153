// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-mypass/internal/service"
	"github.com/MKhiriev/go-mypass/models"
)

const (
	regEmail = iota
	regPassword
	regConfirm
	regFirstQuestion // question i at regFirstQuestion+2*i, its answer right after
)

// RegisterModel is the Bubble Tea model for the registration screen: email,
// password with a live strength verdict, confirmation and three security
// questions with answers. Every check is repeated by the auth service; the
// screen only shows what it reports.
type RegisterModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	form       inputForm
	submitting bool
	errMsg     string
}

// NewRegisterModel creates a [RegisterModel] with focus on the email input.
func NewRegisterModel(ctx context.Context, auth service.ClientAuthService) *RegisterModel {
	inputs := []textinput.Model{
		newTextInput("email", false),
		newTextInput("password", true),
		newTextInput("repeat password", true),
	}
	for i := range models.SecurityQuestionsCount {
		inputs = append(inputs,
			newTextInput(fmt.Sprintf("security question %d", i+1), false),
			newTextInput(fmt.Sprintf("answer %d", i+1), false),
		)
	}

	return &RegisterModel{
		ctx:  ctx,
		auth: auth,
		form: newInputForm(inputs...),
	}
}

// Init implements [tea.Model].
func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. On success the form is cleared and the
// login page opens with the server's confirmation.
func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case registerResultMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = service.UserMessage(msg.err)
			return m, nil
		}
		m.form.reset()
		m.errMsg = ""
		return m, navigate(pageLogin, statusNotice{text: msg.message})

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			m.submitting = false
			m.errMsg = ""
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
			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(m.request())
		}
	}

	return m, m.form.update(msg)
}

func (m *RegisterModel) request() models.RegisterRequest {
	req := models.RegisterRequest{
		Email:           m.form.value(regEmail),
		Password:        m.form.value(regPassword),
		ConfirmPassword: m.form.value(regConfirm),
	}
	for i := range models.SecurityQuestionsCount {
		req.SecurityQuestions = append(req.SecurityQuestions, m.form.value(regFirstQuestion+2*i))
		req.SecurityAnswers = append(req.SecurityAnswers, m.form.value(regFirstQuestion+2*i+1))
	}
	return req
}

// View implements [tea.Model].
func (m *RegisterModel) View() string {
	var b strings.Builder
	row := func(label string, i int) {
		b.WriteString(fmt.Sprintf("%-11s │ [%s]\n", label, m.form.inputs[i].View()))
	}

	b.WriteString("Field       │ Value\n")
	b.WriteString("────────────┼────────────────────────────────────────────\n")
	row("Email", regEmail)
	row("Password", regPassword)
	if hint := strengthHint(m.form.value(regPassword)); hint != "" {
		b.WriteString("            │ ")
		b.WriteString(hint)
		b.WriteString("\n")
	}
	row("Confirm", regConfirm)
	for i := range models.SecurityQuestionsCount {
		row(fmt.Sprintf("Question %d", i+1), regFirstQuestion+2*i)
		row(fmt.Sprintf("Answer %d", i+1), regFirstQuestion+2*i+1)
	}

	if m.submitting {
		b.WriteString("\n[Registering...]\n")
	} else {
		b.WriteString("\n[Register]\n")
	}

	writeStatus(&b, "", m.errMsg)

	return renderPage("REGISTER", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *RegisterModel) cmdRegister(req models.RegisterRequest) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		message, err := auth.Register(ctx, req)
		return registerResultMsg{message: message, err: err}
	}
}

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

	"github.com/MKhiriev/go-mypass/internal/app"
	"github.com/MKhiriev/go-mypass/internal/service"
)

// RecoveryModel drives a [service.RecoveryFlow] through its three steps.
// The flow holds its lock for the whole round trip, so the model keeps its
// own copy of step and questions and refreshes them only once a submission
// has returned.
type RecoveryModel struct {
	ctx  context.Context
	flow *service.RecoveryFlow

	step       service.RecoveryStep
	email      string
	questions  []string
	form       inputForm
	submitting bool
	status     string
	errMsg     string
}

func NewRecoveryModel(ctx context.Context, flow *service.RecoveryFlow) *RecoveryModel {
	m := &RecoveryModel{ctx: ctx, flow: flow}
	m.sync()
	return m
}

func (m *RecoveryModel) Init() tea.Cmd {
	return textinput.Blink
}

// sync copies the flow state and rebuilds the inputs for the current step.
// Only call it while no submission is running.
func (m *RecoveryModel) sync() {
	m.step = m.flow.Step()
	m.email = m.flow.Email()
	m.questions = m.flow.Questions()

	switch m.step {
	case service.AwaitingAnswers:
		inputs := make([]textinput.Model, len(m.questions))
		for i := range m.questions {
			inputs[i] = newTextInput(fmt.Sprintf("answer %d", i+1), false)
		}
		m.form = newInputForm(inputs...)
	case service.AwaitingNewPassword:
		m.form = newInputForm(
			newTextInput("new password", true),
			newTextInput("repeat password", true),
		)
	default:
		m.form = newInputForm(newTextInput("email", false))
	}
}

func (m *RecoveryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case recoveryResultMsg:
		m.submitting = false
		if !msg.result.OK() {
			m.status = ""
			m.errMsg = msg.result.Message
			if m.errMsg == "" {
				m.errMsg = app.MsgTransportFailure
			}
			return m, nil
		}

		done := m.step == service.AwaitingNewPassword
		m.sync()
		m.errMsg = ""
		if done {
			m.status = ""
			return m, navigate(pageLogin, statusNotice{text: msg.result.Message})
		}
		m.status = msg.result.Message
		return m, textinput.Blink

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			if m.submitting {
				return m, nil
			}
			m.flow.Reset()
			m.sync()
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
			return m, m.cmdSubmit()
		}
	}

	return m, m.form.update(msg)
}

func (m *RecoveryModel) cmdSubmit() tea.Cmd {
	ctx := m.ctx
	flow := m.flow

	switch m.step {
	case service.AwaitingAnswers:
		answers := make([]string, len(m.form.inputs))
		for i := range m.form.inputs {
			answers[i] = m.form.value(i)
		}
		return func() tea.Msg {
			return recoveryResultMsg{result: flow.SubmitAnswers(ctx, answers)}
		}
	case service.AwaitingNewPassword:
		password, confirm := m.form.value(0), m.form.value(1)
		return func() tea.Msg {
			return recoveryResultMsg{result: flow.SubmitNewPassword(ctx, password, confirm)}
		}
	default:
		email := m.form.value(0)
		return func() tea.Msg {
			return recoveryResultMsg{result: flow.SubmitEmail(ctx, email)}
		}
	}
}

func (m *RecoveryModel) View() string {
	var b strings.Builder

	switch m.step {
	case service.AwaitingAnswers:
		b.WriteString("Account: ")
		b.WriteString(m.email)
		b.WriteString("\n\n")
		for i, q := range m.questions {
			b.WriteString(fmt.Sprintf("%d. %s\n   [%s]\n", i+1, q, m.form.inputs[i].View()))
		}
	case service.AwaitingNewPassword:
		b.WriteString("Account: ")
		b.WriteString(m.email)
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf("New password │ [%s]\n", m.form.inputs[0].View()))
		if hint := strengthHint(m.form.value(0)); hint != "" {
			b.WriteString("             │ ")
			b.WriteString(hint)
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("Confirm      │ [%s]\n", m.form.inputs[1].View()))
	default:
		b.WriteString("Enter the email of your account.\n\n")
		b.WriteString(fmt.Sprintf("Email │ [%s]\n", m.form.inputs[0].View()))
	}

	if m.submitting {
		b.WriteString("\n[Sending...]\n")
	}

	writeStatus(&b, m.status, m.errMsg)

	title := fmt.Sprintf("FORGOT PASSWORD (%d/3)", int(m.step)+1)
	return renderPage(title, strings.TrimRight(b.String(), "\n"), "esc: cancel │ tab: next field │ enter: submit")
}

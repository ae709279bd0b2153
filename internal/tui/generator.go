// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-mypass/internal/app"
	"github.com/MKhiriev/go-mypass/internal/crypto"
	"github.com/MKhiriev/go-mypass/internal/service"
	"github.com/MKhiriev/go-mypass/models"
)

const (
	minGeneratedLength = 4
	maxGeneratedLength = 64
)

// GeneratorModel generates passwords from an adjustable spec and checks
// the strength of any typed password.
type GeneratorModel struct {
	generator crypto.PasswordGenerator
	clipboard service.Clipboard

	spec     models.PasswordSpec
	password string
	check    textinput.Model
	checking bool
	back     string
	status   string
	errMsg   string
}

func NewGeneratorModel(generator crypto.PasswordGenerator, clipboard service.Clipboard, spec models.PasswordSpec) *GeneratorModel {
	return &GeneratorModel{
		generator: generator,
		clipboard: clipboard,
		spec:      spec,
		check:     newTextInput("type a password to check", false),
		back:      pageMenu,
	}
}

func (m *GeneratorModel) Init() tea.Cmd {
	return nil
}

func (m *GeneratorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case openGeneratorMsg:
		m.back = msg.back
		m.status, m.errMsg = "", ""
		m.checking = false
		m.check.Blur()
		m.check.SetValue("")
		m.generate()
		return m, nil

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		if m.checking {
			switch {
			case key.Matches(msg, keys.esc, keys.tab):
				m.checking = false
				m.check.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.check, cmd = m.check.Update(msg)
			return m, cmd
		}
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m *GeneratorModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		return m, navigate(m.back, nil)
	case key.Matches(msg, keys.tab):
		m.checking = true
		return m, m.check.Focus()
	case key.Matches(msg, keys.left):
		if m.spec.Length > minGeneratedLength {
			m.spec.Length--
			m.generate()
		}
	case key.Matches(msg, keys.right):
		if m.spec.Length < maxGeneratedLength {
			m.spec.Length++
			m.generate()
		}
	case key.Matches(msg, keys.upper):
		m.spec.Uppercase = !m.spec.Uppercase
		m.generate()
	case key.Matches(msg, keys.numbers):
		m.spec.Numbers = !m.spec.Numbers
		m.generate()
	case key.Matches(msg, keys.special):
		m.spec.SpecialChars = !m.spec.SpecialChars
		m.generate()
	case key.Matches(msg, keys.enter), key.Matches(msg, keys.reload):
		m.generate()
	case key.Matches(msg, keys.copy):
		if m.password == "" {
			return m, nil
		}
		m.status, m.errMsg = "", ""
		if err := m.clipboard.WriteAll(m.password); err != nil {
			m.errMsg = service.UserMessage(fmt.Errorf("%w: %w", service.ErrClipboard, err))
			return m, nil
		}
		m.status = app.MsgCopied
		return m, clearStatusLater()
	}
	return m, nil
}

func (m *GeneratorModel) generate() {
	password, err := m.generator.Generate(m.spec)
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.password = password
}

func onOff(v bool) string {
	if v {
		return "[x]"
	}
	return "[ ]"
}

func (m *GeneratorModel) View() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Length          │ %d\n", m.spec.Length))
	b.WriteString(fmt.Sprintf("Uppercase (u)   │ %s\n", onOff(m.spec.Uppercase)))
	b.WriteString(fmt.Sprintf("Numbers (n)     │ %s\n", onOff(m.spec.Numbers)))
	b.WriteString(fmt.Sprintf("Special (s)     │ %s\n", onOff(m.spec.SpecialChars)))
	b.WriteString("\n")
	b.WriteString("Password        │ ")
	b.WriteString(selectedStyle.Render(valueOrDash(m.password)))
	b.WriteString("\n")
	if hint := strengthHint(m.password); hint != "" {
		b.WriteString("                │ ")
		b.WriteString(hint)
		b.WriteString("\n")
	}

	b.WriteString("\nCheck strength  │ [")
	b.WriteString(m.check.View())
	b.WriteString("]\n")
	if hint := strengthHint(m.check.Value()); hint != "" {
		b.WriteString("                │ ")
		b.WriteString(hint)
		b.WriteString("\n")
	}

	writeStatus(&b, m.status, m.errMsg)

	hotKeys := "←/→: length │ u/n/s: classes │ enter: new │ c: copy │ tab: check │ esc: back"
	if m.checking {
		hotKeys = "tab/esc: stop checking"
	}
	return renderPage("PASSWORD GENERATOR", strings.TrimRight(b.String(), "\n"), hotKeys)
}

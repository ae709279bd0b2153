// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-mypass/internal/app"
	"github.com/MKhiriev/go-mypass/internal/service"
	"github.com/MKhiriev/go-mypass/models"
)

const fieldNameWidth = 16

// DetailModel shows one item. Sensitive fields stay masked until revealed;
// copying always puts the real value on the clipboard.
type DetailModel struct {
	vault service.ClientVaultService

	item   models.VaultItem
	idx    int
	status string
	errMsg string
}

func NewDetailModel(vault service.ClientVaultService) *DetailModel {
	return &DetailModel{vault: vault}
}

func (m *DetailModel) Init() tea.Cmd {
	return nil
}

func (m *DetailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case openItemMsg:
		item, ok := m.vault.Item(msg.id)
		if !ok {
			return m, navigate(pageVault, statusNotice{text: app.MsgItemNotFound, isErr: true})
		}
		m.item = item
		m.idx = 0
		m.status, m.errMsg = "", ""
		return m, nil

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m *DetailModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	schema := m.item.Type.Schema()

	switch {
	case key.Matches(msg, keys.esc):
		return m, navigate(pageVault, nil)
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(schema)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.reveal):
		if m.idx >= len(schema) {
			return m, nil
		}
		m.status, m.errMsg = "", ""
		if _, err := m.vault.ToggleMask(m.item.ID, schema[m.idx].Name); err != nil {
			m.errMsg = service.UserMessage(err)
		}
	case key.Matches(msg, keys.copy):
		if m.idx >= len(schema) {
			return m, nil
		}
		m.status, m.errMsg = "", ""
		if _, err := m.vault.CopyField(m.item.ID, schema[m.idx].Name); err != nil {
			m.errMsg = service.UserMessage(err)
			return m, nil
		}
		m.status = app.MsgCopied
		return m, clearStatusLater()
	case key.Matches(msg, keys.edit):
		return m, navigate(pageForm, editItemMsg{id: m.item.ID})
	}
	return m, nil
}

func (m *DetailModel) View() string {
	var b strings.Builder

	b.WriteString("Type: ")
	b.WriteString(string(m.item.Type))
	b.WriteString("\n\n")

	for i, f := range m.item.Type.Schema() {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}

		value := valueOrDash(m.vault.DisplayValue(m.item.ID, f.Name))
		line := fmt.Sprintf("%-*s │ %s", fieldNameWidth, f.Name, value)
		if f.Sensitive && !m.vault.IsRevealed(m.item.ID, f.Name) {
			line += helpStyle.Render("  (hidden)")
		}
		if i == m.idx {
			line = selectedStyle.Render(line)
		}
		b.WriteString(cursor)
		b.WriteString(" ")
		b.WriteString(line)
		b.WriteString("\n")
	}

	if !m.item.UpdatedAt.IsZero() {
		b.WriteString("\nUpdated: ")
		b.WriteString(m.item.UpdatedAt.Local().Format("2006-01-02 15:04"))
		b.WriteString("\n")
	}

	writeStatus(&b, m.status, m.errMsg)

	return renderPage(
		strings.ToUpper(fitText(m.item.Title(), colTitleWidth)),
		strings.TrimRight(b.String(), "\n"),
		"↑/↓: field │ m/space: show/hide │ c: copy │ e: edit │ esc: back",
	)
}

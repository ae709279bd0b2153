// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-mypass/internal/app"
	"github.com/MKhiriev/go-mypass/internal/notifier"
	"github.com/MKhiriev/go-mypass/internal/service"
	"github.com/MKhiriev/go-mypass/models"
)

const (
	colTitleWidth = 32
	colTypeWidth  = 12
)

// VaultModel lists the items of the logged-in user together with the
// notification inbox.
type VaultModel struct {
	ctx   context.Context
	vault service.ClientVaultService
	inbox *notifier.Inbox

	identity models.Identity
	items    []models.VaultItem
	idx      int

	spinner       spinner.Model
	loading       bool
	confirmDelete bool
	status        string
	errMsg        string
}

func NewVaultModel(ctx context.Context, vault service.ClientVaultService, inbox *notifier.Inbox) *VaultModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	return &VaultModel{
		ctx:     ctx,
		vault:   vault,
		inbox:   inbox,
		spinner: s,
	}
}

func (m *VaultModel) Init() tea.Cmd {
	return func() tea.Msg { return vaultShownMsg{} }
}

func (m *VaultModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionStartedMsg:
		m.identity = msg.identity
		m.items, m.idx = nil, 0
		m.status, m.errMsg = "", ""
		m.confirmDelete = false
		return m, m.startLoad()

	case vaultShownMsg:
		m.refresh()
		return m, nil

	case statusNotice:
		msg.apply(&m.status, &m.errMsg)
		m.refresh()
		return m, clearStatusLater()

	case vaultLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = service.UserMessage(msg.err)
			return m, nil
		}
		m.refresh()
		return m, nil

	case itemDeletedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = service.UserMessage(msg.err)
			return m, nil
		}
		m.status = app.MsgItemDeleted
		m.refresh()
		return m, clearStatusLater()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.confirmDelete {
			return m.updateConfirm(msg)
		}
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m *VaultModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.enter):
		if item, ok := m.selected(); ok {
			return m, navigate(pageDetail, openItemMsg{id: item.ID})
		}
	case key.Matches(msg, keys.newItem):
		return m, navigate(pageForm, newItemMsg{})
	case key.Matches(msg, keys.edit):
		if item, ok := m.selected(); ok {
			return m, navigate(pageForm, editItemMsg{id: item.ID})
		}
	case key.Matches(msg, keys.delete):
		if _, ok := m.selected(); ok && !m.loading {
			m.confirmDelete = true
		}
	case key.Matches(msg, keys.reload):
		if !m.loading {
			m.errMsg = ""
			return m, m.startLoad()
		}
	case key.Matches(msg, keys.generate):
		return m, navigate(pageGenerator, openGeneratorMsg{back: pageVault})
	case key.Matches(msg, keys.clearMsgs):
		m.inbox.Clear()
	case key.Matches(msg, keys.logout):
		return m, func() tea.Msg { return logoutRequestedMsg{} }
	}
	return m, nil
}

func (m *VaultModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.confirmDelete = false
		item, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.loading = true
		m.errMsg = ""
		return m, tea.Batch(m.spinner.Tick, m.cmdDelete(item.ID))
	case key.Matches(msg, keys.no):
		m.confirmDelete = false
	}
	return m, nil
}

func (m *VaultModel) startLoad() tea.Cmd {
	m.loading = true
	return tea.Batch(m.spinner.Tick, m.cmdLoad())
}

// refresh takes a fresh copy of the collection and keeps the cursor in range.
func (m *VaultModel) refresh() {
	m.items = m.vault.Items()
	if m.idx >= len(m.items) {
		m.idx = len(m.items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *VaultModel) selected() (models.VaultItem, bool) {
	if m.idx < 0 || m.idx >= len(m.items) {
		return models.VaultItem{}, false
	}
	return m.items[m.idx], true
}

func (m *VaultModel) View() string {
	var b strings.Builder

	if m.identity.Email != "" {
		b.WriteString("Signed in as ")
		b.WriteString(m.identity.Email)
		b.WriteString("\n\n")
	}

	b.WriteString(fmt.Sprintf("  %-*s │ %-*s\n", colTitleWidth, "Title", colTypeWidth, "Type"))
	b.WriteString(strings.Repeat("─", colTitleWidth+2))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", colTypeWidth))
	b.WriteString("\n")

	if len(m.items) == 0 && !m.loading {
		b.WriteString("  The vault is empty. Press n to add an item.\n")
	}
	for i, item := range m.items {
		cursor := " "
		line := fmt.Sprintf("%-*s │ %-*s", colTitleWidth, fitText(item.Title(), colTitleWidth), colTypeWidth, item.Type)
		if i == m.idx {
			cursor = ">"
			line = selectedStyle.Render(line)
		}
		b.WriteString(cursor)
		b.WriteString(" ")
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.loading {
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading...\n")
	}

	if m.confirmDelete {
		if item, ok := m.selected(); ok {
			b.WriteString("\n")
			b.WriteString(overlayBoxStyle.Render("Delete \"" + item.Title() + "\"?\n\ny: yes    n: no"))
			b.WriteString("\n")
		}
	}

	writeStatus(&b, m.status, m.errMsg)

	if inbox := renderInbox(m.inbox.Messages()); inbox != "" {
		b.WriteString("\n")
		b.WriteString(inbox)
		b.WriteString("\n")
	}

	return renderPage(
		"VAULT",
		strings.TrimRight(b.String(), "\n"),
		"enter: open │ n: new │ e: edit │ d: delete │ r: reload │ g: generator │ x: clear alerts │ l: log out",
	)
}

func (m *VaultModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	vault := m.vault

	return func() tea.Msg {
		return vaultLoadedMsg{err: vault.Load(ctx)}
	}
}

func (m *VaultModel) cmdDelete(id string) tea.Cmd {
	ctx := m.ctx
	vault := m.vault

	return func() tea.Msg {
		return itemDeletedMsg{err: vault.Delete(ctx, id)}
	}
}

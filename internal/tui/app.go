// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-mypass/internal/app"
	"github.com/MKhiriev/go-mypass/internal/notifier"
	"github.com/MKhiriev/go-mypass/internal/service"
	"github.com/MKhiriev/go-mypass/models"
)

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global Ctrl+C quit
// 3) handles NavigateTo messages
// 4) resets the auto-lock countdown on every key and mouse event
// 5) owns the session lifecycle (start, logout, lock)
// 6) delegates all other messages to the active page
type RootModel struct {
	ctx      context.Context
	pages    map[string]tea.Model
	current  tea.Model
	page     string
	autoLock service.ClientAutoLock
	auth     service.ClientAuthService
	vault    service.ClientVaultService
	inbox    *notifier.Inbox

	// startMsg is delivered once the program runs.
	startMsg tea.Msg

	buildInfo     models.BuildInfo
	showBuildInfo bool
	quitByUser    bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(ctx context.Context, pages map[string]tea.Model, startPage string, services *service.ClientServices, inbox *notifier.Inbox, buildInfo models.BuildInfo) RootModel {
	return RootModel{
		ctx:       ctx,
		pages:     pages,
		current:   pages[startPage],
		page:      startPage,
		autoLock:  services.AutoLock,
		auth:      services.Auth,
		vault:     services.Vault,
		inbox:     inbox,
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	var cmds []tea.Cmd
	if r.current != nil {
		cmds = append(cmds, r.current.Init())
	}
	if r.startMsg != nil {
		start := r.startMsg
		cmds = append(cmds, func() tea.Msg { return start })
	}
	return tea.Batch(cmds...)
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		r.autoLock.Touch()
	case tea.KeyMsg:
		r.autoLock.Touch()

		switch msg.String() {
		case "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case "v":
			if r.page == pageMenu {
				r.showBuildInfo = !r.showBuildInfo
				return r, nil
			}
		case "esc":
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		}

		if r.showBuildInfo {
			return r, nil
		}

	case NavigateTo:
		next, exists := r.pages[msg.Page]
		if !exists {
			return r, nil
		}

		r.showBuildInfo = false
		r.current = next
		r.page = msg.Page

		if msg.Payload != nil {
			payload := msg.Payload
			return r, func() tea.Msg { return payload }
		}
		return r, r.current.Init()

	case sessionStartedMsg:
		r.autoLock.Start(r.ctx)

	case logoutRequestedMsg:
		r.autoLock.Stop()
		r.inbox.Clear()
		return r, r.cmdLogout()

	case lockedMsg:
		r.inbox.Clear()
		return r, navigate(pageLogin, statusNotice{text: app.MsgVaultLocked})

	case inboxUpdatedMsg:
		return r, tea.Tick(notifier.DefaultInboxTTL, func(time.Time) tea.Msg { return inboxExpiredMsg{} })
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	if r.current == nil {
		return renderPage("MYPASS", "", "")
	}
	return r.current.View()
}

func (r RootModel) cmdLogout() tea.Cmd {
	ctx := r.ctx
	auth := r.auth
	vault := r.vault

	return func() tea.Msg {
		vault.Reset()
		if err := auth.Logout(ctx); err != nil {
			return NavigateTo{Page: pageMenu, Payload: statusNotice{text: service.UserMessage(err), isErr: true}}
		}
		return NavigateTo{Page: pageMenu, Payload: statusNotice{text: app.MsgLoggedOut}}
	}
}

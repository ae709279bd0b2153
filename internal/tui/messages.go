// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-mypass/models"
)

// Page names known to [RootModel].
const (
	pageMenu      = "menu"
	pageLogin     = "login"
	pageRegister  = "register"
	pageRecovery  = "recovery"
	pageVault     = "vault"
	pageDetail    = "detail"
	pageForm      = "form"
	pageGenerator = "generator"
)

// NavigateTo switches the active page. A non-nil Payload is delivered to
// the new page instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

func navigate(page string, payload tea.Msg) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page, Payload: payload} }
}

// statusNotice carries a message to the page being opened.
type statusNotice struct {
	text  string
	isErr bool
}

// apply shows the notice in the status or error line of a page.
func (n statusNotice) apply(status, errMsg *string) {
	*status, *errMsg = "", ""
	if n.isErr {
		*errMsg = n.text
		return
	}
	*status = n.text
}

// sessionStartedMsg is sent to the vault page after a login or a restored
// session. RootModel arms the auto-lock when it sees it.
type sessionStartedMsg struct {
	identity models.Identity
}

type logoutRequestedMsg struct{}

// lockedMsg is sent from the auto-lock goroutine after the session was
// cleared.
type lockedMsg struct{}

// inboxUpdatedMsg is sent from the notifier when a new alert arrived.
type inboxUpdatedMsg struct{}

// inboxExpiredMsg forces a redraw once displayed alerts may have expired.
type inboxExpiredMsg struct{}

type loginResultMsg struct {
	identity models.Identity
	err      error
}

type registerResultMsg struct {
	message string
	err     error
}

type recoveryResultMsg struct {
	result models.RecoveryResult
}

type vaultShownMsg struct{}

type vaultLoadedMsg struct {
	err error
}

type itemDeletedMsg struct {
	err error
}

type itemSavedMsg struct {
	message string
	err     error
}

type openItemMsg struct {
	id string
}

type newItemMsg struct{}

type editItemMsg struct {
	id string
}

// openGeneratorMsg opens the generator; esc returns to back.
type openGeneratorMsg struct {
	back string
}

type clearStatusMsg struct{}

const statusTTL = 3 * time.Second

func clearStatusLater() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

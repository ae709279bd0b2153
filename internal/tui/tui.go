// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front end of mypass built on Bubble Tea.
//
// [RootModel] routes between pages and owns the session lifecycle: a
// login (or a session restored from client state) arms the auto-lock, and
// every key or mouse event resets its countdown. When the countdown fires,
// the lock callback sends a message into the running program and the user
// is returned to the login page. Vault alerts published on the notifier
// land in an [notifier.Inbox] that the vault page renders.
package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-mypass/internal/logger"
	"github.com/MKhiriev/go-mypass/internal/notifier"
	"github.com/MKhiriev/go-mypass/internal/service"
	"github.com/MKhiriev/go-mypass/models"
)

type TUI struct {
	services  *service.ClientServices
	buildInfo models.BuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.BuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errNoServices
	}
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}, nil
}

// Run blocks until the user quits. It returns [ErrUserQuit] after ctrl+c.
func (t *TUI) Run(ctx context.Context) error {
	inbox := notifier.NewInbox(notifier.DefaultInboxSize, notifier.DefaultInboxTTL)
	if err := t.services.Notifier.Subscribe(inbox); err != nil {
		return fmt.Errorf("error subscribing the inbox: %w", err)
	}
	defer t.services.Notifier.Unsubscribe(inbox)
	defer t.services.AutoLock.Stop()

	root := t.newRoot(ctx, inbox)
	p := tea.NewProgram(root, tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithContext(ctx))

	inbox.OnMessage(func() { go p.Send(inboxUpdatedMsg{}) })
	t.services.AutoLock.OnLock(func() {
		t.logger.Info().Msg("vault locked after inactivity")
		go p.Send(lockedMsg{})
	})
	finalModel, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}

	if result, ok := finalModel.(RootModel); ok && result.quitByUser {
		return ErrUserQuit
	}
	return nil
}

// newRoot builds the page set. When the session store still holds an
// identity, the vault opens directly and the session starts right away.
func (t *TUI) newRoot(ctx context.Context, inbox *notifier.Inbox) RootModel {
	s := t.services
	pages := map[string]tea.Model{
		pageMenu:      NewMenuModel(),
		pageLogin:     NewLoginModel(ctx, s.Auth),
		pageRegister:  NewRegisterModel(ctx, s.Auth),
		pageRecovery:  NewRecoveryModel(ctx, s.Recovery),
		pageVault:     NewVaultModel(ctx, s.Vault, inbox),
		pageDetail:    NewDetailModel(s.Vault),
		pageForm:      NewItemFormModel(ctx, s.Vault, s.Generator, s.PasswordSpec),
		pageGenerator: NewGeneratorModel(s.Generator, s.Clipboard, s.PasswordSpec),
	}

	if identity, ok := s.Session.Identity(ctx); ok {
		t.logger.Info().Str("user_id", identity.ID).Msg("session restored")
		root := NewRootModel(ctx, pages, pageVault, s, inbox, t.buildInfo)
		root.startMsg = sessionStartedMsg{identity: identity}
		return root
	}
	return NewRootModel(ctx, pages, pageMenu, s, inbox, t.buildInfo)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-mypass/internal/adapter"
	"github.com/MKhiriev/go-mypass/internal/config"
	"github.com/MKhiriev/go-mypass/internal/logger"
	"github.com/MKhiriev/go-mypass/internal/service"
	"github.com/MKhiriev/go-mypass/internal/store"
	"github.com/MKhiriev/go-mypass/internal/tui"
	"github.com/MKhiriev/go-mypass/models"
)

type App struct {
	storages *store.ClientStorages
	services *service.ClientServices
	ui       *tui.TUI
	logger   *logger.Logger
}

// NewApp opens the client state and wires services and UI. The caller must
// Run the app, which releases the state database on exit.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.BuildInfo, logger *logger.Logger) (*App, error) {
	if cfg == nil {
		return nil, ErrNoConfig
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage.State.DSN, logger)
	if err != nil {
		return nil, fmt.Errorf("create client storage: %w", err)
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, logger)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	services := service.NewClientServices(storages, serverAdapter, service.SystemClipboard{}, cfg, logger)

	ui, err := tui.New(services, buildInfo, logger)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create ui: %w", err)
	}

	return &App{storages: storages, services: services, ui: ui, logger: logger}, nil
}

// Run blocks until the user quits or ctx is cancelled. Quitting with
// ctrl+c is a normal exit.
func (a *App) Run(ctx context.Context) error {
	defer func() {
		if err := a.storages.Close(); err != nil {
			a.logger.Err(err).Msg("close client storage")
		}
	}()

	a.logger.Info().Msg("client started")
	err := a.ui.Run(ctx)
	if errors.Is(err, tui.ErrUserQuit) {
		a.logger.Info().Msg("client stopped by user")
		return nil
	}
	return err
}

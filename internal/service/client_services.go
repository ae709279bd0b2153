// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-mypass/internal/adapter"
	"github.com/MKhiriev/go-mypass/internal/config"
	"github.com/MKhiriev/go-mypass/internal/crypto"
	"github.com/MKhiriev/go-mypass/internal/logger"
	"github.com/MKhiriev/go-mypass/internal/notifier"
	"github.com/MKhiriev/go-mypass/internal/store"
	"github.com/MKhiriev/go-mypass/internal/validators"
	"github.com/MKhiriev/go-mypass/models"
)

// ClientServices is the set of services the TUI works with. Every service
// shares the one session created here.
type ClientServices struct {
	Session   ClientSessionService
	Auth      ClientAuthService
	Recovery  *RecoveryFlow
	Vault     ClientVaultService
	AutoLock  ClientAutoLock
	Generator crypto.PasswordGenerator
	Notifier  *notifier.Notifier
	Clipboard Clipboard

	// PasswordSpec is the generator default derived from configuration.
	PasswordSpec models.PasswordSpec
}

func NewClientServices(
	storages *store.ClientStorages,
	serverAdapter adapter.ServerAdapter,
	clipboard Clipboard,
	cfg *config.ClientConfig,
	logger *logger.Logger,
) *ClientServices {
	validator := validators.NewRequestValidator()
	bus := notifier.New()

	sessionSvc := NewClientSessionService(storages.State, logger)
	vaultSvc := NewClientVaultService(serverAdapter, sessionSvc, bus, clipboard, validator, logger)

	spec := models.DefaultPasswordSpec()
	if cfg.Generator.Length > 0 {
		spec.Length = cfg.Generator.Length
	}

	return &ClientServices{
		Session:      sessionSvc,
		Auth:         NewClientAuthService(serverAdapter, sessionSvc, validator, logger),
		Recovery:     NewRecoveryFlow(NewClientRecoveryService(serverAdapter, validator, logger)),
		Vault:        vaultSvc,
		AutoLock:     NewClientAutoLock(sessionSvc, vaultSvc, cfg.Session.AutoLockTimeout, logger),
		Generator:    crypto.NewPasswordGenerator(),
		Notifier:     bus,
		Clipboard:    clipboard,
		PasswordSpec: spec,
	}
}

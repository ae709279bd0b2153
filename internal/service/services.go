// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-mypass/internal/crypto"
	"github.com/MKhiriev/go-mypass/internal/logger"
	"github.com/MKhiriev/go-mypass/internal/store"
	"github.com/MKhiriev/go-mypass/internal/utils"
	"github.com/MKhiriev/go-mypass/models"
	"golang.org/x/crypto/bcrypt"
)

// Services is the set of services behind the reference server handlers.
type Services struct {
	AuthService     AuthService
	RecoveryService RecoveryService
	VaultService    VaultService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, buildInfo models.BuildInfo, logger *logger.Logger) (*Services, error) {
	hasher := crypto.NewBcryptHasher(bcrypt.DefaultCost)
	ids := utils.NewUUIDGenerator()

	appInfo, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("create app info service: %w", err)
	}

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, hasher, ids, logger),
		RecoveryService: NewRecoveryService(storages.UserRepository, hasher, logger),
		VaultService:    NewVaultValidationService().Wrap(NewVaultService(storages.VaultRepository, ids, logger)),
		AppInfoService:  appInfo,
	}, nil
}

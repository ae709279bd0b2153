// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-mypass/internal/validators"
	"github.com/MKhiriev/go-mypass/models"
)

// VaultServiceWrapper defines middleware composition for VaultService.
// Implementations wrap an existing VaultService to add behavior such as
// validation.
type VaultServiceWrapper interface {
	Wrap(VaultService) VaultService
}

// VaultValidationService checks every vault call as the matching
// VaultRequest before handing it to the wrapped service.
type VaultValidationService struct {
	inner     VaultService
	validator validators.Validator
}

func NewVaultValidationService() VaultServiceWrapper {
	return &VaultValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *VaultValidationService) Wrap(inner VaultService) VaultService {
	v.inner = inner
	return v
}

func (v *VaultValidationService) List(ctx context.Context, userID string) ([]models.VaultItem, error) {
	if err := v.check(ctx, models.VaultRequest{Action: models.VaultActionRead, UserID: userID}); err != nil {
		return nil, err
	}
	return v.inner.List(ctx, userID)
}

func (v *VaultValidationService) Create(ctx context.Context, userID string, itemType models.ItemType, fields models.Fields) (models.VaultItem, error) {
	req := models.VaultRequest{Action: models.VaultActionCreate, UserID: userID, Type: itemType, Data: fields}
	if err := v.check(ctx, req); err != nil {
		return models.VaultItem{}, err
	}
	return v.inner.Create(ctx, userID, itemType, fields)
}

func (v *VaultValidationService) Update(ctx context.Context, userID, id string, itemType models.ItemType, fields models.Fields) error {
	req := models.VaultRequest{Action: models.VaultActionUpdate, UserID: userID, ID: id, Type: itemType, Data: fields}
	if err := v.check(ctx, req); err != nil {
		return err
	}
	return v.inner.Update(ctx, userID, id, itemType, fields)
}

func (v *VaultValidationService) Delete(ctx context.Context, userID, id string) error {
	if err := v.check(ctx, models.VaultRequest{Action: models.VaultActionDelete, UserID: userID, ID: id}); err != nil {
		return err
	}
	return v.inner.Delete(ctx, userID, id)
}

func (v *VaultValidationService) check(ctx context.Context, req models.VaultRequest) error {
	if err := v.validator.Validate(ctx, req); err != nil {
		return asValidationError(err)
	}
	return nil
}

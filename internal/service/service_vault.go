// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-mypass/internal/logger"
	"github.com/MKhiriev/go-mypass/internal/store"
	"github.com/MKhiriev/go-mypass/models"
)

type vaultService struct {
	vaultRepository store.VaultRepository
	ids             IDGenerator
	logger          *logger.Logger
}

func NewVaultService(vaultRepository store.VaultRepository, ids IDGenerator, logger *logger.Logger) VaultService {
	return &vaultService{
		vaultRepository: vaultRepository,
		ids:             ids,
		logger:          logger,
	}
}

func (v *vaultService) List(ctx context.Context, userID string) ([]models.VaultItem, error) {
	items, err := v.vaultRepository.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

func (v *vaultService) Create(ctx context.Context, userID string, itemType models.ItemType, fields models.Fields) (models.VaultItem, error) {
	data, err := models.NormalizeFields(itemType, fields)
	if err != nil {
		return models.VaultItem{}, asValidationError(err)
	}

	item := models.VaultItem{
		ID:     v.ids.Generate(),
		Type:   itemType,
		Fields: data,
	}
	if err = v.vaultRepository.Create(ctx, userID, item); err != nil {
		return models.VaultItem{}, fmt.Errorf("create item: %w", err)
	}

	logger.FromContext(ctx).Debug().Str("user_id", userID).Str("item_id", item.ID).Msg("vault item created")
	return item, nil
}

func (v *vaultService) Update(ctx context.Context, userID, id string, itemType models.ItemType, fields models.Fields) error {
	data, err := models.NormalizeFields(itemType, fields)
	if err != nil {
		return asValidationError(err)
	}

	item := models.VaultItem{ID: id, Type: itemType, Fields: data}
	if err = v.vaultRepository.Update(ctx, userID, item); err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

func (v *vaultService) Delete(ctx context.Context, userID, id string) error {
	if err := v.vaultRepository.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-mypass/internal/adapter"
	"github.com/MKhiriev/go-mypass/internal/logger"
	"github.com/MKhiriev/go-mypass/internal/validators"
	"github.com/MKhiriev/go-mypass/models"
)

// MaskPlaceholder is rendered in place of a hidden sensitive value.
const MaskPlaceholder = "****"

type maskKey struct {
	itemID string
	field  string
}

type clientVaultService struct {
	adapter   adapter.ServerAdapter
	session   ClientSessionService
	publisher Publisher
	clipboard Clipboard
	validator validators.Validator
	logger    *logger.Logger
	now       func() time.Time

	// opMu serialises a mutation with the reload it triggers.
	opMu sync.Mutex

	mu         sync.RWMutex
	items      []models.VaultItem
	revealed   map[maskKey]bool
	loadSeq    uint64
	appliedSeq uint64
	generation uint64
}

// NewClientVaultService creates an empty vault bound to the session user.
// Issues found on every load are sent to publisher.
func NewClientVaultService(
	serverAdapter adapter.ServerAdapter,
	session ClientSessionService,
	publisher Publisher,
	clipboard Clipboard,
	validator validators.Validator,
	logger *logger.Logger,
) ClientVaultService {
	return &clientVaultService{
		adapter:   serverAdapter,
		session:   session,
		publisher: publisher,
		clipboard: clipboard,
		validator: validator,
		logger:    logger,
		now:       time.Now,
		revealed:  make(map[maskKey]bool),
	}
}

func (s *clientVaultService) Load(ctx context.Context) error {
	identity, ok := s.session.Identity(ctx)
	if !ok {
		return ErrNotAuthenticated
	}

	s.mu.Lock()
	s.loadSeq++
	seq, generation := s.loadSeq, s.generation
	s.mu.Unlock()

	resp, err := s.adapter.Vault(ctx, models.VaultRequest{
		Action: models.VaultActionRead,
		UserID: identity.ID,
	})
	if err = checkResponse(resp, err); err != nil {
		s.logger.Err(err).Str("user_id", identity.ID).Msg("failed to load vault")
		return fmt.Errorf("load vault: %w", err)
	}

	items := s.normalise(resp.Items)

	s.mu.Lock()
	if generation != s.generation {
		s.mu.Unlock()
		s.logger.Debug().Uint64("seq", seq).Msg("vault load discarded after reset")
		return ErrNotAuthenticated
	}
	if seq < s.appliedSeq {
		s.mu.Unlock()
		s.logger.Debug().Uint64("seq", seq).Uint64("applied", s.appliedSeq).Msg("stale vault load discarded")
		return nil
	}
	s.items = items
	s.appliedSeq = seq
	s.pruneMasks()
	s.mu.Unlock()

	for _, issue := range detectIssues(items, s.now()) {
		s.publisher.Notify(issue)
	}
	return nil
}

func (s *clientVaultService) Create(ctx context.Context, itemType models.ItemType, fields models.Fields) error {
	return s.mutate(ctx, models.VaultRequest{
		Action: models.VaultActionCreate,
		Type:   itemType,
		Data:   fields,
	})
}

func (s *clientVaultService) Update(ctx context.Context, id string, itemType models.ItemType, fields models.Fields) error {
	return s.mutate(ctx, models.VaultRequest{
		Action: models.VaultActionUpdate,
		ID:     id,
		Type:   itemType,
		Data:   fields,
	})
}

func (s *clientVaultService) Delete(ctx context.Context, id string) error {
	return s.mutate(ctx, models.VaultRequest{
		Action: models.VaultActionDelete,
		ID:     id,
	})
}

// mutate validates and sends req for the session user, then resyncs.
func (s *clientVaultService) mutate(ctx context.Context, req models.VaultRequest) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	identity, ok := s.session.Identity(ctx)
	if !ok {
		return ErrNotAuthenticated
	}
	req.UserID = identity.ID

	if req.Action != models.VaultActionDelete {
		data, err := models.NormalizeFields(req.Type, req.Data)
		if err != nil {
			return asValidationError(err)
		}
		req.Data = data
	}
	if err := s.validator.Validate(ctx, req); err != nil {
		return asValidationError(err)
	}

	resp, err := s.adapter.Vault(ctx, req)
	if err = checkResponse(resp, err); err != nil {
		s.logger.Err(err).Str("action", req.Action).Str("item_id", req.ID).Msg("vault mutation failed")
		return fmt.Errorf("%s item: %w", req.Action, err)
	}

	return s.Load(ctx)
}

func (s *clientVaultService) Items() []models.VaultItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.VaultItem, len(s.items))
	for i, item := range s.items {
		out[i] = item.Clone()
	}
	return out
}

func (s *clientVaultService) Item(id string) (models.VaultItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.find(id)
	if !ok {
		return models.VaultItem{}, false
	}
	return item.Clone(), true
}

func (s *clientVaultService) ToggleMask(itemID, field string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, err := s.lookupField(itemID, field)
	if err != nil {
		return false, err
	}
	if !item.Type.IsSensitive(field) {
		return false, fmt.Errorf("%w: %q", ErrFieldNotSensitive, field)
	}

	key := maskKey{itemID: itemID, field: field}
	revealed := !s.revealed[key]
	if revealed {
		s.revealed[key] = true
	} else {
		delete(s.revealed, key)
	}
	return revealed, nil
}

func (s *clientVaultService) IsRevealed(itemID, field string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revealed[maskKey{itemID: itemID, field: field}]
}

func (s *clientVaultService) DisplayValue(itemID, field string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.find(itemID)
	if !ok {
		return ""
	}
	if item.Type.IsSensitive(field) && !s.revealed[maskKey{itemID: itemID, field: field}] {
		return MaskPlaceholder
	}
	return item.Fields[field]
}

func (s *clientVaultService) CopyField(itemID, field string) (string, error) {
	s.mu.RLock()
	item, err := s.lookupField(itemID, field)
	s.mu.RUnlock()
	if err != nil {
		return "", err
	}

	value := item.Fields[field]
	if err = s.clipboard.WriteAll(value); err != nil {
		return "", fmt.Errorf("%w: %w", ErrClipboard, err)
	}
	return value, nil
}

func (s *clientVaultService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.revealed = make(map[maskKey]bool)
	s.generation++
}

// find returns the item with id. Callers hold mu.
func (s *clientVaultService) find(id string) (models.VaultItem, bool) {
	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return models.VaultItem{}, false
}

// lookupField resolves an item and checks field against its schema.
// Callers hold mu.
func (s *clientVaultService) lookupField(itemID, field string) (models.VaultItem, error) {
	item, ok := s.find(itemID)
	if !ok {
		return models.VaultItem{}, fmt.Errorf("%w: %q", ErrItemNotFound, itemID)
	}
	if !item.Type.HasField(field) {
		return models.VaultItem{}, fmt.Errorf("%w: %q for type %s", ErrUnknownField, field, item.Type)
	}
	return item, nil
}

// pruneMasks drops reveal state of items that are gone. Callers hold mu.
func (s *clientVaultService) pruneMasks() {
	for key := range s.revealed {
		if _, ok := s.find(key.itemID); !ok {
			delete(s.revealed, key)
		}
	}
}

// normalise keeps items of known types, fills in every schema field and
// sorts them by type and then ID.
func (s *clientVaultService) normalise(items []models.VaultItem) []models.VaultItem {
	out := make([]models.VaultItem, 0, len(items))
	for _, item := range items {
		if !item.Type.Valid() {
			s.logger.Warn().Str("item_id", item.ID).Str("type", string(item.Type)).Msg("skipping vault item of unsupported type")
			continue
		}

		fields := make(models.Fields, len(item.Type.Schema()))
		for _, f := range item.Type.Schema() {
			fields[f.Name] = item.Fields[f.Name]
		}
		item.Fields = fields
		out = append(out, item)
	}

	slices.SortStableFunc(out, func(a, b models.VaultItem) int {
		return cmp.Or(
			cmp.Compare(slices.Index(models.ItemTypes, a.Type), slices.Index(models.ItemTypes, b.Type)),
			cmp.Compare(a.ID, b.ID),
		)
	})
	return out
}

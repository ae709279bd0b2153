// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-mypass/internal/logger"
	"github.com/MKhiriev/go-mypass/internal/store"
	"github.com/MKhiriev/go-mypass/models"
)

// SessionStateKey is the client state key holding the identity JSON.
const SessionStateKey = "user"

type clientSessionService struct {
	state  store.StateRepository
	logger *logger.Logger

	mu       sync.Mutex
	identity *models.Identity
}

// NewClientSessionService creates the session holder over the durable client
// state. One instance is shared by every client service.
func NewClientSessionService(state store.StateRepository, logger *logger.Logger) ClientSessionService {
	return &clientSessionService{state: state, logger: logger}
}

func (s *clientSessionService) SetIdentity(ctx context.Context, identity models.Identity) error {
	raw, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("encode identity: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err = s.state.Put(ctx, SessionStateKey, string(raw)); err != nil {
		return fmt.Errorf("persist identity: %w", err)
	}

	s.identity = &identity
	return nil
}

func (s *clientSessionService) Identity(ctx context.Context) (models.Identity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.identity != nil {
		return *s.identity, true
	}

	raw, err := s.state.Get(ctx, SessionStateKey)
	if err != nil {
		if !errors.Is(err, store.ErrStateNotFound) {
			s.logger.Err(err).Msg("failed to read stored session")
		}
		return models.Identity{}, false
	}

	var identity models.Identity
	if err = json.Unmarshal([]byte(raw), &identity); err != nil || identity.IsZero() {
		s.logger.Warn().Err(err).Msg("stored session is corrupt, ignoring it")
		return models.Identity{}, false
	}

	s.identity = &identity
	return identity, true
}

func (s *clientSessionService) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.identity = nil
	if err := s.state.Delete(ctx, SessionStateKey); err != nil {
		return fmt.Errorf("clear stored session: %w", err)
	}
	return nil
}

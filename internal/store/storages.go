// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-mypass/internal/logger"
	"github.com/MKhiriev/go-mypass/migrations"
)

// ClientStorages groups the client-side repositories.
type ClientStorages struct {
	State StateRepository

	db *DB
}

// NewClientStorages opens the SQLite state file at dsn, applies the client
// migrations and wires the repositories.
func NewClientStorages(ctx context.Context, dsn string, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating client storages...")

	db, err := NewConnectSQLite(ctx, dsn, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(migrations.Client); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		State: NewStateRepository(db, logger),
		db:    db,
	}, nil
}

// Close releases the database handle.
func (s *ClientStorages) Close() error {
	return s.db.Close()
}

// Storages groups the server-side repositories.
type Storages struct {
	UserRepository  UserRepository
	VaultRepository VaultRepository

	db *DB
}

// NewStorages connects to the server database named by dsn, applies the
// server migrations and wires the repositories.
func NewStorages(ctx context.Context, dsn string, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnect(ctx, dsn, logger)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err = db.Migrate(migrations.Server); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		UserRepository:  NewUserRepository(db, logger),
		VaultRepository: NewVaultRepository(db, logger),
		db:              db,
	}, nil
}

// Close releases the database handle.
func (s *Storages) Close() error {
	return s.db.Close()
}

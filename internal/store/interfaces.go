// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store holds the SQL repositories of mypass: the durable client
// state used by the session, and the user and vault tables of the
// reference server. Both run on database/sql over SQLite (go-sqlite3) or
// PostgreSQL (pgx), with queries built by squirrel.
package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-mypass/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// StateRepository is a small durable key/value store on the client.
type StateRepository interface {
	// Get returns the value stored under key or ErrStateNotFound.
	Get(ctx context.Context, key string) (string, error)
	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key, value string) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// UserRepository persists accounts and their security questions.
type UserRepository interface {
	// CreateUser inserts user and its questions in one transaction.
	// Returns ErrEmailAlreadyExists for a duplicate email.
	CreateUser(ctx context.Context, user models.User, questions []models.SecurityQuestion) (models.User, error)
	// FindUserByEmail returns the user or ErrNoUserWasFound.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	// Questions returns the user's security questions ordered by position.
	Questions(ctx context.Context, userID string) ([]models.SecurityQuestion, error)
	// SetRecoveryVerifiedAt records (or, with nil, clears) the time the
	// user last answered their questions correctly.
	SetRecoveryVerifiedAt(ctx context.Context, userID string, at *time.Time) error
	// UpdatePassword replaces the password hash and clears the recovery
	// grant.
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
}

// VaultRepository persists vault items per user.
type VaultRepository interface {
	// List returns every item owned by userID.
	List(ctx context.Context, userID string) ([]models.VaultItem, error)
	// Create inserts item for userID.
	Create(ctx context.Context, userID string, item models.VaultItem) error
	// Update replaces type and fields of an item owned by userID or returns
	// ErrItemNotFound.
	Update(ctx context.Context, userID string, item models.VaultItem) error
	// Delete removes an item owned by userID or returns ErrItemNotFound.
	Delete(ctx context.Context, userID, itemID string) error
}

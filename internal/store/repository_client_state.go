// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-mypass/internal/logger"
)

const clientStateTable = "client_state"

type stateRepository struct {
	db  *DB
	now func() time.Time
}

// NewStateRepository constructs a [StateRepository] on db.
func NewStateRepository(db *DB, logger *logger.Logger) StateRepository {
	logger.Debug().Msg("creating client state repository")
	return &stateRepository{db: db, now: time.Now}
}

func (r *stateRepository) Get(ctx context.Context, key string) (string, error) {
	query, args, err := r.db.builder().
		Select("value").
		From(clientStateTable).
		Where("key = ?", key).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("build query: %w", err)
	}

	var value string
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrStateNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*stateRepository.Get").Str("key", key).Msg("error reading state")
		return "", r.db.wrapDBError(err, nil)
	}

	return value, nil
}

func (r *stateRepository) Put(ctx context.Context, key, value string) error {
	query, args, err := r.db.builder().
		Insert(clientStateTable).
		Columns("key", "value", "updated_at").
		Values(key, value, r.now().UTC()).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*stateRepository.Put").Str("key", key).Msg("error writing state")
		return r.db.wrapDBError(err, nil)
	}

	return nil
}

func (r *stateRepository) Delete(ctx context.Context, key string) error {
	query, args, err := r.db.builder().
		Delete(clientStateTable).
		Where("key = ?", key).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*stateRepository.Delete").Str("key", key).Msg("error deleting state")
		return r.db.wrapDBError(err, nil)
	}

	return nil
}

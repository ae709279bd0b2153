// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-mypass/internal/logger"
	"github.com/MKhiriev/go-mypass/models"
)

// vaultRepository stores item fields as a JSON document in vault_items.data.
type vaultRepository struct {
	logger *logger.Logger
	db     *DB
	now    func() time.Time
}

// NewVaultRepository constructs a [VaultRepository] backed by db.
func NewVaultRepository(db *DB, logger *logger.Logger) VaultRepository {
	logger.Debug().Msg("creating vault repository")
	return &vaultRepository{db: db, logger: logger, now: time.Now}
}

func (r *vaultRepository) List(ctx context.Context, userID string) ([]models.VaultItem, error) {
	query, args, err := r.db.builder().
		Select("item_id", "item_type", "data", "created_at", "updated_at").
		From("vault_items").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at", "item_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*vaultRepository.List").Msg("error querying items")
		return nil, r.db.wrapDBError(err, nil)
	}
	defer rows.Close()

	items := make([]models.VaultItem, 0)
	for rows.Next() {
		var (
			item models.VaultItem
			data string
		)
		if err = rows.Scan(&item.ID, &item.Type, &data, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		if err = json.Unmarshal([]byte(data), &item.Fields); err != nil {
			return nil, fmt.Errorf("decode item %s data: %w", item.ID, err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (r *vaultRepository) Create(ctx context.Context, userID string, item models.VaultItem) error {
	data, err := json.Marshal(item.Fields)
	if err != nil {
		return fmt.Errorf("encode item data: %w", err)
	}

	now := r.now().UTC()
	query, args, err := r.db.builder().
		Insert("vault_items").
		Columns("item_id", "user_id", "item_type", "data", "created_at", "updated_at").
		Values(item.ID, userID, string(item.Type), string(data), now, now).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*vaultRepository.Create").Msg("error inserting item")
		return r.db.wrapDBError(err, nil)
	}

	return nil
}

func (r *vaultRepository) Update(ctx context.Context, userID string, item models.VaultItem) error {
	data, err := json.Marshal(item.Fields)
	if err != nil {
		return fmt.Errorf("encode item data: %w", err)
	}

	query, args, err := r.db.builder().
		Update("vault_items").
		Set("item_type", string(item.Type)).
		Set("data", string(data)).
		Set("updated_at", r.now().UTC()).
		Where(sq.Eq{"item_id": item.ID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	return r.execAffectingOne(ctx, "Update", query, args)
}

func (r *vaultRepository) Delete(ctx context.Context, userID, itemID string) error {
	query, args, err := r.db.builder().
		Delete("vault_items").
		Where(sq.Eq{"item_id": itemID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	return r.execAffectingOne(ctx, "Delete", query, args)
}

func (r *vaultRepository) execAffectingOne(ctx context.Context, op, query string, args []any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*vaultRepository."+op).Msg("error executing statement")
		return r.db.wrapDBError(err, nil)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ErrItemNotFound
	}

	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-mypass/internal/logger"
	"github.com/MKhiriev/go-mypass/models"
)

var userColumns = []string{"user_id", "email", "password_hash", "recovery_verified_at", "created_at"}

// userRepository is the SQL implementation of [UserRepository] over the
// "users" and "security_questions" tables.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts the user row and all security questions in a single
// transaction.
//
// Error handling:
//   - unique violation on email → [ErrEmailAlreadyExists].
//   - transient driver errors → wrapped [ErrStorageUnavailable].
//   - anything else → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User, questions []models.SecurityQuestion) (models.User, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error beginning transaction")
		return models.User{}, r.db.wrapDBError(err, nil)
	}
	defer func() { _ = tx.Rollback() }()

	query, args, err := r.db.builder().
		Insert("users").
		Columns(userColumns...).
		Values(user.UserID, user.Email, user.PasswordHash, user.RecoveryVerifiedAt, user.CreatedAt).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("build query: %w", err)
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, r.db.wrapDBError(err, ErrEmailAlreadyExists)
	}

	if len(questions) > 0 {
		insert := r.db.builder().
			Insert("security_questions").
			Columns("user_id", "position", "question", "answer_hash")
		for _, q := range questions {
			insert = insert.Values(user.UserID, q.Position, q.Question, q.AnswerHash)
		}

		query, args, err = insert.ToSql()
		if err != nil {
			return models.User{}, fmt.Errorf("build query: %w", err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting security questions")
			return models.User{}, r.db.wrapDBError(err, nil)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error committing transaction")
		return models.User{}, r.db.wrapDBError(err, nil)
	}

	return user, nil
}

// FindUserByEmail retrieves the user whose email matches exactly.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	query, args, err := r.db.builder().
		Select(userColumns...).
		From("users").
		Where(sq.Eq{"email": email}).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("build query: %w", err)
	}

	var (
		user       models.User
		verifiedAt sql.NullTime
	)
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&user.UserID, &user.Email, &user.PasswordHash, &verifiedAt, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error scanning user")
		return models.User{}, r.db.wrapDBError(err, nil)
	}

	if verifiedAt.Valid {
		user.RecoveryVerifiedAt = &verifiedAt.Time
	}

	return user, nil
}

// Questions returns the security questions of userID ordered by position.
func (r *userRepository) Questions(ctx context.Context, userID string) ([]models.SecurityQuestion, error) {
	query, args, err := r.db.builder().
		Select("user_id", "position", "question", "answer_hash").
		From("security_questions").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.Questions").Msg("error querying questions")
		return nil, r.db.wrapDBError(err, nil)
	}
	defer rows.Close()

	var questions []models.SecurityQuestion
	for rows.Next() {
		var q models.SecurityQuestion
		if err = rows.Scan(&q.UserID, &q.Position, &q.Question, &q.AnswerHash); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		questions = append(questions, q)
	}

	return questions, rows.Err()
}

// SetRecoveryVerifiedAt updates the recovery grant timestamp.
func (r *userRepository) SetRecoveryVerifiedAt(ctx context.Context, userID string, at *time.Time) error {
	return r.update(ctx, "SetRecoveryVerifiedAt", userID, map[string]any{"recovery_verified_at": at})
}

// UpdatePassword stores a new password hash and consumes the recovery
// grant.
func (r *userRepository) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	return r.update(ctx, "UpdatePassword", userID, map[string]any{
		"password_hash":        passwordHash,
		"recovery_verified_at": nil,
	})
}

func (r *userRepository) update(ctx context.Context, op, userID string, set map[string]any) error {
	query, args, err := r.db.builder().
		Update("users").
		SetMap(set).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository."+op).Msg("error updating user")
		return r.db.wrapDBError(err, nil)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

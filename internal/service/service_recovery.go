// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-mypass/internal/app"
	"github.com/MKhiriev/go-mypass/internal/crypto"
	"github.com/MKhiriev/go-mypass/internal/logger"
	"github.com/MKhiriev/go-mypass/internal/store"
	"github.com/MKhiriev/go-mypass/internal/validators"
)

// RecoveryGrantTTL is how long a successful answer check allows a
// password reset.
const RecoveryGrantTTL = 10 * time.Minute

type recoveryService struct {
	userRepository store.UserRepository
	hasher         crypto.SecretHasher
	now            func() time.Time
	logger         *logger.Logger
}

func NewRecoveryService(userRepository store.UserRepository, hasher crypto.SecretHasher, logger *logger.Logger) RecoveryService {
	return &recoveryService{
		userRepository: userRepository,
		hasher:         hasher,
		now:            time.Now,
		logger:         logger,
	}
}

func (r *recoveryService) Questions(ctx context.Context, email string) ([]string, error) {
	if err := requireEmail(email); err != nil {
		return nil, err
	}

	user, err := r.userRepository.FindUserByEmail(ctx, normaliseEmail(email))
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	questions, err := r.userRepository.Questions(ctx, user.UserID)
	if err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}

	out := make([]string, len(questions))
	for i, q := range questions {
		out[i] = q.Question
	}
	return out, nil
}

// VerifyAnswers compares every answer with its stored hash. All must match.
func (r *recoveryService) VerifyAnswers(ctx context.Context, email string, answers []string) error {
	log := logger.FromContext(ctx)

	if err := requireEmail(email); err != nil {
		return err
	}

	user, err := r.userRepository.FindUserByEmail(ctx, normaliseEmail(email))
	if err != nil {
		return fmt.Errorf("find user: %w", err)
	}

	questions, err := r.userRepository.Questions(ctx, user.UserID)
	if err != nil {
		return fmt.Errorf("load questions: %w", err)
	}
	if len(questions) == 0 || len(questions) != len(answers) {
		return ErrWrongAnswers
	}

	for i, q := range questions {
		ok, err := r.hasher.Compare(q.AnswerHash, normaliseAnswer(answers[i]))
		if err != nil {
			return fmt.Errorf("compare answer %d: %w", q.Position, err)
		}
		if !ok {
			log.Info().Str("user_id", user.UserID).Int("position", q.Position).Msg("wrong security answer")
			return ErrWrongAnswers
		}
	}

	verifiedAt := r.now().UTC()
	if err = r.userRepository.SetRecoveryVerifiedAt(ctx, user.UserID, &verifiedAt); err != nil {
		return fmt.Errorf("store recovery grant: %w", err)
	}
	return nil
}

func (r *recoveryService) ResetPassword(ctx context.Context, email, newPassword string) error {
	if err := requireEmail(email); err != nil {
		return err
	}
	if err := checkStrength(newPassword); err != nil {
		return err
	}

	user, err := r.userRepository.FindUserByEmail(ctx, normaliseEmail(email))
	if err != nil {
		return fmt.Errorf("find user: %w", err)
	}

	if user.RecoveryVerifiedAt == nil || r.now().Sub(*user.RecoveryVerifiedAt) > RecoveryGrantTTL {
		return ErrRecoveryNotVerified
	}

	hash, err := r.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err = r.userRepository.UpdatePassword(ctx, user.UserID, hash); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	logger.FromContext(ctx).Info().Str("user_id", user.UserID).Msg("password reset through recovery")
	return nil
}

func requireEmail(email string) error {
	if normaliseEmail(email) == "" {
		return newValidationError(app.MsgEmailRequired, validators.ErrEmptyEmail)
	}
	return nil
}

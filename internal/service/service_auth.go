// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-mypass/internal/crypto"
	"github.com/MKhiriev/go-mypass/internal/logger"
	"github.com/MKhiriev/go-mypass/internal/store"
	"github.com/MKhiriev/go-mypass/internal/validators"
	"github.com/MKhiriev/go-mypass/models"
)

// IDGenerator issues opaque identifiers for users and vault items.
type IDGenerator interface {
	Generate() string
}

// authService is the concrete implementation of AuthService.
// Passwords and security answers are stored as bcrypt hashes only.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher hashes passwords and normalised security answers.
	hasher crypto.SecretHasher

	validator validators.Validator
	ids       IDGenerator
	now       func() time.Time

	// logger is the structured logger used for diagnostic output outside a
	// request scope.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService over userRepository.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.SecretHasher, ids IDGenerator, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		validator:      validators.NewRequestValidator(),
		ids:            ids,
		now:            time.Now,
		logger:         logger,
	}
}

// Register creates a new user account.
//
// Returns the persisted user or:
//   - a ValidationError when the email, password strength, confirmation,
//     questions or answers fail the local checks;
//   - a wrapped store.ErrEmailAlreadyExists when the email is taken.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	req.Email = normaliseEmail(req.Email)
	req.SecurityQuestions = trimAll(req.SecurityQuestions)
	req.SecurityAnswers = trimAll(req.SecurityAnswers)

	if err := validateRegistration(ctx, a.validator, req); err != nil {
		log.Warn().Err(err).Str("email", req.Email).Msg("registration rejected")
		return models.User{}, err
	}

	passwordHash, err := a.hasher.Hash(req.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		UserID:       a.ids.Generate(),
		Email:        req.Email,
		PasswordHash: passwordHash,
		CreatedAt:    a.now().UTC(),
	}

	questions := make([]models.SecurityQuestion, len(req.SecurityQuestions))
	for i, question := range req.SecurityQuestions {
		answerHash, err := a.hasher.Hash(normaliseAnswer(req.SecurityAnswers[i]))
		if err != nil {
			return models.User{}, fmt.Errorf("hash security answer: %w", err)
		}
		questions[i] = models.SecurityQuestion{
			UserID:     user.UserID,
			Position:   i + 1,
			Question:   question,
			AnswerHash: answerHash,
		}
	}

	registered, err := a.userRepository.CreateUser(ctx, user, questions)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registered, nil
}

// Login authenticates an existing user.
//
// An unknown email and a wrong password both yield ErrWrongPassword so the
// response does not reveal which accounts exist.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	req.Email = normaliseEmail(req.Email)
	if err := a.validator.Validate(ctx, req); err != nil {
		return models.User{}, asValidationError(err)
	}

	user, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Info().Str("email", req.Email).Msg("login for unknown email")
		return models.User{}, ErrWrongPassword
	}
	if err != nil {
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	ok, err := a.hasher.Compare(user.PasswordHash, req.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("compare password: %w", err)
	}
	if !ok {
		log.Info().Str("user_id", user.UserID).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return user, nil
}

func normaliseEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// normaliseAnswer makes answer comparison insensitive to case and
// surrounding whitespace.
func normaliseAnswer(answer string) string {
	return strings.ToLower(strings.TrimSpace(answer))
}

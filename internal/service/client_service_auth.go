// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-mypass/internal/adapter"
	"github.com/MKhiriev/go-mypass/internal/app"
	"github.com/MKhiriev/go-mypass/internal/logger"
	"github.com/MKhiriev/go-mypass/internal/validators"
	"github.com/MKhiriev/go-mypass/models"
)

type clientAuthService struct {
	adapter   adapter.ServerAdapter
	session   ClientSessionService
	validator validators.Validator
	logger    *logger.Logger
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter, session ClientSessionService, validator validators.Validator, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		adapter:   serverAdapter,
		session:   session,
		validator: validator,
		logger:    logger,
	}
}

func (a *clientAuthService) Login(ctx context.Context, email, password string) (models.Identity, error) {
	req := models.LoginRequest{Email: strings.TrimSpace(email), Password: password}
	if err := a.validator.Validate(ctx, req); err != nil {
		return models.Identity{}, asValidationError(err)
	}

	resp, err := a.adapter.Login(ctx, req)
	if err = checkResponse(resp, err); err != nil {
		a.logger.Err(err).Str("email", req.Email).Msg("login failed")
		return models.Identity{}, fmt.Errorf("login: %w", err)
	}
	if resp.User == nil || resp.User.IsZero() {
		return models.Identity{}, fmt.Errorf("%w: login response carries no user", ErrTransport)
	}

	if err = a.session.SetIdentity(ctx, *resp.User); err != nil {
		return models.Identity{}, fmt.Errorf("login: %w", err)
	}

	a.logger.Info().Str("user_id", resp.User.ID).Msg("logged in")
	return *resp.User, nil
}

func (a *clientAuthService) Register(ctx context.Context, req models.RegisterRequest) (string, error) {
	req.Email = strings.TrimSpace(req.Email)
	req.SecurityQuestions = trimAll(req.SecurityQuestions)
	req.SecurityAnswers = trimAll(req.SecurityAnswers)

	if err := validateRegistration(ctx, a.validator, req); err != nil {
		return "", err
	}

	resp, err := a.adapter.Register(ctx, req)
	if err = checkResponse(resp, err); err != nil {
		a.logger.Err(err).Str("email", req.Email).Msg("registration failed")
		return "", fmt.Errorf("register: %w", err)
	}

	if resp.Message == "" {
		return app.MsgRegistered, nil
	}
	return resp.Message, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	if err := a.session.Clear(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

func trimAll(values []string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.TrimSpace(v)
	}
	return out
}

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

// recoveryHandler is one stage of the chain, claimed by its action tag.
type recoveryHandler struct {
	action string
	handle func(ctx context.Context, req models.RecoveryRequest) models.RecoveryResult
}

type clientRecoveryService struct {
	adapter   adapter.ServerAdapter
	validator validators.Validator
	logger    *logger.Logger

	handlers []recoveryHandler
}

// NewClientRecoveryService builds the recovery chain: validate_email,
// validate_answers and update_password, in that order.
func NewClientRecoveryService(serverAdapter adapter.ServerAdapter, validator validators.Validator, logger *logger.Logger) ClientRecoveryService {
	s := &clientRecoveryService{
		adapter:   serverAdapter,
		validator: validator,
		logger:    logger,
	}
	s.handlers = []recoveryHandler{
		{action: models.RecoveryActionValidateEmail, handle: s.validateEmail},
		{action: models.RecoveryActionValidateAnswers, handle: s.validateAnswers},
		{action: models.RecoveryActionUpdatePassword, handle: s.updatePassword},
	}
	return s
}

func (s *clientRecoveryService) Handle(ctx context.Context, req models.RecoveryRequest) models.RecoveryResult {
	for _, h := range s.handlers {
		if h.action == req.Action {
			return h.handle(ctx, req)
		}
	}

	s.logger.Warn().Str("action", req.Action).Msg("recovery request matched no handler")
	return models.RecoveryResult{
		Status:  models.RecoveryUnhandled,
		Message: fmt.Sprintf("no handler for recovery action %q", req.Action),
	}
}

func (s *clientRecoveryService) validateEmail(ctx context.Context, req models.RecoveryRequest) models.RecoveryResult {
	req.Email = strings.TrimSpace(req.Email)
	if err := s.validator.Validate(ctx, req, validators.FieldEmail); err != nil {
		return invalidRecovery(err)
	}

	return s.dispatch(ctx, models.RecoveryRequest{
		Action: req.Action,
		Email:  req.Email,
	})
}

func (s *clientRecoveryService) validateAnswers(ctx context.Context, req models.RecoveryRequest) models.RecoveryResult {
	req.Email = strings.TrimSpace(req.Email)
	answers := make([]string, len(req.Answers))
	for i, a := range req.Answers {
		answers[i] = strings.TrimSpace(a)
	}
	req.Answers = answers

	if err := s.validator.Validate(ctx, req, validators.FieldEmail, validators.FieldAnswers); err != nil {
		return invalidRecovery(err)
	}

	return s.dispatch(ctx, models.RecoveryRequest{
		Action:  req.Action,
		Email:   req.Email,
		Answers: req.Answers,
	})
}

func (s *clientRecoveryService) updatePassword(ctx context.Context, req models.RecoveryRequest) models.RecoveryResult {
	req.Email = strings.TrimSpace(req.Email)
	if err := s.validator.Validate(ctx, req, validators.FieldEmail); err != nil {
		return invalidRecovery(err)
	}

	if err := checkStrength(req.NewPassword); err != nil {
		return models.RecoveryResult{Status: models.RecoveryInvalid, Message: UserMessage(err)}
	}
	if req.NewPassword != req.ConfirmPassword {
		return models.RecoveryResult{Status: models.RecoveryInvalid, Message: app.MsgPasswordsDoNotMatch}
	}

	result := s.dispatch(ctx, models.RecoveryRequest{
		Action:      req.Action,
		Email:       req.Email,
		NewPassword: req.NewPassword,
	})
	if result.OK() {
		result.Message = app.MsgPasswordUpdated
	}
	return result
}

// dispatch sends one stage and folds the answer into a result.
func (s *clientRecoveryService) dispatch(ctx context.Context, req models.RecoveryRequest) models.RecoveryResult {
	resp, err := s.adapter.Recover(ctx, req)
	if err != nil {
		s.logger.Err(err).Str("action", req.Action).Msg("recovery request failed")
		return models.RecoveryResult{Status: models.RecoveryTransportFailed, Message: app.MsgTransportFailure}
	}

	if !resp.Success {
		msg := resp.Message
		if msg == "" {
			msg = app.MsgRequestRejected
		}
		return models.RecoveryResult{Status: models.RecoveryRejected, Message: msg}
	}

	return models.RecoveryResult{
		Status:    models.RecoverySucceeded,
		Message:   resp.Message,
		Questions: resp.Questions,
	}
}

func invalidRecovery(err error) models.RecoveryResult {
	return models.RecoveryResult{Status: models.RecoveryInvalid, Message: UserMessage(asValidationError(err))}
}

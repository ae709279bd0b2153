// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-mypass/models"
)

// Field name constants accepted by [RequestValidator.Validate] to restrict
// validation to a subset of checks.
const (
	FieldAction   = "action"
	FieldUserID   = "user_id"
	FieldItemID   = "id"
	FieldItemType = "type"
	FieldItemData = "data"

	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldPasswordConfirm = "confirm_password"
	FieldQuestions       = "questions"
	FieldAnswers         = "answers"
	FieldNewPassword     = "new_password"
)

// RequestValidator validates the request envelopes of every endpoint:
// LoginRequest, RegisterRequest, RecoveryRequest and VaultRequest. Both
// value and pointer forms are accepted.
type RequestValidator struct{}

// NewRequestValidator returns a RequestValidator as a Validator.
func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate dispatches on the dynamic type of obj. Without fields the
// default set for that type (and, for vault and recovery requests, its
// action) is checked. Returns ErrUnsupportedType for unknown types.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)

	case models.RegisterRequest:
		return v.validateRegister(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegister(*value, fields...)

	case models.RecoveryRequest:
		return v.validateRecovery(value, fields...)
	case *models.RecoveryRequest:
		return v.validateRecovery(*value, fields...)

	case models.VaultRequest:
		return v.validateVault(value, fields...)
	case *models.VaultRequest:
		return v.validateVault(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateLogin(req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if strings.TrimSpace(req.Email) == "" {
				return ErrEmptyEmail
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateRegister(req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword, FieldPasswordConfirm, FieldQuestions, FieldAnswers}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if strings.TrimSpace(req.Email) == "" {
				return ErrEmptyEmail
			}
		case FieldPassword:
			if verdict := EvaluateStrength(req.Password); !verdict.Strong {
				return fmt.Errorf("%w: %s", ErrWeakPassword, verdict.Message)
			}
		case FieldPasswordConfirm:
			if req.Password != req.ConfirmPassword {
				return ErrPasswordMismatch
			}
		case FieldQuestions:
			if !completeSet(req.SecurityQuestions) {
				return ErrInvalidQuestions
			}
		case FieldAnswers:
			if !completeSet(req.SecurityAnswers) {
				return ErrInvalidAnswers
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateRecovery(req models.RecoveryRequest, fields ...string) error {
	if len(fields) == 0 {
		switch req.Action {
		case models.RecoveryActionValidateEmail:
			fields = []string{FieldEmail}
		case models.RecoveryActionValidateAnswers:
			fields = []string{FieldEmail, FieldAnswers}
		case models.RecoveryActionUpdatePassword:
			fields = []string{FieldEmail, FieldNewPassword}
		default:
			return fmt.Errorf("%w: %q", ErrInvalidAction, req.Action)
		}
	}

	for _, f := range fields {
		switch f {
		case FieldAction:
			switch req.Action {
			case models.RecoveryActionValidateEmail, models.RecoveryActionValidateAnswers, models.RecoveryActionUpdatePassword:
			default:
				return fmt.Errorf("%w: %q", ErrInvalidAction, req.Action)
			}
		case FieldEmail:
			if strings.TrimSpace(req.Email) == "" {
				return ErrEmptyEmail
			}
		case FieldAnswers:
			if !completeSet(req.Answers) {
				return ErrInvalidAnswers
			}
		case FieldNewPassword:
			if verdict := EvaluateStrength(req.NewPassword); !verdict.Strong {
				return fmt.Errorf("%w: %s", ErrWeakPassword, verdict.Message)
			}
		case FieldPasswordConfirm:
			if req.NewPassword != req.ConfirmPassword {
				return ErrPasswordMismatch
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateVault(req models.VaultRequest, fields ...string) error {
	if len(fields) == 0 {
		switch req.Action {
		case models.VaultActionRead:
			fields = []string{FieldUserID}
		case models.VaultActionCreate:
			fields = []string{FieldUserID, FieldItemType, FieldItemData}
		case models.VaultActionUpdate:
			fields = []string{FieldUserID, FieldItemID, FieldItemType, FieldItemData}
		case models.VaultActionDelete:
			fields = []string{FieldUserID, FieldItemID}
		default:
			return fmt.Errorf("%w: %q", ErrInvalidAction, req.Action)
		}
	}

	for _, f := range fields {
		switch f {
		case FieldAction:
			switch req.Action {
			case models.VaultActionRead, models.VaultActionCreate, models.VaultActionUpdate, models.VaultActionDelete:
			default:
				return fmt.Errorf("%w: %q", ErrInvalidAction, req.Action)
			}
		case FieldUserID:
			if strings.TrimSpace(req.UserID) == "" {
				return ErrInvalidUserID
			}
		case FieldItemID:
			if strings.TrimSpace(req.ID) == "" {
				return ErrInvalidItemID
			}
		case FieldItemType:
			if !req.Type.Valid() {
				return fmt.Errorf("%w: %q", ErrInvalidItemType, req.Type)
			}
		case FieldItemData:
			if _, err := models.NormalizeFields(req.Type, req.Data); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidItemData, err)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// completeSet reports whether values holds exactly the expected number of
// security questions or answers, none of them blank.
func completeSet(values []string) bool {
	if len(values) != models.SecurityQuestionsCount {
		return false
	}
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}

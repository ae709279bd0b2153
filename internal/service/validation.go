// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-mypass/internal/validators"
	"github.com/MKhiriev/go-mypass/models"
)

// validateRegistration runs the registration checks in the order the user
// sees them: email, strength, confirmation, questions, answers.
func validateRegistration(ctx context.Context, validator validators.Validator, req models.RegisterRequest) error {
	if err := validator.Validate(ctx, req, validators.FieldEmail); err != nil {
		return asValidationError(err)
	}
	if err := checkStrength(req.Password); err != nil {
		return err
	}
	err := validator.Validate(ctx, req, validators.FieldPasswordConfirm, validators.FieldQuestions, validators.FieldAnswers)
	if err != nil {
		return asValidationError(err)
	}
	return nil
}

// checkStrength returns a ValidationError carrying the strength verdict
// when password is weak.
func checkStrength(password string) error {
	if verdict := validators.EvaluateStrength(password); !verdict.Strong {
		return newValidationError(verdict.Message, validators.ErrWeakPassword)
	}
	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-mypass/internal/app"
	"github.com/MKhiriev/go-mypass/internal/validators"
	"github.com/MKhiriev/go-mypass/models"
)

var (
	ErrTransport         = errors.New("server unreachable")
	ErrRequestRejected   = errors.New("request rejected")
	ErrValidation        = errors.New("validation failed")
	ErrNotAuthenticated  = errors.New("not authenticated")
	ErrItemNotFound      = errors.New("item not found")
	ErrFieldNotSensitive = errors.New("field is not sensitive")
	ErrUnknownField      = errors.New("unknown field")
	ErrClipboard         = errors.New("clipboard unavailable")

	ErrWrongPassword       = errors.New("wrong password")
	ErrWrongAnswers        = errors.New("wrong security answers")
	ErrRecoveryNotVerified = errors.New("recovery answers were not verified")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// RejectedError is an application-level rejection: the server answered
// with success:false. Message is the server's explanation.
type RejectedError struct {
	Message string
}

func (e *RejectedError) Error() string {
	if e.Message == "" {
		return ErrRequestRejected.Error()
	}
	return ErrRequestRejected.Error() + ": " + e.Message
}

// Is makes errors.Is(err, ErrRequestRejected) hold.
func (e *RejectedError) Is(target error) bool {
	return target == ErrRequestRejected
}

// ValidationError is a local check that failed before any network call.
// Message is ready to be shown to the user.
type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return ErrValidation.Error() + ": " + e.Message
}

// Is makes errors.Is(err, ErrValidation) hold.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func newValidationError(message string, err error) error {
	return &ValidationError{Message: message, Err: err}
}

// validationMessages translates validator sentinels into user messages.
// Order matters: the first match wins.
var validationMessages = []struct {
	err error
	msg string
}{
	{validators.ErrEmptyEmail, app.MsgEmailRequired},
	{validators.ErrEmptyPassword, app.MsgPasswordRequired},
	{validators.ErrPasswordMismatch, app.MsgPasswordsDoNotMatch},
	{validators.ErrInvalidQuestions, app.MsgSecurityQuestionsRequired},
	{validators.ErrInvalidAnswers, app.MsgSecurityAnswersRequired},
	{models.ErrUnknownItemField, app.MsgUnknownField},
	{validators.ErrInvalidItemID, app.MsgItemNotFound},
}

// asValidationError wraps a validator failure into a ValidationError with
// a user-facing message.
func asValidationError(err error) error {
	for _, m := range validationMessages {
		if errors.Is(err, m.err) {
			return newValidationError(m.msg, err)
		}
	}
	return newValidationError(app.MsgInvalidDataProvided, err)
}

// UserMessage turns any error returned by the client services into the
// text shown to the user. It returns "" for nil.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Message
	}

	var rerr *RejectedError
	if errors.As(err, &rerr) {
		if rerr.Message == "" {
			return app.MsgRequestRejected
		}
		return rerr.Message
	}

	switch {
	case errors.Is(err, ErrNotAuthenticated):
		return app.MsgNotAuthenticated
	case errors.Is(err, ErrItemNotFound):
		return app.MsgItemNotFound
	case errors.Is(err, ErrFieldNotSensitive):
		return app.MsgFieldNotSensitive
	case errors.Is(err, ErrUnknownField):
		return app.MsgUnknownField
	case errors.Is(err, ErrClipboard):
		return app.MsgClipboardUnavailable
	default:
		return app.MsgTransportFailure
	}
}

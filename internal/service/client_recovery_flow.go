// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/MKhiriev/go-mypass/internal/app"
	"github.com/MKhiriev/go-mypass/models"
)

// RecoveryStep is the position of a RecoveryFlow in the wizard.
type RecoveryStep int

const (
	AwaitingEmail RecoveryStep = iota
	AwaitingAnswers
	AwaitingNewPassword
)

func (s RecoveryStep) String() string {
	switch s {
	case AwaitingEmail:
		return "awaiting_email"
	case AwaitingAnswers:
		return "awaiting_answers"
	case AwaitingNewPassword:
		return "awaiting_new_password"
	default:
		return "unknown"
	}
}

// RecoveryFlow walks one user through email, security answers and a new
// password. It only advances when a stage succeeds and resets itself after
// the password was changed. A flow serves a single recovery attempt at a
// time.
type RecoveryFlow struct {
	chain ClientRecoveryService

	mu        sync.Mutex
	step      RecoveryStep
	email     string
	questions []string
	answers   []string
}

// NewRecoveryFlow returns a flow waiting for an email.
func NewRecoveryFlow(chain ClientRecoveryService) *RecoveryFlow {
	return &RecoveryFlow{chain: chain}
}

// Step returns the current step.
func (f *RecoveryFlow) Step() RecoveryStep {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.step
}

// Email returns the email the flow is recovering.
func (f *RecoveryFlow) Email() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.email
}

// Questions returns the security questions received for the email.
func (f *RecoveryFlow) Questions() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.questions)
}

// Reset abandons the attempt.
func (f *RecoveryFlow) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reset()
}

func (f *RecoveryFlow) reset() {
	f.step = AwaitingEmail
	f.email = ""
	f.questions = nil
	f.answers = nil
}

// SubmitEmail starts (or restarts) the attempt for email.
func (f *RecoveryFlow) SubmitEmail(ctx context.Context, email string) models.RecoveryResult {
	f.mu.Lock()
	defer f.mu.Unlock()

	result := f.chain.Handle(ctx, models.RecoveryRequest{
		Action: models.RecoveryActionValidateEmail,
		Email:  email,
	})
	if !result.OK() {
		return result
	}

	f.step = AwaitingAnswers
	f.email = strings.TrimSpace(email)
	f.questions = slices.Clone(result.Questions)
	f.answers = nil
	return result
}

// SubmitAnswers sends the answers to the questions of the current email.
func (f *RecoveryFlow) SubmitAnswers(ctx context.Context, answers []string) models.RecoveryResult {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.step != AwaitingAnswers {
		return models.RecoveryResult{Status: models.RecoveryInvalid, Message: app.MsgEnterEmailFirst}
	}

	result := f.chain.Handle(ctx, models.RecoveryRequest{
		Action:  models.RecoveryActionValidateAnswers,
		Email:   f.email,
		Answers: answers,
	})
	if !result.OK() {
		return result
	}

	f.step = AwaitingNewPassword
	f.answers = slices.Clone(answers)
	return result
}

// SubmitNewPassword sets the new password. On success the flow is reset.
func (f *RecoveryFlow) SubmitNewPassword(ctx context.Context, password, confirm string) models.RecoveryResult {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.step != AwaitingNewPassword {
		return models.RecoveryResult{Status: models.RecoveryInvalid, Message: app.MsgRecoveryNotVerified}
	}

	result := f.chain.Handle(ctx, models.RecoveryRequest{
		Action:          models.RecoveryActionUpdatePassword,
		Email:           f.email,
		NewPassword:     password,
		ConfirmPassword: confirm,
	})
	if result.OK() {
		f.reset()
	}
	return result
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Vault actions carried in VaultRequest.Action.
const (
	VaultActionRead   = "read"
	VaultActionCreate = "create"
	VaultActionUpdate = "update"
	VaultActionDelete = "delete"
)

// Recovery actions carried in RecoveryRequest.Action.
const (
	RecoveryActionValidateEmail   = "validate_email"
	RecoveryActionValidateAnswers = "validate_answers"
	RecoveryActionUpdatePassword  = "update_password"
)

// SecurityQuestionsCount is the number of questions asked on registration.
const SecurityQuestionsCount = 3

// LoginRequest is the body of the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the body of the register endpoint.
type RegisterRequest struct {
	Email             string   `json:"email"`
	Password          string   `json:"password"`
	ConfirmPassword   string   `json:"confirmPassword"`
	SecurityQuestions []string `json:"securityQuestions"`
	SecurityAnswers   []string `json:"securityAnswers"`
}

// RecoveryRequest is the body of the recovery endpoint. Which optional
// fields are meaningful depends on Action.
type RecoveryRequest struct {
	Action      string   `json:"action"`
	Email       string   `json:"email"`
	Answers     []string `json:"answers,omitempty"`
	NewPassword string   `json:"newPassword,omitempty"`

	// ConfirmPassword is checked locally and never transmitted.
	ConfirmPassword string `json:"-"`
}

// VaultRequest is the body of the vault endpoint.
type VaultRequest struct {
	Action string   `json:"action"`
	UserID string   `json:"user_id"`
	ID     string   `json:"id,omitempty"`
	Type   ItemType `json:"type,omitempty"`
	Data   Fields   `json:"data,omitempty"`
}

// Response is the envelope shared by every endpoint. Success decides which
// of the remaining fields are populated.
type Response struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message,omitempty"`
	User      *Identity   `json:"user,omitempty"`
	Questions []string    `json:"questions,omitempty"`
	Items     []VaultItem `json:"items,omitempty"`
}

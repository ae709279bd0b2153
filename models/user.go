// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Identity is the authenticated principal held by the client session.
// It is what the server returns on a successful login and what the client
// mirrors into durable state between restarts.
type Identity struct {
	// ID is the opaque, server-assigned user identifier. It is sent back as
	// user_id on every vault request.
	ID string `json:"id"`

	// Email is the login identifier of the user.
	Email string `json:"email"`
}

// IsZero reports whether the identity carries no user.
func (i Identity) IsZero() bool {
	return i.ID == ""
}

// User represents an account record on the server side.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the server-assigned identifier, exposed to clients as Identity.ID.
	UserID string `json:"-"`

	// Email is the unique login identifier.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the account password.
	PasswordHash string `json:"-"`

	// RecoveryVerifiedAt is set when the user answered the security
	// questions correctly and cleared once the password is reset.
	RecoveryVerifiedAt *time.Time `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"-"`
}

// Identity returns the client-facing view of the user.
func (u User) Identity() Identity {
	return Identity{ID: u.UserID, Email: u.Email}
}

// SecurityQuestion is one of the three recovery questions stored for a user.
// The answer is kept only as a bcrypt hash of its normalised form.
type SecurityQuestion struct {
	UserID     string
	Position   int
	Question   string
	AnswerHash string
}

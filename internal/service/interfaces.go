// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-mypass/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService registers accounts and checks credentials on the server.
type AuthService interface {
	// Register creates an account with its security questions. Returns a
	// ValidationError for bad input and store.ErrEmailAlreadyExists for a
	// taken email.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login returns the user owning the credentials or ErrWrongPassword.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
}

// RecoveryService implements the three server stages of password recovery.
type RecoveryService interface {
	// Questions returns the security questions of email, in order.
	Questions(ctx context.Context, email string) ([]string, error)

	// VerifyAnswers checks answers and, when all match, grants a short
	// window in which the password may be reset.
	VerifyAnswers(ctx context.Context, email string, answers []string) error

	// ResetPassword sets a new password. It requires a recent successful
	// VerifyAnswers and consumes it.
	ResetPassword(ctx context.Context, email, newPassword string) error
}

// VaultService stores vault items per user.
type VaultService interface {
	List(ctx context.Context, userID string) ([]models.VaultItem, error)
	Create(ctx context.Context, userID string, itemType models.ItemType, fields models.Fields) (models.VaultItem, error)
	Update(ctx context.Context, userID, id string, itemType models.ItemType, fields models.Fields) error
	Delete(ctx context.Context, userID, id string) error
}

// AppInfoService reports build metadata of the running server.
type AppInfoService interface {
	BuildInfo(ctx context.Context) models.BuildInfo
}

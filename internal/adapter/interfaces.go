// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport used by the client to talk to the
// mypass API server.
//
// Every endpoint answers with the shared [models.Response] envelope. The
// adapter returns the decoded envelope whenever the server produced one,
// including application rejections (success:false). Anything else (network
// failure, timeout, a body that is not an envelope) is returned as an error
// wrapping [ErrTransport], so callers can tell the two apart with
// [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-mypass/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter is the client's view of the API server.
type ServerAdapter interface {
	// Login posts credentials to /login.
	Login(ctx context.Context, req models.LoginRequest) (models.Response, error)

	// Register posts a new account to /register.
	Register(ctx context.Context, req models.RegisterRequest) (models.Response, error)

	// Recover posts one recovery stage to /forgot_password.
	Recover(ctx context.Context, req models.RecoveryRequest) (models.Response, error)

	// Vault posts a vault read or mutation to /vault.
	Vault(ctx context.Context, req models.VaultRequest) (models.Response, error)
}

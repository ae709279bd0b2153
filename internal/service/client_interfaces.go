// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-mypass/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientSessionService holds the single authenticated identity of the
// client process and mirrors it into durable client state, so a restart
// within the same state file keeps the user logged in.
type ClientSessionService interface {
	// SetIdentity caches identity and persists it under the session key.
	// The cache is only updated when persisting succeeded.
	SetIdentity(ctx context.Context, identity models.Identity) error

	// Identity returns the cached identity. With an empty cache it tries to
	// rehydrate from durable state; a missing or corrupt record reports no
	// identity.
	Identity(ctx context.Context) (models.Identity, bool)

	// Clear drops both the cache and the durable copy.
	Clear(ctx context.Context) error
}

// ClientAuthService logs users in and out and registers new accounts.
type ClientAuthService interface {
	// Login authenticates against the server and, on success, stores the
	// returned identity in the session.
	Login(ctx context.Context, email, password string) (models.Identity, error)

	// Register checks the request locally (email, password strength,
	// confirmation and three questions with answers) before sending it.
	// Returns the server's confirmation message.
	Register(ctx context.Context, req models.RegisterRequest) (string, error)

	// Logout clears the session.
	Logout(ctx context.Context) error
}

// ClientRecoveryService routes one forgot-password request to the stage
// handler registered for its action tag. It keeps no state between calls;
// see RecoveryFlow for the stateful wizard built on top of it.
type ClientRecoveryService interface {
	// Handle never returns an error: every outcome, including transport
	// failures and unknown actions, is described by the result status.
	Handle(ctx context.Context, req models.RecoveryRequest) models.RecoveryResult
}

// ClientVaultService owns the in-memory collection of vault items of the
// logged-in user and the per-field reveal state used for display.
type ClientVaultService interface {
	// Load fetches every item of the session user and replaces the
	// collection wholesale, then publishes detected issues. On failure the
	// previous collection stays untouched.
	Load(ctx context.Context) error

	// Create sends a new item and reloads the collection.
	Create(ctx context.Context, itemType models.ItemType, fields models.Fields) error

	// Update replaces type and fields of item id and reloads the collection.
	Update(ctx context.Context, id string, itemType models.ItemType, fields models.Fields) error

	// Delete removes item id and reloads the collection.
	Delete(ctx context.Context, id string) error

	// Items returns a copy of the collection in display order.
	Items() []models.VaultItem

	// Item returns a copy of item id.
	Item(id string) (models.VaultItem, bool)

	// ToggleMask flips the reveal state of a sensitive field and returns
	// the new state.
	ToggleMask(itemID, field string) (bool, error)

	// IsRevealed reports whether a field is currently shown in clear.
	IsRevealed(itemID, field string) bool

	// DisplayValue returns the value to render for a field: the masking
	// placeholder for a hidden sensitive field, the plain value otherwise.
	DisplayValue(itemID, field string) string

	// CopyField puts the real value of a field on the clipboard regardless
	// of its reveal state and returns it.
	CopyField(itemID, field string) (string, error)

	// Reset drops the collection and every reveal state. Loads that are in
	// flight when Reset is called are discarded.
	Reset()
}

// ClientAutoLock is a single-shot inactivity timer. When it fires, the
// session is cleared, the vault is reset and the OnLock callback runs.
type ClientAutoLock interface {
	// Start arms the timer. A previously armed timer is stopped first.
	Start(ctx context.Context)

	// Touch resets the countdown to its full duration. It is a no-op when
	// the timer is not armed.
	Touch()

	// Stop disarms the timer and waits for its goroutine to exit.
	Stop()

	// OnLock registers the callback run after the lock. It must not call
	// Stop.
	OnLock(fn func())
}

// Clipboard receives copied field values.
type Clipboard interface {
	WriteAll(text string) error
}

// Publisher receives issue messages detected by the vault.
type Publisher interface {
	Notify(message string)
}

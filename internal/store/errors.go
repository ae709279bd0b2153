// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when a user with the same email is
	// already registered.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a user lookup matches no record.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrItemNotFound is returned when a vault item does not exist or
	// belongs to another user.
	ErrItemNotFound = errors.New("vault item not found")

	// ErrStateNotFound is returned when a client state key is absent.
	ErrStateNotFound = errors.New("client state not found")

	// ErrStorageUnavailable wraps transient driver errors (lost connection,
	// busy database, serialization failure).
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrUnsupportedDSN is returned by NewConnect for an unusable DSN.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)

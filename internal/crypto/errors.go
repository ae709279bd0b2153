// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrInvalidPasswordLength is returned when a spec asks for fewer than
	// one character.
	ErrInvalidPasswordLength = errors.New("password length must be at least 1")

	// ErrSecretTooLong is returned by the bcrypt hasher for secrets over
	// 72 bytes.
	ErrSecretTooLong = errors.New("secret is too long to hash")
)

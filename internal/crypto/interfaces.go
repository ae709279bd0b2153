// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the randomness- and hashing-related primitives of
// mypass: the password generator used by the client and the secret hasher
// used by the reference server for passwords and security answers.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

import "github.com/MKhiriev/go-mypass/models"

// PasswordGenerator produces random passwords that satisfy a spec.
type PasswordGenerator interface {
	// Generate returns a password of exactly spec.Length characters.
	Generate(spec models.PasswordSpec) (string, error)
}

// SecretHasher hashes secrets for storage and verifies candidates against
// stored hashes. It never returns the secret itself.
type SecretHasher interface {
	// Hash returns a salted one-way hash of secret.
	Hash(secret string) (string, error)

	// Compare reports whether secret matches hash. A mismatch is not an
	// error; a malformed hash is.
	Compare(hash, secret string) (bool, error)
}

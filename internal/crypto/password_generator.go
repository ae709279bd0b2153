// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/MKhiriev/go-mypass/internal/validators"
	"github.com/MKhiriev/go-mypass/models"
)

const (
	upperChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowerChars = "abcdefghijklmnopqrstuvwxyz"
	digitChars = "0123456789"
)

// passwordGenerator draws every random choice from its reader.
type passwordGenerator struct {
	random io.Reader
}

// NewPasswordGenerator returns a [PasswordGenerator] backed by crypto/rand.
func NewPasswordGenerator() PasswordGenerator {
	return &passwordGenerator{random: rand.Reader}
}

// GeneratePassword is a shorthand for NewPasswordGenerator().Generate(spec).
func GeneratePassword(spec models.PasswordSpec) (string, error) {
	return NewPasswordGenerator().Generate(spec)
}

// Generate implements [PasswordGenerator].
//
// Lowercase letters are always used. One character of every mandatory
// class is placed first (uppercase, lowercase, digit, special), the rest
// is drawn from the union of the classes, and the result is shuffled.
// When spec.Length is shorter than the number of mandatory classes only
// the first spec.Length classes are guaranteed.
func (g *passwordGenerator) Generate(spec models.PasswordSpec) (string, error) {
	if spec.Length < 1 {
		return "", fmt.Errorf("%w: got %d", ErrInvalidPasswordLength, spec.Length)
	}

	classes := make([]string, 0, 4)
	if spec.Uppercase {
		classes = append(classes, upperChars)
	}
	classes = append(classes, lowerChars)
	if spec.Numbers {
		classes = append(classes, digitChars)
	}
	if spec.SpecialChars {
		classes = append(classes, validators.SpecialChars)
	}

	var pool string
	for _, class := range classes {
		pool += class
	}

	password := make([]byte, 0, spec.Length)
	for _, class := range classes {
		if len(password) == spec.Length {
			break
		}
		c, err := g.pick(class)
		if err != nil {
			return "", err
		}
		password = append(password, c)
	}

	for len(password) < spec.Length {
		c, err := g.pick(pool)
		if err != nil {
			return "", err
		}
		password = append(password, c)
	}

	for i := len(password) - 1; i > 0; i-- {
		j, err := g.intn(i + 1)
		if err != nil {
			return "", err
		}
		password[i], password[j] = password[j], password[i]
	}

	return string(password), nil
}

func (g *passwordGenerator) pick(charset string) (byte, error) {
	i, err := g.intn(len(charset))
	if err != nil {
		return 0, err
	}
	return charset[i], nil
}

func (g *passwordGenerator) intn(n int) (int, error) {
	v, err := rand.Int(g.random, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("error reading random source: %w", err)
	}
	return int(v.Int64()), nil
}

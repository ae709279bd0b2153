// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PasswordSpec configures the password generator. Lowercase letters are
// always part of the alphabet; the flags add the other classes.
type PasswordSpec struct {
	Length       int  `json:"length"`
	Uppercase    bool `json:"uppercase"`
	Numbers      bool `json:"numbers"`
	SpecialChars bool `json:"special_chars"`
}

// DefaultPasswordSpec returns a 12 character spec with every class enabled.
func DefaultPasswordSpec() PasswordSpec {
	return PasswordSpec{
		Length:       12,
		Uppercase:    true,
		Numbers:      true,
		SpecialChars: true,
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"strings"
	"unicode/utf8"
)

// MinPasswordLength is the shortest password the strength policy accepts.
const MinPasswordLength = 8

// SpecialChars is the set of characters counted as "special" by the
// strength policy and used by the password generator.
const SpecialChars = "!@#$%^&*()"

// StrengthReason identifies the first rule a password failed.
type StrengthReason int

const (
	StrengthOK StrengthReason = iota
	StrengthTooShort
	StrengthNoUppercase
	StrengthNoLowercase
	StrengthNoDigit
	StrengthNoSpecial
)

var strengthMessages = map[StrengthReason]string{
	StrengthOK:          "Strong password!",
	StrengthTooShort:    "Password must be at least 8 characters long.",
	StrengthNoUppercase: "Password must contain at least one uppercase letter.",
	StrengthNoLowercase: "Password must contain at least one lowercase letter.",
	StrengthNoDigit:     "Password must contain at least one number.",
	StrengthNoSpecial:   "Password must contain at least one special character.",
}

// Message returns the user-facing text for r.
func (r StrengthReason) Message() string {
	return strengthMessages[r]
}

// StrengthResult is the verdict of [EvaluateStrength].
type StrengthResult struct {
	Strong  bool
	Reason  StrengthReason
	Message string
}

// strengthRules are checked in order; the first failure wins. Length is
// counted in runes, so an emoji is one character.
var strengthRules = []struct {
	reason StrengthReason
	ok     func(string) bool
}{
	{StrengthTooShort, func(p string) bool { return utf8.RuneCountInString(p) >= MinPasswordLength }},
	{StrengthNoUppercase, func(p string) bool { return containsFunc(p, isASCIIUpper) }},
	{StrengthNoLowercase, func(p string) bool { return containsFunc(p, isASCIILower) }},
	{StrengthNoDigit, func(p string) bool { return containsFunc(p, isASCIIDigit) }},
	{StrengthNoSpecial, func(p string) bool { return strings.ContainsAny(p, SpecialChars) }},
}

// EvaluateStrength checks password against the strength policy and reports
// the first rule it breaks, or a strong verdict.
func EvaluateStrength(password string) StrengthResult {
	for _, rule := range strengthRules {
		if !rule.ok(password) {
			return StrengthResult{Reason: rule.reason, Message: rule.reason.Message()}
		}
	}
	return StrengthResult{Strong: true, Reason: StrengthOK, Message: StrengthOK.Message()}
}

func containsFunc(s string, f func(rune) bool) bool {
	return strings.IndexFunc(s, f) >= 0
}

func isASCIIUpper(r rune) bool { return r >= 'A' && r <= 'Z' }
func isASCIILower(r rune) bool { return r >= 'a' && r <= 'z' }
func isASCIIDigit(r rune) bool { return r >= '0' && r <= '9' }

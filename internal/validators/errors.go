// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidAction        = errors.New("invalid action")
	ErrInvalidUserID        = errors.New("invalid user ID")
	ErrInvalidItemID        = errors.New("invalid item ID")
	ErrInvalidItemType      = errors.New("invalid item type")
	ErrInvalidItemData      = errors.New("invalid item data")
	ErrEmptyEmail           = errors.New("email is required")
	ErrEmptyPassword        = errors.New("password is required")
	ErrWeakPassword         = errors.New("password is too weak")
	ErrPasswordMismatch     = errors.New("passwords do not match")
	ErrInvalidQuestions     = errors.New("security questions are incomplete")
	ErrInvalidAnswers       = errors.New("security answers are incomplete")
	ErrUnexpectedItemFields = errors.New("item fields are not allowed for this action")
)

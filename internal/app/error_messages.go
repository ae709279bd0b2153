// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// mypass client services, the TUI and the reference server handlers.
//
// All Msg* constants are human-readable message strings that are either
// written into response envelopes by the server or shown to the user by the
// client. Keeping them in one place keeps the wording consistent on both
// sides of the wire.
package app

// Transport and generic failures.
const (
	// MsgTransportFailure is shown whenever the server could not be reached
	// or answered with something that is not an envelope.
	MsgTransportFailure = "An error occurred. Please try again."

	// MsgRequestRejected is shown when the server rejected a request
	// without saying why.
	MsgRequestRejected = "The request was rejected by the server."

	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation.
	MsgInvalidDataProvided = "Invalid data provided."

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "Internal server error."

	// MsgUnknownAction is returned for an action tag no handler claims.
	MsgUnknownAction = "Unknown action."
)

// Authentication and registration.
const (
	MsgEmailRequired             = "Email is required."
	MsgPasswordRequired          = "Password is required."
	MsgPasswordsDoNotMatch       = "Passwords do not match."
	MsgSecurityQuestionsRequired = "Please provide three security questions."
	MsgSecurityAnswersRequired   = "Please answer all three security questions."

	// MsgInvalidLoginPassword is returned when the supplied email/password
	// combination does not match any account.
	MsgInvalidLoginPassword = "Invalid email or password."

	// MsgEmailAlreadyExists is returned on registration with an email that
	// is already taken.
	MsgEmailAlreadyExists = "An account with this email already exists."

	MsgRegistered       = "Registration successful. Please log in."
	MsgLoggedIn         = "Login successful."
	MsgNotAuthenticated = "You are not logged in."
)

// Recovery.
const (
	MsgUserNotFound        = "No account found for this email."
	MsgWrongAnswers        = "Security answers are incorrect."
	MsgAnswersVerified     = "Answers verified. Choose a new password."
	MsgRecoveryNotVerified = "Please answer your security questions first."
	MsgPasswordUpdated     = "Password updated successfully. Please log in."
	MsgEnterEmailFirst     = "Please enter your email first."
)

// Vault.
const (
	MsgItemNotFound         = "Item not found."
	MsgUnknownField         = "Unknown field."
	MsgFieldNotSensitive    = "This field cannot be masked."
	MsgClipboardUnavailable = "Could not copy to the clipboard."
	MsgItemCreated          = "Item created."
	MsgItemUpdated          = "Item updated."
	MsgItemDeleted          = "Item deleted."
)

// Client session.
const (
	MsgVaultLocked = "Vault locked after a period of inactivity. Please log in again."
	MsgLoggedOut   = "You have been logged out."
	MsgCopied      = "Copied to the clipboard."
)

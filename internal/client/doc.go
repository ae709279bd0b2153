// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It opens the client state database, builds the HTTP transport and the
// client services on top of it, and runs the terminal UI until the user
// quits.
package client

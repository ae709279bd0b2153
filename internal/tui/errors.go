// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "errors"

var (
	// ErrUserQuit is returned by [TUI.Run] when the user left with ctrl+c.
	ErrUserQuit = errors.New("user quit the program")

	errNoServices = errors.New("client services are required")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "github.com/atotto/clipboard"

// SystemClipboard writes to the clipboard of the desktop session. It fails
// when no clipboard utility is available (for example over plain SSH).
type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

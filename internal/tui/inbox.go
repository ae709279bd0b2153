// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-mypass/internal/notifier"
)

// renderInbox renders the notification panel, or nothing without entries.
func renderInbox(entries []notifier.Entry) string {
	if len(entries) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("Notifications\n")
	for _, e := range entries {
		b.WriteString(e.ReceivedAt.Format("15:04:05"))
		b.WriteString("  ")
		b.WriteString(e.Message)
		b.WriteString("\n")
	}
	return inboxStyle.Render(strings.TrimRight(b.String(), "\n"))
}

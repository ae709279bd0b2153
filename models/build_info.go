// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// Component names reported by the two binaries.
const (
	ClientComponent = "mypass"
	ServerComponent = "mypass-server"
)

const unknownBuildValue = "N/A"

// BuildInfo identifies a mypass binary. Version, Date and Commit are set
// with -ldflags and are empty in development builds.
type BuildInfo struct {
	Component string
	Version   string
	Date      string
	Commit    string
}

func NewBuildInfo(component, version, date, commit string) BuildInfo {
	return BuildInfo{
		Component: component,
		Version:   version,
		Date:      date,
		Commit:    commit,
	}
}

// Or returns a copy with every empty field replaced by fallback.
func (b BuildInfo) Or(fallback string) BuildInfo {
	pick := func(v string) string {
		if v == "" {
			return fallback
		}
		return v
	}
	return BuildInfo{
		Component: pick(b.Component),
		Version:   pick(b.Version),
		Date:      pick(b.Date),
		Commit:    pick(b.Commit),
	}
}

// String renders "mypass 1.2.0 (commit abc123, built 2026-05-01)".
func (b BuildInfo) String() string {
	b = b.Or(unknownBuildValue)
	return fmt.Sprintf("%s %s (commit %s, built %s)", b.Component, b.Version, b.Commit, b.Date)
}

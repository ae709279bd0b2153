// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-mypass/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errWeakPassword) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func buildInfo() models.BuildInfo {
	return models.NewBuildInfo(models.ClientComponent, buildVersion, buildDate, buildCommit).Or("N/A")
}

func printBuildInfo(w io.Writer) {
	info := buildInfo()
	fmt.Fprintln(w, info)
	fmt.Fprintf(w, "Build version: %s\n", info.Version)
	fmt.Fprintf(w, "Build date: %s\n", info.Date)
	fmt.Fprintf(w, "Build commit: %s\n", info.Commit)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the mypass client and the reference server.
//
// Configuration is assembled from multiple sources in the following order
// (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// The main entry points are [GetClientConfig] and [GetServerConfig], which
// return validated, role-specific views of the merged [StructuredConfig].
package config

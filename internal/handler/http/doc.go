// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the reference server's HTTP transport.
//
// Every endpoint accepts a JSON body and answers with the shared
// [models.Response] envelope, including on failure, so clients can tell an
// application rejection from a transport problem. Request tracing, access
// logging, panic recovery and response compression are handled here before
// requests reach the service layer.
package http

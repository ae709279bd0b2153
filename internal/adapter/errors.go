// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	// ErrTransport marks every failure that did not produce a server
	// envelope. All other errors of this package wrap it.
	ErrTransport = errors.New("transport failure")

	ErrMalformedResponse   = errors.New("malformed response")
	ErrNotFound            = errors.New("not found")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrInternalServerError = errors.New("internal server error")
)

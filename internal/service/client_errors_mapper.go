// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-mypass/models"
)

// checkResponse folds an adapter call into the service error taxonomy:
// a transport failure wraps ErrTransport, a success:false envelope becomes
// a RejectedError, and a successful envelope yields nil.
func checkResponse(resp models.Response, err error) error {
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}
	if !resp.Success {
		return &RejectedError{Message: resp.Message}
	}
	return nil
}

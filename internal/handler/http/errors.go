// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrUnknownAction is returned for a recovery or vault request whose action
// tag has no handler.
var ErrUnknownAction = errors.New("unknown action")

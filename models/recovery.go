// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// RecoveryStatus classifies the outcome of one recovery request.
type RecoveryStatus int

const (
	// RecoverySucceeded means the server accepted the stage.
	RecoverySucceeded RecoveryStatus = iota
	// RecoveryRejected means the server answered success:false.
	RecoveryRejected
	// RecoveryTransportFailed means no envelope came back.
	RecoveryTransportFailed
	// RecoveryInvalid means a local check failed and nothing was sent.
	RecoveryInvalid
	// RecoveryUnhandled means no stage is registered for the action tag.
	RecoveryUnhandled
)

func (s RecoveryStatus) String() string {
	switch s {
	case RecoverySucceeded:
		return "succeeded"
	case RecoveryRejected:
		return "rejected"
	case RecoveryTransportFailed:
		return "transport_failed"
	case RecoveryInvalid:
		return "invalid"
	case RecoveryUnhandled:
		return "unhandled"
	default:
		return fmt.Sprintf("RecoveryStatus(%d)", int(s))
	}
}

// RecoveryResult is what a recovery stage reports back. Questions is set
// by a successful validate_email stage.
type RecoveryResult struct {
	Status    RecoveryStatus
	Message   string
	Questions []string
}

// OK reports whether the stage succeeded.
func (r RecoveryResult) OK() bool {
	return r.Status == RecoverySucceeded
}

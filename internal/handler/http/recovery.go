// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-mypass/internal/app"
	"github.com/MKhiriev/go-mypass/models"
)

func (h *Handler) forgotPassword(w http.ResponseWriter, r *http.Request) {
	var req models.RecoveryRequest
	if err := readRequest(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	ctx := r.Context()
	recovery := h.services.RecoveryService

	switch req.Action {
	case models.RecoveryActionValidateEmail:
		questions, err := recovery.Questions(ctx, req.Email)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeSuccess(w, models.Response{Questions: questions})

	case models.RecoveryActionValidateAnswers:
		if err := recovery.VerifyAnswers(ctx, req.Email, req.Answers); err != nil {
			writeError(w, r, err)
			return
		}
		writeSuccess(w, models.Response{Message: app.MsgAnswersVerified})

	case models.RecoveryActionUpdatePassword:
		if err := recovery.ResetPassword(ctx, req.Email, req.NewPassword); err != nil {
			writeError(w, r, err)
			return
		}
		writeSuccess(w, models.Response{Message: app.MsgPasswordUpdated})

	default:
		writeError(w, r, fmt.Errorf("%w: recovery %q", ErrUnknownAction, req.Action))
	}
}

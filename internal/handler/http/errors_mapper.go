// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-mypass/internal/app"
	"github.com/MKhiriev/go-mypass/internal/logger"
	"github.com/MKhiriev/go-mypass/internal/service"
	"github.com/MKhiriev/go-mypass/internal/store"
	"github.com/MKhiriev/go-mypass/internal/utils"
	"github.com/MKhiriev/go-mypass/models"
)

// errorResponses maps domain errors to a status and the message placed in
// the envelope. The first match wins.
var errorResponses = []struct {
	err     error
	status  int
	message string
}{
	{service.ErrWrongPassword, http.StatusUnauthorized, app.MsgInvalidLoginPassword},
	{store.ErrEmailAlreadyExists, http.StatusConflict, app.MsgEmailAlreadyExists},
	{store.ErrNoUserWasFound, http.StatusNotFound, app.MsgUserNotFound},
	{service.ErrWrongAnswers, http.StatusUnauthorized, app.MsgWrongAnswers},
	{service.ErrRecoveryNotVerified, http.StatusForbidden, app.MsgRecoveryNotVerified},
	{store.ErrItemNotFound, http.StatusNotFound, app.MsgItemNotFound},
	{ErrUnknownAction, http.StatusBadRequest, app.MsgUnknownAction},
	{utils.ErrEmptyBody, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{errInvalidJSON, http.StatusBadRequest, app.MsgInvalidDataProvided},
}

var errInvalidJSON = errors.New("invalid JSON was passed")

// responseFromError returns the status and rejection envelope for err.
func responseFromError(err error) (int, models.Response) {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		return http.StatusBadRequest, models.Response{Message: verr.Message}
	}

	for _, e := range errorResponses {
		if errors.Is(err, e.err) {
			return e.status, models.Response{Message: e.message}
		}
	}
	return http.StatusInternalServerError, models.Response{Message: app.MsgInternalServerError}
}

// writeError logs err on the request logger and answers with a
// success:false envelope.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := responseFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
	} else {
		log.Info().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, resp, status)
}

func writeSuccess(w http.ResponseWriter, resp models.Response) {
	resp.Success = true
	utils.WriteJSON(w, resp, http.StatusOK)
}

func readRequest(r *http.Request, dst any) error {
	if err := utils.ReadJSON(r, dst); err != nil {
		if errors.Is(err, utils.ErrEmptyBody) {
			return err
		}
		return errors.Join(errInvalidJSON, err)
	}
	return nil
}

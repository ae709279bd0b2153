// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-mypass/internal/utils"
)

// versionResponse is the body of GET /version.
type versionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date,omitempty"`
	Commit  string `json:"commit,omitempty"`
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	info := h.services.AppInfoService.BuildInfo(r.Context())

	utils.WriteJSON(w, versionResponse{
		Version: info.Version,
		Date:    info.Date,
		Commit:  info.Commit,
	}, http.StatusOK)
}

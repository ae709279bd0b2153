// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-mypass/internal/app"
	"github.com/MKhiriev/go-mypass/internal/logger"
	"github.com/MKhiriev/go-mypass/models"
)

func (h *Handler) vault(w http.ResponseWriter, r *http.Request) {
	var req models.VaultRequest
	if err := readRequest(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	ctx := r.Context()
	vault := h.services.VaultService
	log := logger.FromRequest(r).With().Str("user_id", req.UserID).Str("action", req.Action).Logger()

	switch req.Action {
	case models.VaultActionRead:
		items, err := vault.List(ctx, req.UserID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		log.Debug().Int("count", len(items)).Msg("vault listed")
		writeSuccess(w, models.Response{Items: items})

	case models.VaultActionCreate:
		item, err := vault.Create(ctx, req.UserID, req.Type, req.Data)
		if err != nil {
			writeError(w, r, err)
			return
		}
		log.Debug().Str("item_id", item.ID).Msg("vault item created")
		writeSuccess(w, models.Response{Message: app.MsgItemCreated, Items: []models.VaultItem{item}})

	case models.VaultActionUpdate:
		if err := vault.Update(ctx, req.UserID, req.ID, req.Type, req.Data); err != nil {
			writeError(w, r, err)
			return
		}
		writeSuccess(w, models.Response{Message: app.MsgItemUpdated})

	case models.VaultActionDelete:
		if err := vault.Delete(ctx, req.UserID, req.ID); err != nil {
			writeError(w, r, err)
			return
		}
		writeSuccess(w, models.Response{Message: app.MsgItemDeleted})

	default:
		writeError(w, r, fmt.Errorf("%w: vault %q", ErrUnknownAction, req.Action))
	}
}

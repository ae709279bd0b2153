// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler assembles the transport handlers of the reference server.
package handler

import (
	"github.com/MKhiriev/go-mypass/internal/config"
	"github.com/MKhiriev/go-mypass/internal/handler/http"
	"github.com/MKhiriev/go-mypass/internal/logger"
	"github.com/MKhiriev/go-mypass/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg *config.ServerConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{HTTP: http.NewHandler(services, logger)}, nil
}

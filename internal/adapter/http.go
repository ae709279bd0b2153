// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-mypass/internal/config"
	"github.com/MKhiriev/go-mypass/internal/logger"
	"github.com/MKhiriev/go-mypass/internal/utils"
	"github.com/MKhiriev/go-mypass/models"
)

const (
	loginPath    = "/login"
	registerPath = "/register"
	recoverPath  = "/forgot_password"
	vaultPath    = "/vault"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the resty implementation of
// [ServerAdapter] for the base URL and timeout in cfg.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	if cfg.HTTPAddress == "" {
		return nil, fmt.Errorf("invalid adapter http address: empty address")
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(cfg.HTTPAddress, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

// Login implements [ServerAdapter].
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.Response, error) {
	return h.post(ctx, loginPath, req)
}

// Register implements [ServerAdapter].
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.Response, error) {
	return h.post(ctx, registerPath, req)
}

// Recover implements [ServerAdapter].
func (h *httpServerAdapter) Recover(ctx context.Context, req models.RecoveryRequest) (models.Response, error) {
	return h.post(ctx, recoverPath, req)
}

// Vault implements [ServerAdapter].
func (h *httpServerAdapter) Vault(ctx context.Context, req models.VaultRequest) (models.Response, error) {
	return h.post(ctx, vaultPath, req)
}

func (h *httpServerAdapter) post(ctx context.Context, path string, body any) (models.Response, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(body).
		Post(path)
	if err != nil {
		h.logger.Err(err).Str("path", path).Msg("request failed")
		return models.Response{}, fmt.Errorf("%w: %s request: %w", ErrTransport, path, err)
	}

	envelope, err := decodeEnvelope(resp)
	if err != nil {
		h.logger.Err(err).Str("path", path).Int("status", resp.StatusCode()).Msg("unexpected response")
		return models.Response{}, err
	}

	h.logger.Debug().
		Str("path", path).
		Int("status", resp.StatusCode()).
		Bool("success", envelope.Success).
		Dur("duration", resp.Time()).
		Msg("request completed")

	return envelope, nil
}

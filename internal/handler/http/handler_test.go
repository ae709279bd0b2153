// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-mypass/internal/logger"
	"github.com/MKhiriev/go-mypass/internal/mock"
	"github.com/MKhiriev/go-mypass/internal/service"
	"github.com/MKhiriev/go-mypass/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testServices struct {
	auth     *mock.MockAuthService
	recovery *mock.MockRecoveryService
	vault    *mock.MockVaultService
	appInfo  *mock.MockAppInfoService
}

// newTestRouter wires a Handler over mocked services and returns its router.
func newTestRouter(t *testing.T) (*chi.Mux, testServices) {
	t.Helper()
	ctrl := gomock.NewController(t)

	mocks := testServices{
		auth:     mock.NewMockAuthService(ctrl),
		recovery: mock.NewMockRecoveryService(ctrl),
		vault:    mock.NewMockVaultService(ctrl),
		appInfo:  mock.NewMockAppInfoService(ctrl),
	}

	h := NewHandler(&service.Services{
		AuthService:     mocks.auth,
		RecoveryService: mocks.recovery,
		VaultService:    mocks.vault,
		AppInfoService:  mocks.appInfo,
	}, logger.Nop())

	return h.Init(), mocks
}

func post(router http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) models.Response {
	t.Helper()
	require.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var resp models.Response
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-mypass/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetServerVersion(t *testing.T) {
	router, mocks := newTestRouter(t)
	mocks.appInfo.EXPECT().BuildInfo(gomock.Any()).Return(models.NewBuildInfo(models.ServerComponent, "v1.2.3", "2026-03-01", "deadbeef"))

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/version", nil))

	require.Equal(t, http.StatusOK, rr.Code)

	var got versionResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, versionResponse{Version: "v1.2.3", Date: "2026-03-01", Commit: "deadbeef"}, got)
}

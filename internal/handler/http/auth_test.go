// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-mypass/internal/app"
	"github.com/MKhiriev/go-mypass/internal/service"
	"github.com/MKhiriev/go-mypass/internal/store"
	"github.com/MKhiriev/go-mypass/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const registerBody = `{"email":"a@b.c","password":"Abcdefg1!","confirmPassword":"Abcdefg1!",` +
	`"securityQuestions":["Pet?","City?","Colour?"],"securityAnswers":["Rex","Paris","Blue"]}`

// ── /login ───────────────────────────────────────────────────────────────────

func TestLogin(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		setup       func(m testServices)
		wantStatus  int
		wantSuccess bool
		wantMessage string
		wantUser    *models.Identity
	}{
		{
			name: "success",
			body: `{"email":"a@b.c","password":"pw"}`,
			setup: func(m testServices) {
				m.auth.EXPECT().Login(gomock.Any(), models.LoginRequest{Email: "a@b.c", Password: "pw"}).
					Return(models.User{UserID: "u-1", Email: "a@b.c", PasswordHash: "secret"}, nil)
			},
			wantStatus:  http.StatusOK,
			wantSuccess: true,
			wantMessage: app.MsgLoggedIn,
			wantUser:    &models.Identity{ID: "u-1", Email: "a@b.c"},
		},
		{
			name: "wrong password",
			body: `{"email":"a@b.c","password":"pw"}`,
			setup: func(m testServices) {
				m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{}, service.ErrWrongPassword)
			},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: app.MsgInvalidLoginPassword,
		},
		{
			name: "validation",
			body: `{"email":"","password":"pw"}`,
			setup: func(m testServices) {
				m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).
					Return(models.User{}, &service.ValidationError{Message: app.MsgEmailRequired})
			},
			wantStatus:  http.StatusBadRequest,
			wantMessage: app.MsgEmailRequired,
		},
		{
			name:        "invalid JSON",
			body:        `{"email":`,
			setup:       func(testServices) {},
			wantStatus:  http.StatusBadRequest,
			wantMessage: app.MsgInvalidDataProvided,
		},
		{
			name:        "unknown field",
			body:        `{"login":"a"}`,
			setup:       func(testServices) {},
			wantStatus:  http.StatusBadRequest,
			wantMessage: app.MsgInvalidDataProvided,
		},
		{
			name:        "empty body",
			body:        ``,
			setup:       func(testServices) {},
			wantStatus:  http.StatusBadRequest,
			wantMessage: app.MsgInvalidDataProvided,
		},
		{
			name: "storage failure",
			body: `{"email":"a@b.c","password":"pw"}`,
			setup: func(m testServices) {
				m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).
					Return(models.User{}, fmt.Errorf("user search by email failed: %w", errors.New("db down")))
			},
			wantStatus:  http.StatusInternalServerError,
			wantMessage: app.MsgInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mocks := newTestRouter(t)
			tt.setup(mocks)

			rr := post(router, "/login", tt.body)

			assert.Equal(t, tt.wantStatus, rr.Code)
			resp := decodeEnvelope(t, rr)
			assert.Equal(t, tt.wantSuccess, resp.Success)
			assert.Equal(t, tt.wantMessage, resp.Message)
			assert.Equal(t, tt.wantUser, resp.User)
		})
	}
}

func TestLogin_DoesNotLeakPasswordHash(t *testing.T) {
	router, mocks := newTestRouter(t)
	mocks.auth.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(models.User{UserID: "u-1", Email: "a@b.c", PasswordHash: "$2a$10$secret"}, nil)

	rr := post(router, "/login", `{"email":"a@b.c","password":"pw"}`)

	assert.NotContains(t, rr.Body.String(), "$2a$10$secret")
}

// ── /register ────────────────────────────────────────────────────────────────

func TestRegister(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, mocks := newTestRouter(t)
		mocks.auth.EXPECT().Register(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req models.RegisterRequest) (models.User, error) {
				assert.Equal(t, "a@b.c", req.Email)
				assert.Equal(t, []string{"Rex", "Paris", "Blue"}, req.SecurityAnswers)
				return models.User{UserID: "u-1", Email: req.Email}, nil
			},
		)

		rr := post(router, "/register", registerBody)

		assert.Equal(t, http.StatusOK, rr.Code)
		resp := decodeEnvelope(t, rr)
		assert.True(t, resp.Success)
		assert.Equal(t, app.MsgRegistered, resp.Message)
	})

	t.Run("duplicate email", func(t *testing.T) {
		router, mocks := newTestRouter(t)
		mocks.auth.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return(models.User{}, fmt.Errorf("user creation ended with error: %w", store.ErrEmailAlreadyExists))

		rr := post(router, "/register", registerBody)

		assert.Equal(t, http.StatusConflict, rr.Code)
		resp := decodeEnvelope(t, rr)
		assert.False(t, resp.Success)
		assert.Equal(t, app.MsgEmailAlreadyExists, resp.Message)
	})

	t.Run("weak password", func(t *testing.T) {
		router, mocks := newTestRouter(t)
		mocks.auth.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return(models.User{}, &service.ValidationError{Message: "Password must contain at least one number."})

		rr := post(router, "/register", registerBody)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Password must contain at least one number.", decodeEnvelope(t, rr).Message)
	})
}

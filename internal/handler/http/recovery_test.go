// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-mypass/internal/app"
	"github.com/MKhiriev/go-mypass/internal/service"
	"github.com/MKhiriev/go-mypass/internal/store"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestForgotPassword(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		setup         func(m testServices)
		wantStatus    int
		wantSuccess   bool
		wantMessage   string
		wantQuestions []string
	}{
		{
			name: "validate_email returns questions",
			body: `{"action":"validate_email","email":"a@b.c"}`,
			setup: func(m testServices) {
				m.recovery.EXPECT().Questions(gomock.Any(), "a@b.c").Return([]string{"Pet?", "City?", "Colour?"}, nil)
			},
			wantStatus:    http.StatusOK,
			wantSuccess:   true,
			wantQuestions: []string{"Pet?", "City?", "Colour?"},
		},
		{
			name: "validate_email unknown user",
			body: `{"action":"validate_email","email":"x@y.z"}`,
			setup: func(m testServices) {
				m.recovery.EXPECT().Questions(gomock.Any(), "x@y.z").
					Return(nil, fmt.Errorf("find user: %w", store.ErrNoUserWasFound))
			},
			wantStatus:  http.StatusNotFound,
			wantMessage: app.MsgUserNotFound,
		},
		{
			name: "validate_answers",
			body: `{"action":"validate_answers","email":"a@b.c","answers":["Rex","Paris","Blue"]}`,
			setup: func(m testServices) {
				m.recovery.EXPECT().VerifyAnswers(gomock.Any(), "a@b.c", []string{"Rex", "Paris", "Blue"}).Return(nil)
			},
			wantStatus:  http.StatusOK,
			wantSuccess: true,
			wantMessage: app.MsgAnswersVerified,
		},
		{
			name: "validate_answers wrong",
			body: `{"action":"validate_answers","email":"a@b.c","answers":["Rex","Rome","Blue"]}`,
			setup: func(m testServices) {
				m.recovery.EXPECT().VerifyAnswers(gomock.Any(), gomock.Any(), gomock.Any()).Return(service.ErrWrongAnswers)
			},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: app.MsgWrongAnswers,
		},
		{
			name: "update_password",
			body: `{"action":"update_password","email":"a@b.c","newPassword":"Newpass1!"}`,
			setup: func(m testServices) {
				m.recovery.EXPECT().ResetPassword(gomock.Any(), "a@b.c", "Newpass1!").Return(nil)
			},
			wantStatus:  http.StatusOK,
			wantSuccess: true,
			wantMessage: app.MsgPasswordUpdated,
		},
		{
			name: "update_password without grant",
			body: `{"action":"update_password","email":"a@b.c","newPassword":"Newpass1!"}`,
			setup: func(m testServices) {
				m.recovery.EXPECT().ResetPassword(gomock.Any(), gomock.Any(), gomock.Any()).Return(service.ErrRecoveryNotVerified)
			},
			wantStatus:  http.StatusForbidden,
			wantMessage: app.MsgRecoveryNotVerified,
		},
		{
			name:        "unknown action",
			body:        `{"action":"reset_everything","email":"a@b.c"}`,
			setup:       func(testServices) {},
			wantStatus:  http.StatusBadRequest,
			wantMessage: app.MsgUnknownAction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mocks := newTestRouter(t)
			tt.setup(mocks)

			rr := post(router, "/forgot_password", tt.body)

			assert.Equal(t, tt.wantStatus, rr.Code)
			resp := decodeEnvelope(t, rr)
			assert.Equal(t, tt.wantSuccess, resp.Success)
			assert.Equal(t, tt.wantMessage, resp.Message)
			assert.Equal(t, tt.wantQuestions, resp.Questions)
		})
	}
}

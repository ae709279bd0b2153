// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-mypass/internal/app"
	"github.com/MKhiriev/go-mypass/internal/logger"
	"github.com/MKhiriev/go-mypass/internal/mock"
	"github.com/MKhiriev/go-mypass/internal/validators"
	"github.com/MKhiriev/go-mypass/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestAuthSvc builds a clientAuthService with mocked transport and session.
func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (*clientAuthService, *mock.MockServerAdapter, *mock.MockClientSessionService) {
	t.Helper()
	adapter := mock.NewMockServerAdapter(ctrl)
	session := mock.NewMockClientSessionService(ctrl)

	svc := NewClientAuthService(adapter, session, validators.NewRequestValidator(), logger.Nop()).(*clientAuthService)
	return svc, adapter, session
}

func validRegisterRequest() models.RegisterRequest {
	return models.RegisterRequest{
		Email:             "a@b.c",
		Password:          "Abcdefg1!",
		ConfirmPassword:   "Abcdefg1!",
		SecurityQuestions: []string{"Pet?", "City?", "Colour?"},
		SecurityAnswers:   []string{"Rex", "Paris", "Blue"},
	}
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestClientAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, adapter, session := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	identity := models.Identity{ID: "u-1", Email: "a@b.c"}

	gomock.InOrder(
		adapter.EXPECT().Login(ctx, models.LoginRequest{Email: "a@b.c", Password: "pw"}).
			Return(models.Response{Success: true, User: &identity}, nil),
		session.EXPECT().SetIdentity(ctx, identity).Return(nil),
	)

	got, err := svc.Login(ctx, "  a@b.c ", "pw")
	require.NoError(t, err)
	assert.Equal(t, identity, got)
}

func TestClientAuthService_Login_Rejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, adapter, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	adapter.EXPECT().Login(ctx, gomock.Any()).
		Return(models.Response{Success: false, Message: app.MsgInvalidLoginPassword}, nil)

	_, err := svc.Login(ctx, "a@b.c", "wrong")

	require.ErrorIs(t, err, ErrRequestRejected)
	assert.Equal(t, app.MsgInvalidLoginPassword, UserMessage(err))
}

func TestClientAuthService_Login_TransportError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, adapter, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	adapter.EXPECT().Login(ctx, gomock.Any()).Return(models.Response{}, errors.New("dial tcp: refused"))

	_, err := svc.Login(ctx, "a@b.c", "pw")

	require.ErrorIs(t, err, ErrTransport)
	assert.Equal(t, "An error occurred. Please try again.", UserMessage(err))
}

func TestClientAuthService_Login_ResponseWithoutUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, adapter, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	adapter.EXPECT().Login(ctx, gomock.Any()).Return(models.Response{Success: true}, nil)

	_, err := svc.Login(ctx, "a@b.c", "pw")
	require.ErrorIs(t, err, ErrTransport)
}

func TestClientAuthService_Login_LocalValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.Login(context.Background(), " ", "pw")
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, app.MsgEmailRequired, UserMessage(err))

	_, err = svc.Login(context.Background(), "a@b.c", "")
	assert.Equal(t, app.MsgPasswordRequired, UserMessage(err))
}

func TestClientAuthService_Login_SessionFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, adapter, session := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	identity := models.Identity{ID: "u-1"}
	adapter.EXPECT().Login(ctx, gomock.Any()).Return(models.Response{Success: true, User: &identity}, nil)
	session.EXPECT().SetIdentity(ctx, identity).Return(errors.New("read-only file system"))

	_, err := svc.Login(ctx, "a@b.c", "pw")
	require.Error(t, err)
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestClientAuthService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, adapter, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	req := validRegisterRequest()
	req.Email = " a@b.c "
	req.SecurityAnswers = []string{" Rex ", "Paris", "Blue"}

	adapter.EXPECT().Register(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, got models.RegisterRequest) (models.Response, error) {
			assert.Equal(t, validRegisterRequest(), got)
			return models.Response{Success: true, Message: "Welcome!"}, nil
		},
	)

	msg, err := svc.Register(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "Welcome!", msg)
}

func TestClientAuthService_Register_DefaultMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, adapter, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	adapter.EXPECT().Register(ctx, gomock.Any()).Return(models.Response{Success: true}, nil)

	msg, err := svc.Register(ctx, validRegisterRequest())
	require.NoError(t, err)
	assert.Equal(t, app.MsgRegistered, msg)
}

func TestClientAuthService_Register_LocalChecks(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*models.RegisterRequest)
		want   string
	}{
		{
			name:   "empty email",
			modify: func(r *models.RegisterRequest) { r.Email = "" },
			want:   app.MsgEmailRequired,
		},
		{
			name:   "weak password",
			modify: func(r *models.RegisterRequest) { r.Password, r.ConfirmPassword = "Abcdefg1", "Abcdefg1" },
			want:   "Password must contain at least one special character.",
		},
		{
			name:   "mismatch",
			modify: func(r *models.RegisterRequest) { r.ConfirmPassword = "Abcdefg1?" },
			want:   app.MsgPasswordsDoNotMatch,
		},
		{
			name:   "two questions",
			modify: func(r *models.RegisterRequest) { r.SecurityQuestions = r.SecurityQuestions[:2] },
			want:   app.MsgSecurityQuestionsRequired,
		},
		{
			name:   "blank answer",
			modify: func(r *models.RegisterRequest) { r.SecurityAnswers[1] = "   " },
			want:   app.MsgSecurityAnswersRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _, _ := newTestAuthSvc(t, ctrl)

			req := validRegisterRequest()
			tt.modify(&req)

			_, err := svc.Register(context.Background(), req)
			require.ErrorIs(t, err, ErrValidation)
			assert.Equal(t, tt.want, UserMessage(err))
		})
	}
}

func TestClientAuthService_Register_Rejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, adapter, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	adapter.EXPECT().Register(ctx, gomock.Any()).
		Return(models.Response{Success: false, Message: app.MsgEmailAlreadyExists}, nil)

	_, err := svc.Register(ctx, validRegisterRequest())
	require.ErrorIs(t, err, ErrRequestRejected)
	assert.Equal(t, app.MsgEmailAlreadyExists, UserMessage(err))
}

// ── Logout ───────────────────────────────────────────────────────────────────

func TestClientAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, session := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		session.EXPECT().Clear(ctx).Return(nil),
		session.EXPECT().Clear(ctx).Return(errors.New("locked")),
	)

	require.NoError(t, svc.Logout(ctx))
	require.Error(t, svc.Logout(ctx))
}

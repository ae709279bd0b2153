// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-mypass/internal/app"
	"github.com/MKhiriev/go-mypass/internal/crypto"
	"github.com/MKhiriev/go-mypass/internal/logger"
	"github.com/MKhiriev/go-mypass/internal/mock"
	"github.com/MKhiriev/go-mypass/internal/store"
	"github.com/MKhiriev/go-mypass/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

// sequentialIDs hands out "id-1", "id-2", ...
type sequentialIDs struct{ n int }

func (s *sequentialIDs) Generate() string {
	s.n++
	return fmt.Sprintf("id-%d", s.n)
}

func newTestServerAuthSvc(t *testing.T, ctrl *gomock.Controller) (AuthService, *mock.MockUserRepository, crypto.SecretHasher) {
	t.Helper()
	repo := mock.NewMockUserRepository(ctrl)
	hasher := crypto.NewBcryptHasher(bcrypt.MinCost)
	return NewAuthService(repo, hasher, &sequentialIDs{}, logger.Nop()), repo, hasher
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestAuthService_Register_HashesSecrets(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher := newTestServerAuthSvc(t, ctrl)
	ctx := context.Background()

	req := validRegisterRequest()
	req.Email = "  Alice@Example.COM "
	req.SecurityAnswers = []string{" REX ", "Paris", "Blue"}

	repo.EXPECT().CreateUser(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, user models.User, questions []models.SecurityQuestion) (models.User, error) {
			assert.Equal(t, "id-1", user.UserID)
			assert.Equal(t, "alice@example.com", user.Email)
			assert.NotEqual(t, req.Password, user.PasswordHash)
			assert.False(t, user.CreatedAt.IsZero())

			ok, err := hasher.Compare(user.PasswordHash, req.Password)
			require.NoError(t, err)
			assert.True(t, ok)

			require.Len(t, questions, 3)
			for i, q := range questions {
				assert.Equal(t, "id-1", q.UserID)
				assert.Equal(t, i+1, q.Position)
				assert.Equal(t, req.SecurityQuestions[i], q.Question)
			}
			ok, err = hasher.Compare(questions[0].AnswerHash, "rex")
			require.NoError(t, err)
			assert.True(t, ok)

			return user, nil
		},
	)

	user, err := svc.Register(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
}

func TestAuthService_Register_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestServerAuthSvc(t, ctrl)

	req := validRegisterRequest()
	req.Password, req.ConfirmPassword = "short", "short"

	_, err := svc.Register(context.Background(), req)
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "Password must be at least 8 characters long.", UserMessage(err))
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestServerAuthSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().CreateUser(ctx, gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.Register(ctx, validRegisterRequest())
	require.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher := newTestServerAuthSvc(t, ctrl)
	ctx := context.Background()

	hash, err := hasher.Hash("Abcdefg1!")
	require.NoError(t, err)
	stored := models.User{UserID: "u-1", Email: "a@b.c", PasswordHash: hash}

	repo.EXPECT().FindUserByEmail(ctx, "a@b.c").Return(stored, nil).Times(2)

	user, err := svc.Login(ctx, models.LoginRequest{Email: " A@B.C", Password: "Abcdefg1!"})
	require.NoError(t, err)
	assert.Equal(t, models.Identity{ID: "u-1", Email: "a@b.c"}, user.Identity())

	_, err = svc.Login(ctx, models.LoginRequest{Email: "a@b.c", Password: "Abcdefg1?"})
	require.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestServerAuthSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().FindUserByEmail(ctx, "ghost@b.c").Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.Login(ctx, models.LoginRequest{Email: "ghost@b.c", Password: "x"})
	require.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_StorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestServerAuthSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().FindUserByEmail(ctx, gomock.Any()).Return(models.User{}, errors.New("connection reset"))

	_, err := svc.Login(ctx, models.LoginRequest{Email: "a@b.c", Password: "x"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_EmptyFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestServerAuthSvc(t, ctrl)

	_, err := svc.Login(context.Background(), models.LoginRequest{Password: "x"})
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, app.MsgEmailRequired, UserMessage(err))
}

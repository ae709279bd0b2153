// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-mypass/internal/app"
	"github.com/MKhiriev/go-mypass/internal/logger"
	"github.com/MKhiriev/go-mypass/internal/mock"
	"github.com/MKhiriev/go-mypass/internal/notifier"
	"github.com/MKhiriev/go-mypass/internal/validators"
	"github.com/MKhiriev/go-mypass/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testUser = models.Identity{ID: "u-1", Email: "a@b.c"}

type vaultFixture struct {
	svc       *clientVaultService
	adapter   *mock.MockServerAdapter
	session   *mock.MockClientSessionService
	clipboard *mock.MockClipboard
	notices   *[]string
}

// newTestVaultSvc builds a vault for testUser with the clock fixed at
// 2024-06-15 and a recorder subscribed to the issue notifier.
func newTestVaultSvc(t *testing.T, ctrl *gomock.Controller) vaultFixture {
	t.Helper()

	adapter := mock.NewMockServerAdapter(ctrl)
	session := mock.NewMockClientSessionService(ctrl)
	clip := mock.NewMockClipboard(ctrl)

	notices := &[]string{}
	bus := notifier.New()
	bus.Subscribe(notifier.NewSubscriber(func(msg string) { *notices = append(*notices, msg) }))

	svc := NewClientVaultService(adapter, session, bus, clip, validators.NewRequestValidator(), logger.Nop()).(*clientVaultService)
	svc.now = func() time.Time { return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC) }

	session.EXPECT().Identity(gomock.Any()).Return(testUser, true).AnyTimes()

	return vaultFixture{svc: svc, adapter: adapter, session: session, clipboard: clip, notices: notices}
}

var readRequest = models.VaultRequest{Action: models.VaultActionRead, UserID: testUser.ID}

func loginItem(id, url, password string) models.VaultItem {
	return models.VaultItem{ID: id, Type: models.Login, Fields: models.Fields{
		models.FieldURL:      url,
		models.FieldUsername: "user",
		models.FieldPassword: password,
	}}
}

func itemsResponse(items ...models.VaultItem) models.Response {
	return models.Response{Success: true, Items: items}
}

// ── Load ─────────────────────────────────────────────────────────────────────

func TestClientVaultService_Load_ReplacesNormalisesAndSorts(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	f.adapter.EXPECT().Vault(ctx, readRequest).Return(itemsResponse(
		models.VaultItem{ID: "n1", Type: models.SecureNote, Fields: models.Fields{models.FieldTitle: "wifi"}},
		loginItem("z", "https://z.example", "Abcdefg1!"),
		models.VaultItem{ID: "c1", Type: models.CreditCard, Fields: models.Fields{models.FieldExpiryDate: "12/2030"}},
		loginItem("a", "https://a.example", "Abcdefg1!"),
		models.VaultItem{ID: "x", Type: "Crypto"},
	), nil)

	require.NoError(t, f.svc.Load(ctx))

	items := f.svc.Items()
	require.Len(t, items, 4)
	assert.Equal(t, []string{"a", "z", "c1", "n1"}, []string{items[0].ID, items[1].ID, items[2].ID, items[3].ID})

	note := items[3]
	assert.Equal(t, models.Fields{models.FieldTitle: "wifi", models.FieldNote: ""}, note.Fields)
	assert.Len(t, items[2].Fields, 4)
	assert.Empty(t, *f.notices)
}

func TestClientVaultService_Load_WeakPasswordNotifiedOncePerLoad(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	f.adapter.EXPECT().Vault(ctx, readRequest).
		Return(itemsResponse(loginItem("l1", "https://bank.example", "weak")), nil).
		Times(2)

	require.NoError(t, f.svc.Load(ctx))
	assert.Equal(t, []string{"Weak password detected for login item with URL: https://bank.example"}, *f.notices)

	require.NoError(t, f.svc.Load(ctx))
	assert.Len(t, *f.notices, 2)
}

func TestClientVaultService_Load_ExpiredCardAndDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	f.adapter.EXPECT().Vault(ctx, readRequest).Return(itemsResponse(
		models.VaultItem{ID: "c1", Type: models.CreditCard, Fields: models.Fields{
			models.FieldCardNumber: "4111111111111111",
			models.FieldExpiryDate: "01/2020",
		}},
		models.VaultItem{ID: "c2", Type: models.CreditCard, Fields: models.Fields{
			models.FieldCardNumber: "5500000000000004",
			models.FieldExpiryDate: "06/2024",
		}},
		models.VaultItem{ID: "d1", Type: models.IdentityDocument, Fields: models.Fields{
			models.FieldDocumentType: "Passport",
			models.FieldExpiryDate:   "2024-06-01",
		}},
	), nil)

	require.NoError(t, f.svc.Load(ctx))

	assert.Equal(t, []string{
		"Credit card has expired: 4111111111111111",
		"Document has expired: Passport",
	}, *f.notices)
}

func TestClientVaultService_Load_FailureKeepsPreviousState(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		f.adapter.EXPECT().Vault(ctx, readRequest).Return(itemsResponse(loginItem("l1", "u", "Abcdefg1!")), nil),
		f.adapter.EXPECT().Vault(ctx, readRequest).Return(models.Response{}, errors.New("connection reset")),
		f.adapter.EXPECT().Vault(ctx, readRequest).Return(models.Response{Success: false, Message: "nope"}, nil),
	)

	require.NoError(t, f.svc.Load(ctx))

	err := f.svc.Load(ctx)
	require.ErrorIs(t, err, ErrTransport)
	assert.Equal(t, app.MsgTransportFailure, UserMessage(err))

	err = f.svc.Load(ctx)
	require.ErrorIs(t, err, ErrRequestRejected)
	assert.Equal(t, "nope", UserMessage(err))

	items := f.svc.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "l1", items[0].ID)
}

func TestClientVaultService_Load_NotAuthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	adapter := mock.NewMockServerAdapter(ctrl)
	session := mock.NewMockClientSessionService(ctrl)
	svc := NewClientVaultService(adapter, session, notifier.New(), mock.NewMockClipboard(ctrl), validators.NewRequestValidator(), logger.Nop())

	session.EXPECT().Identity(gomock.Any()).Return(models.Identity{}, false).Times(2)

	assert.ErrorIs(t, svc.Load(context.Background()), ErrNotAuthenticated)
	assert.ErrorIs(t, svc.Delete(context.Background(), "x"), ErrNotAuthenticated)
}

func TestClientVaultService_Load_ResetDiscardsInFlightResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	f.adapter.EXPECT().Vault(ctx, readRequest).DoAndReturn(
		func(context.Context, models.VaultRequest) (models.Response, error) {
			f.svc.Reset()
			return itemsResponse(loginItem("l1", "u", "weak")), nil
		},
	)

	err := f.svc.Load(ctx)

	assert.ErrorIs(t, err, ErrNotAuthenticated)
	assert.Empty(t, f.svc.Items())
	assert.Empty(t, *f.notices)
}

func TestClientVaultService_Load_StaleResultDiscarded(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		// The first load is overtaken by a second one that completes earlier.
		f.adapter.EXPECT().Vault(ctx, readRequest).DoAndReturn(
			func(context.Context, models.VaultRequest) (models.Response, error) {
				require.NoError(t, f.svc.Load(ctx))
				return itemsResponse(loginItem("old", "u", "Abcdefg1!")), nil
			},
		),
		f.adapter.EXPECT().Vault(ctx, readRequest).Return(itemsResponse(loginItem("new", "u", "Abcdefg1!")), nil),
	)

	require.NoError(t, f.svc.Load(ctx))

	items := f.svc.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "new", items[0].ID)
}

// ── Create / Update / Delete ─────────────────────────────────────────────────

func TestClientVaultService_Create_SendsNormalisedDataAndReloads(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		f.adapter.EXPECT().Vault(ctx, models.VaultRequest{
			Action: models.VaultActionCreate,
			UserID: testUser.ID,
			Type:   models.SecureNote,
			Data:   models.Fields{models.FieldTitle: "door code", models.FieldNote: ""},
		}).Return(models.Response{Success: true}, nil),
		f.adapter.EXPECT().Vault(ctx, readRequest).Return(itemsResponse(
			models.VaultItem{ID: "n1", Type: models.SecureNote, Fields: models.Fields{models.FieldTitle: "door code"}},
		), nil),
	)

	require.NoError(t, f.svc.Create(ctx, models.SecureNote, models.Fields{models.FieldTitle: "door code"}))

	item, ok := f.svc.Item("n1")
	require.True(t, ok)
	assert.Equal(t, "door code", item.Title())
}

func TestClientVaultService_Create_UnknownFieldIsLocal(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestVaultSvc(t, ctrl)

	err := f.svc.Create(context.Background(), models.Login, models.Fields{"PIN": "1234"})

	require.ErrorIs(t, err, ErrValidation)
	assert.ErrorIs(t, err, models.ErrUnknownItemField)
	assert.Equal(t, app.MsgUnknownField, UserMessage(err))
}

func TestClientVaultService_Update_RejectedDoesNotReload(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	f.adapter.EXPECT().Vault(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, req models.VaultRequest) (models.Response, error) {
			assert.Equal(t, models.VaultActionUpdate, req.Action)
			assert.Equal(t, "l1", req.ID)
			assert.Equal(t, testUser.ID, req.UserID)
			assert.Len(t, req.Data, 3)
			return models.Response{Success: false, Message: "Item not found"}, nil
		},
	)

	err := f.svc.Update(ctx, "l1", models.Login, models.Fields{models.FieldPassword: "Abcdefg1!"})

	require.ErrorIs(t, err, ErrRequestRejected)
	assert.Equal(t, "Item not found", UserMessage(err))
}

// TestClientVaultService_MutationsSerialised checks that a second mutation
// is sent only after the first one and its resync load have finished.
func TestClientVaultService_MutationsSerialised(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	var (
		mu    sync.Mutex
		calls []string
	)
	record := func(call string) {
		mu.Lock()
		defer mu.Unlock()
		calls = append(calls, call)
	}

	createSent := make(chan struct{})
	release := make(chan struct{})

	f.adapter.EXPECT().Vault(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, req models.VaultRequest) (models.Response, error) {
			record(req.Action)
			if req.Action == models.VaultActionCreate {
				close(createSent)
				<-release
			}
			return models.Response{Success: true}, nil
		},
	).Times(4)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		assert.NoError(t, f.svc.Create(ctx, models.SecureNote, models.Fields{models.FieldTitle: "first"}))
	}()
	<-createSent

	go func() {
		defer wg.Done()
		assert.NoError(t, f.svc.Update(ctx, "n1", models.SecureNote, models.Fields{models.FieldNote: "second"}))
	}()
	time.Sleep(50 * time.Millisecond)

	mu.Lock()
	assert.Equal(t, []string{models.VaultActionCreate}, calls)
	mu.Unlock()

	close(release)
	wg.Wait()

	assert.Equal(t, []string{
		models.VaultActionCreate,
		models.VaultActionRead,
		models.VaultActionUpdate,
		models.VaultActionRead,
	}, calls)
}

func TestClientVaultService_Update_EmptyIDIsLocal(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestVaultSvc(t, ctrl)

	err := f.svc.Update(context.Background(), "  ", models.Login, nil)

	require.ErrorIs(t, err, ErrValidation)
}

func TestClientVaultService_Delete_Reloads(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		f.adapter.EXPECT().Vault(ctx, readRequest).Return(itemsResponse(loginItem("l1", "u", "Abcdefg1!")), nil),
		f.adapter.EXPECT().Vault(ctx, models.VaultRequest{
			Action: models.VaultActionDelete,
			UserID: testUser.ID,
			ID:     "l1",
		}).Return(models.Response{Success: true}, nil),
		f.adapter.EXPECT().Vault(ctx, readRequest).Return(itemsResponse(), nil),
	)

	require.NoError(t, f.svc.Load(ctx))
	_, err := f.svc.ToggleMask("l1", models.FieldPassword)
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(ctx, "l1"))

	assert.Empty(t, f.svc.Items())
	assert.Empty(t, f.svc.revealed)
}

// ── masking ──────────────────────────────────────────────────────────────────

func loadedVault(t *testing.T, ctrl *gomock.Controller) vaultFixture {
	t.Helper()
	f := newTestVaultSvc(t, ctrl)
	f.adapter.EXPECT().Vault(gomock.Any(), readRequest).Return(itemsResponse(loginItem("l1", "https://site.example", "S3cret!pass")), nil)
	require.NoError(t, f.svc.Load(context.Background()))
	return f
}

func TestClientVaultService_ToggleMask_RoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := loadedVault(t, ctrl)

	assert.False(t, f.svc.IsRevealed("l1", models.FieldPassword))
	assert.Equal(t, MaskPlaceholder, f.svc.DisplayValue("l1", models.FieldPassword))

	revealed, err := f.svc.ToggleMask("l1", models.FieldPassword)
	require.NoError(t, err)
	assert.True(t, revealed)
	assert.Equal(t, "S3cret!pass", f.svc.DisplayValue("l1", models.FieldPassword))

	revealed, err = f.svc.ToggleMask("l1", models.FieldPassword)
	require.NoError(t, err)
	assert.False(t, revealed)
	assert.Equal(t, MaskPlaceholder, f.svc.DisplayValue("l1", models.FieldPassword))
}

func TestClientVaultService_ToggleMask_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := loadedVault(t, ctrl)

	_, err := f.svc.ToggleMask("l1", models.FieldURL)
	assert.ErrorIs(t, err, ErrFieldNotSensitive)

	_, err = f.svc.ToggleMask("l1", models.FieldCVV)
	assert.ErrorIs(t, err, ErrUnknownField)

	_, err = f.svc.ToggleMask("missing", models.FieldPassword)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestClientVaultService_DisplayValue_NonSensitive(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := loadedVault(t, ctrl)

	assert.Equal(t, "https://site.example", f.svc.DisplayValue("l1", models.FieldURL))
	assert.Empty(t, f.svc.DisplayValue("missing", models.FieldURL))
}

func TestClientVaultService_CopyField_IgnoresMask(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := loadedVault(t, ctrl)

	f.clipboard.EXPECT().WriteAll("S3cret!pass").Return(nil).Times(2)

	got, err := f.svc.CopyField("l1", models.FieldPassword)
	require.NoError(t, err)
	assert.Equal(t, "S3cret!pass", got)

	_, err = f.svc.ToggleMask("l1", models.FieldPassword)
	require.NoError(t, err)

	got, err = f.svc.CopyField("l1", models.FieldPassword)
	require.NoError(t, err)
	assert.Equal(t, "S3cret!pass", got)
}

func TestClientVaultService_CopyField_ClipboardFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := loadedVault(t, ctrl)

	f.clipboard.EXPECT().WriteAll(gomock.Any()).Return(errors.New("no xclip"))

	_, err := f.svc.CopyField("l1", models.FieldUsername)

	require.ErrorIs(t, err, ErrClipboard)
	assert.Equal(t, app.MsgClipboardUnavailable, UserMessage(err))
}

func TestClientVaultService_Reset(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := loadedVault(t, ctrl)

	_, err := f.svc.ToggleMask("l1", models.FieldPassword)
	require.NoError(t, err)

	f.svc.Reset()

	assert.Empty(t, f.svc.Items())
	assert.False(t, f.svc.IsRevealed("l1", models.FieldPassword))
	_, ok := f.svc.Item("l1")
	assert.False(t, ok)
}

func TestClientVaultService_ItemsAreCopies(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := loadedVault(t, ctrl)

	items := f.svc.Items()
	items[0].Fields[models.FieldPassword] = "changed"

	item, ok := f.svc.Item("l1")
	require.True(t, ok)
	assert.Equal(t, "S3cret!pass", item.Fields[models.FieldPassword])
}

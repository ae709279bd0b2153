// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-mypass/internal/logger"
	"github.com/MKhiriev/go-mypass/internal/mock"
	"github.com/MKhiriev/go-mypass/internal/store"
	"github.com/MKhiriev/go-mypass/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── NewClientAutoLock ────────────────────────────────────────────────────────

func TestNewClientAutoLock_DefaultTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	lock := NewClientAutoLock(mock.NewMockClientSessionService(ctrl), mock.NewMockClientVaultService(ctrl), 0, logger.Nop())

	assert.Equal(t, DefaultAutoLockTimeout, lock.(*clientAutoLock).timeout)
}

// ── firing ───────────────────────────────────────────────────────────────────

func TestClientAutoLock_FiresAfterInactivity(t *testing.T) {
	ctrl := gomock.NewController(t)
	state := mock.NewMockStateRepository(ctrl)
	vault := mock.NewMockClientVaultService(ctrl)
	session := NewClientSessionService(state, logger.Nop())
	ctx := context.Background()

	state.EXPECT().Put(gomock.Any(), SessionStateKey, gomock.Any()).Return(nil)
	require.NoError(t, session.SetIdentity(ctx, models.Identity{ID: "u-1"}))

	gomock.InOrder(
		state.EXPECT().Delete(gomock.Any(), SessionStateKey).Return(nil),
		vault.EXPECT().Reset(),
	)
	state.EXPECT().Get(gomock.Any(), SessionStateKey).Return("", store.ErrStateNotFound)

	locked := make(chan struct{})
	lock := NewClientAutoLock(session, vault, 20*time.Millisecond, logger.Nop())
	lock.OnLock(func() { close(locked) })

	lock.Start(ctx)
	defer lock.Stop()

	select {
	case <-locked:
	case <-time.After(2 * time.Second):
		t.Fatal("auto-lock did not fire")
	}

	_, ok := session.Identity(ctx)
	assert.False(t, ok)
}

func TestClientAutoLock_TouchPreventsLock(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := mock.NewMockClientSessionService(ctrl)
	vault := mock.NewMockClientVaultService(ctrl)

	lock := NewClientAutoLock(session, vault, 150*time.Millisecond, logger.Nop())
	lock.OnLock(func() { t.Error("auto-lock fired despite activity") })

	lock.Start(context.Background())

	deadline := time.Now().Add(400 * time.Millisecond)
	for time.Now().Before(deadline) {
		lock.Touch()
		time.Sleep(10 * time.Millisecond)
	}

	lock.Stop()
}

func TestClientAutoLock_FiresOnlyOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := mock.NewMockClientSessionService(ctrl)
	vault := mock.NewMockClientVaultService(ctrl)

	session.EXPECT().Clear(gomock.Any()).Return(nil).Times(1)
	vault.EXPECT().Reset().Times(1)

	locked := make(chan struct{}, 4)
	lock := NewClientAutoLock(session, vault, 10*time.Millisecond, logger.Nop())
	lock.OnLock(func() { locked <- struct{}{} })

	lock.Start(context.Background())
	<-locked
	time.Sleep(50 * time.Millisecond)
	lock.Stop()

	assert.Empty(t, locked)
}

// ── Stop ─────────────────────────────────────────────────────────────────────

func TestClientAutoLock_StopDisarms(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := mock.NewMockClientSessionService(ctrl)
	vault := mock.NewMockClientVaultService(ctrl)

	lock := NewClientAutoLock(session, vault, 30*time.Millisecond, logger.Nop())
	lock.Start(context.Background())
	lock.Stop()

	time.Sleep(60 * time.Millisecond)
}

func TestClientAutoLock_CancelledContextDisarms(t *testing.T) {
	ctrl := gomock.NewController(t)
	lock := NewClientAutoLock(mock.NewMockClientSessionService(ctrl), mock.NewMockClientVaultService(ctrl), 30*time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	lock.Start(ctx)
	cancel()

	time.Sleep(60 * time.Millisecond)
	lock.Stop()
}

func TestClientAutoLock_StopAndTouchWithoutStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	lock := NewClientAutoLock(mock.NewMockClientSessionService(ctrl), mock.NewMockClientVaultService(ctrl), time.Second, logger.Nop())

	assert.NotPanics(t, func() {
		lock.Touch()
		lock.Stop()
		lock.Stop()
	})
}

func TestClientAutoLock_RestartRearms(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := mock.NewMockClientSessionService(ctrl)
	vault := mock.NewMockClientVaultService(ctrl)

	session.EXPECT().Clear(gomock.Any()).Return(nil).Times(2)
	vault.EXPECT().Reset().Times(2)

	locked := make(chan struct{}, 2)
	lock := NewClientAutoLock(session, vault, 10*time.Millisecond, logger.Nop())
	lock.OnLock(func() { locked <- struct{}{} })

	for range 2 {
		lock.Start(context.Background())
		select {
		case <-locked:
		case <-time.After(2 * time.Second):
			t.Fatal("auto-lock did not fire")
		}
	}
	lock.Stop()
}

func TestClientAutoLock_StopWhileOnLockBlocks(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := mock.NewMockClientSessionService(ctrl)
	vault := mock.NewMockClientVaultService(ctrl)

	session.EXPECT().Clear(gomock.Any()).Return(nil)
	vault.EXPECT().Reset()

	entered := make(chan struct{})
	release := make(chan struct{})
	lock := NewClientAutoLock(session, vault, 10*time.Millisecond, logger.Nop())
	lock.OnLock(func() {
		close(entered)
		<-release
	})

	lock.Start(context.Background())
	select {
	case <-entered:
	case <-time.After(2 * time.Second):
		t.Fatal("auto-lock did not fire")
	}

	stopped := make(chan struct{})
	go func() {
		lock.Stop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("Stop waited for the OnLock callback")
	}
	close(release)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-mypass/internal/logger"
)

// DefaultAutoLockTimeout is used when no positive timeout is configured.
const DefaultAutoLockTimeout = 60 * time.Second

type clientAutoLock struct {
	session ClientSessionService
	vault   ClientVaultService
	timeout time.Duration
	logger  *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	touch  chan struct{}
	onLock func()
	wg     sync.WaitGroup
}

// NewClientAutoLock creates an idle auto-lock. It does nothing until Start
// is called.
func NewClientAutoLock(session ClientSessionService, vault ClientVaultService, timeout time.Duration, logger *logger.Logger) ClientAutoLock {
	if timeout <= 0 {
		timeout = DefaultAutoLockTimeout
	}
	return &clientAutoLock{
		session: session,
		vault:   vault,
		timeout: timeout,
		logger:  logger,
	}
}

func (l *clientAutoLock) OnLock(fn func()) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onLock = fn
}

// Start stops any armed countdown and launches a new one. The goroutine
// exits when the lock fires, ctx is cancelled or Stop is called.
func (l *clientAutoLock) Start(ctx context.Context) {
	l.Stop()

	l.mu.Lock()
	lockCtx, cancel := context.WithCancel(ctx)
	touch := make(chan struct{}, 1)
	l.cancel = cancel
	l.touch = touch
	l.wg.Add(1)
	l.mu.Unlock()

	go func() {
		fired := l.countdown(lockCtx, touch)
		l.wg.Done()
		if fired {
			l.notifyLocked()
		}
	}()
}

// countdown reports whether the lock fired. The OnLock callback runs only
// after wg.Done, so it may block without holding up Stop.
func (l *clientAutoLock) countdown(ctx context.Context, touch <-chan struct{}) bool {
	t := time.NewTimer(l.timeout)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return false
		case <-touch:
			t.Reset(l.timeout)
		case <-t.C:
			l.lock(ctx)
			return true
		}
	}
}

func (l *clientAutoLock) Touch() {
	l.mu.Lock()
	touch := l.touch
	l.mu.Unlock()

	if touch == nil {
		return
	}
	select {
	case touch <- struct{}{}:
	default:
	}
}

// Stop cancels the countdown and blocks until its goroutine has exited.
// Safe to call when the timer is not armed.
func (l *clientAutoLock) Stop() {
	l.mu.Lock()
	cancel := l.cancel
	l.cancel = nil
	l.touch = nil
	l.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	l.wg.Wait()
}

func (l *clientAutoLock) lock(ctx context.Context) {
	if err := l.session.Clear(context.WithoutCancel(ctx)); err != nil {
		l.logger.Err(err).Msg("auto-lock failed to clear the stored session")
	}
	l.vault.Reset()

	l.mu.Lock()
	l.touch = nil
	l.mu.Unlock()

	l.logger.Info().Dur("timeout", l.timeout).Msg("session auto-locked after inactivity")
}

func (l *clientAutoLock) notifyLocked() {
	l.mu.Lock()
	onLock := l.onLock
	l.mu.Unlock()

	if onLock != nil {
		onLock()
	}
}

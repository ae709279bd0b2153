// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notifier

import (
	"sync"
	"time"
)

const (
	// DefaultInboxSize is the number of messages an Inbox keeps.
	DefaultInboxSize = 5
	// DefaultInboxTTL is how long a message stays visible.
	DefaultInboxTTL = 5 * time.Second
)

// Entry is one received message.
type Entry struct {
	Message    string
	ReceivedAt time.Time
}

// Inbox is an [Observer] that keeps the latest messages for display.
// Older messages are dropped once the inbox is full; every message expires
// after the TTL.
type Inbox struct {
	mu      sync.Mutex
	entries []Entry
	size    int
	ttl     time.Duration
	now     func() time.Time
	onNew   func()
}

// NewInbox returns an Inbox holding at most size messages for ttl each.
// Non-positive arguments select the defaults.
func NewInbox(size int, ttl time.Duration) *Inbox {
	if size <= 0 {
		size = DefaultInboxSize
	}
	if ttl <= 0 {
		ttl = DefaultInboxTTL
	}
	return &Inbox{size: size, ttl: ttl, now: time.Now}
}

// OnMessage registers fn to be called after each new message is stored.
// The TUI uses it to schedule a redraw.
func (in *Inbox) OnMessage(fn func()) {
	in.mu.Lock()
	in.onNew = fn
	in.mu.Unlock()
}

// Update implements Observer.
func (in *Inbox) Update(message string) {
	in.mu.Lock()
	in.entries = append(in.expired(in.entries), Entry{Message: message, ReceivedAt: in.now()})
	if over := len(in.entries) - in.size; over > 0 {
		in.entries = in.entries[over:]
	}
	fn := in.onNew
	in.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// Messages returns the live messages, oldest first.
func (in *Inbox) Messages() []Entry {
	in.mu.Lock()
	defer in.mu.Unlock()

	in.entries = in.expired(in.entries)
	out := make([]Entry, len(in.entries))
	copy(out, in.entries)
	return out
}

// Clear drops every message.
func (in *Inbox) Clear() {
	in.mu.Lock()
	in.entries = nil
	in.mu.Unlock()
}

// expired returns entries without the ones older than the TTL.
// Callers hold mu.
func (in *Inbox) expired(entries []Entry) []Entry {
	cutoff := in.now().Add(-in.ttl)
	i := 0
	for i < len(entries) && !entries[i].ReceivedAt.After(cutoff) {
		i++
	}
	return entries[i:]
}

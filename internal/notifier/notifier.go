// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package notifier is a synchronous publish/subscribe bus for short text
// messages. The vault service publishes detected issues (weak passwords,
// expired cards and documents); the TUI subscribes an [Inbox] to show them.
package notifier

import (
	"errors"
	"reflect"
	"slices"
	"sync"
)

// ErrUncomparableObserver is returned by [Notifier.Subscribe] for observers
// whose dynamic type cannot be compared, such as func or slice types.
// Wrap them with [NewSubscriber] or pass a pointer instead.
var ErrUncomparableObserver = errors.New("observer type is not comparable")

// Observer receives published messages.
type Observer interface {
	Update(message string)
}

// Subscriber adapts a plain function to [Observer]. Subscribers are
// compared by pointer, so two Subscribers wrapping the same function are
// still distinct observers.
type Subscriber struct {
	fn func(string)
}

// NewSubscriber returns an Observer calling fn for every message.
func NewSubscriber(fn func(string)) *Subscriber {
	return &Subscriber{fn: fn}
}

// Update implements Observer.
func (s *Subscriber) Update(message string) {
	if s.fn != nil {
		s.fn(message)
	}
}

// Notifier delivers every message to the observers subscribed at the time
// of the call, in subscription order. It keeps no history.
type Notifier struct {
	mu        sync.Mutex
	observers []Observer
}

// New returns an empty Notifier.
func New() *Notifier {
	return &Notifier{}
}

// Subscribe adds o. Subscribing the same observer twice has no effect.
// A nil observer is ignored.
func (n *Notifier) Subscribe(o Observer) error {
	if o == nil {
		return nil
	}
	if !isComparable(o) {
		return ErrUncomparableObserver
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if slices.Contains(n.observers, o) {
		return nil
	}
	n.observers = append(n.observers, o)
	return nil
}

// Unsubscribe removes o; unknown observers are ignored.
func (n *Notifier) Unsubscribe(o Observer) {
	if o == nil || !isComparable(o) {
		return
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	n.observers = slices.DeleteFunc(n.observers, func(x Observer) bool { return x == o })
}

// Notify calls Update on a snapshot of the observer list. Observers may
// subscribe or unsubscribe from inside Update; the change applies to the
// next Notify.
func (n *Notifier) Notify(message string) {
	n.mu.Lock()
	snapshot := slices.Clone(n.observers)
	n.mu.Unlock()

	for _, o := range snapshot {
		o.Update(message)
	}
}

// Len returns the number of subscribed observers.
func (n *Notifier) Len() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.observers)
}

func isComparable(o Observer) bool {
	return reflect.TypeOf(o).Comparable()
}

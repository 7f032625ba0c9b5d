// File: observable.go
// Title: Change-Notifying Value Holder
// Description: Object is embedded by types that publish property changes.
//              Listeners subscribe with a handler and get a handle back for
//              unsubscribing. SetField and SetValue only notify when the
//              value really changed.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package observable

import (
	"github.com/google/uuid"

	"github.com/msto63/netext/core/log"
)

// Handler is called with the notifying object and the changed property name.
type Handler func(sender any, propertyName string)

// Subscription identifies a registered handler.
type Subscription struct {
	id uuid.UUID
}

// IsZero reports whether s is the zero Subscription returned for a nil handler.
func (s Subscription) IsZero() bool {
	return s.id == uuid.Nil
}

// String returns the handle as a UUID string.
func (s Subscription) String() string {
	return s.id.String()
}

// Notifier is implemented by every type that embeds Object.
type Notifier interface {
	Subscribe(h Handler) Subscription
	Unsubscribe(s Subscription) bool
}

type listener struct {
	id      uuid.UUID
	handler Handler
}

// Object provides property change notification. The zero value is ready to
// use. It is not safe for concurrent use; callers sharing an Object across
// goroutines must serialize access.
type Object struct {
	sender    any
	listeners []listener
	logger    *log.Logger
}

// Bind sets the sender passed to handlers, normally the embedding struct.
// Without Bind handlers receive the *Object itself.
func (o *Object) Bind(sender any) {
	o.sender = sender
}

// WithLogger enables debug logging of notifications.
func (o *Object) WithLogger(logger *log.Logger) {
	if logger != nil {
		logger = logger.WithName("observable")
	}
	o.logger = logger
}

// Subscribe registers h. Handlers run in registration order. A nil handler
// is ignored and yields the zero Subscription.
func (o *Object) Subscribe(h Handler) Subscription {
	if h == nil {
		return Subscription{}
	}
	id := uuid.New()
	o.listeners = append(o.listeners, listener{id: id, handler: h})
	return Subscription{id: id}
}

// Unsubscribe removes the handler registered under s. It returns false if s
// is unknown or already removed.
func (o *Object) Unsubscribe(s Subscription) bool {
	for i, l := range o.listeners {
		if l.id == s.id {
			remaining := make([]listener, 0, len(o.listeners)-1)
			remaining = append(remaining, o.listeners[:i]...)
			o.listeners = append(remaining, o.listeners[i+1:]...)
			return true
		}
	}
	return false
}

// ListenerCount returns the number of registered handlers.
func (o *Object) ListenerCount() int {
	return len(o.listeners)
}

// NotifyPropertyChanged calls every registered handler with the sender and
// propertyName, synchronously and in registration order. Handlers added or
// removed by a handler take effect from the next notification. A panicking
// handler propagates to the caller and the remaining handlers are skipped.
func (o *Object) NotifyPropertyChanged(propertyName string) {
	if len(o.listeners) == 0 {
		return
	}

	snapshot := o.listeners
	sender := o.Sender()

	if o.logger != nil {
		o.logger.Debug("property changed", log.Fields{
			"property":  propertyName,
			"listeners": len(snapshot),
		})
	}

	for _, l := range snapshot {
		l.handler(sender, propertyName)
	}
}

// Sender returns the value passed to handlers.
func (o *Object) Sender() any {
	if o.sender != nil {
		return o.sender
	}
	return o
}

// SetField stores newValue in *field and notifies propertyName if it differs
// from the current value. Handlers observe the new value. It returns whether
// the field changed.
//
//	func (p *Person) SetName(name string) {
//	    observable.SetField(&p.Object, "Name", &p.name, name)
//	}
func SetField[T comparable](o *Object, propertyName string, field *T, newValue T) bool {
	if *field == newValue {
		return false
	}
	*field = newValue
	o.NotifyPropertyChanged(propertyName)
	return true
}

// SetFieldFunc is SetField with a caller-supplied equality, for types that
// are not comparable or compare by content.
func SetFieldFunc[T any](o *Object, propertyName string, field *T, newValue T, equal func(a, b T) bool) bool {
	if equal(*field, newValue) {
		return false
	}
	*field = newValue
	o.NotifyPropertyChanged(propertyName)
	return true
}

// SetValue compares current and newValue. If they differ it notifies
// propertyName and returns (newValue, true); otherwise it returns
// (current, false) without notifying. The caller stores the result, so
// handlers run before the store; use SetField when handlers read the
// property back.
//
//	p.count, _ = observable.SetValue(&p.Object, "Count", p.count, n)
func SetValue[T comparable](o *Object, propertyName string, current, newValue T) (T, bool) {
	if current == newValue {
		return current, false
	}
	o.NotifyPropertyChanged(propertyName)
	return newValue, true
}

// SetValueFunc is SetValue with a caller-supplied equality.
func SetValueFunc[T any](o *Object, propertyName string, current, newValue T, equal func(a, b T) bool) (T, bool) {
	if equal(current, newValue) {
		return current, false
	}
	o.NotifyPropertyChanged(propertyName)
	return newValue, true
}

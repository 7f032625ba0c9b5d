// File: observable_test.go
// Title: Tests for the Change-Notifying Value Holder
// Description: Registration order, guarded setters, unsubscription,
//              snapshot semantics and panic propagation.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial test implementation

package observable

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msto63/netext/core/log"
)

type person struct {
	Object
	name string
	tags []string
}

func newPerson() *person {
	p := &person{}
	p.Bind(p)
	return p
}

func (p *person) SetName(name string) bool {
	return SetField(&p.Object, "Name", &p.name, name)
}

type call struct {
	sender   any
	property string
}

func record(calls *[]call) Handler {
	return func(sender any, property string) {
		*calls = append(*calls, call{sender: sender, property: property})
	}
}

func TestSetFieldNotifiesOnlyOnChange(t *testing.T) {
	p := newPerson()
	p.name = "a"

	var calls []call
	p.Subscribe(record(&calls))

	require.True(t, p.SetName("b"))
	require.Len(t, calls, 1)
	assert.Same(t, p, calls[0].sender)
	assert.Equal(t, "Name", calls[0].property)
	assert.Equal(t, "b", p.name)

	require.False(t, p.SetName("b"))
	assert.Len(t, calls, 1, "unchanged value must not notify")
}

func TestHandlersSeeNewValue(t *testing.T) {
	p := newPerson()

	var seen string
	p.Subscribe(func(sender any, _ string) {
		seen = sender.(*person).name
	})

	p.SetName("ada")
	assert.Equal(t, "ada", seen)
}

func TestSetValue(t *testing.T) {
	var o Object
	var calls []call
	o.Subscribe(record(&calls))

	count := 1
	count, changed := SetValue(&o, "Count", count, 1)
	assert.False(t, changed)
	assert.Equal(t, 1, count)
	assert.Empty(t, calls)

	count, changed = SetValue(&o, "Count", count, 2)
	assert.True(t, changed)
	assert.Equal(t, 2, count)
	require.Len(t, calls, 1)
	assert.Same(t, &o, calls[0].sender, "unbound object passes itself")
}

func TestSetValueTwiceNotifiesOnce(t *testing.T) {
	var o Object
	var calls []call
	o.Subscribe(record(&calls))

	v := "a"
	v, _ = SetValue(&o, "V", v, "b")
	v, _ = SetValue(&o, "V", v, "b")

	assert.Equal(t, "b", v)
	assert.Len(t, calls, 1)
}

func TestSetFuncVariants(t *testing.T) {
	p := newPerson()
	var calls []call
	p.Subscribe(record(&calls))

	equal := func(a, b []string) bool {
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if a[i] != b[i] {
				return false
			}
		}
		return true
	}

	assert.True(t, SetFieldFunc(&p.Object, "Tags", &p.tags, []string{"x"}, equal))
	assert.False(t, SetFieldFunc(&p.Object, "Tags", &p.tags, []string{"x"}, equal))

	tags, changed := SetValueFunc(&p.Object, "Tags", p.tags, []string{"x", "y"}, equal)
	assert.True(t, changed)
	assert.Equal(t, []string{"x", "y"}, tags)

	assert.Len(t, calls, 2)
}

func TestRegistrationOrder(t *testing.T) {
	var o Object
	var order []int
	for i := 0; i < 5; i++ {
		i := i
		o.Subscribe(func(any, string) { order = append(order, i) })
	}

	o.NotifyPropertyChanged("X")
	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestNotifyWithoutListeners(t *testing.T) {
	var o Object
	assert.NotPanics(t, func() { o.NotifyPropertyChanged("X") })
}

func TestUnsubscribe(t *testing.T) {
	var o Object
	var first, second []call

	sub1 := o.Subscribe(record(&first))
	o.Subscribe(record(&second))
	require.Equal(t, 2, o.ListenerCount())
	require.False(t, sub1.IsZero())

	assert.True(t, o.Unsubscribe(sub1))
	assert.False(t, o.Unsubscribe(sub1), "second unsubscribe reports false")
	assert.Equal(t, 1, o.ListenerCount())

	o.NotifyPropertyChanged("X")
	assert.Empty(t, first)
	assert.Len(t, second, 1)
}

func TestNilHandler(t *testing.T) {
	var o Object
	sub := o.Subscribe(nil)

	assert.True(t, sub.IsZero())
	assert.Equal(t, 0, o.ListenerCount())
	assert.False(t, o.Unsubscribe(sub))
}

func TestSubscriptionsAreDistinct(t *testing.T) {
	var o Object
	a := o.Subscribe(func(any, string) {})
	b := o.Subscribe(func(any, string) {})
	assert.NotEqual(t, a, b)
	assert.NotEqual(t, a.String(), b.String())
}

func TestChangesDuringNotification(t *testing.T) {
	var o Object
	var late []call
	var lateSub Subscription

	o.Subscribe(func(any, string) {
		if lateSub.IsZero() {
			lateSub = o.Subscribe(record(&late))
		}
	})

	o.NotifyPropertyChanged("first")
	assert.Empty(t, late, "handler added during a notification waits for the next one")

	o.NotifyPropertyChanged("second")
	require.Len(t, late, 1)
	assert.Equal(t, "second", late[0].property)
}

func TestUnsubscribeDuringNotification(t *testing.T) {
	var o Object
	var calls []call
	var second Subscription

	o.Subscribe(func(any, string) { o.Unsubscribe(second) })
	second = o.Subscribe(record(&calls))

	o.NotifyPropertyChanged("first")
	assert.Len(t, calls, 1, "current notification still reaches the snapshot")

	o.NotifyPropertyChanged("second")
	assert.Len(t, calls, 1)
}

func TestPanickingHandlerStopsNotification(t *testing.T) {
	p := newPerson()
	var after []call

	p.Subscribe(func(any, string) { panic("listener failed") })
	p.Subscribe(record(&after))

	assert.PanicsWithValue(t, "listener failed", func() { p.SetName("x") })
	assert.Empty(t, after)
	assert.Equal(t, "x", p.name, "field is assigned before handlers run")
}

func TestNotifierInterface(t *testing.T) {
	var n Notifier = newPerson()
	sub := n.Subscribe(func(any, string) {})
	assert.True(t, n.Unsubscribe(sub))
}

func TestWithLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := log.NewWithConfig(log.Config{Level: log.LevelDebug, Format: log.FormatText, Output: buf})

	p := newPerson()
	p.WithLogger(logger)
	p.Subscribe(func(any, string) {})
	p.SetName("grace")

	out := buf.String()
	assert.True(t, strings.Contains(out, "{observable} property changed"), out)
	assert.True(t, strings.Contains(out, "property=Name"), out)
}

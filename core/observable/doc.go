// Package observable provides property change notification for structs.
//
// Package: observable
// Title: Change-Notifying Value Holder
// Description: Embed Object in a struct, Bind it to the struct, and route
//              property setters through SetField. Observers Subscribe with a
//              Handler and keep the returned Subscription to Unsubscribe.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation
//
// Usage:
//   type Person struct {
//     observable.Object
//     name string
//   }
//
//   func NewPerson() *Person {
//     p := &Person{}
//     p.Bind(p)
//     return p
//   }
//
//   func (p *Person) SetName(name string) bool {
//     return observable.SetField(&p.Object, "Name", &p.name, name)
//   }
//
//   sub := p.Subscribe(func(sender any, property string) { ... })
//   defer p.Unsubscribe(sub)
//
// Notification is synchronous: a setter returns after every handler has
// run, in registration order.
package observable

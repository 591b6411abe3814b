// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "fmt"

// Event is the interface for scene events, which are always
// delivered synchronously to the listeners of the object that emits them.
type Event interface {
	fmt.Stringer

	// Type returns the type of the event.
	Type() Types

	// Source returns the object that emitted the event.
	Source() any

	// IsHandled returns whether this event has already been processed;
	// remaining listeners are not called once it is.
	IsHandled() bool

	// SetHandled marks the event as having been processed.
	SetHandled()
}

// Base is the base type for events. It can be used directly
// for simple events, and embedded in events that carry more data.
type Base struct {

	// Typ is the type of the event.
	Typ Types

	// Src is the object that emitted the event.
	Src any

	// Data is any additional data associated with the event.
	Data any

	handled bool
}

// NewBase returns a new [Base] event of the given type from the given source.
func NewBase(typ Types, src any) *Base {
	return &Base{Typ: typ, Src: src}
}

// NewTrigger returns a new event of the given type emitted by the given object.
// It is what interactive controls send to an object as it is being
// transformed, and what containers listen for to re-run their layout.
func NewTrigger(typ Types, src any) Event {
	return NewBase(typ, src)
}

func (ev *Base) Type() Types     { return ev.Typ }
func (ev *Base) Source() any     { return ev.Src }
func (ev *Base) IsHandled() bool { return ev.handled }
func (ev *Base) SetHandled()     { ev.handled = true }

func (ev *Base) String() string {
	return fmt.Sprintf("%v{Source: %v, Data: %v}", ev.Typ, ev.Src, ev.Data)
}

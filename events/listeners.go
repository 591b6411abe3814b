// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Observable is implemented by anything that can be listened to
// for events and can emit them.
type Observable interface {

	// On adds a listener function for the given event type,
	// returning a function that removes it again.
	On(typ Types, fun func(ev Event)) (dispose func())

	// Emit sends the given event to all listeners for its type.
	Emit(ev Event)
}

// listener wraps a registered function so that it has an identity
// that its dispose function can find again.
type listener struct {
	fun func(ev Event)
}

// Listeners registers lists of event listener functions
// to receive different event types.
// Listeners are closure methods with all context captured,
// registered on specific objects.
type Listeners map[Types][]*listener

// Init ensures that map is constructed
func (ls *Listeners) Init() {
	if *ls != nil {
		return
	}
	*ls = make(map[Types][]*listener)
}

// Add adds a function for given type, and returns a function
// that removes it. The returned function can be called any number of times.
func (ls *Listeners) Add(typ Types, fun func(Event)) (dispose func()) {
	ls.Init()
	l := &listener{fun: fun}
	(*ls)[typ] = append((*ls)[typ], l)
	return func() {
		ls.remove(typ, l)
	}
}

func (ls *Listeners) remove(typ Types, l *listener) {
	ets := (*ls)[typ]
	for i, el := range ets {
		if el == l {
			// copy so that an in-progress Call keeps its snapshot
			nets := make([]*listener, 0, len(ets)-1)
			nets = append(nets, ets[:i]...)
			nets = append(nets, ets[i+1:]...)
			if len(nets) == 0 {
				delete(*ls, typ)
			} else {
				(*ls)[typ] = nets
			}
			return
		}
	}
}

// Count returns the number of functions registered for given type.
func (ls *Listeners) Count(typ Types) int {
	return len((*ls)[typ])
}

// Call calls all functions for given event.
// It goes in _reverse_ order to the last functions added are the first called
// and it stops when the event is marked as Handled.  This allows for a natural
// and optional override behavior, as compared to requiring more complex
// priority-based mechanisms.
// Functions removed or added by a listener during the call do not change
// the set of functions called for this event.
func (ls *Listeners) Call(ev Event) {
	if ev.IsHandled() {
		return
	}
	ets := (*ls)[ev.Type()]
	for i := len(ets) - 1; i >= 0; i-- {
		ets[i].fun(ev)
		if ev.IsHandled() {
			break
		}
	}
}

// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"slices"

	"cogentcore.org/canvas/base/errors"
	"cogentcore.org/canvas/events"
)

// Canvas is the top-level collection of objects of a scene.
// It forwards the layout events of all of its groups as
// [events.ObjectLayoutBefore] and [events.ObjectLayout].
type Canvas struct {

	// objects are the top-level objects.
	objects []Object

	// listeners are the event listeners of the canvas.
	listeners events.Listeners
}

// NewCanvas returns a new empty canvas.
func NewCanvas() *Canvas {
	return &Canvas{}
}

// Objects returns the top-level objects of the canvas.
func (c *Canvas) Objects() []Object {
	return c.objects
}

// Add adds the given objects to the canvas as top-level objects.
// Objects that belong to a group are first removed from it,
// keeping their placement.
func (c *Canvas) Add(objects ...Object) {
	for _, obj := range objects {
		ob := obj.AsObjectBase()
		if ob.canvas == c {
			continue
		}
		detach(obj)
		ob.canvas = c
		c.objects = append(c.objects, obj)
		c.Emit(&events.Base{Typ: events.Added, Src: c, Data: obj})
	}
}

// Remove removes the given top-level objects from the canvas.
func (c *Canvas) Remove(objects ...Object) {
	for _, obj := range objects {
		ob := obj.AsObjectBase()
		if ob.canvas != c {
			continue
		}
		ob.canvas = nil
		c.objects = slices.DeleteFunc(c.objects, func(o Object) bool { return o == obj })
		c.Emit(&events.Base{Typ: events.Removed, Src: c, Data: obj})
	}
}

// Group replaces the given top-level objects with a new group of them,
// which is added to the canvas.
func (c *Canvas) Group(objects []Object, opts ...GroupOption) (*Group, error) {
	g, err := NewGroup(objects, opts...)
	if err != nil {
		return nil, errors.Log(err)
	}
	c.Add(g)
	return g, nil
}

// On adds a listener for the given event type, returning a function that removes it.
func (c *Canvas) On(typ events.Types, fun func(ev events.Event)) (dispose func()) {
	return c.listeners.Add(typ, fun)
}

// Emit sends the given event to the listeners of the canvas.
func (c *Canvas) Emit(ev events.Event) {
	c.listeners.Call(ev)
}

// Walk calls the given function on every object of the canvas, depth first,
// with the depth of the object. It stops descending into a group when
// the function returns false.
func (c *Canvas) Walk(fun func(obj Object, depth int) bool) {
	for _, obj := range c.objects {
		Walk(obj, fun)
	}
}

// Walk calls the given function on the given object and its
// descendants, depth first. It stops descending into a group when
// the function returns false.
func Walk(obj Object, fun func(obj Object, depth int) bool) {
	walk(obj, 0, fun)
}

func walk(obj Object, depth int, fun func(obj Object, depth int) bool) {
	if !fun(obj, depth) {
		return
	}
	if g, ok := obj.(*Group); ok {
		for _, ch := range g.objects {
			walk(ch, depth+1, fun)
		}
	}
}

// FindByName returns the first object with the given name or ID
// on the canvas, depth first, or nil if there is none.
func (c *Canvas) FindByName(name string) Object {
	var found Object
	c.Walk(func(obj Object, depth int) bool {
		if found != nil {
			return false
		}
		ob := obj.AsObjectBase()
		if ob.Name == name || ob.ID == name {
			found = obj
			return false
		}
		return true
	})
	return found
}

// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sceneio

import (
	"fmt"
	"log/slog"

	"cogentcore.org/canvas/base/errors"
	"cogentcore.org/canvas/events"
	"cogentcore.org/canvas/layout"
	"cogentcore.org/canvas/math32"
	"cogentcore.org/canvas/scene"
)

// ErrNotFound is returned when a step refers to an object that is not in the scene.
var ErrNotFound = errors.New("sceneio: object not found")

// Actions are the actions of a [Step].
type Actions string

const (
	// Move moves the target by (DX, DY) and sends Event, or modified.
	Move Actions = "move"

	// Rotate rotates the target by Angle degrees around its center
	// and sends Event, or modified.
	Rotate Actions = "rotate"

	// Resize adds (DX, DY) to the size of the target and sends Event, or modified.
	Resize Actions = "resize"

	// SetText sets the text of the target text object to Text.
	SetText Actions = "set-text"

	// Add adds Object to the Group, or to the canvas if Group is empty.
	Add Actions = "add"

	// Remove removes the target from its group, or from the canvas.
	Remove Actions = "remove"

	// Relayout runs an imperative layout of the target group,
	// including nested groups if Deep is set.
	Relayout Actions = "relayout"

	// Fire sends Event from the target.
	Fire Actions = "fire"
)

// Step is one step of a scene script.
type Step struct {

	// Action is the action of the step.
	Action Actions `json:"action" yaml:"action" toml:"action"`

	// Target is the name or ID of the object that the step applies to.
	Target string `json:"target,omitempty" yaml:"target,omitempty" toml:"target,omitempty"`

	// Group is the name or ID of the group for [Add].
	Group string `json:"group,omitempty" yaml:"group,omitempty" toml:"group,omitempty"`

	DX float32 `json:"dx,omitempty" yaml:"dx,omitempty" toml:"dx,omitempty"`
	DY float32 `json:"dy,omitempty" yaml:"dy,omitempty" toml:"dy,omitempty"`

	// Angle is the rotation in degrees for [Rotate].
	Angle float32 `json:"angle,omitempty" yaml:"angle,omitempty" toml:"angle,omitempty"`

	// Text is the text for [SetText].
	Text string `json:"text,omitempty" yaml:"text,omitempty" toml:"text,omitempty"`

	// Event is the name of the event type sent by the step (e.g., "moving").
	Event string `json:"event,omitempty" yaml:"event,omitempty" toml:"event,omitempty"`

	// Deep is whether [Relayout] includes nested groups.
	Deep bool `json:"deep,omitempty" yaml:"deep,omitempty" toml:"deep,omitempty"`

	// Object is the object for [Add].
	Object *Object `json:"object,omitempty" yaml:"object,omitempty" toml:"object,omitempty"`
}

func (st *Step) String() string {
	if st.Target == "" {
		return string(st.Action)
	}
	return string(st.Action) + " " + st.Target
}

// Run runs all of the steps of the scene on the given canvas,
// stopping at the first error.
func (sc *Scene) Run(c *scene.Canvas) error {
	for i, st := range sc.Steps {
		slog.Debug("running step", "index", i, "step", st)
		if err := st.Run(c); err != nil {
			return fmt.Errorf("sceneio: step %d (%v): %w", i, st, err)
		}
	}
	return nil
}

// Run runs the step on the given canvas.
func (st *Step) Run(c *scene.Canvas) error {
	switch st.Action {
	case Add:
		return st.add(c)
	case Relayout:
		g, err := findGroup(c, st.Target)
		if err != nil {
			return err
		}
		g.TriggerLayout(&layout.ImperativePayload{Deep: st.Deep})
		return nil
	}
	obj, err := find(c, st.Target)
	if err != nil {
		return err
	}
	ob := obj.AsObjectBase()
	switch st.Action {
	case Move:
		ob.Left += st.DX
		ob.Top += st.DY
		ob.InvalidateCoords()
		return st.fire(ob)
	case Rotate:
		center := ob.RelativeCenter()
		ob.Angle += st.Angle
		ob.SetPositionByOrigin(center, math32.OriginCenter, math32.OriginCenter)
		return st.fire(ob)
	case Resize:
		ob.Width += st.DX
		ob.Height += st.DY
		ob.InvalidateCoords()
		return st.fire(ob)
	case SetText:
		tx, ok := obj.(*scene.Text)
		if !ok {
			return fmt.Errorf("%v is not a text object", obj)
		}
		tx.SetText(st.Text)
		return nil
	case Remove:
		if g := ob.Group(); g != nil {
			return g.Remove(obj)
		}
		if c := ob.Canvas(); c != nil {
			c.Remove(obj)
		}
		return nil
	case Fire:
		if st.Event == "" {
			return errors.New("fire requires an event")
		}
		return st.fire(ob)
	}
	return fmt.Errorf("unknown action %q", st.Action)
}

// fire sends the event of the step, or the modified event if there is none.
func (st *Step) fire(ob *scene.ObjectBase) error {
	if st.Event == "" {
		ob.Fire(events.Modified)
		return nil
	}
	tp, ok := events.TypesFromString(st.Event)
	if !ok {
		return fmt.Errorf("unknown event type %q", st.Event)
	}
	ob.Fire(tp)
	return nil
}

func (st *Step) add(c *scene.Canvas) error {
	if st.Object == nil {
		return errors.New("add requires an object")
	}
	obj, err := st.Object.Build()
	if err != nil {
		return err
	}
	if st.Group == "" {
		c.Add(obj)
		return nil
	}
	g, err := findGroup(c, st.Group)
	if err != nil {
		return err
	}
	return g.Add(obj)
}

func find(c *scene.Canvas, name string) (scene.Object, error) {
	obj := c.FindByName(name)
	if obj == nil {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return obj, nil
}

func findGroup(c *scene.Canvas, name string) (*scene.Group, error) {
	obj, err := find(c, name)
	if err != nil {
		return nil, err
	}
	g, ok := obj.(*scene.Group)
	if !ok {
		return nil, fmt.Errorf("%v is not a group", obj)
	}
	return g, nil
}

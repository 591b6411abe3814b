// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"cogentcore.org/canvas/events"
	"cogentcore.org/canvas/math32"
)

// Types are the coarse categories of layout requests.
type Types int32

const (
	// Initialization is the first layout of a container,
	// establishing its baseline geometry.
	Initialization Types = iota

	// Added is a layout after objects were added to the container.
	Added

	// Removed is a layout after objects were removed from the container.
	Removed

	// ObjectModified is a layout after a child completed a change.
	ObjectModified

	// ObjectModifying is a layout during an ongoing change of a child.
	ObjectModifying

	// Imperative is a layout requested directly by the application.
	Imperative
)

var typesNames = [...]string{"initialization", "added", "removed", "object_modified", "object_modifying", "imperative"}

func (tp Types) String() string {
	if tp < 0 || int(tp) >= len(typesNames) {
		return "unknown"
	}
	return typesNames[tp]
}

// Trigger is the symbolic cause of a layout request. For requests caused
// by an object event it is the name of the event type.
type Trigger string

const (
	TriggerInitialization Trigger = "initialization"
	TriggerAdded          Trigger = "added"
	TriggerRemoved        Trigger = "removed"
	TriggerImperative     Trigger = "imperative"
)

// TriggerFor returns the trigger for the given object event type.
func TriggerFor(tp events.Types) Trigger {
	return Trigger(tp.String())
}

// Payload is the type-specific part of a [Context]. Each layout type has
// its own payload type, so that fields only exist where they make sense.
type Payload interface {
	LayoutType() Types
}

// Targeted is implemented by the payloads that carry the objects
// involved in the request.
type Targeted interface {
	Payload
	TargetObjects() []Object
}

// InitializationPayload is the payload of an [Initialization] request.
type InitializationPayload struct {

	// Targets are the objects of the container at initialization.
	Targets []Object

	// Position, if set, is used as the position of the container
	// instead of the one computed from the layout result. It needs a
	// strategy with a result: when the strategy has none, the unchanged
	// result reported for the first layout is not committed.
	Position *math32.Vector2

	// ObjectsRelativeToGroup indicates that the stored positions of the
	// targets are already relative to the container (for example when
	// the container is restored from a file), so they are not shifted.
	ObjectsRelativeToGroup bool
}

// AddedPayload is the payload of an [Added] request.
type AddedPayload struct {
	Targets []Object
}

// RemovedPayload is the payload of a [Removed] request.
type RemovedPayload struct {
	Targets []Object
}

// ObjectModifiedPayload is the payload of an [ObjectModified] request.
type ObjectModifiedPayload struct {

	// Event is the object event that triggered the request.
	Event events.Event
}

// ObjectModifyingPayload is the payload of an [ObjectModifying] request.
type ObjectModifyingPayload struct {

	// Event is the object event that triggered the request.
	Event events.Event
}

// ImperativePayload is the payload of an [Imperative] request.
type ImperativePayload struct {

	// Deep requests that nested containers are laid out first,
	// without bubbling back up.
	Deep bool

	// Overrides, if set, is used as the result by strategies built on
	// [StrategyBase] instead of computing one from the children.
	Overrides *Result
}

func (p *InitializationPayload) LayoutType() Types  { return Initialization }
func (p *AddedPayload) LayoutType() Types           { return Added }
func (p *RemovedPayload) LayoutType() Types         { return Removed }
func (p *ObjectModifiedPayload) LayoutType() Types  { return ObjectModified }
func (p *ObjectModifyingPayload) LayoutType() Types { return ObjectModifying }
func (p *ImperativePayload) LayoutType() Types      { return Imperative }

func (p *InitializationPayload) TargetObjects() []Object { return p.Targets }
func (p *AddedPayload) TargetObjects() []Object          { return p.Targets }
func (p *RemovedPayload) TargetObjects() []Object        { return p.Targets }

// Context is a request for a layout pass of a container.
type Context struct {

	// Payload is the type-specific part of the request, which determines its [Types].
	Payload Payload

	// Trigger is the symbolic cause of the request.
	Trigger Trigger

	// Target is the container to lay out.
	Target Container

	// Path is the chain of containers that this request has bubbled up
	// through, in order, ending with the direct child of Target.
	// It is empty for requests that did not bubble.
	Path []Container

	// Strategy, if set, is used for this pass instead of the
	// manager's strategy. In a [StrictContext] it is always the
	// strategy used by the pass.
	Strategy Strategy

	// NoBubbling prevents the request from bubbling up to the
	// parent container after the pass.
	NoBubbling bool

	// Values are free-form strategy-specific parameters, which are
	// passed on unchanged when the request bubbles.
	Values map[string]any
}

// Type returns the layout type of the request, from its payload.
func (c *Context) Type() Types {
	return c.Payload.LayoutType()
}

// Targets returns the objects involved in the request, which are only
// present for initialization, added and removed requests.
func (c *Context) Targets() []Object {
	if t, ok := c.Payload.(Targeted); ok {
		return t.TargetObjects()
	}
	return nil
}

// NewInitialization returns a new [Initialization] request for the given
// container with the given objects.
func NewInitialization(target Container, targets ...Object) *Context {
	return &Context{Payload: &InitializationPayload{Targets: targets}, Trigger: TriggerInitialization, Target: target}
}

// NewAdded returns a new [Added] request for the given container and added objects.
func NewAdded(target Container, targets ...Object) *Context {
	return &Context{Payload: &AddedPayload{Targets: targets}, Trigger: TriggerAdded, Target: target}
}

// NewRemoved returns a new [Removed] request for the given container and removed objects.
func NewRemoved(target Container, targets ...Object) *Context {
	return &Context{Payload: &RemovedPayload{Targets: targets}, Trigger: TriggerRemoved, Target: target}
}

// NewObjectEvent returns a new request for the given container caused by the
// given event on one of its children. Modified and TextChanged events make
// an [ObjectModified] request, and the continuous events make an
// [ObjectModifying] request.
func NewObjectEvent(target Container, ev events.Event) *Context {
	c := &Context{Trigger: TriggerFor(ev.Type()), Target: target}
	if ev.Type().IsModifying() {
		c.Payload = &ObjectModifyingPayload{Event: ev}
	} else {
		c.Payload = &ObjectModifiedPayload{Event: ev}
	}
	return c
}

// NewImperative returns a new [Imperative] request for the given container.
func NewImperative(target Container) *Context {
	return &Context{Payload: &ImperativePayload{}, Trigger: TriggerImperative, Target: target}
}

// StrictContext is a [Context] enriched by the [Manager] with the
// strategy information of the pass. It is what strategies, hooks and
// layout events receive.
type StrictContext struct {
	Context

	// PrevStrategy is the strategy used in the previous pass
	// of the manager, which is nil before the first one.
	PrevStrategy Strategy

	// StrategyChange is whether there was a previous strategy
	// and it is not the strategy of this pass.
	StrategyChange bool
}

// StopPropagation prevents this pass from bubbling up to the parent container.
func (c *StrictContext) StopPropagation() {
	c.NoBubbling = true
}

// Bubbles returns whether this pass will bubble up to the parent container.
func (c *StrictContext) Bubbles() bool {
	return !c.NoBubbling
}

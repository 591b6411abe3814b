// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"slices"

	"cogentcore.org/canvas/base/errors"
	"cogentcore.org/canvas/events"
	"cogentcore.org/canvas/layout"
	"cogentcore.org/canvas/math32"
)

var (
	// ErrCircular is returned when an object would become its own ancestor.
	ErrCircular = errors.New("scene: object cannot be added to itself or its descendants")

	// ErrDuplicate is returned when an object is already in the group.
	ErrDuplicate = errors.New("scene: object is already in the group")

	// ErrNotMember is returned when an object is not in the group.
	ErrNotMember = errors.New("scene: object is not in the group")
)

// Group is an object that owns child objects, which are positioned
// relative to the center of the group and share its transform.
// The geometry of the group is maintained by its layout [layout.Manager].
type Group struct {
	ObjectBase

	// Layout is the layout manager of the group.
	Layout *layout.Manager `copier:"-" json:"-" yaml:"-" toml:"-"`

	// Clip is the clip path of the group, if any, which is positioned
	// relative to the group unless it is absolute positioned.
	Clip Object `copier:"-" json:"-" yaml:"-" toml:"-"`

	// objects are the children of the group.
	objects []Object

	// initialization options, only used by NewGroup.
	position     *math32.Vector2
	objectsRelTo bool
	strategy     layout.Strategy
}

// GroupOption is an option for [NewGroup].
type GroupOption func(*Group)

// WithStrategy sets the layout strategy of the group.
func WithStrategy(strategy layout.Strategy) GroupOption {
	return func(g *Group) {
		g.strategy = strategy
	}
}

// WithManager sets the layout manager of the group.
func WithManager(m *layout.Manager) GroupOption {
	return func(g *Group) {
		g.Layout = m
	}
}

// WithPosition places the group at the given position instead of
// the one computed by the initial layout.
func WithPosition(pos math32.Vector2) GroupOption {
	return func(g *Group) {
		g.position = &pos
	}
}

// WithObjectsRelativeToGroup indicates that the positions of the objects
// are already relative to the group, so they are not shifted by the initial layout.
func WithObjectsRelativeToGroup() GroupOption {
	return func(g *Group) {
		g.objectsRelTo = true
	}
}

// WithOrigin sets the origin anchors of the group.
func WithOrigin(x, y math32.Origin) GroupOption {
	return func(g *Group) {
		g.OriginX, g.OriginY = x, y
	}
}

// WithName sets the name of the group.
func WithName(name string) GroupOption {
	return func(g *Group) {
		g.Name = name
	}
}

// WithClipPath sets the clip path of the group.
func WithClipPath(clip Object) GroupOption {
	return func(g *Group) {
		g.Clip = clip
	}
}

// NewGroup returns a new group of the given objects, which are given in
// the plane of the parent of the group, and runs its initial layout.
// Objects that belong to another group are first removed from it.
func NewGroup(objects []Object, opts ...GroupOption) (*Group, error) {
	g := &Group{}
	g.init(g)
	g.StrokeWidth = 0
	for _, opt := range opts {
		opt(g)
	}
	if g.Layout == nil {
		g.Layout = layout.NewManager(g.strategy)
	} else if g.strategy != nil {
		g.Layout.Strategy = g.strategy
	}
	if err := g.canEnter(objects...); err != nil {
		return nil, err
	}
	for _, obj := range objects {
		detach(obj)
		g.enter(obj, false)
	}
	g.objects = slices.Clone(objects)
	ctx := layout.NewInitialization(g, toLayout(objects)...)
	ip := ctx.Payload.(*layout.InitializationPayload)
	ip.Position = g.position
	ip.ObjectsRelativeToGroup = g.objectsRelTo
	g.Layout.PerformLayout(ctx)
	return g, nil
}

// GroupAll returns a new group of the given objects with the default
// layout strategy if there is more than one object, and otherwise the
// lone object itself. It returns nil if there are no objects.
func GroupAll(objects ...Object) (Object, error) {
	switch len(objects) {
	case 0:
		return nil, nil
	case 1:
		return objects[0], nil
	}
	g, err := NewGroup(objects)
	if err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Group) TypeName() string { return "group" }

// Objects returns the children of the group.
func (g *Group) Objects() []Object {
	return g.objects
}

// NumObjects returns the number of children of the group.
func (g *Group) NumObjects() int {
	return len(g.objects)
}

// Contains returns whether the given object is a direct child of the group,
// or any descendant if deep is true.
func (g *Group) Contains(obj Object, deep bool) bool {
	for p := obj.AsObjectBase().group; p != nil; p = p.group {
		if p == g {
			return true
		}
		if !deep {
			return false
		}
	}
	return false
}

// Children returns the children of the group as layout objects.
func (g *Group) Children() []layout.Object {
	return toLayout(g.objects)
}

// ClipPath returns the clip path of the group, if any.
func (g *Group) ClipPath() layout.Object {
	if g.Clip == nil {
		return nil
	}
	return g.Clip
}

// LayoutManager returns the layout manager of the group.
func (g *Group) LayoutManager() *layout.Manager {
	return g.Layout
}

// LayoutBefore forwards the start of a layout pass to the canvas.
func (g *Group) LayoutBefore(ctx *layout.StrictContext) {
	if c := g.Canvas(); c != nil {
		c.Emit(&layout.Event{Base: events.Base{Typ: events.ObjectLayoutBefore, Src: g}, Context: ctx})
	}
}

// LayoutAfter forwards the end of a layout pass to the canvas.
func (g *Group) LayoutAfter(ctx *layout.StrictContext, result *layout.Computed) {
	if c := g.Canvas(); c != nil {
		c.Emit(&layout.Event{Base: events.Base{Typ: events.ObjectLayout, Src: g}, Context: ctx, Result: result})
	}
}

// InvalidateCoords marks the cached bounding boxes of the group
// and all of its descendants as stale.
func (g *Group) InvalidateCoords() {
	g.ObjectBase.InvalidateCoords()
	for _, obj := range g.objects {
		obj.InvalidateCoords()
	}
}

// TriggerLayout runs an imperative layout of the group. The payload may be nil.
func (g *Group) TriggerLayout(payload *layout.ImperativePayload) {
	ctx := layout.NewImperative(g)
	if payload != nil {
		ctx.Payload = payload
	}
	g.Layout.PerformLayout(ctx)
}

// Add adds the given objects to the end of the group, keeping their
// placement on the canvas, and lays out the group.
func (g *Group) Add(objects ...Object) error {
	return g.Insert(len(g.objects), objects...)
}

// Insert inserts the given objects into the group at the given index,
// keeping their placement on the canvas, and lays out the group.
// Objects that belong to another group or the canvas are first removed from it.
func (g *Group) Insert(index int, objects ...Object) error {
	if index < 0 || index > len(g.objects) {
		return fmt.Errorf("scene: insert index %d out of range [0, %d]", index, len(g.objects))
	}
	if err := g.canEnter(objects...); err != nil {
		return err
	}
	if len(objects) == 0 {
		return nil
	}
	for _, obj := range objects {
		detach(obj)
	}
	for _, obj := range objects {
		g.enter(obj, true)
	}
	g.objects = slices.Insert(g.objects, index, objects...)
	for _, obj := range objects {
		g.Emit(&events.Base{Typ: events.Added, Src: g, Data: obj})
	}
	g.Layout.PerformLayout(layout.NewAdded(g, toLayout(objects)...))
	return nil
}

// Remove removes the given objects from the group, keeping their placement
// on the canvas, and lays out the group. It returns [ErrNotMember] if any
// of the objects is not in the group, in which case nothing is removed.
func (g *Group) Remove(objects ...Object) error {
	for _, obj := range objects {
		if obj.AsObjectBase().group != g {
			return fmt.Errorf("%w: %v", ErrNotMember, obj)
		}
	}
	if len(objects) == 0 {
		return nil
	}
	g.exitAll(objects)
	g.Layout.PerformLayout(layout.NewRemoved(g, toLayout(objects)...))
	return nil
}

// exitAll removes the given children without layout.
func (g *Group) exitAll(objects []Object) {
	for _, obj := range objects {
		g.exit(obj)
		g.objects = slices.DeleteFunc(g.objects, func(o Object) bool { return o == obj })
		g.Emit(&events.Base{Typ: events.Removed, Src: g, Data: obj})
	}
}

// Dispose removes all subscriptions of the layout manager of the group,
// for when the group is no longer used.
func (g *Group) Dispose() {
	g.Layout.Dispose()
}

// canEnter returns an error if any of the given objects cannot be
// added to the group.
func (g *Group) canEnter(objects ...Object) error {
	for i, obj := range objects {
		if obj == Object(g) {
			return fmt.Errorf("%w: %v", ErrCircular, obj)
		}
		if og, ok := obj.(*Group); ok && og.Contains(g, true) {
			return fmt.Errorf("%w: %v", ErrCircular, obj)
		}
		if obj.AsObjectBase().group == g || slices.Contains(objects[:i], obj) {
			return fmt.Errorf("%w: %v", ErrDuplicate, obj)
		}
	}
	return nil
}

// enter makes the group the parent of the given object. If removeParentTransform
// is true, the position of the object is converted from the plane of the canvas
// into the plane of the group, so that it stays in place.
func (g *Group) enter(obj Object, removeParentTransform bool) {
	ob := obj.AsObjectBase()
	if removeParentTransform {
		ob.SetTransform(g.TransformMatrix().Inverse().Mul(obj.TransformMatrix()))
	}
	ob.group = g
	obj.InvalidateCoords()
}

// exit removes the given object from the group, converting its position
// from the plane of the group into the plane of the canvas.
func (g *Group) exit(obj Object) {
	ob := obj.AsObjectBase()
	xf := obj.TransformMatrix()
	ob.group = nil
	ob.SetTransform(xf)
	obj.InvalidateCoords()
}

// detach removes the given object from its group with layout,
// or from its canvas, if any.
func detach(obj Object) {
	ob := obj.AsObjectBase()
	if ob.group != nil {
		errors.Log(ob.group.Remove(obj))
	} else if ob.canvas != nil {
		ob.canvas.Remove(obj)
	}
}

func toLayout(objects []Object) []layout.Object {
	lo := make([]layout.Object, len(objects))
	for i, obj := range objects {
		lo[i] = obj
	}
	return lo
}

// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"cogentcore.org/canvas/events"
	"cogentcore.org/canvas/layout"
	"cogentcore.org/canvas/math32"
	"github.com/google/uuid"
)

// Object is the interface for all scene objects.
type Object interface {
	layout.Object

	// AsObjectBase returns the [ObjectBase] for our object, which gives
	// access to all the base-level data and methods
	// without requiring interface methods.
	AsObjectBase() *ObjectBase

	// TypeName returns the name of the type of object (e.g., "rect", "group").
	TypeName() string

	// InvalidateCoords marks any cached bounding box of the object,
	// and of its descendants, as stale.
	InvalidateCoords()
}

// ObjectBase is the base type for all scene objects.
// It implements the [Object] interface and has the geometry
// that is common to all objects: a position at the origin anchors,
// an untransformed size, and the scale, rotation, skew and flip
// transforms that are applied around the center of the object.
type ObjectBase struct {

	// ID is the unique identifier of the object.
	ID string `json:"id" yaml:"id" toml:"id"`

	// Name is an optional user-facing name of the object.
	Name string `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`

	// Left is the horizontal position of the object at OriginX,
	// in the coordinate plane of its parent.
	Left float32 `json:"left" yaml:"left" toml:"left"`

	// Top is the vertical position of the object at OriginY,
	// in the coordinate plane of its parent.
	Top float32 `json:"top" yaml:"top" toml:"top"`

	// Width is the untransformed width of the object.
	Width float32 `json:"width" yaml:"width" toml:"width"`

	// Height is the untransformed height of the object.
	Height float32 `json:"height" yaml:"height" toml:"height"`

	// ScaleX is the horizontal scale factor.
	ScaleX float32 `json:"scaleX" yaml:"scaleX" toml:"scaleX"`

	// ScaleY is the vertical scale factor.
	ScaleY float32 `json:"scaleY" yaml:"scaleY" toml:"scaleY"`

	// Angle is the rotation of the object around its center, in degrees.
	Angle float32 `json:"angle" yaml:"angle" toml:"angle"`

	// SkewX is the horizontal skew angle, in degrees.
	SkewX float32 `json:"skewX" yaml:"skewX" toml:"skewX"`

	// SkewY is the vertical skew angle, in degrees.
	SkewY float32 `json:"skewY" yaml:"skewY" toml:"skewY"`

	// FlipX mirrors the object horizontally.
	FlipX bool `json:"flipX" yaml:"flipX" toml:"flipX"`

	// FlipY mirrors the object vertically.
	FlipY bool `json:"flipY" yaml:"flipY" toml:"flipY"`

	// OriginX is the horizontal anchor that Left refers to.
	OriginX math32.Origin `json:"originX" yaml:"originX" toml:"originX"`

	// OriginY is the vertical anchor that Top refers to.
	OriginY math32.Origin `json:"originY" yaml:"originY" toml:"originY"`

	// StrokeWidth is the width of the outline of the object,
	// which adds to its extent.
	StrokeWidth float32 `json:"strokeWidth" yaml:"strokeWidth" toml:"strokeWidth"`

	// Absolute is whether the object is positioned independently of
	// any group, which applies to clip paths.
	Absolute bool `json:"absolutePositioned,omitempty" yaml:"absolutePositioned,omitempty" toml:"absolutePositioned,omitempty"`

	// Dirty is whether the object needs to be redrawn.
	Dirty bool `copier:"-" json:"-" yaml:"-" toml:"-"`

	// this is the object that embeds this base.
	this Object

	// group is the group that this object belongs to, if any.
	group *Group

	// canvas is the canvas that this object is a top-level object of, if any.
	canvas *Canvas

	// listeners are the event listeners of the object.
	listeners events.Listeners

	// bounds is the cached absolute bounding box of the object.
	bounds math32.Box2

	// boundsValid is whether bounds is current.
	boundsValid bool
}

// init initializes the base with default geometry for the given object.
func (ob *ObjectBase) init(this Object) {
	ob.this = this
	if ob.ID == "" {
		ob.ID = uuid.NewString()
	}
	ob.ScaleX = 1
	ob.ScaleY = 1
	ob.Dirty = true
}

func (ob *ObjectBase) AsObjectBase() *ObjectBase { return ob }

func (ob *ObjectBase) String() string {
	name := ob.Name
	if name == "" && len(ob.ID) >= 8 {
		name = ob.ID[:8]
	}
	if ob.this == nil {
		return name
	}
	return ob.this.TypeName() + " " + name
}

// Label returns the name of the object, or its ID if it has no name.
func (ob *ObjectBase) Label() string {
	if ob.Name != "" {
		return ob.Name
	}
	return ob.ID
}

// Parent returns the group of the object as a [layout.Container].
func (ob *ObjectBase) Parent() layout.Container {
	if ob.group == nil {
		return nil
	}
	return ob.group
}

// Group returns the group that the object belongs to, if any.
func (ob *ObjectBase) Group() *Group {
	return ob.group
}

// Canvas returns the canvas that the object is on, through its
// top-level ancestor, if any.
func (ob *ObjectBase) Canvas() *Canvas {
	if ob.group != nil {
		return ob.group.Canvas()
	}
	return ob.canvas
}

// On adds a listener for the given event type, returning a function that removes it.
func (ob *ObjectBase) On(typ events.Types, fun func(ev events.Event)) (dispose func()) {
	return ob.listeners.Add(typ, fun)
}

// Emit sends the given event to the listeners of the object.
func (ob *ObjectBase) Emit(ev events.Event) {
	ob.listeners.Call(ev)
}

// Fire sends a new event of the given type from the object,
// as interactive controls do while transforming it.
func (ob *ObjectBase) Fire(typ events.Types) {
	ob.Emit(events.NewTrigger(typ, ob.this))
}

// Position returns the stored position of the object (Left, Top).
func (ob *ObjectBase) Position() math32.Vector2 {
	return math32.Vec2(ob.Left, ob.Top)
}

// SetPosition sets the stored position of the object (Left, Top).
func (ob *ObjectBase) SetPosition(pos math32.Vector2) {
	ob.Left = pos.X
	ob.Top = pos.Y
	ob.this.InvalidateCoords()
	ob.SetDirty()
}

// Origin returns the origin anchors of the object.
func (ob *ObjectBase) Origin() (x, y math32.Origin) {
	return ob.OriginX, ob.OriginY
}

// Size returns the untransformed width and height of the object.
func (ob *ObjectBase) Size() math32.Vector2 {
	return math32.Vec2(ob.Width, ob.Height)
}

// SetSize sets the untransformed width and height of the object.
func (ob *ObjectBase) SetSize(size math32.Vector2) {
	ob.Width = size.X
	ob.Height = size.Y
	ob.SetDirty()
}

// Dimensions returns the untransformed size of the object including its stroke.
func (ob *ObjectBase) Dimensions() math32.Vector2 {
	return math32.Vec2(ob.Width+ob.StrokeWidth, ob.Height+ob.StrokeWidth)
}

// Decomposition returns the transform parameters of the object,
// translated to its relative center.
func (ob *ObjectBase) Decomposition() math32.Decomposition {
	return math32.Decomposition{
		Translate: ob.RelativeCenter(),
		Angle:     ob.Angle,
		Scale:     math32.Vec2(ob.ScaleX, ob.ScaleY),
		SkewX:     ob.SkewX,
		SkewY:     ob.SkewY,
		FlipX:     ob.FlipX,
		FlipY:     ob.FlipY,
	}
}

// TransformedDimensions returns the size of the object including its
// stroke after scale and skew, but not rotation.
func (ob *ObjectBase) TransformedDimensions() math32.Vector2 {
	dim := ob.Dimensions()
	if ob.SkewX == 0 && ob.SkewY == 0 {
		return math32.Vec2(math32.Abs(dim.X*ob.ScaleX), math32.Abs(dim.Y*ob.ScaleY))
	}
	// no translation: the center depends on the transformed dimensions
	d := math32.Decomposition{
		Scale: math32.Vec2(ob.ScaleX, ob.ScaleY),
		SkewX: ob.SkewX,
		SkewY: ob.SkewY,
		FlipX: ob.FlipX,
		FlipY: ob.FlipY,
	}
	return d.DimensionsMatrix().TransformSize(dim)
}

// translateToGivenOrigin returns the point at the given "to" origin anchors
// for the given point at the "from" origin anchors, without rotation.
func (ob *ObjectBase) translateToGivenOrigin(pt math32.Vector2, fromX, fromY, toX, toY math32.Origin) math32.Vector2 {
	off := math32.Vec2(toX.Resolve()-fromX.Resolve(), toY.Resolve()-fromY.Resolve())
	if off.IsZero() {
		return pt
	}
	return pt.Add(ob.TransformedDimensions().Mul(off))
}

// TranslateToCenterPoint returns the center of the object for the
// given point at the given origin anchors, taking the rotation into account.
func (ob *ObjectBase) TranslateToCenterPoint(pt math32.Vector2, originX, originY math32.Origin) math32.Vector2 {
	p := ob.translateToGivenOrigin(pt, originX, originY, math32.OriginCenter, math32.OriginCenter)
	if ob.Angle != 0 {
		return p.Rot(math32.DegToRad(ob.Angle), pt)
	}
	return p
}

// TranslateToOriginPoint returns the point at the given origin anchors
// for the given center of the object, taking the rotation into account.
func (ob *ObjectBase) TranslateToOriginPoint(center math32.Vector2, originX, originY math32.Origin) math32.Vector2 {
	p := ob.translateToGivenOrigin(center, math32.OriginCenter, math32.OriginCenter, originX, originY)
	if ob.Angle != 0 {
		return p.Rot(math32.DegToRad(ob.Angle), center)
	}
	return p
}

// RelativeCenter returns the center of the object in the plane of its parent.
func (ob *ObjectBase) RelativeCenter() math32.Vector2 {
	return ob.TranslateToCenterPoint(ob.Position(), ob.OriginX, ob.OriginY)
}

// CenterPoint returns the center of the object in the plane of the canvas.
func (ob *ObjectBase) CenterPoint() math32.Vector2 {
	c := ob.RelativeCenter()
	if ob.group != nil {
		return ob.group.TransformMatrix().MulVector2AsPoint(c)
	}
	return c
}

// SetPositionByOrigin sets the position of the object so that its point
// at the given origin anchors is at pos, in the plane of its parent.
func (ob *ObjectBase) SetPositionByOrigin(pos math32.Vector2, originX, originY math32.Origin) {
	center := ob.TranslateToCenterPoint(pos, originX, originY)
	ob.SetPosition(ob.TranslateToOriginPoint(center, ob.OriginX, ob.OriginY))
}

// OwnMatrix returns the transform of the object relative to its parent.
func (ob *ObjectBase) OwnMatrix() math32.Matrix2 {
	return ob.Decomposition().Matrix()
}

// TransformMatrix returns the transform of the object up to the canvas.
func (ob *ObjectBase) TransformMatrix() math32.Matrix2 {
	own := ob.OwnMatrix()
	if ob.group != nil {
		return ob.group.TransformMatrix().Mul(own)
	}
	return own
}

// SetTransform sets the scale, rotation, skew and position of the object
// so that its own matrix is the given matrix. Flips are absorbed into the
// other parameters.
func (ob *ObjectBase) SetTransform(m math32.Matrix2) {
	d := m.Decompose()
	ob.FlipX = false
	ob.FlipY = false
	ob.ScaleX = d.Scale.X
	ob.ScaleY = d.Scale.Y
	ob.SkewX = d.SkewX
	ob.SkewY = d.SkewY
	ob.Angle = d.Angle
	ob.SetPositionByOrigin(d.Translate, math32.OriginCenter, math32.OriginCenter)
}

// AbsolutePositioned returns whether the object is positioned independently of any group.
func (ob *ObjectBase) AbsolutePositioned() bool {
	return ob.Absolute
}

// BoundingRect returns the axis-aligned bounding box of the object
// in the plane of the canvas, including its stroke.
func (ob *ObjectBase) BoundingRect() math32.Box2 {
	if !ob.boundsValid {
		ob.SetCoords()
	}
	return ob.bounds
}

// SetCoords recomputes the cached absolute bounding box of the object.
func (ob *ObjectBase) SetCoords() {
	xf := ob.TransformMatrix()
	center := math32.Vec2(xf.X0, xf.Y0)
	ob.bounds = math32.B2FromCenterSize(center, xf.TransformSize(ob.Dimensions()))
	ob.boundsValid = true
}

// InvalidateCoords marks the cached bounding box of the object as stale.
func (ob *ObjectBase) InvalidateCoords() {
	ob.boundsValid = false
}

// SetDirty marks the object and its ancestors as needing to be redrawn.
func (ob *ObjectBase) SetDirty() {
	ob.Dirty = true
	for g := ob.group; g != nil; g = g.group {
		g.Dirty = true
	}
}

// Rect is a rectangle leaf object.
type Rect struct {
	ObjectBase

	// Radius has the radii of the rounded corners.
	Radius math32.Vector2 `json:"radius" yaml:"radius" toml:"radius"`
}

// NewRect returns a new [Rect] with its top-left corner at the given
// position and the given size.
func NewRect(left, top, width, height float32) *Rect {
	r := &Rect{}
	r.init(r)
	r.Left, r.Top = left, top
	r.Width, r.Height = width, height
	return r
}

func (r *Rect) TypeName() string { return "rect" }

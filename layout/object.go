// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"cogentcore.org/canvas/events"
	"cogentcore.org/canvas/math32"
)

// Object is the view of a scene object that the layout system needs:
// its placement within its container and its events.
// Object implementations must be pointer types, as objects are
// compared and tracked by identity.
type Object interface {
	events.Observable

	// Parent returns the container this object currently belongs to,
	// or nil if it is a top-level object. It must return an untyped
	// nil interface in the latter case.
	Parent() Container

	// Position returns the stored relative position (left, top) of the
	// object at its own origin, in the coordinate plane of its parent.
	Position() math32.Vector2

	// SetPosition sets the stored relative position of the object.
	SetPosition(pos math32.Vector2)

	// RelativeCenter returns the center of the object
	// in the coordinate plane of its parent.
	RelativeCenter() math32.Vector2

	// Dimensions returns the untransformed size of the object,
	// including any stroke that contributes to its extent.
	Dimensions() math32.Vector2

	// OwnMatrix returns the transform of the object relative to its parent:
	// translation to its relative center, rotation, scale and skew.
	OwnMatrix() math32.Matrix2

	// TransformMatrix returns the full transform of the object up to
	// the root of the scene, including all of its parents.
	TransformMatrix() math32.Matrix2

	// AbsolutePositioned returns whether the object is positioned
	// independently of any container, which is relevant for clip paths.
	AbsolutePositioned() bool
}

// Container is a scene object that owns child objects and is laid out
// by a [Manager]. The manager calls into it to read and update geometry
// and to notify it around each layout pass.
type Container interface {
	Object

	// Children returns the current direct children of the container.
	Children() []Object

	// ClipPath returns the clip path object attached to the container, if any.
	ClipPath() Object

	// Origin returns the origin anchors of the container on both axes,
	// which its stored position refers to.
	Origin() (x, y math32.Origin)

	// Size returns the untransformed width and height of the container.
	Size() math32.Vector2

	// SetSize sets the untransformed width and height of the container.
	SetSize(size math32.Vector2)

	// SetPositionByOrigin sets the position of the container so that
	// its point at the given origin anchors is at pos, in the plane of its parent.
	SetPositionByOrigin(pos math32.Vector2, originX, originY math32.Origin)

	// InvalidateCoords marks any cached absolute coordinates and bounds
	// of the container as stale.
	InvalidateCoords()

	// SetDirty marks the container as needing to be redrawn.
	SetDirty()

	// LayoutManager returns the layout manager of the container, if any.
	LayoutManager() *Manager

	// LayoutBefore is called at the start of every layout pass that is
	// not dropped, after subscriptions have been updated.
	LayoutBefore(ctx *StrictContext)

	// LayoutAfter is called at the end of every layout pass that is not
	// dropped, before bubbling. The result is nil when the pass did not
	// produce one.
	LayoutAfter(ctx *StrictContext, result *Computed)
}

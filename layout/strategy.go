// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"cogentcore.org/canvas/math32"
)

// Result is the outcome of a layout strategy computation.
type Result struct {

	// Center is the next center of the container,
	// in the coordinate plane of its parent.
	Center math32.Vector2

	// Size is the next untransformed size of the container.
	Size math32.Vector2

	// Correction is added to the displacement of the children
	// in the coordinate plane of the parent, before it is converted
	// into the plane of the container.
	Correction math32.Vector2

	// RelativeCorrection is added to the displacement of the children
	// in the plane of the container.
	RelativeCorrection math32.Vector2
}

// Computed is a [Result] completed by the [Manager] with the
// displacement of the children.
type Computed struct {
	Result

	// PrevCenter is the center of the container before the pass,
	// which is zero for initialization.
	PrevCenter math32.Vector2

	// NextCenter is the center of the container after the pass.
	NextCenter math32.Vector2

	// Offset is the vector added to the stored position of every
	// direct child, in the plane of the container.
	Offset math32.Vector2
}

// Strategy is a pluggable policy that computes the geometry of a container.
// Strategies are compared by identity to detect strategy changes,
// so implementations must be non-zero-size pointer types.
type Strategy interface {

	// ShouldPerformLayout returns whether the pass should compute
	// a new result at all.
	ShouldPerformLayout(ctx *StrictContext) bool

	// ShouldLayoutClipPath returns whether the clip path of the
	// container should be shifted along with the children.
	ShouldLayoutClipPath(ctx *StrictContext) bool

	// CalcLayoutResult computes the result for the given children,
	// or returns nil if there is none.
	CalcLayoutResult(ctx *StrictContext, children []Object) *Result
}

// StrategyBase provides the default behavior of a [Strategy],
// computing the result from the bounding box of the children.
// It is meant to be embedded in concrete strategies.
type StrategyBase struct {

	// Name is the name of the strategy, used in traces.
	Name string
}

// ShouldPerformLayout returns true for initialization and imperative
// requests, and when the strategy changed since the last pass.
func (sb *StrategyBase) ShouldPerformLayout(ctx *StrictContext) bool {
	tp := ctx.Type()
	return tp == Initialization || tp == Imperative || ctx.StrategyChange
}

// ShouldLayoutClipPath returns true except for initialization.
func (sb *StrategyBase) ShouldLayoutClipPath(ctx *StrictContext) bool {
	return ctx.Type() != Initialization
}

// CalcLayoutResult returns [StrategyBase.CalcBoundingBox] of the children.
func (sb *StrategyBase) CalcLayoutResult(ctx *StrictContext, children []Object) *Result {
	return sb.CalcBoundingBox(ctx, children)
}

// CalcBoundingBox returns the result that fits the given objects.
// The overrides of an imperative request take precedence.
// It returns nil if there are no objects.
// For initialization the objects are not yet relative to the container,
// so the center of their bounds is already in the plane of its parent.
// Otherwise the center is converted from the plane of the container
// into the plane of its parent.
func (sb *StrategyBase) CalcBoundingBox(ctx *StrictContext, objects []Object) *Result {
	if ip, ok := ctx.Payload.(*ImperativePayload); ok && ip.Overrides != nil {
		res := *ip.Overrides
		return &res
	}
	if len(objects) == 0 {
		return nil
	}
	bb := math32.B2Empty()
	for _, obj := range objects {
		bb.ExpandByBox(ObjectBounds(ctx.Target, obj))
	}
	center := bb.Center()
	if ctx.Type() != Initialization {
		center = ctx.Target.OwnMatrix().MulVector2AsPoint(center)
	}
	return &Result{Center: center, Size: bb.Size()}
}

func (sb *StrategyBase) String() string {
	return sb.Name
}

// ObjectBounds returns the bounding box of the given object in the plane
// of the given container, including its scale, rotation, skew and stroke.
// Objects that belong to another container are first brought into the
// plane of the target container.
func ObjectBounds(target Container, obj Object) math32.Box2 {
	center := obj.RelativeCenter()
	xf := obj.OwnMatrix().WithoutTranslation()
	if p := obj.Parent(); p != nil && p != target {
		pc := math32.PlaneChange(p.TransformMatrix(), target.TransformMatrix())
		center = pc.MulVector2AsPoint(center)
		xf = pc.WithoutTranslation().Mul(xf)
	}
	return math32.B2FromCenterSize(center, xf.TransformSize(obj.Dimensions()))
}

// FitContent is the default [Strategy], which resizes the container
// to fit its children on every pass.
type FitContent struct {
	StrategyBase
}

// NewFitContent returns a new [FitContent] strategy.
func NewFitContent() *FitContent {
	return &FitContent{StrategyBase{Name: "fit-content"}}
}

// ShouldPerformLayout always returns true.
func (fc *FitContent) ShouldPerformLayout(ctx *StrictContext) bool {
	return true
}

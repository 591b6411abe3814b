// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package layout recomputes the geometry of scene containers after
// structural or geometric changes to their children.
//
// A [Manager] is owned by each container. It runs the layout protocol
// for every [Context] request: it updates the subscriptions to child
// events, asks its [Strategy] for a [Result], shifts the children so that
// their absolute placement is unchanged, updates the position and size of
// the container, and bubbles the request up to the parent container.
package layout

import (
	"log/slog"
	"slices"
	"time"

	"cogentcore.org/canvas/events"
	"cogentcore.org/canvas/math32"
)

// Manager runs layout passes for one container, using a [Strategy]
// to compute the geometry. It also subscribes to the events of the
// children of the container, so that changes to them trigger layout.
// A Manager must only be used with one container.
type Manager struct {

	// Strategy is the strategy used for layout passes that do not
	// specify one. It can be changed at any point, which makes the
	// next pass a strategy change.
	Strategy Strategy

	// subscriptions has the event disposers for each subscribed child.
	subscriptions map[Object][]func()

	// prevStrategy is the strategy of the previous pass.
	prevStrategy Strategy

	// firstLayoutDone is whether the initialization pass has happened.
	firstLayoutDone bool
}

// NewManager returns a new [Manager] using the given strategy,
// or [FitContent] if it is nil.
func NewManager(strategy Strategy) *Manager {
	if strategy == nil {
		strategy = NewFitContent()
	}
	return &Manager{Strategy: strategy, subscriptions: map[Object][]func(){}}
}

// FirstLayoutDone returns whether the initialization pass has happened,
// which gates all other layout requests.
func (m *Manager) FirstLayoutDone() bool {
	return m.firstLayoutDone
}

// IsSubscribed returns whether the manager is listening to
// the events of the given object.
func (m *Manager) IsSubscribed(obj Object) bool {
	_, ok := m.subscriptions[obj]
	return ok
}

// NumSubscriptions returns the number of objects the manager is listening to.
func (m *Manager) NumSubscriptions() int {
	return len(m.subscriptions)
}

// PerformLayout runs the layout protocol for the given request.
// Requests other than initialization are dropped, with no hooks,
// events or bubbling, until the first initialization pass.
func (m *Manager) PerformLayout(ctx *Context) {
	st := time.Now()
	tp := ctx.Type()
	if !m.firstLayoutDone && tp != Initialization {
		if DebugSettings.LayoutTrace {
			slog.Info("layout dropped before initialization", "target", ctx.Target, "type", tp, "trigger", ctx.Trigger)
		}
		metrics.observePass(tp, outcomeDropped, st)
		return
	}
	sc := m.strictContext(ctx)
	if DebugSettings.LayoutTrace {
		slog.Info("layout", "target", sc.Target, "type", tp, "trigger", sc.Trigger, "strategy", sc.Strategy, "strategyChange", sc.StrategyChange, "depth", len(sc.Path))
	}
	m.onBeforeLayout(sc)
	res, commit := m.layoutResult(sc)
	outcome := outcomeSkipped
	if res != nil {
		outcome = outcomeFallback
		if commit {
			outcome = outcomeCommitted
			m.commitLayout(sc, res)
		}
	}
	m.onAfterLayout(sc, res)
	m.prevStrategy = sc.Strategy
	metrics.observePass(tp, outcome, st)
}

// strictContext returns the strict context for the given request.
func (m *Manager) strictContext(ctx *Context) *StrictContext {
	sc := &StrictContext{Context: *ctx, PrevStrategy: m.prevStrategy}
	if sc.Strategy == nil {
		sc.Strategy = m.Strategy
	}
	sc.StrategyChange = m.prevStrategy != nil && sc.Strategy != m.prevStrategy
	return sc
}

// onBeforeLayout updates subscriptions, trickles deep imperative requests
// down to nested containers, and notifies the container.
func (m *Manager) onBeforeLayout(sc *StrictContext) {
	target := sc.Target
	switch sc.Type() {
	case Initialization, Added:
		for _, obj := range sc.Targets() {
			// targets of bubbled requests are not our children
			if obj.Parent() == target {
				m.subscribe(obj, target)
			}
		}
	case Removed:
		for _, obj := range sc.Targets() {
			m.unsubscribe(obj)
		}
	case Imperative:
		if ip := sc.Payload.(*ImperativePayload); ip.Deep {
			for _, obj := range target.Children() {
				ct, ok := obj.(Container)
				if !ok {
					continue
				}
				if cm := ct.LayoutManager(); cm != nil {
					cm.PerformLayout(&Context{Payload: sc.Payload, Trigger: sc.Trigger, Target: ct, NoBubbling: true, Values: sc.Values})
				}
			}
		}
	}
	target.LayoutBefore(sc)
	target.Emit(&Event{Base: events.Base{Typ: events.LayoutBefore, Src: target}, Context: sc})
}

// layoutResult returns the computed result of the pass, and whether it
// should be committed. Before the first pass is done, a result that
// leaves the container unchanged is returned when the strategy has
// none, which is reported but not committed.
func (m *Manager) layoutResult(sc *StrictContext) (*Computed, bool) {
	if sc.Strategy.ShouldPerformLayout(sc) {
		if res := m.computeResult(sc); res != nil {
			return res, true
		}
	}
	if !m.firstLayoutDone {
		center := sc.Target.RelativeCenter()
		return &Computed{Result: Result{Center: center, Size: sc.Target.Size()}, PrevCenter: center, NextCenter: center}, false
	}
	return nil, false
}

// computeResult asks the strategy for a result, and computes the
// displacement of the children that keeps their absolute placement.
func (m *Manager) computeResult(sc *StrictContext) *Computed {
	target := sc.Target
	res := sc.Strategy.CalcLayoutResult(sc, target.Children())
	if res == nil {
		return nil
	}
	cr := &Computed{Result: *res, NextCenter: res.Center}
	ip, isInit := sc.Payload.(*InitializationPayload)
	if isInit && ip.ObjectsRelativeToGroup {
		return cr
	}
	mtx := math32.Identity2()
	if !isInit {
		cr.PrevCenter = target.RelativeCenter()
		mtx = target.OwnMatrix().Inverse()
	}
	delta := cr.PrevCenter.Sub(cr.NextCenter).Add(res.Correction)
	cr.Offset = mtx.MulVector2AsVector(delta).Add(res.RelativeCorrection)
	if DebugSettings.LayoutTrace {
		slog.Info("layout result", "target", target, "prevCenter", cr.PrevCenter, "nextCenter", cr.NextCenter, "size", cr.Size, "offset", cr.Offset)
	}
	return cr
}

// commitLayout applies the computed result to the container and its children.
func (m *Manager) commitLayout(sc *StrictContext, cr *Computed) {
	target := sc.Target
	target.SetSize(cr.Size)
	m.layoutObjects(sc, cr)
	if ip, ok := sc.Payload.(*InitializationPayload); ok {
		ox, oy := target.Origin()
		pos := cr.NextCenter.Add(cr.Size.Mul(math32.ResolveOrigins(ox, oy)))
		if ip.Position != nil {
			pos = *ip.Position
		}
		target.SetPosition(pos)
	} else {
		// the center moves when the size changes with a non-center origin
		if cr.NextCenter != target.RelativeCenter() {
			target.SetPositionByOrigin(cr.NextCenter, math32.OriginCenter, math32.OriginCenter)
		}
		target.InvalidateCoords()
	}
	target.SetDirty()
}

// layoutObjects shifts the direct children, and the clip path
// when it is relative to the container, by the offset.
func (m *Manager) layoutObjects(sc *StrictContext, cr *Computed) {
	target := sc.Target
	for _, obj := range target.Children() {
		if obj.Parent() == target {
			m.layoutObject(obj, cr.Offset)
		}
	}
	if cp := target.ClipPath(); cp != nil && !cp.AbsolutePositioned() && sc.Strategy.ShouldLayoutClipPath(sc) {
		m.layoutObject(cp, cr.Offset)
	}
}

func (m *Manager) layoutObject(obj Object, offset math32.Vector2) {
	if offset.IsZero() {
		return
	}
	pos := obj.Position().Add(offset)
	if DebugSettings.LayoutTraceDetail {
		slog.Info("layout object", "object", obj, "position", pos)
	}
	obj.SetPosition(pos)
}

// onAfterLayout records the first pass, notifies the container,
// and bubbles the request up to the parent container.
func (m *Manager) onAfterLayout(sc *StrictContext, cr *Computed) {
	target := sc.Target
	m.firstLayoutDone = true
	target.LayoutAfter(sc, cr)
	target.Emit(&Event{Base: events.Base{Typ: events.Layout, Src: target}, Context: sc, Result: cr})
	if !sc.Bubbles() {
		return
	}
	parent := target.Parent()
	if parent == nil {
		return
	}
	pm := parent.LayoutManager()
	if pm == nil {
		return
	}
	pm.PerformLayout(&Context{
		Payload: sc.Payload,
		Trigger: sc.Trigger,
		Target:  parent,
		Path:    append(slices.Clone(sc.Path), target),
		Values:  sc.Values,
	})
}

// subscribe registers layout requests for the trigger events of the
// given child of the given container, replacing any prior subscription.
func (m *Manager) subscribe(obj Object, target Container) {
	m.unsubscribe(obj)
	ds := make([]func(), 0, len(events.TriggerTypes))
	for _, tp := range events.TriggerTypes {
		ds = append(ds, obj.On(tp, func(ev events.Event) {
			m.PerformLayout(NewObjectEvent(target, ev))
		}))
	}
	if m.subscriptions == nil {
		m.subscriptions = map[Object][]func(){}
	}
	m.subscriptions[obj] = ds
	metrics.addSubscriptions(1)
}

// unsubscribe removes any subscription to the given object.
func (m *Manager) unsubscribe(obj Object) {
	ds, ok := m.subscriptions[obj]
	if !ok {
		return
	}
	for _, d := range ds {
		d()
	}
	delete(m.subscriptions, obj)
	metrics.addSubscriptions(-1)
}

// Dispose removes all subscriptions of the manager to the children
// of its container. The manager can still be used afterwards.
func (m *Manager) Dispose() {
	for obj := range m.subscriptions {
		m.unsubscribe(obj)
	}
}

// Event is sent by a container at the start and end of every layout pass
// that is not dropped, with type [events.LayoutBefore] and [events.Layout].
type Event struct {
	events.Base

	// Context is the strict context of the pass.
	Context *StrictContext

	// Result is the result of the pass, which is only set for [events.Layout].
	// It is nil when the pass did not produce one, which is distinct
	// from a result that leaves the container unchanged.
	Result *Computed
}

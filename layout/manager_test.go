// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout_test

import (
	"bytes"
	"log/slog"
	"testing"

	"cogentcore.org/canvas/base/tolassert"
	"cogentcore.org/canvas/events"
	. "cogentcore.org/canvas/layout"
	"cogentcore.org/canvas/math32"
	"cogentcore.org/canvas/scene"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// declining is a strategy that never has a result.
type declining struct {
	StrategyBase
}

func (ds *declining) CalcLayoutResult(ctx *StrictContext, children []Object) *Result {
	return nil
}

func twoRects() (*scene.Rect, *scene.Rect) {
	return scene.NewRect(-100, -50, 100, 100), scene.NewRect(0, -50, 100, 100)
}

func newGroup(t *testing.T, objects ...scene.Object) *scene.Group {
	t.Helper()
	g, err := scene.NewGroup(objects)
	require.NoError(t, err)
	return g
}

// recorder records the layout events of a group.
type recorder struct {
	before []*StrictContext
	after  []*Event
}

func record(g *scene.Group) *recorder {
	rc := &recorder{}
	g.On(events.LayoutBefore, func(ev events.Event) {
		rc.before = append(rc.before, ev.(*Event).Context)
	})
	g.On(events.Layout, func(ev events.Event) {
		rc.after = append(rc.after, ev.(*Event))
	})
	return rc
}

func TestManagerGate(t *testing.T) {
	r1, r2 := twoRects()
	g := newGroup(t, r1, r2)
	rc := record(g)

	m := NewManager(nil)
	assert.False(t, m.FirstLayoutDone())
	for _, ctx := range []*Context{NewAdded(g, r1), NewRemoved(g, r1), NewImperative(g), NewObjectEvent(g, events.NewTrigger(events.Modified, r1))} {
		m.PerformLayout(ctx)
	}
	assert.False(t, m.FirstLayoutDone())
	assert.Empty(t, rc.before)
	assert.Empty(t, rc.after)
	assert.Equal(t, 0, m.NumSubscriptions())

	m.PerformLayout(NewInitialization(g, r1, r2))
	assert.True(t, m.FirstLayoutDone())
	assert.Len(t, rc.before, 1)
	assert.Len(t, rc.after, 1)
	assert.Equal(t, 2, m.NumSubscriptions())

	m.PerformLayout(NewImperative(g))
	assert.True(t, m.FirstLayoutDone())
	assert.Len(t, rc.after, 2)
	m.Dispose()
}

func TestManagerFallback(t *testing.T) {
	r1, r2 := twoRects()
	g := newGroup(t, r1, r2)
	rc := record(g)
	g.Dirty = false
	size, center := g.Size(), g.RelativeCenter()

	m := NewManager(&declining{})
	m.PerformLayout(NewInitialization(g, r1, r2))
	assert.True(t, m.FirstLayoutDone())
	require.Len(t, rc.after, 1)
	res := rc.after[0].Result
	require.NotNil(t, res)
	assert.Equal(t, center, res.PrevCenter)
	assert.Equal(t, center, res.NextCenter)
	assert.True(t, res.Offset.IsZero())
	assert.Equal(t, size, res.Size)
	// reported but not committed
	assert.False(t, g.Dirty)

	// no result after the first layout is distinct from an unchanged one
	m.PerformLayout(NewImperative(g))
	require.Len(t, rc.after, 2)
	assert.Nil(t, rc.after[1].Result)
	assert.Len(t, rc.before, 2)
	m.Dispose()
}

func TestManagerFallbackPosition(t *testing.T) {
	r1, r2 := twoRects()
	g := newGroup(t, r1, r2)
	g.Dirty = false
	pos := g.Position()
	ctx := NewInitialization(g, r1, r2)
	ctx.Payload.(*InitializationPayload).Position = &math32.Vector2{X: 300, Y: 300}

	m := NewManager(&declining{})
	m.PerformLayout(ctx)
	assert.True(t, m.FirstLayoutDone())
	assert.Equal(t, pos, g.Position())
	assert.False(t, g.Dirty)
	m.Dispose()

	m = NewManager(nil)
	m.PerformLayout(ctx)
	assert.Equal(t, math32.Vec2(300, 300), g.Position())
	assert.True(t, g.Dirty)
	m.Dispose()
}

func TestManagerReinitialization(t *testing.T) {
	r1, r2 := twoRects()
	g := newGroup(t, r1, r2)
	rc := record(g)
	m := g.Layout
	require.True(t, m.FirstLayoutDone())
	c1, c2 := r1.CenterPoint(), r2.CenterPoint()

	m.PerformLayout(NewInitialization(g, r1, r2))
	assert.True(t, m.FirstLayoutDone())
	require.Len(t, rc.before, 1)
	require.Len(t, rc.after, 1)
	assert.Equal(t, Initialization, rc.after[0].Context.Type())
	require.NotNil(t, rc.after[0].Result)
	assert.True(t, rc.after[0].Result.Offset.IsZero())
	assert.Equal(t, 2, m.NumSubscriptions())
	assert.Equal(t, math32.Vec2(-100, -50), g.Position())
	assert.Equal(t, math32.Vec2(200, 100), g.Size())
	tolassert.EqualTol(t, c1.X, r1.CenterPoint().X, 0.01)
	tolassert.EqualTol(t, c2.X, r2.CenterPoint().X, 0.01)
}

func TestManagerNilResultBubbles(t *testing.T) {
	r1, r2 := twoRects()
	inner, err := scene.NewGroup([]scene.Object{r1, r2}, scene.WithStrategy(&declining{}))
	require.NoError(t, err)
	outer := newGroup(t, inner)
	rc := record(outer)

	r1.Fire(events.Modified)
	require.Len(t, rc.after, 1)
	assert.Equal(t, []Container{inner}, rc.after[0].Context.Path)
	assert.Equal(t, ObjectModified, rc.after[0].Context.Type())
}

func TestManagerStrategyChange(t *testing.T) {
	r1, r2 := twoRects()
	g := newGroup(t, r1, r2)
	rc := record(g)
	first := g.Layout.Strategy

	r1.Fire(events.Modified)
	require.Len(t, rc.before, 1)
	assert.False(t, rc.before[0].StrategyChange)
	assert.Same(t, first, rc.before[0].PrevStrategy)
	assert.Same(t, first, rc.before[0].Strategy)

	next := NewFitContent()
	g.Layout.Strategy = next
	r1.Fire(events.Modified)
	require.Len(t, rc.before, 2)
	assert.True(t, rc.before[1].StrategyChange)
	assert.Same(t, first, rc.before[1].PrevStrategy)
	assert.Same(t, next, rc.before[1].Strategy)

	r1.Fire(events.Modified)
	assert.False(t, rc.before[2].StrategyChange)

	// a context override counts as the strategy of the pass
	over := NewFitContent()
	ctx := NewImperative(g)
	ctx.Strategy = over
	g.Layout.PerformLayout(ctx)
	assert.True(t, rc.before[3].StrategyChange)
	assert.Same(t, over, rc.before[3].Strategy)
	r1.Fire(events.Modified)
	assert.True(t, rc.before[4].StrategyChange)
	assert.Same(t, next, rc.before[4].Strategy)
}

func TestStrategyBaseDecision(t *testing.T) {
	r1, r2 := twoRects()
	base := &StrategyBase{Name: "base"}
	g, err := scene.NewGroup([]scene.Object{r1, r2}, scene.WithStrategy(base))
	require.NoError(t, err)
	assert.Equal(t, math32.Vec2(200, 100), g.Size())
	rc := record(g)

	// the base strategy only runs on initialization,
	// imperative requests and strategy changes
	r1.Left -= 100
	r1.Fire(events.Modified)
	require.Len(t, rc.after, 1)
	assert.Nil(t, rc.after[0].Result)
	assert.Equal(t, math32.Vec2(200, 100), g.Size())

	g.Layout.Strategy = &StrategyBase{Name: "other"}
	r1.Fire(events.Modified)
	require.Len(t, rc.after, 2)
	require.NotNil(t, rc.after[1].Result)
	assert.Equal(t, math32.Vec2(300, 100), g.Size())

	g.TriggerLayout(nil)
	require.Len(t, rc.after, 3)
	assert.NotNil(t, rc.after[2].Result)
	assert.Equal(t, "other", g.Layout.Strategy.(*StrategyBase).String())
}

func TestManagerIdempotent(t *testing.T) {
	r1, r2 := twoRects()
	inner := newGroup(t, r1, r2)
	r3 := scene.NewRect(300, 0, 50, 50)
	outer := newGroup(t, inner, r3)
	outer.Angle = 30
	outer.InvalidateCoords()
	p1, p3, pi := r1.Position(), r3.Position(), inner.Position()
	po := outer.Position()

	rc := record(outer)
	for i := 0; i < 3; i++ {
		outer.TriggerLayout(&ImperativePayload{Deep: true})
	}
	require.Len(t, rc.after, 3)
	for _, ev := range rc.after {
		tolassert.EqualTol(t, 0, ev.Result.Offset.Length(), 0.01)
	}
	tolassert.EqualTol(t, 0, r1.Position().DistanceTo(p1), 0.01)
	tolassert.EqualTol(t, 0, r3.Position().DistanceTo(p3), 0.01)
	tolassert.EqualTol(t, 0, inner.Position().DistanceTo(pi), 0.01)
	tolassert.EqualTol(t, 0, outer.Position().DistanceTo(po), 0.01)
}

func TestObjectBounds(t *testing.T) {
	r1, r2 := twoRects()
	inner := newGroup(t, r1, r2)
	r3 := scene.NewRect(200, -50, 100, 100)
	outer := newGroup(t, inner, r3)

	bb := ObjectBounds(inner, r1)
	assert.Equal(t, math32.Vec2(-50, 0), bb.Center())
	assert.Equal(t, math32.Vec2(100, 100), bb.Size())

	// r1 is brought into the plane of outer
	bb = ObjectBounds(outer, r1)
	assert.Equal(t, math32.Vec2(-150, 0), bb.Center())
	assert.Equal(t, math32.Vec2(100, 100), bb.Size())

	r := scene.NewRect(0, 0, 100, 50)
	r.StrokeWidth = 2
	r.Angle = 90
	bb = ObjectBounds(outer, r)
	tolassert.EqualTol(t, 52, bb.Size().X, 0.01)
	tolassert.EqualTol(t, 102, bb.Size().Y, 0.01)
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	ms := EnableMetrics(reg)
	defer DisableMetrics()

	r1, r2 := twoRects()
	g := newGroup(t, r1, r2)
	m := NewManager(nil)
	m.PerformLayout(NewAdded(g, r1))
	r1.Fire(events.Moving)

	assert.Equal(t, 1.0, testutil.ToFloat64(ms.Passes.WithLabelValues("initialization", "committed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(ms.Passes.WithLabelValues("added", "dropped")))
	assert.Equal(t, 1.0, testutil.ToFloat64(ms.Passes.WithLabelValues("object_modifying", "committed")))
	assert.Equal(t, 2.0, testutil.ToFloat64(ms.Subscriptions))
	assert.Equal(t, 2, testutil.CollectAndCount(ms.Duration))

	g.Dispose()
	assert.Equal(t, 0.0, testutil.ToFloat64(ms.Subscriptions))
}

func TestLayoutTrace(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	DebugSettings.LayoutTrace = true
	DebugSettings.LayoutTraceDetail = true
	defer func() {
		slog.SetDefault(prev)
		DebugSettings.LayoutTrace = false
		DebugSettings.LayoutTraceDetail = false
	}()

	r1 := scene.NewRect(10, 10, 100, 100)
	newGroup(t, r1)
	r1.Left += 10
	r1.Fire(events.Modified)
	out := buf.String()
	assert.Contains(t, out, "msg=layout")
	assert.Contains(t, out, "type=initialization")
	assert.Contains(t, out, "trigger=modified")
	assert.Contains(t, out, `msg="layout result"`)
	assert.Contains(t, out, `msg="layout object"`)
}

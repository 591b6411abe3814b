// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sceneio

import (
	"bytes"
	"strings"
	"testing"

	"cogentcore.org/canvas/base/iox/yamlx"
	"cogentcore.org/canvas/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runFile(t *testing.T, filename string) (*scene.Canvas, *Snapshot, *Snapshot) {
	t.Helper()
	sc, err := Open(filename)
	require.NoError(t, err)
	c, err := sc.Build()
	require.NoError(t, err)
	before := TakeSnapshot(c)
	require.NoError(t, sc.Run(c))
	return c, before, TakeSnapshot(c)
}

func TestFormats(t *testing.T) {
	f, err := FormatFromFilename("a/b.yml")
	assert.NoError(t, err)
	assert.Equal(t, YAML, f)
	f, err = FormatFromFilename("b.JSON")
	assert.NoError(t, err)
	assert.Equal(t, JSON, f)
	_, err = FormatFromFilename("b.xml")
	assert.Error(t, err)

	assert.NoError(t, f.Set("toml"))
	assert.Equal(t, TOML, f)
	assert.Equal(t, "toml", f.String())
	assert.Equal(t, "format", f.Type())
	assert.Error(t, f.Set("csv"))
}

func TestTwoRects(t *testing.T) {
	c, before, after := runFile(t, "testdata/tworects.toml")

	g := before.Find("g")
	require.NotNil(t, g)
	assert.Equal(t, "group", g.Type)
	assert.Equal(t, float32(200), g.Width)
	assert.Equal(t, float32(100), g.Height)
	assert.Equal(t, float32(-100), g.Left)
	assert.Equal(t, float32(-50), g.Top)
	assert.Equal(t, [2]float32{0, 0}, g.Center)
	assert.Equal(t, [4]float32{-100, -50, 100, 50}, g.Bounds)
	assert.Equal(t, [2]float32{-50, 0}, before.Find("a").Center)

	assert.Len(t, c.Objects(), 1)
	g = after.Find("g")
	require.NotNil(t, g)
	assert.Len(t, g.Objects, 1)
	assert.Equal(t, float32(100), g.Width)
	assert.Equal(t, [2]float32{-50, 0}, g.Center)
	a := after.Find("a")
	assert.Equal(t, float32(-50), a.Left)
	assert.Equal(t, [2]float32{-50, 0}, a.Center)
	assert.Nil(t, after.Find("b"))
}

func TestNested(t *testing.T) {
	_, before, after := runFile(t, "testdata/nested.yaml")

	assert.Equal(t, [2]float32{-50, 0}, before.Find("a").Center)
	assert.Equal(t, float32(12), before.Find("label").Width)

	inner := after.Find("inner")
	require.NotNil(t, inner)
	assert.Len(t, inner.Objects, 3)
	assert.Equal(t, [2]float32{-150, 0}, after.Find("a").Center)
	assert.Equal(t, [2]float32{50, 0}, after.Find("b").Center)
	assert.Equal(t, [2]float32{5, 105}, after.Find("c").Center)
	assert.Equal(t, float32(60), after.Find("label").Width)
	assert.Equal(t, [4]float32{-200, -50, 100, 110}, inner.Bounds)

	outer := after.Find("outer")
	assert.Equal(t, [4]float32{-200, -50, 260, 110}, outer.Bounds)
}

func TestRelative(t *testing.T) {
	_, before, after := runFile(t, "testdata/relative.json")

	g := before.Find("g")
	assert.Equal(t, float32(10), g.Left)
	assert.Equal(t, float32(20), g.Top)
	assert.Equal(t, [2]float32{10, 20}, g.Center)
	assert.Equal(t, [2]float32{10, 20}, before.Find("a").Center)
	assert.Equal(t, float32(-20), before.Find("a").Left)

	free := before.Find("free")
	assert.Equal(t, float32(90), free.Angle)
	assert.Equal(t, [2]float32{0, 10}, free.Center)

	// the fixed strategy ignores the move until the relayout
	g = after.Find("g")
	assert.Equal(t, float32(40), g.Width)
	assert.Equal(t, [2]float32{110, 20}, g.Center)
	assert.Equal(t, [2]float32{110, 20}, after.Find("a").Center)
}

func TestReadErrors(t *testing.T) {
	_, err := Read(strings.NewReader("objects = 5"), TOML)
	assert.Error(t, err)
	_, err = Read(strings.NewReader(`{"objects": [], "bogus": 1}`), JSON)
	assert.Error(t, err)
	_, err = Open("testdata/missing.toml")
	assert.Error(t, err)

	for _, src := range []string{
		`[[objects]]
type = "circle"`,
		`[[objects]]
type = "group"
strategy = "grid"`,
		`[[objects]]
transform = "spin(3)"`,
	} {
		sc, err := Read(strings.NewReader(src), TOML)
		require.NoError(t, err)
		_, err = sc.Build()
		assert.Error(t, err, src)
	}
}

func TestStepErrors(t *testing.T) {
	sc, err := Read(strings.NewReader(`
[[objects]]
name = "r"
width = 10
height = 10
`), TOML)
	require.NoError(t, err)

	tests := []Step{
		{Action: Move, Target: "nope"},
		{Action: SetText, Target: "r", Text: "x"},
		{Action: Relayout, Target: "r"},
		{Action: Fire, Target: "r"},
		{Action: Fire, Target: "r", Event: "explode"},
		{Action: Add},
		{Action: Add, Group: "r", Object: &Object{}},
		{Action: "jump", Target: "r"},
	}
	for _, st := range tests {
		c, err := sc.Build()
		require.NoError(t, err)
		assert.Error(t, st.Run(c), st.String())
	}

	c, err := sc.Build()
	require.NoError(t, err)
	st := &Step{Action: Move, Target: "nope"}
	sc.Steps = []*Step{st}
	err = sc.Run(c)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "step 0 (move nope)")
}

func TestSteps(t *testing.T) {
	sc, err := Read(strings.NewReader(`
[[objects]]
type = "group"
name = "g"
  [[objects.objects]]
  name = "a"
  width = 100
  height = 100
  [[objects.objects]]
  name = "b"
  left = 200
  width = 100
  height = 100
`), TOML)
	require.NoError(t, err)
	c, err := sc.Build()
	require.NoError(t, err)

	run := func(st *Step) *Snapshot {
		t.Helper()
		require.NoError(t, st.Run(c))
		return TakeSnapshot(c)
	}
	sn := run(&Step{Action: Resize, Target: "b", DX: 100})
	assert.Equal(t, float32(400), sn.Find("g").Width)

	sn = run(&Step{Action: Rotate, Target: "a", Angle: 90})
	assert.Equal(t, [2]float32{50, 50}, sn.Find("a").Center)
	assert.Equal(t, float32(90), sn.Find("a").Angle)

	sn = run(&Step{Action: Fire, Target: "a", Event: "modified"})
	assert.Equal(t, float32(400), sn.Find("g").Width)

	sn = run(&Step{Action: Remove, Target: "g"})
	assert.Empty(t, sn.Objects)

	sn = run(&Step{Action: Add, Object: &Object{Name: "n", Width: 5, Height: 5}})
	assert.Equal(t, [2]float32{2.5, 2.5}, sn.Find("n").Center)
}

func TestSnapshotWrite(t *testing.T) {
	_, _, after := runFile(t, "testdata/tworects.toml")
	for _, f := range []Formats{TOML, YAML, JSON} {
		var b bytes.Buffer
		require.NoError(t, after.Write(&b, f))
		assert.Contains(t, b.String(), "group", f.String())
		rt := &Snapshot{}
		require.NoError(t, f.Read(rt, &b), f.String())
		assert.Equal(t, after, rt, f.String())
	}

	var b bytes.Buffer
	require.NoError(t, yamlx.Write(after, &b))
	assert.Contains(t, b.String(), "center: [-50, 0]")
}

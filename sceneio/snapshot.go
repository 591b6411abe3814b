// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sceneio

import (
	"io"

	"cogentcore.org/canvas/math32"
	"cogentcore.org/canvas/scene"
)

// snapshotScale rounds snapshot values to three decimal places.
const snapshotScale = 1000

// Snapshot is the layout of all objects of a canvas at one point in time.
type Snapshot struct {
	Objects []*ObjectSnapshot `json:"objects" yaml:"objects" toml:"objects"`
}

// ObjectSnapshot is the layout of one object. Left, Top, Width and
// Height are the stored values, in the plane of the parent of the object,
// and Center and Bounds are on the canvas.
type ObjectSnapshot struct {
	Type   string     `json:"type" yaml:"type" toml:"type"`
	Name   string     `json:"name" yaml:"name" toml:"name"`
	Left   float32    `json:"left" yaml:"left" toml:"left"`
	Top    float32    `json:"top" yaml:"top" toml:"top"`
	Width  float32    `json:"width" yaml:"width" toml:"width"`
	Height float32    `json:"height" yaml:"height" toml:"height"`
	Angle  float32    `json:"angle,omitempty" yaml:"angle,omitempty" toml:"angle,omitempty"`
	Center [2]float32 `json:"center" yaml:"center,flow" toml:"center,inline"`

	// Bounds has the min X, min Y, max X and max Y of the bounding box.
	Bounds [4]float32 `json:"bounds" yaml:"bounds,flow" toml:"bounds,inline"`

	Objects []*ObjectSnapshot `json:"objects,omitempty" yaml:"objects,omitempty" toml:"objects,omitempty"`
}

// TakeSnapshot returns a snapshot of the given canvas.
func TakeSnapshot(c *scene.Canvas) *Snapshot {
	sn := &Snapshot{}
	for _, obj := range c.Objects() {
		sn.Objects = append(sn.Objects, snapshotObject(obj))
	}
	return sn
}

func snapshotObject(obj scene.Object) *ObjectSnapshot {
	ob := obj.AsObjectBase()
	tr := func(v float32) float32 {
		r := math32.Round(v*snapshotScale) / snapshotScale
		if r == 0 {
			return 0 // no negative zero
		}
		return r
	}
	c := ob.CenterPoint()
	bb := ob.BoundingRect()
	osn := &ObjectSnapshot{
		Type:   obj.TypeName(),
		Name:   ob.Label(),
		Left:   tr(ob.Left),
		Top:    tr(ob.Top),
		Width:  tr(ob.Width),
		Height: tr(ob.Height),
		Angle:  tr(ob.Angle),
		Center: [2]float32{tr(c.X), tr(c.Y)},
		Bounds: [4]float32{tr(bb.Min.X), tr(bb.Min.Y), tr(bb.Max.X), tr(bb.Max.Y)},
	}
	if g, ok := obj.(*scene.Group); ok {
		for _, ch := range g.Objects() {
			osn.Objects = append(osn.Objects, snapshotObject(ch))
		}
	}
	return osn
}

// Find returns the snapshot of the object with the given name,
// depth first, or nil if there is none.
func (sn *Snapshot) Find(name string) *ObjectSnapshot {
	return findSnapshot(sn.Objects, name)
}

func findSnapshot(objs []*ObjectSnapshot, name string) *ObjectSnapshot {
	for _, osn := range objs {
		if osn.Name == name {
			return osn
		}
		if f := findSnapshot(osn.Objects, name); f != nil {
			return f
		}
	}
	return nil
}

// Write writes the snapshot to the given writer in the given format.
func (sn *Snapshot) Write(w io.Writer, f Formats) error {
	return f.Write(sn, w)
}

// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sceneio reads scene description files, builds scenes from them,
// runs scripted steps on them, and writes snapshots of the resulting
// layout. Files can be in TOML, YAML or JSON format.
package sceneio

import (
	"fmt"
	"io"

	"cogentcore.org/canvas/base/iox"
	"cogentcore.org/canvas/layout"
	"cogentcore.org/canvas/math32"
	"cogentcore.org/canvas/scene"
	"github.com/jinzhu/copier"
)

// Scene is a scene description, with the top-level objects of a canvas
// and an optional script of steps to run on it.
type Scene struct {

	// Objects are the top-level objects of the scene.
	Objects []*Object `json:"objects" yaml:"objects" toml:"objects"`

	// Steps are the steps to run on the scene after it is built.
	Steps []*Step `json:"steps,omitempty" yaml:"steps,omitempty" toml:"steps,omitempty"`
}

// Object describes one object of a scene. Fields that are zero
// keep the defaults of the object type.
type Object struct {

	// Type is the type of object: rect (the default), text or group.
	Type string `json:"type,omitempty" yaml:"type,omitempty" toml:"type,omitempty"`

	ID          string        `json:"id,omitempty" yaml:"id,omitempty" toml:"id,omitempty"`
	Name        string        `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Left        float32       `json:"left,omitempty" yaml:"left,omitempty" toml:"left,omitempty"`
	Top         float32       `json:"top,omitempty" yaml:"top,omitempty" toml:"top,omitempty"`
	Width       float32       `json:"width,omitempty" yaml:"width,omitempty" toml:"width,omitempty"`
	Height      float32       `json:"height,omitempty" yaml:"height,omitempty" toml:"height,omitempty"`
	ScaleX      float32       `json:"scaleX,omitempty" yaml:"scaleX,omitempty" toml:"scaleX,omitempty"`
	ScaleY      float32       `json:"scaleY,omitempty" yaml:"scaleY,omitempty" toml:"scaleY,omitempty"`
	Angle       float32       `json:"angle,omitempty" yaml:"angle,omitempty" toml:"angle,omitempty"`
	SkewX       float32       `json:"skewX,omitempty" yaml:"skewX,omitempty" toml:"skewX,omitempty"`
	SkewY       float32       `json:"skewY,omitempty" yaml:"skewY,omitempty" toml:"skewY,omitempty"`
	FlipX       bool          `json:"flipX,omitempty" yaml:"flipX,omitempty" toml:"flipX,omitempty"`
	FlipY       bool          `json:"flipY,omitempty" yaml:"flipY,omitempty" toml:"flipY,omitempty"`
	OriginX     math32.Origin `json:"originX,omitempty" yaml:"originX,omitempty" toml:"originX,omitempty"`
	OriginY     math32.Origin `json:"originY,omitempty" yaml:"originY,omitempty" toml:"originY,omitempty"`
	StrokeWidth float32       `json:"strokeWidth,omitempty" yaml:"strokeWidth,omitempty" toml:"strokeWidth,omitempty"`
	Absolute    bool          `json:"absolutePositioned,omitempty" yaml:"absolutePositioned,omitempty" toml:"absolutePositioned,omitempty"`

	// Transform is an SVG transform that is applied to the object
	// in the plane of its parent, after the other fields.
	Transform string `json:"transform,omitempty" yaml:"transform,omitempty" toml:"transform,omitempty"`

	// Text is the text of a text object.
	Text string `json:"text,omitempty" yaml:"text,omitempty" toml:"text,omitempty"`

	// FontSize is the font size of a text object.
	FontSize float32 `json:"fontSize,omitempty" yaml:"fontSize,omitempty" toml:"fontSize,omitempty"`

	// Strategy is the name of the layout strategy of a group.
	Strategy string `json:"strategy,omitempty" yaml:"strategy,omitempty" toml:"strategy,omitempty"`

	// ObjectsRelativeToGroup indicates that the children of a group are
	// given relative to its center, and that Left and Top are its position.
	ObjectsRelativeToGroup bool `json:"objectsRelativeToGroup,omitempty" yaml:"objectsRelativeToGroup,omitempty" toml:"objectsRelativeToGroup,omitempty"`

	// ClipPath is the clip path of a group.
	ClipPath *Object `json:"clipPath,omitempty" yaml:"clipPath,omitempty" toml:"clipPath,omitempty"`

	// Objects are the children of a group.
	Objects []*Object `json:"objects,omitempty" yaml:"objects,omitempty" toml:"objects,omitempty"`
}

// transform has the fields of an [Object] that apply to a group
// after it has been laid out.
type transform struct {
	ScaleX, ScaleY float32
	Angle          float32
	SkewX, SkewY   float32
	FlipX, FlipY   bool
}

// Strategies are the layout strategies that can be named in scene files.
var Strategies = map[string]func() layout.Strategy{
	"fit-content": func() layout.Strategy { return layout.NewFitContent() },
	"fixed":       func() layout.Strategy { return &layout.StrategyBase{Name: "fixed"} },
}

// Open reads a scene from the given file, in the format given by its extension.
func Open(filename string) (*Scene, error) {
	f, err := FormatFromFilename(filename)
	if err != nil {
		return nil, err
	}
	sc := &Scene{}
	if err := iox.Open(sc, filename, f.Decoder()); err != nil {
		return nil, fmt.Errorf("sceneio: reading %s: %w", filename, err)
	}
	return sc, nil
}

// Read reads a scene from the given reader in the given format.
func Read(r io.Reader, f Formats) (*Scene, error) {
	sc := &Scene{}
	if err := f.Read(sc, r); err != nil {
		return nil, fmt.Errorf("sceneio: reading %s: %w", f, err)
	}
	return sc, nil
}

// Build returns a new canvas with the objects of the scene,
// without running its steps.
func (sc *Scene) Build() (*scene.Canvas, error) {
	c := scene.NewCanvas()
	for _, o := range sc.Objects {
		obj, err := o.Build()
		if err != nil {
			return nil, err
		}
		c.Add(obj)
	}
	return c, nil
}

// Build returns a new scene object for the description.
// Groups are laid out as they are built.
func (o *Object) Build() (scene.Object, error) {
	var obj scene.Object
	switch o.Type {
	case "", "rect":
		obj = scene.NewRect(0, 0, 0, 0)
	case "text":
		tx := scene.NewText(o.Text, 0, 0)
		if o.FontSize > 0 {
			tx.FontSize = o.FontSize
		}
		obj = tx
	case "group":
		return o.buildGroup()
	default:
		return nil, fmt.Errorf("sceneio: unknown object type %q", o.Type)
	}
	if err := copier.CopyWithOption(obj.AsObjectBase(), o, copier.Option{IgnoreEmpty: true}); err != nil {
		return nil, err
	}
	if tx, ok := obj.(*scene.Text); ok {
		tx.UpdateSize()
	}
	if err := o.applyTransform(obj); err != nil {
		return nil, err
	}
	return obj, nil
}

func (o *Object) buildGroup() (scene.Object, error) {
	children := make([]scene.Object, 0, len(o.Objects))
	for _, co := range o.Objects {
		ch, err := co.Build()
		if err != nil {
			return nil, err
		}
		children = append(children, ch)
	}
	opts := []scene.GroupOption{scene.WithName(o.Name), scene.WithOrigin(o.OriginX, o.OriginY)}
	if o.Strategy != "" {
		sf, ok := Strategies[o.Strategy]
		if !ok {
			return nil, fmt.Errorf("sceneio: unknown layout strategy %q", o.Strategy)
		}
		opts = append(opts, scene.WithStrategy(sf()))
	}
	if o.ObjectsRelativeToGroup {
		opts = append(opts, scene.WithObjectsRelativeToGroup(), scene.WithPosition(math32.Vec2(o.Left, o.Top)))
	}
	if o.ClipPath != nil {
		cp, err := o.ClipPath.Build()
		if err != nil {
			return nil, err
		}
		opts = append(opts, scene.WithClipPath(cp))
	}
	g, err := scene.NewGroup(children, opts...)
	if err != nil {
		return nil, err
	}
	if o.ID != "" {
		g.ID = o.ID
	}
	tf := &transform{}
	if err := copier.Copy(tf, o); err != nil {
		return nil, err
	}
	if err := copier.CopyWithOption(g.AsObjectBase(), tf, copier.Option{IgnoreEmpty: true}); err != nil {
		return nil, err
	}
	if err := o.applyTransform(g); err != nil {
		return nil, err
	}
	g.InvalidateCoords()
	return g, nil
}

// applyTransform applies the SVG transform of the description to the object.
func (o *Object) applyTransform(obj scene.Object) error {
	if o.Transform == "" {
		return nil
	}
	var m math32.Matrix2
	if err := m.SetString(o.Transform); err != nil {
		return fmt.Errorf("sceneio: object %q: %w", o.Name, err)
	}
	obj.AsObjectBase().SetTransform(m.Mul(obj.OwnMatrix()))
	return nil
}

// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Types determines the type of scene event, and also the level
// at which one can select which events to listen to.
// Object trigger events (Modified through TextChanged) are fired by
// interactive controls and content edits on individual objects;
// the layout events are fired by containers around each layout pass.
type Types int32

const (
	// zero value is an unknown type
	UnknownType Types = iota

	// Modified is sent once when an interactive transform of the
	// object (move, scale, rotate...) has completed.
	Modified

	// Moving is sent continuously while the object is being dragged.
	Moving

	// Resizing is sent continuously while the object is being resized
	// from one side.
	Resizing

	// Rotating is sent continuously while the object is being rotated.
	Rotating

	// Scaling is sent continuously while the object is being scaled.
	Scaling

	// Skewing is sent continuously while the object is being skewed.
	Skewing

	// Changed is sent continuously during any other ongoing change
	// of the object's geometry.
	Changed

	// ModifyPoly is sent while the points of a polygonal object are edited.
	ModifyPoly

	// TextChanged is sent when the text content of a text object changes,
	// which typically changes its size.
	TextChanged

	// Added is sent to a container after objects have been added to it.
	Added

	// Removed is sent to a container after objects have been removed from it.
	Removed

	// LayoutBefore is sent by a container at the start of each layout pass,
	// after the gate and before anything is computed.
	LayoutBefore

	// Layout is sent by a container after each layout pass,
	// with the result of the pass, which can be absent.
	Layout

	// ObjectLayoutBefore is the canvas-level version of LayoutBefore,
	// sent for every container on the canvas.
	ObjectLayoutBefore

	// ObjectLayout is the canvas-level version of Layout.
	ObjectLayout

	// TypesN is the number of event types.
	TypesN
)

var typesNames = [TypesN]string{
	UnknownType:        "unknown",
	Modified:           "modified",
	Moving:             "moving",
	Resizing:           "resizing",
	Rotating:           "rotating",
	Scaling:            "scaling",
	Skewing:            "skewing",
	Changed:            "changed",
	ModifyPoly:         "modifyPoly",
	TextChanged:        "text:changed",
	Added:              "object:added",
	Removed:            "object:removed",
	LayoutBefore:       "layout:before",
	Layout:             "layout",
	ObjectLayoutBefore: "object:layout:before",
	ObjectLayout:       "object:layout",
}

// String returns the event name of the type, as used in scene files.
func (tp Types) String() string {
	if tp < 0 || tp >= TypesN {
		return "unknown"
	}
	return typesNames[tp]
}

// TypesFromString returns the type with the given event name,
// and false if there is none.
func TypesFromString(s string) (Types, bool) {
	for i, nm := range typesNames {
		if nm == s {
			return Types(i), true
		}
	}
	return UnknownType, false
}

// TriggerTypes are the object events that containers listen to on
// each of their children in order to keep their layout up to date.
var TriggerTypes = []Types{Modified, Moving, Resizing, Rotating, Scaling, Skewing, Changed, ModifyPoly, TextChanged}

// IsTrigger returns whether this is one of the [TriggerTypes].
func (tp Types) IsTrigger() bool {
	return tp >= Modified && tp <= TextChanged
}

// IsModifying returns whether this is a continuous trigger sent
// repeatedly during an ongoing gesture, as opposed to a trigger sent
// once when a change is complete (Modified, TextChanged).
func (tp Types) IsModifying() bool {
	return tp >= Moving && tp <= ModifyPoly
}

// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
	"strconv"
	"strings"
)

// Origin is an anchor point along one axis of an object's bounding box,
// expressed as a fraction of the object's size along that axis:
// 0 is the left (or top) edge, 0.5 the center, and 1 the right (or bottom) edge.
// The zero value is the left / top edge.
type Origin float32

const (
	OriginLeft   Origin = 0
	OriginTop    Origin = 0
	OriginCenter Origin = 0.5
	OriginRight  Origin = 1
	OriginBottom Origin = 1
)

// Resolve returns the signed offset factor of the origin relative to the
// center of the box: -0.5 for left / top, 0 for center, and 0.5 for
// right / bottom. Multiplying it by a size gives the displacement from
// the center to the origin.
func (o Origin) Resolve() float32 {
	return float32(o) - 0.5
}

// ResolveOrigins returns the [Origin.Resolve] factors for both axes.
func ResolveOrigins(x, y Origin) Vector2 {
	return Vec2(x.Resolve(), y.Resolve())
}

// String returns the name of the origin if it is one of the named
// anchors (using the horizontal names), and its fraction otherwise.
func (o Origin) String() string {
	switch o {
	case OriginLeft:
		return "left"
	case OriginCenter:
		return "center"
	case OriginRight:
		return "right"
	}
	return strconv.FormatFloat(float64(o), 'g', -1, 32)
}

// SetString sets the origin from a name (left, top, center, right, bottom)
// or a numeric fraction.
func (o *Origin) SetString(s string) error {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "top", "":
		*o = OriginLeft
	case "center", "middle":
		*o = OriginCenter
	case "right", "bottom":
		*o = OriginRight
	default:
		v, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return fmt.Errorf("math32.Origin: invalid origin %q", s)
		}
		*o = Origin(v)
	}
	return nil
}

// MarshalText implements [encoding.TextMarshaler].
func (o Origin) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (o *Origin) UnmarshalText(text []byte) error {
	return o.SetString(string(text))
}

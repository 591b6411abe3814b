// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Decomposition is a 2D affine transform expressed as the separate
// translate, rotate, scale, skew and flip parameters used by scene objects.
// Angles are in degrees. Composition order is
// translate * rotate * scale(flip) * skewX * skewY.
type Decomposition struct {
	Translate Vector2
	Angle     float32
	Scale     Vector2
	SkewX     float32
	SkewY     float32
	FlipX     bool
	FlipY     bool
}

// Matrix composes the decomposed parameters back into a [Matrix2].
func (d Decomposition) Matrix() Matrix2 {
	m := Translate2D(d.Translate.X, d.Translate.Y)
	if d.Angle != 0 {
		m.SetMul(Rotate2D(DegToRad(d.Angle)))
	}
	dm := d.DimensionsMatrix()
	if !dm.IsIdentity() {
		m.SetMul(dm)
	}
	return m
}

// DimensionsMatrix returns the scale, flip and skew part of the transform,
// without translation or rotation.
func (d Decomposition) DimensionsMatrix() Matrix2 {
	sx, sy := d.Scale.X, d.Scale.Y
	if d.FlipX {
		sx = -sx
	}
	if d.FlipY {
		sy = -sy
	}
	m := Scale2D(sx, sy)
	if d.SkewX != 0 {
		m.SetMul(Skew2D(DegToRad(d.SkewX), 0))
	}
	if d.SkewY != 0 {
		m.SetMul(Skew2D(0, DegToRad(d.SkewY)))
	}
	return m
}

// Decompose performs a QR decomposition of the matrix into translation,
// rotation, scale and horizontal skew. The result never has flips or
// a vertical skew: those are absorbed into the other parameters, and
// Decompose followed by [Decomposition.Matrix] reproduces the matrix.
func (a Matrix2) Decompose() Decomposition {
	denom := a.XX*a.XX + a.YX*a.YX
	sx := Sqrt(denom)
	d := Decomposition{Translate: Vec2(a.X0, a.Y0)}
	if sx == 0 {
		d.Scale = Vec2(0, 0)
		return d
	}
	d.Angle = RadToDeg(Atan2(a.YX, a.XX))
	d.Scale = Vec2(sx, a.Det()/sx)
	d.SkewX = RadToDeg(Atan2(a.XX*a.XY+a.YX*a.YY, denom))
	return d
}

// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Matrix2 is a 3x2 matrix that represents a 2D affine transform,
// using the same column-major convention as SVG and cairo:
//
//	| XX XY X0 |
//	| YX YY Y0 |
//
// A point (x, y) maps to (XX*x + XY*y + X0, YX*x + YY*y + Y0).
type Matrix2 struct {
	XX, YX, XY, YY, X0, Y0 float32
}

// Identity2 returns a new identity [Matrix2] matrix.
func Identity2() Matrix2 {
	return Matrix2{
		1, 0,
		0, 1,
		0, 0,
	}
}

// Translate2D returns a [Matrix2] 2D matrix with given translations.
func Translate2D(x, y float32) Matrix2 {
	return Matrix2{
		1, 0,
		0, 1,
		x, y,
	}
}

// Scale2D returns a [Matrix2] 2D matrix with given scaling factors.
func Scale2D(x, y float32) Matrix2 {
	return Matrix2{
		x, 0,
		0, y,
		0, 0,
	}
}

// Rotate2D returns a [Matrix2] 2D matrix with given rotation, specified in radians.
func Rotate2D(angle float32) Matrix2 {
	s, c := Sincos(angle)
	return Matrix2{
		c, s,
		-s, c,
		0, 0,
	}
}

// Skew2D returns a [Matrix2] 2D matrix with given skew angles, specified in radians.
func Skew2D(x, y float32) Matrix2 {
	return Matrix2{
		1, Tan(y),
		Tan(x), 1,
		0, 0,
	}
}

// IsIdentity returns true if the matrix is the identity matrix.
func (a Matrix2) IsIdentity() bool {
	return a.XX == 1 && a.YX == 0 && a.XY == 0 && a.YY == 1 && a.X0 == 0 && a.Y0 == 0
}

// Mul returns a*b. The transform b is applied first:
// a.Mul(b).MulVector2AsPoint(p) == a.MulVector2AsPoint(b.MulVector2AsPoint(p)).
func (a Matrix2) Mul(b Matrix2) Matrix2 {
	return Matrix2{
		XX: a.XX*b.XX + a.XY*b.YX,
		YX: a.YX*b.XX + a.YY*b.YX,
		XY: a.XX*b.XY + a.XY*b.YY,
		YY: a.YX*b.XY + a.YY*b.YY,
		X0: a.XX*b.X0 + a.XY*b.Y0 + a.X0,
		Y0: a.YX*b.X0 + a.YY*b.Y0 + a.Y0,
	}
}

// SetMul sets a to a*b.
func (a *Matrix2) SetMul(b Matrix2) {
	*a = a.Mul(b)
}

// MulVector2AsVector multiplies the Vector2 as a vector without adding translations.
// This is for directional vectors and not points.
func (a Matrix2) MulVector2AsVector(v Vector2) Vector2 {
	tx := a.XX*v.X + a.XY*v.Y
	ty := a.YX*v.X + a.YY*v.Y
	return Vec2(tx, ty)
}

// MulVector2AsPoint multiplies the Vector2 as a point, including adding translations.
func (a Matrix2) MulVector2AsPoint(v Vector2) Vector2 {
	tx := a.XX*v.X + a.XY*v.Y + a.X0
	ty := a.YX*v.X + a.YY*v.Y + a.Y0
	return Vec2(tx, ty)
}

// Translate returns a new matrix with the given translation applied before a.
func (a Matrix2) Translate(x, y float32) Matrix2 {
	return a.Mul(Translate2D(x, y))
}

// Scale returns a new matrix with the given scaling applied before a.
func (a Matrix2) Scale(x, y float32) Matrix2 {
	return a.Mul(Scale2D(x, y))
}

// Rotate returns a new matrix with the given rotation (radians) applied before a.
func (a Matrix2) Rotate(angle float32) Matrix2 {
	return a.Mul(Rotate2D(angle))
}

// Det returns the determinant of the matrix.
func (a Matrix2) Det() float32 {
	return a.XX*a.YY - a.XY*a.YX
}

// Inverse returns inverse of matrix, for inverting transforms.
// A singular matrix returns the identity.
func (a Matrix2) Inverse() Matrix2 {
	det := a.Det()
	if det == 0 {
		return Identity2()
	}
	d := 1 / det
	return Matrix2{
		XX: a.YY * d,
		YX: -a.YX * d,
		XY: -a.XY * d,
		YY: a.XX * d,
		X0: (a.XY*a.Y0 - a.YY*a.X0) * d,
		Y0: (a.YX*a.X0 - a.XX*a.Y0) * d,
	}
}

// ExtractRot extracts the rotation component from a given matrix, in radians.
func (a Matrix2) ExtractRot() float32 {
	return Atan2(a.YX, a.XX)
}

// TransformSize returns the axis-aligned size spanned by a box of the given
// size centered at the origin after applying the linear part of a.
func (a Matrix2) TransformSize(size Vector2) Vector2 {
	h := size.MulScalar(0.5)
	bb := B2(-h.X, -h.Y, h.X, h.Y).MulMatrix2(a.WithoutTranslation())
	return bb.Size()
}

// WithoutTranslation returns a copy of the matrix with zero translation.
func (a Matrix2) WithoutTranslation() Matrix2 {
	a.X0 = 0
	a.Y0 = 0
	return a
}

// PlaneChange returns the matrix that maps coordinates expressed in the
// plane described by from into the plane described by to.
func PlaneChange(from, to Matrix2) Matrix2 {
	return to.Inverse().Mul(from)
}

// String returns the SVG transform attribute representation of the matrix.
func (a Matrix2) String() string {
	if a.IsIdentity() {
		return "none"
	}
	if a.YX == 0 && a.XY == 0 { // no rotation or skew
		hasScale := a.XX != 1 || a.YY != 1
		hasTrans := a.X0 != 0 || a.Y0 != 0
		switch {
		case hasScale && hasTrans:
			return fmt.Sprintf("translate(%g,%g) scale(%g,%g)", a.X0, a.Y0, a.XX, a.YY)
		case hasScale:
			return fmt.Sprintf("scale(%g,%g)", a.XX, a.YY)
		default:
			return fmt.Sprintf("translate(%g,%g)", a.X0, a.Y0)
		}
	}
	return fmt.Sprintf("matrix(%g,%g,%g,%g,%g,%g)", a.XX, a.YX, a.XY, a.YY, a.X0, a.Y0)
}

// SetString processes the standard SVG-style transform strings.
// The matrix is reset to the identity first, so it is the identity
// if an error is returned.
func (a *Matrix2) SetString(str string) error {
	*a = Identity2()
	str = strings.ToLower(strings.TrimSpace(str))
	if str == "" || str == "none" {
		return nil
	}
	for str != "" {
		pidx := strings.IndexByte(str, '(')
		if pidx < 0 {
			*a = Identity2()
			return fmt.Errorf("math32.Matrix2.SetString: no opening parenthesis in: %q", str)
		}
		eidx := strings.IndexByte(str, ')')
		if eidx < pidx {
			*a = Identity2()
			return fmt.Errorf("math32.Matrix2.SetString: no closing parenthesis in: %q", str)
		}
		cmd := strings.Trim(str[:pidx], " ,\t\n")
		vals, err := parseFloats(str[pidx+1 : eidx])
		if err != nil {
			*a = Identity2()
			return fmt.Errorf("math32.Matrix2.SetString: %q: %w", cmd, err)
		}
		xf, err := transformFunc(cmd, vals)
		if err != nil {
			*a = Identity2()
			return err
		}
		a.SetMul(xf)
		str = strings.TrimLeft(str[eidx+1:], " ,\t\n")
	}
	return nil
}

// transformFunc returns the matrix for one SVG transform function.
func transformFunc(cmd string, vals []float32) (Matrix2, error) {
	nv := len(vals)
	arg := func(i int) float32 {
		if i < nv {
			return vals[i]
		}
		return 0
	}
	switch {
	case cmd == "matrix" && nv == 6:
		return Matrix2{vals[0], vals[1], vals[2], vals[3], vals[4], vals[5]}, nil
	case cmd == "translate" && (nv == 1 || nv == 2):
		return Translate2D(arg(0), arg(1)), nil
	case cmd == "translatex" && nv == 1:
		return Translate2D(arg(0), 0), nil
	case cmd == "translatey" && nv == 1:
		return Translate2D(0, arg(0)), nil
	case cmd == "scale" && nv == 1:
		return Scale2D(arg(0), arg(0)), nil
	case cmd == "scale" && nv == 2:
		return Scale2D(arg(0), arg(1)), nil
	case cmd == "rotate" && nv == 1:
		return Rotate2D(DegToRad(arg(0))), nil
	case cmd == "rotate" && nv == 3:
		return Translate2D(arg(1), arg(2)).Rotate(DegToRad(arg(0))).Translate(-arg(1), -arg(2)), nil
	case cmd == "skewx" && nv == 1:
		return Skew2D(DegToRad(arg(0)), 0), nil
	case cmd == "skewy" && nv == 1:
		return Skew2D(0, DegToRad(arg(0))), nil
	}
	return Identity2(), fmt.Errorf("math32.Matrix2.SetString: unrecognized transform %q with %d values", cmd, nv)
}

func parseFloats(str string) ([]float32, error) {
	fields := strings.FieldsFunc(str, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	vals := make([]float32, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return nil, err
		}
		vals[i] = float32(v)
	}
	return vals, nil
}

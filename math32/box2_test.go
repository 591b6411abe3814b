// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBox2(t *testing.T) {
	b := B2Empty()
	assert.True(t, b.IsEmpty())

	b.SetFromPoints([]Vector2{Vec2(-100, -50), Vec2(0, 50), Vec2(100, 0)})
	assert.False(t, b.IsEmpty())
	assert.Equal(t, B2(-100, -50, 100, 50), b)
	assert.Equal(t, Vec2(0, 0), b.Center())
	assert.Equal(t, Vec2(200, 100), b.Size())
	assert.True(t, b.ContainsPoint(Vec2(100, 50)))
	assert.False(t, b.ContainsPoint(Vec2(101, 0)))

	assert.Equal(t, B2(-90, -40, 110, 60), b.Translate(Vec2(10, 10)))
	assert.Equal(t, B2(-100, -50, 150, 50), b.Union(B2(0, 0, 150, 10)))

	c := B2FromCenterSize(Vec2(50, 0), Vec2(100, 100))
	assert.Equal(t, B2(0, -50, 100, 50), c)

	e := B2Empty()
	e.ExpandByBox(c)
	assert.Equal(t, c, e)
}

func TestBox2MulMatrix2(t *testing.T) {
	b := B2(-100, -50, 100, 50)
	rb := b.MulMatrix2(Translate2D(10, 0).Rotate(DegToRad(90)))
	tolAssertEqualVector(t, 1.0e-4, Vec2(-40, -100), rb.Min)
	tolAssertEqualVector(t, 1.0e-4, Vec2(60, 100), rb.Max)
}

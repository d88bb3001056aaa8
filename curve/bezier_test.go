// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import (
	"testing"

	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

const testTol = float32(1.0e-4)

// lineBezier returns a straight curve from the origin to (length, 0, 0)
// with evenly spaced collinear control points, so that the curve
// parameterization is exactly linear in arc length.
func lineBezier(length float32) *Bezier {
	start := NewNode(math32.Vec3(0, 0, 0), math32.Vec3(length/3, 0, 0))
	end := NewNode(math32.Vec3(length, 0, 0), math32.Vec3(length+length/3, 0, 0))
	return NewBezier(start, end)
}

func TestBezierLine(t *testing.T) {
	cb := lineBezier(3)
	tolassert.EqualTol(t, 3, cb.Length, testTol)

	s := cb.SampleAtDistance(1.5)
	tolassert.EqualTol(t, 1.5, s.Location.X, testTol)
	tolassert.EqualTol(t, 0, s.Location.Y, testTol)
	tolassert.EqualTol(t, 0, s.Location.Z, testTol)
	tolassert.EqualTol(t, 1, s.Tangent.X, testTol)
	tolassert.EqualTol(t, 0, s.Tangent.Y, testTol)
	tolassert.EqualTol(t, 1, s.Up.Y, testTol)

	// clamping at the ends
	s0 := cb.SampleAtDistance(-1)
	tolassert.EqualTol(t, 0, s0.Location.X, testTol)
	s1 := cb.SampleAtDistance(99)
	tolassert.EqualTol(t, 3, s1.Location.X, testTol)
}

func TestBezierBendIdentityFrame(t *testing.T) {
	// On a +X tangent with +Y up, the bend frame is the identity:
	// only the local X coordinate is discarded.
	cb := lineBezier(3)
	s := cb.SampleAtDistance(1.5)
	bp, bn := s.Bend(math32.Vec3(99, 0.25, -0.5), math32.Vec3(0, 1, 0))
	tolassert.EqualTol(t, 1.5, bp.X, testTol)
	tolassert.EqualTol(t, 0.25, bp.Y, testTol)
	tolassert.EqualTol(t, -0.5, bp.Z, testTol)
	tolassert.EqualTol(t, 0, bn.X, testTol)
	tolassert.EqualTol(t, 1, bn.Y, testTol)
	tolassert.EqualTol(t, 0, bn.Z, testTol)
}

func TestSampleRotationFrame(t *testing.T) {
	// A +Z tangent maps local +X to +Z, keeps +Y, and sends local +Z
	// to -X (right-handed frame).
	s := &Sample{
		Tangent: math32.Vec3(0, 0, 1),
		Up:      math32.Vec3(0, 1, 0),
		Scale:   math32.Vec2(1, 1),
	}
	bp, bn := s.Bend(math32.Vec3(5, 0, 1), math32.Vec3(0, 0, 1))
	tolassert.EqualTol(t, -1, bp.X, testTol)
	tolassert.EqualTol(t, 0, bp.Y, testTol)
	tolassert.EqualTol(t, 0, bp.Z, testTol)
	tolassert.EqualTol(t, -1, bn.X, testTol)
	tolassert.EqualTol(t, 0, bn.Y, testTol)
	tolassert.EqualTol(t, 0, bn.Z, testTol)
}

func TestSampleScaleRoll(t *testing.T) {
	s := &Sample{
		Tangent: math32.Vec3(1, 0, 0),
		Up:      math32.Vec3(0, 1, 0),
		Scale:   math32.Vec2(2, 3),
	}
	bp, _ := s.Bend(math32.Vec3(0, 1, 1), math32.Vec3(0, 1, 0))
	tolassert.EqualTol(t, 3, bp.Y, testTol)
	tolassert.EqualTol(t, 2, bp.Z, testTol)

	// a half-turn roll about the tangent flips the cross-section
	s.Roll = math32.Pi
	s.Scale = math32.Vec2(1, 1)
	bp, _ = s.Bend(math32.Vec3(0, 1, 0), math32.Vec3(0, 1, 0))
	tolassert.EqualTol(t, -1, bp.Y, testTol)
	tolassert.EqualTol(t, 0, bp.Z, testTol)
}

func TestBezierNodeChange(t *testing.T) {
	cb := lineBezier(3)
	count := 0
	h := cb.Connect(func() { count++ })

	cb.Start().SetPosition(math32.Vec3(0, 1, 0))
	assert.Equal(t, 1, count)

	// setting the identical value is a no-op
	cb.Start().SetPosition(math32.Vec3(0, 1, 0))
	assert.Equal(t, 1, count)

	cb.End().SetRoll(0.5)
	assert.Equal(t, 2, count)

	cb.Disconnect(h)
	cb.End().SetRoll(1)
	assert.Equal(t, 2, count)
}

func TestBezierDestroy(t *testing.T) {
	cb := lineBezier(3)
	count := 0
	cb.Connect(func() { count++ })
	cb.Destroy()
	cb.Start().SetPosition(math32.Vec3(1, 1, 1))
	assert.Equal(t, 0, count)
}

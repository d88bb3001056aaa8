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

// lineNode returns a node at (x, 0, 0) with its handle at (x+handle, 0, 0).
func lineNode(x, handle float32) *Node {
	return NewNode(math32.Vec3(x, 0, 0), math32.Vec3(x+handle, 0, 0))
}

// lineSpline returns a straight spline along +X through the given
// node positions, with evenly spaced collinear handles per segment.
func lineSpline(xs ...float32) *Spline {
	sp := &Spline{}
	for i, x := range xs {
		seg := float32(1)
		if i+1 < len(xs) {
			seg = xs[i+1] - x
		} else if i > 0 {
			seg = x - xs[i-1]
		}
		sp.AddNode(lineNode(x, seg/3))
	}
	return sp
}

func TestSplineLength(t *testing.T) {
	sp := lineSpline(0, 3, 6)
	assert.Equal(t, 2, len(sp.Curves()))
	tolassert.EqualTol(t, 6, sp.Length, testTol)

	// sampling across the curve boundary
	s := sp.SampleAtDistance(4.5)
	tolassert.EqualTol(t, 4.5, s.Location.X, testTol)
	tolassert.EqualTol(t, 1, s.Tangent.X, testTol)

	// clamped at both ends
	tolassert.EqualTol(t, 0, sp.SampleAtDistance(-2).Location.X, testTol)
	tolassert.EqualTol(t, 6, sp.SampleAtDistance(100).Location.X, testTol)
}

func TestSplineChangeNotify(t *testing.T) {
	sp := lineSpline(0, 3, 6)
	count := 0
	h := sp.Connect(func() { count++ })

	sp.Nodes()[1].SetPosition(math32.Vec3(3, 1, 0))
	assert.Equal(t, 2, count) // the shared node drives both adjacent curves
	assert.Greater(t, sp.Length, float32(6))

	sp.Disconnect(h)
	sp.Nodes()[0].SetRoll(1)
	assert.Equal(t, 2, count)
}

func TestSplineAddInsertRemove(t *testing.T) {
	sp := lineSpline(0, 3)
	assert.Equal(t, 1, len(sp.Curves()))

	sp.AddNode(lineNode(6, 1))
	assert.Equal(t, 2, len(sp.Curves()))
	tolassert.EqualTol(t, 6, sp.Length, testTol)

	err := sp.InsertNode(1, lineNode(1.5, 0.5))
	assert.NoError(t, err)
	assert.Equal(t, 4, len(sp.Nodes()))
	assert.Equal(t, 3, len(sp.Curves()))
	tolassert.EqualTol(t, 6, sp.Length, testTol)

	assert.Error(t, sp.InsertNode(0, lineNode(-1, 1)))
	assert.Error(t, sp.InsertNode(4, lineNode(9, 1)))

	err = sp.RemoveNode(1)
	assert.NoError(t, err)
	assert.Equal(t, 3, len(sp.Nodes()))
	assert.Equal(t, 2, len(sp.Curves()))
	tolassert.EqualTol(t, 6, sp.Length, testTol)

	assert.NoError(t, sp.RemoveNode(0))
	assert.Error(t, sp.RemoveNode(0)) // two nodes must remain
	assert.Error(t, sp.RemoveNode(5))
}

func TestSplineRemovedCurveDisconnected(t *testing.T) {
	sp := lineSpline(0, 3, 6)
	mid := sp.Nodes()[1]
	assert.NoError(t, sp.RemoveNode(1))

	count := 0
	sp.Connect(func() { count++ })
	mid.SetPosition(math32.Vec3(9, 9, 9)) // no longer part of the spline
	assert.Equal(t, 0, count)
}

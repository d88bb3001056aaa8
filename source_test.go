// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package splinemesh

import (
	"bytes"
	"testing"

	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

func TestPlaneSource(t *testing.T) {
	src := NewPlaneSource(2, 1, 1, 1)
	assert.Equal(t, 4, src.NumVertex())
	assert.Equal(t, 6, len(src.Index))
	assert.Equal(t, 8, len(src.TexCoord))
	tolassert.EqualTol(t, -1, src.MinX, testTol)
	tolassert.EqualTol(t, 2, src.Length, testTol)

	// all normals are +Y
	var n math32.Vector3
	for i := 0; i < src.NumVertex(); i++ {
		n.FromSlice(src.Normal, i*3)
		assert.Equal(t, math32.Vec3(0, 1, 0), n)
	}

	// segment counts below one are clamped
	assert.Equal(t, 4, NewPlaneSource(2, 1, 0, 0).NumVertex())
}

func TestTubeSource(t *testing.T) {
	src := NewTubeSource(4, 0.5, 8, 2)
	assert.Equal(t, 3*9, src.NumVertex()) // seam vertex duplicated
	assert.Equal(t, 2*8*6, len(src.Index))
	tolassert.EqualTol(t, -2, src.MinX, testTol)
	tolassert.EqualTol(t, 4, src.Length, testTol)

	// every vertex sits on the shell, its normal radial and unit length
	var v, n math32.Vector3
	for i := 0; i < src.NumVertex(); i++ {
		v.FromSlice(src.Vertex, i*3)
		n.FromSlice(src.Normal, i*3)
		tolassert.EqualTol(t, 0.5, math32.Sqrt(v.Y*v.Y+v.Z*v.Z), testTol)
		tolassert.EqualTol(t, 1, n.Length(), testTol)
		tolassert.EqualTol(t, 0, n.X, testTol)
	}
}

func TestSourceTranslated(t *testing.T) {
	src := NewPlaneSource(2, 1, 1, 1)
	ts := src.Translated(math32.Vec3(1, 0, 0)) // near edge moved to X = 0
	tolassert.EqualTol(t, 0, ts.MinX, testTol)
	tolassert.EqualTol(t, 2, ts.Length, testTol)
	// the original is untouched
	tolassert.EqualTol(t, -1, src.MinX, testTol)
}

func TestSourceRotated(t *testing.T) {
	src := NewPlaneSource(2, 1, 1, 1)
	q := math32.NewQuatAxisAngle(math32.Vec3(0, 1, 0), math32.DegToRad(90))
	rs := src.Rotated(q)
	// X extent now comes from the old Z width
	tolassert.EqualTol(t, 1, rs.Length, testTol)
	var n math32.Vector3
	n.FromSlice(rs.Normal, 0)
	tolassert.EqualTol(t, 1, n.Y, testTol)
}

func TestSourceScaled(t *testing.T) {
	src := NewPlaneSource(2, 1, 1, 1)
	ss := src.Scaled(math32.Vec3(3, 1, 2))
	tolassert.EqualTol(t, -3, ss.MinX, testTol)
	tolassert.EqualTol(t, 6, ss.Length, testTol)
	var n math32.Vector3
	n.FromSlice(ss.Normal, 0)
	tolassert.EqualTol(t, 1, n.Length(), testTol)
	tolassert.EqualTol(t, 1, n.Y, testTol)
}

func TestWriteObj(t *testing.T) {
	mb := NewMeshBender()
	mb.SetSource(NewPlaneSource(2, 1, 1, 1))
	assert.NoError(t, mb.SetCurve(lineCurve(3)))
	assert.True(t, mb.DoUpdate())

	var buf bytes.Buffer
	assert.NoError(t, mb.Output().WriteObj(&buf))
	s := buf.String()
	assert.Contains(t, s, "v ")
	assert.Contains(t, s, "vt ")
	assert.Contains(t, s, "vn ")
	assert.Contains(t, s, "f 1/1/1 2/2/2 4/4/4")
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package splinemesh

import (
	"bufio"
	"fmt"
	"io"

	"cogentcore.org/core/math32"
)

// MeshData is the output bundle of one bend pass: an indexed triangle
// mesh with positions, normals, and texture coordinates in flat arrays,
// [math32.Vector3] per vertex point and [math32.Vector2] per texture
// coordinate.
type MeshData struct {
	Vertex   math32.ArrayF32
	Normal   math32.ArrayF32
	TexCoord math32.ArrayF32
	Index    math32.ArrayU32

	// BBox is the bounding box of the bent vertices.
	BBox math32.Box3
}

// NumVertex returns the number of vertex points.
func (md *MeshData) NumVertex() int {
	return len(md.Vertex) / 3
}

// NumIndex returns the number of triangle indexes.
func (md *MeshData) NumIndex() int {
	return len(md.Index)
}

func (md *MeshData) updateBBox() {
	md.BBox = bboxFromVertex(md.Vertex)
}

// WriteObj writes the mesh in Wavefront OBJ format.
func (md *MeshData) WriteObj(w io.Writer) error {
	bw := bufio.NewWriter(w)
	nv := md.NumVertex()
	var v math32.Vector3
	for i := 0; i < nv; i++ {
		v.FromSlice(md.Vertex, i*3)
		fmt.Fprintf(bw, "v %g %g %g\n", v.X, v.Y, v.Z)
	}
	for i := 0; i < len(md.TexCoord)/2; i++ {
		fmt.Fprintf(bw, "vt %g %g\n", md.TexCoord[i*2], md.TexCoord[i*2+1])
	}
	for i := 0; i < nv; i++ {
		v.FromSlice(md.Normal, i*3)
		fmt.Fprintf(bw, "vn %g %g %g\n", v.X, v.Y, v.Z)
	}
	for i := 0; i+2 < len(md.Index); i += 3 {
		a, b, c := md.Index[i]+1, md.Index[i+1]+1, md.Index[i+2]+1
		fmt.Fprintf(bw, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", a, a, a, b, b, b, c, c, c)
	}
	return bw.Flush()
}

// MeshSink accepts the output bundle of a bend pass and commits it as
// the current renderable geometry. Commits are last-write-wins: each
// one unconditionally supersedes any prior output, and calling it on
// every recompute is safe.
type MeshSink interface {
	SetMesh(md *MeshData)
}

// bboxFromVertex returns the bounding box of the given vertex array.
func bboxFromVertex(vtx math32.ArrayF32) math32.Box3 {
	bb := math32.Box3{}
	bb.SetEmpty()
	var v math32.Vector3
	for i := 0; i < len(vtx)/3; i++ {
		v.FromSlice(vtx, i*3)
		bb.ExpandByPoint(v)
	}
	return bb
}

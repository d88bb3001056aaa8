// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package splinemesh

import "cogentcore.org/core/math32"

// SourceMesh is an immutable snapshot of the mesh to bend: flat vertex,
// normal, and texture-coordinate arrays with an index buffer, plus the
// precomputed extent along the bend axis (X). Build one with
// [NewSourceMesh] or a shape generator, and bake any placement with the
// Translated / Rotated / Scaled transforms; do not modify the arrays
// after handing the mesh to a [MeshBender].
type SourceMesh struct {
	Vertex   math32.ArrayF32
	Normal   math32.ArrayF32
	TexCoord math32.ArrayF32
	Index    math32.ArrayU32

	// MinX is the minimum vertex X: distances along the path are
	// measured from here.
	MinX float32

	// Length is the total X extent of the mesh.
	Length float32
}

// NewSourceMesh returns a new source mesh with the given data,
// computing the X extent metrics.
func NewSourceMesh(vertex, normal, texcoord math32.ArrayF32, index math32.ArrayU32) *SourceMesh {
	sm := &SourceMesh{Vertex: vertex, Normal: normal, TexCoord: texcoord, Index: index}
	sm.updateExtent()
	return sm
}

// NumVertex returns the number of vertex points.
func (sm *SourceMesh) NumVertex() int {
	return len(sm.Vertex) / 3
}

func (sm *SourceMesh) updateExtent() {
	if sm.NumVertex() == 0 {
		sm.MinX = 0
		sm.Length = 0
		return
	}
	bb := bboxFromVertex(sm.Vertex)
	sm.MinX = bb.Min.X
	sm.Length = bb.Max.X - bb.Min.X
}

// clone returns a deep copy sharing no arrays with the original.
func (sm *SourceMesh) clone() *SourceMesh {
	ns := &SourceMesh{MinX: sm.MinX, Length: sm.Length}
	ns.Vertex = append(math32.ArrayF32{}, sm.Vertex...)
	ns.Normal = append(math32.ArrayF32{}, sm.Normal...)
	ns.TexCoord = append(math32.ArrayF32{}, sm.TexCoord...)
	ns.Index = append(math32.ArrayU32{}, sm.Index...)
	return ns
}

// Translated returns a copy of the mesh with the given offset baked
// into the vertex positions, with the extent metrics recomputed.
func (sm *SourceMesh) Translated(offset math32.Vector3) *SourceMesh {
	ns := sm.clone()
	var v math32.Vector3
	for i := 0; i < ns.NumVertex(); i++ {
		v.FromSlice(ns.Vertex, i*3)
		v.SetAdd(offset)
		ns.Vertex.SetVector3(i*3, v)
	}
	ns.updateExtent()
	return ns
}

// Rotated returns a copy of the mesh with the given rotation baked
// into the vertex positions and normals, with the extent metrics
// recomputed.
func (sm *SourceMesh) Rotated(q math32.Quat) *SourceMesh {
	ns := sm.clone()
	var v math32.Vector3
	for i := 0; i < ns.NumVertex(); i++ {
		v.FromSlice(ns.Vertex, i*3)
		ns.Vertex.SetVector3(i*3, v.MulQuat(q))
		v.FromSlice(ns.Normal, i*3)
		ns.Normal.SetVector3(i*3, v.MulQuat(q))
	}
	ns.updateExtent()
	return ns
}

// Scaled returns a copy of the mesh with the given per-axis scale
// baked into the vertex positions, with the normals adjusted by the
// inverse scale and renormalized, and the extent metrics recomputed.
// Zero scale components are left out of the normal adjustment.
func (sm *SourceMesh) Scaled(s math32.Vector3) *SourceMesh {
	ns := sm.clone()
	inv := math32.Vec3(1, 1, 1)
	if s.X != 0 {
		inv.X = 1 / s.X
	}
	if s.Y != 0 {
		inv.Y = 1 / s.Y
	}
	if s.Z != 0 {
		inv.Z = 1 / s.Z
	}
	var v math32.Vector3
	for i := 0; i < ns.NumVertex(); i++ {
		v.FromSlice(ns.Vertex, i*3)
		ns.Vertex.SetVector3(i*3, v.Mul(s))
		v.FromSlice(ns.Normal, i*3)
		n := v.Mul(inv)
		if n.Length() > 0 {
			n = n.Normal()
		}
		ns.Normal.SetVector3(i*3, n)
	}
	ns.updateExtent()
	return ns
}

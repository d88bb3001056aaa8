// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package splinemesh

import (
	"fmt"
	"log/slog"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"cogentcore.org/splinemesh/curve"
)

// MeshBender deforms a [SourceMesh] so that it follows a bound path,
// either a single [curve.Bezier] or an interval of a [curve.Spline],
// repositioning and reorienting each vertex according to its projection
// onto the path. It tracks a NeedsUpdate flag driven by binding
// mutations and by path change notifications, and recomputes lazily:
// call [MeshBender.DoUpdate] once per tick. Exactly one path is bound
// at a time, with exactly one live change subscription.
//
// A MeshBender is single-threaded: all computation is synchronous, and
// no methods may be called concurrently.
type MeshBender struct {
	// Source is the mesh to bend. It is referenced, not copied:
	// do not mutate it while bound.
	Source *SourceMesh

	// Mode selects the fill algorithm. Set via [MeshBender.SetMode].
	Mode FillModes

	// Sink, if non-nil, receives the output bundle of every recompute.
	Sink MeshSink

	// IntervalStart is the arc-length distance on the bound spline
	// where bending starts. Spline binding only.
	IntervalStart float32

	// IntervalEnd is the arc-length distance on the bound spline where
	// bending ends; 0 means the full remaining spline length.
	IntervalEnd float32

	// NeedsUpdate is true when the output is stale and the next
	// [MeshBender.DoUpdate] will recompute.
	NeedsUpdate bool

	curve      *curve.Bezier
	spline     *curve.Spline
	pathHandle curve.Handle

	output *MeshData

	// sampleCache is scratch state for one fill pass: keyed by raw
	// arc-length distance in Once/Repeat modes, and by normalized rate
	// in Stretch mode. Never shared across passes or modes.
	sampleCache map[float32]curve.Sample

	clampWarned bool
}

// NewMeshBender returns a new MeshBender with no source or path bound.
func NewMeshBender() *MeshBender {
	return &MeshBender{}
}

// Output returns the output bundle of the most recent recompute,
// or nil if none has run yet.
func (mb *MeshBender) Output() *MeshData {
	return mb.output
}

// SetNeedsUpdate marks the output as stale, to be recomputed on the
// next [MeshBender.DoUpdate]. This is also the registered path-change
// listener: upstream mutations only mark, never recompute eagerly, so
// the recompute cost is paid at most once per dirty period.
func (mb *MeshBender) SetNeedsUpdate() {
	mb.NeedsUpdate = true
}

// SetSource sets the mesh to bend and marks the output stale.
func (mb *MeshBender) SetSource(src *SourceMesh) {
	mb.Source = src
	mb.SetNeedsUpdate()
}

// SetMode sets the fill mode, marking the output stale if it changed.
func (mb *MeshBender) SetMode(mode FillModes) {
	if mb.Mode == mode {
		return
	}
	mb.Mode = mode
	mb.SetNeedsUpdate()
}

// SetCurve binds the bender to a single cubic curve, replacing any
// previous binding and its change subscription. Binding the curve that
// is already bound is a no-op. A nil curve is an error and leaves the
// current binding untouched.
func (mb *MeshBender) SetCurve(cb *curve.Bezier) error {
	if cb == nil {
		return errors.New("splinemesh.MeshBender.SetCurve: nil curve")
	}
	if mb.curve == cb {
		return nil
	}
	mb.unbindPath()
	mb.curve = cb
	mb.pathHandle = cb.Connect(mb.SetNeedsUpdate)
	mb.SetNeedsUpdate()
	return nil
}

// SetSpline binds the bender to the full length of the given spline.
// See [MeshBender.SetSplineInterval].
func (mb *MeshBender) SetSpline(sp *curve.Spline) error {
	return mb.SetSplineInterval(sp, 0, 0)
}

// SetSplineInterval binds the bender to the [start, end] arc-length
// interval of the given spline, replacing any previous binding and its
// change subscription. end = 0 means the full remaining spline length.
// Binding an interval identical to the current one is a no-op.
// Invalid arguments (nil spline, start outside [0, length), end not 0
// and outside (start, length]) are an error and leave the current
// binding and dirty state untouched.
func (mb *MeshBender) SetSplineInterval(sp *curve.Spline, start, end float32) error {
	if sp == nil {
		return errors.New("splinemesh.MeshBender.SetSplineInterval: nil spline")
	}
	if start < 0 || start >= sp.Length {
		return fmt.Errorf("splinemesh.MeshBender.SetSplineInterval: start %g outside [0, %g)", start, sp.Length)
	}
	if end != 0 && (end <= start || end > sp.Length) {
		return fmt.Errorf("splinemesh.MeshBender.SetSplineInterval: end %g outside (%g, %g]", end, start, sp.Length)
	}
	if mb.spline == sp && mb.IntervalStart == start && mb.IntervalEnd == end {
		return nil
	}
	mb.unbindPath()
	mb.spline = sp
	mb.IntervalStart = start
	mb.IntervalEnd = end
	mb.pathHandle = sp.Connect(mb.SetNeedsUpdate)
	mb.SetNeedsUpdate()
	return nil
}

// Destroy releases the active path-change subscription.
func (mb *MeshBender) Destroy() {
	mb.unbindPath()
}

func (mb *MeshBender) unbindPath() {
	if mb.curve != nil {
		mb.curve.Disconnect(mb.pathHandle)
		mb.curve = nil
	}
	if mb.spline != nil {
		mb.spline.Disconnect(mb.pathHandle)
		mb.spline = nil
	}
}

// DoUpdate recomputes the bent mesh if the output is stale, committing
// the result to the Sink, and returns whether any work was done. It is
// cheap when clean and intended to be called once per tick.
func (mb *MeshBender) DoUpdate() bool {
	if !mb.NeedsUpdate {
		return false
	}
	// clear first: a path change arriving during the fill pass must
	// leave the bender stale again.
	mb.NeedsUpdate = false
	mb.updateMesh()
	return true
}

func (mb *MeshBender) updateMesh() {
	md := &MeshData{}
	if mb.Source != nil && (mb.curve != nil || mb.spline != nil) {
		switch mb.Mode {
		case Once:
			mb.fillOnce(md)
		case Repeat:
			mb.fillRepeat(md)
		case Stretch:
			mb.fillStretch(md)
		}
	}
	md.updateBBox()
	mb.output = md
	if mb.Sink != nil {
		mb.Sink.SetMesh(md)
	}
}

// resetCache clears the per-pass sample cache.
func (mb *MeshBender) resetCache() {
	if mb.sampleCache == nil {
		mb.sampleCache = make(map[float32]curve.Sample)
		return
	}
	clear(mb.sampleCache)
}

// intervalLength returns the arc length of the bound path interval:
// the whole curve for a curve binding, and the start..end (or start..
// spline end when end is 0) range for a spline binding.
func (mb *MeshBender) intervalLength() float32 {
	if mb.curve != nil {
		return mb.curve.Length
	}
	if mb.IntervalEnd == 0 {
		return mb.spline.Length - mb.IntervalStart
	}
	return mb.IntervalEnd - mb.IntervalStart
}

// sampleAt resolves the frame for the raw distance d measured from the
// source mesh's minimum X, caching by d within one fill pass. ok is
// false when the distance lies beyond the end of a single bound curve:
// such vertices are clipped from the output.
func (mb *MeshBender) sampleAt(d float32) (s curve.Sample, ok bool) {
	if s, has := mb.sampleCache[d]; has {
		return s, true
	}
	if mb.curve != nil {
		if d > mb.curve.Length {
			return s, false
		}
		s = mb.curve.SampleAtDistance(d)
		mb.sampleCache[d] = s
		return s, true
	}
	dist := mb.IntervalStart + d
	// A bound spline can collapse to zero length if its nodes are moved
	// coincident after binding; sample the start instead of spinning in
	// the wraparound loop below.
	if mb.spline.Length <= 0 {
		dist = 0
	} else {
		// Iterative wraparound for looping paths. Deliberately not a
		// generalized modulo: only correct while dist stays within a
		// small multiple of the spline length, matching the reference
		// semantics.
		for dist > mb.spline.Length {
			dist -= mb.spline.Length
		}
	}
	s = mb.spline.SampleAtDistance(dist)
	mb.sampleCache[d] = s
	return s, true
}

// stretchSample resolves the frame for the normalized rate r in [0, 1]
// along the bound interval, caching by rate: many vertices across one
// mesh cross-section share the same rate. A distance overrunning the
// spline length by floating-point drift is clamped, not failed.
func (mb *MeshBender) stretchSample(r float32) curve.Sample {
	if s, has := mb.sampleCache[r]; has {
		return s
	}
	var s curve.Sample
	if mb.curve != nil {
		s = mb.curve.SampleAtDistance(mb.curve.Length * r)
	} else {
		dist := mb.IntervalStart + mb.intervalLength()*r
		if dist > mb.spline.Length {
			if !mb.clampWarned {
				slog.Warn("splinemesh.MeshBender: stretch distance overran spline length, clamping", "distance", dist, "length", mb.spline.Length)
				mb.clampWarned = true
			}
			dist = mb.spline.Length
		}
		s = mb.spline.SampleAtDistance(dist)
	}
	mb.sampleCache[r] = s
	return s
}

// fillOnce places a single copy of the source mesh at the start of the
// path. The index and texture-coordinate buffers pass through
// unchanged: when curve-bound clipping drops vertices, the input mesh
// must not have triangles referencing them (valid inputs keep all
// referenced vertices within the curve length).
func (mb *MeshBender) fillOnce(md *MeshData) {
	src := mb.Source
	mb.resetCache()
	n := src.NumVertex()
	md.Vertex = make(math32.ArrayF32, 0, n*3)
	md.Normal = make(math32.ArrayF32, 0, n*3)
	var pos, nrm math32.Vector3
	for vi := 0; vi < n; vi++ {
		pos.FromSlice(src.Vertex, vi*3)
		nrm.FromSlice(src.Normal, vi*3)
		s, ok := mb.sampleAt(pos.X - src.MinX)
		if !ok {
			continue
		}
		bp, bn := s.Bend(pos, nrm)
		md.Vertex = append(md.Vertex, bp.X, bp.Y, bp.Z)
		md.Normal = append(md.Normal, bn.X, bn.Y, bn.Z)
	}
	md.Index = append(math32.ArrayU32{}, src.Index...)
	md.TexCoord = append(math32.ArrayF32{}, src.TexCoord...)
}

// fillRepeat tiles floor(intervalLength / source.Length) whole copies
// of the source mesh along the bound interval. Zero repetitions is a
// valid empty output, not an error. The sample cache is cleared before
// each repetition, since the raw-distance keys differ per repetition.
func (mb *MeshBender) fillRepeat(md *MeshData) {
	src := mb.Source
	if src.Length == 0 {
		return // zero-extent mesh cannot tile
	}
	reps := int(math32.Floor(mb.intervalLength() / src.Length))
	if reps <= 0 {
		return
	}
	n := src.NumVertex()
	md.Vertex = make(math32.ArrayF32, 0, reps*n*3)
	md.Normal = make(math32.ArrayF32, 0, reps*n*3)
	md.TexCoord = make(math32.ArrayF32, 0, reps*len(src.TexCoord))
	md.Index = make(math32.ArrayU32, 0, reps*len(src.Index))
	var pos, nrm math32.Vector3
	for i := 0; i < reps; i++ {
		mb.resetCache()
		off := float32(i) * src.Length
		for vi := 0; vi < n; vi++ {
			pos.FromSlice(src.Vertex, vi*3)
			nrm.FromSlice(src.Normal, vi*3)
			s, ok := mb.sampleAt(pos.X - src.MinX + off)
			if !ok {
				continue
			}
			bp, bn := s.Bend(pos, nrm)
			md.Vertex = append(md.Vertex, bp.X, bp.Y, bp.Z)
			md.Normal = append(md.Normal, bn.X, bn.Y, bn.Z)
		}
		vo := uint32(i * n)
		for _, ix := range src.Index {
			md.Index = append(md.Index, ix+vo)
		}
		md.TexCoord = append(md.TexCoord, src.TexCoord...)
	}
}

// fillStretch deforms the source mesh so its X extent exactly fits the
// bound interval. Every source vertex is retained, and the index and
// texture-coordinate buffers pass through unchanged. A zero-length
// source mesh collapses every vertex to rate 0.
func (mb *MeshBender) fillStretch(md *MeshData) {
	src := mb.Source
	mb.resetCache()
	mb.clampWarned = false
	n := src.NumVertex()
	md.Vertex = make(math32.ArrayF32, n*3)
	md.Normal = make(math32.ArrayF32, n*3)
	var pos, nrm math32.Vector3
	for vi := 0; vi < n; vi++ {
		pos.FromSlice(src.Vertex, vi*3)
		nrm.FromSlice(src.Normal, vi*3)
		r := float32(0)
		if src.Length != 0 {
			r = math32.Abs(pos.X-src.MinX) / src.Length
		}
		s := mb.stretchSample(r)
		bp, bn := s.Bend(pos, nrm)
		md.Vertex.SetVector3(vi*3, bp)
		md.Normal.SetVector3(vi*3, bn)
	}
	md.Index = append(math32.ArrayU32{}, src.Index...)
	md.TexCoord = append(math32.ArrayF32{}, src.TexCoord...)
}

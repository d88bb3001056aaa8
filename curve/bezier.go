// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import (
	"sort"

	"cogentcore.org/core/math32"
)

// DefaultSteps is the default number of segments in the precomputed
// arc-length sample table of a [Bezier].
const DefaultSteps = 30

// Bezier is a single cubic Bézier curve between two control [Node]s.
// The first control handle is the start node's direction point; the
// second is derived symmetrically from the end node's direction point.
// A table of [Sample]s is precomputed with polyline arc-length
// accumulation, and [Bezier.SampleAtDistance] interpolates within it.
// The curve listens to both of its nodes and recomputes the table
// and notifies its own listeners whenever either node changes.
type Bezier struct {
	notifier

	// Steps is the number of segments in the sample table.
	Steps int

	// Length is the total arc length. Read-only: updated on any
	// node change.
	Length float32

	start, end             *Node
	samples                []Sample
	startHandle, endHandle Handle
}

// NewBezier returns a new cubic curve between the two given nodes,
// connected to their change notifications, with its sample table
// computed.
func NewBezier(start, end *Node) *Bezier {
	cb := &Bezier{start: start, end: end, Steps: DefaultSteps}
	cb.startHandle = start.Connect(cb.nodeChanged)
	cb.endHandle = end.Connect(cb.nodeChanged)
	cb.compute()
	return cb
}

// Start returns the start node.
func (cb *Bezier) Start() *Node { return cb.start }

// End returns the end node.
func (cb *Bezier) End() *Node { return cb.end }

// Destroy disconnects the curve from its nodes' change notifications.
func (cb *Bezier) Destroy() {
	cb.start.Disconnect(cb.startHandle)
	cb.end.Disconnect(cb.endHandle)
}

func (cb *Bezier) nodeChanged() {
	cb.compute()
	cb.send()
}

// controlPoints returns the four cubic control points. The second
// handle is the reflection of the end node's direction point about
// its position, so that adjacent curves sharing a node stay C1.
func (cb *Bezier) controlPoints() (p0, p1, p2, p3 math32.Vector3) {
	p0 = cb.start.position
	p1 = cb.start.direction
	p2 = cb.end.position.MulScalar(2).Sub(cb.end.direction)
	p3 = cb.end.position
	return
}

// location returns the curve position at parameter t in [0, 1].
func (cb *Bezier) location(t float32) math32.Vector3 {
	p0, p1, p2, p3 := cb.controlPoints()
	omt := 1 - t
	r := p0.MulScalar(omt * omt * omt)
	r.SetAdd(p1.MulScalar(3 * omt * omt * t))
	r.SetAdd(p2.MulScalar(3 * omt * t * t))
	r.SetAdd(p3.MulScalar(t * t * t))
	return r
}

// tangent returns the unit tangent at parameter t, falling back to
// the chord direction where the derivative degenerates (coincident
// control points at the curve ends).
func (cb *Bezier) tangent(t float32) math32.Vector3 {
	p0, p1, p2, p3 := cb.controlPoints()
	omt := 1 - t
	dv := p1.Sub(p0).MulScalar(3 * omt * omt)
	dv.SetAdd(p2.Sub(p1).MulScalar(6 * omt * t))
	dv.SetAdd(p3.Sub(p2).MulScalar(3 * t * t))
	if dv.Length() == 0 {
		dv = p3.Sub(p0)
		if dv.Length() == 0 {
			return math32.Vec3(1, 0, 0)
		}
	}
	return dv.Normal()
}

// compute rebuilds the arc-length sample table and Length.
func (cb *Bezier) compute() {
	steps := cb.Steps
	if steps < 1 {
		steps = DefaultSteps
	}
	cb.samples = make([]Sample, 0, steps+1)
	dist := float32(0)
	var prev math32.Vector3
	for i := 0; i <= steps; i++ {
		t := float32(i) / float32(steps)
		loc := cb.location(t)
		if i > 0 {
			dist += loc.Sub(prev).Length()
		}
		prev = loc
		cb.samples = append(cb.samples, Sample{
			Location:        loc,
			Tangent:         cb.tangent(t),
			Up:              lerp3(cb.start.up, cb.end.up, t).Normal(),
			Scale:           lerp2(cb.start.scale, cb.end.scale, t),
			Roll:            cb.start.roll + (cb.end.roll-cb.start.roll)*t,
			DistanceInCurve: dist,
			TimeInCurve:     t,
		})
	}
	cb.Length = dist
}

// SampleAtDistance returns the frame at the given arc-length distance
// from the curve start, interpolated between the bracketing table
// samples. The distance is clamped to [0, Length]; it is the caller's
// responsibility to handle out-of-range distances (e.g. clipping).
func (cb *Bezier) SampleAtDistance(d float32) Sample {
	n := len(cb.samples)
	if d <= 0 || n == 0 {
		if n == 0 {
			return Sample{Tangent: math32.Vec3(1, 0, 0), Up: math32.Vec3(0, 1, 0), Scale: math32.Vec2(1, 1)}
		}
		return cb.samples[0]
	}
	if d >= cb.Length {
		return cb.samples[n-1]
	}
	i := sort.Search(n, func(i int) bool {
		return cb.samples[i].DistanceInCurve >= d
	})
	if i == 0 {
		return cb.samples[0]
	}
	a, b := cb.samples[i-1], cb.samples[i]
	span := b.DistanceInCurve - a.DistanceInCurve
	if span == 0 {
		return a
	}
	return lerpSamples(a, b, (d-a.DistanceInCurve)/span)
}

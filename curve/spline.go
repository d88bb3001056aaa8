// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import (
	"fmt"

	"cogentcore.org/core/math32"
)

// Spline is a multi-segment path: an ordered list of control [Node]s
// joined by [Bezier] curves, with samples addressed by total arc-length
// distance from the spline start. The spline listens to each of its
// curves and forwards any geometry change to its own listeners, after
// updating Length.
type Spline struct {
	notifier

	// Length is the total arc length, the sum of the curve lengths.
	// Read-only: updated on any change.
	Length float32

	nodes   []*Node
	curves  []*Bezier
	handles []Handle // our listener handle on each curve, parallel to curves
}

// NewSpline returns a new spline through the given nodes, in order.
func NewSpline(nodes ...*Node) *Spline {
	sp := &Spline{}
	for _, nd := range nodes {
		sp.AddNode(nd)
	}
	return sp
}

// Nodes returns the control nodes. Do not modify the slice.
func (sp *Spline) Nodes() []*Node { return sp.nodes }

// Curves returns the component curves. Do not modify the slice.
func (sp *Spline) Curves() []*Bezier { return sp.curves }

// Destroy disconnects the spline from all of its curves, and the
// curves from their nodes.
func (sp *Spline) Destroy() {
	for i, cb := range sp.curves {
		cb.Disconnect(sp.handles[i])
		cb.Destroy()
	}
	sp.curves = nil
	sp.handles = nil
}

func (sp *Spline) curveChanged() {
	sp.updateLength()
	sp.send()
}

func (sp *Spline) updateLength() {
	sum := float32(0)
	for _, cb := range sp.curves {
		sum += cb.Length
	}
	sp.Length = sum
}

// AddNode appends a node to the end of the spline, creating a new
// curve from the previous last node when there is one.
func (sp *Spline) AddNode(nd *Node) {
	sp.nodes = append(sp.nodes, nd)
	if len(sp.nodes) > 1 {
		cb := NewBezier(sp.nodes[len(sp.nodes)-2], nd)
		sp.curves = append(sp.curves, cb)
		sp.handles = append(sp.handles, cb.Connect(sp.curveChanged))
	}
	sp.updateLength()
	sp.send()
}

// InsertNode inserts a node at index i, splitting the curve that
// previously joined its neighbors. i must be an interior index:
// use [Spline.AddNode] to append.
func (sp *Spline) InsertNode(i int, nd *Node) error {
	if i <= 0 || i >= len(sp.nodes) {
		return fmt.Errorf("curve.Spline.InsertNode: index %d is not interior (%d nodes)", i, len(sp.nodes))
	}
	old := sp.curves[i-1]
	old.Disconnect(sp.handles[i-1])
	old.Destroy()
	c1 := NewBezier(sp.nodes[i-1], nd)
	c2 := NewBezier(nd, sp.nodes[i])
	sp.curves = append(sp.curves[:i-1], append([]*Bezier{c1, c2}, sp.curves[i:]...)...)
	sp.handles = append(sp.handles[:i-1], append([]Handle{c1.Connect(sp.curveChanged), c2.Connect(sp.curveChanged)}, sp.handles[i:]...)...)
	sp.nodes = append(sp.nodes[:i], append([]*Node{nd}, sp.nodes[i:]...)...)
	sp.updateLength()
	sp.send()
	return nil
}

// RemoveNode removes the node at index i, joining its neighbors with
// a single curve when the node is interior. A spline always keeps at
// least two nodes.
func (sp *Spline) RemoveNode(i int) error {
	if i < 0 || i >= len(sp.nodes) {
		return fmt.Errorf("curve.Spline.RemoveNode: index %d out of range (%d nodes)", i, len(sp.nodes))
	}
	if len(sp.nodes) <= 2 {
		return fmt.Errorf("curve.Spline.RemoveNode: spline must keep at least two nodes")
	}
	dropCurve := func(ci int) {
		sp.curves[ci].Disconnect(sp.handles[ci])
		sp.curves[ci].Destroy()
		sp.curves = append(sp.curves[:ci], sp.curves[ci+1:]...)
		sp.handles = append(sp.handles[:ci], sp.handles[ci+1:]...)
	}
	switch {
	case i == 0:
		dropCurve(0)
	case i == len(sp.nodes)-1:
		dropCurve(len(sp.curves) - 1)
	default:
		dropCurve(i)
		dropCurve(i - 1)
		nc := NewBezier(sp.nodes[i-1], sp.nodes[i+1])
		sp.curves = append(sp.curves[:i-1], append([]*Bezier{nc}, sp.curves[i-1:]...)...)
		sp.handles = append(sp.handles[:i-1], append([]Handle{nc.Connect(sp.curveChanged)}, sp.handles[i-1:]...)...)
	}
	sp.nodes = append(sp.nodes[:i], sp.nodes[i+1:]...)
	sp.updateLength()
	sp.send()
	return nil
}

// SampleAtDistance returns the frame at the given arc-length distance
// from the spline start, clamping to [0, Length], delegating to the
// curve containing that distance.
func (sp *Spline) SampleAtDistance(d float32) Sample {
	if len(sp.curves) == 0 {
		return Sample{Tangent: math32.Vec3(1, 0, 0), Up: math32.Vec3(0, 1, 0), Scale: math32.Vec2(1, 1)}
	}
	if d < 0 {
		d = 0
	}
	for _, cb := range sp.curves {
		if d <= cb.Length {
			return cb.SampleAtDistance(d)
		}
		d -= cb.Length
	}
	last := sp.curves[len(sp.curves)-1]
	return last.SampleAtDistance(last.Length)
}

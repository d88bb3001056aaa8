// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import "cogentcore.org/core/math32"

// Node is one control node of a [Bezier] curve or [Spline].
// It holds the on-path position and the outgoing handle point,
// plus the frame attributes (up vector, cross-section scale, roll)
// that are interpolated along the curve between adjacent nodes.
// All mutations go through setters, which notify any curves
// built on this node.
type Node struct {
	notifier

	position  math32.Vector3
	direction math32.Vector3
	up        math32.Vector3
	scale     math32.Vector2
	roll      float32
}

// NewNode returns a new control node at the given position with the
// given absolute handle point, with up = +Y, scale = (1, 1), roll = 0.
func NewNode(position, direction math32.Vector3) *Node {
	return &Node{
		position:  position,
		direction: direction,
		up:        math32.Vec3(0, 1, 0),
		scale:     math32.Vec2(1, 1),
	}
}

// Position returns the on-path position of this node.
func (nd *Node) Position() math32.Vector3 { return nd.position }

// Direction returns the absolute handle point of this node.
// The inverse handle on the other side is derived symmetrically
// as 2*Position - Direction.
func (nd *Node) Direction() math32.Vector3 { return nd.direction }

// Up returns the up vector hint used to orient the tangent frame here.
func (nd *Node) Up() math32.Vector3 { return nd.up }

// Scale returns the cross-section scale at this node:
// X scales the lateral (local Z) axis, Y the vertical (local Y) axis.
func (nd *Node) Scale() math32.Vector2 { return nd.scale }

// Roll returns the roll angle in radians about the tangent at this node.
func (nd *Node) Roll() float32 { return nd.roll }

// SetPosition sets the on-path position and notifies listeners.
func (nd *Node) SetPosition(p math32.Vector3) {
	if nd.position == p {
		return
	}
	nd.position = p
	nd.send()
}

// SetDirection sets the absolute handle point and notifies listeners.
func (nd *Node) SetDirection(d math32.Vector3) {
	if nd.direction == d {
		return
	}
	nd.direction = d
	nd.send()
}

// SetUp sets the up vector hint and notifies listeners.
func (nd *Node) SetUp(u math32.Vector3) {
	if nd.up == u {
		return
	}
	nd.up = u
	nd.send()
}

// SetScale sets the cross-section scale and notifies listeners.
func (nd *Node) SetScale(s math32.Vector2) {
	if nd.scale == s {
		return
	}
	nd.scale = s
	nd.send()
}

// SetRoll sets the roll angle in radians and notifies listeners.
func (nd *Node) SetRoll(r float32) {
	if nd.roll == r {
		return
	}
	nd.roll = r
	nd.send()
}

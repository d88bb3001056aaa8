// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import (
	"fmt"

	"cogentcore.org/core/base/iox/tomlx"
	"cogentcore.org/core/math32"
)

// NodeData is the serializable form of a [Node].
// Zero Up and Scale values are normalized to the node defaults
// (+Y and (1, 1)) on load.
type NodeData struct {
	Position  math32.Vector3
	Direction math32.Vector3
	Up        math32.Vector3
	Scale     math32.Vector2
	Roll      float32
}

// SplineData is the serializable form of a [Spline]: a path file
// is a TOML document with a list of nodes.
type SplineData struct {
	Nodes []NodeData
}

// Data returns the serializable form of this spline.
func (sp *Spline) Data() *SplineData {
	d := &SplineData{}
	for _, nd := range sp.nodes {
		d.Nodes = append(d.Nodes, NodeData{
			Position:  nd.position,
			Direction: nd.direction,
			Up:        nd.up,
			Scale:     nd.scale,
			Roll:      nd.roll,
		})
	}
	return d
}

// NewSplineFromData returns a new spline built from serialized data.
// It errors if fewer than two nodes are given.
func NewSplineFromData(d *SplineData) (*Spline, error) {
	if len(d.Nodes) < 2 {
		return nil, fmt.Errorf("curve.NewSplineFromData: a spline requires at least two nodes, got %d", len(d.Nodes))
	}
	sp := &Spline{}
	for _, nd := range d.Nodes {
		n := NewNode(nd.Position, nd.Direction)
		if nd.Up != (math32.Vector3{}) {
			n.up = nd.Up
		}
		if nd.Scale != (math32.Vector2{}) {
			n.scale = nd.Scale
		}
		n.roll = nd.Roll
		sp.AddNode(n)
	}
	return sp, nil
}

// OpenTOML opens a spline from a TOML path file.
func OpenTOML(filename string) (*Spline, error) {
	d := &SplineData{}
	if err := tomlx.Open(d, filename); err != nil {
		return nil, err
	}
	return NewSplineFromData(d)
}

// SaveTOML saves the spline to a TOML path file.
func (sp *Spline) SaveTOML(filename string) error {
	return tomlx.Save(sp.Data(), filename)
}

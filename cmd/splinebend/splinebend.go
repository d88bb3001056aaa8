// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command splinebend bends a generated source mesh along a spline path
// file and writes the result as a Wavefront OBJ.
package main

import (
	"os"

	"cogentcore.org/core/cli"
	"cogentcore.org/splinemesh"
	"cogentcore.org/splinemesh/curve"
)

// Config is the configuration information for the splinebend cli.
type Config struct {

	// Path is the TOML spline path file to bend along.
	Path string `posarg:"0"`

	// Output is the OBJ file to write.
	Output string `flag:"o,output" default:"bent.obj"`

	// Mode is the fill mode: once, repeat, or stretch.
	Mode splinemesh.FillModes `default:"repeat"`

	// Shape is the generated source mesh: tube or plane.
	Shape string `default:"tube"`

	// Length is the X extent of one copy of the source mesh.
	Length float32 `default:"1"`

	// Radius is the tube radius.
	Radius float32 `default:"0.1"`

	// Width is the plane width.
	Width float32 `default:"0.5"`

	// Segs is the number of segments along and around the source mesh.
	Segs int `default:"8"`

	// IntervalStart is the distance on the spline where bending starts.
	IntervalStart float32

	// IntervalEnd is the distance on the spline where bending ends;
	// 0 means the end of the spline.
	IntervalEnd float32
}

func main() { //types:skip
	opts := cli.DefaultOptions("splinebend", "Splinebend bends a generated source mesh along a spline path file and writes the result as a Wavefront OBJ.")
	cli.Run(opts, &Config{}, Bend)
}

// Bend bends the configured source mesh along the given spline path
// file and writes the output mesh.
func Bend(c *Config) error { //cli:cmd -root
	sp, err := curve.OpenTOML(c.Path)
	if err != nil {
		return err
	}
	var src *splinemesh.SourceMesh
	switch c.Shape {
	case "plane":
		src = splinemesh.NewPlaneSource(c.Length, c.Width, c.Segs, 1)
	default:
		src = splinemesh.NewTubeSource(c.Length, c.Radius, c.Segs, c.Segs)
	}
	mb := splinemesh.NewMeshBender()
	mb.SetSource(src)
	mb.SetMode(c.Mode)
	if err := mb.SetSplineInterval(sp, c.IntervalStart, c.IntervalEnd); err != nil {
		return err
	}
	mb.DoUpdate()
	f, err := os.Create(c.Output)
	if err != nil {
		return err
	}
	defer f.Close()
	return mb.Output().WriteObj(f)
}

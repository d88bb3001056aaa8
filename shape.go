// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package splinemesh

import (
	"math"

	"cogentcore.org/core/math32"
)

// NewPlaneSource returns a flat ribbon source mesh for roads and rails:
// a plane lying in the XZ plane with normal +Y, centered on the origin,
// spanning the given length along the bend axis (X) and width along Z,
// divided into the given number of segments along each axis.
// Texture U runs along the length, V across the width.
func NewPlaneSource(length, width float32, lengthSegs, widthSegs int) *SourceMesh {
	if lengthSegs < 1 {
		lengthSegs = 1
	}
	if widthSegs < 1 {
		widthSegs = 1
	}
	nVtx := (lengthSegs + 1) * (widthSegs + 1)
	vertex := math32.NewArrayF32(nVtx*3, nVtx*3)
	norm := math32.NewArrayF32(nVtx*3, nVtx*3)
	tex := math32.NewArrayF32(nVtx*2, nVtx*2)
	index := math32.NewArrayU32(0, lengthSegs*widthSegs*6)

	up := math32.Vec3(0, 1, 0)
	idx := 0
	for i := 0; i <= lengthSegs; i++ {
		u := float32(i) / float32(lengthSegs)
		x := (u - 0.5) * length
		for j := 0; j <= widthSegs; j++ {
			v := float32(j) / float32(widthSegs)
			z := (v - 0.5) * width
			vertex.SetVector3(idx*3, math32.Vec3(x, 0, z))
			norm.SetVector3(idx*3, up)
			tex.Set(idx*2, u, v)
			idx++
		}
	}
	row := widthSegs + 1
	for i := 1; i <= lengthSegs; i++ {
		for j := 1; j <= widthSegs; j++ {
			a := uint32((i-1)*row + j - 1)
			b := uint32((i-1)*row + j)
			c := uint32(i*row + j)
			d := uint32(i*row + j - 1)
			index = append(index, a, b, c, a, c, d)
		}
	}
	return NewSourceMesh(vertex, norm, tex, index)
}

// NewTubeSource returns an open tube source mesh for pipes and cables:
// a cylinder shell along the bend axis (X), centered on the origin,
// with the given radius, number of radial segments around the
// circumference, and number of segments along the length. The seam
// vertex is duplicated so texture coordinates wrap cleanly.
// Texture U runs along the length, V around the circumference.
func NewTubeSource(length, radius float32, radialSegs, lengthSegs int) *SourceMesh {
	if radialSegs < 3 {
		radialSegs = 3
	}
	if lengthSegs < 1 {
		lengthSegs = 1
	}
	nVtx := (lengthSegs + 1) * (radialSegs + 1)
	vertex := math32.NewArrayF32(nVtx*3, nVtx*3)
	norm := math32.NewArrayF32(nVtx*3, nVtx*3)
	tex := math32.NewArrayF32(nVtx*2, nVtx*2)
	index := math32.NewArrayU32(0, lengthSegs*radialSegs*6)

	idx := 0
	for i := 0; i <= lengthSegs; i++ {
		u := float32(i) / float32(lengthSegs)
		x := (u - 0.5) * length
		for j := 0; j <= radialSegs; j++ {
			v := float32(j) / float32(radialSegs)
			ang := v * 2 * math.Pi
			ny := math32.Cos(ang)
			nz := math32.Sin(ang)
			vertex.SetVector3(idx*3, math32.Vec3(x, radius*ny, radius*nz))
			norm.SetVector3(idx*3, math32.Vec3(0, ny, nz))
			tex.Set(idx*2, u, v)
			idx++
		}
	}
	row := radialSegs + 1
	for i := 1; i <= lengthSegs; i++ {
		for j := 1; j <= radialSegs; j++ {
			a := uint32((i-1)*row + j - 1)
			b := uint32((i-1)*row + j)
			c := uint32(i*row + j)
			d := uint32(i*row + j - 1)
			index = append(index, a, b, c, a, c, d)
		}
	}
	return NewSourceMesh(vertex, norm, tex, index)
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package splinemesh

//go:generate core generate

// FillModes are the algorithms a [MeshBender] uses to fill the bound
// path with the source mesh.
type FillModes int32 //enums:enum

const (
	// Once places a single copy of the source mesh at the start of the
	// path. On a single curve, vertices beyond the curve length are
	// clipped from the output.
	Once FillModes = iota

	// Repeat tiles whole copies of the source mesh to fill the bound
	// interval, truncating the remainder. An interval shorter than the
	// source mesh produces an empty output.
	Repeat

	// Stretch deforms the source mesh along its X extent so that it
	// exactly fits the bound interval.
	Stretch
)

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package curve provides arc-length parameterized cubic Bézier curves
// and multi-segment splines, sampled as oriented frames suitable for
// bending meshes along a path. Curves are built from control [Node]s
// and notify listeners when the underlying geometry changes.
package curve

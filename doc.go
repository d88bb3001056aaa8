// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package splinemesh bends a static source mesh so that it follows a
// parametric path, producing procedural path-following meshes such as
// rails, pipes, roads, and cables. The [MeshBender] binds a path from
// the curve package, tracks staleness through change notifications,
// and lazily recomputes one [MeshData] bundle per dirty period using
// one of three fill modes: [Once], [Repeat], or [Stretch].
package splinemesh

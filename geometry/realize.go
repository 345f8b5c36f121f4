// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geometry

import (
	"cogentcore.org/curvemesh/math32"
	"cogentcore.org/curvemesh/mesh"
)

// RealizeMesh returns one mesh holding the mesh of the set and the
// meshes of all nested instances, each moved by the sum of the
// offsets of the instances leading to it.
func (gs *GeometrySet) RealizeMesh() *mesh.Mesh {
	ms := mesh.New()
	gs.realize(ms, math32.Vector3{})
	return ms
}

func (gs *GeometrySet) realize(ms *mesh.Mesh, off math32.Vector3) {
	if gs.Has(ComponentMesh) {
		m := gs.Mesh.Clone()
		m.Translate(off)
		ms.Append(m)
	}
	for _, in := range gs.Instances {
		if in.Geometry != nil {
			in.Geometry.realize(ms, off.Add(in.Offset))
		}
	}
}

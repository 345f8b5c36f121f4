// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sweep

import (
	"cogentcore.org/curvemesh/curve"
	"cogentcore.org/curvemesh/mesh"
)

// Wire returns a mesh with one vertex per path point and an edge
// per path segment, including the closing one of cyclic paths.
// It has no faces.
func Wire(path *curve.Spline) (*mesh.Mesh, error) {
	return WireCurve(curve.NewCurve(path))
}

// WireCurve returns the merged wire meshes of all path splines.
func WireCurve(path *curve.Curve) (*mesh.Mesh, error) {
	if path.IsEmpty() {
		return nil, ErrEmptyPath
	}
	ms := mesh.New()
	var es mesh.EdgeSet
	for _, sp := range path.Splines {
		if sp.IsEmpty() {
			continue
		}
		n := sp.Len()
		off := ms.NumVertices()
		for _, pt := range sp.Points {
			ms.AddVertex(pt.Pos)
		}
		for i := range sp.NumSegments() {
			es.Add(off+i, off+(i+1)%n)
		}
	}
	ms.Edges = es.Edges()
	return ms, nil
}

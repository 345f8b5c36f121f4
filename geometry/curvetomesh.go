// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geometry

import (
	"context"
	"log/slog"

	"cogentcore.org/curvemesh/curve"
	"cogentcore.org/curvemesh/mesh"
	"cogentcore.org/curvemesh/sweep"
)

// Socket names of the curve to mesh node.
const (
	InputCurve   = "Curve"
	InputProfile = "Profile Curve"
	OutputMesh   = "Mesh"
)

// Messages reported by [CurveToMesh].
const (
	MsgProfileInstances = "Instances are not supported in the profile input"
	MsgProfileNoCurve   = "No curve data available in the profile input"
	MsgCurveNoCurve     = "No curve data available in curve input"
)

// CurveToMesh converts the curves in curveSet, including those in nested
// instances, to meshes. With a profile curve in profileSet each path is
// swept into a tube; otherwise a wire mesh mirroring the path is built.
// Every processed geometry keeps only its mesh and instances. The inputs
// are not modified.
func CurveToMesh(ctx context.Context, curveSet, profileSet GeometrySet, opts ...sweep.Option) (GeometrySet, *Diagnostics) {
	ds := &Diagnostics{}
	if profileSet.HasInstances() {
		ds.Add(Error, MsgProfileInstances)
		return GeometrySet{}, ds
	}
	var profile *curve.Curve
	if profileSet.HasCurve() {
		profile = profileSet.Curve
	} else if !profileSet.IsEmpty() {
		ds.Add(Warning, MsgProfileNoCurve)
	}

	out := curveSet.Clone()
	err := ModifyGeometrySets(ctx, &out, func(gs GeometrySet) GeometrySet {
		curveToMesh(&gs, profile, ds, opts...)
		return gs.KeepOnly(ComponentMesh, ComponentInstances)
	})
	if err != nil {
		ds.Add(Error, err.Error())
		return GeometrySet{}, ds
	}
	return out, ds
}

func curveToMesh(gs *GeometrySet, profile *curve.Curve, ds *Diagnostics, opts ...sweep.Option) {
	if !gs.HasCurve() {
		if !gs.IsEmpty() {
			ds.Add(Warning, MsgCurveNoCurve)
		}
		return
	}
	var ms *mesh.Mesh
	var err error
	if profile == nil {
		ms, err = sweep.WireCurve(gs.Curve)
	} else {
		ms, err = sweep.SweepCurve(gs.Curve, profile, opts...)
	}
	if err != nil {
		ds.Add(Error, err.Error())
		gs.ReplaceMesh(nil)
		return
	}
	slog.Debug("curve to mesh", "vertices", ms.NumVertices(), "edges", ms.NumEdges(), "faces", ms.NumFaces())
	gs.ReplaceMesh(ms)
}

// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geometry provides the geometry set container passed between
// procedural modeling nodes, and the curve to mesh node operating on it.
package geometry

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jinzhu/copier"

	"cogentcore.org/curvemesh/base/errors"
	"cogentcore.org/curvemesh/curve"
	"cogentcore.org/curvemesh/math32"
	"cogentcore.org/curvemesh/mesh"
)

// ComponentType is the kind of one geometry component in a [GeometrySet].
type ComponentType int32

const (
	ComponentMesh ComponentType = iota
	ComponentCurve
	ComponentPointCloud
	ComponentInstances
	ComponentVolume
)

var componentTypeNames = []string{"Mesh", "Curve", "PointCloud", "Instances", "Volume"}

func (ct ComponentType) String() string {
	if ct < 0 || int(ct) >= len(componentTypeNames) {
		return fmt.Sprintf("ComponentType(%d)", int32(ct))
	}
	return componentTypeNames[ct]
}

// Instance places a nested geometry set at an offset.
type Instance struct {
	Offset   math32.Vector3
	Geometry *GeometrySet
}

// Volume is a dense grid of density values within bounds.
type Volume struct {
	Bounds  math32.Box3
	Size    [3]int
	Density []float32
}

// GeometrySet holds at most one component of each [ComponentType].
// A component is present when it holds data; the zero value is empty.
type GeometrySet struct {
	Mesh       *mesh.Mesh
	Curve      *curve.Curve
	PointCloud []math32.Vector3
	Instances  []Instance
	Volume     *Volume
}

// Has returns whether the component of the given type holds data.
func (gs *GeometrySet) Has(ct ComponentType) bool {
	switch ct {
	case ComponentMesh:
		return !gs.Mesh.IsEmpty()
	case ComponentCurve:
		return !gs.Curve.IsEmpty()
	case ComponentPointCloud:
		return len(gs.PointCloud) > 0
	case ComponentInstances:
		return len(gs.Instances) > 0
	case ComponentVolume:
		return gs.Volume != nil
	}
	return false
}

// HasCurve returns whether the set holds curve data.
func (gs *GeometrySet) HasCurve() bool {
	return gs.Has(ComponentCurve)
}

// HasInstances returns whether the set holds instances.
func (gs *GeometrySet) HasInstances() bool {
	return gs.Has(ComponentInstances)
}

// Components returns the types of the components holding data.
func (gs *GeometrySet) Components() []ComponentType {
	var cts []ComponentType
	for ct := range ComponentType(len(componentTypeNames)) {
		if gs.Has(ct) {
			cts = append(cts, ct)
		}
	}
	return cts
}

// IsEmpty returns true if no component holds data.
func (gs *GeometrySet) IsEmpty() bool {
	return len(gs.Components()) == 0
}

// ReplaceMesh sets the mesh component, replacing any existing one.
func (gs *GeometrySet) ReplaceMesh(ms *mesh.Mesh) {
	gs.Mesh = ms
}

// KeepOnly returns a new set holding only the components of the given
// types. Components are shared with the receiver, not copied.
func (gs *GeometrySet) KeepOnly(types ...ComponentType) GeometrySet {
	var ns GeometrySet
	for _, ct := range types {
		switch ct {
		case ComponentMesh:
			ns.Mesh = gs.Mesh
		case ComponentCurve:
			ns.Curve = gs.Curve
		case ComponentPointCloud:
			ns.PointCloud = gs.PointCloud
		case ComponentInstances:
			ns.Instances = gs.Instances
		case ComponentVolume:
			ns.Volume = gs.Volume
		}
	}
	return ns
}

// Clone returns a deep copy of the set, including all nested instance
// geometry. Instances sharing one geometry share its copy.
func (gs *GeometrySet) Clone() GeometrySet {
	return gs.clone(map[*GeometrySet]*GeometrySet{})
}

func (gs *GeometrySet) clone(seen map[*GeometrySet]*GeometrySet) GeometrySet {
	ns := GeometrySet{
		Mesh:       gs.Mesh.Clone(),
		Curve:      gs.Curve.Clone(),
		PointCloud: slices.Clone(gs.PointCloud),
	}
	if gs.Volume != nil {
		ns.Volume = &Volume{}
		errors.Log(copier.CopyWithOption(ns.Volume, gs.Volume, copier.Option{DeepCopy: true}))
	}
	if gs.Instances != nil {
		ns.Instances = make([]Instance, len(gs.Instances))
		for i, in := range gs.Instances {
			ns.Instances[i].Offset = in.Offset
			if in.Geometry == nil {
				continue
			}
			cg, ok := seen[in.Geometry]
			if !ok {
				c := in.Geometry.clone(seen)
				cg = &c
				seen[in.Geometry] = cg
			}
			ns.Instances[i].Geometry = cg
		}
	}
	return ns
}

func (gs *GeometrySet) String() string {
	var parts []string
	for _, ct := range gs.Components() {
		parts = append(parts, ct.String())
	}
	return "GeometrySet{" + strings.Join(parts, ", ") + "}"
}

// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geometry

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/curvemesh/curve"
	"cogentcore.org/curvemesh/math32"
	"cogentcore.org/curvemesh/mesh"
)

func line(n int) *curve.Curve {
	return curve.NewCurve(curve.NewLine(math32.Vec3(0, 0, 0), math32.Vec3(0, 0, 1), n))
}

func TestComponentType(t *testing.T) {
	assert.Equal(t, "Mesh", ComponentMesh.String())
	assert.Equal(t, "Instances", ComponentInstances.String())
	assert.Equal(t, "ComponentType(9)", ComponentType(9).String())
}

func TestGeometrySetHas(t *testing.T) {
	var gs GeometrySet
	assert.True(t, gs.IsEmpty())
	assert.False(t, gs.HasCurve())
	assert.Equal(t, "GeometrySet{}", gs.String())

	gs.Curve = &curve.Curve{}
	assert.False(t, gs.HasCurve(), "curve without points")
	assert.True(t, gs.IsEmpty())

	gs.Curve = line(2)
	gs.PointCloud = []math32.Vector3{{}}
	gs.Instances = []Instance{{Geometry: &GeometrySet{}}}
	assert.True(t, gs.HasCurve())
	assert.True(t, gs.HasInstances())
	assert.False(t, gs.Has(ComponentMesh))
	assert.Equal(t, []ComponentType{ComponentCurve, ComponentPointCloud, ComponentInstances}, gs.Components())
	assert.Equal(t, "GeometrySet{Curve, PointCloud, Instances}", gs.String())
}

func TestKeepOnly(t *testing.T) {
	ms := mesh.New()
	ms.AddVertex(math32.Vec3(1, 2, 3))
	gs := GeometrySet{
		Mesh:       ms,
		Curve:      line(2),
		PointCloud: []math32.Vector3{{}},
		Volume:     &Volume{},
	}
	ns := gs.KeepOnly(ComponentMesh, ComponentInstances)
	assert.Same(t, ms, ns.Mesh)
	assert.Nil(t, ns.Curve)
	assert.Nil(t, ns.PointCloud)
	assert.Nil(t, ns.Volume)

	// receiver is untouched
	assert.True(t, gs.HasCurve())
	assert.True(t, gs.Has(ComponentVolume))
}

func TestClone(t *testing.T) {
	shared := &GeometrySet{Curve: line(3)}
	gs := GeometrySet{
		Curve:      line(2),
		PointCloud: []math32.Vector3{math32.Vec3(1, 1, 1)},
		Volume:     &Volume{Size: [3]int{1, 1, 1}, Density: []float32{0.5}},
		Instances: []Instance{
			{Offset: math32.Vec3(1, 0, 0), Geometry: shared},
			{Offset: math32.Vec3(2, 0, 0), Geometry: shared},
			{Offset: math32.Vec3(3, 0, 0)},
		},
	}
	cs := gs.Clone()
	require.Len(t, cs.Instances, 3)
	assert.NotSame(t, shared, cs.Instances[0].Geometry)
	assert.Same(t, cs.Instances[0].Geometry, cs.Instances[1].Geometry)
	assert.Nil(t, cs.Instances[2].Geometry)
	assert.Equal(t, math32.Vec3(2, 0, 0), cs.Instances[1].Offset)

	cs.Curve.Splines[0].Points[0].Pos.X = 10
	cs.PointCloud[0].X = 10
	cs.Volume.Density[0] = 1
	cs.Instances[0].Geometry.Curve.Splines[0].Points[0].Radius = 5
	assert.Equal(t, float32(0), gs.Curve.Splines[0].Points[0].Pos.X)
	assert.Equal(t, float32(1), gs.PointCloud[0].X)
	assert.Equal(t, float32(0.5), gs.Volume.Density[0])
	assert.Equal(t, float32(1), shared.Curve.Splines[0].Points[0].Radius)
}

func TestDiagnostics(t *testing.T) {
	ds := &Diagnostics{}
	assert.False(t, ds.HasError())
	ds.Add(Warning, "first")
	ds.Add(Warning, "first")
	assert.Equal(t, 1, ds.Len())
	assert.False(t, ds.HasError())

	ds.Add(Error, "second")
	assert.True(t, ds.HasError())
	assert.Equal(t, []Diagnostic{{Warning, "first"}, {Error, "second"}}, ds.Items())
	assert.Equal(t, "Warning: first\nError: second\n", ds.String())
	assert.Equal(t, "Severity(7)", Severity(7).String())
}

func TestDiagnosticsConcurrent(t *testing.T) {
	ds := &Diagnostics{}
	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ds.Add(Warning, fmt.Sprint("msg ", i%10))
		}()
	}
	wg.Wait()
	assert.Equal(t, 10, ds.Len())
}

func TestModifyGeometrySets(t *testing.T) {
	leaf := &GeometrySet{Curve: line(2)}
	mid := &GeometrySet{
		Curve:     line(3),
		Instances: []Instance{{Geometry: leaf}, {Geometry: leaf}},
	}
	gs := &GeometrySet{
		Curve:     line(4),
		Instances: []Instance{{Geometry: mid}, {Geometry: leaf}},
	}
	var calls atomic.Int32
	err := ModifyGeometrySets(context.Background(), gs, func(g GeometrySet) GeometrySet {
		calls.Add(1)
		ms := mesh.New()
		for range g.Curve.NumPoints() {
			ms.AddVertex(math32.Vector3{})
		}
		g.ReplaceMesh(ms)
		return g.KeepOnly(ComponentMesh, ComponentInstances)
	})
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load(), "each distinct set once")
	assert.Equal(t, 4, gs.Mesh.NumVertices())
	assert.Equal(t, 3, mid.Mesh.NumVertices())
	assert.Equal(t, 2, leaf.Mesh.NumVertices())
	assert.Nil(t, gs.Curve)
	assert.Nil(t, mid.Curve)
	assert.Nil(t, leaf.Curve)
	assert.Same(t, mid, gs.Instances[0].Geometry)
}

func TestModifyGeometrySetsCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	gs := &GeometrySet{Curve: line(2)}
	err := ModifyGeometrySets(ctx, gs, func(g GeometrySet) GeometrySet {
		return GeometrySet{}
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.True(t, gs.HasCurve(), "unchanged on cancel")
}

func TestRealizeMesh(t *testing.T) {
	unit := mesh.New()
	unit.AddVertex(math32.Vec3(0, 0, 0))
	unit.AddVertex(math32.Vec3(1, 0, 0))
	unit.Edges = append(unit.Edges, mesh.NewEdge(0, 1))

	leaf := &GeometrySet{Mesh: unit}
	gs := GeometrySet{
		Mesh: unit,
		Instances: []Instance{
			{Offset: math32.Vec3(0, 2, 0), Geometry: leaf},
			{Offset: math32.Vec3(0, 0, 3), Geometry: &GeometrySet{
				Instances: []Instance{{Offset: math32.Vec3(5, 0, 0), Geometry: leaf}},
			}},
		},
	}
	ms := gs.RealizeMesh()
	require.NoError(t, ms.Validate())
	assert.Equal(t, 6, ms.NumVertices())
	assert.Equal(t, []mesh.Edge{{A: 0, B: 1}, {A: 2, B: 3}, {A: 4, B: 5}}, ms.Edges)
	assert.Equal(t, math32.Vec3(1, 2, 0), ms.Vertices[3])
	assert.Equal(t, math32.Vec3(6, 0, 3), ms.Vertices[5])
	assert.Equal(t, math32.Vec3(1, 0, 0), unit.Vertices[1], "source unchanged")
}

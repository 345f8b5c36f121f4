// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh provides a polygon mesh container of vertices,
// unordered edges and face loops, as produced by sweeping curves.
package mesh

import (
	"fmt"
	"slices"

	"github.com/jinzhu/copier"

	"cogentcore.org/curvemesh/base/errors"
	"cogentcore.org/curvemesh/math32"
)

// Edge is an unordered pair of vertex indexes, stored with A < B.
type Edge struct {
	A, B int
}

// NewEdge returns the canonical edge between vertexes a and b.
func NewEdge(a, b int) Edge {
	if a > b {
		a, b = b, a
	}
	return Edge{A: a, B: b}
}

// Face is an ordered loop of at least three vertex indexes.
type Face []int

// key returns the sorted vertex indexes of the face,
// identifying it independent of winding and starting vertex.
func (f Face) key() string {
	s := slices.Clone(f)
	slices.Sort(s)
	return fmt.Sprint(s)
}

// Mesh holds vertex positions, edges and face loops.
// Every index in Edges and Faces refers to Vertices.
type Mesh struct {

	// Vertices are the vertex positions.
	Vertices []math32.Vector3

	// Edges are the unique edges, each with A < B.
	Edges []Edge

	// Faces are the face loops, each with at least three vertexes.
	Faces []Face
}

// New returns a new empty mesh.
func New() *Mesh {
	return &Mesh{}
}

// NumVertices returns the number of vertices.
func (ms *Mesh) NumVertices() int {
	if ms == nil {
		return 0
	}
	return len(ms.Vertices)
}

// NumEdges returns the number of edges.
func (ms *Mesh) NumEdges() int {
	if ms == nil {
		return 0
	}
	return len(ms.Edges)
}

// NumFaces returns the number of faces.
func (ms *Mesh) NumFaces() int {
	if ms == nil {
		return 0
	}
	return len(ms.Faces)
}

// IsEmpty returns true if the mesh has no vertices.
func (ms *Mesh) IsEmpty() bool {
	return ms.NumVertices() == 0
}

// AddVertex appends a vertex and returns its index.
func (ms *Mesh) AddVertex(v math32.Vector3) int {
	ms.Vertices = append(ms.Vertices, v)
	return len(ms.Vertices) - 1
}

// BBox returns the bounding box of the vertices.
func (ms *Mesh) BBox() math32.Box3 {
	bb := math32.B3Empty()
	if ms != nil {
		bb.ExpandByPoints(ms.Vertices)
	}
	return bb
}

// Append adds the vertices, edges and faces of other to this mesh,
// offsetting the indexes of other past the existing vertices.
func (ms *Mesh) Append(other *Mesh) {
	if other.IsEmpty() {
		return
	}
	off := len(ms.Vertices)
	ms.Vertices = append(ms.Vertices, other.Vertices...)
	for _, e := range other.Edges {
		ms.Edges = append(ms.Edges, Edge{A: e.A + off, B: e.B + off})
	}
	for _, f := range other.Faces {
		nf := make(Face, len(f))
		for i, vi := range f {
			nf[i] = vi + off
		}
		ms.Faces = append(ms.Faces, nf)
	}
}

// Translate moves all vertices by the given offset.
func (ms *Mesh) Translate(off math32.Vector3) {
	for i := range ms.Vertices {
		ms.Vertices[i].SetAdd(off)
	}
}

// Merge returns a new mesh holding all of the given meshes,
// in order, skipping nil ones.
func Merge(meshes ...*Mesh) *Mesh {
	ms := New()
	for _, m := range meshes {
		if m != nil {
			ms.Append(m)
		}
	}
	return ms
}

// Clone returns a deep copy of the mesh.
func (ms *Mesh) Clone() *Mesh {
	if ms == nil {
		return nil
	}
	nm := New()
	errors.Log(copier.CopyWithOption(nm, ms, copier.Option{DeepCopy: true}))
	return nm
}

// Validate checks the mesh invariants: all indexes in range,
// edges between two distinct vertices and unique, and faces of
// at least three vertexes, distinct as vertex sets.
func (ms *Mesh) Validate() error {
	nv := ms.NumVertices()
	inRange := func(i int) bool { return i >= 0 && i < nv }
	edges := make(map[Edge]struct{}, ms.NumEdges())
	for i, e := range ms.Edges {
		if !inRange(e.A) || !inRange(e.B) {
			return fmt.Errorf("mesh: edge %d %v out of range of %d vertices", i, e, nv)
		}
		if e.A >= e.B {
			return fmt.Errorf("mesh: edge %d %v is degenerate or not canonical", i, e)
		}
		if _, has := edges[e]; has {
			return fmt.Errorf("mesh: edge %d %v is a duplicate", i, e)
		}
		edges[e] = struct{}{}
	}
	faces := make(map[string]int, ms.NumFaces())
	for i, f := range ms.Faces {
		if len(f) < 3 {
			return fmt.Errorf("mesh: face %d has only %d vertices", i, len(f))
		}
		for _, vi := range f {
			if !inRange(vi) {
				return fmt.Errorf("mesh: face %d index %d out of range of %d vertices", i, vi, nv)
			}
		}
		k := f.key()
		if j, has := faces[k]; has {
			return fmt.Errorf("mesh: face %d is a duplicate of face %d", i, j)
		}
		faces[k] = i
	}
	return nil
}

// LooseEdges returns the edges that are not on the boundary of any face.
func (ms *Mesh) LooseEdges() []Edge {
	onFace := make(map[Edge]struct{})
	for _, f := range ms.Faces {
		for i, vi := range f {
			onFace[NewEdge(vi, f[(i+1)%len(f)])] = struct{}{}
		}
	}
	var loose []Edge
	for _, e := range ms.Edges {
		if _, has := onFace[e]; !has {
			loose = append(loose, e)
		}
	}
	return loose
}

// Triangulate returns triangle vertex indexes, three per triangle,
// from a fan triangulation of every face loop.
func (ms *Mesh) Triangulate() []uint32 {
	var idx []uint32
	for _, f := range ms.Faces {
		for i := 1; i < len(f)-1; i++ {
			idx = append(idx, uint32(f[0]), uint32(f[i]), uint32(f[i+1]))
		}
	}
	return idx
}

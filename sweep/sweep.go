// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sweep builds meshes from sampled curves: tubes made by
// sweeping a profile curve along a path curve, and wire meshes that
// mirror a path with vertices and edges only.
package sweep

import (
	"fmt"
	"log/slog"

	"cogentcore.org/curvemesh/base/errors"
	"cogentcore.org/curvemesh/curve"
	"cogentcore.org/curvemesh/curve/frames"
	"cogentcore.org/curvemesh/math32"
	"cogentcore.org/curvemesh/mesh"
)

var (
	// ErrEmptyPath is returned when the path curve has no points.
	ErrEmptyPath = errors.New("sweep: path curve has no points")

	// ErrEmptyProfile is returned when the profile curve has no points.
	ErrEmptyProfile = errors.New("sweep: profile curve has no points")
)

// Options are the settings for sweeping.
type Options struct {

	// NormalMode selects how the path frames are oriented.
	NormalMode curve.NormalMode
}

// Option sets one of the [Options].
type Option func(o *Options)

// WithNormalMode sets the [Options.NormalMode].
func WithNormalMode(mode curve.NormalMode) Option {
	return func(o *Options) {
		o.NormalMode = mode
	}
}

func newOptions(opts []Option) *Options {
	o := &Options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Sweep returns the mesh made by placing a copy of the profile at every
// point of the path, oriented by the path frame and scaled by the point
// radius, and connecting consecutive copies with quads. The profile x and y
// axes map to the frame normal and binormal, and its z axis to the tangent.
// Copies at points of zero radius collapse into one pole vertex connected
// with triangles. No end caps are made.
func Sweep(path, profile *curve.Spline, opts ...Option) (*mesh.Mesh, error) {
	return SweepCurve(curve.NewCurve(path), curve.NewCurve(profile), opts...)
}

// SweepCurve sweeps every profile spline along every path spline,
// merging all of the tubes into one mesh. Empty splines are skipped.
// Profile loops may have different numbers of points.
func SweepCurve(path, profile *curve.Curve, opts ...Option) (*mesh.Mesh, error) {
	if path.IsEmpty() {
		return nil, ErrEmptyPath
	}
	if profile.IsEmpty() {
		return nil, ErrEmptyProfile
	}
	o := newOptions(opts)
	b := &builder{ms: mesh.New()}
	for pi, sp := range path.Splines {
		if sp.IsEmpty() {
			continue
		}
		fs := frames.ComputeMode(sp, o.NormalMode)
		for _, pr := range profile.Splines {
			if pr.IsEmpty() {
				continue
			}
			b.sweep(sp, fs, pr)
		}
		slog.Debug("sweep: path spline done", "spline", pi, "points", sp.Len(), "vertices", b.ms.NumVertices())
	}
	ms := b.finish()
	if err := ms.Validate(); err != nil {
		return nil, fmt.Errorf("sweep: invalid result: %w", err)
	}
	return ms, nil
}

// builder accumulates tubes into one mesh.
type builder struct {
	ms    *mesh.Mesh
	edges mesh.EdgeSet
}

func (b *builder) finish() *mesh.Mesh {
	b.ms.Edges = b.edges.Edges()
	return b.ms
}

// ring adds the copy of the profile for the given path point and frame,
// returning its vertex indexes: one per profile point, or a single
// pole vertex when the radius is zero.
func (b *builder) ring(pt curve.Point, fr frames.Frame, profile *curve.Spline) []int {
	if profile.Len() > 1 && pt.Radius == 0 {
		return []int{b.ms.AddVertex(pt.Pos)}
	}
	rg := make([]int, profile.Len())
	for j, pp := range profile.Points {
		rg[j] = b.ms.AddVertex(Transform(pt, fr, pp.Pos))
	}
	return rg
}

func (b *builder) sweep(path *curve.Spline, fs []frames.Frame, profile *curve.Spline) {
	n := path.Len()
	m := profile.Len()
	psegs := profile.NumSegments()
	rings := make([][]int, n)
	for i, pt := range path.Points {
		rings[i] = b.ring(pt, fs[i], profile)
		if len(rings[i]) < 2 {
			continue
		}
		// profile edges of every ring, which also bound the ends
		// of open tubes and make up a single point path
		for j := range psegs {
			b.edges.Add(rings[i][j], rings[i][(j+1)%m])
		}
	}
	for i := range path.NumSegments() {
		b.connect(rings[i], rings[(i+1)%n], psegs)
	}
}

// connect joins two consecutive rings with a face per profile segment:
// quads between full rings and triangles to a pole. Rings of a single
// vertex each are joined by an edge.
func (b *builder) connect(ra, rb []int, psegs int) {
	switch {
	case len(ra) == 1 && len(rb) == 1:
		b.edges.Add(ra[0], rb[0])
		return
	case psegs == 0:
		return
	}
	for j := range psegs {
		var f mesh.Face
		switch {
		case len(ra) == 1:
			j2 := (j + 1) % len(rb)
			f = mesh.Face{ra[0], rb[j2], rb[j]}
		case len(rb) == 1:
			j2 := (j + 1) % len(ra)
			f = mesh.Face{ra[j], ra[j2], rb[0]}
		default:
			j2 := (j + 1) % len(ra)
			f = mesh.Face{ra[j], ra[j2], rb[j2], rb[j]}
		}
		b.ms.Faces = append(b.ms.Faces, f)
		b.edges.AddLoop(f)
	}
}

// Transform returns the position of the profile point p placed at the
// path point pt with frame fr.
func Transform(pt curve.Point, fr frames.Frame, p math32.Vector3) math32.Vector3 {
	off := fr.Normal.MulScalar(p.X).Add(fr.Binormal.MulScalar(p.Y)).Add(fr.Tangent.MulScalar(p.Z))
	return pt.Pos.Add(off.MulScalar(pt.Radius))
}

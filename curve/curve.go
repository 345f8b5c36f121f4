// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package curve provides sampled curve geometry: ordered points with
// tangents, normals and radii, grouped into splines and curves,
// as produced by an upstream curve evaluation stage.
package curve

import (
	"github.com/jinzhu/copier"

	"cogentcore.org/curvemesh/base/errors"
	"cogentcore.org/curvemesh/math32"
)

// Point is one evaluated sample of a spline.
type Point struct {

	// Pos is the position of the sample.
	Pos math32.Vector3

	// Tangent is the direction of the curve at the sample.
	// It does not need to be normalized, and may be zero,
	// in which case it is derived from the neighbor points.
	Tangent math32.Vector3

	// Normal is the stored orientation normal at the sample,
	// only used with [Stored] normals.
	Normal math32.Vector3

	// Radius scales the profile placed at this sample.
	Radius float32
}

// Spline is an ordered sequence of evaluated points.
// If Cyclic, the last point connects back to the first.
type Spline struct {
	Points []Point
	Cyclic bool
}

// NewSpline returns a new spline through the given positions,
// with unit radius and tangents computed from the positions.
func NewSpline(cyclic bool, pos ...math32.Vector3) *Spline {
	sp := &Spline{Cyclic: cyclic, Points: make([]Point, len(pos))}
	for i, p := range pos {
		sp.Points[i] = Point{Pos: p, Radius: 1}
	}
	sp.ComputeTangents()
	return sp
}

// Len returns the number of points.
func (sp *Spline) Len() int {
	if sp == nil {
		return 0
	}
	return len(sp.Points)
}

// IsEmpty returns true if the spline has no points.
func (sp *Spline) IsEmpty() bool {
	return sp.Len() == 0
}

// NumSegments returns the number of segments connecting the points:
// one less than the number of points for open splines, and equal to
// it for cyclic splines with at least three points. A cyclic spline
// of two points has a single segment, as its closing segment would
// retrace the first one.
func (sp *Spline) NumSegments() int {
	n := sp.Len()
	switch {
	case n < 2:
		return 0
	case sp.Cyclic && n > 2:
		return n
	default:
		return n - 1
	}
}

// Positions returns the point positions.
func (sp *Spline) Positions() []math32.Vector3 {
	ps := make([]math32.Vector3, sp.Len())
	for i := range ps {
		ps[i] = sp.Points[i].Pos
	}
	return ps
}

// SetRadius sets the radius of every point.
func (sp *Spline) SetRadius(radius float32) *Spline {
	for i := range sp.Points {
		sp.Points[i].Radius = radius
	}
	return sp
}

// Length returns the total length of the segments of the spline.
func (sp *Spline) Length() float32 {
	n := sp.Len()
	var l float32
	for i := range sp.NumSegments() {
		l += sp.Points[(i+1)%n].Pos.DistanceTo(sp.Points[i].Pos)
	}
	return l
}

// ComputeTangents fills in every zero tangent from the neighbor
// positions: central differences in the interior (and at the ends
// of cyclic splines), one-sided differences at open ends.
func (sp *Spline) ComputeTangents() {
	n := sp.Len()
	if n < 2 {
		return
	}
	cyclic := sp.Cyclic && n > 2
	for i := range sp.Points {
		pt := &sp.Points[i]
		if !pt.Tangent.IsNil() {
			continue
		}
		prev, next := i-1, i+1
		if cyclic {
			prev, next = (i-1+n)%n, (i+1)%n
		} else {
			prev = max(prev, 0)
			next = min(next, n-1)
		}
		pt.Tangent = sp.Points[next].Pos.Sub(sp.Points[prev].Pos).Normal()
	}
}

// Clone returns a deep copy of the spline.
func (sp *Spline) Clone() *Spline {
	if sp == nil {
		return nil
	}
	ns := &Spline{}
	errors.Log(copier.CopyWithOption(ns, sp, copier.Option{DeepCopy: true}))
	return ns
}

// Curve is a set of independent splines. Used as a path, every
// spline is swept on its own; used as a profile, every spline
// is a separate loop.
type Curve struct {
	Splines []*Spline
}

// NewCurve returns a new curve holding the given splines.
func NewCurve(splines ...*Spline) *Curve {
	return &Curve{Splines: splines}
}

// NumPoints returns the total number of points of all splines.
func (cv *Curve) NumPoints() int {
	if cv == nil {
		return 0
	}
	n := 0
	for _, sp := range cv.Splines {
		n += sp.Len()
	}
	return n
}

// IsEmpty returns true if no spline has any points.
func (cv *Curve) IsEmpty() bool {
	return cv.NumPoints() == 0
}

// Clone returns a deep copy of the curve.
func (cv *Curve) Clone() *Curve {
	if cv == nil {
		return nil
	}
	nc := &Curve{Splines: make([]*Spline, len(cv.Splines))}
	for i, sp := range cv.Splines {
		nc.Splines[i] = sp.Clone()
	}
	return nc
}

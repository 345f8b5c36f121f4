// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import "cogentcore.org/curvemesh/math32"

// NewLine returns an open spline of n points starting at start,
// spaced by step.
func NewLine(start, step math32.Vector3, n int) *Spline {
	pos := make([]math32.Vector3, n)
	for i := range pos {
		pos[i] = start.Add(step.MulScalar(float32(i)))
	}
	sp := NewSpline(false, pos...)
	if n == 1 && !step.IsNil() {
		sp.Points[0].Tangent = step.Normal()
	}
	return sp
}

// NewCircle returns a cyclic spline of segs points evenly spaced
// on a circle of the given radius in the XY plane, starting on +X
// and going counter-clockwise.
func NewCircle(radius float32, segs int) *Spline {
	pos := make([]math32.Vector3, segs)
	for i := range pos {
		s, c := math32.Sincos(2 * math32.Pi * float32(i) / float32(segs))
		pos[i] = math32.Vec3(radius*c, radius*s, 0)
	}
	return NewSpline(true, pos...)
}

// NewRect returns a cyclic spline of the four corners of a
// width x height rectangle centered on the origin in the XY plane.
func NewRect(width, height float32) *Spline {
	hw, hh := width/2, height/2
	return NewSpline(true,
		math32.Vec3(-hw, -hh, 0),
		math32.Vec3(hw, -hh, 0),
		math32.Vec3(hw, hh, 0),
		math32.Vec3(-hw, hh, 0))
}

// NewArc returns an open spline of segs+1 points on an arc of the
// given radius in the XY plane, from angle start to start+length,
// both in degrees.
func NewArc(radius float32, segs int, start, length float32) *Spline {
	pos := make([]math32.Vector3, segs+1)
	st := math32.DegToRad(start)
	ln := math32.DegToRad(length)
	for i := range pos {
		s, c := math32.Sincos(st + ln*float32(i)/float32(segs))
		pos[i] = math32.Vec3(radius*c, radius*s, 0)
	}
	return NewSpline(false, pos...)
}

// NewHelix returns an open spline of n points on a helix around
// the Z axis with the given radius, rise per turn, and number of turns.
func NewHelix(radius, pitch, turns float32, n int) *Spline {
	pos := make([]math32.Vector3, n)
	for i := range pos {
		t := float32(i) / float32(max(n-1, 1)) * turns
		s, c := math32.Sincos(2 * math32.Pi * t)
		pos[i] = math32.Vec3(radius*c, radius*s, pitch*t)
	}
	return NewSpline(false, pos...)
}

// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package frames computes smoothly varying orientation frames along
// sampled splines, using parallel transport by double reflection
// (Wang, Jüttler, Zheng, Liu 2008), so that profiles swept along a
// path do not twist on straight or low curvature stretches.
package frames

import (
	"cogentcore.org/curvemesh/curve"
	"cogentcore.org/curvemesh/math32"
)

// ClosureTolerance is the seam angle, in radians, above which the
// frames of a cyclic spline are relaxed so that the twist needed to
// close the loop is spread evenly over all of its segments.
var ClosureTolerance float32 = 1.0e-4

// epsilon is the squared length below which vectors are treated as zero.
const epsilon = 1.0e-12

// parallelLimit is the |cos| between the tangent and the up vector
// above which the fallback up vector is used for the first frame.
const parallelLimit = 0.999

var (
	upAxis       = math32.Vec3(0, 0, 1)
	fallbackAxis = math32.Vec3(0, 1, 0)
)

// Frame is an orthonormal orientation basis attached to a spline point.
// Binormal is Tangent cross Normal.
type Frame struct {
	Tangent  math32.Vector3
	Normal   math32.Vector3
	Binormal math32.Vector3
}

// Compute returns one [curve.MinimumTwist] frame per point of the spline.
func Compute(sp *curve.Spline) []Frame {
	return ComputeMode(sp, curve.MinimumTwist)
}

// ComputeMode returns one frame per point of the spline, with the
// normals chosen according to the given mode. It always succeeds:
// degenerate tangents and zero length segments reuse the previous
// valid direction.
func ComputeMode(sp *curve.Spline, mode curve.NormalMode) []Frame {
	n := sp.Len()
	if n == 0 {
		return nil
	}
	tans := Tangents(sp)
	var norms []math32.Vector3
	switch mode {
	case curve.ZUp:
		norms = zUpNormals(sp, tans)
	case curve.Stored:
		norms = storedNormals(sp, tans)
	default:
		norms = transportNormals(sp, tans)
	}
	fs := make([]Frame, n)
	for i := range fs {
		fs[i] = Frame{Tangent: tans[i], Normal: norms[i], Binormal: tans[i].Cross(norms[i])}
	}
	return fs
}

// Tangents returns the normalized tangents of the spline points.
// Zero tangents take the previous valid tangent, or the first
// valid one for leading points. If no point has a usable tangent,
// the direction of the first non-zero segment is used for all,
// and +Z if the spline has no extent at all.
func Tangents(sp *curve.Spline) []math32.Vector3 {
	n := sp.Len()
	ts := make([]math32.Vector3, n)
	first := -1
	for i, pt := range sp.Points {
		if pt.Tangent.LengthSquared() > epsilon {
			ts[i] = pt.Tangent.Normal()
			if first < 0 {
				first = i
			}
			continue
		}
		if first >= 0 {
			ts[i] = ts[i-1]
		}
	}
	if first < 0 {
		t := upAxis
		for i := 1; i < n; i++ {
			d := sp.Points[i].Pos.Sub(sp.Points[i-1].Pos)
			if d.LengthSquared() > epsilon {
				t = d.Normal()
				break
			}
		}
		for i := range ts {
			ts[i] = t
		}
		return ts
	}
	for i := range first {
		ts[i] = ts[first]
	}
	return ts
}

// InitialNormal returns the deterministic normal used for the first
// frame: the up axis (+Z) made orthogonal to the tangent by Gram-Schmidt,
// or +Y when the tangent is (nearly) parallel to +Z.
func InitialNormal(tangent math32.Vector3) math32.Vector3 {
	up := upAxis
	if math32.Abs(tangent.Dot(up)) > parallelLimit {
		up = fallbackAxis
	}
	return up.ProjectOnPlane(tangent).Normal()
}

// orthonormal returns nrm made orthogonal to the unit tangent and
// normalized, and false if nothing is left of it.
func orthonormal(nrm, tangent math32.Vector3) (math32.Vector3, bool) {
	p := nrm.ProjectOnPlane(tangent)
	if p.LengthSquared() <= epsilon {
		return p, false
	}
	return p.Normal(), true
}

// Transport carries the normal nrm at point p0 with tangent t0 to point p1
// with tangent t1 by double reflection: first in the plane bisecting the
// segment, then in the plane that maps the reflected tangent onto t1.
// Coincident points rotate the normal by the minimal rotation between
// the tangents instead.
func Transport(nrm, p0, p1, t0, t1 math32.Vector3) math32.Vector3 {
	v1 := p1.Sub(p0)
	var r math32.Vector3
	if v1.LengthSquared() <= epsilon {
		var q math32.Quat
		q.SetFromUnitVectors(t0, t1)
		r = nrm.MulQuat(q)
	} else {
		rl := nrm.Reflect(v1)
		tl := t0.Reflect(v1)
		v2 := t1.Sub(tl)
		if v2.LengthSquared() <= epsilon {
			r = rl
		} else {
			r = rl.Reflect(v2)
		}
	}
	if on, ok := orthonormal(r, t1); ok {
		return on
	}
	if on, ok := orthonormal(nrm, t1); ok {
		return on
	}
	return InitialNormal(t1)
}

func transportNormals(sp *curve.Spline, tans []math32.Vector3) []math32.Vector3 {
	n := sp.Len()
	norms := make([]math32.Vector3, n)
	norms[0] = InitialNormal(tans[0])
	for i := 1; i < n; i++ {
		norms[i] = Transport(norms[i-1], sp.Points[i-1].Pos, sp.Points[i].Pos, tans[i-1], tans[i])
	}
	if sp.NumSegments() == n {
		relax(sp, tans, norms)
	}
	return norms
}

// relax closes a cyclic spline: the normal transported across the
// closing segment generally differs from the first normal by a rotation
// about the first tangent. Frame i is rotated by i/(n-1) of that angle,
// so the last frame transports exactly onto the first and the twist is
// spread evenly over the other segments.
func relax(sp *curve.Spline, tans, norms []math32.Vector3) {
	n := len(norms)
	angle := seamAngle(sp, tans[n-1], norms[n-1], tans[0], norms[0])
	if math32.Abs(angle) <= ClosureTolerance {
		return
	}
	for i := 1; i < n; i++ {
		norms[i] = norms[i].RotateAround(tans[i], angle*float32(i)/float32(n-1))
	}
}

// seamAngle returns the signed angle about t0 from the normal nl,
// transported across the closing segment, to the first normal n0.
func seamAngle(sp *curve.Spline, tl, nl, t0, n0 math32.Vector3) float32 {
	n := sp.Len()
	end := Transport(nl, sp.Points[n-1].Pos, sp.Points[0].Pos, tl, t0)
	return end.SignedAngleTo(n0, t0)
}

func zUpNormals(sp *curve.Spline, tans []math32.Vector3) []math32.Vector3 {
	n := sp.Len()
	norms := make([]math32.Vector3, n)
	for i := range norms {
		if on, ok := orthonormal(upAxis, tans[i]); ok && math32.Abs(tans[i].Dot(upAxis)) <= parallelLimit {
			norms[i] = on
			continue
		}
		if i == 0 {
			norms[i] = InitialNormal(tans[i])
			continue
		}
		norms[i] = Transport(norms[i-1], sp.Points[i-1].Pos, sp.Points[i].Pos, tans[i-1], tans[i])
	}
	return norms
}

func storedNormals(sp *curve.Spline, tans []math32.Vector3) []math32.Vector3 {
	norms := transportNormals(sp, tans)
	for i, pt := range sp.Points {
		if on, ok := orthonormal(pt.Normal, tans[i]); ok {
			norms[i] = on
		}
	}
	return norms
}

// SegmentTwists returns, for every segment of the spline, the angle in
// radians by which the normal at the segment end differs from the
// normal transported from the segment start, measured about the end
// tangent. Minimum twist frames of open splines have all zero twists.
func SegmentTwists(sp *curve.Spline, fs []Frame) []float32 {
	n := sp.Len()
	ns := sp.NumSegments()
	tw := make([]float32, ns)
	for i := range ns {
		j := (i + 1) % n
		tr := Transport(fs[i].Normal, sp.Points[i].Pos, sp.Points[j].Pos, fs[i].Tangent, fs[j].Tangent)
		tw[i] = tr.SignedAngleTo(fs[j].Normal, fs[j].Tangent)
	}
	return tw
}

// SeamTwist returns the absolute angle between the first normal of a
// cyclic spline and the last normal transported across the closing
// segment. After relaxation it is below [ClosureTolerance].
// Open splines have no seam and return 0.
func SeamTwist(sp *curve.Spline, fs []Frame) float32 {
	n := sp.Len()
	if sp.NumSegments() != n || n == 0 {
		return 0
	}
	return math32.Abs(seamAngle(sp, fs[n-1].Tangent, fs[n-1].Normal, fs[0].Tangent, fs[0].Normal))
}

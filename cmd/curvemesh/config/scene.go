// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"github.com/mitchellh/go-homedir"

	"cogentcore.org/curvemesh/base/errors"
	"cogentcore.org/curvemesh/base/iox"
	"cogentcore.org/curvemesh/base/iox/jsonx"
	"cogentcore.org/curvemesh/base/iox/tomlx"
	"cogentcore.org/curvemesh/base/iox/yamlx"
	"cogentcore.org/curvemesh/curve"
	"cogentcore.org/curvemesh/geometry"
	"cogentcore.org/curvemesh/math32"
)

// Scene describes the inputs of the curve to mesh node.
type Scene struct {

	// the path splines, each swept on its own
	Path []Spline `toml:"path" yaml:"path" json:"path"`

	// the profile loops; a wire mesh is built when there are none
	Profile []Spline `toml:"profile" yaml:"profile" json:"profile"`

	// extra points stored on the curve input, which are not converted
	Points [][3]float32 `toml:"points" yaml:"points" json:"points"`

	// nested copies of other paths, moved by an offset
	Instances []Instance `toml:"instances" yaml:"instances" json:"instances"`
}

// Instance is a nested scene of paths at an offset.
type Instance struct {
	Offset    [3]float32 `toml:"offset" yaml:"offset" json:"offset"`
	Path      []Spline   `toml:"path" yaml:"path" json:"path"`
	Instances []Instance `toml:"instances" yaml:"instances" json:"instances"`
}

// Spline describes one spline, either through explicit points
// or through a preset shape.
type Spline struct {

	// the preset shape: line, circle, rect, arc or helix; empty for Points
	Preset string `toml:"preset" yaml:"preset" json:"preset"`

	// explicit point positions
	Points [][3]float32 `toml:"points" yaml:"points" json:"points"`

	// per point radius for explicit points
	Radii []float32 `toml:"radii" yaml:"radii" json:"radii"`

	// whether explicit points form a closed loop
	Cyclic bool `toml:"cyclic" yaml:"cyclic" json:"cyclic"`

	// the radius of circle, arc and helix presets
	Radius float32 `toml:"radius" yaml:"radius" json:"radius"`

	// the width and height of the rect preset
	Width  float32 `toml:"width" yaml:"width" json:"width"`
	Height float32 `toml:"height" yaml:"height" json:"height"`

	// the number of segments of line, circle, arc and helix presets;
	// 16 when zero
	Segments int `toml:"segments" yaml:"segments" json:"segments"`

	// the first point and the step between points of the line preset
	Start [3]float32 `toml:"start" yaml:"start" json:"start"`
	Step  [3]float32 `toml:"step" yaml:"step" json:"step"`

	// the start and length of the arc preset, in degrees
	StartAngle float32 `toml:"start-angle" yaml:"start-angle" json:"start-angle"`
	Angle      float32 `toml:"angle" yaml:"angle" json:"angle"`

	// the rise per turn and the number of turns of the helix preset
	Pitch float32 `toml:"pitch" yaml:"pitch" json:"pitch"`
	Turns float32 `toml:"turns" yaml:"turns" json:"turns"`

	// if non-zero, the sweep radius of every point
	Scale float32 `toml:"scale" yaml:"scale" json:"scale"`
}

// sceneDecoders are the scene decoders by file extension.
var sceneDecoders = map[string]iox.DecoderFunc{
	".toml": tomlx.NewDecoder,
	".yaml": yamlx.NewDecoder,
	".yml":  yamlx.NewDecoder,
	".json": jsonx.NewDecoder,
}

// OpenScene reads a scene from the given file, in the format
// given by its extension, expanding a leading ~.
func OpenScene(file string) (*Scene, error) {
	fn, err := homedir.Expand(file)
	if err != nil {
		return nil, err
	}
	df, err := sceneDecoder(fn)
	if err != nil {
		return nil, err
	}
	sc := &Scene{}
	if err := iox.Open(sc, fn, df); err != nil {
		return nil, fmt.Errorf("scene %s: %w", file, err)
	}
	return sc, nil
}

// ReadScene reads a scene in the format of the given file
// extension (such as ".yaml") from r.
func ReadScene(r io.Reader, ext string) (*Scene, error) {
	df, err := sceneDecoder(ext)
	if err != nil {
		return nil, err
	}
	sc := &Scene{}
	return sc, iox.Read(sc, r, df)
}

func sceneDecoder(file string) (iox.DecoderFunc, error) {
	ext := strings.ToLower(filepath.Ext(file))
	if ext == "" {
		ext = strings.ToLower(file)
	}
	df, ok := sceneDecoders[ext]
	if !ok {
		return nil, fmt.Errorf("unsupported scene format %q", ext)
	}
	return df, nil
}

// CurveSet returns the geometry of the curve input.
func (sc *Scene) CurveSet() (geometry.GeometrySet, error) {
	cv, err := newCurve(sc.Path)
	if err != nil {
		return geometry.GeometrySet{}, fmt.Errorf("path: %w", err)
	}
	gs := geometry.GeometrySet{Curve: cv}
	for _, p := range sc.Points {
		gs.PointCloud = append(gs.PointCloud, vec(p))
	}
	gs.Instances, err = newInstances(sc.Instances)
	return gs, err
}

// ProfileSet returns the geometry of the profile input.
func (sc *Scene) ProfileSet() (geometry.GeometrySet, error) {
	cv, err := newCurve(sc.Profile)
	if err != nil {
		return geometry.GeometrySet{}, fmt.Errorf("profile: %w", err)
	}
	return geometry.GeometrySet{Curve: cv}, nil
}

func newInstances(ins []Instance) ([]geometry.Instance, error) {
	var gi []geometry.Instance
	for i, in := range ins {
		cv, err := newCurve(in.Path)
		if err != nil {
			return nil, fmt.Errorf("instance %d: %w", i, err)
		}
		gs := &geometry.GeometrySet{Curve: cv}
		gs.Instances, err = newInstances(in.Instances)
		if err != nil {
			return nil, fmt.Errorf("instance %d: %w", i, err)
		}
		gi = append(gi, geometry.Instance{Offset: vec(in.Offset), Geometry: gs})
	}
	return gi, nil
}

func newCurve(sps []Spline) (*curve.Curve, error) {
	if len(sps) == 0 {
		return nil, nil
	}
	cv := curve.NewCurve()
	for i := range sps {
		sp, err := sps[i].Spline()
		if err != nil {
			return nil, fmt.Errorf("spline %d: %w", i, err)
		}
		cv.Splines = append(cv.Splines, sp)
	}
	return cv, nil
}

// Spline returns the spline described by s.
func (s *Spline) Spline() (*curve.Spline, error) {
	segs := s.Segments
	if segs <= 0 {
		segs = 16
	}
	radius := s.Radius
	if radius == 0 {
		radius = 1
	}
	var sp *curve.Spline
	switch strings.ToLower(s.Preset) {
	case "", "points":
		if len(s.Points) == 0 {
			return nil, errors.New("no points")
		}
		pos := make([]math32.Vector3, len(s.Points))
		for i, p := range s.Points {
			pos[i] = vec(p)
		}
		sp = curve.NewSpline(s.Cyclic, pos...)
		if len(s.Radii) > 0 {
			if len(s.Radii) != len(s.Points) {
				return nil, fmt.Errorf("%d radii for %d points", len(s.Radii), len(s.Points))
			}
			for i, r := range s.Radii {
				sp.Points[i].Radius = r
			}
		}
	case "line":
		step := vec(s.Step)
		if step.IsNil() {
			step = math32.Vec3(0, 0, 1)
		}
		sp = curve.NewLine(vec(s.Start), step, segs+1)
	case "circle":
		if s.Segments != 0 && s.Segments < 3 {
			return nil, fmt.Errorf("circle needs at least 3 segments, not %d", s.Segments)
		}
		sp = curve.NewCircle(radius, segs)
	case "rect":
		if s.Width <= 0 || s.Height <= 0 {
			return nil, fmt.Errorf("rect needs a positive size, not %gx%g", s.Width, s.Height)
		}
		sp = curve.NewRect(s.Width, s.Height)
	case "arc":
		angle := s.Angle
		if angle == 0 {
			angle = 180
		}
		sp = curve.NewArc(radius, segs, s.StartAngle, angle)
	case "helix":
		turns := s.Turns
		if turns == 0 {
			turns = 1
		}
		sp = curve.NewHelix(radius, s.Pitch, turns, segs+1)
	default:
		return nil, unknownPreset(s.Preset)
	}
	if s.Scale != 0 {
		sp.SetRadius(s.Scale)
	}
	return sp, nil
}

// Presets are the names of the preset shapes of a [Spline].
var Presets = []string{"points", "line", "circle", "rect", "arc", "helix"}

// unknownPreset returns an error for the given preset name,
// suggesting the closest known name if there is one.
func unknownPreset(name string) error {
	lev := metrics.NewLevenshtein()
	best, score := "", 0.0
	for _, p := range Presets {
		if sim := strutil.Similarity(strings.ToLower(name), p, lev); sim > score {
			best, score = p, sim
		}
	}
	if score >= 0.5 {
		return fmt.Errorf("unknown preset %q; did you mean %q?", name, best)
	}
	return fmt.Errorf("unknown preset %q", name)
}

func vec(a [3]float32) math32.Vector3 {
	return math32.Vector3FromArray(a)
}

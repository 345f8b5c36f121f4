// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/curvemesh/curve"
	"cogentcore.org/curvemesh/math32"
)

const tomlScene = `
points = [[0, 0, 5]]

[[path]]
preset = "line"
segments = 3
step = [0, 0, 2]
scale = 0.5

[[profile]]
preset = "circle"
radius = 0.25
segments = 6

[[instances]]
offset = [10, 0, 0]

[[instances.path]]
points = [[0, 0, 0], [1, 0, 0], [1, 1, 0]]
cyclic = true
`

const yamlScene = `
path:
  - preset: helix
    radius: 2
    pitch: 1
    turns: 2
    segments: 32
profile:
  - preset: rect
    width: 1
    height: 0.5
  - points: [[0, 0, 0], [0.5, 0, 0]]
    radii: [1, 2]
`

const jsonScene = `{
	"path": [{"preset": "arc", "radius": 3, "segments": 4, "start-angle": 90, "angle": 90}]
}`

func TestReadSceneTOML(t *testing.T) {
	sc, err := ReadScene(strings.NewReader(tomlScene), ".toml")
	require.NoError(t, err)
	require.Len(t, sc.Path, 1)
	require.Len(t, sc.Instances, 1)
	assert.Equal(t, [3]float32{10, 0, 0}, sc.Instances[0].Offset)

	cs, err := sc.CurveSet()
	require.NoError(t, err)
	path := cs.Curve.Splines[0]
	assert.Equal(t, 4, path.Len())
	assert.Equal(t, math32.Vec3(0, 0, 6), path.Points[3].Pos)
	assert.Equal(t, float32(0.5), path.Points[0].Radius)
	assert.Equal(t, []math32.Vector3{math32.Vec3(0, 0, 5)}, cs.PointCloud)

	require.Len(t, cs.Instances, 1)
	in := cs.Instances[0].Geometry
	require.True(t, in.HasCurve())
	assert.True(t, in.Curve.Splines[0].Cyclic)
	assert.Equal(t, math32.Vec3(10, 0, 0), cs.Instances[0].Offset)

	ps, err := sc.ProfileSet()
	require.NoError(t, err)
	assert.Equal(t, 6, ps.Curve.NumPoints())
	assert.InDelta(t, 0.25, ps.Curve.Splines[0].Points[0].Pos.X, 1e-6)
}

func TestReadSceneYAML(t *testing.T) {
	sc, err := ReadScene(strings.NewReader(yamlScene), ".yml")
	require.NoError(t, err)
	cs, err := sc.CurveSet()
	require.NoError(t, err)
	helix := cs.Curve.Splines[0]
	assert.Equal(t, 33, helix.Len())
	assert.InDelta(t, 2, helix.Points[32].Pos.Z, 1e-5)
	assert.Nil(t, cs.Instances)

	ps, err := sc.ProfileSet()
	require.NoError(t, err)
	require.Len(t, ps.Curve.Splines, 2)
	assert.Equal(t, 4, ps.Curve.Splines[0].Len())
	assert.Equal(t, float32(2), ps.Curve.Splines[1].Points[1].Radius)
}

func TestReadSceneJSON(t *testing.T) {
	sc, err := ReadScene(strings.NewReader(jsonScene), ".json")
	require.NoError(t, err)
	cs, err := sc.CurveSet()
	require.NoError(t, err)
	arc := cs.Curve.Splines[0]
	assert.Equal(t, 5, arc.Len())
	assert.InDelta(t, 3, arc.Points[0].Pos.Y, 1e-5)
	assert.InDelta(t, -3, arc.Points[4].Pos.X, 1e-5)

	ps, err := sc.ProfileSet()
	require.NoError(t, err)
	assert.True(t, ps.IsEmpty())
}

func TestOpenScene(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "scene.TOML")
	require.NoError(t, os.WriteFile(fn, []byte(tomlScene), 0666))
	sc, err := OpenScene(fn)
	require.NoError(t, err)
	assert.Len(t, sc.Profile, 1)

	_, err = OpenScene(filepath.Join(dir, "scene.obj"))
	assert.ErrorContains(t, err, `unsupported scene format ".obj"`)

	_, err = OpenScene(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0666))
	_, err = OpenScene(bad)
	assert.ErrorContains(t, err, "bad.json")
}

func TestSplineErrors(t *testing.T) {
	_, err := (&Spline{}).Spline()
	assert.ErrorContains(t, err, "no points")
	_, err = (&Spline{Preset: "spiral"}).Spline()
	assert.ErrorContains(t, err, `unknown preset "spiral"`)
	_, err = (&Spline{Preset: "circel"}).Spline()
	assert.ErrorContains(t, err, `did you mean "circle"?`)
	_, err = (&Spline{Preset: "rect", Width: 1}).Spline()
	assert.Error(t, err)
	_, err = (&Spline{Preset: "circle", Segments: 2}).Spline()
	assert.Error(t, err)
	_, err = (&Spline{Points: [][3]float32{{}, {1, 0, 0}}, Radii: []float32{1}}).Spline()
	assert.ErrorContains(t, err, "1 radii for 2 points")

	sc := &Scene{Instances: []Instance{{Path: []Spline{{Preset: "bogus"}}}}}
	_, err = sc.CurveSet()
	assert.ErrorContains(t, err, "instance 0: spline 0")
}

func TestSplineDefaults(t *testing.T) {
	sp, err := (&Spline{Preset: "Circle"}).Spline()
	require.NoError(t, err)
	assert.Equal(t, 16, sp.Len())
	assert.True(t, sp.Cyclic)

	sp, err = (&Spline{Preset: "line"}).Spline()
	require.NoError(t, err)
	require.Equal(t, 17, sp.Len())
	assert.Equal(t, math32.Vec3(0, 0, 16), sp.Points[16].Pos)

	sp, err = (&Spline{Preset: "line", Segments: 1}).Spline()
	require.NoError(t, err)
	assert.Equal(t, []math32.Vector3{{}, math32.Vec3(0, 0, 1)}, sp.Positions())
}

func TestConfigOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(fn, []byte(`
scene = "tube.yaml"
normal-mode = "z-up"
strict = true
`), 0666))
	c := Default()
	require.NoError(t, c.Open(fn))
	assert.Equal(t, "tube.yaml", c.Scene)
	assert.Equal(t, curve.ZUp, c.NormalMode)
	assert.True(t, c.Strict)
	assert.Equal(t, "curvemesh", c.Name, "default kept")
	assert.Equal(t, float32(1e-4), c.Tolerance)

	require.NoError(t, os.WriteFile(fn, []byte(`normal-mode = "sideways"`), 0666))
	assert.Error(t, Default().Open(fn))
}

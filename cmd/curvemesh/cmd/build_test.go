// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/curvemesh/cmd/curvemesh/config"
	"cogentcore.org/curvemesh/mesh"
)

func writeScene(t *testing.T, name, content string) string {
	fn := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(fn, []byte(content), 0666))
	return fn
}

const tubeScene = `
path:
  - preset: line
    segments: 2
profile:
  - preset: rect
    width: 1
    height: 1
instances:
  - offset: [5, 0, 0]
    path:
      - preset: line
        segments: 1
`

func TestBuildStdout(t *testing.T) {
	c := config.Default()
	c.Scene = writeScene(t, "tube.yaml", tubeScene)
	var stdout, stderr bytes.Buffer
	require.NoError(t, Build(context.Background(), c, &stdout, &stderr))

	ms, warns, err := mesh.ReadOBJ(&stdout)
	require.NoError(t, err)
	assert.Empty(t, warns)
	assert.Equal(t, 12+8, ms.NumVertices())
	assert.Equal(t, 8+4, ms.NumFaces())
	bb := ms.BBox()
	assert.InDelta(t, 5.5, bb.Max.X, 1e-6)
}

func TestBuildFile(t *testing.T) {
	c := config.Default()
	c.Scene = writeScene(t, "wire.json", `{"path": [{"points": [[0,0,0],[1,0,0],[1,1,0]], "cyclic": true}]}`)
	c.Output = filepath.Join(t.TempDir(), "wire.obj")
	c.Name = "wire"
	var stdout, stderr bytes.Buffer
	require.NoError(t, Build(context.Background(), c, &stdout, &stderr))
	assert.Zero(t, stdout.Len())

	b, err := os.ReadFile(c.Output)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(b), "o wire\n"))
	assert.Equal(t, 3, strings.Count(string(b), "\nl "))
}

func TestBuildWarnings(t *testing.T) {
	c := config.Default()
	c.Scene = writeScene(t, "points.toml", "points = [[1, 2, 3]]\n")
	var stdout, stderr bytes.Buffer
	require.NoError(t, Build(context.Background(), c, &stdout, &stderr))
	assert.Equal(t, "o curvemesh\n", stdout.String())

	c.Strict = true
	err := Build(context.Background(), c, &stdout, &stderr)
	assert.ErrorIs(t, err, ErrWarnings)
	assert.ErrorContains(t, err, "No curve data available in curve input")
}

func TestBuildErrors(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Error(t, Build(context.Background(), config.Default(), &stdout, &stderr))

	c := config.Default()
	c.Scene = writeScene(t, "bad.toml", "[[path]]\npreset = \"spiral\"\n")
	assert.ErrorContains(t, Build(context.Background(), c, &stdout, &stderr), `unknown preset "spiral"`)
}

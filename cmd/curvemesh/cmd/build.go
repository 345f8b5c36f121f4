// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd implements the commands of the curvemesh tool.
package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/mitchellh/go-homedir"

	"cogentcore.org/curvemesh/base/errors"
	"cogentcore.org/curvemesh/base/logx"
	"cogentcore.org/curvemesh/cmd/curvemesh/config"
	"cogentcore.org/curvemesh/curve/frames"
	"cogentcore.org/curvemesh/geometry"
	"cogentcore.org/curvemesh/sweep"
)

// ErrWarnings is returned by [Build] in strict mode when
// the conversion reported warnings.
var ErrWarnings = errors.New("warnings reported in strict mode")

// Build converts the curves of the scene file named in the config to a
// mesh and writes it as OBJ to the configured output, or to stdout.
// Status messages go to stderr.
func Build(ctx context.Context, c *config.Config, stdout, stderr io.Writer) error {
	if c.Scene == "" {
		return errors.New("no scene file given")
	}
	sc, err := config.OpenScene(c.Scene)
	if err != nil {
		return err
	}
	cs, err := sc.CurveSet()
	if err != nil {
		return err
	}
	ps, err := sc.ProfileSet()
	if err != nil {
		return err
	}
	if c.Tolerance > 0 {
		frames.ClosureTolerance = c.Tolerance
	}

	out, ds := geometry.CurveToMesh(ctx, cs, ps, sweep.WithNormalMode(c.NormalMode))
	if ds.HasError() {
		return fmt.Errorf("%s: curve to mesh failed:\n%s", c.Scene, ds)
	}
	if c.Strict && ds.Len() > 0 {
		return fmt.Errorf("%s: %w:\n%s", c.Scene, ErrWarnings, ds)
	}

	ms := out.RealizeMesh()
	logx.PrintlnLevel(stderr, slog.LevelInfo, fmt.Sprintf("%s: %d vertices, %d edges, %d faces",
		c.Scene, ms.NumVertices(), ms.NumEdges(), ms.NumFaces()))
	if c.Output == "" {
		return ms.WriteOBJ(stdout, c.Name)
	}
	fn, err := homedir.Expand(c.Output)
	if err != nil {
		return err
	}
	if err := ms.SaveOBJ(fn, c.Name); err != nil {
		return err
	}
	logx.PrintlnLevel(stderr, slog.LevelInfo, "wrote "+fn)
	return nil
}

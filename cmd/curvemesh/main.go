// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command curvemesh converts the path and profile curves of a scene
// file into a mesh, written in the Wavefront OBJ format.
package main

import (
	"context"
	"os"
	"os/signal"

	"cogentcore.org/curvemesh/base/errors"
	"cogentcore.org/curvemesh/cmd/curvemesh/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd(&flags{}).ExecuteContext(ctx)
	stop()
	os.Exit(exitCode(err))
}

// exitCode returns the process exit code for the error returned by the
// root command: 0 on success, 2 for warnings in strict mode, 1 otherwise.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, cmd.ErrWarnings):
		return 2
	default:
		return 1
	}
}

// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/go-homedir"

	"cogentcore.org/curvemesh/cmd/curvemesh/config"
)

// Watch runs [Build], and then runs it again every time the scene file
// is written, until ctx is done. Build errors are logged and do not stop
// watching. If built is non-nil, it is called with the result of every build.
func Watch(ctx context.Context, c *config.Config, stdout, stderr io.Writer, built func(err error)) error {
	fn, err := homedir.Expand(c.Scene)
	if err != nil {
		return err
	}
	fn = filepath.Clean(fn)
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	// the directory, since editors often replace the file
	if err := w.Add(filepath.Dir(fn)); err != nil {
		return err
	}

	rebuild := func() {
		err := Build(ctx, c, stdout, stderr)
		if err != nil {
			slog.Error(err.Error())
		}
		if built != nil {
			built(err)
		}
	}
	rebuild()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != fn || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			slog.Info("scene changed", "file", ev.Name, "op", ev.Op.String())
			rebuild()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Error("watching scene", "err", err)
		}
	}
}

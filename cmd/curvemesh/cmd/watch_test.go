// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/curvemesh/cmd/curvemesh/config"
)

func TestWatch(t *testing.T) {
	c := config.Default()
	c.Scene = writeScene(t, "watch.toml", "[[path]]\npreset = \"line\"\nsegments = 1\n")
	c.Output = filepath.Join(t.TempDir(), "watch.obj")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	builds := make(chan error, 1)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, c, io.Discard, io.Discard, func(err error) {
			select {
			case builds <- err:
			default:
			}
		})
	}()

	vertices := func() int {
		b, _ := os.ReadFile(c.Output)
		return strings.Count(string(b), "\nv ")
	}
	timeout := time.After(10 * time.Second)
	wait := func(n int) {
		for vertices() != n {
			select {
			case <-builds:
			case <-time.After(50 * time.Millisecond):
			case <-timeout:
				require.FailNow(t, "timed out waiting for build", "want %d vertices, have %d", n, vertices())
			}
		}
	}

	wait(2)
	require.NoError(t, os.WriteFile(c.Scene, []byte("[[path]]\npreset = \"line\"\nsegments = 3\n"), 0666))
	wait(4)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}

func TestWatchMissingDir(t *testing.T) {
	c := config.Default()
	c.Scene = filepath.Join(t.TempDir(), "missing", "scene.toml")
	assert.Error(t, Watch(context.Background(), c, io.Discard, io.Discard, nil))
}

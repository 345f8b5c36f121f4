// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geometry

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ModifyGeometrySets applies fn to gs and to every geometry set nested in
// its instances, recursively. Each distinct set is passed to fn once, as a
// value, and replaced by the result after all calls return, so fn may run
// in parallel and never observes another call's output. An error is only
// returned when ctx is done; in that case gs is left unchanged.
func ModifyGeometrySets(ctx context.Context, gs *GeometrySet, fn func(gs GeometrySet) GeometrySet) error {
	targets := collectSets(gs, nil, map[*GeometrySet]bool{})
	results := make([]GeometrySet, len(targets))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, t := range targets {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = fn(*t)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for i, t := range targets {
		*t = results[i]
	}
	return nil
}

// collectSets returns gs followed by all distinct nested instance sets,
// depth first.
func collectSets(gs *GeometrySet, sets []*GeometrySet, seen map[*GeometrySet]bool) []*GeometrySet {
	if gs == nil || seen[gs] {
		return sets
	}
	seen[gs] = true
	sets = append(sets, gs)
	for _, in := range gs.Instances {
		sets = collectSets(in.Geometry, sets, seen)
	}
	return sets
}

// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

// EdgeSet accumulates unique edges in insertion order.
// The zero value is ready to use.
type EdgeSet struct {
	edges []Edge
	index map[Edge]struct{}
}

// Add adds the edge between a and b, if it is not a self loop
// and not already present. It returns whether the edge was added.
func (es *EdgeSet) Add(a, b int) bool {
	if a == b {
		return false
	}
	e := NewEdge(a, b)
	if es.index == nil {
		es.index = make(map[Edge]struct{})
	}
	if _, has := es.index[e]; has {
		return false
	}
	es.index[e] = struct{}{}
	es.edges = append(es.edges, e)
	return true
}

// AddLoop adds the edges around the given face loop.
func (es *EdgeSet) AddLoop(f Face) {
	for i, vi := range f {
		es.Add(vi, f[(i+1)%len(f)])
	}
}

// Len returns the number of edges.
func (es *EdgeSet) Len() int {
	return len(es.edges)
}

// Edges returns the edges in insertion order.
func (es *EdgeSet) Edges() []Edge {
	return es.edges
}

// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: NewGraph constructor and read-only accessors.
// Determinism:
//   - Neighbors(u) is sorted by Arc.To ascending.
//   - Construction output depends only on (n, edges, options), never on map order.

package core

import (
	"math"
	"sort"
)

// NewGraph validates the declared edges and builds an immutable Graph of n
// nodes.
//
// Implementation:
//   - Stage 1: Resolve options; reject an unknown CostMode.
//   - Stage 2: Validate n >= 1 and every edge (endpoints in range, weight finite and > 0,
//     derived cost finite and > 0).
//   - Stage 3: Collapse arcs per ordered pair keeping the cheapest cost
//     (mirrors included when WithSymmetric is set).
//   - Stage 4: Sort adjacency, derive in-degrees, unit-cost and symmetry flags.
//
// Errors (all wrap ErrInvalidGraph):
//   - ErrNoNodes, ErrNodeOutOfRange, ErrBadWeight, ErrUnknownCostMode.
//
// Complexity:
//   - Time O(N + E log E), Space O(N + E).
func NewGraph(n int, edges []Edge, opts ...GraphOption) (*Graph, error) {
	cfg := graphConfig{costMode: CostInverse}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.costMode != CostInverse && cfg.costMode != CostDirect {
		return nil, invalid(ErrUnknownCostMode, "mode=%d", int(cfg.costMode))
	}

	if n < 1 {
		return nil, invalid(ErrNoNodes, "n=%d", n)
	}

	// best[u][v] is the cheapest cost seen for the ordered pair (u,v).
	best := make([]map[int]float64, n)
	put := func(u, v int, c float64) {
		if best[u] == nil {
			best[u] = make(map[int]float64)
		}
		if old, ok := best[u][v]; !ok || c < old {
			best[u][v] = c
		}
	}

	for i, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return nil, invalid(ErrNodeOutOfRange, "edge #%d %d→%d with n=%d", i, e.From, e.To, n)
		}
		if !(e.Weight > 0) || math.IsInf(e.Weight, 0) {
			return nil, invalid(ErrBadWeight, "edge #%d %d→%d weight=%g", i, e.From, e.To, e.Weight)
		}
		c := cfg.costMode.cost(e.Weight)
		if !(c > 0) || math.IsInf(c, 0) {
			return nil, invalid(ErrBadWeight, "edge #%d %d→%d weight=%g gives cost=%g", i, e.From, e.To, e.Weight, c)
		}
		put(e.From, e.To, c)
		if cfg.symmetric {
			put(e.To, e.From, c)
		}
	}

	g := &Graph{
		n:        n,
		adj:      make([][]Arc, n),
		inDegree: make([]int, n),
		costMode: cfg.costMode,
		unitCost: true,
	}

	first := math.NaN()
	for u := 0; u < n; u++ {
		if len(best[u]) == 0 {
			continue
		}
		row := make([]Arc, 0, len(best[u]))
		for v, c := range best[u] {
			row = append(row, Arc{To: v, Cost: c})
			if v != u {
				g.inDegree[v]++
			}
			if math.IsNaN(first) {
				first = c
			} else if c != first {
				g.unitCost = false
			}
		}
		sort.Slice(row, func(i, j int) bool { return row[i].To < row[j].To })
		g.adj[u] = row
		g.arcs += len(row)
	}

	g.symmetric = mirrored(best)

	return g, nil
}

// mirrored reports whether every arc u→v has a reverse arc v→u of equal cost.
func mirrored(best []map[int]float64) bool {
	for u, row := range best {
		for v, c := range row {
			if back, ok := best[v][u]; !ok || back != c {
				return false
			}
		}
	}

	return true
}

// NodeCount returns N. Complexity: O(1).
func (g *Graph) NodeCount() int { return g.n }

// ArcCount returns the number of distinct directed arcs, self-loops
// included. A symmetric graph stores two arcs per undirected pair.
func (g *Graph) ArcCount() int { return g.arcs }

// CostMode reports the weight-to-cost mapping the graph was built with.
func (g *Graph) CostMode() CostMode { return g.costMode }

// UnitCost reports whether every arc carries the same cost. A graph
// without arcs is trivially unit-cost.
func (g *Graph) UnitCost() bool { return g.unitCost }

// Symmetric reports whether every arc has an equal-cost reverse arc, that
// is, whether the graph can be read as undirected.
func (g *Graph) Symmetric() bool { return g.symmetric }

// HasNode reports whether u is a valid node index.
func (g *Graph) HasNode(u int) bool { return u >= 0 && u < g.n }

// Neighbors returns the outgoing arcs of u sorted by target index.
// The returned slice is shared with the graph and must not be modified.
// An out-of-range u yields nil.
func (g *Graph) Neighbors(u int) []Arc {
	if !g.HasNode(u) {
		return nil
	}

	return g.adj[u]
}

// OutDegree returns the number of distinct out-neighbors of u, excluding u.
func (g *Graph) OutDegree(u int) int {
	if !g.HasNode(u) {
		return 0
	}
	d := len(g.adj[u])
	for _, a := range g.adj[u] {
		if a.To == u {
			d--
			break
		}
	}

	return d
}

// InDegree returns the number of distinct in-neighbors of u, excluding u.
func (g *Graph) InDegree(u int) int {
	if !g.HasNode(u) {
		return 0
	}

	return g.inDegree[u]
}

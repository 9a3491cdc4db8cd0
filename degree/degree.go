// Package degree computes degree centrality, the fraction of the other
// nodes each node is adjacent to.
package degree

import "github.com/katalvlaran/lvlcentrality/core"

// Centrality returns the degree centrality of every node of g.
//
//	undirected: OutDegree(v) / (N-1)
//	directed:   (InDegree(v) + OutDegree(v)) / (N-1)
//
// Self-loops are not counted. A single-node graph yields [1]; a nil graph
// yields nil. For undirected input g must be symmetric, otherwise the
// out-degree undercounts one-sided edges.
//
// Complexity: O(N).
func Centrality(g *core.Graph, directed bool) []float64 {
	if g == nil {
		return nil
	}
	n := g.NodeCount()
	if n == 1 {
		return []float64{1}
	}

	scale := 1 / float64(n-1)
	out := make([]float64, n)
	for v := range out {
		d := g.OutDegree(v)
		if directed {
			d += g.InDegree(v)
		}
		out[v] = float64(d) * scale
	}

	return out
}

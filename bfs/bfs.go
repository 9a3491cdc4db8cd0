// Package bfs provides the unit-weight single-source shortest-path solver:
// a breadth-first search that records every shortest-path predecessor and
// exact shortest-path counts.
package bfs

import (
	"github.com/katalvlaran/lvlcentrality/core"
	"github.com/katalvlaran/lvlcentrality/sssp"
)

// walker encapsulates mutable BFS state for one source.
type walker struct {
	graph *core.Graph
	queue []int
	head  int
	res   *sssp.Result
}

// ShortestPaths runs breadth-first search on g from source, treating every
// arc as one hop regardless of its cost.
//
// Distances are hop counts. For every arc u→v with Dist[v] == Dist[u]+1, u
// is appended to Pred[v] and Sigma[u] is added to Sigma[v], so each
// equal-length path is counted exactly once.
//
// Returns sssp.ErrNilGraph, sssp.ErrSourceOutOfRange for invalid input and
// sssp.ErrPathCountOverflow if a count exceeds 64 bits.
//
// Complexity: O(V + E) time, O(V + E) space (predecessor lists).
func ShortestPaths(g *core.Graph, source int) (*sssp.Result, error) {
	if err := sssp.Validate(g, source); err != nil {
		return nil, err
	}

	n := g.NodeCount()
	w := &walker{
		graph: g,
		queue: make([]int, 0, n),
		res:   sssp.NewResult(n, source),
	}

	// Seed queue with the source.
	w.queue = append(w.queue, source)

	return w.res, w.loop()
}

// Compile-time check that ShortestPaths satisfies the solver contract.
var _ sssp.Solver = ShortestPaths

// loop processes the FIFO frontier until it is empty.
func (w *walker) loop() error {
	for w.head < len(w.queue) {
		u := w.dequeue()
		w.res.Order = append(w.res.Order, u)
		if err := w.expand(u); err != nil {
			return err
		}
	}

	return nil
}

// dequeue pops the oldest frontier entry. The backing slice is kept so the
// whole queue is one allocation.
func (w *walker) dequeue() int {
	u := w.queue[w.head]
	w.head++

	return u
}

// expand discovers the neighbors of u and credits u on every arc that lies
// on a shortest path.
func (w *walker) expand(u int) error {
	dist, sigma, pred := w.res.Dist, w.res.Sigma, w.res.Pred
	next := dist[u] + 1

	for _, a := range w.graph.Neighbors(u) {
		v := a.To

		// first time seen?
		if dist[v] == sssp.Unreachable {
			dist[v] = next
			w.queue = append(w.queue, v)
		}

		// shortest path to v via u?
		if dist[v] == next {
			s, err := sssp.AddCount(sigma[v], sigma[u])
			if err != nil {
				return err
			}
			sigma[v] = s
			pred[v] = append(pred[v], u)
		}
	}

	return nil
}

// Package dijkstra implements the weighted single-source shortest-path
// solver used for betweenness: Dijkstra's algorithm generalized to keep
// every shortest-path predecessor and exact path counts.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each node is settled at most once: V extractions from the heap.
//   - Each strict improvement pushes one heap entry: up to E pushes.
//   - Space: O(V + E)
//   - O(V) for distances and counts, O(E) for predecessor lists and the heap.
//
// Notes on implementation choices:
//
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - Ties are detected with sssp.Equal (relative tolerance), so float rounding
//     along two equal routes does not split them.
//   - A node already settled never receives a new predecessor, which keeps the
//     settle order a valid topological order of the shortest-path DAG.
package dijkstra

import (
	"container/heap"

	"github.com/katalvlaran/lvlcentrality/core"
	"github.com/katalvlaran/lvlcentrality/sssp"
)

// ShortestPaths computes the shortest-path DAG of g rooted at source using
// the arc costs stored in g.
//
// Relaxation of arc u→v with candidate d = Dist[u] + cost:
//   - d strictly shorter: Pred[v] = [u], Sigma[v] = Sigma[u], push (v, d).
//   - d equal within tolerance: append u to Pred[v], add Sigma[u] to Sigma[v].
//   - otherwise: ignore.
//
// Returns:
//
//   - res: the sssp.Result (Dist = sssp.Unreachable for unreachable nodes).
//   - err: sssp.ErrNilGraph, sssp.ErrSourceOutOfRange, or sssp.ErrPathCountOverflow.
//
// Preconditions:
//   - Arc costs are positive, which core.NewGraph guarantees.
func ShortestPaths(g *core.Graph, source int) (*sssp.Result, error) {
	// 1) Validate graph and source.
	if err := sssp.Validate(g, source); err != nil {
		return nil, err
	}

	// 2) Prepare data structures for the algorithm.
	n := g.NodeCount()
	r := &runner{
		g:       g,
		res:     sssp.NewResult(n, source),
		settled: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}

	// 3) Initialize algorithm state and run main loop.
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// Compile-time check that ShortestPaths satisfies the solver contract.
var _ sssp.Solver = ShortestPaths

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph  // The input graph; read-only within Dijkstra.
	res     *sssp.Result // Distances, predecessors, counts and settle order.
	settled []bool       // Tracks if a node's distance is finalized.
	pq      nodePQ       // Min-heap of nodeItem for lazy priority queue.
}

// init pushes the source with distance zero. NewResult already set
// Dist[source] = 0 and Sigma[source] = 1.
func (r *runner) init() {
	heap.Init(&r.pq)
	heap.Push(&r.pq, nodeItem{id: r.res.Source, dist: 0})
}

// process is the core loop: repeatedly settle the closest unsettled node
// and relax its outgoing arcs.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance item from the heap.
		item := heap.Pop(&r.pq).(nodeItem)
		u := item.id

		// 2) Skip stale entries: already settled, or superseded by a shorter push.
		if r.settled[u] || item.dist > r.res.Dist[u] {
			continue
		}

		// 3) Settle u. Its distance, predecessor set and count are now final.
		r.settled[u] = true
		r.res.Order = append(r.res.Order, u)

		// 4) Relax all outgoing arcs from u.
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each arc leaving the settled node u.
func (r *runner) relax(u int) error {
	dist, sigma, pred := r.res.Dist, r.res.Sigma, r.res.Pred
	du := dist[u]

	for _, a := range r.g.Neighbors(u) {
		v := a.To
		if r.settled[v] {
			// Includes self-loops: u itself is settled.
			continue
		}

		d := du + a.Cost
		switch {
		case dist[v] == sssp.Unreachable || (d < dist[v] && !sssp.Equal(d, dist[v])):
			// Strictly shorter path to v: reset its DAG entry.
			dist[v] = d
			sigma[v] = sigma[u]
			pred[v] = append(pred[v][:0], u)
			heap.Push(&r.pq, nodeItem{id: v, dist: d})

		case sssp.Equal(d, dist[v]):
			// Another shortest path to v through u.
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

// Package dijkstra provides the weighted shortest-path strategy for
// betweenness centrality: a priority-queue relaxation over positive arc
// costs that returns the full shortest-path DAG, not a single tree.
//
// Overview:
//
//   - ShortestPaths computes, for one source, Dist, every predecessor on some
//     shortest path (Pred) and the exact number of shortest paths (Sigma).
//   - It relies on a min-heap (container/heap) to always settle the next-closest node.
//   - Ties are resolved within sssp.Tolerance (relative), so routes whose costs
//     differ only by float rounding share credit.
//
// When to use:
//
//   - When arc costs differ. For unit-cost graphs package bfs is faster and
//     produces the same Pred/Sigma (distances in hops rather than cost).
//
// Relaxation rules for arc u→v, candidate d = Dist[u] + cost(u,v):
//
//   - d < Dist[v] (beyond tolerance): Pred[v] = {u}, Sigma[v] = Sigma[u].
//   - d ≈ Dist[v]:                    Pred[v] += u,  Sigma[v] += Sigma[u].
//   - stale heap entries (popped distance above the recorded best) are skipped.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
//
// Error handling (sentinel errors from package sssp):
//
//   - ErrNilGraph:          nil *core.Graph.
//   - ErrSourceOutOfRange:  source index outside [0, N).
//   - ErrPathCountOverflow: a shortest-path count exceeded 64 bits.
//
// Cost convention:
//
//	Arc costs come from core.Graph, which derives them from weights by
//	core.CostMode: CostInverse (1/weight, default) or CostDirect (weight).
//
// Thread safety:
//
//   - ShortestPaths keeps all state local to the call; concurrent calls on the
//     same read-only *core.Graph are safe.
package dijkstra

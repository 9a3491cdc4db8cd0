// Package bfs provides breadth-first shortest paths over a core.Graph,
// returning hop distances, full predecessor sets and shortest-path counts
// in an sssp.Result.
//
// What
//
//   - Explore nodes in non-decreasing hop distance from a source (FIFO frontier).
//   - For every arc u→v on a shortest path, record u in Pred[v] and add
//     Sigma[u] to Sigma[v]; every predecessor is kept, not just the first.
//   - Arc costs are ignored: this is the "unit" strategy. Use package
//     dijkstra when costs differ.
//
// Why
//
//   - Brandes' betweenness needs all shortest paths, not one BFS tree.
//   - O(V + E) per source, the cheapest possible solve on unweighted data.
//
// Determinism
//
//	core.Graph.Neighbors returns arcs sorted by target, so Order, Pred and
//	Sigma are fully reproducible for a given graph and source.
//
// Edge cases
//
//   - Source: Dist 0, Sigma 1, no predecessors.
//   - Unreachable nodes: Dist = sssp.Unreachable, Sigma 0, absent from Order.
//   - Self-loops: never satisfy Dist[u] == Dist[u]+1 and are therefore inert.
//
// Complexity (V = nodes, E = arcs)
//
//   - Time:   O(V + E)
//   - Memory: O(V + E)
//
// Usage
//
//	res, err := bfs.ShortestPaths(g, 0)
//	if err != nil {
//		// sssp.ErrNilGraph, sssp.ErrSourceOutOfRange or sssp.ErrPathCountOverflow
//	}
//	fmt.Println(res.Dist[3], res.Sigma[3], res.Pred[3])
package bfs

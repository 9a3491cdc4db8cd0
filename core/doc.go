// Package core provides the immutable, index-addressed Graph that every
// solver and centrality engine in lvlcentrality consumes.
//
// The Graph G = (V,E) has these properties:
//
//   - Nodes are the integers 0..N-1 (N ≥ 1); any name mapping lives outside core.
//   - Arcs are directed. Undirected data is expressed by inserting both
//     directions, which WithSymmetric() does for you.
//   - Weights are strictly positive strengths; the traversal cost is derived
//     by CostMode (CostInverse: 1/w, CostDirect: w).
//   - Parallel arcs collapse to the cheapest one; self-loops are kept but
//     never take part in a shortest path.
//   - Construction validates everything up front and never returns a
//     partially built graph.
//
// Configuration Options (GraphOption):
//
//	– WithSymmetric()
//	    Mirror every declared edge (undirected input).
//
//	– WithCostMode(mode CostMode)
//	    Select CostInverse (default) or CostDirect.
//
// Core Methods:
//
//	NewGraph(n int, edges []Edge, opts ...GraphOption) (*Graph, error) // O(N + E log E)
//	NodeCount() int                      // O(1)
//	ArcCount() int                       // O(1)
//	Neighbors(u int) []Arc               // O(1), sorted by Arc.To
//	OutDegree(u int) / InDegree(u int)   // O(1) / O(d)
//	UnitCost() bool                      // O(1), all arc costs equal
//	Symmetric() bool                     // O(1), readable as undirected
//
// Errors:
//
//	ErrInvalidGraph    – umbrella; wraps every detail below
//	ErrNoNodes         – N < 1
//	ErrNodeOutOfRange  – edge endpoint outside [0, N)
//	ErrBadWeight       – weight ≤ 0, NaN or ±Inf
//	ErrUnknownCostMode – unsupported CostMode
//
// Thread safety:
//
//	A Graph is read-only after NewGraph returns; share it freely across goroutines.
package core

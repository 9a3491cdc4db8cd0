// Package builder provides deterministic topology constructors that
// assemble a read-only *core.Graph from composable pieces.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph:   resolve options, run constructors, freeze into core.Graph.
//     – Assemble:     same, but returns the raw Blueprint (node count, edge
//     list, labels) so callers can serialize a fixture.
//   - Topology constructors (Constructor):
//     – Path, Cycle, Star, Wheel, Complete, CompleteBipartite, Grid, RandomSparse.
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – WithSeed/WithRand, WithWeightFn, WithIDScheme, WithDirected.
//   - Node label schemes (IDFn) and edge-weight distributions (WeightFn).
//
// Nodes are integer indices. A constructor over n nodes works on indices
// 0..n-1, so several constructors passed to one BuildGraph call overlay on
// the same leading nodes. Each undirected pair is emitted once; pass
// core.WithSymmetric() in the graph options to obtain both arcs.
//
// Guarantees:
//
//   - Determinism: same inputs, options, seed and constructor order yield
//     identical edge lists.
//   - Fast-fail on meaningless option parameters via panics in option
//     constructors; constructors themselves only return sentinel errors.
package builder

// SPDX-License-Identifier: MIT
//
// Package core defines the immutable, index-addressed Graph consumed by the
// shortest-path solvers and the centrality engines.
//
// This file declares Edge, Arc, CostMode, GraphOption, the sentinel errors,
// and the Graph type itself. Construction lives in graph.go.
//
// Errors:
//
//	ErrInvalidGraph     - umbrella for every construction failure.
//	ErrNoNodes          - node count is zero or negative.
//	ErrNodeOutOfRange   - an edge endpoint is outside [0, N).
//	ErrBadWeight        - an edge weight is not a finite value > 0.
//	ErrUnknownCostMode  - a CostMode outside the declared set.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph construction. Every detail sentinel is reported
// wrapped together with ErrInvalidGraph, so callers may branch on either.
var (
	// ErrInvalidGraph indicates malformed input; no graph is returned.
	ErrInvalidGraph = errors.New("core: invalid graph")

	// ErrNoNodes indicates a node count below one.
	ErrNoNodes = errors.New("core: graph must have at least one node")

	// ErrNodeOutOfRange indicates an edge endpoint outside [0, N).
	ErrNodeOutOfRange = errors.New("core: node index out of range")

	// ErrBadWeight indicates a non-positive, NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: edge weight must be finite and positive")

	// ErrUnknownCostMode indicates an unsupported CostMode value.
	ErrUnknownCostMode = errors.New("core: unknown cost mode")
)

// invalid wraps a detail sentinel with ErrInvalidGraph and a context message.
func invalid(detail error, format string, args ...any) error {
	return fmt.Errorf("%w: %w: %s", ErrInvalidGraph, detail, fmt.Sprintf(format, args...))
}

// Edge is a declared connection between two node indices.
//
// Weight is a strength, not a cost: the effective traversal cost is derived
// from it by the graph's CostMode. Unweighted inputs use Weight = 1.
type Edge struct {
	From   int
	To     int
	Weight float64
}

// Arc is an outgoing adjacency entry: the neighbor index and the effective
// cost of reaching it.
type Arc struct {
	To   int
	Cost float64
}

// CostMode maps an edge weight to its traversal cost.
type CostMode int

const (
	// CostInverse treats weight as tie strength: cost = 1/weight.
	// A heavier edge is a shorter hop.
	CostInverse CostMode = iota

	// CostDirect treats weight as the traversal cost itself.
	CostDirect
)

// String returns the lower-case name used by configuration files.
func (m CostMode) String() string {
	switch m {
	case CostInverse:
		return "inverse"
	case CostDirect:
		return "direct"
	default:
		return fmt.Sprintf("CostMode(%d)", int(m))
	}
}

// ParseCostMode resolves a configuration name into a CostMode.
func ParseCostMode(s string) (CostMode, error) {
	switch s {
	case "", "inverse":
		return CostInverse, nil
	case "direct":
		return CostDirect, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownCostMode, s)
	}
}

// cost converts a validated weight to a traversal cost.
func (m CostMode) cost(weight float64) float64 {
	if m == CostDirect {
		return weight
	}

	return 1 / weight
}

// GraphOption configures construction of a Graph.
type GraphOption func(*graphConfig)

// graphConfig is the resolved construction configuration.
type graphConfig struct {
	symmetric bool
	costMode  CostMode
}

// WithSymmetric mirrors every declared edge, so an undirected input can be
// listed once per pair. The mirror carries the same weight.
func WithSymmetric() GraphOption {
	return func(c *graphConfig) { c.symmetric = true }
}

// WithCostMode selects how weights become traversal costs.
// The default is CostInverse.
func WithCostMode(mode CostMode) GraphOption {
	return func(c *graphConfig) { c.costMode = mode }
}

// Graph is a read-only directed graph over node indices 0..N-1.
//
// Parallel arcs are collapsed at construction: for each ordered pair (u,v)
// only the cheapest cost is kept. Self-loops are stored but can never
// shorten a path. Once built, a Graph is never mutated and is safe for
// concurrent use by any number of readers.
type Graph struct {
	n         int
	adj       [][]Arc // adj[u] sorted by Arc.To ascending
	inDegree  []int   // distinct in-neighbors, self-loops excluded
	arcs      int
	costMode  CostMode
	unitCost  bool
	symmetric bool
}

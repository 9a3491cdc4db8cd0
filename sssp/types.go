// Package sssp defines the single-source shortest-path result shared by the
// bfs and dijkstra solvers and consumed by the centrality accumulators.
//
// A Result describes the shortest-path DAG rooted at one source: distances,
// every predecessor on some shortest path, and exact shortest-path counts.
package sssp

import (
	"errors"
	"fmt"
	"math"
	"math/bits"

	"github.com/katalvlaran/lvlcentrality/core"
)

// Sentinel errors shared by all solvers.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to a solver.
	ErrNilGraph = errors.New("sssp: graph is nil")

	// ErrSourceOutOfRange indicates a source index outside [0, N).
	ErrSourceOutOfRange = errors.New("sssp: source node out of range")

	// ErrPathCountOverflow indicates that a shortest-path count no longer
	// fits in 64 bits. Counts are never allowed to wrap.
	ErrPathCountOverflow = errors.New("sssp: shortest-path count overflow")
)

// Tolerance is the relative slack under which two path costs are treated as
// equal by weighted solvers.
const Tolerance = 1e-9

// Unreachable is the distance recorded for nodes with no path from the source.
var Unreachable = math.Inf(1)

// Solver computes the shortest-path DAG of g rooted at source.
type Solver func(g *core.Graph, source int) (*Result, error)

// Result holds the shortest-path DAG for one source.
//
//   - Dist[v]:  minimal cost from Source to v, or Unreachable.
//   - Pred[v]:  every u with Dist[v] == Dist[u] + cost(u,v); empty for Source and unreachable v.
//   - Sigma[v]: number of distinct shortest paths Source→v (1 for Source, 0 if unreachable).
//   - Order:    reachable nodes in the order they were settled, which is
//     non-decreasing in Dist and lists every predecessor before its successors.
type Result struct {
	Source int
	Dist   []float64
	Pred   [][]int
	Sigma  []uint64
	Order  []int
}

// NewResult allocates a Result for n nodes with every node unreachable
// except source.
func NewResult(n, source int) *Result {
	r := &Result{
		Source: source,
		Dist:   make([]float64, n),
		Pred:   make([][]int, n),
		Sigma:  make([]uint64, n),
		Order:  make([]int, 0, n),
	}
	for v := range r.Dist {
		r.Dist[v] = Unreachable
	}
	r.Dist[source] = 0
	r.Sigma[source] = 1

	return r
}

// Reachable reports whether v has at least one path from the source.
func (r *Result) Reachable(v int) bool {
	return v >= 0 && v < len(r.Dist) && !math.IsInf(r.Dist[v], 1)
}

// Validate checks the common solver preconditions.
func Validate(g *core.Graph, source int) error {
	if g == nil {
		return ErrNilGraph
	}
	if !g.HasNode(source) {
		return fmt.Errorf("%w: source=%d n=%d", ErrSourceOutOfRange, source, g.NodeCount())
	}

	return nil
}

// AddCount returns a+b, or ErrPathCountOverflow if the sum does not fit.
func AddCount(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, ErrPathCountOverflow
	}

	return sum, nil
}

// Equal reports whether two finite path costs are equal within Tolerance.
func Equal(a, b float64) bool {
	if a == b {
		return true
	}
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))

	return math.Abs(a-b) <= Tolerance*scale
}

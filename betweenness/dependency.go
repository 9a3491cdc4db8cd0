package betweenness

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvlcentrality/sssp"
)

// Accumulate performs Brandes' back-propagation over one shortest-path DAG
// and returns the dependency of every node on the source.
//
// Reachable nodes are processed in strictly decreasing distance; for each
// node t and each predecessor p of t:
//
//	dep[p] += Sigma[p] / Sigma[t] * (1 + dep[t])
//
// so dep[t] is final before it is pushed to its predecessors. Unreachable
// nodes are never visited and keep a zero dependency. The source's own entry
// is the sum over all its targets and is not a betweenness contribution;
// callers skip it.
//
// Path counts above MaxExactCount are reported as ErrPrecisionLoss rather
// than rounded.
//
// When res.Order is present (as produced by package bfs and dijkstra) it is
// walked backwards; otherwise the reachable nodes are sorted by distance.
func Accumulate(res *sssp.Result) ([]float64, error) {
	if res == nil {
		return nil, ErrNilResult
	}
	n := len(res.Dist)
	if len(res.Sigma) != n || len(res.Pred) != n {
		return nil, fmt.Errorf("%w: len(Dist)=%d len(Sigma)=%d len(Pred)=%d",
			ErrInconsistentResult, n, len(res.Sigma), len(res.Pred))
	}

	dep := make([]float64, n)
	if err := accumulateInto(res, dep); err != nil {
		return nil, err
	}

	return dep, nil
}

// accumulateInto is Accumulate over a caller-owned, zeroed dep slice.
func accumulateInto(res *sssp.Result, dep []float64) error {
	order := res.Order
	if order == nil {
		order = byDistance(res)
	}

	for i := len(order) - 1; i >= 0; i-- {
		t := order[i]
		st := res.Sigma[t]
		switch {
		case st == 0:
			return fmt.Errorf("%w: reachable node %d has zero path count", ErrInconsistentResult, t)
		case st > MaxExactCount:
			// Predecessor counts never exceed st, so one check covers the ratio.
			return fmt.Errorf("%w: node %d has %d paths", ErrPrecisionLoss, t, st)
		}
		for _, p := range res.Pred[t] {
			dep[p] += float64(res.Sigma[p]) / float64(st) * (1 + dep[t])
		}
	}

	return nil
}

// byDistance lists the reachable nodes of res in non-decreasing distance,
// ties by index.
func byDistance(res *sssp.Result) []int {
	order := make([]int, 0, len(res.Dist))
	for v := range res.Dist {
		if res.Reachable(v) {
			order = append(order, v)
		}
	}
	sort.SliceStable(order, func(i, j int) bool {
		return res.Dist[order[i]] < res.Dist[order[j]]
	})

	return order
}

// Package betweenness computes Brandes' betweenness centrality over a
// core.Graph: one shortest-path solve and one dependency back-propagation
// per source, summed into a per-node total, then halved and rescaled.
package betweenness

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/lvlcentrality/core"
	"github.com/katalvlaran/lvlcentrality/sssp"
)

// Compute returns the betweenness centrality of every node of g.
//
// For every source s the configured solver builds the shortest-path DAG,
// Accumulate turns it into dependencies, and dep[v] for v != s is added to
// the running total of v. Afterwards:
//
//   - N ≤ 2: every score is zero (no path has an interior node).
//   - Undirected, not normalized: totals are halved (each unordered pair was
//     seen from both endpoints).
//   - Normalized: totals are divided by (N-1)(N-2), which for undirected
//     graphs equals halving and dividing by the (N-1)(N-2)/2 unordered pairs.
//
// The context is checked between sources; on cancellation ctx.Err() is
// returned and no partial scores escape.
//
// Errors: ErrNilGraph, ErrOptionViolation, sssp.ErrPathCountOverflow,
// ErrPrecisionLoss, ErrInconsistentResult, or the context error.
//
// Complexity: O(V·E) unit strategy, O(V·(V+E) log V) weighted; O(V + E)
// memory per worker.
func Compute(ctx context.Context, g *core.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	strategy, solve := o.Strategy.resolve(g)
	n := g.NodeCount()
	started := time.Now()

	if o.Logger != nil {
		o.Logger.Debug("betweenness: start",
			"nodes", n, "arcs", g.ArcCount(), "strategy", strategy,
			"directed", o.Directed, "normalize", o.Normalize, "workers", o.Workers)
	}

	var (
		total []float64
		err   error
	)
	if o.Workers > 1 && n > 1 {
		total, err = sumParallel(ctx, g, solve, o)
	} else {
		total, err = sumSequential(ctx, g, solve, o)
	}
	if err != nil {
		return nil, err
	}

	scale(total, n, o.Directed, o.Normalize)

	if o.Logger != nil {
		o.Logger.Debug("betweenness: done", "nodes", n, "elapsed", time.Since(started).Round(time.Microsecond))
	}

	return &Result{
		Scores:     total,
		Directed:   o.Directed,
		Normalized: o.Normalize,
		Strategy:   strategy,
	}, nil
}

// sumSequential folds every source into one accumulator in source order.
func sumSequential(ctx context.Context, g *core.Graph, solve sssp.Solver, o Options) ([]float64, error) {
	n := g.NodeCount()
	total := make([]float64, n)
	dep := make([]float64, n)

	for s := 0; s < n; s++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := addSource(g, solve, s, dep, total); err != nil {
			return nil, err
		}
		if o.Progress != nil {
			o.Progress(s+1, n)
		}
	}

	return total, nil
}

// addSource solves from s, accumulates into the scratch slice dep, and adds
// dep[v] (v != s) into total. dep is zeroed before use.
func addSource(g *core.Graph, solve sssp.Solver, s int, dep, total []float64) error {
	res, err := solve(g, s)
	if err != nil {
		return fmt.Errorf("betweenness: source %d: %w", s, err)
	}

	clear(dep)
	if err = accumulateInto(res, dep); err != nil {
		return fmt.Errorf("betweenness: source %d: %w", s, err)
	}

	for v, d := range dep {
		if v != s {
			total[v] += d
		}
	}

	return nil
}

// scale applies the undirected halving and the optional normalization.
func scale(total []float64, n int, directed, normalize bool) {
	if n <= 2 {
		clear(total)
		return
	}

	var denom float64
	switch {
	case normalize:
		denom = float64((n - 1) * (n - 2))
	case !directed:
		denom = 2
	default:
		return
	}
	for v := range total {
		total[v] /= denom
	}
}

package betweenness

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvlcentrality/core"
	"github.com/katalvlaran/lvlcentrality/sssp"
)

// sumParallel partitions the sources into o.Workers contiguous chunks.
// Each worker folds its chunk, in source order, into a private vector; the
// private vectors are then summed in chunk order by the calling goroutine.
// For a fixed worker count the floating-point result is therefore
// reproducible bit for bit, independent of scheduling.
func sumParallel(ctx context.Context, g *core.Graph, solve sssp.Solver, o Options) ([]float64, error) {
	n := g.NodeCount()
	w := min(o.Workers, n)
	partial := make([][]float64, w)

	var done atomic.Int64
	eg, ctx := errgroup.WithContext(ctx)
	for c := 0; c < w; c++ {
		lo, hi := c*n/w, (c+1)*n/w
		eg.Go(func() error {
			local := make([]float64, n)
			dep := make([]float64, n)
			for s := lo; s < hi; s++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := addSource(g, solve, s, dep, local); err != nil {
					return err
				}
				if o.Progress != nil {
					o.Progress(int(done.Add(1)), n)
				}
			}
			partial[c] = local
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	total := partial[0]
	for _, p := range partial[1:] {
		for v, x := range p {
			total[v] += x
		}
	}

	return total, nil
}

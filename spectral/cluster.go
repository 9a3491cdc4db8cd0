package spectral

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/lvlcentrality/core"
)

// Cluster splits the nodes of g into k groups by spectral clustering: the
// Laplacian of g is embedded into its smallest non-zero eigenvectors
// (WithDimensions, default k) and the embedded rows are grouped by KMeans.
//
// A graph needs at least dims non-zero Laplacian eigenvalues, i.e. N minus
// its number of connected components must be >= dims; otherwise
// ErrTooFewEigenpairs is returned.
//
// Errors: ErrNilGraph, ErrBadClusterCount, ErrOptionViolation,
// ErrEigenFailed, ErrTooFewEigenpairs, ErrDegenerateEmbedding, or the
// context error.
func Cluster(ctx context.Context, g *core.Graph, k int, opts ...Option) (*Result, error) {
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

	n := g.NodeCount()
	if k < 1 || k > n {
		return nil, fmt.Errorf("%w: k=%d with %d nodes", ErrBadClusterCount, k, n)
	}
	dims := o.Dimensions
	if dims == 0 {
		dims = k
	}
	started := time.Now()

	l, err := Laplacian(g)
	if err != nil {
		return nil, err
	}
	eig, emb, err := Embed(l, dims)
	if err != nil {
		return nil, err
	}
	if o.Logger != nil {
		o.Logger.Debug("spectral: embedded", "nodes", n, "dims", dims, "eigenvalues", eig)
	}

	part, err := KMeans(ctx, emb, k, o.Seed, o.MaxIter)
	if err != nil {
		return nil, err
	}

	sizes := make([]int, k)
	for _, c := range part.Labels {
		sizes[c]++
	}
	if o.Logger != nil {
		o.Logger.Debug("spectral: done", "clusters", k, "sizes", sizes,
			"iterations", part.Iterations, "elapsed", time.Since(started).Round(time.Microsecond))
	}

	return &Result{
		Labels:      part.Labels,
		Sizes:       sizes,
		Eigenvalues: eig,
		Embedding:   emb,
		Iterations:  part.Iterations,
	}, nil
}

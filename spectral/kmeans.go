package spectral

import (
	"context"
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Partition is the outcome of KMeans.
type Partition struct {
	// Labels[i] is the cluster of row i, numbered by first appearance.
	Labels []int

	// Centers holds one row per cluster, in label order.
	Centers *mat.Dense

	// Iterations is the number of assignment rounds run.
	Iterations int
}

// KMeans partitions the rows of x into k clusters with Lloyd iterations.
//
// Implementation:
//   - Stage 1: Draw k distinct rows as initial centers, visiting rows in a
//     permutation from a generator seeded with seed.
//   - Stage 2: Assign every row to its nearest center (Euclidean, ties to
//     the lower index); stop when no label changes or after maxIter rounds.
//   - Stage 3: Move each center to the mean of its rows. An empty cluster
//     takes the row farthest from its center among clusters of two or more.
//   - Stage 4: Renumber clusters by first appearance in row order.
//
// The context is checked once per round.
//
// Errors: ErrBadClusterCount, ErrOptionViolation (maxIter < 1),
// ErrDegenerateEmbedding, or the context error.
//
// Complexity: O(maxIter·N·k·d) time, O(N + k·d) extra memory.
func KMeans(ctx context.Context, x *mat.Dense, k int, seed int64, maxIter int) (*Partition, error) {
	n, d := x.Dims()
	if k < 1 || k > n {
		return nil, fmt.Errorf("%w: k=%d with %d points", ErrBadClusterCount, k, n)
	}
	if maxIter < 1 {
		return nil, fmt.Errorf("%w: max iterations must be >= 1 (%d)", ErrOptionViolation, maxIter)
	}

	// Stage 1
	centers := mat.NewDense(k, d, nil)
	chosen := 0
	for _, i := range rand.New(rand.NewSource(seed)).Perm(n) {
		row := x.RawRowView(i)
		if seen(centers, chosen, row) {
			continue
		}
		centers.SetRow(chosen, row)
		if chosen++; chosen == k {
			break
		}
	}
	if chosen < k {
		return nil, fmt.Errorf("%w: %d distinct of %d wanted", ErrDegenerateEmbedding, chosen, k)
	}

	labels := make([]int, n)
	for i := range labels {
		labels[i] = -1
	}

	iter := 0
	for iter < maxIter {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		iter++
		// Stage 2
		if !assign(x, centers, labels) {
			break
		}
		// Stage 3
		update(x, centers, labels)
	}

	// Stage 4
	canonical(labels, centers)

	return &Partition{Labels: labels, Centers: centers, Iterations: iter}, nil
}

// seen reports whether row equals one of the first m rows of centers.
func seen(centers *mat.Dense, m int, row []float64) bool {
	for c := 0; c < m; c++ {
		if floats.Equal(centers.RawRowView(c), row) {
			return true
		}
	}
	return false
}

// nearest returns the index of the center closest to row and its distance.
func nearest(centers *mat.Dense, row []float64) (int, float64) {
	k, _ := centers.Dims()
	best, bestDist := 0, floats.Distance(row, centers.RawRowView(0), 2)
	for c := 1; c < k; c++ {
		if dist := floats.Distance(row, centers.RawRowView(c), 2); dist < bestDist {
			best, bestDist = c, dist
		}
	}
	return best, bestDist
}

// assign relabels every row and reports whether any label changed.
func assign(x, centers *mat.Dense, labels []int) bool {
	changed := false
	for i := range labels {
		c, _ := nearest(centers, x.RawRowView(i))
		if c != labels[i] {
			labels[i] = c
			changed = true
		}
	}
	return changed
}

// update recomputes centers as cluster means, refilling empty clusters.
func update(x, centers *mat.Dense, labels []int) {
	k, d := centers.Dims()
	sizes := make([]int, k)
	for _, c := range labels {
		sizes[c]++
	}

	for c := 0; c < k; c++ {
		if sizes[c] > 0 {
			continue
		}
		far, farDist := -1, -1.0
		for i, l := range labels {
			if sizes[l] < 2 {
				continue
			}
			if dist := floats.Distance(x.RawRowView(i), centers.RawRowView(l), 2); dist > farDist {
				far, farDist = i, dist
			}
		}
		if far < 0 {
			continue
		}
		sizes[labels[far]]--
		labels[far] = c
		sizes[c] = 1
	}

	sums := mat.NewDense(k, d, nil)
	for i, c := range labels {
		floats.Add(sums.RawRowView(c), x.RawRowView(i))
	}
	for c := 0; c < k; c++ {
		if sizes[c] == 0 {
			continue
		}
		row := sums.RawRowView(c)
		floats.Scale(1/float64(sizes[c]), row)
		centers.SetRow(c, row)
	}
}

// canonical renumbers labels by first appearance and permutes the center
// rows to match.
func canonical(labels []int, centers *mat.Dense) {
	k, _ := centers.Dims()
	remap := make([]int, k)
	for c := range remap {
		remap[c] = -1
	}
	next := 0
	for _, c := range labels {
		if remap[c] < 0 {
			remap[c] = next
			next++
		}
	}
	// Clusters that ended empty keep the trailing labels.
	for c := range remap {
		if remap[c] < 0 {
			remap[c] = next
			next++
		}
	}

	old := mat.DenseCopyOf(centers)
	for c := 0; c < k; c++ {
		centers.SetRow(remap[c], old.RawRowView(c))
	}
	for i, c := range labels {
		labels[i] = remap[c]
	}
}

package spectral

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Embed decomposes the symmetric matrix l and returns its dims smallest
// eigenvalues above ZeroTolerance together with the matching unit
// eigenvectors as the columns of an N×dims matrix, so row v is the spectral
// coordinate of node v.
//
// Each eigenvector is oriented so that its first entry of magnitude above
// ZeroTolerance is positive.
//
// Errors: ErrOptionViolation (dims < 1), ErrEigenFailed, ErrTooFewEigenpairs.
func Embed(l mat.Symmetric, dims int) ([]float64, *mat.Dense, error) {
	if dims < 1 {
		return nil, nil, fmt.Errorf("%w: dimensions must be >= 1 (%d)", ErrOptionViolation, dims)
	}

	var es mat.EigenSym
	if !es.Factorize(l, true) {
		return nil, nil, ErrEigenFailed
	}
	vals := es.Values(nil) // ascending
	var vecs mat.Dense
	es.VectorsTo(&vecs)

	picked := make([]int, 0, dims)
	for j, v := range vals {
		if v > ZeroTolerance {
			picked = append(picked, j)
			if len(picked) == dims {
				break
			}
		}
	}
	if len(picked) < dims {
		return nil, nil, fmt.Errorf("%w: want %d, have %d", ErrTooFewEigenpairs, dims, len(picked))
	}

	n := l.SymmetricDim()
	out := mat.NewDense(n, dims, nil)
	eig := make([]float64, dims)
	col := make([]float64, n)
	for c, j := range picked {
		eig[c] = vals[j]
		mat.Col(col, j, &vecs)
		orient(col)
		out.SetCol(c, col)
	}

	return eig, out, nil
}

// orient flips v so that its first significant entry is positive.
func orient(v []float64) {
	for _, x := range v {
		if math.Abs(x) <= ZeroTolerance {
			continue
		}
		if x < 0 {
			for i := range v {
				v[i] = -v[i]
			}
		}
		return
	}
}

package spectral

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlcentrality/core"
)

// Laplacian returns L = D − A for the undirected, unweighted view of g:
// A[u][v] = 1 when an arc joins u and v in either direction, D is the
// diagonal of row sums of A. Self-loops are ignored, so every row of L sums
// to zero.
//
// Complexity: O(N² + E) time and memory.
func Laplacian(g *core.Graph) (*mat.SymDense, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.NodeCount()
	l := mat.NewSymDense(n, nil)

	for u := 0; u < n; u++ {
		for _, a := range g.Neighbors(u) {
			if a.To != u {
				l.SetSym(u, a.To, -1)
			}
		}
	}
	for u := 0; u < n; u++ {
		var deg float64
		for v := 0; v < n; v++ {
			if v != u {
				deg -= l.At(u, v)
			}
		}
		l.SetSym(u, u, deg)
	}

	return l, nil
}

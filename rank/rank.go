// Package rank orders per-node scores into a deterministic ranking and
// exposes top-k selection.
//
// Ordering contract: score descending, ties broken by ascending node index.
// NaN scores, which no engine in this module produces, sort last.
package rank

import (
	"math"
	"sort"
)

// Entry is one ranked (node, score) pair.
type Entry struct {
	Node  int     `json:"node" yaml:"node"`
	Score float64 `json:"score" yaml:"score"`
}

// Ranking is a sequence of entries in ranking order.
type Ranking []Entry

// Rank builds the full ranking of scores, where scores[v] belongs to node v.
//
// Complexity: O(N log N).
func Rank(scores []float64) Ranking {
	r := make(Ranking, len(scores))
	for v, s := range scores {
		r[v] = Entry{Node: v, Score: s}
	}
	sort.Slice(r, func(i, j int) bool { return less(r[i], r[j]) })

	return r
}

// less is the ranking order.
func less(a, b Entry) bool {
	an, bn := math.IsNaN(a.Score), math.IsNaN(b.Score)
	switch {
	case an != bn:
		return bn
	case !an && a.Score != b.Score:
		return a.Score > b.Score
	default:
		return a.Node < b.Node
	}
}

// TopK returns the first k entries of r as a new slice.
// k ≤ 0 yields an empty ranking; k ≥ len(r) yields a copy of r.
// r is assumed to be in ranking order already (as returned by Rank).
func TopK(r Ranking, k int) Ranking {
	if k <= 0 {
		return Ranking{}
	}
	k = min(k, len(r))
	out := make(Ranking, k)
	copy(out, r[:k])

	return out
}

// Nodes returns the node indices of r in ranking order.
func (r Ranking) Nodes() []int {
	ids := make([]int, len(r))
	for i, e := range r {
		ids[i] = e.Node
	}

	return ids
}

// Scores returns the scores of r in ranking order.
func (r Ranking) Scores() []float64 {
	vals := make([]float64, len(r))
	for i, e := range r {
		vals[i] = e.Score
	}

	return vals
}

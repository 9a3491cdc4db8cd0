package bfs_test

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/katalvlaran/lvlcentrality/bfs"
	"github.com/katalvlaran/lvlcentrality/core"
	"github.com/katalvlaran/lvlcentrality/sssp"
)

// mustGraph builds a graph or fails the test.
func mustGraph(t testing.TB, n int, edges []core.Edge, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n, edges, opts...)
	if err != nil {
		t.Fatalf("NewGraph: %v", err)
	}
	return g
}

// diamondChain links k diamonds in series: 0-{1,2}-3-{4,5}-6 ...
// The number of shortest paths from 0 to the last node is 2^k.
func diamondChain(t testing.TB, k int) *core.Graph {
	t.Helper()
	edges := make([]core.Edge, 0, 4*k)
	for i := 0; i < k; i++ {
		a := 3 * i
		edges = append(edges,
			core.Edge{From: a, To: a + 1, Weight: 1},
			core.Edge{From: a, To: a + 2, Weight: 1},
			core.Edge{From: a + 1, To: a + 3, Weight: 1},
			core.Edge{From: a + 2, To: a + 3, Weight: 1},
		)
	}
	return mustGraph(t, 3*k+1, edges)
}

// TestShortestPaths_Errors verifies that invalid inputs are rejected.
func TestShortestPaths_Errors(t *testing.T) {
	if _, err := bfs.ShortestPaths(nil, 0); !errors.Is(err, sssp.ErrNilGraph) {
		t.Errorf("nil graph: want ErrNilGraph, got %v", err)
	}
	g := mustGraph(t, 2, nil)
	if _, err := bfs.ShortestPaths(g, 2); !errors.Is(err, sssp.ErrSourceOutOfRange) {
		t.Errorf("bad source: want ErrSourceOutOfRange, got %v", err)
	}
}

// TestShortestPaths_Single covers the trivial one-node graph.
func TestShortestPaths_Single(t *testing.T) {
	res, err := bfs.ShortestPaths(mustGraph(t, 1, nil), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int{0}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if res.Dist[0] != 0 || res.Sigma[0] != 1 || len(res.Pred[0]) != 0 {
		t.Errorf("source state = (%v, %d, %v); want (0, 1, [])", res.Dist[0], res.Sigma[0], res.Pred[0])
	}
}

// TestShortestPaths_Diamond checks that both equal-length routes are counted
// and both predecessors are kept.
func TestShortestPaths_Diamond(t *testing.T) {
	// 0-1-3 and 0-2-3, undirected
	g := mustGraph(t, 4, []core.Edge{{From: 0, To: 1, Weight: 1}, {From: 0, To: 2, Weight: 1}, {From: 1, To: 3, Weight: 1}, {From: 2, To: 3, Weight: 1}}, core.WithSymmetric())

	res, err := bfs.ShortestPaths(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if want := []float64{0, 1, 1, 2}; !reflect.DeepEqual(res.Dist, want) {
		t.Errorf("Dist = %v; want %v", res.Dist, want)
	}
	if want := []uint64{1, 1, 1, 2}; !reflect.DeepEqual(res.Sigma, want) {
		t.Errorf("Sigma = %v; want %v", res.Sigma, want)
	}
	if want := []int{1, 2}; !reflect.DeepEqual(res.Pred[3], want) {
		t.Errorf("Pred[3] = %v; want %v", res.Pred[3], want)
	}
	if want := []int{0, 1, 2, 3}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
}

// TestShortestPaths_Disconnected ensures unreachable nodes keep the sentinel
// distance, a zero count, and never appear in Order.
func TestShortestPaths_Disconnected(t *testing.T) {
	g := mustGraph(t, 4, []core.Edge{{From: 0, To: 1, Weight: 1}, {From: 2, To: 3, Weight: 1}}, core.WithSymmetric())

	res, err := bfs.ShortestPaths(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range []int{2, 3} {
		if !math.IsInf(res.Dist[v], 1) || res.Sigma[v] != 0 || res.Reachable(v) {
			t.Errorf("node %d: Dist=%v Sigma=%d; want unreachable", v, res.Dist[v], res.Sigma[v])
		}
	}
	if want := []int{0, 1}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
}

// TestShortestPaths_Directed follows arcs only in their declared direction.
func TestShortestPaths_Directed(t *testing.T) {
	g := mustGraph(t, 3, []core.Edge{{From: 0, To: 1, Weight: 1}, {From: 2, To: 1, Weight: 1}})

	res, err := bfs.ShortestPaths(g, 1)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{1}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order from sink = %v; want %v", res.Order, want)
	}
}

// TestShortestPaths_IgnoresCost shows the unit strategy counts hops only.
func TestShortestPaths_IgnoresCost(t *testing.T) {
	// 0→2 direct with weight 1 vs 0→1→2 with weight 100 (cheap under inverse cost).
	g := mustGraph(t, 3, []core.Edge{{From: 0, To: 2, Weight: 1}, {From: 0, To: 1, Weight: 100}, {From: 1, To: 2, Weight: 100}})

	res, err := bfs.ShortestPaths(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if res.Dist[2] != 1 || !reflect.DeepEqual(res.Pred[2], []int{0}) {
		t.Errorf("Dist[2]=%v Pred[2]=%v; want 1 via [0]", res.Dist[2], res.Pred[2])
	}
}

// TestShortestPaths_SelfLoop ensures loops neither count nor add predecessors.
func TestShortestPaths_SelfLoop(t *testing.T) {
	g := mustGraph(t, 2, []core.Edge{{From: 0, To: 0, Weight: 1}, {From: 0, To: 1, Weight: 1}, {From: 1, To: 1, Weight: 1}})

	res, err := bfs.ShortestPaths(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if want := []uint64{1, 1}; !reflect.DeepEqual(res.Sigma, want) {
		t.Errorf("Sigma = %v; want %v", res.Sigma, want)
	}
	if len(res.Pred[0]) != 0 || !reflect.DeepEqual(res.Pred[1], []int{0}) {
		t.Errorf("Pred = %v; want [[] [0]]", res.Pred)
	}
}

// TestShortestPaths_CountGrowth checks exact counts up to 2^63 and the
// overflow report one step beyond 2^64.
func TestShortestPaths_CountGrowth(t *testing.T) {
	res, err := bfs.ShortestPaths(diamondChain(t, 63), 0)
	if err != nil {
		t.Fatalf("63 diamonds: %v", err)
	}
	if got, want := res.Sigma[3*63], uint64(1)<<63; got != want {
		t.Errorf("Sigma[last] = %d; want %d", got, want)
	}

	if _, err = bfs.ShortestPaths(diamondChain(t, 64), 0); !errors.Is(err, sssp.ErrPathCountOverflow) {
		t.Errorf("64 diamonds: want ErrPathCountOverflow, got %v", err)
	}
}

// Package dijkstra_test contains unit tests for the weighted shortest-path
// solver. They cover validation, cost conventions, tie accumulation within
// tolerance, stale-entry handling, and agreement with bfs on unit graphs.
package dijkstra_test

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/katalvlaran/lvlcentrality/bfs"
	"github.com/katalvlaran/lvlcentrality/core"
	"github.com/katalvlaran/lvlcentrality/dijkstra"
	"github.com/katalvlaran/lvlcentrality/sssp"
)

func mustGraph(t testing.TB, n int, edges []core.Edge, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n, edges, opts...)
	if err != nil {
		t.Fatalf("NewGraph: %v", err)
	}
	return g
}

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestShortestPaths_NilGraph(t *testing.T) {
	if _, err := dijkstra.ShortestPaths(nil, 0); !errors.Is(err, sssp.ErrNilGraph) {
		t.Fatalf("Expected ErrNilGraph, got %v", err)
	}
}

func TestShortestPaths_SourceOutOfRange(t *testing.T) {
	g := mustGraph(t, 3, nil)
	for _, s := range []int{-1, 3, 100} {
		if _, err := dijkstra.ShortestPaths(g, s); !errors.Is(err, sssp.ErrSourceOutOfRange) {
			t.Errorf("source %d: expected ErrSourceOutOfRange, got %v", s, err)
		}
	}
}

// ------------------------------------------------------------------------
// 2. Basic Functionality: distances under both cost conventions.
// ------------------------------------------------------------------------

func TestShortestPaths_TriangleDirectCost(t *testing.T) {
	// Graph: 0-1(1), 1-2(2), 0-2(5), undirected, weight = cost.
	g := mustGraph(t, 3, []core.Edge{{From: 0, To: 1, Weight: 1}, {From: 1, To: 2, Weight: 2}, {From: 0, To: 2, Weight: 5}},
		core.WithSymmetric(), core.WithCostMode(core.CostDirect))

	res, err := dijkstra.ShortestPaths(g, 0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if want := []float64{0, 1, 3}; !reflect.DeepEqual(res.Dist, want) {
		t.Errorf("Dist = %v; want %v", res.Dist, want)
	}
	if want := []int{1}; !reflect.DeepEqual(res.Pred[2], want) {
		t.Errorf("Pred[2] = %v; want %v", res.Pred[2], want)
	}
	if want := []int{0, 1, 2}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
}

func TestShortestPaths_TriangleInverseCost(t *testing.T) {
	// Same weights under the default inverse convention:
	// 0→2 costs 1/5 = 0.2, while 0→1→2 costs 1 + 0.5. The heavy edge wins.
	g := mustGraph(t, 3, []core.Edge{{From: 0, To: 1, Weight: 1}, {From: 1, To: 2, Weight: 2}, {From: 0, To: 2, Weight: 5}}, core.WithSymmetric())

	res, err := dijkstra.ShortestPaths(g, 0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if math.Abs(res.Dist[2]-0.2) > 1e-12 {
		t.Errorf("Dist[2] = %v; want 0.2", res.Dist[2])
	}
	if want := []int{0}; !reflect.DeepEqual(res.Pred[2], want) {
		t.Errorf("Pred[2] = %v; want %v", res.Pred[2], want)
	}
	// 0→2→1 costs 0.2 + 0.5 = 0.7 < 1.
	if want := []int{2}; !reflect.DeepEqual(res.Pred[1], want) {
		t.Errorf("Pred[1] = %v; want %v", res.Pred[1], want)
	}
}

// ------------------------------------------------------------------------
// 3. Multiple shortest paths: tie accumulation and resets.
// ------------------------------------------------------------------------

func TestShortestPaths_WeightedTie(t *testing.T) {
	// Two routes 0→3 of cost 3: 0-1-3 (1+2) and 0-2-3 (2+1); a direct 0-3 of cost 4.
	g := mustGraph(t, 4, []core.Edge{{From: 0, To: 1, Weight: 1}, {From: 1, To: 3, Weight: 2}, {From: 0, To: 2, Weight: 2}, {From: 2, To: 3, Weight: 1}, {From: 0, To: 3, Weight: 4}},
		core.WithCostMode(core.CostDirect))

	res, err := dijkstra.ShortestPaths(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if res.Dist[3] != 3 || res.Sigma[3] != 2 {
		t.Errorf("Dist[3]=%v Sigma[3]=%d; want 3 and 2", res.Dist[3], res.Sigma[3])
	}
	if want := []int{1, 2}; !reflect.DeepEqual(res.Pred[3], want) {
		t.Errorf("Pred[3] = %v; want %v", res.Pred[3], want)
	}
}

func TestShortestPaths_TieWithinTolerance(t *testing.T) {
	// Inverse costs 1/3 + 1/3 + 1/3 and 1/1.5 + 1/3 are equal in exact
	// arithmetic but differ in float64; they must still share credit.
	g := mustGraph(t, 5, []core.Edge{
		{From: 0, To: 1, Weight: 3}, {From: 1, To: 2, Weight: 3}, {From: 2, To: 4, Weight: 3}, // three hops
		{From: 0, To: 3, Weight: 1.5}, {From: 3, To: 4, Weight: 3}, // two hops
	})

	res, err := dijkstra.ShortestPaths(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if res.Sigma[4] != 2 {
		t.Errorf("Sigma[4] = %d; want 2 (Dist=%v)", res.Sigma[4], res.Dist[4])
	}
}

func TestShortestPaths_ResetOnImprovement(t *testing.T) {
	// 0→2 (cost 10) is found first, then replaced by 0→1→2 (cost 2).
	g := mustGraph(t, 3, []core.Edge{{From: 0, To: 2, Weight: 10}, {From: 0, To: 1, Weight: 1}, {From: 1, To: 2, Weight: 1}}, core.WithCostMode(core.CostDirect))

	res, err := dijkstra.ShortestPaths(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if res.Dist[2] != 2 || res.Sigma[2] != 1 || !reflect.DeepEqual(res.Pred[2], []int{1}) {
		t.Errorf("node 2 = (%v, %d, %v); want (2, 1, [1])", res.Dist[2], res.Sigma[2], res.Pred[2])
	}
	// The stale (2, 10) entry must not settle node 2 twice.
	if want := []int{0, 1, 2}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
}

// ------------------------------------------------------------------------
// 4. Edge cases: disconnected graph, self-loops, single node.
// ------------------------------------------------------------------------

func TestShortestPaths_Disconnected(t *testing.T) {
	g := mustGraph(t, 3, []core.Edge{{From: 0, To: 1, Weight: 2}})
	res, err := dijkstra.ShortestPaths(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsInf(res.Dist[2], 1) || res.Sigma[2] != 0 || len(res.Pred[2]) != 0 {
		t.Errorf("node 2 = (%v, %d, %v); want unreachable", res.Dist[2], res.Sigma[2], res.Pred[2])
	}
}

func TestShortestPaths_SelfLoop(t *testing.T) {
	g := mustGraph(t, 2, []core.Edge{{From: 0, To: 0, Weight: 9}, {From: 0, To: 1, Weight: 1}})
	res, err := dijkstra.ShortestPaths(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Pred[0]) != 0 || res.Sigma[0] != 1 {
		t.Errorf("self-loop changed source state: Pred=%v Sigma=%d", res.Pred[0], res.Sigma[0])
	}
}

func TestShortestPaths_SingleNode(t *testing.T) {
	res, err := dijkstra.ShortestPaths(mustGraph(t, 1, nil), 0)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(res.Order, []int{0}) || res.Dist[0] != 0 {
		t.Errorf("single node result = %+v", res)
	}
}

// ------------------------------------------------------------------------
// 5. Cross-check: on unit-cost graphs Dijkstra and BFS build the same DAG.
// ------------------------------------------------------------------------

func TestShortestPaths_AgreesWithBFS(t *testing.T) {
	// Petersen graph: outer 5-cycle, inner pentagram, 5 spokes.
	var edges []core.Edge
	for i := 0; i < 5; i++ {
		edges = append(edges,
			core.Edge{From: i, To: (i + 1) % 5, Weight: 1},
			core.Edge{From: 5 + i, To: 5 + (i+2)%5, Weight: 1},
			core.Edge{From: i, To: 5 + i, Weight: 1},
		)
	}
	g := mustGraph(t, 10, edges, core.WithSymmetric())

	for s := 0; s < g.NodeCount(); s++ {
		want, err := bfs.ShortestPaths(g, s)
		if err != nil {
			t.Fatal(err)
		}
		got, err := dijkstra.ShortestPaths(g, s)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(got.Dist, want.Dist) {
			t.Errorf("source %d: Dist %v vs BFS %v", s, got.Dist, want.Dist)
		}
		if !reflect.DeepEqual(got.Sigma, want.Sigma) {
			t.Errorf("source %d: Sigma %v vs BFS %v", s, got.Sigma, want.Sigma)
		}
		for v := range got.Pred {
			if len(got.Pred[v]) != len(want.Pred[v]) {
				t.Errorf("source %d node %d: Pred %v vs BFS %v", s, v, got.Pred[v], want.Pred[v])
			}
		}
	}
}

package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/lvlcentrality/core"
	"github.com/katalvlaran/lvlcentrality/dijkstra"
)

// ExampleShortestPaths_cityRoute finds the cheapest routes across a small
// road map where weights are travel times (CostDirect). Two routes to "D"
// tie, so D has two predecessors and two shortest paths.
func ExampleShortestPaths_cityRoute() {
	// 0=A, 1=B, 2=C, 3=D, 4=E
	//   A─2─B─3─D─1─E
	//   └─4─C─1─┘
	g, err := core.NewGraph(5, []core.Edge{
		{From: 0, To: 1, Weight: 2},
		{From: 1, To: 3, Weight: 3},
		{From: 0, To: 2, Weight: 4},
		{From: 2, To: 3, Weight: 1},
		{From: 3, To: 4, Weight: 1},
	}, core.WithSymmetric(), core.WithCostMode(core.CostDirect))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := dijkstra.ShortestPaths(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("dist:", res.Dist)
	fmt.Println("paths to E:", res.Sigma[4])
	fmt.Println("preds of D:", res.Pred[3])
	// Output:
	// dist: [0 2 4 5 6]
	// paths to E: 2
	// preds of D: [1 2]
}

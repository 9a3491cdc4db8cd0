package degree_test

import (
	"fmt"

	"github.com/katalvlaran/lvlcentrality/builder"
	"github.com/katalvlaran/lvlcentrality/core"
	"github.com/katalvlaran/lvlcentrality/degree"
)

// ExampleCentrality_wheel: the hub touches every rim node; each rim node
// touches its two rim neighbors and the hub.
func ExampleCentrality_wheel() {
	g, _ := builder.BuildGraph([]core.GraphOption{core.WithSymmetric()}, nil, builder.Wheel(5))

	fmt.Println(degree.Centrality(g, false))
	// Output: [1 0.75 0.75 0.75 0.75]
}

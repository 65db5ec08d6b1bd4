package forcing_test

import (
	"fmt"

	"github.com/katalvlaran/knightsliars/builder"
	"github.com/katalvlaran/knightsliars/forcing"
	"github.com/katalvlaran/knightsliars/render"
)

// ExampleClosure propagates on a 4×5 grid. The degree-3 border vertices
// seed the first step and the corners follow; the interior never gains a
// strict majority of forced neighbours.
func ExampleClosure() {
	g, err := builder.BuildGraph(nil, builder.Grid(4, 5))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := forcing.Closure(g, forcing.WithOnStep(func(step int, added []string) {
		fmt.Printf("step %d: +%d\n", step, len(added))
	}))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("forced:", res.Forced.Len(), "of", g.VertexCount())
	fmt.Print(render.TextPlot(4, 5, res.Forced.Sorted()))
	// Output:
	// step 1: +10
	// step 2: +4
	// forced: 14 of 20
	// o o o o o
	// o . . . o
	// o . . . o
	// o o o o o
}

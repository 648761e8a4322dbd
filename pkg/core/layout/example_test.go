package layout_test

import (
	"fmt"

	"github.com/matzehuels/gridpad/pkg/core/grid"
	"github.com/matzehuels/gridpad/pkg/core/layout"
)

func ExampleCompute() {
	spec, _ := grid.NewBuilder(2, 3).
		SetRow(0, grid.MustFixed(40)).
		SetColumn(1, grid.MustWeight(2)).
		Build()

	reqs := []grid.Request{
		grid.Item("header").Span(1, 3),
		grid.Item("nav"),
		grid.Item("body"),
		grid.Item("aside"),
	}

	res, _ := layout.Compute(spec, grid.DefaultPolicy(), reqs, 400, 240)
	for _, it := range res.Items {
		fmt.Println(it.Payload, it.Frame)
	}
	// Output:
	// header (0,0 400x40)
	// nav (0,40 100x200)
	// body (100,40 200x200)
	// aside (300,40 100x200)
}

package simplex_test

import (
	"fmt"

	"github.com/katalvlaran/lvtopo/cloud"
	"github.com/katalvlaran/lvtopo/simplex"
)

// ExampleVietorisRips builds the unit square at radius 1: the four sides
// enter, the √2 diagonals do not, so no triangle closes.
func ExampleVietorisRips() {
	pc, err := cloud.New([][]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	c, ok := simplex.VietorisRips(pc, 1)
	fmt.Println("built:", ok)
	fmt.Println("edges:", c.OfDim(1))
	fmt.Println("triangles:", c.CountDim(2))
	// Output:
	// built: true
	// edges: [{0,1} {0,2} {1,3} {2,3}]
	// triangles: 0
}

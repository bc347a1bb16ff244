package diagram_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvtopo/diagram"
)

// ExampleSummarize filters short-lived noise, then summarises what is left.
func ExampleSummarize() {
	d := diagram.Diagram{
		{Birth: 0, Death: 0.005},
		{Birth: 0, Death: 0.2},
		{Birth: 0, Death: 0.6},
		{Birth: 0, Death: math.Inf(1)},
	}
	kept := diagram.Filter(d, diagram.DefaultThreshold)
	s := diagram.Summarize(kept)
	fmt.Println("kept:", len(kept))
	fmt.Printf("finite=%d essential=%d mean=%.1f max=%.1f\n", s.Count, s.Essential, s.Mean, s.Max)
	// Output:
	// kept: 3
	// finite=2 essential=1 mean=0.4 max=0.6
}

package bottleneck_test

import (
	"fmt"

	"github.com/katalvlaran/lvtopo/bottleneck"
	"github.com/katalvlaran/lvtopo/diagram"
)

// ExampleDistance compares two diagrams under both padding policies.
// The pair (0,1) has no partner in b: strict padding forces it onto the
// diagonal at cost 1, zero fill lets it take a free padding slot.
func ExampleDistance() {
	a := diagram.Diagram{{Birth: 0, Death: 1}, {Birth: 0, Death: 3}}
	b := diagram.Diagram{{Birth: 0, Death: 3}}
	wa, wb := diagram.UniformWeights(len(a)), diagram.UniformWeights(len(b))

	for _, p := range []bottleneck.Padding{bottleneck.PaddingZeroFill, bottleneck.PaddingStrict} {
		d, err := bottleneck.Distance(a, b, wa, wb, bottleneck.WithPadding(p))
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("%s: %.1f\n", p, d)
	}
	// Output:
	// zero: 0.0
	// strict: 1.0
}

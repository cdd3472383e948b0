package transform_test

import (
	"fmt"

	"github.com/matzehuels/modgraph/pkg/depgraph"
	"github.com/matzehuels/modgraph/pkg/depgraph/transform"
)

func ExamplePrune() {
	raw := depgraph.RawGraph{Imports: map[string]map[string]string{
		"app":        {"app.models": "", "app.views": ""},
		"app.views":  {"app.models": ""},
		"app.models": {"app.views": ""},
	}}
	g, _ := depgraph.Build(raw, depgraph.BuildOptions{})

	res := transform.Prune(g, transform.PruneOptions{NoiseLevel: 1})
	fmt.Println("excluded:", res.Excluded())
	fmt.Println("cycles:", transform.FindCycles(g))
	fmt.Println(g.Cycles[0])
	// Output:
	// excluded: 1
	// cycles: 1
	// [app.models app.views]
}

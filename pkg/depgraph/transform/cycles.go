package transform

import (
	"github.com/matzehuels/modgraph/pkg/depgraph"
	"github.com/matzehuels/modgraph/pkg/scc"
)

// FindCycles records the import cycles of g in g.Cycles, g.CycleNodes and
// g.CycleRelations, replacing any previous result, and returns the number
// of cycles found.
//
// A cycle is a strongly connected component with at least two modules. A
// module importing itself forms a component of one and is not reported.
func FindCycles(g *depgraph.DepGraph) int {
	g.ResetCycles()

	names := g.Names()
	index := make(map[string]int, len(names))
	for i, name := range names {
		index[name] = i
	}

	sg := scc.New(len(names))
	for i, name := range names {
		for by := range g.Node(name).ImportedBy {
			if j, ok := index[by]; ok {
				sg.AddEdge(i, j)
			}
		}
	}

	for _, comp := range scc.Kosaraju(sg) {
		if len(comp) < 2 {
			continue
		}
		members := make([]string, len(comp))
		for k, i := range comp {
			members[k] = names[i]
			g.CycleNodes.Add(names[i])
		}
		g.Cycles = append(g.Cycles, members)

		in := depgraph.NewNameSet(members...)
		for _, name := range members {
			for imp := range g.Node(name).Imports {
				if in.Has(imp) && imp != name {
					g.CycleRelations[depgraph.Relation{From: name, To: imp}] = true
				}
			}
		}
	}
	return len(g.Cycles)
}

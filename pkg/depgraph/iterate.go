package depgraph

import "iter"

// DefaultSkipModules are module names that never act as importers during
// [DepGraph.Iterate]: interpreter internals and the entry point itself.
var DefaultSkipModules = []string{
	"os", "sys", "qt", "time", "__future__", "types", "re", "string",
	"bdb", "pdb", RootName, "south",
}

// Iterate returns the drawable import edges as (imported, importer) pairs.
//
// The walk is depth-first from every node in name order and visits each
// node once. Modules in [DefaultSkipModules], excluded nodes and names
// matched by the skip list are never visited. An edge from a submodule to
// its own parent package (importer "pkg.sub", imported "pkg") is not
// yielded, although the walk still continues through it.
//
// The returned sequence can be ranged over any number of times.
func (g *DepGraph) Iterate() iter.Seq2[*Node, *Node] {
	return func(yield func(*Node, *Node) bool) {
		visited := NewNameSet(DefaultSkipModules...)
		hidden := func(n *Node) bool {
			return n.Excluded || g.skip.Match(n.Name)
		}

		for _, name := range g.Names() {
			stack := []string{name}
			for len(stack) > 0 {
				cur := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if visited.Has(cur) {
					continue
				}
				visited.Add(cur)

				src := g.nodes[cur]
				if hidden(src) {
					continue
				}
				imports := src.Imports.Sorted()
				for _, imp := range imports {
					impmod, ok := g.nodes[imp]
					if !ok || hidden(impmod) {
						continue
					}
					if !hasParent(src.Name, impmod.Name) {
						if !yield(impmod, src) {
							return
						}
					}
				}
				for i := len(imports) - 1; i >= 0; i-- {
					if !visited.Has(imports[i]) && g.Has(imports[i]) {
						stack = append(stack, imports[i])
					}
				}
			}
		}
	}
}

// hasParent reports whether child is a dotted descendant of parent.
func hasParent(child, parent string) bool {
	return len(child) > len(parent)+1 && child[len(parent)] == '.' && child[:len(parent)] == parent
}

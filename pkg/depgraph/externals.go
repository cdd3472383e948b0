package depgraph

import "strings"

// Externals returns the sorted top-level names of modules that modules of
// pkg import directly but that live outside pkg. Private modules (leading
// underscore) are ignored on the importing side.
func Externals(g *DepGraph, pkg string) []string {
	ext := NewNameSet()
	for _, n := range g.Nodes() {
		if strings.HasPrefix(n.Name, "_") || !inPackage(n.Name, pkg) {
			continue
		}
		for imp := range n.Imports {
			if !inPackage(imp, pkg) {
				ext.Add(TopLevel(imp))
			}
		}
	}
	return ext.Sorted()
}

// inPackage reports whether name is pkg or one of its submodules.
func inPackage(name, pkg string) bool {
	return name == pkg || hasParent(name, pkg)
}

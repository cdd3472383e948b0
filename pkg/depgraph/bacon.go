package depgraph

// ComputeBacon assigns every node reachable from root its minimum number of
// import hops from root. When root is not a node, placeholder is used as
// the starting point instead. Unreached nodes keep [NoBacon].
//
// It returns the name the walk started from, or "" when neither name
// exists.
func (g *DepGraph) ComputeBacon(root, placeholder string) string {
	start := root
	if !g.Has(start) {
		start = placeholder
	}
	if !g.Has(start) {
		return ""
	}

	type visit struct {
		name string
		dist int
	}
	queue := []visit{{start, 0}}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]

		n := g.nodes[v.name]
		if n.Bacon <= v.dist {
			continue
		}
		n.Bacon = v.dist
		for _, name := range n.Imports.Sorted() {
			if child, ok := g.nodes[name]; ok && child.Bacon > v.dist+1 {
				queue = append(queue, visit{name, v.dist + 1})
			}
		}
	}
	return start
}

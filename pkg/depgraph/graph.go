package depgraph

import (
	"errors"
	"maps"
	"slices"
)

var (
	// ErrEmptyName is returned by [DepGraph.AddOrMergeNode] when the node
	// has no name. Every node must be addressable by name.
	ErrEmptyName = errors.New("module name must not be empty")
)

// Relation is one import edge: From imports To.
type Relation struct {
	From string
	To   string
}

// DepGraph owns the module nodes of one analysis run together with the
// state derived from them: detected cycles and the skip list threaded
// through pruning.
//
// The zero value is not usable; create graphs with [New] or [Build].
// DepGraph is not safe for concurrent use.
type DepGraph struct {
	nodes map[string]*Node
	skip  *SkipList

	// Cycles lists the members of every import cycle, largest first.
	Cycles [][]string
	// CycleNodes holds every module that is part of a cycle.
	CycleNodes NameSet
	// CycleRelations holds every import edge between two members of the
	// same cycle.
	CycleRelations map[Relation]bool
}

// New returns an empty graph using skip as its skip list. A nil skip list
// is replaced by an empty one.
func New(skip *SkipList) *DepGraph {
	if skip == nil {
		skip = &SkipList{}
	}
	return &DepGraph{
		nodes:          make(map[string]*Node),
		skip:           skip,
		CycleNodes:     NewNameSet(),
		CycleRelations: make(map[Relation]bool),
	}
}

// Skip returns the graph's skip list. Pruning stages append to it.
func (g *DepGraph) Skip() *SkipList { return g.skip }

// AddOrMergeNode inserts a copy of n, or merges it into the existing node
// of the same name. The root name is rewritten from the path by [NewNode]
// rules when a path is known.
func (g *DepGraph) AddOrMergeNode(n Node) (*Node, error) {
	if n.Name == RootName && n.Path != "" {
		n.Name = nameFromPath(n.Path)
	}
	if n.Name == "" {
		return nil, ErrEmptyName
	}
	if existing, ok := g.nodes[n.Name]; ok {
		existing.Merge(n)
		return existing, nil
	}
	c := n.clone()
	g.nodes[c.Name] = &c
	return &c, nil
}

// Node returns the node with the given name, or nil.
func (g *DepGraph) Node(name string) *Node { return g.nodes[name] }

// Has reports whether a node with the given name exists.
func (g *DepGraph) Has(name string) bool {
	_, ok := g.nodes[name]
	return ok
}

// Len returns the number of nodes.
func (g *DepGraph) Len() int { return len(g.nodes) }

// Names returns all node names in ascending order.
func (g *DepGraph) Names() []string {
	return slices.Sorted(maps.Keys(g.nodes))
}

// Nodes returns all nodes ordered by name.
func (g *DepGraph) Nodes() []*Node {
	names := g.Names()
	out := make([]*Node, len(names))
	for i, name := range names {
		out[i] = g.nodes[name]
	}
	return out
}

// Delete removes the node with the given name. Adjacency sets of other
// nodes are left untouched.
func (g *DepGraph) Delete(name string) { delete(g.nodes, name) }

// ConnectGenerations fills ImportedBy from Imports. Imported names that
// are not nodes of the graph are ignored.
func (g *DepGraph) ConnectGenerations() {
	for _, n := range g.nodes {
		for name := range n.Imports {
			if child, ok := g.nodes[name]; ok {
				child.ImportedBy.Add(n.Name)
			}
		}
	}
}

// EdgeCount returns the number of import relations between nodes of the
// graph.
func (g *DepGraph) EdgeCount() int {
	count := 0
	for _, n := range g.nodes {
		for name := range n.Imports {
			if g.Has(name) {
				count++
			}
		}
	}
	return count
}

// ResetCycles clears all cycle state.
func (g *DepGraph) ResetCycles() {
	g.Cycles = nil
	g.CycleNodes = NewNameSet()
	g.CycleRelations = make(map[Relation]bool)
}

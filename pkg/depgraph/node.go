package depgraph

import (
	"maps"
	"math"
	"slices"
	"strings"
)

// NoBacon is the bacon distance of a node that the root cannot reach.
const NoBacon = math.MaxInt

// RootName is the name under which the analysis entry point is reported.
const RootName = "__main__"

// NameSet is a set of module names.
type NameSet map[string]struct{}

// NewNameSet returns a set holding names.
func NewNameSet(names ...string) NameSet {
	s := make(NameSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Add inserts name.
func (s NameSet) Add(name string) { s[name] = struct{}{} }

// Has reports whether name is in the set.
func (s NameSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Sorted returns the names in ascending order.
func (s NameSet) Sorted() []string {
	return slices.Sorted(maps.Keys(s))
}

// Node is one module in the dependency graph.
//
// Imports and ImportedBy are never nil for nodes owned by a [DepGraph].
// Excluded only ever goes from false to true.
type Node struct {
	Name       string  // Dotted module name, unique within a graph
	Path       string  // Source location, empty when known by name only
	Kind       Kind    // How the module was found
	Imports    NameSet // Modules this node imports
	ImportedBy NameSet // Modules importing this node (derived)
	Bacon      int     // Import hops from the root, NoBacon if unreached
	Excluded   bool    // Marked for removal by pruning
}

// NewNode returns a node with empty sets and no bacon distance.
// When name is [RootName] and path is known, the name is derived from the
// path instead.
func NewNode(name, path string, imports ...string) Node {
	if name == RootName && path != "" {
		name = nameFromPath(path)
	}
	return Node{
		Name:       name,
		Path:       path,
		Imports:    NewNameSet(imports...),
		ImportedBy: NewNameSet(),
		Bacon:      NoBacon,
	}
}

// nameFromPath turns a source path such as "src/tool/run.py" into the
// dotted name "src.tool.run".
func nameFromPath(path string) string {
	p := strings.ReplaceAll(path, `\`, "/")
	if i := strings.LastIndexByte(p, '.'); i > strings.LastIndexByte(p, '/') {
		p = p[:i]
	}
	p = strings.Trim(p, "/.")
	if i := strings.IndexByte(p, ':'); i >= 0 {
		p = strings.TrimLeft(p[i+1:], "/")
	}
	return strings.ReplaceAll(p, "/", ".")
}

// Merge folds other into n. The first non-empty path and the first known
// kind win, import sets are unioned, bacon takes the minimum and excluded
// is OR'd. Merging is idempotent and order-independent.
func (n *Node) Merge(other Node) {
	if n.Path == "" {
		n.Path = other.Path
	}
	if n.Kind == KindUnknown {
		n.Kind = other.Kind
	}
	if n.Imports == nil {
		n.Imports = NewNameSet()
	}
	if n.ImportedBy == nil {
		n.ImportedBy = NewNameSet()
	}
	maps.Copy(n.Imports, other.Imports)
	maps.Copy(n.ImportedBy, other.ImportedBy)
	n.Bacon = min(n.Bacon, other.Bacon)
	n.Excluded = n.Excluded || other.Excluded
}

// clone returns a copy of n that shares no sets with it.
func (n Node) clone() Node {
	c := n
	c.Imports = maps.Clone(n.Imports)
	c.ImportedBy = maps.Clone(n.ImportedBy)
	if c.Imports == nil {
		c.Imports = NewNameSet()
	}
	if c.ImportedBy == nil {
		c.ImportedBy = NewNameSet()
	}
	return c
}

// InDegree is the number of arrows drawn into the node, one per import.
func (n *Node) InDegree() int { return len(n.Imports) }

// OutDegree is the number of arrows drawn out of the node, one per importer.
func (n *Node) OutDegree() int { return len(n.ImportedBy) }

// Degree is the total number of import relations the node takes part in.
func (n *Node) Degree() int { return n.InDegree() + n.OutDegree() }

// IsNoise reports whether the node is a pure source or pure sink with more
// than level relations.
func (n *Node) IsNoise(level int) bool {
	in, out := n.InDegree(), n.OutDegree()
	return !(in > 0 && out > 0) && in+out > level
}

// NameParts splits the dotted name into its segments.
func (n *Node) NameParts() []string { return strings.Split(n.Name, ".") }

// TopLevel returns the first segment of the dotted name.
func (n *Node) TopLevel() string { return TopLevel(n.Name) }

// TopLevel returns the first segment of a dotted name.
func TopLevel(name string) string {
	top, _, _ := strings.Cut(name, ".")
	return top
}

// Label returns the display label. The first prefix in rmprefix that
// matches is removed. Labels longer than split that contain dots are broken
// onto one line per segment; split of zero disables breaking.
func (n *Node) Label(split int, rmprefix []string) string {
	name := n.Name
	for _, p := range rmprefix {
		if p != "" && strings.HasPrefix(name, p) {
			name = name[len(p):]
			break
		}
	}
	if split > 0 && len(name) > split && strings.Contains(name, ".") {
		return strings.Join(strings.Split(name, "."), `\.\n`)
	}
	return name
}

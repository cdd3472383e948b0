package dot

import (
	"slices"
	"strconv"
	"strings"

	"github.com/matzehuels/modgraph/pkg/depgraph"
	"github.com/matzehuels/modgraph/pkg/metrics"
)

// LabelSplit is the label length above which dotted labels are broken
// onto one line per segment.
const LabelSplit = 14

// Options configures [FromGraph] and [CyclesToDOT].
type Options struct {
	BufferOptions

	// RMPrefix lists prefixes stripped from node labels.
	RMPrefix []string
	// StartColor is the hue, in degrees, of the first package.
	StartColor float64
}

// FromGraph draws the visible import edges of g, each from the imported
// module to its importer, together with the modules they connect. Edge
// weight pulls related modules together and minlen pushes unrelated ones
// apart. Modules in a cycle are drawn as octagons and package directories
// with a double border.
func FromGraph(g *depgraph.DepGraph, opts Options) string {
	buf := NewBuffer(opts.BufferOptions)

	drawn := depgraph.NewNameSet()
	var visited []*depgraph.Node
	visit := func(n *depgraph.Node) {
		if !drawn.Has(n.Name) {
			drawn.Add(n.Name)
			visited = append(visited, n)
		}
	}

	for imported, importer := range g.Iterate() {
		buf.AddRule(imported.Name, importer.Name, Attrs{
			"weight": strconv.Itoa(edgeWeight(importer.Name, imported.Name)),
			"minlen": strconv.Itoa(metrics.Dissimilarity(imported.Name, importer.Name)),
		})
		visit(imported)
		visit(importer)
	}

	addNodes(buf, g, visited, opts)
	return buf.String()
}

// CyclesToDOT draws only the modules that take part in an import cycle and
// the imports between members of the same cycle.
func CyclesToDOT(g *depgraph.DepGraph, opts Options) string {
	buf := NewBuffer(opts.BufferOptions)

	var nodes []*depgraph.Node
	for _, name := range g.CycleNodes.Sorted() {
		if n := g.Node(name); n != nil {
			nodes = append(nodes, n)
		}
	}
	for rel := range g.CycleRelations {
		buf.AddRule(rel.To, rel.From, nil)
	}

	addNodes(buf, g, nodes, opts)
	return buf.String()
}

func addNodes(buf *Buffer, g *depgraph.DepGraph, nodes []*depgraph.Node, opts Options) {
	cs := metrics.NewColorSpace(nodes, opts.StartColor)
	for _, n := range sortByName(nodes) {
		bg, fg := cs.Color(n)
		attrs := Attrs{
			"label":     n.Label(LabelSplit, opts.RMPrefix),
			"fillcolor": bg.CSS(),
			"fontcolor": fg.CSS(),
		}
		if g.CycleNodes.Has(n.Name) {
			attrs["shape"] = "octagon"
		}
		if n.Kind == depgraph.KindPackageDir {
			attrs["peripheries"] = "2"
		}
		buf.AddNode(n.Name, attrs)
	}
}

// edgeWeight is the proximity of the two names, raised when importer a
// uses a private counterpart b.
func edgeWeight(a, b string) int {
	return max(metrics.Proximity(a, b), metrics.EdgeWeight(a, b))
}

func sortByName(nodes []*depgraph.Node) []*depgraph.Node {
	out := make([]*depgraph.Node, len(nodes))
	copy(out, nodes)
	slices.SortFunc(out, func(x, y *depgraph.Node) int {
		return strings.Compare(x.Name, y.Name)
	})
	return out
}

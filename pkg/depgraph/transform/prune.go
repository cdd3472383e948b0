package transform

import (
	"maps"
	"math"
	"strings"

	"github.com/matzehuels/modgraph/pkg/depgraph"
)

// PruneOptions configures [Prune].
type PruneOptions struct {
	// NoiseLevel is the degree above which a pure source or sink is noise.
	NoiseLevel int
	// MaxBacon is the hop limit from the root. Zero means unlimited.
	MaxBacon int
	// Only restricts the graph to names starting with one of these
	// prefixes. Empty keeps every name.
	Only []string
}

// Prune runs the exclusion stages in their fixed order (noise, bacon,
// only) and then removes everything excluded.
func Prune(g *depgraph.DepGraph, opts PruneOptions) TransformResult {
	var res TransformResult
	res.NoiseExcluded = ExcludeNoise(g, opts.NoiseLevel)
	res.BaconExcluded = ExcludeBacon(g, opts.MaxBacon)
	res.OnlyExcluded = OnlyFilter(g, opts.Only)
	res.NodesRemoved = RemoveExcluded(g)
	return res
}

// ExcludeNoise marks every pure source or sink whose degree exceeds level
// as excluded and adds it to the skip list. Degrees are measured on the
// graph as it stands, excluded neighbours included.
func ExcludeNoise(g *depgraph.DepGraph, level int) int {
	count := 0
	for _, n := range g.Nodes() {
		if n.Excluded || !n.IsNoise(level) {
			continue
		}
		exclude(g, n)
		count++
	}
	return count
}

// ExcludeBacon marks every node farther than maxBacon hops from the root
// as excluded. A maxBacon of zero disables the limit.
func ExcludeBacon(g *depgraph.DepGraph, maxBacon int) int {
	if maxBacon <= 0 {
		maxBacon = math.MaxInt
	}
	count := 0
	for _, n := range g.Nodes() {
		if n.Excluded || n.Bacon <= maxBacon {
			continue
		}
		exclude(g, n)
		count++
	}
	return count
}

// OnlyFilter marks every node whose name does not start with one of
// prefixes as excluded. It does nothing when prefixes is empty.
func OnlyFilter(g *depgraph.DepGraph, prefixes []string) int {
	if len(prefixes) == 0 {
		return 0
	}
	count := 0
	for _, n := range g.Nodes() {
		if n.Excluded || hasAnyPrefix(n.Name, prefixes) {
			continue
		}
		exclude(g, n)
		count++
	}
	return count
}

// RemoveExcluded deletes every excluded node and scrubs excluded or
// skip-listed names from the adjacency sets of the survivors. It must run
// after all exclusion stages.
func RemoveExcluded(g *depgraph.DepGraph) int {
	gone := depgraph.NewNameSet()
	for _, n := range g.Nodes() {
		if n.Excluded {
			gone.Add(n.Name)
			g.Delete(n.Name)
		}
	}

	skip := g.Skip()
	drop := func(name string, _ struct{}) bool {
		return gone.Has(name) || skip.Match(name)
	}
	for _, n := range g.Nodes() {
		maps.DeleteFunc(n.Imports, drop)
		maps.DeleteFunc(n.ImportedBy, drop)
	}
	return len(gone)
}

func exclude(g *depgraph.DepGraph, n *depgraph.Node) {
	n.Excluded = true
	g.Skip().AddExact(n.Name)
}

func hasAnyPrefix(name string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}

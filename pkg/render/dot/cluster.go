package dot

import (
	"maps"
	"regexp"
	"slices"
	"strings"

	"github.com/matzehuels/modgraph/pkg/depgraph"
)

// BufferOptions controls layout direction and clustering.
type BufferOptions struct {
	Reverse bool
	Rankdir Rankdir

	// Cluster groups nodes by top-level package.
	Cluster bool
	// MinClusterSize flattens clusters with fewer members.
	MinClusterSize int
	// MaxClusterSize collapses clusters with more members into one node.
	MaxClusterSize int
	// KeepTargetCluster draws the target's own package as a cluster
	// instead of flattening it.
	KeepTargetCluster bool
	// CollapseTargetCluster collapses the target's package into one node.
	// It takes precedence over KeepTargetCluster.
	CollapseTargetCluster bool
	// Target is the analyzed package name.
	Target string
}

type entry struct {
	name  string
	attrs Attrs
}

type edge struct {
	a, b string
}

// Buffer collects nodes and rules, decides which packages become
// clusters, and writes the result through a [Context].
type Buffer struct {
	opts     BufferOptions
	nodes    []entry
	clusters map[string][]entry
	rules    map[edge]Attrs
}

// NewBuffer returns an empty Buffer.
func NewBuffer(opts BufferOptions) *Buffer {
	return &Buffer{
		opts:     opts,
		clusters: make(map[string][]entry),
		rules:    make(map[edge]Attrs),
	}
}

// AddNode adds a node. In cluster mode it is placed in the cluster of its
// top-level package.
func (b *Buffer) AddNode(name string, attrs Attrs) {
	e := entry{name, attrs.clone()}
	if b.opts.Cluster {
		cid := ClusterID(name)
		b.clusters[cid] = append(b.clusters[cid], e)
		return
	}
	b.nodes = append(b.nodes, e)
}

// AddRule adds the edge a -> b. A later rule for the same pair replaces
// the earlier one.
func (b *Buffer) AddRule(from, to string, attrs Attrs) {
	b.rules[edge{from, to}] = attrs.clone()
}

var nonIdent = regexp.MustCompile(`[^A-Za-z0-9_]`)

// ClusterID returns the cluster a module belongs to: its top-level name
// with characters DOT does not allow in identifiers replaced by "_".
func ClusterID(name string) string {
	return nonIdent.ReplaceAllString(depgraph.TopLevel(name), "_")
}

func (b *Buffer) targetCluster() string {
	return ClusterID(b.opts.Target)
}

// triage applies the cluster policies in order: target policy, minimum
// size, target collapse, maximum size.
func (b *Buffer) triage() {
	target := b.targetCluster()

	if !b.opts.CollapseTargetCluster && !b.opts.KeepTargetCluster {
		b.nodes = append(b.nodes, b.clusters[target]...)
		delete(b.clusters, target)
	}

	for _, cid := range slices.Sorted(maps.Keys(b.clusters)) {
		if cid == target {
			continue
		}
		if members := b.clusters[cid]; len(members) < b.opts.MinClusterSize {
			b.nodes = append(b.nodes, members...)
			delete(b.clusters, cid)
		}
	}

	if b.opts.CollapseTargetCluster {
		if _, ok := b.clusters[target]; ok {
			b.collapse(target)
		}
	}

	for _, cid := range slices.Sorted(maps.Keys(b.clusters)) {
		if cid != target && len(b.clusters[cid]) > b.opts.MaxClusterSize {
			b.collapse(cid)
		}
	}
}

// collapse replaces the members of cluster cid by one folder-shaped node
// named cid and points every rule touching a member at it.
func (b *Buffer) collapse(cid string) {
	members := b.clusters[cid]
	delete(b.clusters, cid)

	attrs := members[0].attrs.clone()
	attrs["shape"] = "folder"
	attrs["label"] = cid
	b.nodes = append(b.nodes, entry{cid, attrs})

	in := make(map[string]bool, len(members))
	for _, m := range members {
		in[m.name] = true
	}
	rewritten := make(map[edge]Attrs, len(b.rules))
	for _, e := range b.sortedRules() {
		attrs := b.rules[e]
		if in[e.a] {
			e.a = cid
		}
		if in[e.b] {
			e.b = cid
		}
		rewritten[e] = attrs
	}
	b.rules = rewritten
}

func (b *Buffer) sortedRules() []edge {
	return slices.SortedFunc(maps.Keys(b.rules), func(x, y edge) int {
		if c := strings.Compare(x.a, y.a); c != 0 {
			return c
		}
		return strings.Compare(x.b, y.b)
	})
}

// fillcolor returns the fill color of the named node, or black when it is
// not in the buffer.
func (b *Buffer) fillcolor(name string) string {
	for _, e := range b.nodes {
		if e.name == name {
			return fillOf(e)
		}
	}
	for _, members := range b.clusters {
		for _, e := range members {
			if e.name == name {
				return fillOf(e)
			}
		}
	}
	return "#000000"
}

func fillOf(e entry) string {
	if c, ok := e.attrs["fillcolor"]; ok {
		return c
	}
	return DefaultFillColor
}

// String triages the clusters (in cluster mode) and returns the DOT text.
// A Buffer should be rendered once.
func (b *Buffer) String() string {
	if b.opts.Cluster {
		b.triage()
	}
	compound := len(b.clusters) > 0

	ctx := NewContext(b.opts.Reverse, b.opts.Rankdir)
	ctx.Begin(!compound, compound)

	for _, cid := range slices.Sorted(maps.Keys(b.clusters)) {
		ctx.Writeln("    subgraph cluster_" + cid + " {")
		ctx.Writeln("        label = " + quoteID(cid) + ";")
		for _, e := range b.clusters[cid] {
			ctx.WriteNode(2, e.name, e.attrs)
		}
		ctx.Writeln("    }")
	}
	for _, e := range b.nodes {
		ctx.WriteNode(1, e.name, e.attrs)
	}

	reverse := b.opts.Reverse
	clusterOf := func(name string) (string, bool) {
		cid := ClusterID(name)
		_, ok := b.clusters[cid]
		return cid, ok
	}
	tailColor := func(e edge) string {
		if reverse {
			return b.fillcolor(e.b)
		}
		return b.fillcolor(e.a)
	}

	seen := make(map[edge]bool)
	for _, e := range b.sortedRules() {
		if e.a == e.b {
			continue
		}
		attrs := b.rules[e].clone()
		ca, aClustered := clusterOf(e.a)
		cb, bClustered := clusterOf(e.b)

		switch {
		case ca == cb:
		case aClustered && bClustered:
			pair := edge{ca, cb}
			if seen[pair] {
				continue
			}
			seen[pair] = true
			setHints(attrs, reverse, ca, cb)
		default:
			if aClustered {
				setHints(attrs, reverse, ca, "")
			}
			if bClustered {
				setHints(attrs, reverse, "", cb)
			}
		}
		attrs["fillcolor"] = tailColor(e)
		ctx.WriteRule(e.a, e.b, attrs)
	}

	ctx.End()
	return ctx.String()
}

// setHints points the edge from cluster from to cluster to. Empty names
// are skipped. When reversed the edge is drawn the other way, so the
// roles of ltail and lhead swap.
func setHints(attrs Attrs, reverse bool, from, to string) {
	tail, head := "ltail", "lhead"
	if reverse {
		tail, head = head, tail
	}
	if from != "" {
		attrs[tail] = "cluster_" + from
	}
	if to != "" {
		attrs[head] = "cluster_" + to
	}
}

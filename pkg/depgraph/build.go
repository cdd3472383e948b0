package depgraph

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// RawGraph is the import listing produced by module discovery.
type RawGraph struct {
	// Target is the top-level name of the analyzed package, if known.
	Target string `json:"target,omitempty"`
	// Imports maps each module to the modules it imports and the file each
	// imported module was resolved to ("" when unresolved).
	Imports map[string]map[string]string `json:"depgraph"`
	// Kinds maps module names to how they were found.
	Kinds map[string]Kind `json:"types,omitempty"`
}

// BuildOptions configures [Build].
type BuildOptions struct {
	// Skip is the initial skip list built from exclude patterns. Modules
	// it matches are created already excluded.
	Skip *SkipList
	// MaxModuleDepth truncates names to this many dotted segments before
	// merging. Zero keeps full names.
	MaxModuleDepth int
}

// Build ingests a raw import listing: every listed module and every module
// it imports becomes a node, kind tags are applied, and reverse edges are
// connected.
//
// Build fails only when the listing contains an empty module name.
func Build(raw RawGraph, opts BuildOptions) (*DepGraph, error) {
	g := New(opts.Skip)
	coalesce := func(name string) string {
		return truncateName(name, opts.MaxModuleDepth)
	}

	for _, name := range slices.Sorted(maps.Keys(raw.Imports)) {
		imports := raw.Imports[name]
		src := coalesce(name)

		var names []string
		for imp := range imports {
			if target := coalesce(imp); target != src || imp == name {
				names = append(names, target)
			}
		}
		n := NewNode(src, "", names...)
		n.Excluded = g.skip.Match(n.Name)
		if _, err := g.AddOrMergeNode(n); err != nil {
			return nil, fmt.Errorf("module %q: %w", name, err)
		}

		for _, imp := range slices.Sorted(maps.Keys(imports)) {
			path := imports[imp]
			if opts.MaxModuleDepth > 0 && coalesce(imp) != imp {
				path = ""
			}
			in := NewNode(coalesce(imp), path)
			in.Excluded = g.skip.Match(in.Name)
			if _, err := g.AddOrMergeNode(in); err != nil {
				return nil, fmt.Errorf("import %q of %q: %w", imp, name, err)
			}
		}
	}

	for _, name := range slices.Sorted(maps.Keys(raw.Kinds)) {
		if n := g.Node(coalesce(name)); n != nil && n.Kind == KindUnknown {
			n.Kind = raw.Kinds[name]
		}
	}

	g.ConnectGenerations()
	return g, nil
}

// truncateName keeps the first depth segments of a dotted name.
func truncateName(name string, depth int) string {
	if depth <= 0 {
		return name
	}
	parts := strings.Split(name, ".")
	if len(parts) <= depth {
		return name
	}
	return strings.Join(parts[:depth], ".")
}

// GuessTarget returns the analysis target name: the top-level name of the
// first module imported by the root, or "" when there is no root.
func GuessTarget(g *DepGraph) string {
	root := g.Node(RootName)
	if root == nil {
		return ""
	}
	for _, name := range root.Imports.Sorted() {
		if name != RootName {
			return TopLevel(name)
		}
	}
	return ""
}

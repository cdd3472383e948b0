// Package depgraph provides the in-memory module import graph.
//
// # Overview
//
// A [DepGraph] maps dotted module names to [Node] values. Each node knows
// the modules it imports and, after [DepGraph.ConnectGenerations], the
// modules importing it. Nodes are identified by name only: adding a second
// description of a name merges into the existing node (see [Node.Merge])
// instead of replacing it.
//
// # Building
//
// [Build] turns the raw listing emitted by module discovery into a graph:
//
//	skip, err := depgraph.NewSkipList([]string{"tests.*"}, nil)
//	if err != nil {
//	    return err
//	}
//	g, err := depgraph.Build(raw, depgraph.BuildOptions{Skip: skip})
//	if err != nil {
//	    return err
//	}
//	g.ComputeBacon(depgraph.RootName, "__dummy__")
//
// Imported names that were never listed as modules still become nodes (with
// an empty path, when discovery could not resolve them). Reverse edges are
// only connected between existing nodes.
//
// # Bacon Distance
//
// [DepGraph.ComputeBacon] records, per node, the smallest number of import
// hops from the root module. The walk uses an explicit queue, so deep or
// cyclic import chains do not grow the call stack.
//
// # Traversal
//
// [DepGraph.Iterate] yields the edges worth drawing as (imported, importer)
// pairs, skipping interpreter noise such as "os" and "sys", excluded nodes
// and edges from a submodule to its own parent package.
//
// # Related Packages
//
// The [transform] subpackage prunes the graph and detects import cycles.
//
// [transform]: github.com/matzehuels/modgraph/pkg/depgraph/transform
package depgraph

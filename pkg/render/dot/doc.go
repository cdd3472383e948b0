// Package dot turns a pruned module graph into Graphviz DOT text and
// renders it to images.
//
// # Overview
//
// [FromGraph] draws every visible import edge of a [depgraph.DepGraph]
// from the imported module to its importer, so imported code ends up above
// the code using it in a top-down layout. [CyclesToDOT] draws only the
// import cycles.
//
// Output is deterministic: nodes, edges and attributes are written in
// sorted order, and attributes equal to the graph defaults are left out.
//
// # Clusters
//
// With [BufferOptions.Cluster] set, modules are grouped into one
// subgraph per top-level package. [Buffer] then triages the groups:
//
//   - The target's own package is flattened unless it is kept or
//     collapsed.
//   - Packages with fewer than MinClusterSize modules are flattened.
//   - Packages with more than MaxClusterSize modules are collapsed into a
//     single folder-shaped node; edges to and from their members are
//     redirected to it.
//
// Edges between two clusters are drawn once per pair of clusters and clip
// at the cluster borders (ltail/lhead).
//
// # Rendering
//
// [Render] runs the embedded Graphviz engine from
// [github.com/goccy/go-graphviz] and produces SVG, PNG or JPG without any
// external binaries.
package dot

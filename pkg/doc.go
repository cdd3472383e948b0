// Package pkg provides the libraries behind modgraph, a module dependency
// graph visualizer.
//
// # Overview
//
// modgraph reads an import listing (every module, what it imports, and where
// each import resolved), prunes it down to the interesting part, and draws it
// as a Graphviz graph where related modules share a color.
//
// # Architecture
//
// The data flow through modgraph:
//
//	import listing (JSON)
//	         ↓
//	    [io] package (read listing)
//	         ↓
//	    [depgraph] package (build graph, Bacon distances)
//	         ↓
//	    [depgraph/transform] package (prune, find cycles)
//	         ↓
//	    [render/dot] package (DOT text, clusters, colors)
//	         ↓
//	    SVG/PNG/JPG/DOT/JSON output
//
// [pipeline] runs these stages for the CLI and caches rendered images
// through [cache].
//
// # Main Packages
//
// [depgraph] - The module graph: nodes, import edges, skip lists, Bacon
// distance from the entry point, and ordered edge iteration.
//
// [depgraph/transform] - Pruning by noise level, Bacon limit, and prefix
// filters, plus cycle detection over the remaining graph.
//
// [scc] - Strongly connected components, used by cycle detection.
//
// [metrics] - Name proximity and color distance between modules.
//
// [render/dot] - DOT generation and Graphviz rendering.
//
// [config] - Options loaded from defaults, config files, environment, and
// flags.
//
// [errors] - Coded errors with user-facing messages.
//
// [observability] - Hooks for pipeline and cache events.
//
// # Quick Start
//
//	raw, _ := io.ImportRaw("deps.json")
//	opts := config.Defaults()
//	r := pipeline.NewRunner(nil, nil)
//	res, _ := r.Execute(ctx, raw, opts)
//	os.WriteFile("deps.svg", res.Artifacts["svg"], 0o644)
//
// [depgraph]: https://pkg.go.dev/github.com/matzehuels/modgraph/pkg/depgraph
// [depgraph/transform]: https://pkg.go.dev/github.com/matzehuels/modgraph/pkg/depgraph/transform
// [io]: https://pkg.go.dev/github.com/matzehuels/modgraph/pkg/io
// [scc]: https://pkg.go.dev/github.com/matzehuels/modgraph/pkg/scc
// [metrics]: https://pkg.go.dev/github.com/matzehuels/modgraph/pkg/metrics
// [render/dot]: https://pkg.go.dev/github.com/matzehuels/modgraph/pkg/render/dot
// [config]: https://pkg.go.dev/github.com/matzehuels/modgraph/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/modgraph/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/modgraph/pkg/observability
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/modgraph/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/modgraph/pkg/cache
package pkg

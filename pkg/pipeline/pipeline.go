// Package pipeline runs modgraph's analysis from import listing to images.
//
// The phases run in a fixed order, each completing before the next:
//
//  1. Build: ingest the listing into a [depgraph.DepGraph]
//  2. Prune: compute hop distances, then drop noise, far and filtered
//     modules, then flag import cycles
//  3. DOT: draw the curated graph (or only its cycles)
//  4. Render: produce every requested format
//
// Formats render concurrently. Images go through Graphviz and, when a
// cache is configured, are looked up by the hash of the DOT text first.
//
// # Usage
//
//	runner := pipeline.NewRunner(nil, logger)
//	result, err := runner.Execute(ctx, raw, opts)
//	if err != nil {
//	    return err
//	}
//	svg := result.Artifacts["svg"]
//
// [Runner.Analyze] stops after pruning, for commands that inspect the
// graph instead of drawing it.
package pipeline

import (
	"time"

	"github.com/matzehuels/modgraph/pkg/depgraph"
	"github.com/matzehuels/modgraph/pkg/depgraph/transform"
	"github.com/matzehuels/modgraph/pkg/render/dot"
)

// Output formats that are not images.
const (
	// FormatDOT is the DOT text itself.
	FormatDOT = "dot"
	// FormatJSON is the node dump of the pruned graph.
	FormatJSON = "json"
)

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID identifies the run in logs.
	RunID string

	// Graph is the pruned dependency graph.
	Graph *depgraph.DepGraph

	// Target is the analyzed package, given or guessed.
	Target string

	// Root is the node hop distances were measured from, or "" when the
	// listing had neither the root nor the placeholder.
	Root string

	// DOT is the drawn graph. Empty after [Runner.Analyze].
	DOT string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Transform counts what pruning did.
	Transform transform.TransformResult

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Modules    int // importing modules in the listing
	Nodes      int // nodes after pruning
	Edges      int // import edges after pruning
	BuildTime  time.Duration
	PruneTime  time.Duration
	RenderTime time.Duration
	CacheHits  int
}

// isImage reports whether format is rendered by Graphviz.
func isImage(format string) bool {
	switch format {
	case dot.FormatSVG, dot.FormatPNG, dot.FormatJPG:
		return true
	}
	return false
}

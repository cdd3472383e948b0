package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/modgraph/pkg/cache"
	"github.com/matzehuels/modgraph/pkg/config"
	"github.com/matzehuels/modgraph/pkg/depgraph"
	"github.com/matzehuels/modgraph/pkg/depgraph/transform"
	"github.com/matzehuels/modgraph/pkg/errors"
	graphio "github.com/matzehuels/modgraph/pkg/io"
	"github.com/matzehuels/modgraph/pkg/observability"
	"github.com/matzehuels/modgraph/pkg/render/dot"
)

// Runner executes the pipeline with an optional artifact cache.
//
// The Runner holds no per-run state. Multiple goroutines can use the same
// Runner with different listings and options.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner. A nil cache disables caching and a nil
// logger uses log.Default().
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Logger: logger}
}

// Execute runs every phase and renders each format in opts.Format.
func (r *Runner) Execute(ctx context.Context, raw depgraph.RawGraph, opts *config.Options) (*Result, error) {
	res, err := r.Analyze(ctx, raw, opts)
	if err != nil {
		return nil, err
	}
	logger := r.Logger.With("run", shortID(res.RunID))

	dotOpts := DOTOptions(opts, res.Target)
	if opts.ShowCycles {
		res.DOT = dot.CyclesToDOT(res.Graph, dotOpts)
	} else {
		res.DOT = dot.FromGraph(res.Graph, dotOpts)
	}

	start := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Format)
	err = r.render(ctx, res, opts.Format)
	res.Stats.RenderTime = time.Since(start)
	observability.Pipeline().OnRenderComplete(ctx, opts.Format, res.Stats.RenderTime, err)
	if err != nil {
		return nil, err
	}

	logger.Info("rendered outputs",
		"formats", opts.Format,
		"cache_hits", res.Stats.CacheHits,
		"duration", res.Stats.RenderTime.Round(time.Millisecond))
	return res, nil
}

// Analyze validates opts, builds the graph from raw, and prunes it. The
// returned result has no DOT text or artifacts.
func (r *Runner) Analyze(ctx context.Context, raw depgraph.RawGraph, opts *config.Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := &Result{
		RunID:     uuid.NewString(),
		Artifacts: make(map[string][]byte),
	}
	logger := r.Logger.With("run", shortID(res.RunID))
	res.Stats.Modules = len(raw.Imports)

	// Build
	start := time.Now()
	observability.Pipeline().OnBuildStart(ctx, res.Stats.Modules)
	g, err := r.build(raw, opts)
	res.Stats.BuildTime = time.Since(start)
	observability.Pipeline().OnBuildComplete(ctx, g.Len(), res.Stats.BuildTime, err)
	if err != nil {
		return nil, err
	}
	res.Graph = g
	logger.Info("built graph",
		"modules", res.Stats.Modules,
		"nodes", g.Len(),
		"duration", res.Stats.BuildTime.Round(time.Millisecond))

	res.Target = ResolveTarget(raw, opts, g)
	if res.Target != "" {
		logger.Debug("analysis target", "target", res.Target)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Prune
	start = time.Now()
	observability.Pipeline().OnPruneStart(ctx, g.Len())
	res.Root = g.ComputeBacon(depgraph.RootName, opts.DummyName)
	pruneOpts := transform.PruneOptions{
		NoiseLevel: opts.NoiseLevel,
		MaxBacon:   opts.MaxBacon,
		Only:       opts.Only,
	}
	if res.Root == "" && opts.MaxBacon > 0 {
		logger.Warn("no root module in listing, hop limit disabled",
			"root", depgraph.RootName, "placeholder", opts.DummyName)
		pruneOpts.MaxBacon = 0
	}
	res.Transform = transform.Prune(g, pruneOpts)
	res.Transform.Cycles = transform.FindCycles(g)
	res.Stats.PruneTime = time.Since(start)
	res.Stats.Nodes = g.Len()
	res.Stats.Edges = g.EdgeCount()
	observability.Pipeline().OnPruneComplete(ctx, res.Transform.Excluded(), res.Transform.Cycles, res.Stats.PruneTime, nil)

	logger.Info("pruned graph",
		"nodes", res.Stats.Nodes,
		"edges", res.Stats.Edges,
		"excluded", res.Transform.Excluded(),
		"removed", res.Transform.NodesRemoved,
		"cycles", res.Transform.Cycles,
		"duration", res.Stats.PruneTime.Round(time.Millisecond))
	logger.Debug("exclusions",
		"noise", res.Transform.NoiseExcluded,
		"bacon", res.Transform.BaconExcluded,
		"only", res.Transform.OnlyExcluded)

	return res, nil
}

// Build ingests raw with the skip list and module depth from opts,
// without pruning. It validates opts first.
func (r *Runner) Build(raw depgraph.RawGraph, opts *config.Options) (*depgraph.DepGraph, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return r.build(raw, opts)
}

func (r *Runner) build(raw depgraph.RawGraph, opts *config.Options) (*depgraph.DepGraph, error) {
	skip, err := opts.SkipList()
	if err != nil {
		return depgraph.New(nil), err
	}
	g, err := depgraph.Build(raw, depgraph.BuildOptions{
		Skip:           skip,
		MaxModuleDepth: opts.MaxModuleDepth,
	})
	if err != nil {
		return depgraph.New(nil), errors.Wrap(errors.ErrCodeInvalidInput, err, "build graph")
	}
	return g, nil
}

// render produces every format concurrently into res.Artifacts.
func (r *Runner) render(ctx context.Context, res *Result, formats []string) error {
	var (
		mu   sync.Mutex
		hits atomic.Int32
	)
	eg, ctx := errgroup.WithContext(ctx)
	for _, format := range formats {
		eg.Go(func() error {
			data, hit, err := r.renderFormat(ctx, res, format)
			if err != nil {
				return fmt.Errorf("render %s: %w", format, err)
			}
			if hit {
				hits.Add(1)
			}
			mu.Lock()
			res.Artifacts[format] = data
			mu.Unlock()
			return nil
		})
	}
	err := eg.Wait()
	res.Stats.CacheHits = int(hits.Load())
	return err
}

func (r *Runner) renderFormat(ctx context.Context, res *Result, format string) ([]byte, bool, error) {
	switch {
	case format == FormatDOT:
		return []byte(res.DOT), false, nil
	case format == FormatJSON:
		var buf bytes.Buffer
		if err := graphio.WriteNodes(res.Graph, &buf); err != nil {
			return nil, false, errors.Wrap(errors.ErrCodeInternal, err, "write node dump")
		}
		return buf.Bytes(), false, nil
	case !isImage(format):
		return nil, false, errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q", format)
	}

	key := cache.ArtifactKey(res.DOT, format)
	if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
		observability.Cache().OnCacheHit(ctx, format)
		return data, true, nil
	} else if err != nil {
		r.Logger.Debug("cache read failed", "format", format, "err", err)
	}
	observability.Cache().OnCacheMiss(ctx, format)

	data, err := dot.Render(ctx, res.DOT, format)
	if err != nil {
		return nil, false, err
	}
	if err := r.Cache.Set(ctx, key, data, cache.DefaultTTL); err != nil {
		r.Logger.Debug("cache write failed", "format", format, "err", err)
	} else {
		observability.Cache().OnCacheSet(ctx, format, len(data))
	}
	return data, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// DOTOptions maps configuration onto the DOT converter options.
func DOTOptions(opts *config.Options, target string) dot.Options {
	return dot.Options{
		BufferOptions: dot.BufferOptions{
			Reverse:               opts.Reverse,
			Rankdir:               dot.Rankdir(opts.Rankdir),
			Cluster:               opts.Cluster,
			MinClusterSize:        opts.MinClusterSize,
			MaxClusterSize:        opts.MaxClusterSize,
			KeepTargetCluster:     opts.KeepTargetCluster,
			CollapseTargetCluster: opts.CollapseTargetCluster,
			Target:                target,
		},
		RMPrefix:   opts.RMPrefix,
		StartColor: float64(opts.StartColor),
	}
}

// ResolveTarget picks the configured target, then the listing's, then a
// guess from what the root imports.
func ResolveTarget(raw depgraph.RawGraph, opts *config.Options, g *depgraph.DepGraph) string {
	switch {
	case opts.Target != "":
		return opts.Target
	case raw.Target != "":
		return raw.Target
	}
	return depgraph.GuessTarget(g)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

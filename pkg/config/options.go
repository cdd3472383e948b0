package config

import (
	"strings"

	"github.com/matzehuels/modgraph/pkg/depgraph"
	"github.com/matzehuels/modgraph/pkg/errors"
)

// Default values.
const (
	DefaultNoiseLevel = 200
	DefaultMaxBacon   = 2
	DefaultRankdir    = "TB"
	DefaultFormat     = "svg"
	DefaultDummyName  = "__dummy__"
)

// ValidFormats lists the output formats. "dot" is the DOT text and "json"
// the node dump; the rest are rendered images.
var ValidFormats = []string{"svg", "png", "jpg", "dot", "json"}

// Options is the full set of analysis and rendering settings.
type Options struct {
	// Exclude lists glob patterns of modules to leave out.
	Exclude []string `koanf:"exclude" toml:"exclude"`
	// ExcludeExact lists module names to leave out.
	ExcludeExact []string `koanf:"exclude_exact" toml:"exclude_exact"`
	// Only keeps modules starting with one of these prefixes.
	Only []string `koanf:"only" toml:"only"`

	NoiseLevel     int `koanf:"noise_level" toml:"noise_level"`
	MaxBacon       int `koanf:"max_bacon" toml:"max_bacon"`
	MaxModuleDepth int `koanf:"max_module_depth" toml:"max_module_depth"`

	ShowCycles bool `koanf:"show_cycles" toml:"show_cycles"`

	Cluster               bool `koanf:"cluster" toml:"cluster"`
	MinClusterSize        int  `koanf:"min_cluster_size" toml:"min_cluster_size"`
	MaxClusterSize        int  `koanf:"max_cluster_size" toml:"max_cluster_size"`
	KeepTargetCluster     bool `koanf:"keep_target_cluster" toml:"keep_target_cluster"`
	CollapseTargetCluster bool `koanf:"collapse_target_cluster" toml:"collapse_target_cluster"`

	Reverse    bool   `koanf:"reverse" toml:"reverse"`
	Rankdir    string `koanf:"rankdir" toml:"rankdir"`
	StartColor int    `koanf:"start_color" toml:"start_color"`
	// RMPrefix lists prefixes removed from node labels.
	RMPrefix []string `koanf:"rmprefix" toml:"rmprefix"`

	// Format lists the output formats to produce.
	Format []string `koanf:"format" toml:"format"`
	// Output is the output file. With several formats the extension is
	// replaced per format. Empty derives the name from the input.
	Output string `koanf:"output" toml:"output"`
	// Target is the analyzed package. Empty guesses it from the root.
	Target string `koanf:"target" toml:"target"`
	// DummyName is the root used when the listing has no entry point.
	DummyName string `koanf:"dummy_name" toml:"dummy_name"`
	// Cache enables the rendered image cache.
	Cache bool `koanf:"cache" toml:"cache"`
}

// Defaults returns the built-in options.
func Defaults() *Options {
	return &Options{
		NoiseLevel: DefaultNoiseLevel,
		MaxBacon:   DefaultMaxBacon,
		Rankdir:    DefaultRankdir,
		Format:     []string{DefaultFormat},
		DummyName:  DefaultDummyName,
	}
}

func defaultMap() map[string]any {
	return map[string]any{
		"noise_level":             DefaultNoiseLevel,
		"max_bacon":               DefaultMaxBacon,
		"max_module_depth":        0,
		"show_cycles":             false,
		"cluster":                 false,
		"min_cluster_size":        0,
		"max_cluster_size":        0,
		"keep_target_cluster":     false,
		"collapse_target_cluster": false,
		"reverse":                 false,
		"rankdir":                 DefaultRankdir,
		"start_color":             0,
		"format":                  []string{DefaultFormat},
		"output":                  "",
		"target":                  "",
		"dummy_name":              DefaultDummyName,
		"cache":                   false,
	}
}

// knownKeys holds every configuration key, for matching flags.
var knownKeys = map[string]bool{
	"exclude": true, "exclude_exact": true, "only": true,
	"noise_level": true, "max_bacon": true, "max_module_depth": true,
	"show_cycles": true, "cluster": true,
	"min_cluster_size": true, "max_cluster_size": true,
	"keep_target_cluster": true, "collapse_target_cluster": true,
	"reverse": true, "rankdir": true, "start_color": true, "rmprefix": true,
	"format": true, "output": true, "target": true, "dummy_name": true, "cache": true,
}

// normalize splits comma-separated list entries, upper-cases the rank
// direction, and turns on clustering when a cluster option needs it.
func (o *Options) normalize() {
	o.Exclude = splitList(o.Exclude)
	o.ExcludeExact = splitList(o.ExcludeExact)
	o.Only = splitList(o.Only)
	o.RMPrefix = splitList(o.RMPrefix)
	o.Format = splitList(o.Format)
	for i, f := range o.Format {
		o.Format[i] = strings.ToLower(f)
	}
	o.Rankdir = strings.ToUpper(strings.TrimSpace(o.Rankdir))

	if o.KeepTargetCluster || o.CollapseTargetCluster || o.MinClusterSize > 0 || o.MaxClusterSize > 0 {
		o.Cluster = true
	}
}

func splitList(in []string) []string {
	var out []string
	for _, s := range in {
		for _, part := range strings.Split(s, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// Validate checks every option and compiles the exclude patterns. It
// returns the first problem found as a coded error.
func (o *Options) Validate() error {
	if err := errors.ValidateRankdir(o.Rankdir); err != nil {
		return err
	}
	if err := errors.ValidateStartColor(o.StartColor); err != nil {
		return err
	}
	if err := errors.ValidateClusterPolicy(o.KeepTargetCluster, o.CollapseTargetCluster); err != nil {
		return err
	}
	if len(o.Format) == 0 {
		return errors.New(errors.ErrCodeInvalidFormat, "no output format given")
	}
	for _, f := range o.Format {
		if err := errors.ValidateFormat(f, ValidFormats); err != nil {
			return err
		}
	}
	for _, c := range []struct {
		key string
		val int
	}{
		{"noise_level", o.NoiseLevel},
		{"max_bacon", o.MaxBacon},
		{"max_module_depth", o.MaxModuleDepth},
		{"min_cluster_size", o.MinClusterSize},
		{"max_cluster_size", o.MaxClusterSize},
	} {
		if c.val < 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "%s must not be negative, got %d", c.key, c.val)
		}
	}
	if o.Target != "" {
		if err := errors.ValidateModuleName(o.Target); err != nil {
			return err
		}
	}
	if o.DummyName == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "dummy_name must not be empty")
	}
	if o.Output != "" {
		if err := errors.ValidatePath(o.Output); err != nil {
			return err
		}
	}
	_, err := o.SkipList()
	return err
}

// SkipList compiles Exclude and ExcludeExact.
func (o *Options) SkipList() (*depgraph.SkipList, error) {
	return depgraph.NewSkipList(o.Exclude, o.ExcludeExact)
}

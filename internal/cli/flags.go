package cli

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/matzehuels/modgraph/pkg/config"
	"github.com/matzehuels/modgraph/pkg/depgraph"
	"github.com/matzehuels/modgraph/pkg/errors"
	graphio "github.com/matzehuels/modgraph/pkg/io"
)

// addAnalysisFlags registers the settings shared by every command. Flag
// names are config keys with dashes, so config.Load can match them.
func addAnalysisFlags(fs *pflag.FlagSet) {
	fs.StringSliceP("exclude", "x", nil, "glob patterns of modules to leave out")
	fs.StringSlice("exclude-exact", nil, "module names to leave out")
	fs.StringSlice("only", nil, "keep only modules starting with these prefixes")
	fs.Int("noise-level", config.DefaultNoiseLevel, "exclude sources and sinks with more connections than this")
	fs.Int("max-bacon", config.DefaultMaxBacon, "exclude modules more than this many hops from the root (0 = unlimited)")
	fs.Int("max-module-depth", 0, "coalesce module names deeper than this many segments (0 = off)")
	fs.String("target", "", "analyzed package (default: guessed from the root's imports)")
	fs.String("dummy-name", config.DefaultDummyName, "root name used when the listing has no __main__")
}

// addDrawFlags registers the settings that only affect drawing.
func addDrawFlags(fs *pflag.FlagSet) {
	fs.Bool("show-cycles", false, "draw only import cycles")
	fs.Bool("cluster", false, "group modules by top-level package")
	fs.Int("min-cluster-size", 0, "flatten clusters with fewer members (implies --cluster)")
	fs.Int("max-cluster-size", 0, "collapse clusters with more members (implies --cluster)")
	fs.Bool("keep-target-cluster", false, "draw the target package as a cluster (implies --cluster)")
	fs.Bool("collapse-target-cluster", false, "collapse the target package into one node (implies --cluster)")
	fs.Bool("reverse", false, "reverse the rank direction")
	fs.String("rankdir", config.DefaultRankdir, "rank direction: TB, BT, LR or RL")
	fs.Int("start-color", 0, "hue of the first package, in degrees")
	fs.StringSlice("rmprefix", nil, "prefixes to strip from node labels")
	fs.StringSliceP("format", "f", []string{config.DefaultFormat}, "output formats: svg, png, jpg, dot, json (comma-separated)")
	fs.StringP("output", "o", "", "output file (default: derived from the input)")
	fs.Bool("cache", false, "reuse rendered images between runs")
}

// loadOptions layers the config file, environment and cmd's flags, and
// validates the result.
func (c *CLI) loadOptions(cmd *cobra.Command) (*config.Options, error) {
	path := c.configPath
	if path == "" && !c.noConfig {
		path = config.Discover(".")
	}
	if c.noConfig {
		path = ""
	}

	opts, err := config.Load(cmd.Flags(), path)
	if err != nil {
		return nil, err
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if path != "" {
		loggerFromContext(cmd.Context()).Debug("loaded config", "path", path)
	}
	return opts, nil
}

// readListing reads the import listing from path, or stdin for "-".
func readListing(cmd *cobra.Command, path string) (depgraph.RawGraph, error) {
	if path == "-" {
		return graphio.ReadRaw(cmd.InOrStdin())
	}
	if err := errors.ValidatePath(path); err != nil {
		return depgraph.RawGraph{}, err
	}
	return graphio.ImportRaw(path)
}

// outputPath picks the file a format is written to. Without an explicit
// output the name is derived from the input; with several formats the
// output's extension is replaced per format.
func outputPath(output, input, format string, multi bool) string {
	if output != "" && !multi {
		return output
	}
	base := output
	if base == "" {
		base = strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
		if input == "-" || base == "" {
			base = appName
		}
		if format == "json" {
			return base + ".nodes.json"
		}
	} else if ext := filepath.Ext(base); slices.Contains(config.ValidFormats, strings.TrimPrefix(ext, ".")) {
		base = strings.TrimSuffix(base, ext)
	}
	return base + "." + format
}

// writeOutput writes data to path, or to cmd's stdout for "-".
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", path)
	}
	return nil
}

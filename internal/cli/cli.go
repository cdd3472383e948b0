// Package cli implements the modgraph command-line interface.
//
// The commands read an import listing (the JSON produced by module
// discovery), run it through the pipeline and write the results:
//   - render: draw the module graph as SVG, PNG, JPG, DOT or a node dump
//   - deps: dump the pruned graph, or the raw listing with --raw
//   - externals: list the packages the target imports from outside
//   - config: write a default config file or show the effective settings
//   - cache: manage the rendered image cache
//
// Settings are layered from defaults, a config file, MODGRAPH_*
// environment variables and flags; see package config.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/modgraph/pkg/buildinfo"
	"github.com/matzehuels/modgraph/pkg/cache"
	"github.com/matzehuels/modgraph/pkg/errors"
	"github.com/matzehuels/modgraph/pkg/observability"
	"github.com/matzehuels/modgraph/pkg/pipeline"
)

// appName is the application name used for display.
const appName = "modgraph"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	verbose    bool
	configPath string
	noConfig   bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "modgraph draws the import graph of a Python package",
		Long: `modgraph turns the import listing of a Python program into a curated
module dependency graph: noisy and distant modules are pruned, import
cycles are flagged, related modules are pulled together, and the result
is drawn with Graphviz.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.SetLogLevel(LogDebug)
				hooks := observability.NewLogHooks(c.Logger)
				observability.SetPipelineHooks(hooks)
				observability.SetCacheHooks(hooks)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}
	root.SetVersionTemplate(buildinfo.Template())

	pf := root.PersistentFlags()
	pf.BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	pf.StringVarP(&c.configPath, "config", "c", "", "config file (default: modgraph.toml or pyproject.toml in the current directory)")
	pf.BoolVar(&c.noConfig, "no-config", false, "ignore config files")
	addAnalysisFlags(pf)
	registerConfigCompletion(root)

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.depsCommand())
	root.AddCommand(c.externalsCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a pipeline runner, with the file cache when useCache
// is set.
func (c *CLI) newRunner(useCache bool) (*pipeline.Runner, error) {
	if !useCache {
		return pipeline.NewRunner(nil, c.Logger), nil
	}
	dir, err := cache.DefaultDir()
	if err != nil {
		c.Logger.Warn("cache disabled", "err", err)
		return pipeline.NewRunner(nil, c.Logger), nil
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(fc, c.Logger), nil
}

// PrintError writes err to stderr in the error style, without the code
// prefix of coded errors.
func PrintError(err error) {
	fmt.Fprintln(os.Stderr, styleIconError.Render(iconError)+" "+errors.UserMessage(err))
}

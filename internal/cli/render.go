package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/modgraph/pkg/config"
	"github.com/matzehuels/modgraph/pkg/errors"
	"github.com/matzehuels/modgraph/pkg/pipeline"
)

// watchDebounce is how long the input must stay quiet before a re-run.
const watchDebounce = 200 * time.Millisecond

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "render <listing.json|->",
		Short: "Draw the module graph of an import listing",
		Long: `Draw the module graph of an import listing.

The listing is pruned, its import cycles are flagged and the result is
written in every requested format. Use - to read the listing from stdin
and -o - to write a single format to stdout.`,
		Example: `  modgraph render deps.json
  modgraph render deps.json -f svg,dot --cluster --max-bacon 3
  modgraph render deps.json -x 'tests.*' --watch`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if watch && args[0] == "-" {
				return errors.New(errors.ErrCodeInvalidInput, "cannot watch stdin")
			}
			opts, err := c.loadOptions(cmd)
			if err != nil {
				return err
			}
			runner, err := c.newRunner(opts.Cache)
			if err != nil {
				return err
			}
			defer runner.Close()

			run := func() error { return c.runRender(cmd, runner, args[0], opts) }
			err = run()
			if !watch {
				return err
			}
			if err != nil {
				printError("%v", err)
			}

			w, err := newWatcher(args[0])
			if err != nil {
				return err
			}
			printInfo("Watching %s (Ctrl-C to stop)", args[0])
			return w.run(cmd.Context(), watchDebounce, func() {
				if err := run(); err != nil {
					printError("%v", err)
				}
			})
		},
	}
	addDrawFlags(cmd.Flags())
	registerDrawCompletions(cmd)
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "re-render when the listing changes")

	return cmd
}

// runRender reads the listing at input, runs the pipeline and writes one
// file per format.
func (c *CLI) runRender(cmd *cobra.Command, runner *pipeline.Runner, input string, opts *config.Options) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	prog := newProgress(logger, "render")

	multi := len(opts.Format) > 1
	toStdout := opts.Output == "-"
	if toStdout && multi {
		return errors.New(errors.ErrCodeInvalidInput, "cannot write %d formats to stdout", len(opts.Format))
	}

	raw, err := readListing(cmd, input)
	if err != nil {
		return err
	}
	res, err := runner.Execute(ctx, raw, opts)
	if err != nil {
		return err
	}

	for _, format := range opts.Format {
		path := outputPath(opts.Output, input, format, multi)
		if err := writeOutput(cmd, path, res.Artifacts[format]); err != nil {
			return err
		}
		if !toStdout {
			printFile(path)
		}
	}
	if !toStdout {
		printStats(res)
	}
	prog.done("input", input, "formats", opts.Format)
	return nil
}

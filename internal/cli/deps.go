package cli

import (
	"bytes"

	"github.com/spf13/cobra"

	graphio "github.com/matzehuels/modgraph/pkg/io"
	"github.com/matzehuels/modgraph/pkg/pipeline"
)

// depsCommand creates the deps command, which dumps the graph as JSON.
func (c *CLI) depsCommand() *cobra.Command {
	var (
		raw    bool
		output string
	)

	cmd := &cobra.Command{
		Use:   "deps <listing.json|->",
		Short: "Dump the pruned module graph as JSON",
		Long: `Dump the module graph as JSON after pruning: every remaining module with
its path, hop distance from the root, and sorted imports and importers.

With --raw the import listing is written back unchanged instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.loadOptions(cmd)
			if err != nil {
				return err
			}
			listing, err := readListing(cmd, args[0])
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			if raw {
				if err := graphio.WriteRaw(listing, &buf); err != nil {
					return err
				}
			} else {
				res, err := pipeline.NewRunner(nil, c.Logger).Analyze(cmd.Context(), listing, opts)
				if err != nil {
					return err
				}
				if err := graphio.WriteNodes(res.Graph, &buf); err != nil {
					return err
				}
			}

			if err := writeOutput(cmd, output, buf.Bytes()); err != nil {
				return err
			}
			if output != "-" {
				printFile(output)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "write the import listing instead of the pruned graph")
	cmd.Flags().StringVarP(&output, "output", "o", "-", "output file")

	return cmd
}

package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/modgraph/pkg/depgraph"
	"github.com/matzehuels/modgraph/pkg/errors"
	"github.com/matzehuels/modgraph/pkg/pipeline"
)

// externalsCommand creates the externals command.
func (c *CLI) externalsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "externals <listing.json|->",
		Short: "List the packages the target imports from outside itself",
		Long: `List, as a JSON array, the top-level packages that modules of the target
package import directly from outside the package. Excluded modules are
left out; no other pruning is applied.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.loadOptions(cmd)
			if err != nil {
				return err
			}
			raw, err := readListing(cmd, args[0])
			if err != nil {
				return err
			}

			g, err := pipeline.NewRunner(nil, c.Logger).Build(raw, opts)
			if err != nil {
				return err
			}
			target := pipeline.ResolveTarget(raw, opts, g)
			if target == "" {
				return errors.New(errors.ErrCodeInvalidInput, "no target package: pass --target or add \"target\" to the listing")
			}

			names := externals(g, target)
			loggerFromContext(cmd.Context()).Debug("externals", "target", target, "count", len(names))

			data, err := json.MarshalIndent(names, "", "    ")
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}
}

// externals lists the target's outside imports, leaving out excluded
// modules. It never returns nil, so the JSON output is always an array.
func externals(g *depgraph.DepGraph, target string) []string {
	out := []string{}
	for _, name := range depgraph.Externals(g, target) {
		if g.Skip().Match(name) {
			continue
		}
		if n := g.Node(name); n != nil && n.Excluded {
			continue
		}
		out = append(out, name)
	}
	return out
}

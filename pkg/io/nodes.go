package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/modgraph/pkg/depgraph"
)

type node struct {
	Name       string   `json:"name"`
	Path       string   `json:"path,omitempty"`
	Bacon      *int     `json:"bacon"`
	Excluded   bool     `json:"excluded,omitempty"`
	Imports    []string `json:"imports,omitempty"`
	ImportedBy []string `json:"imported_by,omitempty"`
}

// WriteNodes encodes the nodes of g as a JSON object keyed by module name.
// Keys and name lists are sorted, so the output is stable. Bacon is null
// for modules the root does not reach.
func WriteNodes(g *depgraph.DepGraph, w io.Writer) error {
	out := make(map[string]node, g.Len())
	for _, n := range g.Nodes() {
		nd := node{
			Name:       n.Name,
			Path:       n.Path,
			Excluded:   n.Excluded,
			Imports:    n.Imports.Sorted(),
			ImportedBy: n.ImportedBy.Sorted(),
		}
		if n.Bacon != depgraph.NoBacon {
			bacon := n.Bacon
			nd.Bacon = &bacon
		}
		out[n.Name] = nd
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportNodes writes the node dump of g to a file at path.
func ExportNodes(g *depgraph.DepGraph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteNodes(g, f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

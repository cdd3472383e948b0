// Package config loads modgraph settings.
//
// Settings come from four layers, lowest priority first:
//
//  1. built-in defaults ([Defaults])
//  2. a TOML config file: modgraph.toml, or the [tool.modgraph] table of
//     pyproject.toml ([Discover] finds either in a directory)
//  3. MODGRAPH_* environment variables, e.g. MODGRAPH_MAX_BACON=3
//  4. command-line flags that were explicitly set
//
// Keys are snake_case in files and environment variables; flags use the
// same names with dashes. List values accept comma-separated entries at
// every layer:
//
//	# modgraph.toml
//	exclude = ["tests.*", "docs"]
//	max_bacon = 3
//	cluster = true
//	format = ["svg", "json"]
//
// [Load] merges the layers without validating. Call [Options.Validate]
// before using the result; it returns coded errors from pkg/errors.
package config

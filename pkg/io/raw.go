package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/modgraph/pkg/depgraph"
	"github.com/matzehuels/modgraph/pkg/errors"
)

// ReadRaw decodes an import listing from r.
//
// The input must be a JSON object with a "depgraph" map from module name
// to the modules it imports, each mapped to its resolved file path (or ""
// when unresolved). "target" and "types" are optional:
//
//	{
//	  "target": "mypkg",
//	  "depgraph": {"__main__": {"mypkg": "src/mypkg/__init__.py"}},
//	  "types": {"mypkg": "package"}
//	}
//
// Kinds may be given as names or as numeric module-type codes. ReadRaw
// returns an [errors.ErrCodeInvalidInput] error when the JSON is malformed,
// the "depgraph" key is missing, or a module name is empty. It does not
// close r.
func ReadRaw(r io.Reader) (depgraph.RawGraph, error) {
	var raw depgraph.RawGraph
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return raw, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode import listing")
	}
	if raw.Imports == nil {
		return raw, errors.New(errors.ErrCodeInvalidInput, `import listing has no "depgraph" object`)
	}
	for name, imports := range raw.Imports {
		if name == "" {
			return raw, errors.New(errors.ErrCodeInvalidInput, "import listing contains an empty module name")
		}
		if _, ok := imports[""]; ok {
			return raw, errors.New(errors.ErrCodeInvalidInput, "module %q imports an empty module name", name)
		}
	}
	return raw, nil
}

// ImportRaw reads the import listing stored at path.
func ImportRaw(path string) (depgraph.RawGraph, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return depgraph.RawGraph{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return depgraph.RawGraph{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadRaw(f)
}

// WriteRaw encodes an import listing as indented JSON. The output can be
// read back with [ReadRaw].
func WriteRaw(raw depgraph.RawGraph, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	if err := enc.Encode(raw); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

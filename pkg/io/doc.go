// Package io reads import listings and writes node dumps as JSON.
//
// # Import Listing
//
// An import listing is what module discovery produces: every module, the
// modules it imports with their resolved files, and optionally how each
// module was found.
//
//	{
//	  "target": "mypkg",
//	  "depgraph": {
//	    "__main__": {"mypkg": "src/mypkg/__init__.py"},
//	    "mypkg":    {"mypkg.util": "src/mypkg/util.py", "os": ""}
//	  },
//	  "types": {"__main__": 1, "mypkg": "package"}
//	}
//
// Use [ImportRaw] to read a listing from a file or [ReadRaw] to read from
// any io.Reader, then hand the result to [depgraph.Build]. [WriteRaw]
// writes a listing back out unchanged.
//
// # Node Dump
//
// [WriteNodes] and [ExportNodes] write the state of a graph after pruning,
// for inspection or other tools:
//
//	{
//	    "mypkg": {
//	        "name": "mypkg",
//	        "path": "src/mypkg/__init__.py",
//	        "bacon": 1,
//	        "imports": ["mypkg.util"],
//	        "imported_by": ["__main__"]
//	    }
//	}
//
// path, excluded, imports and imported_by are omitted when empty. Name
// lists are sorted.
package io

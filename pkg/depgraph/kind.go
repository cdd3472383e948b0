package depgraph

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Kind records how a module was found. It only influences rendering and
// filtering policy, never the shape of the graph.
type Kind int

// Kind values share their numbers with the module-type codes emitted by
// import discovery tools, so an integer kind tag decodes without a table.
const (
	KindUnknown    Kind = 0
	KindSource     Kind = 1
	KindCompiled   Kind = 2
	KindExtension  Kind = 3
	KindResource   Kind = 4
	KindPackageDir Kind = 5
	KindBuiltin    Kind = 6
	KindFrozen     Kind = 7
	KindImportHook Kind = 9
)

// codeResource is a historical resource variant that is folded into
// KindResource on decode.
const codeResource = 8

var kindNames = map[Kind]string{
	KindUnknown:    "unknown",
	KindSource:     "source",
	KindCompiled:   "compiled",
	KindExtension:  "extension",
	KindResource:   "resource",
	KindPackageDir: "package",
	KindBuiltin:    "builtin",
	KindFrozen:     "frozen",
	KindImportHook: "import-hook",
}

var kindAliases = map[string]Kind{
	"package-dir": KindPackageDir,
	"pkg":         KindPackageDir,
	"hook":        KindImportHook,
	"c-extension": KindExtension,
}

// String returns the lowercase kind name.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return kindNames[KindUnknown]
}

// IsPackage reports whether the module is a package directory.
// KindUnknown is never a package.
func (k Kind) IsPackage() bool { return k == KindPackageDir }

// ParseKind converts a kind name or numeric code to a Kind.
// Anything unrecognized yields KindUnknown.
func ParseKind(s string) Kind {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		return KindFromCode(n)
	}
	for k, name := range kindNames {
		if name == s {
			return k
		}
	}
	if k, ok := kindAliases[s]; ok {
		return k
	}
	return KindUnknown
}

// KindFromCode converts a numeric module-type code to a Kind.
func KindFromCode(n int) Kind {
	if n == codeResource {
		return KindResource
	}
	if _, ok := kindNames[Kind(n)]; ok {
		return Kind(n)
	}
	return KindUnknown
}

// MarshalJSON encodes the kind by name.
func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON accepts either the numeric code or the name.
func (k *Kind) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*k = KindFromCode(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*k = ParseKind(s)
	return nil
}

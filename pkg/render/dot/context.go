package dot

import (
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strings"
)

// Rankdir is the Graphviz rank direction.
type Rankdir string

const (
	TopBottom Rankdir = "TB"
	BottomTop Rankdir = "BT"
	LeftRight Rankdir = "LR"
	RightLeft Rankdir = "RL"
)

// Reverse returns the opposite direction (TB and BT, LR and RL).
func (r Rankdir) Reverse() Rankdir {
	s := []rune(string(r))
	slices.Reverse(s)
	return Rankdir(s)
}

// Attrs holds DOT attributes of a node or edge.
type Attrs map[string]string

func (a Attrs) clone() Attrs {
	if a == nil {
		return Attrs{}
	}
	return maps.Clone(a)
}

// Graph-level node defaults. Node attributes equal to these are not written.
const (
	DefaultFillColor = "#ffffff"
	DefaultFontColor = "#000000"
	defaultWidth     = "0.75"
)

// Context writes DOT text, leaving out attributes that equal the graph
// defaults. Node names are sanitized into DOT identifiers.
type Context struct {
	b       strings.Builder
	reverse bool
	rankdir Rankdir
}

// NewContext returns a Context. When reverse is set every rule is written
// from b to a and the rank direction is flipped.
func NewContext(reverse bool, rankdir Rankdir) *Context {
	if rankdir == "" {
		rankdir = TopBottom
	}
	if reverse {
		rankdir = rankdir.Reverse()
	}
	return &Context{reverse: reverse, rankdir: rankdir}
}

// Rankdir returns the effective rank direction.
func (c *Context) Rankdir() Rankdir { return c.rankdir }

// Begin writes the graph header.
func (c *Context) Begin(concentrate, compound bool) {
	c.Writeln("digraph G {")
	if concentrate {
		c.Writeln("    concentrate = true;")
	}
	if compound {
		c.Writeln("    compound = true;")
	}
	fmt.Fprintf(&c.b, "    rankdir = %s;\n", c.rankdir)
	fmt.Fprintf(&c.b, "    node [style=filled,fillcolor=%q,fontcolor=%q,fontname=Helvetica,fontsize=10];\n\n",
		DefaultFillColor, DefaultFontColor)
}

// End closes the graph.
func (c *Context) End() { c.Writeln("}") }

// Writeln writes s followed by a newline.
func (c *Context) Writeln(s string) {
	c.b.WriteString(s)
	c.b.WriteByte('\n')
}

// WriteNode writes a node statement indented by indent levels.
func (c *Context) WriteNode(indent int, name string, attrs Attrs) {
	id := NodeID(name)
	attrs = attrs.clone()
	dropIf(attrs, "label", id)
	dropIf(attrs, "fillcolor", DefaultFillColor)
	dropIf(attrs, "fontcolor", DefaultFontColor)
	dropIf(attrs, "width", defaultWidth)
	c.rule(indent, quoteID(id), attrs)
}

// WriteRule writes the edge a -> b, or b -> a when reversed.
func (c *Context) WriteRule(a, b string, attrs Attrs) {
	if c.reverse {
		a, b = b, a
	}
	attrs = attrs.clone()
	dropIf(attrs, "weight", "1")
	dropIf(attrs, "minlen", "1")
	dropIf(attrs, "len", "1")
	c.rule(1, quoteID(NodeID(a))+" -> "+quoteID(NodeID(b)), attrs)
}

// String returns everything written so far.
func (c *Context) String() string { return c.b.String() }

func (c *Context) rule(indent int, stmt string, attrs Attrs) {
	c.b.WriteString(strings.Repeat("    ", indent))
	c.b.WriteString(stmt)
	if len(attrs) > 0 {
		c.b.WriteString(" [")
		for i, k := range slices.Sorted(maps.Keys(attrs)) {
			if i > 0 {
				c.b.WriteByte(',')
			}
			fmt.Fprintf(&c.b, "%s=\"%s\"", k, escape(attrs[k]))
		}
		c.b.WriteByte(']')
	}
	c.b.WriteString(";\n")
}

func dropIf(attrs Attrs, key, value string) {
	if v, ok := attrs[key]; ok && v == value {
		delete(attrs, key)
	}
}

var plainID = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

var keywords = map[string]bool{
	"node": true, "edge": true, "graph": true,
	"digraph": true, "subgraph": true, "strict": true,
}

// NodeID maps a dotted module name to its DOT node name.
func NodeID(name string) string {
	return strings.ReplaceAll(name, ".", "_")
}

func quoteID(id string) string {
	if plainID.MatchString(id) && !keywords[strings.ToLower(id)] {
		return id
	}
	return `"` + escape(id) + `"`
}

// escape protects double quotes inside a quoted DOT string. Backslash
// sequences such as the \n line breaks in labels are kept.
func escape(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}

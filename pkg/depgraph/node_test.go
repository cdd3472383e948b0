package depgraph

import (
	"reflect"
	"testing"
)

func TestNewNode_RootRename(t *testing.T) {
	tests := []struct {
		name, path, want string
	}{
		{RootName, "", RootName},
		{RootName, "src/tool/run.py", "src.tool.run"},
		{RootName, `src\tool\run.py`, "src.tool.run"},
		{RootName, "/abs/pkg/main.py", "abs.pkg.main"},
		{RootName, `C:\work\app.py`, "work.app"},
		{"pkg.mod", "src/pkg/mod.py", "pkg.mod"},
	}
	for _, tt := range tests {
		n := NewNode(tt.name, tt.path)
		if n.Name != tt.want {
			t.Errorf("NewNode(%q, %q).Name = %q, want %q", tt.name, tt.path, n.Name, tt.want)
		}
	}
}

func TestNewNode_Defaults(t *testing.T) {
	n := NewNode("a", "", "b", "c")
	if n.Bacon != NoBacon {
		t.Errorf("Bacon = %d, want NoBacon", n.Bacon)
	}
	if n.ImportedBy == nil || len(n.ImportedBy) != 0 {
		t.Errorf("ImportedBy = %v, want empty set", n.ImportedBy)
	}
	if got := n.Imports.Sorted(); !reflect.DeepEqual(got, []string{"b", "c"}) {
		t.Errorf("Imports = %v, want [b c]", got)
	}
	if n.Kind != KindUnknown {
		t.Errorf("Kind = %v, want unknown", n.Kind)
	}
}

func TestMerge_Rules(t *testing.T) {
	a := NewNode("m", "", "x")
	a.Bacon = 3
	b := NewNode("m", "/src/m.py", "y")
	b.ImportedBy.Add("p")
	b.Bacon = 1
	b.Excluded = true
	b.Kind = KindSource

	a.Merge(b)

	if a.Path != "/src/m.py" {
		t.Errorf("Path = %q, want first non-empty path", a.Path)
	}
	if got := a.Imports.Sorted(); !reflect.DeepEqual(got, []string{"x", "y"}) {
		t.Errorf("Imports = %v, want union [x y]", got)
	}
	if !a.ImportedBy.Has("p") {
		t.Error("ImportedBy lost merged importer")
	}
	if a.Bacon != 1 {
		t.Errorf("Bacon = %d, want min 1", a.Bacon)
	}
	if !a.Excluded {
		t.Error("Excluded should be OR'd")
	}
	if a.Kind != KindSource {
		t.Errorf("Kind = %v, want source", a.Kind)
	}
}

func TestMerge_FirstPathWins(t *testing.T) {
	a := NewNode("m", "/first.py")
	a.Merge(NewNode("m", "/second.py"))
	if a.Path != "/first.py" {
		t.Errorf("Path = %q, want /first.py", a.Path)
	}
}

func TestMerge_ExcludedIsMonotone(t *testing.T) {
	a := NewNode("m", "")
	a.Excluded = true
	a.Merge(NewNode("m", ""))
	if !a.Excluded {
		t.Error("merging a non-excluded record cleared Excluded")
	}
}

func TestMerge_Idempotent(t *testing.T) {
	g := New(nil)
	rec := NewNode("m", "/m.py", "a", "b")
	rec.Bacon = 2

	if _, err := g.AddOrMergeNode(rec); err != nil {
		t.Fatal(err)
	}
	once := g.Node("m").clone()

	if _, err := g.AddOrMergeNode(rec); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(*g.Node("m"), once) {
		t.Errorf("second ingest changed node:\n got %+v\nwant %+v", *g.Node("m"), once)
	}
}

func TestMerge_Commutative(t *testing.T) {
	mk := func() (Node, Node) {
		a := NewNode("m", "", "x")
		a.Bacon = 4
		b := NewNode("m", "/m.py", "y", "z")
		b.ImportedBy.Add("q")
		b.Bacon = 2
		b.Excluded = true
		return a, b
	}

	a1, b1 := mk()
	ab := New(nil)
	ab.AddOrMergeNode(a1)
	ab.AddOrMergeNode(b1)

	a2, b2 := mk()
	ba := New(nil)
	ba.AddOrMergeNode(b2)
	ba.AddOrMergeNode(a2)

	if !reflect.DeepEqual(*ab.Node("m"), *ba.Node("m")) {
		t.Errorf("merge order matters:\nA,B = %+v\nB,A = %+v", *ab.Node("m"), *ba.Node("m"))
	}
}

func TestAddOrMergeNode_CopiesSets(t *testing.T) {
	g := New(nil)
	rec := NewNode("m", "", "a")
	g.AddOrMergeNode(rec)
	rec.Imports.Add("later")
	if g.Node("m").Imports.Has("later") {
		t.Error("graph node shares its import set with the caller")
	}
}

func TestAddOrMergeNode_EmptyName(t *testing.T) {
	g := New(nil)
	if _, err := g.AddOrMergeNode(NewNode("", "")); err != ErrEmptyName {
		t.Errorf("err = %v, want ErrEmptyName", err)
	}
}

func TestIsNoise(t *testing.T) {
	tests := []struct {
		name       string
		imports    []string
		importedBy []string
		level      int
		want       bool
	}{
		{"pure source over level", []string{"a", "b"}, nil, 1, true},
		{"pure source at level", []string{"a"}, nil, 1, false},
		{"pure sink over level", nil, []string{"a", "b", "c"}, 2, true},
		{"connected both ways", []string{"a"}, []string{"b"}, 0, false},
		{"isolated", nil, nil, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewNode("m", "", tt.imports...)
			for _, p := range tt.importedBy {
				n.ImportedBy.Add(p)
			}
			if got := n.IsNoise(tt.level); got != tt.want {
				t.Errorf("IsNoise(%d) = %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		name     string
		split    int
		rmprefix []string
		want     string
	}{
		{"short.name", 14, nil, "short.name"},
		{"a.rather.long.name", 14, nil, `a\.\nrather\.\nlong\.\nname`},
		{"averyveryverylongname", 14, nil, "averyveryverylongname"},
		{"a.rather.long.name", 0, nil, "a.rather.long.name"},
		{"pkg.sub.mod", 0, []string{"pkg."}, "sub.mod"},
		{"pkg.sub.mod", 0, []string{"other.", "pkg.", "pkg.sub."}, "sub.mod"},
	}
	for _, tt := range tests {
		n := NewNode(tt.name, "")
		if got := n.Label(tt.split, tt.rmprefix); got != tt.want {
			t.Errorf("Label(%q, %d, %v) = %q, want %q", tt.name, tt.split, tt.rmprefix, got, tt.want)
		}
	}
}

func TestTopLevel(t *testing.T) {
	for in, want := range map[string]string{"a": "a", "a.b.c": "a", "": ""} {
		if got := TopLevel(in); got != want {
			t.Errorf("TopLevel(%q) = %q, want %q", in, got, want)
		}
	}
}

package depgraph

import (
	"reflect"
	"testing"

	"github.com/gobwas/glob"

	"github.com/matzehuels/modgraph/pkg/errors"
)

func TestSkipList_Glob(t *testing.T) {
	tests := []struct {
		pattern string
		name    string
		want    bool
	}{
		{"relimp.*", "relimp.a", true},
		{"relimp.*", "relimp.a.b", true},
		{"relimp.*", "relimp", false},
		{"relimp.*", "xrelimp.a", false},
		{"*.tests", "pkg.tests", true},
		{"*.tests", "pkg.tests.unit", false},
		{"pkg.?", "pkg.a", true},
		{"pkg.?", "pkg.ab", false},
		{"pkg.[ab]", "pkg.a", true},
		{"pkg.[ab]", "pkg.c", false},
		{"pkg.[!ab]", "pkg.c", true},
		{"pkg.[!ab]", "pkg.a", false},
		{"a+b", "a+b", true},
		{"a+b", "aab", false},
		{"foo", "foo", true},
		{"foo", "foo.bar", false},
	}
	for _, tt := range tests {
		s, err := NewSkipList([]string{tt.pattern}, nil)
		if err != nil {
			t.Fatalf("NewSkipList(%q): %v", tt.pattern, err)
		}
		if got := s.Match(tt.name); got != tt.want {
			t.Errorf("%q.Match(%q) = %v, want %v", tt.pattern, tt.name, got, tt.want)
		}
	}
}

func TestSkipList_Exact(t *testing.T) {
	s, err := NewSkipList(nil, []string{"relimp.*", "a.b"})
	if err != nil {
		t.Fatal(err)
	}
	if !s.Match("relimp.*") {
		t.Error("exact pattern should match its literal text")
	}
	if s.Match("relimp.a") {
		t.Error("exact pattern must not act as a glob")
	}
	if !s.Match("a.b") || s.Match("axb") || s.Match("a.b.c") {
		t.Error("exact match must treat dots literally and anchor both ends")
	}
}

func TestSkipList_Invalid(t *testing.T) {
	for _, p := range []string{"", "pkg.[ab", "pkg.[z-a]"} {
		_, err := NewSkipList([]string{p}, nil)
		if err == nil {
			t.Errorf("NewSkipList(%q) = nil error, want failure", p)
			continue
		}
		if !errors.Is(err, errors.ErrCodeInvalidPattern) {
			t.Errorf("NewSkipList(%q) code = %v, want %v", p, errors.GetCode(err), errors.ErrCodeInvalidPattern)
		}
	}
}

func TestSkipList_NilAndZero(t *testing.T) {
	var nilList *SkipList
	if nilList.Match("anything") || nilList.Len() != 0 || nilList.Patterns() != nil {
		t.Error("nil SkipList should be empty")
	}
	var zero SkipList
	if zero.Match("anything") {
		t.Error("zero SkipList should match nothing")
	}
	zero.AddExact("x")
	if !zero.Match("x") {
		t.Error("zero SkipList should accept new patterns")
	}
}

func TestSkipList_PatternsKeepOrder(t *testing.T) {
	s, _ := NewSkipList([]string{"b.*", "a.*"}, []string{"c"})
	s.AddExact("noise")
	want := []string{"b.*", "a.*", "c", "noise"}
	if got := s.Patterns(); !reflect.DeepEqual(got, want) {
		t.Errorf("Patterns() = %v, want %v", got, want)
	}
	if s.Len() != 4 {
		t.Errorf("Len() = %d, want 4", s.Len())
	}
}

func TestSkipList_MatchesGlobSemantics(t *testing.T) {
	patterns := []string{"foo.*", "foo*", "a?b", "c[0-9]", "c[!0-9]", "*.bar*"}
	names := []string{"foo", "foo.bar", "foo.bar.baz", "foobar", "a.b", "axb", "c1", "cx", "x.bar", "x.barn.y"}
	for _, p := range patterns {
		s, err := NewSkipList([]string{p}, nil)
		if err != nil {
			t.Fatalf("NewSkipList(%q): %v", p, err)
		}
		g := glob.MustCompile(p)
		for _, n := range names {
			if got, want := s.Match(n), g.Match(n); got != want {
				t.Errorf("%q.Match(%q) = %v, want %v", p, n, got, want)
			}
		}
	}
}

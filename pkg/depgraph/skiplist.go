package depgraph

import (
	"github.com/gobwas/glob"

	"github.com/matzehuels/modgraph/pkg/errors"
)

// SkipList is an ordered list of compiled name matchers. A name matching
// any entry is invisible to traversal and is scrubbed from adjacency sets
// during removal.
//
// The zero value and the nil pointer are valid, empty lists.
type SkipList struct {
	patterns []string
	matchers []glob.Glob
}

// exactName matches one name by string equality.
type exactName string

func (e exactName) Match(name string) bool { return string(e) == name }

// NewSkipList compiles glob patterns and exact names into a SkipList.
// It returns an [errors.ErrCodeInvalidPattern] error for the first glob that
// does not compile.
func NewSkipList(globs, exact []string) (*SkipList, error) {
	s := &SkipList{}
	for _, g := range globs {
		if err := s.Add(g); err != nil {
			return nil, err
		}
	}
	for _, name := range exact {
		s.AddExact(name)
	}
	return s, nil
}

// Add appends a shell-style glob. "*" matches any run of characters
// including dots, "?" matches one character, and "[...]" / "[!...]" are
// character classes. The pattern must match the whole name.
func (s *SkipList) Add(pattern string) error {
	if pattern == "" {
		return errors.New(errors.ErrCodeInvalidPattern, "empty pattern")
	}
	g, err := glob.Compile(pattern)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPattern, err, "compile pattern %q", pattern)
	}
	s.patterns = append(s.patterns, pattern)
	s.matchers = append(s.matchers, g)
	return nil
}

// AddExact appends a matcher for exactly name.
func (s *SkipList) AddExact(name string) {
	s.patterns = append(s.patterns, name)
	s.matchers = append(s.matchers, exactName(name))
}

// Match reports whether any matcher accepts name.
func (s *SkipList) Match(name string) bool {
	if s == nil {
		return false
	}
	for _, m := range s.matchers {
		if m.Match(name) {
			return true
		}
	}
	return false
}

// Len returns the number of matchers.
func (s *SkipList) Len() int {
	if s == nil {
		return 0
	}
	return len(s.matchers)
}

// Patterns returns the source form of every matcher in insertion order.
func (s *SkipList) Patterns() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.patterns))
	copy(out, s.patterns)
	return out
}

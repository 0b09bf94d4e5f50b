package definition

import (
	"fmt"
	"sort"

	"github.com/randalmurphal/fmtscan/scan"
)

// Set holds compiled definitions by name. It is built by File.Compile and
// not modified afterwards, so it is safe for concurrent use.
type Set struct {
	defs map[string]*Compiled
}

// Lookup returns the definition with the given name.
// A miss returns an error matching ErrNotFound, with a suggestion when a
// similar name exists.
func (s *Set) Lookup(name string) (*Compiled, error) {
	if c, ok := s.defs[name]; ok {
		return c, nil
	}
	return nil, &Error{
		Name: name,
		Err:  fmt.Errorf("%w%s", ErrNotFound, didYouMean(name, s.Names())),
	}
}

// Scan looks up a definition and scans src with it.
func (s *Set) Scan(name, src string) (scan.Result, error) {
	c, err := s.Lookup(name)
	if err != nil {
		return scan.Result{}, err
	}
	return c.Scan(src)
}

// Names returns all definition names, sorted alphabetically.
func (s *Set) Names() []string {
	names := make([]string, 0, len(s.defs))
	for name := range s.defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of definitions.
func (s *Set) Len() int {
	return len(s.defs)
}

// LoadSet loads and compiles a definition file.
func LoadSet(path string) (*Set, error) {
	f, err := Load(path)
	if err != nil {
		return nil, err
	}
	return f.Compile()
}

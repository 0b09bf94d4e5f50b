package definition

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/randalmurphal/fmtscan/decode"
	"github.com/randalmurphal/fmtscan/scan"
	"github.com/randalmurphal/fmtscan/template"
)

// Compiled is a definition whose template and kinds have been validated.
// It is safe for concurrent use.
type Compiled struct {
	def     Definition
	tmpl    *template.Template
	kinds   []decode.Kind
	scanner *scan.Scanner
}

// Name returns the definition name.
func (c *Compiled) Name() string { return c.def.Name }

// Description returns the definition description.
func (c *Compiled) Description() string { return c.def.Description }

// Template returns the compiled template.
func (c *Compiled) Template() *template.Template { return c.tmpl }

// Kinds returns a copy of the kinds each placeholder decodes into.
func (c *Compiled) Kinds() []decode.Kind {
	return append([]decode.Kind(nil), c.kinds...)
}

// Scan scans src with the definition's template and kinds.
func (c *Compiled) Scan(src string) (scan.Result, error) {
	return c.scanner.Scan(src)
}

// Into scans src into typed destinations. The destination kinds take
// precedence over the definition's types.
func (c *Compiled) Into(src string, dst ...any) error {
	return c.scanner.Into(src, dst...)
}

// Compile validates d and binds it to a scanner.
//
// The template must compile, and when Types is set it must name exactly one
// supported kind per placeholder. When Types is empty the kinds default from
// the placeholder specifiers. Placeholders with a specifier are checked
// against their kind here, so a mismatch is reported before any scan.
func (d Definition) Compile() (*Compiled, error) {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return nil, &Error{Err: ErrEmptyName}
	}

	tmpl, err := template.Compile(d.Template)
	if err != nil {
		return nil, &Error{Name: name, Err: err}
	}

	kinds, err := d.kinds(tmpl)
	if err != nil {
		return nil, &Error{Name: name, Err: err}
	}

	for i, k := range kinds {
		if err := decode.Check(tmpl.Placeholder(i).Spec, k); err != nil {
			return nil, &Error{Name: name, Err: fmt.Errorf("placeholder %d: %w", i, err)}
		}
	}

	def := d
	def.Name = name
	def.Types = kindNames(kinds)

	logger := slog.Default().With(slog.String("definition", name))

	return &Compiled{
		def:     def,
		tmpl:    tmpl,
		kinds:   kinds,
		scanner: scan.New(tmpl, scan.WithKinds(kinds...), scan.WithLogger(logger)),
	}, nil
}

func (d Definition) kinds(tmpl *template.Template) ([]decode.Kind, error) {
	if len(d.Types) == 0 {
		return scan.DefaultKinds(tmpl), nil
	}

	if len(d.Types) != tmpl.NumPlaceholders() {
		return nil, fmt.Errorf("%w: template has %d placeholders, got %d types",
			ErrArity, tmpl.NumPlaceholders(), len(d.Types))
	}

	kinds := make([]decode.Kind, len(d.Types))
	for i, typ := range d.Types {
		k, err := decode.ParseKind(strings.TrimSpace(typ))
		if err != nil {
			return nil, fmt.Errorf("%w %q for placeholder %d%s",
				ErrUnknownType, typ, i, didYouMean(typ, decode.KindNames()))
		}
		kinds[i] = k
	}
	return kinds, nil
}

// Compile compiles every definition in f into a Set.
// It stops at the first invalid definition.
func (f *File) Compile() (*Set, error) {
	set := &Set{defs: make(map[string]*Compiled, len(f.Scans))}

	for _, d := range f.Scans {
		c, err := d.Compile()
		if err != nil {
			return nil, err
		}
		if _, exists := set.defs[c.Name()]; exists {
			return nil, &Error{Name: c.Name(), Err: ErrDuplicate}
		}
		set.defs[c.Name()] = c
	}

	return set, nil
}

// didYouMean returns a " (did you mean ...)" hint for the closest candidate,
// or "" when nothing matches.
func didYouMean(query string, candidates []string) string {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return ""
	}

	if matches := fuzzy.Find(query, candidates); len(matches) > 0 {
		return fmt.Sprintf(" (did you mean %q?)", matches[0].Str)
	}

	// Typos with a character no candidate has ("int9", "flaot64") are not
	// subsequences of anything; fall back to the closest name by edits.
	best, bestDist := "", maxSuggestDistance+1
	for _, c := range candidates {
		if d := editDistance(query, strings.ToLower(c)); d < bestDist {
			best, bestDist = c, d
		}
	}
	if best == "" {
		return ""
	}
	return fmt.Sprintf(" (did you mean %q?)", best)
}

// maxSuggestDistance is the largest edit distance still worth suggesting.
const maxSuggestDistance = 2

// editDistance returns the Levenshtein distance between a and b.
func editDistance(a, b string) int {
	ar, br := []rune(a), []rune(b)
	if len(ar) > len(br) {
		ar, br = br, ar
	}

	prev := make([]int, len(ar)+1)
	curr := make([]int, len(ar)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(br); i++ {
		curr[0] = i
		for j := 1; j <= len(ar); j++ {
			cost := 1
			if br[i-1] == ar[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(ar)]
}

func kindNames(kinds []decode.Kind) []string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return names
}

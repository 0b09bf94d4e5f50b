package scan

import (
	"strings"

	"github.com/randalmurphal/fmtscan/template"
)

// Span is a half-open byte range [Start, End) in a source text.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Slice returns the part of src covered by the span. The result shares
// storage with src.
func (s Span) Slice(src string) string {
	return src[s.Start:s.End]
}

// Resolver walks a source text left to right, yielding the span of each
// placeholder in turn. Each span depends on where the previous one ended,
// so spans must be resolved in order.
//
// Resolution is greedy and never backtracks:
//   - placeholder 0 starts at its own offset in the template; the leading
//     literal is assumed to match and is not checked against the source
//   - placeholder i > 0 starts right after the first occurrence of the
//     preceding separator found from the end of span i-1
//   - a placeholder ends at the first occurrence of its following separator,
//     or at the end of the source if it closes the template
//
// A separator that cannot be found resolves to the end of the source.
type Resolver struct {
	tmpl *template.Template
	src  string
	next int
	prev Span
}

// NewResolver returns a resolver for src against t.
func NewResolver(t *template.Template, src string) *Resolver {
	return &Resolver{tmpl: t, src: src}
}

// Index returns the index of the placeholder the next call to Next resolves.
func (r *Resolver) Index() int {
	return r.next
}

// Next resolves the next placeholder. It returns false once every
// placeholder has been resolved.
func (r *Resolver) Next() (Span, bool) {
	if r.next >= r.tmpl.NumPlaceholders() {
		return Span{}, false
	}

	i := r.next
	src := r.src

	var start int
	if i == 0 {
		start = min(r.tmpl.Placeholder(0).Start, len(src))
	} else {
		sep := r.tmpl.SeparatorBefore(i)
		if pos := strings.Index(src[r.prev.End:], sep); pos >= 0 {
			start = r.prev.End + pos + len(sep)
		} else {
			start = len(src)
		}
	}

	end := len(src)
	if !r.tmpl.EndsTemplate(i) {
		if pos := strings.Index(src[start:], r.tmpl.SeparatorAfter(i)); pos >= 0 {
			end = start + pos
		}
	}

	r.prev = Span{Start: start, End: end}
	r.next++
	return r.prev, true
}

// Resolve returns the span of placeholder i in src.
// Spans depend on their predecessors, so this replays placeholders 0..i.
func Resolve(t *template.Template, src string, i int) (Span, error) {
	if t == nil {
		return Span{}, usageError(ErrNilTemplate, "resolve placeholder %d", i)
	}
	if i < 0 || i >= t.NumPlaceholders() {
		return Span{}, usageError(ErrIndex, "index %d, template has %d placeholders", i, t.NumPlaceholders())
	}

	r := NewResolver(t, src)
	var span Span
	for r.Index() <= i {
		span, _ = r.Next()
	}
	return span, nil
}

// ResolveAll returns the spans of every placeholder of t in src.
func ResolveAll(t *template.Template, src string) []Span {
	spans := make([]Span, 0, t.NumPlaceholders())
	r := NewResolver(t, src)
	for {
		span, ok := r.Next()
		if !ok {
			return spans
		}
		spans = append(spans, span)
	}
}

package scan

import (
	"log/slog"
	"reflect"

	"github.com/randalmurphal/fmtscan/decode"
	"github.com/randalmurphal/fmtscan/template"
)

// Result holds the decoded values of one scan, in placeholder order.
// It is immutable; accessors that return slices return copies.
type Result struct {
	values []decode.Value
	spans  []Span
}

// Len returns the number of values.
func (r Result) Len() int {
	return len(r.values)
}

// Value returns the i-th decoded value. It panics if i is out of range.
func (r Result) Value(i int) decode.Value {
	return r.values[i]
}

// Span returns the source span the i-th value was decoded from.
func (r Result) Span(i int) Span {
	return r.spans[i]
}

// Values returns a copy of all decoded values.
func (r Result) Values() []decode.Value {
	out := make([]decode.Value, len(r.values))
	copy(out, r.values)
	return out
}

// Spans returns a copy of all resolved spans.
func (r Result) Spans() []Span {
	out := make([]Span, len(r.spans))
	copy(out, r.spans)
	return out
}

// Interfaces returns every value as a Go value of its exact kind.
func (r Result) Interfaces() []any {
	out := make([]any, len(r.values))
	for i, v := range r.values {
		out[i] = v.Interface()
	}
	return out
}

// Scan resolves every placeholder of t in src and decodes placeholder i into
// kinds[i].
//
// The number of kinds must equal t.NumPlaceholders() and every kind must be
// valid; both are checked before any resolution and reported as errors
// matching ErrUsage. A placeholder with a specifier is checked against its
// kind before decoding. The first failure aborts the scan and is returned as
// a *Error naming the placeholder; there is no partial result.
func Scan(t *template.Template, src string, kinds ...decode.Kind) (Result, error) {
	return run(t, src, kinds, nil)
}

// Into scans src like Scan, taking the kinds from the destinations, and
// stores the values into them. Each destination must be a non-nil pointer to
// int, int8..int64, uint, uint8..uint64, float32, float64 or string.
// Destinations are written only if the whole scan succeeds.
func Into(t *template.Template, src string, dst ...any) error {
	return into(t, src, dst, nil)
}

// DefaultKinds returns the kinds implied by t's specifiers: int for %d,
// uint for %u, float64 for %f, and string for %s or untyped placeholders.
func DefaultKinds(t *template.Template) []decode.Kind {
	kinds := make([]decode.Kind, t.NumPlaceholders())
	for i := range kinds {
		kinds[i] = decode.KindFor(t.Placeholder(i).Spec)
	}
	return kinds
}

func run(t *template.Template, src string, kinds []decode.Kind, logger *slog.Logger) (Result, error) {
	if t == nil {
		return Result{}, usageError(ErrNilTemplate, "scan %q", src)
	}

	n := t.NumPlaceholders()
	if len(kinds) != n {
		return Result{}, usageError(ErrArity, "template has %d placeholders, got %d kinds", n, len(kinds))
	}
	for i, k := range kinds {
		if !k.Valid() {
			return Result{}, usageError(decode.ErrUnsupportedKind, "kind %d is %s", i, k)
		}
	}

	res := Result{
		values: make([]decode.Value, n),
		spans:  make([]Span, n),
	}

	r := NewResolver(t, src)
	for i, k := range kinds {
		span, _ := r.Next()

		if err := decode.Check(t.Placeholder(i).Spec, k); err != nil {
			return Result{}, &Error{Index: i, Span: span, Err: err}
		}

		v, err := decode.Decode(k, span.Slice(src))
		if err != nil {
			return Result{}, &Error{Index: i, Span: span, Err: err}
		}

		if logger != nil {
			logger.Debug("resolved placeholder",
				slog.Int("index", i),
				slog.Int("start", span.Start),
				slog.Int("end", span.End),
				slog.String("kind", k.String()))
		}

		res.values[i] = v
		res.spans[i] = span
	}

	return res, nil
}

func into(t *template.Template, src string, dst []any, logger *slog.Logger) error {
	kinds := make([]decode.Kind, len(dst))
	for i, d := range dst {
		k := decode.KindOf(d)
		if k == decode.Invalid || !isNonNilPointer(d) {
			return usageError(ErrUnsupportedDestination, "argument %d has type %T", i, d)
		}
		kinds[i] = k
	}

	res, err := run(t, src, kinds, logger)
	if err != nil {
		return err
	}

	for i, d := range dst {
		if err := decode.Assign(d, res.values[i]); err != nil {
			return usageError(ErrUnsupportedDestination, "argument %d: %v", i, err)
		}
	}
	return nil
}

func isNonNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && !rv.IsNil()
}

package decode

import (
	"fmt"

	"github.com/randalmurphal/fmtscan/template"
)

// decoder is the strategy for one category of kinds.
type decoder func(k Kind, s string) (Value, error)

var decoders = map[Category]decoder{
	Signed:   decodeSigned,
	Unsigned: decodeUnsigned,
	Float:    decodeFloat,
	Text:     decodeText,
}

// Decode converts s into a Value of kind k.
// Failures are returned as *Error wrapping one of the package sentinels.
func Decode(k Kind, s string) (Value, error) {
	dec, ok := decoders[k.Category()]
	if !ok {
		return Value{}, newError(k, s, ErrUnsupportedKind)
	}
	return dec(k, s)
}

func decodeSigned(k Kind, s string) (Value, error) {
	v, err := parseSigned(s, k.Bits())
	if err != nil {
		return Value{}, newError(k, s, err)
	}
	return Value{kind: k, i: v}, nil
}

func decodeUnsigned(k Kind, s string) (Value, error) {
	v, err := parseUnsigned(s, k.Bits())
	if err != nil {
		return Value{}, newError(k, s, err)
	}
	return Value{kind: k, u: v}, nil
}

func decodeFloat(k Kind, s string) (Value, error) {
	v, err := parseFloat(s, k.Bits())
	if err != nil {
		return Value{}, newError(k, s, err)
	}
	return Value{kind: k, f: v}, nil
}

// decodeText returns s verbatim; it never fails.
func decodeText(k Kind, s string) (Value, error) {
	return Value{kind: k, s: s}, nil
}

// specifierCategory maps each specifier to the category it requires.
var specifierCategory = map[template.Specifier]Category{
	template.SpecSigned:   Signed,
	template.SpecUnsigned: Unsigned,
	template.SpecText:     Text,
	template.SpecFloat:    Float,
}

const specifierHint = "%d for signed integers, %u for unsigned integers, %s for text, %f for floating point"

// Check verifies that a placeholder with specifier spec may be decoded as k.
// A placeholder without a specifier accepts every kind.
func Check(spec template.Specifier, k Kind) error {
	if spec == template.NoSpecifier {
		return nil
	}

	want, ok := specifierCategory[spec]
	if !ok {
		return fmt.Errorf("%w: unknown specifier %q", ErrTypeMismatch, byte(spec))
	}
	if k.Category() != want {
		return fmt.Errorf("%w: %s placeholder expects %s, got %s (%s)",
			ErrTypeMismatch, spec, want, k, specifierHint)
	}
	return nil
}

// KindFor returns the default kind for a specifier: int for %d, uint for %u,
// float64 for %f, and string for %s or no specifier.
func KindFor(spec template.Specifier) Kind {
	switch spec {
	case template.SpecSigned:
		return Int
	case template.SpecUnsigned:
		return Uint
	case template.SpecFloat:
		return Float64
	default:
		return String
	}
}

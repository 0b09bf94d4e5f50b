package template

// Specifier is the optional one-character type hint inside a placeholder,
// written as "{%d}", "{%u}", "{%s}" or "{%f}".
type Specifier byte

// Specifier values.
const (
	// NoSpecifier marks an untyped "{}" placeholder.
	NoSpecifier Specifier = 0

	// SpecSigned ("%d") requests a signed integer.
	SpecSigned Specifier = 'd'

	// SpecUnsigned ("%u") requests an unsigned integer.
	SpecUnsigned Specifier = 'u'

	// SpecText ("%s") requests a text slice.
	SpecText Specifier = 's'

	// SpecFloat ("%f") requests a floating point number.
	SpecFloat Specifier = 'f'
)

// Valid reports whether s is one of the accepted specifier characters.
// NoSpecifier is not a valid specifier character.
func (s Specifier) Valid() bool {
	for _, v := range validSpecifiers {
		if s == v {
			return true
		}
	}
	return false
}

// String returns the specifier as written in a template ("%d"), or "" for NoSpecifier.
func (s Specifier) String() string {
	if s == NoSpecifier {
		return ""
	}
	return "%" + string(rune(s))
}

// Placeholder describes one "{...}" group in a template.
type Placeholder struct {
	// Start is the byte offset of '{'.
	Start int

	// End is the byte offset of '}' (inclusive).
	End int

	// Spec is the type hint, or NoSpecifier.
	Spec Specifier
}

// HasSpecifier reports whether the placeholder carries a type hint.
func (p Placeholder) HasSpecifier() bool {
	return p.Spec != NoSpecifier
}

// Width returns the number of template bytes the placeholder occupies.
func (p Placeholder) Width() int {
	return p.End - p.Start + 1
}

// Template is a compiled format template.
//
// A Template can only be obtained from Compile or MustCompile, so holding one
// means its placeholder syntax has been validated. It is immutable and safe for
// concurrent use.
type Template struct {
	text         string
	placeholders []Placeholder
}

// Compile validates text and returns the compiled template.
// Any syntax problem is reported as a *SyntaxError; no Template is produced.
func Compile(text string) (*Template, error) {
	n, err := countPlaceholders(text)
	if err != nil {
		return nil, err
	}

	return &Template{
		text:         text,
		placeholders: placeholderPositions(text, n),
	}, nil
}

// MustCompile is like Compile but panics if the template is malformed.
// Use it for package-level templates known at build time.
func MustCompile(text string) *Template {
	t, err := Compile(text)
	if err != nil {
		panic("template.MustCompile: " + err.Error())
	}
	return t
}

// String returns the template text.
func (t *Template) String() string {
	return t.text
}

// Len returns the length of the template text in bytes.
func (t *Template) Len() int {
	return len(t.text)
}

// NumPlaceholders returns the number of placeholders.
func (t *Template) NumPlaceholders() int {
	return len(t.placeholders)
}

// Placeholder returns the i-th placeholder. It panics if i is out of range.
func (t *Template) Placeholder(i int) Placeholder {
	return t.placeholders[i]
}

// Placeholders returns a copy of all placeholders in template order.
func (t *Template) Placeholders() []Placeholder {
	out := make([]Placeholder, len(t.placeholders))
	copy(out, t.placeholders)
	return out
}

// Leading returns the literal text before the first placeholder.
// For a template without placeholders it is the whole text.
func (t *Template) Leading() string {
	if len(t.placeholders) == 0 {
		return t.text
	}
	return t.text[:t.placeholders[0].Start]
}

// SeparatorBefore returns the literal text between placeholder i-1 and
// placeholder i. For i == 0 it is the leading literal.
func (t *Template) SeparatorBefore(i int) string {
	if i == 0 {
		return t.Leading()
	}
	return t.text[t.placeholders[i-1].End+1 : t.placeholders[i].Start]
}

// SeparatorAfter returns the literal text following placeholder i, up to the
// next placeholder or the end of the template.
func (t *Template) SeparatorAfter(i int) string {
	from := t.placeholders[i].End + 1
	if i+1 < len(t.placeholders) {
		return t.text[from:t.placeholders[i+1].Start]
	}
	return t.text[from:]
}

// EndsTemplate reports whether placeholder i closes at the final byte of the template.
func (t *Template) EndsTemplate(i int) bool {
	return t.placeholders[i].End == len(t.text)-1
}

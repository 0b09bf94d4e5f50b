package template

// validSpecifiers lists the characters accepted after '%' inside a placeholder.
var validSpecifiers = [...]Specifier{SpecSigned, SpecUnsigned, SpecText, SpecFloat}

// countPlaceholders validates the placeholder syntax of text and returns the
// number of placeholders it contains.
//
// Grammar:
//   - any character other than '{' and '}' is literal
//   - '{' opens a placeholder, optionally followed by '%' and one specifier
//   - the placeholder must then be closed by '}'
//   - a '}' outside a placeholder is an error
func countPlaceholders(text string) (int, error) {
	n := 0
	pos := 0

	for pos < len(text) {
		switch text[pos] {
		case '}':
			return 0, syntaxError(text, pos, ErrUnmatchedBrace)
		case '{':
		default:
			pos++
			continue
		}

		n++
		pos++

		if pos < len(text) && text[pos] == '%' {
			pos++
			if pos >= len(text) {
				return 0, syntaxError(text, pos, ErrMissingClosingBrace)
			}
			if !Specifier(text[pos]).Valid() {
				return 0, syntaxError(text, pos, ErrInvalidSpecifier)
			}
			pos++
		}

		if pos >= len(text) || text[pos] != '}' {
			return 0, syntaxError(text, pos, ErrMissingClosingBrace)
		}
		pos++
	}

	return n, nil
}

// placeholderPositions pairs every '{' with the next '}' in encounter order.
// text must already have passed countPlaceholders with count n.
func placeholderPositions(text string, n int) []Placeholder {
	out := make([]Placeholder, n)
	i := 0

	for pos := 0; pos < len(text); pos++ {
		switch text[pos] {
		case '{':
			out[i].Start = pos
		case '}':
			out[i].End = pos
			// "{%X}" spans four bytes; the specifier sits right after '%'.
			if pos-out[i].Start == 3 {
				out[i].Spec = Specifier(text[out[i].Start+2])
			}
			i++
		}
	}

	return out
}

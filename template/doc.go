// Package template compiles format templates used by the scan package.
//
// A template is literal text with embedded placeholders. Each placeholder
// marks one value to extract from a source text that follows the template's
// literal structure.
//
// # Syntax
//
// Untyped placeholders use empty braces:
//
//	temp={}C
//
// A placeholder may carry a one-character type hint after '%':
//
//	{%d}  signed integer
//	{%u}  unsigned integer
//	{%s}  text
//	{%f}  floating point
//
// Braces do not nest and cannot be escaped. A '{' always opens the next
// placeholder and the next '}' always closes it; a stray '}' is an error.
//
// # Compilation
//
// Templates are validated once, up front:
//
//	t, err := template.Compile("id={%u} name={%s}")
//	if err != nil {
//	    // err is a *template.SyntaxError; errors.Is(err, template.ErrSyntax) is true
//	}
//	t.NumPlaceholders() // 2
//
// Only a successful Compile yields a *Template, so any code holding one can
// rely on its placeholder list being well formed. Use MustCompile for
// package-level templates:
//
//	var lineFormat = template.MustCompile("{%s}: {%d}")
package template

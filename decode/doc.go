// Package decode converts resolved placeholder text into typed values.
//
// Kinds form a closed set: int, int8 .. int64, uint, uint8 .. uint64,
// float32, float64 and string. Each kind belongs to a Category, and each
// category has one decoding strategy.
//
// # Grammar
//
// Integers are an optional sign followed by decimal digits; the empty string
// decodes to zero. Narrow widths are range-checked and never wrap:
//
//	decode.Decode(decode.Uint8, "3")    // 3
//	decode.Decode(decode.Int8, "200")   // ErrOverflow
//	decode.Decode(decode.Uint16, "-1")  // ErrUnderflow
//
// Floats follow
//
//	[sign] int ['.' frac] [('e'|'E') [sign] exp] ['f']
//
// so "123e4", "-.1234" and "-1.0123e-3f" are accepted, while "123..456",
// "1e5.5" and "1.-5" fail with ErrInvalidNumber.
//
// Strings are returned verbatim and never fail.
//
// # Specifiers
//
// Check enforces the type hint of a placeholder: %d requires a signed kind,
// %u an unsigned kind, %s a string and %f a float.
package decode

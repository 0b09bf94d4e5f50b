package decode

import (
	"math"
	"strconv"
	"strings"
)

// splitSign strips one leading '+' or '-' from s.
func splitSign(s string) (neg bool, digits string) {
	if s == "" {
		return false, s
	}
	switch s[0] {
	case '-':
		return true, s[1:]
	case '+':
		return false, s[1:]
	}
	return false, s
}

// allDigits reports whether s consists only of ASCII decimal digits.
// The empty string qualifies.
func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// parseDecimal decodes "[+-]digits" into a sign and a 64-bit magnitude.
// Empty input, or a lone sign, decodes to zero.
func parseDecimal(s string) (neg bool, mag uint64, err error) {
	neg, digits := splitSign(s)
	if !allDigits(digits) {
		return false, 0, ErrInvalidNumber
	}

	for i := 0; i < len(digits); i++ {
		d := uint64(digits[i] - '0')
		if mag > (math.MaxUint64-d)/10 {
			if neg {
				return neg, 0, ErrUnderflow
			}
			return neg, 0, ErrOverflow
		}
		mag = mag*10 + d
	}

	return neg, mag, nil
}

// parseSigned decodes s and range-checks it against a signed width in bits.
func parseSigned(s string, bits int) (int64, error) {
	neg, mag, err := parseDecimal(s)
	if err != nil {
		return 0, err
	}

	limit := uint64(1)<<(bits-1) - 1
	if !neg {
		if mag > limit {
			return 0, ErrOverflow
		}
		return int64(mag), nil
	}
	if mag > limit+1 {
		return 0, ErrUnderflow
	}
	return -int64(mag), nil
}

// parseUnsigned decodes s and range-checks it against an unsigned width in bits.
func parseUnsigned(s string, bits int) (uint64, error) {
	neg, mag, err := parseDecimal(s)
	if err != nil {
		return 0, err
	}
	if neg && mag != 0 {
		return 0, ErrUnderflow
	}

	limit := uint64(math.MaxUint64)
	if bits < 64 {
		limit = uint64(1)<<bits - 1
	}
	if mag > limit {
		return 0, ErrOverflow
	}
	return mag, nil
}

// parseFloat decodes s using the grammar
//
//	[sign] int ['.' frac] [('e'|'E') [sign] exp] ['f']
//
// and rounds the result to bits (32 or 64) of precision.
func parseFloat(s string, bits int) (float64, error) {
	if s == "" {
		return 0, nil
	}

	body := strings.TrimSuffix(s, "f")

	point := strings.IndexByte(body, '.')
	mark := strings.IndexAny(body, "eE")

	if point >= 0 && strings.IndexByte(body[point+1:], '.') >= 0 {
		return 0, ErrInvalidNumber
	}
	if mark >= 0 && strings.IndexAny(body[mark+1:], "eE") >= 0 {
		return 0, ErrInvalidNumber
	}
	// The exponent cannot be fractional: 123e1.5
	if point >= 0 && mark >= 0 && mark < point {
		return 0, ErrInvalidNumber
	}

	wholeEnd := len(body)
	if mark >= 0 {
		wholeEnd = mark
	}
	if point >= 0 {
		wholeEnd = point
	}

	neg, whole := splitSign(body[:wholeEnd])
	if !allDigits(whole) {
		return 0, ErrInvalidNumber
	}

	var frac string
	if point >= 0 {
		fracEnd := len(body)
		if mark >= 0 {
			fracEnd = mark
		}
		frac = body[point+1 : fracEnd]
		// The fraction takes an optional '+' like any integer, but never '-'.
		if strings.HasPrefix(frac, "-") {
			return 0, ErrInvalidNumber
		}
		frac = strings.TrimPrefix(frac, "+")
		if !allDigits(frac) {
			return 0, ErrInvalidNumber
		}
	}

	var exp int64
	if mark >= 0 {
		e, err := parseSigned(body[mark+1:], 64)
		if err != nil {
			// A huge exponent on a zero mantissa is still zero.
			if err != ErrInvalidNumber && !nonZero(whole, frac) {
				return 0, nil
			}
			return 0, err
		}
		exp = e
	}

	// Rebuild the validated literal in canonical form so the conversion is
	// correctly rounded.
	var b strings.Builder
	b.Grow(len(whole) + len(frac) + 24)
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(orZero(whole))
	b.WriteByte('.')
	b.WriteString(orZero(frac))
	b.WriteByte('e')
	b.WriteString(strconv.FormatInt(exp, 10))

	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil || math.IsInf(v, 0) {
		return 0, ErrOverflow
	}
	if v == 0 && nonZero(whole, frac) {
		return 0, ErrUnderflow
	}

	if bits == 32 {
		// Rounded once, straight to single precision.
		n, err := strconv.ParseFloat(b.String(), 32)
		if n == 0 && v != 0 {
			return 0, ErrUnderflow
		}
		if err != nil || math.IsInf(n, 0) {
			return 0, ErrOverflow
		}
		return n, nil
	}
	return v, nil
}

func orZero(digits string) string {
	if digits == "" {
		return "0"
	}
	return digits
}

// nonZero reports whether any of the digit strings holds a non-zero digit.
func nonZero(parts ...string) bool {
	for _, p := range parts {
		if strings.Trim(p, "0") != "" {
			return true
		}
	}
	return false
}

// ParseInt decodes s as a signed integer of the given width in bits
// (8, 16, 32, 64, or 0 for the platform int).
func ParseInt(s string, bits int) (int64, error) {
	k := signedKind(bits)
	v, err := parseSigned(s, k.Bits())
	if err != nil {
		return 0, newError(k, s, err)
	}
	return v, nil
}

// ParseUint decodes s as an unsigned integer of the given width in bits
// (8, 16, 32, 64, or 0 for the platform uint).
func ParseUint(s string, bits int) (uint64, error) {
	k := unsignedKind(bits)
	v, err := parseUnsigned(s, k.Bits())
	if err != nil {
		return 0, newError(k, s, err)
	}
	return v, nil
}

// ParseFloat decodes s as a floating point number of the given width
// (32, or 64 for anything else).
func ParseFloat(s string, bits int) (float64, error) {
	k := Float64
	if bits == 32 {
		k = Float32
	}
	v, err := parseFloat(s, k.Bits())
	if err != nil {
		return 0, newError(k, s, err)
	}
	return v, nil
}

func signedKind(bits int) Kind {
	switch bits {
	case 8:
		return Int8
	case 16:
		return Int16
	case 32:
		return Int32
	case 64:
		return Int64
	default:
		return Int
	}
}

func unsignedKind(bits int) Kind {
	switch bits {
	case 8:
		return Uint8
	case 16:
		return Uint16
	case 32:
		return Uint32
	case 64:
		return Uint64
	default:
		return Uint
	}
}

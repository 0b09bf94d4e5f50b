package decode

import (
	"fmt"
	"reflect"
)

// Value is one decoded placeholder: a signed or unsigned integer, a float,
// or a text slice, tagged with the Kind it was decoded as.
//
// Text values are substrings of the scanned source and share its storage.
type Value struct {
	kind Kind
	i    int64
	u    uint64
	f    float64
	s    string
}

// Kind returns the kind the value was decoded as.
func (v Value) Kind() Kind {
	return v.kind
}

// IsValid reports whether v holds a decoded value.
func (v Value) IsValid() bool {
	return v.kind.Valid()
}

// Int returns the value of a signed kind.
// It panics if v is not a signed integer, like reflect.Value.Int.
func (v Value) Int() int64 {
	v.mustBe(Signed, "Int")
	return v.i
}

// Uint returns the value of an unsigned kind.
// It panics if v is not an unsigned integer.
func (v Value) Uint() uint64 {
	v.mustBe(Unsigned, "Uint")
	return v.u
}

// Float returns the value of a floating point kind.
// It panics if v is not a float.
func (v Value) Float() float64 {
	v.mustBe(Float, "Float")
	return v.f
}

// String returns the text of a String value. For other kinds it returns a
// printable form, so Value satisfies fmt.Stringer.
func (v Value) String() string {
	if v.kind == String {
		return v.s
	}
	if !v.kind.Valid() {
		return "<invalid>"
	}
	return fmt.Sprint(v.Interface())
}

// Interface returns the value as a Go value of its exact kind
// (int8, uint32, float32, string, ...), or nil for an invalid Value.
func (v Value) Interface() any {
	switch v.kind {
	case Int:
		return int(v.i)
	case Int8:
		return int8(v.i)
	case Int16:
		return int16(v.i)
	case Int32:
		return int32(v.i)
	case Int64:
		return v.i
	case Uint:
		return uint(v.u)
	case Uint8:
		return uint8(v.u)
	case Uint16:
		return uint16(v.u)
	case Uint32:
		return uint32(v.u)
	case Uint64:
		return v.u
	case Float32:
		return float32(v.f)
	case Float64:
		return v.f
	case String:
		return v.s
	default:
		return nil
	}
}

func (v Value) mustBe(c Category, method string) {
	if v.kind.Category() != c {
		panic(fmt.Sprintf("decode: call of Value.%s on %s value", method, v.kind))
	}
}

// Assign stores v into dst, which must be a non-nil pointer whose kind
// matches v.Kind().
func Assign(dst any, v Value) error {
	if rv := reflect.ValueOf(dst); rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("%w: destination %T is not a non-nil pointer", ErrUnsupportedKind, dst)
	}
	if KindOf(dst) != v.kind || !v.kind.Valid() {
		return fmt.Errorf("%w: cannot assign %s value to %T", ErrUnsupportedKind, v.kind, dst)
	}

	switch p := dst.(type) {
	case *int:
		*p = int(v.i)
	case *int8:
		*p = int8(v.i)
	case *int16:
		*p = int16(v.i)
	case *int32:
		*p = int32(v.i)
	case *int64:
		*p = v.i
	case *uint:
		*p = uint(v.u)
	case *uint8:
		*p = uint8(v.u)
	case *uint16:
		*p = uint16(v.u)
	case *uint32:
		*p = uint32(v.u)
	case *uint64:
		*p = v.u
	case *float32:
		*p = float32(v.f)
	case *float64:
		*p = v.f
	case *string:
		*p = v.s
	default:
		return fmt.Errorf("%w: %T is not a pointer", ErrUnsupportedKind, dst)
	}
	return nil
}

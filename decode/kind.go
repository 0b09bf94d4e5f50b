package decode

import (
	"fmt"
	"strconv"
)

// Kind identifies the Go type a placeholder is decoded into.
// The set is closed; the zero value is Invalid.
type Kind uint8

// Supported kinds.
const (
	Invalid Kind = iota
	Int
	Int8
	Int16
	Int32
	Int64
	Uint
	Uint8
	Uint16
	Uint32
	Uint64
	Float32
	Float64
	String
)

var kindNames = [...]string{
	Invalid: "invalid",
	Int:     "int",
	Int8:    "int8",
	Int16:   "int16",
	Int32:   "int32",
	Int64:   "int64",
	Uint:    "uint",
	Uint8:   "uint8",
	Uint16:  "uint16",
	Uint32:  "uint32",
	Uint64:  "uint64",
	Float32: "float32",
	Float64: "float64",
	String:  "string",
}

// String returns the Go type name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Valid reports whether k is one of the supported kinds.
func (k Kind) Valid() bool {
	return k > Invalid && k <= String
}

// Category returns the category of k, or NoCategory for an invalid kind.
func (k Kind) Category() Category {
	switch k {
	case Int, Int8, Int16, Int32, Int64:
		return Signed
	case Uint, Uint8, Uint16, Uint32, Uint64:
		return Unsigned
	case Float32, Float64:
		return Float
	case String:
		return Text
	default:
		return NoCategory
	}
}

// Bits returns the width of numeric kinds in bits, and 0 for String and Invalid.
// Int and Uint report the platform width.
func (k Kind) Bits() int {
	switch k {
	case Int8, Uint8:
		return 8
	case Int16, Uint16:
		return 16
	case Int32, Uint32, Float32:
		return 32
	case Int64, Uint64, Float64:
		return 64
	case Int, Uint:
		return strconv.IntSize
	default:
		return 0
	}
}

// ParseKind returns the kind named by its Go type name ("int8", "float64", "string").
func ParseKind(name string) (Kind, error) {
	for k := Int; k <= String; k++ {
		if kindNames[k] == name {
			return k, nil
		}
	}
	return Invalid, fmt.Errorf("%w: %q", ErrUnsupportedKind, name)
}

// KindNames returns the names of all supported kinds in declaration order.
func KindNames() []string {
	names := make([]string, 0, int(String))
	for k := Int; k <= String; k++ {
		names = append(names, kindNames[k])
	}
	return names
}

// KindOf returns the kind of v, which may be a supported value or a pointer
// to one. Anything else yields Invalid.
func KindOf(v any) Kind {
	switch v.(type) {
	case int, *int:
		return Int
	case int8, *int8:
		return Int8
	case int16, *int16:
		return Int16
	case int32, *int32:
		return Int32
	case int64, *int64:
		return Int64
	case uint, *uint:
		return Uint
	case uint8, *uint8:
		return Uint8
	case uint16, *uint16:
		return Uint16
	case uint32, *uint32:
		return Uint32
	case uint64, *uint64:
		return Uint64
	case float32, *float32:
		return Float32
	case float64, *float64:
		return Float64
	case string, *string:
		return String
	default:
		return Invalid
	}
}

// Category groups kinds for specifier checks.
type Category uint8

// Categories.
const (
	NoCategory Category = iota
	Signed
	Unsigned
	Float
	Text
)

// String returns a human-readable category name.
func (c Category) String() string {
	switch c {
	case Signed:
		return "signed integer"
	case Unsigned:
		return "unsigned integer"
	case Float:
		return "floating point"
	case Text:
		return "text"
	default:
		return "none"
	}
}

package metastr

import "unsafe"

// Unit is the set of character unit types a String can hold: any 8-bit,
// 16-bit or 32-bit integer type. Anything else is rejected at compile time.
//
// Go source and the built-in string type are defined to be UTF-8, so byte
// doubles as the printable UTF-8 unit; named 8-bit types still satisfy the
// constraint for callers that want a distinct unit type.
type Unit interface {
	~uint8 | ~uint16 | ~int32 | ~uint32
}

// UTF8Unit restricts to 8-bit units (UTF-8 family).
type UTF8Unit interface {
	~uint8
}

// UTF16Unit restricts to 16-bit units (UTF-16 family).
type UTF16Unit interface {
	~uint16
}

// UTF32Unit restricts to 32-bit units (UTF-32 family). rune is the usual
// choice; unsigned 32-bit unit types are accepted too.
type UTF32Unit interface {
	~int32 | ~uint32
}

// Family is the Unicode encoding family of a unit type.
type Family int

const (
	UTF8 Family = iota + 1
	UTF16
	UTF32
)

func (f Family) String() string {
	switch f {
	case UTF8:
		return "UTF-8"
	case UTF16:
		return "UTF-16"
	case UTF32:
		return "UTF-32"
	default:
		return "unknown"
	}
}

// FamilyOf classifies a unit type structurally by its width.
func FamilyOf[C Unit]() Family {
	var z C
	switch unsafe.Sizeof(z) {
	case 1:
		return UTF8
	case 2:
		return UTF16
	default:
		return UTF32
	}
}

// Package metastr implements fixed-capacity, immutable character strings
// whose contents take part in value identity, plus cross-encoding equality,
// Unicode transcoding and concatenation over them.
//
// A String is built once from a literal and never mutated. For anything
// runtime-shaped, convert it with Content or Text.
package metastr

import "unicode/utf16"

// String is a fixed-capacity string of character units. The backing array
// holds the content plus a single trailing zero terminator; Len reports the
// full capacity including that slot.
type String[C Unit] struct {
	str []C
}

// New builds a String of bytes from a Go string literal. Go literals are
// UTF-8, so the result is in the UTF-8 family.
func New(s string) String[byte] {
	str := make([]byte, len(s)+1)
	copy(str, s)
	return String[byte]{str: str}
}

// U16 builds a UTF-16 String from a Go string literal, encoding surrogate
// pairs for code points above 0xFFFF.
func U16(s string) String[uint16] {
	units := utf16.Encode([]rune(s))
	str := make([]uint16, len(units)+1)
	copy(str, units)
	return String[uint16]{str: str}
}

// U32 builds a UTF-32 String from a Go string literal, one unit per code
// point.
func U32(s string) String[rune] {
	runes := []rune(s)
	str := make([]rune, len(runes)+1)
	copy(str, runes)
	return String[rune]{str: str}
}

// FromUnits builds a String from raw units. A terminator slot is appended;
// trailing zero units passed by the caller become padding, which equality
// ignores.
func FromUnits[C Unit](units ...C) String[C] {
	str := make([]C, len(units)+1)
	copy(str, units)
	return String[C]{str: str}
}

// Len returns the capacity of the string including the terminator slot.
func (s String[C]) Len() int {
	return len(s.str)
}

// Content returns a view of the backing units with the final terminator
// slot excluded. The slice aliases the string's storage; do not write to it.
func (s String[C]) Content() []C {
	return s.str[:len(s.str)-1]
}

// Text decodes the content to a Go string with trailing terminator padding
// stripped.
func (s String[C]) Text() string {
	units := s.Content()
	for len(units) > 0 && units[len(units)-1] == 0 {
		units = units[:len(units)-1]
	}
	return decodeUnits(units)
}

// String decodes the full content, embedded padding included.
func (s String[C]) String() string {
	return decodeUnits(s.Content())
}

// EqualString compares against a Go string using padding-insensitive unit
// comparison. No transcoding happens: the comparison is meaningful when
// both sides carry the same encoded text.
func (s String[C]) EqualString(other string) bool {
	return equalContent(s.str, []byte(other))
}

// Equal reports padding-insensitive equality between two strings of
// possibly different unit widths. Units compare numerically; the core never
// transcodes during comparison, so operands of different encodings must be
// converted first.
func Equal[A, B Unit](a String[A], b String[B]) bool {
	return equalPadded(a.str, b.str)
}

// EqualUnits compares a String against a raw unit slice that carries no
// terminator of its own.
func EqualUnits[A, B Unit](a String[A], units []B) bool {
	return equalContent(a.str, units)
}

// equalPadded compares two full backing arrays (terminator included): the
// first short-1 units must match, and every unit of the longer tail must be
// the zero terminator.
func equalPadded[A, B Unit](a []A, b []B) bool {
	short := min(len(a), len(b))
	for i := 0; i < short-1; i++ {
		if uint32(a[i]) != uint32(b[i]) {
			return false
		}
	}
	if len(a) > len(b) {
		for _, u := range a[short-1:] {
			if u != 0 {
				return false
			}
		}
	} else {
		for _, u := range b[short-1:] {
			if u != 0 {
				return false
			}
		}
	}
	return true
}

// equalContent compares a full backing array against bare content with an
// implied terminator.
func equalContent[A, B Unit](a []A, b []B) bool {
	bn := len(b) + 1
	short := min(len(a), bn)
	for i := 0; i < short-1; i++ {
		if uint32(a[i]) != uint32(b[i]) {
			return false
		}
	}
	if len(a) >= bn {
		for _, u := range a[short-1:] {
			if u != 0 {
				return false
			}
		}
	} else {
		for _, u := range b[short-1:] {
			if u != 0 {
				return false
			}
		}
	}
	return true
}

func decodeUnits[C Unit](units []C) string {
	switch FamilyOf[C]() {
	case UTF8:
		b := make([]byte, len(units))
		for i, u := range units {
			b[i] = byte(u)
		}
		return string(b)
	case UTF16:
		u16 := make([]uint16, len(units))
		for i, u := range units {
			u16[i] = uint16(u)
		}
		return string(utf16.Decode(u16))
	default:
		r := make([]rune, len(units))
		for i, u := range units {
			r[i] = rune(u)
		}
		return string(r)
	}
}
